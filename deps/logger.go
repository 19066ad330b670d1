package deps

import (
	"os"

	"github.com/op/go-logging"
)

var log = logging.MustGetLogger("gomarketplace")

// Example format string. Everything except the message has a custom color
// which is dependent on the log level. Many fields have a custom output
// formatting too, eg. the time returns the hour down to the milli second.
var format = logging.MustStringFormatter(
	`%{color}%{time:15:04:05.000}  %{pid} %{module}	%{shortfile}	▶ %{level:.4s} %{id:03x}%{color:reset} %{message}`,
)

// IgniteLogger levels the backend once from log.level. The level is not
// followed across reloads: go-logging backends are not safe to re-level
// while other goroutines log.
func IgniteLogger(container Deps) (Deps, error) {
	backend := logging.NewLogBackend(os.Stderr, "", 0)
	formatter := logging.NewBackendFormatter(backend, format)
	leveled := logging.AddModuleLevel(formatter)
	leveled.SetLevel(logLevel(container), "")
	logging.SetBackend(leveled)

	container.LoggerProvider = log
	container.BackendProvider = leveled
	return container, nil
}

func logLevel(container Deps) logging.Level {
	if container.Settings() == nil {
		return logging.INFO
	}
	level, err := logging.LogLevel(container.Config().UString("log.level", "info"))
	if err != nil {
		return logging.INFO
	}
	return level
}
