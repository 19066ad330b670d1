package exceptions

import (
	"errors"
	"fmt"

	"github.com/getsentry/raven-go"
)

type ExceptionsModule struct {
	ErrorService *raven.Client `inject:""`
}

// Boot a module reporting to dsn. An empty dsn keeps the client silent.
func Boot(dsn string) (*ExceptionsModule, error) {
	client, err := raven.New(dsn)
	if err != nil {
		return nil, err
	}
	return &ExceptionsModule{ErrorService: client}, nil
}

// Capture sends err without waiting for the delivery.
func (di *ExceptionsModule) Capture(err error) {
	if err == nil || di.ErrorService == nil {
		return
	}
	di.ErrorService.CaptureError(err, map[string]string{"module": "cart"})
}

// Recover reports a panic to sentry and re-panics it. Meant to be deferred.
func (di *ExceptionsModule) Recover() {
	rval := recover()
	if rval == nil {
		return
	}

	var packet *raven.Packet
	switch v := rval.(type) {
	case error:
		packet = raven.NewPacket(v.Error(), raven.NewException(v, raven.NewStacktrace(2, 3, nil)))
	default:
		rvalStr := fmt.Sprint(v)
		packet = raven.NewPacket(rvalStr, raven.NewException(errors.New(rvalStr), raven.NewStacktrace(2, 3, nil)))
	}

	// Grab the error and send it to sentry
	if di.ErrorService != nil {
		_, ch := di.ErrorService.Capture(packet, map[string]string{})
		<-ch
	}
	panic(rval)
}
