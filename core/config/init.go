package config

import (
	"errors"
	"io/ioutil"
	"os"
	"sync"

	"github.com/BurntSushi/toml"
	"github.com/fsnotify/fsnotify"
	"github.com/imdario/mergo"
	oconfig "github.com/olebedev/config"
	"github.com/op/go-logging"
)

var log = logging.MustGetLogger("config")

// Config is the runtime configuration: built-in defaults with the user
// TOML file merged on top. Reads go through View.
type Config struct {
	// Reload receives a signal after every successful merge.
	Reload chan bool

	file    string
	mu      sync.RWMutex
	user    map[string]interface{}
	current map[string]interface{}
	watcher *fsnotify.Watcher
}

// Defaults used for anything the file leaves out.
func Defaults() map[string]interface{} {
	return map[string]interface{}{
		"log": map[string]interface{}{
			"level": "info",
		},
		"cart": map[string]interface{}{
			"key": "",
		},
		"storage": map[string]interface{}{
			"driver": "ledis",
			"ledis": map[string]interface{}{
				"dir": "./data",
				"db":  0,
			},
			"bunt": map[string]interface{}{
				"path": "./cart.db",
			},
			"redis": map[string]interface{}{
				"addr":     "localhost:6379",
				"attempts": 5,
			},
		},
		"sentry": map[string]interface{}{
			"dsn": "",
		},
	}
}

// Bootstrap loads file over the defaults. A missing file is not an error.
func Bootstrap(file string) (*Config, error) {
	c := &Config{
		Reload:  make(chan bool, 1),
		file:    file,
		user:    map[string]interface{}{},
		current: Defaults(),
	}
	if err := c.Merge(file); err != nil {
		return nil, err
	}
	return c, nil
}

// File the config was bootstrapped from.
func (c *Config) File() string {
	return c.file
}

// Copy of the merged runtime config.
func (c *Config) Copy() map[string]interface{} {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return clone(c.current)
}

// UserCopy of the values coming from the file only.
func (c *Config) UserCopy() map[string]interface{} {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return clone(c.user)
}

// View returns typed access to the runtime config with env overrides
// applied, e.g. STORAGE_DRIVER overrides storage.driver.
func (c *Config) View() *oconfig.Config {
	view := &oconfig.Config{Root: c.Copy()}
	return view.Env()
}

// Merge re-reads file and merges it over the defaults.
func (c *Config) Merge(file string) error {
	var values map[string]interface{}

	// Read the file first
	dat, err := ioutil.ReadFile(file)
	if errors.Is(err, os.ErrNotExist) {
		log.Infof("no config at %s, using defaults", file)
		return nil
	}
	if err != nil {
		return err
	}

	if _, err := toml.Decode(string(dat), &values); err != nil {
		return err
	}
	values = normalize(values).(map[string]interface{})

	merged := Defaults()
	if err := mergo.Merge(&merged, clone(values), mergo.WithOverride); err != nil {
		return err
	}

	c.mu.Lock()
	c.user = values
	c.current = merged
	c.mu.Unlock()

	// Reload signal if anyone is listening...
	select {
	case c.Reload <- true:
	default:
	}

	log.Debugf("configured from %s", file)
	return nil
}

// WatchFile merges the file again every time it is written.
func (c *Config) WatchFile() error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}

	go func() {
		for {
			select {
			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				if event.Op&fsnotify.Write == fsnotify.Write {
					log.Infof("modified file: %s", event.Name)
					if err := c.Merge(event.Name); err != nil {
						log.Error(err)
					}
				}
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				log.Error(err)
			}
		}
	}()

	if err := watcher.Add(c.file); err != nil {
		watcher.Close()
		return err
	}

	c.mu.Lock()
	c.watcher = watcher
	c.mu.Unlock()
	return nil
}

// Close stops watching the file.
func (c *Config) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.watcher == nil {
		return nil
	}
	err := c.watcher.Close()
	c.watcher = nil
	return err
}

func clone(m map[string]interface{}) map[string]interface{} {
	out := make(map[string]interface{}, len(m))
	for k, v := range m {
		if nested, ok := v.(map[string]interface{}); ok {
			out[k] = clone(nested)
			continue
		}
		out[k] = v
	}
	return out
}

// normalize turns TOML integers into ints, the only integer type the
// typed accessors understand.
func normalize(v interface{}) interface{} {
	switch v := v.(type) {
	case map[string]interface{}:
		for k, nested := range v {
			v[k] = normalize(nested)
		}
		return v
	case []interface{}:
		for i, nested := range v {
			v[i] = normalize(nested)
		}
		return v
	case int64:
		return int(v)
	}
	return v
}
