package config

import (
	"bytes"
	"io/ioutil"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/divideandconquer/go-merge/merge"
)

// MergeUpdate merges values into the user file, rewrites it and applies it.
func (c *Config) MergeUpdate(values map[string]interface{}) error {

	// Copy of current user config.
	current := c.UserCopy()
	merged := merge.Merge(current, values)
	buf := new(bytes.Buffer)
	encoder := toml.NewEncoder(buf)

	if err := encoder.Encode(merged); err != nil {
		return err
	}

	if err := ioutil.WriteFile(c.file, buf.Bytes(), 0644); err != nil {
		return err
	}

	return c.Merge(c.file)
}

// Set writes a single dotted path, e.g. Set("storage.driver", "bunt").
func (c *Config) Set(path string, value interface{}) error {
	return c.MergeUpdate(Nest(path, value))
}

// Nest expands a dotted path into nested maps.
func Nest(path string, value interface{}) map[string]interface{} {
	keys := strings.Split(path, ".")
	out := map[string]interface{}{keys[len(keys)-1]: value}
	for i := len(keys) - 2; i >= 0; i-- {
		out = map[string]interface{}{keys[i]: out}
	}
	return out
}
