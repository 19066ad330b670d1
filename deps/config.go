package deps

import (
	"github.com/tryanzu/gomarketplace/core/config"
)

func IgniteConfig(d Deps) (Deps, error) {
	file := d.ConfigFile
	if file == "" {
		file = "./config.toml"
	}

	c, err := config.Bootstrap(file)
	if err != nil {
		return d, err
	}

	d.ConfigProvider = c
	return d, nil
}
