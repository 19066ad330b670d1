package main

import (
	"os"

	"github.com/subosito/gotenv"
)

// configFile is the TOML file read by every command, see --config.
var configFile = "./config.toml"

func init() {

	// Values already in the environment win over .env ones.
	gotenv.Load()

	if file := os.Getenv("CONFIG_FILE"); file != "" {
		configFile = file
	}
}
