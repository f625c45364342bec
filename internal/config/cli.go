// Package config defines the matgen command line.
package config

import (
	"github.com/fluxmc/matgen/internal/cmd"
	"github.com/fluxmc/matgen/internal/log"
)

// CLI is the root Kong command structure. Values may also come from
// JSON/YAML/TOML config files; flags and environment variables win.
type CLI struct {
	ConfigFile string      `name:"config" help:"Config file to load before the default locations (json, yaml or toml)" env:"MATGEN_CONFIG" placeholder:"PATH"`
	Log        log.Options `embed:"" prefix:"log."`

	Generate cmd.Generate      `cmd:"" default:"withargs" help:"Generate the Material enum from the item list (default)"`
	Check    cmd.Check         `cmd:"" help:"Fail if the generated file is out of date"`
	Config   cmd.ConfigCommand `cmd:"" help:"Configuration file helpers"`
}
