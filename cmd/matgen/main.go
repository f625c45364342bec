// Command matgen generates the Rust Material enum from items.json.
//
//	go run ./cmd/matgen            # items.json -> generated/material.g.rs
//	go run ./cmd/matgen check      # fail when the generated file is stale
package main

import (
	"os"
	"strings"

	"github.com/fluxmc/matgen/internal/config"
	"github.com/fluxmc/matgen/internal/configpaths"
	"github.com/fluxmc/matgen/internal/log"

	"github.com/alecthomas/kong"
	kongtoml "github.com/alecthomas/kong-toml"
	kongyaml "github.com/alecthomas/kong-yaml"
)

func main() {
	var cli config.CLI
	ctx := kong.Parse(&cli, parserOptions(findUserConfig(os.Args[1:]))...)

	logger, closeFiles, err := log.SetupLogger(cli.Log.Level, cli.Log.File, cli.Log.Format)
	if err != nil {
		_, _ = os.Stderr.WriteString("failed to setup logger: " + err.Error() + "\n")
		os.Exit(2)
	}

	ctx.Bind(logger)
	err = ctx.Run()
	for _, c := range closeFiles {
		_ = c.Close()
	}
	ctx.FatalIfErrorf(err)
}

func parserOptions(userCfg string) []kong.Option {
	jsonPaths, yamlPaths, tomlPaths := configpaths.ConfigCandidatePaths(userCfg)
	return []kong.Option{
		kong.Name("matgen"),
		kong.Description("Generate the Rust Material enum from a JSON list of item identifiers"),
		kong.UsageOnError(),
		// Load configuration from JSON/YAML/TOML in priority order; flags/env override config values.
		kong.Configuration(kong.JSON, jsonPaths...),
		kong.Configuration(kongyaml.Loader, yamlPaths...),
		kong.Configuration(kongtoml.Loader, tomlPaths...),
	}
}

func findUserConfig(args []string) string {
	for i := 0; i < len(args); i++ {
		a := args[i]
		if strings.HasPrefix(a, "--config=") {
			return a[len("--config="):]
		}
		if a == "--config" && i+1 < len(args) {
			return args[i+1]
		}
	}
	if v := os.Getenv("MATGEN_CONFIG"); v != "" {
		return v
	}
	return ""
}
