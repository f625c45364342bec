package main

import (
	"os"
	"strings"
	"testing"

	"github.com/alecthomas/kong"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fluxmc/matgen/internal/cmd"
	"github.com/fluxmc/matgen/internal/config"
)

func TestFindUserConfig(t *testing.T) {
	t.Setenv("MATGEN_CONFIG", "")

	assert.Equal(t, "a.yaml", findUserConfig([]string{"--config=a.yaml"}))
	assert.Equal(t, "b.toml", findUserConfig([]string{"check", "--config", "b.toml"}))
	assert.Equal(t, "", findUserConfig([]string{"--config"}))
	assert.Equal(t, "", findUserConfig(nil))

	t.Setenv("MATGEN_CONFIG", "env.json")
	assert.Equal(t, "env.json", findUserConfig(nil))
	assert.Equal(t, "flag.json", findUserConfig([]string{"--config=flag.json"}))
}

// writeTemplate runs `config init` for format in the working directory and
// swaps the defaults for recognisable values.
func writeTemplate(t *testing.T, format string) {
	t.Helper()
	dest := "matgen." + format
	require.NoError(t, (&cmd.ConfigInit{Format: format, Output: dest}).Run())

	data, err := os.ReadFile(dest)
	require.NoError(t, err)
	content := strings.ReplaceAll(string(data), "items.json", "custom.json")
	content = strings.ReplaceAll(content, "info", "debug")
	require.NoError(t, os.WriteFile(dest, []byte(content), 0o644))
}

func TestConfigTemplatesResolve(t *testing.T) {
	for _, format := range []string{"json", "yaml", "toml"} {
		t.Run(format, func(t *testing.T) {
			t.Chdir(t.TempDir())
			t.Setenv("XDG_CONFIG_HOME", t.TempDir())
			writeTemplate(t, format)

			tests := []struct {
				name  string
				args  []string
				input func(cli *config.CLI) string
				want  string
			}{
				{name: "default command", args: nil, input: func(cli *config.CLI) string { return cli.Generate.Input }, want: "custom.json"},
				{name: "generate", args: []string{"generate"}, input: func(cli *config.CLI) string { return cli.Generate.Input }, want: "custom.json"},
				{name: "check", args: []string{"check"}, input: func(cli *config.CLI) string { return cli.Check.Input }, want: "custom.json"},
				{name: "flag wins", args: []string{"generate", "--input=flag.json"}, input: func(cli *config.CLI) string { return cli.Generate.Input }, want: "flag.json"},
			}

			for _, tt := range tests {
				t.Run(tt.name, func(t *testing.T) {
					var cli config.CLI
					parser, err := kong.New(&cli, parserOptions("")...)
					require.NoError(t, err)

					_, err = parser.Parse(tt.args)
					require.NoError(t, err)

					assert.Equal(t, tt.want, tt.input(&cli))
					assert.Equal(t, "debug", cli.Log.Level)
					assert.Equal(t, "auto", cli.Log.Format)
				})
			}
		})
	}
}

func TestConfigUserPathTakesPriority(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	require.NoError(t, os.WriteFile("custom.yaml", []byte("log.level: warn\ngenerate:\n  output: out/material.g.rs\n"), 0o644))

	var cli config.CLI
	parser, err := kong.New(&cli, parserOptions("custom.yaml")...)
	require.NoError(t, err)
	_, err = parser.Parse([]string{"--config", "custom.yaml"})
	require.NoError(t, err)

	assert.Equal(t, "warn", cli.Log.Level)
	assert.Equal(t, "out/material.g.rs", cli.Generate.Output)
	assert.Equal(t, "items.json", cli.Generate.Input)
}
