package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"reflect"
	"strconv"
	"strings"

	"github.com/fluxmc/matgen/internal/configpaths"
	"github.com/fluxmc/matgen/internal/log"

	toml "github.com/pelletier/go-toml"
	yaml "gopkg.in/yaml.v3"
)

// ConfigCommand groups config-related subcommands.
type ConfigCommand struct {
	Init ConfigInit `cmd:"" help:"Generate a configuration template"`
}

// ConfigInit scaffolds a configuration file holding every option's default.
type ConfigInit struct {
	Format string `help:"Output format" enum:"json,yaml,toml" default:"json"`
	Output string `help:"Destination file path (defaults to matgen.<format> in the current directory)"`
	Force  bool   `help:"Overwrite if the file already exists"`
}

// globalOptions mirrors the root-level options a config file may set.
type globalOptions struct {
	Log log.Options `embed:"" prefix:"log."`
}

// pathCommands are the commands that accept the Paths flags.
var pathCommands = []string{"generate", "check"}

// Run generates a configuration template via reflection of the option structs and their tags.
func (c *ConfigInit) Run() error {
	format := normalizeFormat(c.Format)
	if format == "" {
		return fmt.Errorf("unsupported format: %s", c.Format)
	}

	dest := c.Output
	if dest == "" {
		dest = configpaths.AppName + "." + format
	}

	if !c.Force {
		if _, err := os.Stat(dest); err == nil {
			return errors.New("destination exists; use --force to overwrite")
		}
	}
	if err := configpaths.EnsureDir(dest); err != nil {
		return err
	}

	data, err := encodeConfig(format, configLayout(format))
	if err != nil {
		return err
	}
	return os.WriteFile(dest, data, 0o644)
}

// configLayout arranges the defaults the way each kong loader looks them up.
// kong.JSON splits flag names on "." into nested objects. kong-toml wants flat
// keys ("log.level" quoted) and rejects unknown tables. kong-yaml scopes
// command flags under the command name and takes "log.level" verbatim.
func configLayout(format string) map[string]any {
	global := buildMapFromStruct(reflect.TypeOf(globalOptions{}))
	paths := buildMapFromStruct(reflect.TypeOf(Paths{}))

	switch format {
	case "yaml":
		out := flattenKeys("", global, map[string]any{})
		for _, name := range pathCommands {
			out[name] = paths
		}
		return out
	case "toml":
		out := flattenKeys("", global, map[string]any{})
		for k, v := range paths {
			out[k] = v
		}
		return out
	default:
		for k, v := range paths {
			global[k] = v
		}
		return global
	}
}

// flattenKeys joins nested map keys with "." into out.
func flattenKeys(prefix string, m map[string]any, out map[string]any) map[string]any {
	for k, v := range m {
		key := k
		if prefix != "" {
			key = prefix + "." + k
		}
		if sub, ok := v.(map[string]any); ok {
			flattenKeys(key, sub, out)
			continue
		}
		out[key] = v
	}
	return out
}

func encodeConfig(format string, root map[string]any) ([]byte, error) {
	switch format {
	case "yaml":
		return yaml.Marshal(root)
	case "toml":
		return toml.Marshal(root)
	default:
		return json.MarshalIndent(root, "", "  ")
	}
}

func normalizeFormat(f string) string {
	switch strings.ToLower(f) {
	case "json":
		return "json"
	case "yaml", "yml":
		return "yaml"
	case "toml":
		return "toml"
	default:
		return ""
	}
}

func lowerCamel(s string) string {
	if s == "" {
		return s
	}
	r := []rune(s)
	if r[0] >= 'A' && r[0] <= 'Z' {
		r[0] += 'a' - 'A'
	}
	return string(r)
}

func buildMapFromStruct(t reflect.Type) map[string]any {
	if t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	out := map[string]any{}
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if !f.IsExported() {
			continue
		}
		if f.Tag.Get("kong") == "-" {
			continue
		}

		if _, ok := f.Tag.Lookup("embed"); ok {
			name := strings.TrimSuffix(f.Tag.Get("prefix"), ".")
			sub := buildMapFromStruct(f.Type)
			if name != "" {
				out[name] = sub
			} else {
				for k, v := range sub {
					out[k] = v
				}
			}
			continue
		}

		if val := defaultValueForField(f.Type, f.Tag.Get("default")); val != nil {
			out[lowerCamel(f.Name)] = val
		}
	}
	return out
}

func defaultValueForField(t reflect.Type, def string) any {
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	switch t.Kind() {
	case reflect.String:
		return def // may be empty
	case reflect.Bool:
		b, err := strconv.ParseBool(def)
		if err != nil {
			return false
		}
		return b
	case reflect.Struct:
		return buildMapFromStruct(t)
	default:
		return nil
	}
}
