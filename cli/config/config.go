package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/pflag"
)

const envPrefix = "BQAUDIT_"

// Config is the merged run configuration for all subcommands. Fields a
// subcommand does not use keep their defaults and pass validation.
type Config struct {
	Project   string        `koanf:"project" validate:"required"`
	Days      int           `koanf:"days" validate:"min=1"`
	Locations string        `koanf:"locations" validate:"required"`
	Region    string        `koanf:"region" validate:"required"`
	Limit     int           `koanf:"limit" validate:"min=1"`
	TopN      int           `koanf:"topn" validate:"min=1"`
	OutFile   string        `koanf:"outfile" validate:"required"`
	SQL       string        `koanf:"sql"`
	SQLFile   string        `koanf:"sql_file"`
	Report    string        `koanf:"report" validate:"required"`
	Port      int           `koanf:"port" validate:"min=1,max=65535"`
	Timeout   time.Duration `koanf:"timeout" validate:"min=0"`
}

func baseDefaults() map[string]interface{} {
	return map[string]interface{}{
		"days":      90,
		"locations": "US,EU",
		"region":    "US",
		"limit":     1000,
		"topn":      5,
		"outfile":   "bq_job_stats.csv",
		"report":    "analysis_out/schema_report.md",
		"port":      8082,
		"timeout":   time.Duration(0),
	}
}

// findConfigFile returns the explicit path when given, otherwise the first
// bq-audit config file present in the working directory.
func findConfigFile(explicit string) string {
	if explicit != "" {
		return explicit
	}

	for _, name := range []string{"bq-audit.yaml", "bq-audit.yml"} {
		if _, err := os.Stat(name); err == nil {
			return name
		}
	}

	return ""
}

// Load layers the run configuration. Precedence, lowest to highest:
// built-in defaults, per-command overrides, config file, BQAUDIT_ env vars,
// explicitly-set flags. The merged struct is validated before use.
func Load(cfgFile string, flags *pflag.FlagSet, overrides map[string]interface{}) (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(confmap.Provider(baseDefaults(), "."), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	if len(overrides) > 0 {
		if err := k.Load(confmap.Provider(overrides, "."), nil); err != nil {
			return nil, fmt.Errorf("failed to load command defaults: %w", err)
		}
	}

	if configFile := findConfigFile(cfgFile); configFile != "" {
		if err := k.Load(file.Provider(configFile), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("error reading config file %s: %w", configFile, err)
		}
	}

	// BQAUDIT_SQL_FILE -> sql_file
	if err := k.Load(env.Provider(envPrefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, envPrefix))
	}), nil); err != nil {
		return nil, fmt.Errorf("failed to load env vars: %w", err)
	}

	if flags != nil {
		if err := k.Load(posflag.ProviderWithFlag(flags, ".", k, func(f *pflag.Flag) (string, interface{}) {
			if !f.Changed {
				return "", nil
			}

			key := strings.ReplaceAll(f.Name, "-", "_")

			return key, posflag.FlagVal(flags, f)
		}), nil); err != nil {
			return nil, fmt.Errorf("failed to load flags: %w", err)
		}
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}

	if err := validator.New().Struct(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}
