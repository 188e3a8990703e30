package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/pflag"

	"github.com/nextforge-dev/nextforge/internal/errors"
)

// envPrefix namespaces the environment variables read by the loader.
const envPrefix = "NEXTFORGE_"

// configFileUsed tracks which config file the last Load call read.
var configFileUsed string

// findConfigFile finds the config file to use.
// Priority: explicit path > ./nextforge.yaml > ./nextforge.yml > user config dir
func findConfigFile(explicit string) string {
	if explicit != "" {
		return explicit
	}
	for _, name := range []string{"nextforge.yaml", "nextforge.yml"} {
		if _, err := os.Stat(name); err == nil {
			return name
		}
	}
	if dir, err := os.UserConfigDir(); err == nil {
		candidate := filepath.Join(dir, "nextforge", "nextforge.yaml")
		if _, err := os.Stat(candidate); err == nil {
			return candidate
		}
	}
	return ""
}

// Load merges configuration from defaults, the config file, environment
// variables, and flags.
// Precedence (highest to lowest): flags > env vars > config file > defaults
func Load(cfgFile string, flags *pflag.FlagSet) (*Config, error) {
	k := koanf.New(".")

	// A .env in the working directory may carry NEXTFORGE_* variables.
	// Missing files are fine.
	_ = godotenv.Load()

	// 1. Load defaults
	if err := k.Load(confmap.Provider(map[string]interface{}{
		"package_manager": DefaultPackageManager,
		"docs":            false,
		"yes":             false,
		"dry_run":         false,
		"skip_install":    false,
		"registry_delay":  DefaultRegistryDelay.String(),
		"no_color":        false,
		"verbose":         false,
	}, "."), nil); err != nil {
		return nil, errors.New("E150").WithDetail("Failed to load defaults.").Wrap(err)
	}

	// 2. Find and load config file
	configFileUsed = findConfigFile(cfgFile)
	if configFileUsed != "" {
		if err := k.Load(file.Provider(configFileUsed), yaml.Parser()); err != nil {
			return nil, errors.New("E150").
				WithDetailf("Could not read config file %s.", configFileUsed).
				Wrap(err)
		}
	}

	// 3. Load environment variables (NEXTFORGE_ prefix)
	// Transform: NEXTFORGE_PACKAGE_MANAGER -> package_manager
	if err := k.Load(env.Provider(envPrefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, envPrefix))
	}), nil); err != nil {
		return nil, errors.New("E150").WithDetail("Failed to load environment variables.").Wrap(err)
	}

	// 4. Load flags (highest priority)
	if flags != nil {
		if err := k.Load(posflag.ProviderWithFlag(flags, ".", k, func(f *pflag.Flag) (string, interface{}) {
			if !f.Changed {
				return "", nil
			}
			key := strings.ReplaceAll(f.Name, "-", "_")

			// The CLI uses --pm for brevity, the config key spells it out.
			if key == "pm" {
				return "package_manager", posflag.FlagVal(flags, f)
			}

			return key, posflag.FlagVal(flags, f)
		}), nil); err != nil {
			return nil, errors.New("E150").WithDetail("Failed to load flags.").Wrap(err)
		}
	}

	// 5. Unmarshal into Config struct
	cfg := Default()
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, errors.New("E150").WithDetail("Could not decode configuration.").Wrap(err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// FileUsed returns the path of the config file read by the last Load,
// if any.
func FileUsed() string {
	return configFileUsed
}
