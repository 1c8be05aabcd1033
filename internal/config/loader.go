package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/rileyhilliard/sherry/internal/errors"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	// ConfigFileName is the per-directory config file name.
	ConfigFileName = ".sherry.yaml"
	// GlobalConfigDir is the directory for global config.
	GlobalConfigDir = ".config/sherry"
	// GlobalConfigFile is the global config file name.
	GlobalConfigFile = "config.yaml"
	// EnvPrefix prefixes environment overrides, e.g. SHERRY_PASSWORD.
	EnvPrefix = "SHERRY"
)

// flagKeys maps command-line flag names to config keys.
var flagKeys = map[string]string{
	"address":       "address",
	"password":      "password",
	"unit":          "unit",
	"sleep":         "interval",
	"sort":          "sort",
	"reset":         "reset",
	"summary":       "summary",
	"timeout":       "timeout",
	"retries":       "retries",
	"retry-backoff": "retry_backoff",
	"log-file":      "log_file",
	"no-color":      "no_color",
}

// Find locates the config file using the search order:
// 1. Explicit path (from --config flag)
// 2. .sherry.yaml in the current directory
// 3. ~/.config/sherry/config.yaml
//
// Returns the path to the config file, or empty string if not found.
func Find(explicit string) (string, error) {
	if explicit != "" {
		if _, err := os.Stat(explicit); err != nil {
			if os.IsNotExist(err) {
				return "", errors.WrapWithCode(err, errors.ErrConfig,
					"Specified config file not found: "+explicit,
					"Check the path is correct")
			}
			return "", errors.WrapWithCode(err, errors.ErrConfig,
				"Cannot access config file: "+explicit,
				"Check file permissions")
		}
		return explicit, nil
	}

	cwd, err := os.Getwd()
	if err != nil {
		return "", errors.WrapWithCode(err, errors.ErrConfig,
			"Cannot determine current directory",
			"Check directory permissions")
	}

	localConfig := filepath.Join(cwd, ConfigFileName)
	if _, err := os.Stat(localConfig); err == nil {
		return localConfig, nil
	}

	if home, err := os.UserHomeDir(); err == nil && home != "" {
		globalConfig := filepath.Join(home, GlobalConfigDir, GlobalConfigFile)
		if _, err := os.Stat(globalConfig); err == nil {
			return globalConfig, nil
		}
	}

	return "", nil
}

// Load layers defaults, the config file at path (skipped when empty),
// SHERRY_* environment variables and any flags that were set.
// flags may be nil.
func Load(path string, flags *pflag.FlagSet) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			if os.IsNotExist(err) {
				return nil, errors.WrapWithCode(err, errors.ErrConfig,
					"Config file not found",
					"Create "+ConfigFileName+" or point --config at an existing file")
			}
			return nil, errors.WrapWithCode(err, errors.ErrConfig,
				"Failed to read config file",
				"Check the file exists and is valid YAML")
		}
	}

	if flags != nil {
		if err := bindFlags(v, flags); err != nil {
			return nil, err
		}
	}

	cfg := DefaultConfig()
	if err := v.Unmarshal(cfg); err != nil {
		source := "your flags and SHERRY_* variables"
		if path != "" {
			source = path
		}
		return nil, errors.WrapWithCode(err, errors.ErrConfig,
			"Invalid config format",
			"Check the values in "+source)
	}

	cfg.LogFile = ExpandTilde(Expand(cfg.LogFile))
	return cfg, nil
}

// LoadFrom runs Find and then Load.
func LoadFrom(explicit string, flags *pflag.FlagSet) (*Config, string, error) {
	path, err := Find(explicit)
	if err != nil {
		return nil, "", err
	}
	cfg, err := Load(path, flags)
	return cfg, path, err
}

// setDefaults registers every key so environment overrides are seen by
// Unmarshal.
func setDefaults(v *viper.Viper) {
	v.SetDefault("address", DefaultAddress)
	v.SetDefault("password", "")
	v.SetDefault("unit", DefaultUnit)
	v.SetDefault("interval", DefaultInterval)
	v.SetDefault("sort", DefaultSort)
	v.SetDefault("reset", false)
	v.SetDefault("summary", false)
	v.SetDefault("timeout", DefaultTimeout.String())
	v.SetDefault("retries", DefaultRetries)
	v.SetDefault("retry_backoff", DefaultRetryBackoff.String())
	v.SetDefault("log_file", "")
	v.SetDefault("no_color", false)
}

// bindFlags binds the flags present in fs. Only flags the user actually
// set override lower layers.
func bindFlags(v *viper.Viper, fs *pflag.FlagSet) error {
	for name, key := range flagKeys {
		f := fs.Lookup(name)
		if f == nil || !f.Changed {
			continue
		}
		if err := v.BindPFlag(key, f); err != nil {
			return errors.WrapWithCode(err, errors.ErrConfig,
				"Failed to read --"+name,
				"")
		}
	}
	return nil
}
