package doctor

import (
	"context"
	stderrors "errors"
	"fmt"
	"path/filepath"

	"github.com/rileyhilliard/sherry/internal/config"
	"github.com/rileyhilliard/sherry/internal/errors"
	"github.com/spf13/pflag"
)

// ConfigFileCheck reports which config file is in use. Running without one
// is fine; flags and SHERRY_* variables cover everything.
type ConfigFileCheck struct {
	ConfigPath string // Explicit path, or empty to search
}

func (c *ConfigFileCheck) Name() string     { return "config_file" }
func (c *ConfigFileCheck) Category() string { return CategoryConfig }

func (c *ConfigFileCheck) Run(_ context.Context) CheckResult {
	path, err := config.Find(c.ConfigPath)
	if err != nil {
		return CheckResult{
			Name:       c.Name(),
			Status:     StatusFail,
			Message:    "Error finding config: " + errors.Summarize(err),
			Suggestion: "Check the --config path and its permissions",
		}
	}

	if path == "" {
		return CheckResult{
			Name:       c.Name(),
			Status:     StatusPass,
			Message:    "No config file, using flags and environment",
			Suggestion: "Create " + config.ConfigFileName + " to save your router address and unit",
		}
	}

	return CheckResult{
		Name:    c.Name(),
		Status:  StatusPass,
		Message: fmt.Sprintf("Config file: %s", filepath.Base(path)),
	}
}

// ConfigValidCheck loads the layered configuration and validates it.
// On success Config holds the result for the checks that need it.
type ConfigValidCheck struct {
	ConfigPath string
	Flags      *pflag.FlagSet

	Config *config.Config
}

func (c *ConfigValidCheck) Name() string     { return "config_valid" }
func (c *ConfigValidCheck) Category() string { return CategoryConfig }

func (c *ConfigValidCheck) Run(_ context.Context) CheckResult {
	cfg, _, err := config.LoadFrom(c.ConfigPath, c.Flags)
	if err == nil {
		err = config.Validate(cfg)
	}
	if err != nil {
		var suggestion string
		var sErr *errors.Error
		if stderrors.As(err, &sErr) {
			suggestion = sErr.Suggestion
		}
		return CheckResult{
			Name:       c.Name(),
			Status:     StatusFail,
			Message:    errors.Summarize(err),
			Suggestion: suggestion,
		}
	}

	c.Config = cfg
	return CheckResult{
		Name:    c.Name(),
		Status:  StatusPass,
		Message: fmt.Sprintf("Configuration valid (router %s, unit %s, every %gs)", cfg.Address, cfg.Unit, cfg.Interval),
	}
}
