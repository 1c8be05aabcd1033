package config

import (
	"fmt"
	"strings"

	"github.com/rileyhilliard/sherry/internal/errors"
)

// SortKeys are the accepted values for sort.
var SortKeys = []string{"current", "rate", "total", "ip"}

// Validate checks cfg for values sherry can't run with.
func Validate(cfg *Config) error {
	if strings.TrimSpace(cfg.Address) == "" {
		return errors.New(errors.ErrConfig,
			"Router address is empty",
			"Pass -a <address> or set address in "+ConfigFileName)
	}

	if cfg.Password == "" {
		return errors.New(errors.ErrConfig,
			"Router password is required",
			"Pass -p <password>, set SHERRY_PASSWORD, or add password to "+ConfigFileName)
	}

	if cfg.Interval < MinInterval {
		return errors.New(errors.ErrConfig,
			fmt.Sprintf("Poll interval can't be less than %.1f seconds (got %g)", MinInterval, cfg.Interval),
			"The router stops answering when polled faster; use -s 0.5 or more")
	}

	if !validSort(cfg.Sort) {
		return errors.New(errors.ErrConfig,
			fmt.Sprintf("Unknown sort column '%s'", cfg.Sort),
			"Use one of: current, total, ip")
	}

	if cfg.Retries < 1 {
		return errors.New(errors.ErrConfig,
			fmt.Sprintf("retries must be at least 1 (got %d)", cfg.Retries),
			"Set retries to 1 to fetch the hostname table only once")
	}

	if cfg.RetryBackoff < 0 {
		return errors.New(errors.ErrConfig,
			fmt.Sprintf("retry_backoff can't be negative (got %s)", cfg.RetryBackoff),
			"Use a duration like 500ms")
	}

	if cfg.Timeout <= 0 {
		return errors.New(errors.ErrConfig,
			fmt.Sprintf("timeout must be positive (got %s)", cfg.Timeout),
			"Use a duration like 5s")
	}

	return nil
}

func validSort(s string) bool {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return true
	}
	for _, k := range SortKeys {
		if s == k {
			return true
		}
	}
	return false
}
