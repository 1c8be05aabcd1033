package config

import "time"

// Config is sherry's complete configuration after defaults, the config
// file, SHERRY_* environment variables and flags have been layered.
type Config struct {
	// Address is the router's address, with or without scheme.
	Address string `yaml:"address" mapstructure:"address"`

	// Password is the router's admin password.
	Password string `yaml:"password" mapstructure:"password"`

	// Unit is the display unit: B, kB, mB (bytes) or b, kb, mb (bits).
	// Unknown units render as kB.
	Unit string `yaml:"unit" mapstructure:"unit"`

	// Interval is the poll interval in seconds.
	Interval float64 `yaml:"interval" mapstructure:"interval"`

	// Sort is the initial sort column: current, total or ip.
	Sort string `yaml:"sort" mapstructure:"sort"`

	// Reset zeroes the router's counters before the first poll.
	Reset bool `yaml:"reset" mapstructure:"reset"`

	// Summary starts the dashboard without the MAC column.
	Summary bool `yaml:"summary" mapstructure:"summary"`

	// Timeout bounds each HTTP request to the router.
	Timeout time.Duration `yaml:"timeout" mapstructure:"timeout"`

	// Retries is how many times an unpopulated hostname table is fetched.
	Retries int `yaml:"retries" mapstructure:"retries"`

	// RetryBackoff is the base delay between hostname fetches.
	RetryBackoff time.Duration `yaml:"retry_backoff" mapstructure:"retry_backoff"`

	// LogFile receives log output while the dashboard owns the terminal.
	// Empty discards it. Supports ~ and ${HOME}.
	LogFile string `yaml:"log_file" mapstructure:"log_file"`

	// NoColor disables styled output.
	NoColor bool `yaml:"no_color" mapstructure:"no_color"`
}

// Defaults
const (
	DefaultAddress      = "192.168.1.1"
	DefaultUnit         = "kB"
	DefaultInterval     = 1.0
	MinInterval         = 0.5
	DefaultSort         = "current"
	DefaultTimeout      = 5 * time.Second
	DefaultRetries      = 5
	DefaultRetryBackoff = 500 * time.Millisecond
)

// DefaultConfig returns a config with every default applied.
func DefaultConfig() *Config {
	return &Config{
		Address:      DefaultAddress,
		Unit:         DefaultUnit,
		Interval:     DefaultInterval,
		Sort:         DefaultSort,
		Timeout:      DefaultTimeout,
		Retries:      DefaultRetries,
		RetryBackoff: DefaultRetryBackoff,
	}
}

// PollInterval returns Interval as a duration.
func (c *Config) PollInterval() time.Duration {
	return time.Duration(c.Interval * float64(time.Second))
}
