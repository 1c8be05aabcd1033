// Package cli implements the sherry command-line interface.
//
// The root command runs the live dashboard. Subcommands are one-shot:
//
//	sherry              - live per-host traffic table
//	sherry stats        - print the traffic table once (--sample for rates)
//	sherry hosts        - print the MAC to hostname table
//	sherry reset        - zero the router's counters
//	sherry version      - build information
//	sherry completion   - shell completion scripts
//
// # Configuration
//
// Connection flags (--address, --password, --unit, --sleep, --timeout,
// --retries, --retry-backoff, --no-color, --config) are persistent and
// shared by every subcommand. Every command resolves its settings through
// config.LoadFrom, so a flag only wins over SHERRY_* variables and the
// config file when it was set explicitly.
//
// # Surfaces
//
// The dashboard draws on the terminal surface when stdin and stdout are
// both terminals and on the console surface otherwise. While the terminal
// surface is active, standard log output goes to --log-file or nowhere.
// The surface is always torn down on exit, including on SIGINT/SIGTERM.
package cli
