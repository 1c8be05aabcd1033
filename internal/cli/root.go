package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/rileyhilliard/sherry/internal/config"
	"github.com/rileyhilliard/sherry/internal/logger"
	"github.com/rileyhilliard/sherry/internal/modem"
	"github.com/rileyhilliard/sherry/internal/ui"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// newTransport builds the transport used to talk to the router.
// Tests swap it for a scripted fake.
var newTransport = func(timeout time.Duration) modem.Transport {
	return modem.NewHTTPTransport(timeout)
}

// rootCmd is the command run by Execute.
var rootCmd = newRootCmd()

// newRootCmd builds the full command tree.
func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sherry",
		Short: "Live per-host traffic stats from your router",
		Long: `sherry polls a home router's traffic statistics table and shows a live,
sortable table of every LAN host with its current rate and total bytes.

Keys while the dashboard runs:
  c  sort by current rate     t  sort by total bytes     i  sort by IP
  m  toggle MAC column         u  change unit             h  refresh hostnames
  r  reset router counters     q  quit

Examples:
  sherry -p secret
  sherry -a 192.168.0.1 -p secret -u mb -s 2
  SHERRY_PASSWORD=secret sherry --summary --sort total`,
		Args:          cobra.NoArgs,
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDashboard(cmd)
		},
	}

	pf := cmd.PersistentFlags()
	pf.String("config", "", "config file (default: ./.sherry.yaml, then ~/.config/sherry/config.yaml)")
	pf.StringP("address", "a", config.DefaultAddress, "router address")
	pf.StringP("password", "p", "", "router admin password (required)")
	pf.StringP("unit", "u", config.DefaultUnit, "display unit: B, kB, mB, b, kb, mb")
	pf.Float64P("sleep", "s", config.DefaultInterval, "seconds between polls (minimum 0.5)")
	pf.Duration("timeout", config.DefaultTimeout, "per-request timeout")
	pf.Int("retries", config.DefaultRetries, "hostname table fetch attempts")
	pf.Duration("retry-backoff", config.DefaultRetryBackoff, "base delay between hostname fetches")
	pf.Bool("no-color", false, "disable colored output")

	f := cmd.Flags()
	f.Bool("reset", false, "reset router counters before the first poll")
	f.Bool("summary", false, "start without the MAC column")
	f.String("sort", config.DefaultSort, "initial sort: current, total or ip")
	f.String("log-file", "", "write logs here while the dashboard runs")

	cmd.SetGlobalNormalizationFunc(normalizeFlagName)

	cmd.AddCommand(newStatsCmd())
	cmd.AddCommand(newHostsCmd())
	cmd.AddCommand(newResetCmd())
	cmd.AddCommand(newDoctorCmd())
	cmd.AddCommand(newVersionCmd())
	cmd.AddCommand(newCompletionCmd())

	return cmd
}

// normalizeFlagName accepts --new as the older spelling of --summary.
func normalizeFlagName(_ *pflag.FlagSet, name string) pflag.NormalizedName {
	if name == "new" {
		name = "summary"
	}
	return pflag.NormalizedName(name)
}

// Execute runs the root command until it finishes or the process is
// interrupted. It exits non-zero on error.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		msg := err.Error()
		if !strings.HasSuffix(msg, "\n") {
			msg += "\n"
		}
		fmt.Fprint(os.Stderr, msg)
		stop()
		os.Exit(1)
	}
}

// loadConfig resolves and validates configuration for cmd.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	explicit, _ := cmd.Flags().GetString("config")

	cfg, path, err := config.LoadFrom(explicit, cmd.Flags())
	if err != nil {
		return nil, err
	}
	if err := config.Validate(cfg); err != nil {
		return nil, err
	}
	if cfg.NoColor {
		ui.DisableColors()
	}
	if path != "" {
		logger.Default().Debug("using config %s", path)
	}
	return cfg, nil
}

// newClient builds a router client from cfg.
func newClient(cfg *config.Config, log logger.Logger) *modem.Client {
	client := modem.NewClient(cfg.Address, cfg.Password, newTransport(cfg.Timeout))
	client.SetRetry(cfg.Retries, cfg.RetryBackoff)
	client.SetLogger(log)
	return client
}
