package cli

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/rileyhilliard/sherry/internal/config"
	"github.com/rileyhilliard/sherry/internal/errors"
	"github.com/rileyhilliard/sherry/internal/logger"
	"github.com/rileyhilliard/sherry/internal/monitor"
	"github.com/rileyhilliard/sherry/internal/ui"
	"github.com/spf13/cobra"
)

// resetConfirmPrompt is asked before zeroing the router's counters.
const resetConfirmPrompt = "Reset the router's traffic counters?"

// newStatsCmd prints one snapshot of the traffic table.
func newStatsCmd() *cobra.Command {
	var format string
	var sample bool

	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Print the router's traffic table once",
		Long: `Fetch the traffic statistics table once and print it.

Rates need two samples. With --sample, sherry fetches the table twice,
--sleep seconds apart, and reports the rate between them.

Examples:
  sherry stats -p secret
  sherry stats -p secret --sample --sort current
  sherry stats -p secret --format json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runStats(cmd, format, sample)
		},
	}

	cmd.Flags().StringVar(&format, "format", FormatTable, "output format: table, json or yaml")
	cmd.Flags().BoolVar(&sample, "sample", false, "take two samples one interval apart and report rates")
	cmd.Flags().String("sort", config.DefaultSort, "sort: current, total or ip")
	cmd.Flags().Bool("summary", false, "drop the MAC column from the table")

	return cmd
}

func runStats(cmd *cobra.Command, format string, sample bool) error {
	if err := checkFormat(format); err != nil {
		return err
	}
	cfg, err := loadConfig(cmd)
	if err != nil {
		writeFailure(cmd.OutOrStdout(), format, err)
		return err
	}

	log := logger.Default()
	client := newClient(cfg, log)
	ctx := cmd.Context()
	interval := cfg.PollInterval()

	var names monitor.Directory
	var snap *monitor.Snapshot
	err = track("Reading traffic table from "+client.Base(), func() error {
		dir, err := client.Hostnames(ctx)
		if err != nil && !errors.IsCode(err, errors.ErrDevice) {
			return err
		}
		if err != nil {
			log.Warn("%s", errors.Summarize(err))
		}
		names = dir

		first, err := client.Stats(ctx)
		if err != nil {
			return err
		}
		if !sample {
			snap = first
			return nil
		}

		if err := sleepFor(ctx, interval); err != nil {
			return err
		}
		second, err := client.Stats(ctx)
		if err != nil {
			return err
		}
		snap = monitor.ComputeRates(first, second, interval.Seconds())
		return nil
	})
	if err != nil {
		writeFailure(cmd.OutOrStdout(), format, err)
		return err
	}

	sortKey, _ := monitor.ParseSortKey(cfg.Sort)
	records := monitor.SortRecords(snap.Records(), sortKey)

	if format != FormatTable {
		return writeData(cmd.OutOrStdout(), format,
			newStatsReport(client.Base(), snap, records, names, sample))
	}

	tbl := monitor.BuildTable(records, names, cfg.Unit, cfg.Summary)
	fmt.Fprintln(cmd.OutOrStdout(), ui.RenderTable(tbl.Columns, tbl.Rows))
	return nil
}

// newHostsCmd prints the router's hostname directory.
func newHostsCmd() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "hosts",
		Short: "Print the router's MAC to hostname table",
		Long: `Fetch the LAN host table and print each MAC address with its hostname.

While the router is still discovering hosts some names read "Unknown";
sherry retries --retries times before printing what it has.

Examples:
  sherry hosts -p secret
  sherry hosts -p secret --format yaml`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runHosts(cmd, format)
		},
	}

	cmd.Flags().StringVar(&format, "format", FormatTable, "output format: table, json or yaml")

	return cmd
}

func runHosts(cmd *cobra.Command, format string) error {
	if err := checkFormat(format); err != nil {
		return err
	}
	cfg, err := loadConfig(cmd)
	if err != nil {
		writeFailure(cmd.OutOrStdout(), format, err)
		return err
	}

	log := logger.Default()
	client := newClient(cfg, log)

	var dir monitor.Directory
	err = track("Reading host table from "+client.Base(), func() error {
		var err error
		dir, err = client.Hostnames(cmd.Context())
		return err
	})
	if err != nil && !errors.IsCode(err, errors.ErrDevice) {
		writeFailure(cmd.OutOrStdout(), format, err)
		return err
	}
	if err != nil {
		log.Warn("%s", errors.Summarize(err))
	}

	entries := directoryEntries(dir)
	if format != FormatTable {
		return writeData(cmd.OutOrStdout(), format, entries)
	}
	writeHostnamesTable(cmd.OutOrStdout(), entries)
	return nil
}

// newResetCmd zeroes the router's counters.
func newResetCmd() *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Reset the router's traffic counters",
		Long: `Zero the router's per-host traffic counters.

sherry asks for confirmation on a terminal. Pass --yes to skip the
question, which is required when stdin is not a terminal.

Examples:
  sherry reset -p secret
  sherry reset -p secret --yes`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runReset(cmd, yes)
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "reset without asking")

	return cmd
}

func runReset(cmd *cobra.Command, yes bool) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	if !yes {
		if !ui.Interactive(os.Stdin, os.Stderr) {
			return errors.New(errors.ErrConfig,
				"Refusing to reset counters without confirmation",
				"Run on a terminal or pass --yes")
		}
		ok, err := ui.Confirm(os.Stdin, os.Stderr, resetConfirmPrompt)
		if err != nil {
			return errors.WrapWithCode(err, errors.ErrTerminal,
				"Confirmation prompt failed", "Pass --yes to skip the prompt")
		}
		if !ok {
			fmt.Fprintln(cmd.OutOrStdout(), ui.SymbolSkipped+" Reset cancelled")
			return nil
		}
	}

	client := newClient(cfg, logger.Default())
	err = track("Resetting counters on "+client.Base(), func() error {
		return client.ResetStats(cmd.Context())
	})
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), ui.SymbolSuccess+" Traffic counters reset on "+client.Base())
	return nil
}

// newCompletionCmd generates shell completion scripts.
func newCompletionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "completion [bash|zsh|fish|powershell]",
		Short: "Generate shell completion script",
		Long: `Generate shell completion scripts for sherry.

Examples:
  # Bash
  sherry completion bash > /etc/bash_completion.d/sherry

  # Zsh
  sherry completion zsh > "${fpath[1]}/_sherry"

  # Fish
  sherry completion fish > ~/.config/fish/completions/sherry.fish`,
		ValidArgs: []string{"bash", "zsh", "fish", "powershell"},
		Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			root := cmd.Root()
			out := cmd.OutOrStdout()
			switch args[0] {
			case "bash":
				return root.GenBashCompletion(out)
			case "zsh":
				return root.GenZshCompletion(out)
			case "fish":
				return root.GenFishCompletion(out, true)
			default:
				return root.GenPowerShellCompletion(out)
			}
		},
	}
}

// sleepFor waits for d or until ctx is done.
func sleepFor(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
