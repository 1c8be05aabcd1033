package cli

import (
	"fmt"
	"os"

	"github.com/rileyhilliard/sherry/internal/config"
	"github.com/rileyhilliard/sherry/internal/errors"
	"github.com/rileyhilliard/sherry/internal/logger"
	"github.com/rileyhilliard/sherry/internal/monitor"
	"github.com/rileyhilliard/sherry/internal/ui"
	"github.com/spf13/cobra"
)

// noTerminalNotice is printed above the first frame when the dashboard
// falls back to plain output.
const noTerminalNotice = "Running in no terminal mode"

// runDashboard polls the router until the user quits or the command's
// context is cancelled.
func runDashboard(cmd *cobra.Command) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	surface, restoreLog, err := openSurface(cmd, cfg)
	if err != nil {
		return err
	}
	defer restoreLog()
	defer func() {
		if terr := surface.Teardown(); terr != nil {
			fmt.Fprint(cmd.ErrOrStderr(), terr.Error())
		}
	}()

	log := logger.Default()
	client := newClient(cfg, log)

	// Validate already rejected unknown sort keys.
	sortKey, _ := monitor.ParseSortKey(cfg.Sort)
	view := monitor.NewViewState(cfg.Unit, sortKey, cfg.Summary, cfg.Reset)
	session := monitor.NewSession(view, cfg.PollInterval())
	dash := monitor.NewDashboard(surface, client.Base())
	poller := monitor.NewPoller(client, dash, session, log)

	ctx := cmd.Context()
	if err := poller.Run(ctx); err != nil {
		if ctx.Err() != nil {
			return nil
		}
		return err
	}
	return nil
}

// openSurface picks the interactive terminal surface when both ends are
// terminals and the plain console surface otherwise. While the terminal
// surface owns the screen, standard log output goes to cfg.LogFile.
func openSurface(cmd *cobra.Command, cfg *config.Config) (monitor.Surface, func(), error) {
	if !ui.Interactive(os.Stdin, os.Stdout) {
		out := cmd.OutOrStdout()
		fmt.Fprint(out, ui.RenderBanner(ui.BannerInfo{
			Version: formatVersion(version),
			Tagline: noTerminalNotice,
			Address: cfg.Address,
		}))
		return ui.NewConsoleSurface(cmd.InOrStdin(), out), func() {}, nil
	}

	restore, err := logger.Redirect(cfg.LogFile)
	if err != nil {
		return nil, nil, errors.WrapWithCode(err, errors.ErrConfig,
			"Cannot open log file "+cfg.LogFile,
			"Check the --log-file path is writable")
	}

	surface, err := ui.NewTerminalSurface(os.Stdin, os.Stdout)
	if err != nil {
		restore()
		return nil, nil, err
	}
	return surface, restore, nil
}
