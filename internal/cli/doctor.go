package cli

import (
	stderrors "errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/rileyhilliard/sherry/internal/doctor"
	"github.com/rileyhilliard/sherry/internal/errors"
	"github.com/rileyhilliard/sherry/internal/logger"
	"github.com/rileyhilliard/sherry/internal/ui"
	"github.com/spf13/cobra"
)

// DoctorOutput is the machine-readable doctor report.
type DoctorOutput struct {
	Categories []CategoryOutput `json:"categories" yaml:"categories"`
	Summary    SummaryOutput    `json:"summary" yaml:"summary"`
}

// CategoryOutput holds the results of one check category.
type CategoryOutput struct {
	Name    string               `json:"name" yaml:"name"`
	Results []doctor.CheckResult `json:"results" yaml:"results"`
}

// SummaryOutput counts results by status.
type SummaryOutput struct {
	Pass     int  `json:"pass" yaml:"pass"`
	Warn     int  `json:"warn" yaml:"warn"`
	Fail     int  `json:"fail" yaml:"fail"`
	AllClear bool `json:"all_clear" yaml:"all_clear"`
}

// newDoctorCmd diagnoses configuration, router access and the terminal.
func newDoctorCmd() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "doctor",
		Short: "Diagnose configuration and router access",
		Long: `Check the configuration, that the router answers and knows its hosts'
names, and whether the dashboard will get an interactive terminal.

Examples:
  sherry doctor -p secret
  sherry doctor --format json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDoctor(cmd, format)
		},
	}

	cmd.Flags().StringVar(&format, "format", FormatTable, "output format: table, json or yaml")

	return cmd
}

func runDoctor(cmd *cobra.Command, format string) error {
	if err := checkFormat(format); err != nil {
		return err
	}
	ctx := cmd.Context()
	explicit, _ := cmd.Flags().GetString("config")

	valid := &doctor.ConfigValidCheck{ConfigPath: explicit, Flags: cmd.Flags()}
	checks := []doctor.Check{
		&doctor.ConfigFileCheck{ConfigPath: explicit},
		valid,
	}
	results := doctor.RunAll(ctx, checks)

	if valid.Config != nil {
		client := newClient(valid.Config, logger.Noop())
		routerChecks := doctor.NewRouterChecks(client, client.Base())
		var routerResults []doctor.CheckResult
		_ = track("Contacting "+client.Base(), func() error {
			routerResults = doctor.RunAllParallel(ctx, routerChecks)
			if doctor.HasFailures(routerResults) {
				return stderrors.New("router checks failed")
			}
			return nil
		})
		checks = append(checks, routerChecks...)
		results = append(results, routerResults...)
	}

	terminal := &doctor.TerminalCheck{}
	checks = append(checks, terminal)
	results = append(results, terminal.Run(ctx))

	out := cmd.OutOrStdout()
	if format == FormatTable {
		writeDoctorText(out, checks, results)
	} else if err := writeData(out, format, doctorOutput(checks, results)); err != nil {
		return err
	}

	if doctor.HasFailures(results) {
		counts := doctor.CountByStatus(results)
		return errors.New(errors.ErrConfig,
			fmt.Sprintf("%d check%s failed", counts[doctor.StatusFail], pluralSuffix(counts[doctor.StatusFail])),
			"Fix the failed checks above and run sherry doctor again")
	}
	return nil
}

// doctorOutput groups results by category in report order.
func doctorOutput(checks []doctor.Check, results []doctor.CheckResult) DoctorOutput {
	grouped := doctor.GroupByCategory(checks)

	var output DoctorOutput
	for _, cat := range doctor.Categories {
		indices, ok := grouped[cat]
		if !ok {
			continue
		}
		co := CategoryOutput{Name: cat}
		for _, idx := range indices {
			co.Results = append(co.Results, results[idx])
		}
		output.Categories = append(output.Categories, co)
	}

	counts := doctor.CountByStatus(results)
	output.Summary = SummaryOutput{
		Pass:     counts[doctor.StatusPass],
		Warn:     counts[doctor.StatusWarn],
		Fail:     counts[doctor.StatusFail],
		AllClear: !doctor.HasIssues(results),
	}
	return output
}

func writeDoctorText(w io.Writer, checks []doctor.Check, results []doctor.CheckResult) {
	successStyle := lipgloss.NewStyle().Foreground(ui.ColorSuccess)
	errorStyle := lipgloss.NewStyle().Foreground(ui.ColorError)
	warnStyle := lipgloss.NewStyle().Foreground(ui.ColorWarning)
	mutedStyle := lipgloss.NewStyle().Foreground(ui.ColorMuted)
	headerStyle := lipgloss.NewStyle().Bold(true)

	fmt.Fprintln(w)
	fmt.Fprintln(w, headerStyle.Render("sherry diagnostic report"))
	fmt.Fprintln(w)

	grouped := doctor.GroupByCategory(checks)
	for _, category := range doctor.Categories {
		indices, ok := grouped[category]
		if !ok {
			continue
		}

		fmt.Fprintln(w, headerStyle.Render(category))
		for _, idx := range indices {
			result := results[idx]

			symbol, style := ui.SymbolSuccess, successStyle
			switch result.Status {
			case doctor.StatusWarn:
				symbol, style = ui.SymbolSkipped, warnStyle
			case doctor.StatusFail:
				symbol, style = ui.SymbolFail, errorStyle
			}
			fmt.Fprintf(w, "  %s %s\n", style.Render(symbol), result.Message)

			if result.Suggestion != "" && result.Status != doctor.StatusPass {
				for _, line := range strings.Split(result.Suggestion, "\n") {
					fmt.Fprintf(w, "    %s\n", mutedStyle.Render(line))
				}
			}
		}
		fmt.Fprintln(w)
	}

	fmt.Fprintln(w, strings.Repeat("━", ui.BannerWidth))
	if doctor.HasIssues(results) {
		fmt.Fprintf(w, "%s %s\n", errorStyle.Render(ui.SymbolFail), doctor.Summary(results))
	} else {
		fmt.Fprintf(w, "%s %s\n", successStyle.Render(ui.SymbolSuccess), doctor.Summary(results))
	}
}

func pluralSuffix(n int) string {
	if n == 1 {
		return ""
	}
	return "s"
}
