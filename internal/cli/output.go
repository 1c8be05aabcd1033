package cli

import (
	"fmt"
	"io"
	"os"
	"sort"
	"time"

	"github.com/rileyhilliard/sherry/internal/errors"
	"github.com/rileyhilliard/sherry/internal/monitor"
	"github.com/rileyhilliard/sherry/internal/ui"
	"gopkg.in/yaml.v3"
)

// Output formats for the one-shot commands.
const (
	FormatTable = "table"
	FormatJSON  = "json"
	FormatYAML  = "yaml"
)

// checkFormat rejects formats the commands cannot write.
func checkFormat(format string) error {
	switch format {
	case FormatTable, FormatJSON, FormatYAML:
		return nil
	}
	return errors.New(errors.ErrConfig,
		"Unknown output format: "+format,
		"Use --format table, json or yaml")
}

// HostReport is one host in stats output.
type HostReport struct {
	monitor.HostRecord `yaml:",inline"`
	Name               string `json:"name" yaml:"name"`
}

// StatsReport is the machine-readable form of one stats run.
type StatsReport struct {
	Address    string       `json:"address" yaml:"address"`
	CapturedAt time.Time    `json:"captured_at" yaml:"captured_at"`
	Sampled    bool         `json:"sampled" yaml:"sampled"`
	Hosts      []HostReport `json:"hosts" yaml:"hosts"`
}

// HostnameEntry is one row of the hostname directory.
type HostnameEntry struct {
	MAC  string `json:"mac" yaml:"mac"`
	Name string `json:"name" yaml:"name"`
}

// newStatsReport pairs sorted records with their hostnames.
func newStatsReport(address string, snap *monitor.Snapshot, records []monitor.HostRecord, names monitor.Directory, sampled bool) StatsReport {
	report := StatsReport{
		Address: address,
		Sampled: sampled,
		Hosts:   make([]HostReport, 0, len(records)),
	}
	if snap != nil {
		report.CapturedAt = snap.CapturedAt
	}
	for _, r := range records {
		name, _ := names.Name(r.MAC)
		report.Hosts = append(report.Hosts, HostReport{HostRecord: r, Name: name})
	}
	return report
}

// directoryEntries returns the directory sorted by MAC.
func directoryEntries(dir monitor.Directory) []HostnameEntry {
	entries := make([]HostnameEntry, 0, len(dir))
	for mac, name := range dir {
		entries = append(entries, HostnameEntry{MAC: mac, Name: name})
	}
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].MAC < entries[j].MAC
	})
	return entries
}

// writeData writes a structured value as JSON (inside the envelope) or YAML.
func writeData(w io.Writer, format string, data interface{}) error {
	if format == FormatJSON {
		return WriteJSONSuccess(w, data)
	}
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(data); err != nil {
		return err
	}
	return enc.Close()
}

// writeFailure reports err in the requested format. Table output leaves
// the message to Execute.
func writeFailure(w io.Writer, format string, err error) {
	if format == FormatJSON {
		_ = WriteJSONFromError(w, err)
	}
}

// writeHostnamesTable prints the directory as a two-column table.
func writeHostnamesTable(w io.Writer, entries []HostnameEntry) {
	rows := make([][]string, 0, len(entries))
	for _, e := range entries {
		name := e.Name
		if name == "" {
			name = "-"
		}
		rows = append(rows, []string{e.MAC, name})
	}
	fmt.Fprintln(w, ui.RenderTable([]ui.TableColumn{{Title: "MAC"}, {Title: "Name"}}, rows))
}

// progressOutput returns where spinners go, or nil when stderr is not
// a terminal.
func progressOutput() func(string) {
	if !ui.Interactive(os.Stdin, os.Stderr) {
		return nil
	}
	return func(s string) { fmt.Fprint(os.Stderr, s) }
}

// track runs fn under a spinner when one can be shown.
func track(label string, fn func() error) error {
	out := progressOutput()
	if out == nil {
		return fn()
	}

	spinner := ui.NewSpinner(label)
	spinner.SetOutput(out)
	spinner.Start()

	err := fn()
	if err != nil {
		spinner.Fail()
		return err
	}
	spinner.Success()
	return nil
}
