package monitor

import (
	"fmt"
	"net/netip"
	"sort"
	"strconv"

	"github.com/rileyhilliard/sherry/internal/ui"
)

// SummaryNameWidth is how many characters of a hostname summary mode keeps.
const SummaryNameWidth = 9

// Table is the header and rows of the host table, before styling.
type Table struct {
	Columns []ui.TableColumn
	Rows    [][]string
}

// SortRecords returns a copy of records sorted descending by key.
// Records with equal keys keep their device order.
func SortRecords(records []HostRecord, by SortKey) []HostRecord {
	out := make([]HostRecord, len(records))
	copy(out, records)

	sort.SliceStable(out, func(i, j int) bool {
		switch by {
		case SortByTotal:
			return out[i].TotalBytes > out[j].TotalBytes
		case SortByIP:
			return compareIP(out[i].IP, out[j].IP) > 0
		default:
			return out[i].BytesPerSec > out[j].BytesPerSec
		}
	})
	return out
}

// compareIP orders addresses numerically, falling back to string order
// for anything that doesn't parse.
func compareIP(a, b string) int {
	ipA, errA := netip.ParseAddr(a)
	ipB, errB := netip.ParseAddr(b)
	if errA != nil || errB != nil {
		switch {
		case a > b:
			return 1
		case a < b:
			return -1
		}
		return 0
	}
	return ipA.Compare(ipB)
}

// BuildTable lays out records (already sorted) for display in unit.
// Full mode shows IP, MAC, name, current rate and total; summary mode drops
// the MAC column and truncates names so the table fits narrow terminals.
func BuildTable(records []HostRecord, names Directory, unit string, summary bool) Table {
	unit, factor := ResolveUnit(unit)

	var t Table
	if summary {
		t.Columns = []ui.TableColumn{
			{Title: "IP"},
			{Title: "Name"},
			{Title: fmt.Sprintf("Cur(%sps)", unit), AlignRight: true},
			{Title: fmt.Sprintf("Tot(%s)", unit), AlignRight: true},
		}
	} else {
		t.Columns = []ui.TableColumn{
			{Title: "IP"},
			{Title: "MAC"},
			{Title: "Name"},
			{Title: fmt.Sprintf("Current (%sps)", unit), AlignRight: true},
			{Title: fmt.Sprintf("Total (%s)", unit), AlignRight: true},
		}
	}

	t.Rows = make([][]string, 0, len(records))
	for _, r := range records {
		name, ok := names.Name(r.MAC)
		if !ok || name == "" {
			name = "-"
		}
		rate := strconv.FormatFloat(round2(r.BytesPerSec*factor), 'f', 2, 64)
		total := strconv.FormatInt(int64(float64(r.TotalBytes)*factor), 10)

		if summary {
			t.Rows = append(t.Rows, []string{r.IP, truncate(name, SummaryNameWidth), rate, total})
			continue
		}
		t.Rows = append(t.Rows, []string{r.IP, r.MAC, name, rate, total})
	}
	return t
}

// truncate cuts s to at most n runes.
func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}
