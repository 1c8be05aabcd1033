package monitor

import "time"

// MinInterval is the shortest poll interval the device tolerates.
const MinInterval = 500 * time.Millisecond

// ViewState is the dashboard's user-controlled state.
type ViewState struct {
	SortKey SortKey
	Unit    string
	Summary bool
	Running bool

	// PendingReset asks the poller to reset device counters next cycle.
	PendingReset bool
	// PendingHostnames asks the poller to refetch the hostname table next cycle.
	PendingHostnames bool
}

// NewViewState returns the state a dashboard starts in. Hostnames are
// always fetched on the first cycle.
func NewViewState(unit string, sortKey SortKey, summary, resetOnStart bool) ViewState {
	return ViewState{
		SortKey:          sortKey,
		Unit:             unit,
		Summary:          summary,
		Running:          true,
		PendingReset:     resetOnStart,
		PendingHostnames: true,
	}
}

// Session is everything one polling session carries between cycles.
type Session struct {
	View      ViewState
	Baseline  *Snapshot
	Hostnames Directory
	Interval  time.Duration
}

// NewSession creates a session, raising interval to MinInterval if needed.
func NewSession(view ViewState, interval time.Duration) *Session {
	if interval < MinInterval {
		interval = MinInterval
	}
	return &Session{
		View:      view,
		Hostnames: Directory{},
		Interval:  interval,
	}
}
