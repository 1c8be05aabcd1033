package doctor

import (
	"context"
	"fmt"
	"time"

	"github.com/rileyhilliard/sherry/internal/errors"
	"github.com/rileyhilliard/sherry/internal/monitor"
)

// Router is the part of the device client the router checks use.
type Router interface {
	Stats(ctx context.Context) (*monitor.Snapshot, error)
	Hostnames(ctx context.Context) (monitor.Directory, error)
}

// StatsCheck verifies the router answers the statistics request.
type StatsCheck struct {
	Router  Router
	Address string

	// now is swapped in tests.
	now func() time.Time
}

func (c *StatsCheck) Name() string     { return "router_stats" }
func (c *StatsCheck) Category() string { return CategoryRouter }

func (c *StatsCheck) Run(ctx context.Context) CheckResult {
	now := c.now
	if now == nil {
		now = time.Now
	}

	start := now()
	snap, err := c.Router.Stats(ctx)
	if err != nil {
		return CheckResult{
			Name:       c.Name(),
			Status:     StatusFail,
			Message:    "Router did not answer: " + errors.Summarize(err),
			Suggestion: "Check that " + c.Address + " is your router and the password is right",
		}
	}

	if snap.Len() == 0 {
		return CheckResult{
			Name:       c.Name(),
			Status:     StatusWarn,
			Message:    "Router answered but reported no hosts",
			Suggestion: "Enable traffic statistics in the router's admin pages",
		}
	}

	return CheckResult{
		Name:    c.Name(),
		Status:  StatusPass,
		Message: fmt.Sprintf("Router reports %d hosts (%s)", snap.Len(), now().Sub(start).Round(time.Millisecond)),
	}
}

// HostnamesCheck verifies the hostname table is populated.
type HostnamesCheck struct {
	Router Router
}

func (c *HostnamesCheck) Name() string     { return "router_hostnames" }
func (c *HostnamesCheck) Category() string { return CategoryRouter }

func (c *HostnamesCheck) Run(ctx context.Context) CheckResult {
	dir, err := c.Router.Hostnames(ctx)
	if err != nil && errors.IsCode(err, errors.ErrDevice) {
		unknown := 0
		for _, name := range dir {
			if name == monitor.NotReadyHostname {
				unknown++
			}
		}
		return CheckResult{
			Name:       c.Name(),
			Status:     StatusWarn,
			Message:    fmt.Sprintf("%d of %d hostnames still unknown", unknown, len(dir)),
			Suggestion: "The router is still discovering hosts; try again in a few seconds",
		}
	}
	if err != nil {
		return CheckResult{
			Name:    c.Name(),
			Status:  StatusFail,
			Message: "Hostname table unavailable: " + errors.Summarize(err),
		}
	}

	return CheckResult{
		Name:    c.Name(),
		Status:  StatusPass,
		Message: fmt.Sprintf("%d hostnames known", len(dir)),
	}
}

// NewRouterChecks returns the checks that talk to the router.
func NewRouterChecks(router Router, address string) []Check {
	return []Check{
		&StatsCheck{Router: router, Address: address},
		&HostnamesCheck{Router: router},
	}
}
