package monitor

import (
	"context"
	"time"

	"github.com/rileyhilliard/sherry/internal/errors"
	"github.com/rileyhilliard/sherry/internal/logger"
)

// Device is the router the poller reads traffic counters from.
type Device interface {
	// Hostnames fetches the MAC to hostname table. When the device is still
	// populating the table it may return a partial directory with an error.
	Hostnames(ctx context.Context) (Directory, error)
	// Stats fetches the per-host traffic counters.
	Stats(ctx context.Context) (*Snapshot, error)
	// ResetStats zeroes the device's traffic counters.
	ResetStats(ctx context.Context) error
}

// Poller runs the fetch, rate, render, sleep loop.
type Poller struct {
	device  Device
	dash    *Dashboard
	session *Session
	log     logger.Logger
	sleep   func(ctx context.Context, d time.Duration) error
}

// NewPoller creates a poller for one session.
func NewPoller(device Device, dash *Dashboard, session *Session, log logger.Logger) *Poller {
	if log == nil {
		log = logger.Noop()
	}
	return &Poller{
		device:  device,
		dash:    dash,
		session: session,
		log:     log,
		sleep:   sleepContext,
	}
}

// Session returns the session the poller drives.
func (p *Poller) Session() *Session {
	return p.session
}

// Run polls until the user quits or ctx is cancelled.
// Cancellation returns ctx.Err(); quitting returns nil.
func (p *Poller) Run(ctx context.Context) error {
	for p.session.View.Running {
		if err := ctx.Err(); err != nil {
			return err
		}

		p.Step(ctx)

		if !p.session.View.Running {
			break
		}
		if err := p.sleep(ctx, p.session.Interval); err != nil {
			return err
		}
	}
	return nil
}

// Step runs a single polling cycle.
func (p *Poller) Step(ctx context.Context) {
	sess := p.session

	if sess.View.PendingReset {
		if err := p.device.ResetStats(ctx); err != nil {
			p.log.Error("reset failed: %s", errors.Summarize(err))
		} else {
			p.log.Info("traffic counters reset")
		}
		sess.Baseline = nil
		sess.View.PendingReset = false
	}

	if sess.View.PendingHostnames {
		dir, err := p.device.Hostnames(ctx)
		if dir != nil {
			sess.Hostnames = dir
		}
		if err != nil {
			p.log.Warn("hostname refresh: %s", errors.Summarize(err))
		} else {
			p.log.Debug("loaded %d hostnames", len(dir))
		}
		sess.View.PendingHostnames = false
	}

	snap, err := p.device.Stats(ctx)
	if err != nil {
		// Skip the cycle but keep the last table up and keep reading keys.
		// The next rate would span more than one interval, so start cold.
		p.log.Error("stats request failed: %s", errors.Summarize(err))
		sess.Baseline = nil
		p.dash.SetNotice(errors.Summarize(err))
		p.dash.Cycle(sess, nil)
		return
	}

	annotated := ComputeRates(sess.Baseline, snap, sess.Interval.Seconds())
	p.log.Debug("fetched %d hosts", annotated.Len())

	p.dash.SetNotice("")
	p.dash.Cycle(sess, annotated)
	sess.Baseline = snap
}

// sleepContext waits for d or until ctx is done.
func sleepContext(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
