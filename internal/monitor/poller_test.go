package monitor

import (
	"context"
	"testing"
	"time"

	"github.com/rileyhilliard/sherry/internal/errors"
	"github.com/rileyhilliard/sherry/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestPoller(device *fakeDevice, surface *fakeSurface, view ViewState) (*Poller, *logger.BufferLogger) {
	log := logger.NewBufferLogger()
	sess := NewSession(view, time.Second)
	p := NewPoller(device, NewDashboard(surface, "192.168.1.1"), sess, log)
	p.sleep = func(ctx context.Context, d time.Duration) error { return ctx.Err() }
	return p, log
}

func TestPoller_StepOrder(t *testing.T) {
	device := &fakeDevice{
		snapshots: []*Snapshot{NewSnapshot(HostRecord{IP: "10.0.0.1", TotalBytes: 100})},
		hostnames: Directory{"m1": "laptop"},
	}
	surface := &fakeSurface{}
	p, _ := newTestPoller(device, surface, NewViewState(DefaultUnit, SortByRate, false, true))

	p.Step(context.Background())

	assert.Equal(t, []string{"reset", "hostnames", "stats"}, device.calls)
	sess := p.Session()
	assert.False(t, sess.View.PendingReset)
	assert.False(t, sess.View.PendingHostnames)
	assert.Equal(t, Directory{"m1": "laptop"}, sess.Hostnames)
	require.NotNil(t, sess.Baseline)
	assert.Equal(t, 1, sess.Baseline.Len())
	assert.Len(t, surface.frames, 1)
}

func TestPoller_StepWithoutPendingWork(t *testing.T) {
	device := &fakeDevice{}
	surface := &fakeSurface{}
	view := NewViewState(DefaultUnit, SortByRate, false, false)
	view.PendingHostnames = false
	p, _ := newTestPoller(device, surface, view)

	p.Step(context.Background())

	assert.Equal(t, []string{"stats"}, device.calls)
}

func TestPoller_RatesAcrossCycles(t *testing.T) {
	device := &fakeDevice{
		snapshots: []*Snapshot{
			NewSnapshot(HostRecord{IP: "10.0.0.1", TotalBytes: 1000}),
			NewSnapshot(HostRecord{IP: "10.0.0.1", TotalBytes: 3048}),
		},
	}
	surface := &fakeSurface{}
	view := NewViewState("B", SortByRate, false, false)
	p, _ := newTestPoller(device, surface, view)
	p.session.Interval = 2 * time.Second

	p.Step(context.Background())
	p.Step(context.Background())

	require.Len(t, surface.frames, 2)
	assert.Contains(t, surface.frames[0], "0.00")
	assert.Contains(t, surface.frames[1], "1024.00")

	baseline, _ := p.Session().Baseline.Get("10.0.0.1")
	assert.Equal(t, int64(3048), baseline.TotalBytes)
	assert.Zero(t, baseline.BytesPerSec, "baseline keeps the raw snapshot")
}

func TestPoller_ResetClearsBaseline(t *testing.T) {
	device := &fakeDevice{
		snapshots: []*Snapshot{
			NewSnapshot(HostRecord{IP: "10.0.0.1", TotalBytes: 5000}),
			NewSnapshot(HostRecord{IP: "10.0.0.1", TotalBytes: 40}),
		},
	}
	surface := &fakeSurface{keys: []string{"r"}, confirms: []bool{true}}
	view := NewViewState("B", SortByRate, false, false)
	view.PendingHostnames = false
	p, log := newTestPoller(device, surface, view)

	p.Step(context.Background())
	assert.True(t, p.Session().View.PendingReset)

	p.Step(context.Background())

	assert.Equal(t, []string{"stats", "reset", "stats"}, device.calls)
	assert.False(t, p.Session().View.PendingReset)
	assert.Contains(t, surface.frames[1], "0.00")
	assert.True(t, log.HasLevel("info"))
}

func TestPoller_ResetFailure(t *testing.T) {
	device := &fakeDevice{
		snapshots: []*Snapshot{NewSnapshot(HostRecord{IP: "10.0.0.1", TotalBytes: 10})},
		resetErr:  errors.New(errors.ErrDevice, "reset rejected", ""),
	}
	surface := &fakeSurface{}
	p, log := newTestPoller(device, surface, NewViewState(DefaultUnit, SortByRate, false, true))
	p.session.Baseline = NewSnapshot(HostRecord{IP: "10.0.0.1", TotalBytes: 1})

	p.Step(context.Background())

	assert.False(t, p.Session().View.PendingReset)
	assert.True(t, log.HasLevel("error"))
	assert.Contains(t, device.calls, "stats")

	r, _ := p.Session().Baseline.Get("10.0.0.1")
	assert.Equal(t, int64(10), r.TotalBytes)
	assert.Contains(t, surface.frames[0], "0.00", "rate restarts from zero")
}

func TestPoller_HostnamesNotReady(t *testing.T) {
	partial := Directory{"m1": "laptop", "m2": NotReadyHostname}
	device := &fakeDevice{
		hostnames: partial,
		hostErr:   errors.New(errors.ErrDevice, "hostname table not ready", ""),
	}
	surface := &fakeSurface{}
	p, log := newTestPoller(device, surface, NewViewState(DefaultUnit, SortByRate, false, false))

	p.Step(context.Background())

	assert.Equal(t, partial, p.Session().Hostnames)
	assert.False(t, p.Session().View.PendingHostnames)
	assert.True(t, log.HasLevel("warn"))
}

func TestPoller_HostnamesFailureKeepsDirectory(t *testing.T) {
	device := &fakeDevice{hostErr: errUnreachable}
	surface := &fakeSurface{}
	p, _ := newTestPoller(device, surface, NewViewState(DefaultUnit, SortByRate, false, false))
	p.session.Hostnames = Directory{"m1": "laptop"}

	p.Step(context.Background())

	assert.Equal(t, Directory{"m1": "laptop"}, p.Session().Hostnames)
}

func TestPoller_StatsFailureSkipsCycle(t *testing.T) {
	device := &fakeDevice{
		snapshots: []*Snapshot{NewSnapshot(HostRecord{IP: "10.0.0.1", TotalBytes: 10})},
		statsErrs: []error{nil, errUnreachable, nil},
	}
	surface := &fakeSurface{}
	view := NewViewState(DefaultUnit, SortByRate, false, false)
	view.PendingHostnames = false
	p, log := newTestPoller(device, surface, view)

	p.Step(context.Background())
	require.NotNil(t, p.Session().Baseline)

	surface.keys = []string{"t"}
	p.Step(context.Background())

	assert.Nil(t, p.Session().Baseline)
	assert.True(t, log.HasLevel("error"))
	require.Len(t, surface.frames, 2)
	assert.Contains(t, surface.frames[1], "10.0.0.1", "last table stays up")
	assert.Contains(t, surface.frames[1], "connection refused")
	assert.Equal(t, SortByTotal, p.Session().View.SortKey, "keys are still read")

	p.Step(context.Background())
	assert.NotNil(t, p.Session().Baseline)
	assert.NotContains(t, surface.lastFrame(), "connection refused")
}

func TestPoller_RunQuits(t *testing.T) {
	device := &fakeDevice{}
	surface := &fakeSurface{keys: []string{"", "", "q"}}
	p, _ := newTestPoller(device, surface, NewViewState(DefaultUnit, SortByRate, false, false))

	var sleeps int
	p.sleep = func(ctx context.Context, d time.Duration) error {
		sleeps++
		assert.Equal(t, time.Second, d)
		return nil
	}

	err := p.Run(context.Background())

	require.NoError(t, err)
	assert.Len(t, surface.frames, 3)
	assert.Equal(t, 2, sleeps, "no sleep after quitting")
	assert.False(t, p.Session().View.Running)
}

func TestPoller_RunCancelled(t *testing.T) {
	device := &fakeDevice{}
	surface := &fakeSurface{}
	p, _ := newTestPoller(device, surface, NewViewState(DefaultUnit, SortByRate, false, false))

	ctx, cancel := context.WithCancel(context.Background())
	p.sleep = func(ctx context.Context, d time.Duration) error {
		cancel()
		return sleepContext(ctx, d)
	}

	err := p.Run(ctx)

	assert.ErrorIs(t, err, context.Canceled)
	assert.Len(t, surface.frames, 1)
}

func TestPoller_RunAlreadyCancelled(t *testing.T) {
	device := &fakeDevice{}
	p, _ := newTestPoller(device, &fakeSurface{}, NewViewState(DefaultUnit, SortByRate, false, false))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.ErrorIs(t, p.Run(ctx), context.Canceled)
	assert.Empty(t, device.calls)
}

func TestNewSession_ClampsInterval(t *testing.T) {
	view := NewViewState(DefaultUnit, SortByRate, false, false)

	assert.Equal(t, MinInterval, NewSession(view, 100*time.Millisecond).Interval)
	assert.Equal(t, MinInterval, NewSession(view, 0).Interval)
	assert.Equal(t, 2*time.Second, NewSession(view, 2*time.Second).Interval)
}

func TestNewViewState(t *testing.T) {
	v := NewViewState("mB", SortByIP, true, true)

	assert.True(t, v.Running)
	assert.True(t, v.PendingHostnames)
	assert.True(t, v.PendingReset)
	assert.True(t, v.Summary)
	assert.Equal(t, "mB", v.Unit)
	assert.Equal(t, SortByIP, v.SortKey)
}

func TestSleepContext(t *testing.T) {
	assert.NoError(t, sleepContext(context.Background(), time.Millisecond))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.ErrorIs(t, sleepContext(ctx, time.Hour), context.Canceled)
}

func TestNewPoller_NilLogger(t *testing.T) {
	p := NewPoller(&fakeDevice{}, NewDashboard(&fakeSurface{}, "router"), newTestSession(), nil)
	assert.NotPanics(t, func() { p.Step(context.Background()) })
}
