package monitor

import (
	"context"
	"errors"
)

// fakeSurface records frames and replays scripted input.
type fakeSurface struct {
	keys      []string
	confirms  []bool
	lines     []string
	promptErr error

	clears   int
	frames   []string
	helps    []string
	prompts  []string
	tornDown bool
}

func (s *fakeSurface) Clear() { s.clears++ }

func (s *fakeSurface) Render(table, help string) {
	s.frames = append(s.frames, table)
	s.helps = append(s.helps, help)
}

func (s *fakeSurface) ReadKey() (string, error) {
	if len(s.keys) == 0 {
		return "", nil
	}
	k := s.keys[0]
	s.keys = s.keys[1:]
	return k, nil
}

func (s *fakeSurface) Confirm(prompt string) (bool, error) {
	s.prompts = append(s.prompts, prompt)
	if s.promptErr != nil {
		return false, s.promptErr
	}
	if len(s.confirms) == 0 {
		return false, nil
	}
	ok := s.confirms[0]
	s.confirms = s.confirms[1:]
	return ok, nil
}

func (s *fakeSurface) ReadLine(prompt string) (string, error) {
	s.prompts = append(s.prompts, prompt)
	if s.promptErr != nil {
		return "", s.promptErr
	}
	if len(s.lines) == 0 {
		return "", nil
	}
	line := s.lines[0]
	s.lines = s.lines[1:]
	return line, nil
}

func (s *fakeSurface) Teardown() error {
	s.tornDown = true
	return nil
}

func (s *fakeSurface) lastFrame() string {
	if len(s.frames) == 0 {
		return ""
	}
	return s.frames[len(s.frames)-1]
}

// fakeDevice serves scripted snapshots and records the calls it gets.
type fakeDevice struct {
	snapshots []*Snapshot
	statsErrs []error
	hostnames Directory
	hostErr   error
	resetErr  error

	calls []string
}

var errUnreachable = errors.New("connection refused")

func (d *fakeDevice) Hostnames(ctx context.Context) (Directory, error) {
	d.calls = append(d.calls, "hostnames")
	return d.hostnames, d.hostErr
}

func (d *fakeDevice) Stats(ctx context.Context) (*Snapshot, error) {
	d.calls = append(d.calls, "stats")

	var err error
	if len(d.statsErrs) > 0 {
		err = d.statsErrs[0]
		d.statsErrs = d.statsErrs[1:]
	}
	if err != nil {
		return nil, err
	}

	if len(d.snapshots) == 0 {
		return NewSnapshot(), nil
	}
	snap := d.snapshots[0]
	if len(d.snapshots) > 1 {
		d.snapshots = d.snapshots[1:]
	}
	return snap, nil
}

func (d *fakeDevice) ResetStats(ctx context.Context) error {
	d.calls = append(d.calls, "reset")
	return d.resetErr
}
