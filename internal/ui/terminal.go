package ui

import (
	stderrors "errors"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/muesli/cancelreader"
	"github.com/muesli/termenv"
	"github.com/rileyhilliard/sherry/internal/errors"
	"golang.org/x/term"
)

// keyBuffer bounds how many unread key presses are kept between polls.
const keyBuffer = 16

// TerminalSurface draws the dashboard on the alternate screen of an
// interactive terminal and reads single key presses without blocking.
type TerminalSurface struct {
	in  *os.File
	out *termenv.Output
	fd  int

	mu      sync.Mutex
	state   *term.State
	reader  cancelreader.CancelReader
	keys    chan string
	done    chan struct{}
	readErr error
}

// NewTerminalSurface switches in to raw mode, enters the alternate screen
// and starts reading keys. Call Teardown to undo all of it.
func NewTerminalSurface(in, out *os.File) (*TerminalSurface, error) {
	s := &TerminalSurface{
		in:   in,
		out:  termenv.NewOutput(out),
		fd:   int(in.Fd()),
		keys: make(chan string, keyBuffer),
	}

	if err := s.resume(); err != nil {
		return nil, err
	}
	s.out.AltScreen()
	s.out.HideCursor()

	return s, nil
}

// Clear erases the screen and homes the cursor.
func (s *TerminalSurface) Clear() {
	s.out.ClearScreen()
}

// Render writes the table and help line. Raw mode does not translate
// newlines, so each line is ended explicitly.
func (s *TerminalSurface) Render(table, help string) {
	body := table + "\n\n" + help + "\n"
	_, _ = io.WriteString(s.out, strings.ReplaceAll(body, "\n", "\r\n"))
}

// ReadKey returns the oldest unread key press, or "" when there is none.
func (s *TerminalSurface) ReadKey() (string, error) {
	select {
	case k := <-s.keys:
		return k, nil
	default:
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	return "", s.readErr
}

// Confirm pauses key reading and asks a yes/no question.
func (s *TerminalSurface) Confirm(prompt string) (bool, error) {
	var ok bool
	err := s.blocking(func() error {
		var err error
		ok, err = Confirm(s.in, s.out, prompt)
		return err
	})
	return ok, err
}

// ReadLine pauses key reading and asks for one line of text.
func (s *TerminalSurface) ReadLine(prompt string) (string, error) {
	var line string
	err := s.blocking(func() error {
		var err error
		line, err = Input(s.in, s.out, prompt)
		return err
	})
	return line, err
}

// Teardown stops the key reader and restores the terminal.
func (s *TerminalSurface) Teardown() error {
	s.stopReader()

	s.out.ShowCursor()
	s.out.ExitAltScreen()

	s.mu.Lock()
	state := s.state
	s.state = nil
	s.mu.Unlock()

	if state == nil {
		return nil
	}
	if err := term.Restore(s.fd, state); err != nil {
		return errors.WrapWithCode(err, errors.ErrTerminal,
			"Couldn't restore the terminal",
			"Run `reset` to fix the terminal")
	}
	return nil
}

// blocking runs fn with the terminal back in cooked mode.
func (s *TerminalSurface) blocking(fn func() error) error {
	s.stopReader()

	s.mu.Lock()
	state := s.state
	s.state = nil
	s.mu.Unlock()
	if state != nil {
		_ = term.Restore(s.fd, state)
	}
	s.drainKeys()

	err := fn()

	if rerr := s.resume(); rerr != nil && err == nil {
		err = rerr
	}
	return err
}

// resume enters raw mode and starts the key reader.
func (s *TerminalSurface) resume() error {
	state, err := term.MakeRaw(s.fd)
	if err != nil {
		return errors.WrapWithCode(err, errors.ErrTerminal,
			"Couldn't switch the terminal to raw mode",
			"Run sherry from an interactive terminal, or pipe its output to use the plain console")
	}

	reader, err := cancelreader.NewReader(s.in)
	if err != nil {
		_ = term.Restore(s.fd, state)
		return errors.WrapWithCode(err, errors.ErrTerminal,
			"Couldn't read from the terminal",
			"Run sherry from an interactive terminal")
	}

	done := make(chan struct{})

	s.mu.Lock()
	s.state = state
	s.reader = reader
	s.done = done
	s.readErr = nil
	s.mu.Unlock()

	go s.readLoop(reader, done)
	return nil
}

func (s *TerminalSurface) readLoop(r cancelreader.CancelReader, done chan struct{}) {
	defer close(done)

	buf := make([]byte, 64)
	for {
		n, err := r.Read(buf)
		for _, k := range decodeKeys(buf[:n]) {
			select {
			case s.keys <- k:
			default:
				// Full: the user is typing faster than we poll.
			}
		}
		if err != nil {
			if !stderrors.Is(err, cancelreader.ErrCanceled) {
				s.mu.Lock()
				s.readErr = errors.WrapWithCode(err, errors.ErrTerminal,
					"Lost the terminal input", "")
				s.mu.Unlock()
			}
			return
		}
	}
}

// stopReader cancels the key reader and waits for it to exit.
func (s *TerminalSurface) stopReader() {
	s.mu.Lock()
	reader, done := s.reader, s.done
	s.reader, s.done = nil, nil
	s.mu.Unlock()

	if reader == nil {
		return
	}
	reader.Cancel()
	<-done
	_ = reader.Close()
}

func (s *TerminalSurface) drainKeys() {
	for {
		select {
		case <-s.keys:
		default:
			return
		}
	}
}
