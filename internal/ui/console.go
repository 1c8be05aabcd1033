package ui

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// ConsoleSurface prints each frame as plain text. It is used when stdin or
// stdout is not a terminal, so it never sees key presses.
type ConsoleSurface struct {
	out    io.Writer
	in     *bufio.Reader
	frames int
}

// NewConsoleSurface creates a console surface. in may be nil, in which
// case prompts are answered with the zero value.
func NewConsoleSurface(in io.Reader, out io.Writer) *ConsoleSurface {
	s := &ConsoleSurface{out: out}
	if in != nil {
		s.in = bufio.NewReader(in)
	}
	return s
}

// Clear separates frames with a blank line.
func (s *ConsoleSurface) Clear() {
	if s.frames > 0 {
		fmt.Fprintln(s.out)
	}
}

// Render prints the table. The help line is only useful with a keyboard
// attached, so it is dropped.
func (s *ConsoleSurface) Render(table, _ string) {
	s.frames++
	fmt.Fprintln(s.out, table)
}

// ReadKey never has input.
func (s *ConsoleSurface) ReadKey() (string, error) {
	return "", nil
}

// Confirm reads a y/n answer from the input stream.
func (s *ConsoleSurface) Confirm(prompt string) (bool, error) {
	answer, err := s.ReadLine(prompt + " [y/N]")
	if err != nil {
		return false, err
	}
	switch strings.ToLower(answer) {
	case "y", "yes":
		return true, nil
	}
	return false, nil
}

// ReadLine reads one line from the input stream.
func (s *ConsoleSurface) ReadLine(prompt string) (string, error) {
	fmt.Fprintf(s.out, "%s: ", prompt)
	if s.in == nil {
		fmt.Fprintln(s.out)
		return "", nil
	}

	line, err := s.in.ReadString('\n')
	if err != nil && (err != io.EOF || line == "") {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// Frames returns how many frames have been printed.
func (s *ConsoleSurface) Frames() int {
	return s.frames
}

// Teardown is a no-op.
func (s *ConsoleSurface) Teardown() error {
	return nil
}
