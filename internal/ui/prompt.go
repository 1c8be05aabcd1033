package ui

import (
	"io"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
)

// Confirm asks a yes/no question on the given streams.
func Confirm(in io.Reader, out io.Writer, title string) (bool, error) {
	var ok bool
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title(title).
				Affirmative("Yes").
				Negative("No").
				Value(&ok),
		),
	).WithProgramOptions(tea.WithInput(in), tea.WithOutput(out))

	if err := form.Run(); err != nil {
		return false, err
	}
	return ok, nil
}

// Input asks for one line of free text on the given streams.
func Input(in io.Reader, out io.Writer, title string) (string, error) {
	var value string
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title(title).
				Value(&value),
		),
	).WithProgramOptions(tea.WithInput(in), tea.WithOutput(out))

	if err := form.Run(); err != nil {
		return "", err
	}
	return value, nil
}
