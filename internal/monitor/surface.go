package monitor

// Surface is what the dashboard draws on and reads commands from.
// The interactive terminal and the headless console fallback both satisfy it.
type Surface interface {
	// Clear wipes whatever was drawn last.
	Clear()

	// Render draws the table with the help line underneath.
	Render(table, help string)

	// ReadKey returns the next pending key press without blocking.
	// An empty string means nothing was pressed.
	ReadKey() (string, error)

	// Confirm blocks on a yes/no question.
	Confirm(prompt string) (bool, error)

	// ReadLine blocks until a line of text is entered.
	ReadLine(prompt string) (string, error)

	// Teardown gives the terminal back. Safe to call more than once.
	Teardown() error
}
