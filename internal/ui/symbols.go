package ui

// Unicode symbols for status indicators.
const (
	SymbolSuccess = "✓" // Request succeeded
	SymbolFail    = "✗" // Request failed
	SymbolPending = "○" // Not started
	SymbolSkipped = "⊘" // Skipped by the user
)
