package util

import "golang.org/x/term"

// TerminalSizer abstracts terminal introspection so callers can substitute a
// mock in tests.
type TerminalSizer interface {
	IsTerminal(fd int) bool
	GetSize(fd int) (width, height int, err error)
}

type termSizer struct{}

func (termSizer) IsTerminal(fd int) bool {
	return term.IsTerminal(fd)
}

func (termSizer) GetSize(fd int) (int, int, error) {
	return term.GetSize(fd)
}

// DefaultSizer introspects the real terminal through golang.org/x/term.
var DefaultSizer TerminalSizer = termSizer{}

// TerminalWidth returns the column count of the terminal attached to fd, or
// fallback when fd is not a terminal or its size cannot be determined.
// Passing a nil sizer selects DefaultSizer.
func TerminalWidth(fd int, fallback int, sizer TerminalSizer) int {
	if sizer == nil {
		sizer = DefaultSizer
	}
	if !sizer.IsTerminal(fd) {
		return fallback
	}

	width, _, err := sizer.GetSize(fd)
	if err != nil || width <= 0 {
		return fallback
	}

	return width
}
