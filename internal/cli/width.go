package cli

import (
	"io"
	"os"

	"golang.org/x/term"
)

const (
	// DefaultWidth is the display width used when the output is not a terminal.
	DefaultWidth = 100
	// MinWidth and MaxWidth bound the width taken from the terminal.
	MinWidth = 60
	MaxWidth = 160
)

// DisplayWidth returns the width of the terminal behind out, clamped to
// [MinWidth, MaxWidth], or DefaultWidth when out is not a terminal.
func DisplayWidth(out io.Writer) int {
	file, ok := out.(*os.File)
	if !ok {
		return DefaultWidth
	}

	width, _, err := term.GetSize(int(file.Fd())) //nolint:gosec // File descriptors fit in int
	if err != nil {
		return DefaultWidth
	}

	return min(max(width, MinWidth), MaxWidth)
}
