package cli

import (
	"github.com/mattn/go-runewidth"
)

// Ellipsis marks the removed part of a truncated name.
const Ellipsis = "..."

// Truncate shortens name to at most width display columns.
//
// Long names keep their start and end around an ellipsis; when fewer than six
// columns are left for text only the start is kept.
func Truncate(name string, width int) string {
	if runewidth.StringWidth(name) <= width {
		return name
	}

	if width <= len(Ellipsis) {
		return Ellipsis
	}

	runes := []rune(name)
	available := width - len(Ellipsis)

	if available < 6 {
		return string(runes[:prefix(runes, available)]) + Ellipsis
	}

	head := prefix(runes, available/2)
	tail := suffix(runes[head:], available-available/2)

	return string(runes[:head]) + Ellipsis + string(runes[len(runes)-tail:])
}

// prefix returns how many leading runes fit in width columns.
func prefix(runes []rune, width int) int {
	used := 0

	for i, r := range runes {
		used += runewidth.RuneWidth(r)
		if used > width {
			return i
		}
	}

	return len(runes)
}

// suffix returns how many trailing runes fit in width columns.
func suffix(runes []rune, width int) int {
	used := 0

	for i := len(runes) - 1; i >= 0; i-- {
		used += runewidth.RuneWidth(runes[i])
		if used > width {
			return len(runes) - 1 - i
		}
	}

	return len(runes)
}
