package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
	"github.com/mattn/go-runewidth"

	"github.com/idelchi/dirsize/internal/dirsize"
)

const (
	// SizeWidth is the column width of the right-aligned size.
	SizeWidth = 12
	// BarWidth is the number of cells of a full chart bar.
	BarWidth = 40

	iconWidth  = 3 // marker + space
	spacing    = 2
	chartWidth = BarWidth + 2 // brackets

	dirIcon  = "📁"
	fileIcon = "📄"
	rule     = "═"
	barCell  = "█"
)

// styles holds the colors of the text views. A renderer writing to anything
// but a color terminal produces plain text.
type styles struct {
	rule  lipgloss.Style
	label lipgloss.Style
	path  lipgloss.Style
	total lipgloss.Style
	count lipgloss.Style
	empty lipgloss.Style
	dir   lipgloss.Style
	file  lipgloss.Style
	size  lipgloss.Style
	dBar  lipgloss.Style
	fBar  lipgloss.Style
}

func newStyles(writer io.Writer) styles {
	r := lipgloss.NewRenderer(writer)

	return styles{
		rule:  r.NewStyle().Foreground(lipgloss.Color("6")).Bold(true),
		label: r.NewStyle().Foreground(lipgloss.Color("2")).Bold(true),
		path:  r.NewStyle().Foreground(lipgloss.Color("3")),
		total: r.NewStyle().Foreground(lipgloss.Color("6")).Bold(true),
		count: r.NewStyle().Foreground(lipgloss.Color("3")).Bold(true),
		empty: r.NewStyle().Foreground(lipgloss.Color("3")),
		dir:   r.NewStyle().Foreground(lipgloss.Color("4")).Bold(true),
		file:  r.NewStyle().Foreground(lipgloss.Color("7")),
		size:  r.NewStyle().Foreground(lipgloss.Color("6")),
		dBar:  r.NewStyle().Foreground(lipgloss.Color("4")),
		fBar:  r.NewStyle().Foreground(lipgloss.Color("2")),
	}
}

// PrintJSON outputs a report or a summary in JSON format.
func PrintJSON(value any, writer io.Writer) error {
	data, err := json.MarshalIndent(value, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding JSON output: %w", err)
	}

	if _, err := fmt.Fprintln(writer, string(data)); err != nil {
		return err
	}

	return nil
}

// PrintSummary outputs the path, total size and item count of a report.
func PrintSummary(report *dirsize.Report, writer io.Writer, width int) error {
	s := newStyles(writer)
	line := s.rule.Render(strings.Repeat(rule, width))

	var b strings.Builder

	fmt.Fprintln(&b, line)
	fmt.Fprintln(&b, s.label.Render("Directory:"), s.path.Render(report.Path))
	fmt.Fprintln(&b, s.label.Render("Total size:"), s.total.Render(humanize.IBytes(report.TotalSize)))
	fmt.Fprintln(&b, s.label.Render("Items:"), s.count.Render(strconv.Itoa(len(report.Entries))))
	fmt.Fprintln(&b, line)

	_, err := io.WriteString(writer, b.String())

	return err
}

// NameWidth returns the width of the name column for a display width.
func NameWidth(width int, chart bool) int {
	used := iconWidth + SizeWidth + spacing*2
	if chart {
		used += chartWidth
	}

	available := max(width-used, 0)

	if chart {
		return min(max(available, 20), 50)
	}

	return min(max(available, 30), 80)
}

// BarLength scales size against the largest entry to at most BarWidth cells.
func BarLength(size, largest uint64) int {
	if largest == 0 {
		return 0
	}

	return min(int(math.Round(float64(size)/float64(largest)*BarWidth)), BarWidth)
}

// PrintText outputs one line per entry, optionally with a bar chart.
func PrintText(report *dirsize.Report, writer io.Writer, width int, chart bool) error {
	s := newStyles(writer)
	nameWidth := NameWidth(width, chart)

	lineWidth := iconWidth + nameWidth + SizeWidth + spacing*2
	if chart {
		lineWidth += chartWidth
	}

	line := s.rule.Render(strings.Repeat(rule, lineWidth))

	var b strings.Builder

	fmt.Fprintln(&b, line)
	fmt.Fprintln(&b, s.label.Render("Directory:"), s.path.Render(report.Path))
	fmt.Fprintln(&b, s.label.Render("Total size:"), s.total.Render(humanize.IBytes(report.TotalSize)))
	fmt.Fprintln(&b, line)

	if len(report.Entries) == 0 {
		fmt.Fprintln(&b, s.empty.Render("Directory is empty"))

		_, err := io.WriteString(writer, b.String())

		return err
	}

	largest := report.MaxSize()

	for _, entry := range report.Entries {
		icon, nameStyle, barStyle := fileIcon, s.file, s.fBar
		if entry.IsDir {
			icon, nameStyle, barStyle = dirIcon, s.dir, s.dBar
		}

		name := Truncate(entry.Name, nameWidth)
		padding := strings.Repeat(" ", max(nameWidth-runewidth.StringWidth(name), 0))
		size := s.size.Render(fmt.Sprintf("%*s", SizeWidth, humanize.IBytes(entry.Size)))

		fmt.Fprintf(&b, "%s %s%s %s", icon, nameStyle.Render(name), padding, size)

		if chart {
			bar := BarLength(entry.Size, largest)
			fmt.Fprintf(&b, " [%s%s]", barStyle.Render(strings.Repeat(barCell, bar)), strings.Repeat(" ", BarWidth-bar))
		}

		fmt.Fprintln(&b)
	}

	fmt.Fprintln(&b, line)
	fmt.Fprintln(&b, s.label.Render("Total:"), s.count.Render(strconv.Itoa(len(report.Entries))), "items")

	_, err := io.WriteString(writer, b.String())

	return err
}
