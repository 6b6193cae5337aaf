// Package ui - Terminal user interface
// Colored headers, tables, and the estimate summary box.
package ui

import (
	"fmt"
	"io"
	"os"
	"strings"
)

// Colors for terminal output
const (
	Reset  = "\033[0m"
	Bold   = "\033[1m"
	Dim    = "\033[2m"
	Red    = "\033[31m"
	Green  = "\033[32m"
	Yellow = "\033[33m"
	Blue   = "\033[34m"
	Cyan   = "\033[36m"
)

// Writer is the UI output destination
type Writer struct {
	out     io.Writer
	noColor bool
}

// NewWriter creates a UI writer
func NewWriter(out io.Writer, noColor bool) *Writer {
	if out == nil {
		out = os.Stdout
	}
	return &Writer{out: out, noColor: noColor}
}

// color applies color if enabled
func (w *Writer) color(c, text string) string {
	if w.noColor {
		return text
	}
	return c + text + Reset
}

// Print writes formatted output
func (w *Writer) Print(format string, args ...interface{}) {
	fmt.Fprintf(w.out, format, args...)
}

// Println writes a line with newline
func (w *Writer) Println(format string, args ...interface{}) {
	fmt.Fprintf(w.out, format+"\n", args...)
}

// Header prints a section header
func (w *Writer) Header(title string) {
	w.Println("")
	w.Println(w.color(Bold+Cyan, "━━━ "+title+" ━━━"))
	w.Println("")
}

// SubHeader prints a subsection header
func (w *Writer) SubHeader(title string) {
	w.Println(w.color(Bold, "▸ "+title))
}

// Success prints a success message
func (w *Writer) Success(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	w.Println(w.color(Green, "✓ ") + msg)
}

// Warning prints a warning
func (w *Writer) Warning(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	w.Println(w.color(Yellow, "⚠ ") + msg)
}

// Error prints an error
func (w *Writer) Error(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	w.Println(w.color(Red, "✗ ") + msg)
}

// Info prints an info message
func (w *Writer) Info(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	w.Println(w.color(Blue, "ℹ ") + msg)
}

// Dimmed prints de-emphasized detail text
func (w *Writer) Dimmed(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	w.Println(w.color(Dim, "  " + msg))
}

// Table renders a column-aligned table
type Table struct {
	w       *Writer
	headers []string
	rows    [][]string
	widths  []int
}

// NewTable creates a table
func (w *Writer) NewTable(headers ...string) *Table {
	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = len(h)
	}
	return &Table{
		w:       w,
		headers: headers,
		rows:    [][]string{},
		widths:  widths,
	}
}

// AddRow adds a row to the table
func (t *Table) AddRow(cells ...string) {
	row := make([]string, len(t.headers))
	for i := range row {
		if i < len(cells) {
			row[i] = cells[i]
		}
		if len(row[i]) > t.widths[i] {
			t.widths[i] = len(row[i])
		}
	}
	t.rows = append(t.rows, row)
}

// Render prints the table
func (t *Table) Render() {
	format := ""
	for i, w := range t.widths {
		if i > 0 {
			format += " │ "
		}
		format += fmt.Sprintf("%%-%ds", w)
	}
	format += "\n"

	headerArgs := make([]interface{}, len(t.headers))
	for i, h := range t.headers {
		headerArgs[i] = h
	}
	t.w.Print(t.w.color(Bold, fmt.Sprintf(format, headerArgs...)))

	sep := ""
	for i, w := range t.widths {
		if i > 0 {
			sep += "─┼─"
		}
		sep += strings.Repeat("─", w)
	}
	t.w.Println(sep)

	for _, row := range t.rows {
		args := make([]interface{}, len(row))
		for i, cell := range row {
			args[i] = cell
		}
		t.w.Print(format, args...)
	}
}

// EstimateSummary renders the headline figures of a calculation
type EstimateSummary struct {
	w            *Writer
	CrewSize     int
	PackOutHours float64
	PackInHours  float64
	DebrisTons   float64
	Confidence   float64
	Level        string
	NeedsReview  bool
	Rooms        int
}

// NewEstimateSummary creates an estimate summary
func (w *Writer) NewEstimateSummary() *EstimateSummary {
	return &EstimateSummary{w: w}
}

// Render prints the estimate summary
func (s *EstimateSummary) Render() {
	s.w.Header("Packing Estimate Summary")

	s.w.Println(s.w.color(Bold, "╭─────────────────────────────────────╮"))
	s.w.Println(s.w.color(Bold, "│") + s.w.color(Green, fmt.Sprintf("  Pack-out: %6.2f crew-hours       ", s.PackOutHours)) + s.w.color(Bold, "│"))
	s.w.Println(s.w.color(Bold, "│") + s.w.color(Green, fmt.Sprintf("  Pack-in:  %6.2f crew-hours       ", s.PackInHours)) + s.w.color(Bold, "│"))
	s.w.Println(s.w.color(Bold, "│") + s.w.color(Dim, fmt.Sprintf("  Crew of %d, %d rooms               ", s.CrewSize, s.Rooms)) + s.w.color(Bold, "│"))
	s.w.Println(s.w.color(Bold, "╰─────────────────────────────────────╯"))

	s.w.Println("")

	confColor := Green
	confIcon := "●"
	if s.Confidence < 0.8 {
		confColor = Yellow
		confIcon = "◐"
	}
	if s.Confidence < 0.5 {
		confColor = Red
		confIcon = "○"
	}
	s.w.Println(s.w.color(confColor, fmt.Sprintf("%s Confidence: %.0f%% (%s)", confIcon, s.Confidence*100, s.Level)))
	s.w.Dimmed("Debris: %.2f tons", s.DebrisTons)
	if s.NeedsReview {
		s.w.Warning("low confidence, human review recommended")
	}
}
