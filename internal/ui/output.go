package ui

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/corpeningc/compare-rows/internal/compare"
	"github.com/dustin/go-humanize/english"
)

// Printer writes styled messages on four channels: success, info, log and
// error.
type Printer struct {
	out io.Writer

	successStyle lipgloss.Style
	infoStyle    lipgloss.Style
	logStyle     lipgloss.Style
	errorStyle   lipgloss.Style
}

func NewPrinter(out io.Writer) *Printer {
	r := lipgloss.NewRenderer(out)

	return &Printer{
		out: out,

		successStyle: r.NewStyle().
			Foreground(lipgloss.Color("2")).
			Bold(true),

		infoStyle: r.NewStyle().
			Foreground(lipgloss.Color("6")).
			Bold(true),

		logStyle: r.NewStyle().
			Foreground(lipgloss.Color("7")).
			Bold(true),

		errorStyle: r.NewStyle().
			Foreground(lipgloss.Color("1")).
			Bold(true),
	}
}

func (p *Printer) Success(format string, args ...any) {
	p.line(p.successStyle, "✔ ", format, args...)
}

func (p *Printer) Info(format string, args ...any) {
	p.line(p.infoStyle, "i ", format, args...)
}

func (p *Printer) Log(format string, args ...any) {
	p.line(p.logStyle, " ", format, args...)
}

func (p *Printer) Error(format string, args ...any) {
	p.line(p.errorStyle, "x ", format, args...)
}

func (p *Printer) Blank() {
	fmt.Fprintln(p.out)
}

func (p *Printer) line(style lipgloss.Style, prefix, format string, args ...any) {
	fmt.Fprintln(p.out, style.Render(prefix+fmt.Sprintf(format, args...)))
}

// LineCount reports how many lines were read from path.
func (p *Printer) LineCount(n int, path string) {
	p.Info("%s", lineCountMessage(n, path))
}

// Summary reports the size of each result set.
func (p *Printer) Summary(res compare.Result, pathA, pathB string) {
	p.Success("RESULTS:")
	p.Success("========")
	for _, msg := range summaryMessages(res, pathA, pathB) {
		p.Success("%s", msg)
	}
}

// PrintResults writes the three result sets as JSON arrays.
func (p *Printer) PrintResults(res compare.Result, pathA, pathB string) error {
	for _, s := range resultSections(res, pathA, pathB) {
		body, err := formatRows(s.rows)
		if err != nil {
			return err
		}
		p.Success("%s", s.title)
		fmt.Fprintln(p.out, body)
		p.Blank()
	}
	return nil
}

func (p *Printer) Saved(paths ...string) {
	p.Success("The following %s been successfully saved:", english.Plural(len(paths), "file has", "files have"))
	for _, path := range paths {
		p.Success("  - %s", path)
	}
}

func lineCountMessage(n int, path string) string {
	return fmt.Sprintf("%s found in %s.", english.Plural(n, "line", "lines"), path)
}

func rowsPhrase(n int, kind string) string {
	if n == 0 {
		return fmt.Sprintf("No %s rows", kind)
	}
	return english.Plural(n, kind+" row", kind+" rows")
}

func summaryMessages(res compare.Result, pathA, pathB string) []string {
	return []string{
		fmt.Sprintf("   - %s found.", rowsPhrase(len(res.Common), "common")),
		fmt.Sprintf("   - %s found in %s.", rowsPhrase(len(res.DiffA), "different"), pathA),
		fmt.Sprintf("   - %s found in %s.", rowsPhrase(len(res.DiffB), "different"), pathB),
	}
}

func resultSections(res compare.Result, pathA, pathB string) []section {
	return []section{
		{title: "COMMON ROWS:", rows: res.Common},
		{title: fmt.Sprintf("DIFFERENT ROWS IN FILE %s:", pathA), rows: res.DiffA},
		{title: fmt.Sprintf("DIFFERENT ROWS IN FILE %s:", pathB), rows: res.DiffB},
	}
}

func formatRows(rows []string) (string, error) {
	if rows == nil {
		rows = []string{}
	}
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(rows); err != nil {
		return "", err
	}
	return string(bytes.TrimSuffix(buf.Bytes(), []byte("\n"))), nil
}
