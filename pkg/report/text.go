package report

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/fatih/color"
)

const (
	maxPreviewLength   = 60
	maxFindingsPerFile = 10
	ellipsis           = "..."
)

type colorFunc func(a ...any) string

// TextWriter writes a human-readable report.
type TextWriter struct {
	out    io.Writer
	bold   colorFunc
	yellow colorFunc
	faint  colorFunc
}

func NewTextWriter(out io.Writer) *TextWriter {
	return &TextWriter{
		out:    out,
		bold:   color.New(color.Bold).SprintFunc(),
		yellow: color.New(color.FgYellow).SprintFunc(),
		faint:  color.New(color.Faint).SprintFunc(),
	}
}

func (w *TextWriter) Write(r *TreeReport) error {
	for _, file := range r.Files {
		if err := w.printf("%s (%d)\n", w.bold(file.Path), len(file.Findings)); err != nil {
			return err
		}
		for i, finding := range file.Findings {
			if i == maxFindingsPerFile {
				if err := w.printf("  %s\n", w.faint(fmt.Sprintf("... and %d more", len(file.Findings)-maxFindingsPerFile))); err != nil {
					return err
				}
				break
			}
			if err := w.printf("  L%d: %s\n", finding.Line, w.yellow(Preview(finding.Text))); err != nil {
				return err
			}
		}
	}
	return w.printf("Total: %d files, %d findings\n", len(r.Files), r.FindingCount())
}

func (w *TextWriter) printf(format string, a ...any) error {
	if _, err := fmt.Fprintf(w.out, format, a...); err != nil {
		return fmt.Errorf("write a report: %w", err)
	}
	return nil
}

// Preview returns text on a single line and cut to at most 60 characters.
func Preview(text string) string {
	s := strings.Join(strings.Fields(text), " ")
	if utf8.RuneCountInString(s) <= maxPreviewLength {
		return s
	}
	runes := []rune(s)
	return string(runes[:maxPreviewLength-len(ellipsis)]) + ellipsis
}
