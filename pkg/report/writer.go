package report

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/goccy/go-yaml"
	"github.com/suzuki-shunsuke/i18nscan/pkg/extract"
	"github.com/suzuki-shunsuke/i18nscan/pkg/sarif"
)

const (
	FormatText  = "text"
	FormatJSON  = "json"
	FormatYAML  = "yaml"
	FormatSARIF = "sarif"
)

// Formats are the supported output formats.
var Formats = []string{FormatText, FormatJSON, FormatYAML, FormatSARIF} //nolint:gochecknoglobals

// ValidateFormat returns an error if format isn't supported.
// An empty format means text.
func ValidateFormat(format string) error {
	if format == "" {
		return nil
	}
	for _, f := range Formats {
		if f == format {
			return nil
		}
	}
	return fmt.Errorf("format must be one of text, json, yaml, and sarif: %q", format)
}

// Writer writes a TreeReport to out in the given format.
type Writer struct {
	out     io.Writer
	format  string
	version string
}

// NewWriter returns a Writer. version is the tool version embedded in SARIF.
func NewWriter(out io.Writer, format, version string) *Writer {
	if format == "" {
		format = FormatText
	}
	return &Writer{
		out:     out,
		format:  format,
		version: version,
	}
}

func (w *Writer) Write(r *TreeReport) error {
	switch w.format {
	case FormatText:
		return NewTextWriter(w.out).Write(r)
	case FormatJSON:
		return w.writeJSON(r)
	case FormatYAML:
		return w.writeYAML(r)
	case FormatSARIF:
		return w.writeJSON(w.sarifLog(r))
	default:
		return errors.New("unsupported format: " + w.format)
	}
}

func (w *Writer) writeJSON(v any) error {
	encoder := json.NewEncoder(w.out)
	encoder.SetIndent("", "  ")
	encoder.SetEscapeHTML(false)
	if err := encoder.Encode(v); err != nil {
		return fmt.Errorf("encode a report as JSON: %w", err)
	}
	return nil
}

func (w *Writer) writeYAML(r *TreeReport) error {
	b, err := yaml.Marshal(r)
	if err != nil {
		return fmt.Errorf("encode a report as YAML: %w", err)
	}
	if _, err := w.out.Write(b); err != nil {
		return fmt.Errorf("write a report: %w", err)
	}
	return nil
}

var ruleDescriptions = map[string]string{ //nolint:gochecknoglobals
	extract.RuleBracedLiteral:     "Hardcoded text in an interpolated string literal",
	extract.RuleElementText:       "Hardcoded text in an element",
	extract.RuleAttributeValue:    "Hardcoded text in a user-facing attribute",
	extract.RuleGenericAssignment: "Hardcoded text assigned to a variable or attribute",
}

func (w *Writer) sarifLog(r *TreeReport) *sarif.Log {
	ruleIDs := []string{
		extract.RuleBracedLiteral,
		extract.RuleElementText,
		extract.RuleAttributeValue,
		extract.RuleGenericAssignment,
	}
	rules := make([]sarif.Rule, len(ruleIDs))
	for i, id := range ruleIDs {
		rules[i] = sarif.Rule{
			ID:                   id,
			ShortDescription:     sarif.Message{Text: ruleDescriptions[id]},
			DefaultConfiguration: &sarif.ReportingDescriptor{Level: sarif.LevelWarning},
		}
	}
	return sarif.NewLog(sarif.Driver{
		Name:           "i18nscan",
		InformationURI: "https://github.com/suzuki-shunsuke/i18nscan",
		Version:        w.version,
		Rules:          rules,
	}, sarifResults(r))
}

func sarifResults(r *TreeReport) []sarif.Result {
	results := make([]sarif.Result, 0, r.FindingCount())
	for _, file := range r.Files {
		for _, finding := range file.Findings {
			results = append(results, sarif.Result{
				RuleID:  finding.Rule,
				Level:   sarif.LevelWarning,
				Message: sarif.Message{Text: "Hardcoded text should be externalized for translation: " + Preview(finding.Text)},
				Locations: []sarif.Location{
					{
						PhysicalLocation: sarif.PhysicalLocation{
							ArtifactLocation: sarif.ArtifactLocation{
								URI:       file.Path,
								URIBaseID: "SRCROOT",
							},
							Region: sarif.Region{
								StartLine: finding.Line,
								Snippet:   &sarif.Snippet{Text: finding.Text},
							},
						},
					},
				},
				Properties: map[string]string{
					"category": finding.Category,
				},
			})
		}
	}
	return results
}
