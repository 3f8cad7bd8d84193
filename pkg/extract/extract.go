// Package extract finds hardcoded natural-language text literals in source code.
// It applies an ordered table of line-oriented regular expression rules to the
// content of a file, drops matches after a line comment marker, and collapses
// matches of the same text on the same line into a single Finding.
// It doesn't parse the host language, so results are best effort.
package extract

// CategoryUnknown is the category of every finding until a classifier exists.
const CategoryUnknown = "unknown"

// Finding is a hardcoded text literal found in a file.
type Finding struct {
	Text     string `json:"text" yaml:"text"`
	Line     int    `json:"line" yaml:"line"`
	Category string `json:"category" yaml:"category"`
	Rule     string `json:"rule" yaml:"rule"`
}

// Param configures an Extractor. Empty fields take the defaults.
type Param struct {
	Scripts    []string
	Attributes []string
}

type Extractor struct {
	rules []*Rule
}

// New compiles the rules for the given target scripts and attributes.
func New(param *Param) (*Extractor, error) {
	scripts := param.Scripts
	if len(scripts) == 0 {
		scripts = DefaultScripts
	}
	attributes := param.Attributes
	if len(attributes) == 0 {
		attributes = DefaultAttributes
	}
	class, err := ScriptClass(scripts)
	if err != nil {
		return nil, err
	}
	rules, err := NewRules(class, attributes)
	if err != nil {
		return nil, err
	}
	return NewWithRules(rules), nil
}

// NewWithRules returns an Extractor applying rules in the given order.
func NewWithRules(rules []*Rule) *Extractor {
	return &Extractor{rules: rules}
}

// Extract returns the findings in content, ordered by rule and then by position.
// It never returns nil.
func (e *Extractor) Extract(content string) []*Finding {
	idx := newLineIndex(content)
	findings := []*Finding{}
	for _, rule := range e.rules {
		for _, c := range rule.Match(content) {
			if c.Text == "" || commentedOut(content, idx, c) {
				continue
			}
			findings = append(findings, &Finding{
				Text:     c.Text,
				Line:     idx.line(c.Offset),
				Category: CategoryUnknown,
				Rule:     c.Rule,
			})
		}
	}
	return dedup(findings)
}
