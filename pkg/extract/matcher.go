package extract

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"unicode"
)

const (
	RuleBracedLiteral     = "braced-literal"
	RuleElementText       = "element-text"
	RuleAttributeValue    = "attribute-value"
	RuleGenericAssignment = "generic-assignment"
)

// DefaultAttributes are attribute and property names whose quoted values are user-facing text.
var DefaultAttributes = []string{ //nolint:gochecknoglobals
	"placeholder",
	"title",
	"alt",
	"value",
	"defaultValue",
	"confirmText",
	"cancelText",
	"message",
}

var attributeNamePattern = regexp.MustCompile(`^[A-Za-z_][\w-]*$`)

// Candidate is a raw match of a rule before filtering and deduplication.
type Candidate struct {
	Rule string
	// Text is the captured span without surrounding whitespace.
	Text string
	// Offset is the byte offset of the whole match. The line number is derived from it.
	Offset int
	// TextOffset is the byte offset of Text.
	TextOffset int
}

// Rule finds candidates in the content of a file.
// Match must be a pure function of content.
type Rule struct {
	Name  string
	Match func(content string) []*Candidate
}

// NewRules returns the rule table in the order candidates are collected.
// The order decides which rule wins when rules overlap, so it must not change.
// class is a character class built by ScriptClass.
func NewRules(class string, attributes []string) ([]*Rule, error) {
	attrs, err := attributeAlternation(attributes)
	if err != nil {
		return nil, err
	}
	patterns := []struct {
		name    string
		pattern string
	}{
		{
			name:    RuleBracedLiteral,
			pattern: `\{\s*['"]([^'"{}]*` + class + `[^'"{}]*)['"]\s*\}`,
		},
		{
			name:    RuleElementText,
			pattern: `>([^<>]*` + class + `[^<>]*)<`,
		},
		{
			name:    RuleAttributeValue,
			pattern: `\b(?:` + attrs + `)\s*=\s*['"]([^'"]*` + class + `[^'"]*)['"]`,
		},
		{
			name:    RuleGenericAssignment,
			pattern: `=\s*['"]([^'"]*` + class + `[^'"]*)['"]`,
		},
	}
	rules := make([]*Rule, len(patterns))
	for i, p := range patterns {
		re, err := regexp.Compile(p.pattern)
		if err != nil {
			return nil, fmt.Errorf("compile the pattern of the rule %s: %w", p.name, err)
		}
		rules[i] = regexpRule(p.name, re)
	}
	return rules, nil
}

func attributeAlternation(attributes []string) (string, error) {
	if len(attributes) == 0 {
		return "", errors.New("at least one attribute is required")
	}
	names := make([]string, len(attributes))
	for i, attr := range attributes {
		if !attributeNamePattern.MatchString(attr) {
			return "", fmt.Errorf("invalid attribute name: %q", attr)
		}
		names[i] = regexp.QuoteMeta(attr)
	}
	return strings.Join(names, "|"), nil
}

// regexpRule builds a rule from a regular expression whose first group is the payload.
func regexpRule(name string, re *regexp.Regexp) *Rule {
	return &Rule{
		Name: name,
		Match: func(content string) []*Candidate {
			locs := re.FindAllStringSubmatchIndex(content, -1)
			candidates := make([]*Candidate, 0, len(locs))
			for _, loc := range locs {
				raw := content[loc[2]:loc[3]]
				text := strings.TrimSpace(raw)
				if text == "" {
					continue
				}
				leading := len(raw) - len(strings.TrimLeftFunc(raw, unicode.IsSpace))
				candidates = append(candidates, &Candidate{
					Rule:       name,
					Text:       text,
					Offset:     loc[0],
					TextOffset: loc[2] + leading,
				})
			}
			return candidates
		},
	}
}
