package extract

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
)

// DefaultScripts is the target script when nothing is configured.
var DefaultScripts = []string{"Han"} //nolint:gochecknoglobals

// ScriptClass returns a regular expression character class matching one
// character of any of the given Unicode scripts.
// Script names are keys of unicode.Scripts such as "Han", "Hiragana" and "Hangul".
func ScriptClass(scripts []string) (string, error) {
	if len(scripts) == 0 {
		return "", errors.New("at least one script is required")
	}
	b := &strings.Builder{}
	b.WriteString("[")
	for _, script := range scripts {
		if _, ok := unicode.Scripts[script]; !ok {
			return "", fmt.Errorf("unknown Unicode script: %q", script)
		}
		b.WriteString(`\p{` + script + `}`)
	}
	b.WriteString("]")
	return b.String(), nil
}
