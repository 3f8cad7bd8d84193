package extract

type findingKey struct {
	text string
	line int
}

// dedup keeps the first finding of each (text, line) pair.
// Two distinct occurrences of the same text on one line are collapsed too.
// Output compatibility depends on this, so a column isn't part of the key.
func dedup(findings []*Finding) []*Finding {
	seen := make(map[findingKey]struct{}, len(findings))
	ret := make([]*Finding, 0, len(findings))
	for _, finding := range findings {
		key := findingKey{text: finding.Text, line: finding.Line}
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		ret = append(ret, finding)
	}
	return ret
}
