package extract

import (
	"sort"
	"strings"
)

const lineCommentMarker = "//"

// lineIndex holds the byte offset where each line starts.
type lineIndex []int

func newLineIndex(content string) lineIndex {
	idx := lineIndex{0}
	for i := range len(content) {
		if content[i] == '\n' {
			idx = append(idx, i+1)
		}
	}
	return idx
}

// line returns the 1-based line number of offset.
func (idx lineIndex) line(offset int) int {
	return sort.Search(len(idx), func(i int) bool {
		return idx[i] > offset
	})
}

// bounds returns the start offset and the end offset (exclusive, without the newline) of a 1-based line.
func (idx lineIndex) bounds(line, size int) (int, int) {
	start := idx[line-1]
	if line < len(idx) {
		return start, idx[line] - 1
	}
	return start, size
}

// commentedOut reports whether the candidate follows a line comment marker on the line where the match starts.
// Block comments and markers inside string literals aren't tracked.
func commentedOut(content string, idx lineIndex, c *Candidate) bool {
	start, end := idx.bounds(idx.line(c.Offset), len(content))
	marker := strings.Index(content[start:end], lineCommentMarker)
	if marker < 0 {
		return false
	}
	if c.TextOffset >= end {
		// the text begins on a later line, which the marker doesn't reach
		return false
	}
	return marker < c.TextOffset-start
}
