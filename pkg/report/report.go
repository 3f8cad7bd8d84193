// Package report aggregates findings per file and writes them in various formats.
package report

import (
	"sort"

	"github.com/suzuki-shunsuke/i18nscan/pkg/extract"
)

// FileReport is the findings of a file, ordered as the extractor returned them.
type FileReport struct {
	Path     string             `json:"path" yaml:"path"`
	Findings []*extract.Finding `json:"findings" yaml:"findings"`
}

// TreeReport is the findings of a directory tree.
// Files without findings aren't included.
type TreeReport struct {
	Files []*FileReport `json:"files" yaml:"files"`
}

// New builds a TreeReport sorted by path.
// File reports without findings are dropped.
func New(files []*FileReport) *TreeReport {
	ret := make([]*FileReport, 0, len(files))
	for _, file := range files {
		if file == nil || len(file.Findings) == 0 {
			continue
		}
		ret = append(ret, file)
	}
	sort.SliceStable(ret, func(i, j int) bool {
		return ret[i].Path < ret[j].Path
	})
	return &TreeReport{Files: ret}
}

// Get returns the report of a file or nil.
func (r *TreeReport) Get(path string) *FileReport {
	for _, file := range r.Files {
		if file.Path == path {
			return file
		}
	}
	return nil
}

func (r *TreeReport) FindingCount() int {
	n := 0
	for _, file := range r.Files {
		n += len(file.Findings)
	}
	return n
}

func (r *TreeReport) Empty() bool {
	return len(r.Files) == 0
}
