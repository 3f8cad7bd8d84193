// Package scan implements 'i18nscan run'.
// It walks a directory tree, extracts hardcoded text from every eligible file
// and writes the aggregated report.
package scan

import (
	"errors"
	"io"

	"github.com/spf13/afero"
	"github.com/suzuki-shunsuke/i18nscan/pkg/extract"
)

// ErrHardcodedText is returned by Run in check mode when hardcoded text is found.
var ErrHardcodedText = errors.New("hardcoded text is found")

type Extractor interface {
	Extract(content string) []*extract.Finding
}

type Controller struct {
	fs        afero.Fs
	extractor Extractor
	param     *Param
}

type Param struct {
	Root        string
	ExcludeDirs []string
	Extensions  []string
	// IgnoreFiles are glob patterns of paths relative to Root. "**" matches any number of directories.
	IgnoreFiles []string
	Format      string
	Parallelism int
	Check       bool
	Version     string
	Stdout      io.Writer
}

func New(fs afero.Fs, extractor Extractor, param *Param) *Controller {
	return &Controller{
		fs:        fs,
		extractor: extractor,
		param:     param,
	}
}
