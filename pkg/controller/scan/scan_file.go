package scan

import (
	"unicode/utf8"

	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"
	"github.com/suzuki-shunsuke/i18nscan/pkg/extract"
	"github.com/suzuki-shunsuke/logrus-error/logerr"
)

// ScanFile returns the findings of a file.
// A file which can't be read or isn't valid UTF-8 has no finding, so that one file never aborts a scan.
func (c *Controller) ScanFile(logE *logrus.Entry, path string) []*extract.Finding {
	b, err := afero.ReadFile(c.fs, path)
	if err != nil {
		logerr.WithError(logE, err).Debug("read a file")
		return []*extract.Finding{}
	}
	if !utf8.Valid(b) {
		logE.Debug("skip a file because it isn't valid UTF-8")
		return []*extract.Finding{}
	}
	return c.extractor.Extract(string(b))
}
