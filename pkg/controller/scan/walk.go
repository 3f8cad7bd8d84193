package scan

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar"
	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"
	"github.com/suzuki-shunsuke/logrus-error/logerr"
)

type target struct {
	// path is passed to afero.Fs.
	path string
	// rel is relative to the root and separated by slashes.
	rel string
}

// walk lists target files under the root.
// Hidden and excluded directories are pruned and files with other extensions are never opened.
func (c *Controller) walk(logE *logrus.Entry, root string) ([]*target, error) {
	excluded := make(map[string]struct{}, len(c.param.ExcludeDirs))
	for _, name := range c.param.ExcludeDirs {
		excluded[name] = struct{}{}
	}
	targets := []*target{}
	if err := afero.Walk(c.fs, root, func(p string, info os.FileInfo, err error) error {
		if err != nil {
			logerr.WithError(logE, err).WithField("path", p).Debug("walk a path")
			return nil
		}
		if info.IsDir() {
			if p == root {
				return nil
			}
			if _, ok := excluded[info.Name()]; ok || strings.HasPrefix(info.Name(), ".") {
				logE.WithField("dir", p).Debug("skip a directory")
				return filepath.SkipDir
			}
			return nil
		}
		if !c.hasExtension(info.Name()) {
			return nil
		}
		rel, err := filepath.Rel(root, p)
		if err != nil {
			logerr.WithError(logE, err).WithFields(logrus.Fields{
				"root": root,
				"path": p,
			}).Debug("get a relative path")
			return nil
		}
		rel = filepath.ToSlash(rel)
		if c.ignored(logE, rel) {
			logE.WithField("file", rel).Debug("ignore a file")
			return nil
		}
		targets = append(targets, &target{
			path: p,
			rel:  rel,
		})
		return nil
	}); err != nil {
		return nil, fmt.Errorf("walk a directory: %w", err)
	}
	return targets, nil
}

// ignored reports whether a slash separated path relative to the root matches one of IgnoreFiles.
func (c *Controller) ignored(logE *logrus.Entry, rel string) bool {
	for _, pattern := range c.param.IgnoreFiles {
		f, err := doublestar.Match(pattern, rel)
		if err != nil {
			logerr.WithError(logE, err).WithField("pattern", pattern).Warn("match a file with ignore_files")
			continue
		}
		if f {
			return true
		}
	}
	return false
}

func (c *Controller) hasExtension(name string) bool {
	for _, ext := range c.param.Extensions {
		if strings.HasSuffix(name, ext) {
			return true
		}
	}
	return false
}

const maxSymlinks = 40

// resolveRoot follows symbolic links of the root so that a linked root directory is walked.
// Symbolic links under the root aren't followed.
func (c *Controller) resolveRoot(root string) (string, error) {
	linker, ok := c.fs.(afero.Symlinker)
	if !ok {
		return root, nil
	}
	for range maxSymlinks {
		info, lstatCalled, err := linker.LstatIfPossible(root)
		if err != nil {
			return "", fmt.Errorf("get the file info of the root directory: %w", err)
		}
		if !lstatCalled || info.Mode()&os.ModeSymlink == 0 {
			return root, nil
		}
		dest, err := linker.ReadlinkIfPossible(root)
		if err != nil {
			return "", fmt.Errorf("read a symbolic link: %w", err)
		}
		if !filepath.IsAbs(dest) {
			dest = filepath.Join(filepath.Dir(root), dest)
		}
		root = filepath.Clean(dest)
	}
	return "", errors.New("too many levels of symbolic links")
}
