package scan

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"

	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"
	"github.com/suzuki-shunsuke/i18nscan/pkg/report"
	"github.com/suzuki-shunsuke/logrus-error/logerr"
	"golang.org/x/sync/errgroup"
)

// Run scans the root directory and writes the report to stdout.
func (c *Controller) Run(ctx context.Context, logE *logrus.Entry) error {
	r, err := c.Scan(ctx, logE)
	if err != nil {
		return err
	}
	if err := report.NewWriter(c.param.Stdout, c.param.Format, c.param.Version).Write(r); err != nil {
		return fmt.Errorf("output a report: %w", err)
	}
	if c.param.Check && !r.Empty() {
		return ErrHardcodedText
	}
	return nil
}

// Scan builds the report of the root directory.
// The result doesn't depend on Parallelism.
func (c *Controller) Scan(ctx context.Context, logE *logrus.Entry) (*report.TreeReport, error) {
	root := filepath.Clean(c.param.Root)
	f, err := afero.DirExists(c.fs, root)
	if err != nil {
		return nil, fmt.Errorf("check if the root directory exists: %w", logerr.WithFields(err, logrus.Fields{
			"root": root,
		}))
	}
	if !f {
		return nil, logerr.WithFields(errors.New("root directory is not found"), logrus.Fields{ //nolint:wrapcheck
			"root": root,
		})
	}

	root, err = c.resolveRoot(root)
	if err != nil {
		return nil, logerr.WithFields(err, logrus.Fields{ //nolint:wrapcheck
			"root": c.param.Root,
		})
	}

	targets, err := c.walk(logE, root)
	if err != nil {
		return nil, err
	}
	logE.WithFields(logrus.Fields{
		"root":         root,
		"num_of_files": len(targets),
	}).Debug("scan files")

	parallelism := c.param.Parallelism
	if parallelism < 1 {
		parallelism = 1
	}
	files := make([]*report.FileReport, len(targets))
	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(parallelism)
	for i, t := range targets {
		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err //nolint:wrapcheck
			}
			files[i] = &report.FileReport{
				Path:     t.rel,
				Findings: c.ScanFile(logE.WithField("file", t.rel), t.path),
			}
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, fmt.Errorf("scan files: %w", err)
	}
	return report.New(files), nil
}
