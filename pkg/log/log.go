// Package log builds the logrus entry shared by all commands.
package log

import (
	"fmt"
	"os"
	"runtime"

	"github.com/sirupsen/logrus"
	"github.com/suzuki-shunsuke/logrus-util/lgr"
)

// New returns a logrus entry writing to stderr so that reports on stdout stay machine readable.
func New(version string) *logrus.Entry {
	logger := logrus.New()
	logger.Out = os.Stderr
	logger.Formatter = &logrus.TextFormatter{
		DisableTimestamp: true,
	}
	return logger.WithFields(logrus.Fields{
		"version": version,
		"program": "i18nscan",
		"env":     runtime.GOOS + "/" + runtime.GOARCH,
	})
}

// Set configures the log level and color. Empty values keep the current settings.
func Set(logE *logrus.Entry, level, color string) error {
	if level != "" {
		if err := lgr.SetLevel(logE.Logger, level); err != nil {
			return fmt.Errorf("set the log level: %w", err)
		}
	}
	if color != "" {
		if err := lgr.SetColor(logE.Logger, color); err != nil {
			return fmt.Errorf("set the log color: %w", err)
		}
	}
	return nil
}
