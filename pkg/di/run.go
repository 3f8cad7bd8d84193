// Package di creates and wires together the dependencies of the i18nscan commands.
package di

import (
	"context"
	"fmt"

	"github.com/fatih/color"
	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"
	"github.com/suzuki-shunsuke/i18nscan/pkg/config"
	"github.com/suzuki-shunsuke/i18nscan/pkg/controller/scan"
	"github.com/suzuki-shunsuke/i18nscan/pkg/extract"
)

// Run reads the configuration, merges flags into it, and scans the source tree.
func Run(ctx context.Context, logE *logrus.Entry, flags *Flags, env *Env) error {
	if env.IsGitHubActions {
		color.NoColor = false
	}
	fs := afero.NewOsFs()
	cfg, err := buildConfig(fs, flags)
	if err != nil {
		return err
	}
	logE.WithFields(logrus.Fields{
		"root":        cfg.Root,
		"format":      cfg.Format,
		"parallelism": cfg.Parallelism,
	}).Debug("configuration")
	extractor, err := extract.New(&extract.Param{
		Scripts:    cfg.Scripts,
		Attributes: cfg.Attributes,
	})
	if err != nil {
		return fmt.Errorf("create an extractor: %w", err)
	}
	ctrl := scan.New(fs, extractor, &scan.Param{
		Root:        cfg.Root,
		ExcludeDirs: cfg.ExcludeDirs,
		Extensions:  cfg.Extensions,
		IgnoreFiles: cfg.IgnoreFiles,
		Format:      cfg.Format,
		Parallelism: cfg.Parallelism,
		Check:       flags.Check,
		Version:     env.Version,
		Stdout:      env.Stdout,
	})
	return ctrl.Run(ctx, logE) //nolint:wrapcheck
}

func readConfig(fs afero.Fs, configFilePath string) (*config.Config, error) {
	cfgFinder := config.NewFinder(fs)
	cfgReader := config.NewReader(fs)
	configPath, err := cfgFinder.Find(configFilePath)
	if err != nil {
		return nil, fmt.Errorf("find configuration file: %w", err)
	}
	cfg := &config.Config{}
	if err := cfgReader.Read(cfg, configPath); err != nil {
		return nil, fmt.Errorf("read configuration file: %w", err)
	}
	return cfg, nil
}

// buildConfig returns the configuration file merged with flags.
// Flags take precedence over the file and empty fields take the default values.
func buildConfig(fs afero.Fs, flags *Flags) (*config.Config, error) {
	configFilePath := ""
	if flags.GlobalFlags != nil {
		configFilePath = flags.Config
	}
	cfg, err := readConfig(fs, configFilePath)
	if err != nil {
		return nil, err
	}
	if cfg.Version == 0 {
		cfg.Version = config.SchemaVersion
	}
	if flags.Root != "" {
		cfg.Root = flags.Root
	}
	if flags.ExcludeDirs != nil {
		cfg.ExcludeDirs = flags.ExcludeDirs
	}
	if len(flags.Extensions) > 0 {
		cfg.Extensions = flags.Extensions
	}
	if flags.Format != "" {
		cfg.Format = flags.Format
	}
	if flags.Parallelism != 0 {
		cfg.Parallelism = flags.Parallelism
	}
	if err := cfg.Init(); err != nil {
		return nil, fmt.Errorf("validate flags: %w", err)
	}
	cfg.SetDefaults()
	return cfg, nil
}
