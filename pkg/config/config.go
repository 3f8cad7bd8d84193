// Package config reads and validates .i18nscan.yaml.
package config

import (
	"errors"
	"fmt"
	"path"
	"strings"

	"github.com/spf13/afero"
	"github.com/suzuki-shunsuke/i18nscan/pkg/extract"
	"github.com/suzuki-shunsuke/i18nscan/pkg/report"
	"gopkg.in/yaml.v3"
)

const (
	SchemaVersion = 1

	DefaultRoot       = "src"
	DefaultExcludeDir = "__tests__"
)

// DefaultExtensions are the file extensions scanned when nothing is configured.
var DefaultExtensions = []string{".ts", ".tsx", ".js", ".jsx"} //nolint:gochecknoglobals

type Config struct {
	Version     int      `json:"version" jsonschema:"enum=1"`
	Root        string   `json:"root,omitempty" jsonschema:"description=Root directory to scan. The default is src"`
	ExcludeDirs []string `json:"exclude_dirs,omitempty" yaml:"exclude_dirs" jsonschema:"description=Names of directories which aren't scanned. Hidden directories are always skipped. The default is __tests__"`
	Extensions  []string `json:"extensions,omitempty" jsonschema:"description=Extensions of target files. The default is .ts .tsx .js and .jsx"`
	IgnoreFiles []string `json:"ignore_files,omitempty" yaml:"ignore_files" jsonschema:"description=Glob patterns of files which aren't scanned. Paths are relative to root and ** matches any number of directories"`
	Scripts     []string `json:"scripts,omitempty" jsonschema:"description=Unicode scripts of text to find. The default is Han"`
	Attributes  []string `json:"attributes,omitempty" jsonschema:"description=Attributes whose values are user-facing text"`
	Format      string   `json:"format,omitempty" jsonschema:"enum=text,enum=json,enum=yaml,enum=sarif"`
	Parallelism int      `json:"parallelism,omitempty" jsonschema:"description=The number of files scanned concurrently. The default is 1,minimum=1"`
}

func validateSchemaVersion(v int) error {
	switch v {
	case 0:
		return errors.New("version is required")
	case SchemaVersion:
		return nil
	default:
		return fmt.Errorf("unsupported version: %d", v)
	}
}

func validateIgnoreFiles(patterns []string) error {
	for _, pattern := range patterns {
		if pattern == "" {
			return errors.New("ignore_files must not contain an empty pattern")
		}
		if _, err := path.Match(pattern, ""); err != nil {
			return fmt.Errorf("invalid ignore_files pattern %q: %w", pattern, err)
		}
	}
	return nil
}

func validateExtensions(exts []string) error {
	for _, ext := range exts {
		if !strings.HasPrefix(ext, ".") || len(ext) == 1 {
			return fmt.Errorf("extension must start with a dot: %q", ext)
		}
	}
	return nil
}

// Init validates the configuration.
func (c *Config) Init() error {
	if err := validateSchemaVersion(c.Version); err != nil {
		return err
	}
	if err := validateExtensions(c.Extensions); err != nil {
		return err
	}
	if err := validateIgnoreFiles(c.IgnoreFiles); err != nil {
		return err
	}
	if len(c.Scripts) > 0 {
		if _, err := extract.ScriptClass(c.Scripts); err != nil {
			return fmt.Errorf("validate scripts: %w", err)
		}
	}
	if err := report.ValidateFormat(c.Format); err != nil {
		return err
	}
	if c.Parallelism < 0 {
		return errors.New("parallelism must be greater than zero")
	}
	return nil
}

// SetDefaults fills empty fields with the default values.
func (c *Config) SetDefaults() {
	if c.Root == "" {
		c.Root = DefaultRoot
	}
	if c.ExcludeDirs == nil {
		c.ExcludeDirs = []string{DefaultExcludeDir}
	}
	if len(c.Extensions) == 0 {
		c.Extensions = DefaultExtensions
	}
	if len(c.Scripts) == 0 {
		c.Scripts = extract.DefaultScripts
	}
	if len(c.Attributes) == 0 {
		c.Attributes = extract.DefaultAttributes
	}
	if c.Format == "" {
		c.Format = report.FormatText
	}
	if c.Parallelism == 0 {
		c.Parallelism = 1
	}
}

func getConfigPath(fs afero.Fs) (string, error) {
	for _, path := range []string{".i18nscan.yaml", ".github/i18nscan.yaml", ".i18nscan.yml", ".github/i18nscan.yml"} {
		f, err := afero.Exists(fs, path)
		if err != nil {
			return "", fmt.Errorf("check if %s exists: %w", path, err)
		}
		if f {
			return path, nil
		}
	}
	return "", nil
}

type Finder struct {
	fs afero.Fs
}

func NewFinder(fs afero.Fs) *Finder {
	return &Finder{fs: fs}
}

// Find returns configFilePath if it isn't empty.
// Otherwise it searches the default paths and returns an empty string if no file is found.
func (f *Finder) Find(configFilePath string) (string, error) {
	if configFilePath != "" {
		return configFilePath, nil
	}
	return getConfigPath(f.fs)
}

type Reader struct {
	fs afero.Fs
}

func NewReader(fs afero.Fs) *Reader {
	return &Reader{fs: fs}
}

// Read decodes and validates a configuration file.
// If configFilePath is empty, cfg isn't changed.
func (r *Reader) Read(cfg *Config, configFilePath string) error {
	if configFilePath == "" {
		return nil
	}
	f, err := r.fs.Open(configFilePath)
	if err != nil {
		return fmt.Errorf("open a configuration file: %w", err)
	}
	defer f.Close()
	if err := yaml.NewDecoder(f).Decode(cfg); err != nil {
		return fmt.Errorf("decode a configuration file as YAML: %w", err)
	}
	if err := cfg.Init(); err != nil {
		return fmt.Errorf("validate a configuration file: %w", err)
	}
	return nil
}
