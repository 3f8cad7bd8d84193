package initcmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"
)

const (
	templateConfig = `# yaml-language-server: $schema=https://raw.githubusercontent.com/suzuki-shunsuke/i18nscan/refs/heads/main/json-schema/i18nscan.json
# i18nscan - https://github.com/suzuki-shunsuke/i18nscan
version: 1
root: src
exclude_dirs:
  - __tests__
extensions:
  - .ts
  - .tsx
  - .js
  - .jsx
# Glob patterns of files which aren't scanned. Paths are relative to root.
# ignore_files:
#   - "**/*.stories.tsx"
# Unicode scripts of text to find.
scripts:
  - Han
# - Hiragana
# - Katakana
# attributes:
#   - placeholder
#   - title
#   - alt
# format: text
# parallelism: 4
`
	filePermission os.FileMode = 0o644
	dirPermission  os.FileMode = 0o755
)

// Init creates a configuration file if it doesn't exist.
// An existing file is never overwritten.
func (c *Controller) Init(logE *logrus.Entry, configFilePath string) error {
	f, err := afero.Exists(c.fs, configFilePath)
	if err != nil {
		return fmt.Errorf("check if a configuration file exists: %w", err)
	}
	if f {
		logE.WithField("config", configFilePath).Info("the configuration file already exists")
		return nil
	}
	if dir := filepath.Dir(configFilePath); dir != "." {
		if err := c.fs.MkdirAll(dir, dirPermission); err != nil {
			return fmt.Errorf("create a directory for a configuration file: %w", err)
		}
	}
	if err := afero.WriteFile(c.fs, configFilePath, []byte(templateConfig), filePermission); err != nil {
		return fmt.Errorf("create a configuration file: %w", err)
	}
	logE.WithField("config", configFilePath).Info("created a configuration file")
	return nil
}
