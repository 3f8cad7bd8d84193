package di

import (
	"io"

	"github.com/suzuki-shunsuke/i18nscan/pkg/cli/flag"
)

// Flags holds the command-line flags of the run command.
// Zero values mean the flag isn't set and the configuration file is used.
type Flags struct {
	*flag.GlobalFlags

	Root        string
	Format      string
	Parallelism int
	Check       bool
	// ExcludeDirs replaces the configured exclusion set if it isn't nil.
	ExcludeDirs []string
	Extensions  []string
}

// Env holds values which don't come from flags.
type Env struct {
	Version         string
	Stdout          io.Writer
	IsGitHubActions bool
}

// SetFromEnv populates env from environment variables.
func (e *Env) SetFromEnv(getEnv func(string) string) {
	e.IsGitHubActions = getEnv("GITHUB_ACTIONS") == "true"
}
