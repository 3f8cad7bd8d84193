package run

import (
	"context"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/suzuki-shunsuke/i18nscan/pkg/cli/flag"
	"github.com/suzuki-shunsuke/i18nscan/pkg/di"
	"github.com/suzuki-shunsuke/i18nscan/pkg/log"
	"github.com/urfave/cli/v3"
)

func New(logE *logrus.Entry, gf *flag.GlobalFlags, version string) *cli.Command {
	r := &runner{
		logE:    logE,
		gf:      gf,
		version: version,
	}
	return r.Command()
}

type runner struct {
	logE    *logrus.Entry
	gf      *flag.GlobalFlags
	version string
}

func (r *runner) Command() *cli.Command {
	return &cli.Command{
		Name:      "run",
		Usage:     "Find hardcoded text",
		ArgsUsage: "[ROOT]",
		Description: `Scan a source tree and report hardcoded text which should be externalized for translation.
If no argument is passed, i18nscan scans the root directory in the configuration file (default: src).

$ i18nscan run

You can also pass the root directory.

$ i18nscan run app

With --check, i18nscan exits with a non-zero status code if any text is found.

$ i18nscan run --check --format sarif > i18nscan.sarif
`,
		Action: r.action,
		Flags: []cli.Flag{
			&cli.StringSliceFlag{
				Name:  "exclude-dir",
				Usage: "Names of directories which aren't scanned. This replaces exclude_dirs in the configuration file",
			},
			&cli.StringSliceFlag{
				Name:  "ext",
				Usage: "Extensions of target files (e.g. .tsx). This replaces extensions in the configuration file",
			},
			&cli.StringFlag{
				Name:    "format",
				Aliases: []string{"f"},
				Usage:   "Output format. One of 'text', 'json', 'yaml', 'sarif'",
				Sources: cli.EnvVars("I18NSCAN_FORMAT"),
			},
			&cli.IntFlag{
				Name:    "parallelism",
				Aliases: []string{"p"},
				Usage:   "The number of files scanned concurrently",
				Sources: cli.EnvVars("I18NSCAN_PARALLELISM"),
			},
			&cli.BoolFlag{
				Name:  "check",
				Usage: "Exit with a non-zero status code if hardcoded text is found",
			},
		},
	}
}

func (r *runner) action(ctx context.Context, c *cli.Command) error {
	if err := log.Set(r.logE, r.gf.LogLevel, r.gf.LogColor); err != nil {
		return fmt.Errorf("configure logger: %w", err)
	}
	flags := &di.Flags{
		GlobalFlags: r.gf,
		Root:        c.Args().First(),
		Extensions:  c.StringSlice("ext"),
		Format:      c.String("format"),
		Parallelism: c.Int("parallelism"),
		Check:       c.Bool("check"),
	}
	if c.IsSet("exclude-dir") {
		flags.ExcludeDirs = c.StringSlice("exclude-dir")
	}
	env := &di.Env{
		Version: r.version,
		Stdout:  os.Stdout,
	}
	env.SetFromEnv(os.Getenv)
	return di.Run(ctx, r.logE, flags, env) //nolint:wrapcheck
}
