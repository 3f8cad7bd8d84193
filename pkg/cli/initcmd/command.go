// Package initcmd implements the 'i18nscan init' command.
package initcmd

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"
	"github.com/suzuki-shunsuke/i18nscan/pkg/cli/flag"
	"github.com/suzuki-shunsuke/i18nscan/pkg/controller/initcmd"
	"github.com/suzuki-shunsuke/i18nscan/pkg/log"
	"github.com/urfave/cli/v3"
)

func New(logE *logrus.Entry, gf *flag.GlobalFlags) *cli.Command {
	r := &runner{
		logE: logE,
		gf:   gf,
	}
	return r.Command()
}

type runner struct {
	logE *logrus.Entry
	gf   *flag.GlobalFlags
}

func (r *runner) Command() *cli.Command {
	return &cli.Command{
		Name:      "init",
		Usage:     "Create .i18nscan.yaml if it doesn't exist",
		ArgsUsage: "[PATH]",
		Description: `Create .i18nscan.yaml if it doesn't exist

$ i18nscan init

You can also pass configuration file path.

e.g.

$ i18nscan init .github/i18nscan.yaml
`,
		Action: r.action,
	}
}

func (r *runner) action(_ context.Context, c *cli.Command) error {
	if err := log.Set(r.logE, r.gf.LogLevel, r.gf.LogColor); err != nil {
		return fmt.Errorf("configure logger: %w", err)
	}
	configFilePath := c.Args().First()
	if configFilePath == "" {
		configFilePath = r.gf.Config
	}
	if configFilePath == "" {
		configFilePath = ".i18nscan.yaml"
	}
	ctrl := initcmd.New(afero.NewOsFs())
	return ctrl.Init(r.logE, configFilePath) //nolint:wrapcheck
}
