// Package cli builds the i18nscan command line interface.
package cli

import (
	"context"

	"github.com/sirupsen/logrus"
	"github.com/suzuki-shunsuke/go-stdutil"
	"github.com/suzuki-shunsuke/i18nscan/pkg/cli/flag"
	"github.com/suzuki-shunsuke/i18nscan/pkg/cli/initcmd"
	"github.com/suzuki-shunsuke/i18nscan/pkg/cli/run"
	"github.com/suzuki-shunsuke/urfave-cli-v3-util/urfave"
	"github.com/urfave/cli/v3"
)

// Run runs the root command. urfave.Command adds the version and help-all commands.
func Run(ctx context.Context, logE *logrus.Entry, ldFlags *stdutil.LDFlags, args ...string) error {
	gf := &flag.GlobalFlags{}
	return urfave.Command(ldFlags, &cli.Command{ //nolint:wrapcheck
		Name:  "i18nscan",
		Usage: "Find hardcoded user-facing text in frontend source trees. https://github.com/suzuki-shunsuke/i18nscan",
		Flags: gf.Flags(),
		Commands: []*cli.Command{
			run.New(logE, gf, ldFlags.Version),
			initcmd.New(logE, gf),
		},
	}).Run(ctx, args)
}
