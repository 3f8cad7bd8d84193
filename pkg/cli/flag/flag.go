package flag

import "github.com/urfave/cli/v3"

type GlobalFlags struct {
	LogLevel string
	LogColor string
	Config   string
}

func (gf *GlobalFlags) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "log-level",
			Usage:       "log level",
			Sources:     cli.EnvVars("I18NSCAN_LOG_LEVEL"),
			Destination: &gf.LogLevel,
		},
		&cli.StringFlag{
			Name:        "log-color",
			Usage:       "log color. One of 'auto' (default), 'always', 'never'",
			Value:       "auto",
			Sources:     cli.EnvVars("I18NSCAN_LOG_COLOR"),
			Destination: &gf.LogColor,
		},
		&cli.StringFlag{
			Name:        "config",
			Aliases:     []string{"c"},
			Usage:       "configuration file path",
			Sources:     cli.EnvVars("I18NSCAN_CONFIG"),
			Destination: &gf.Config,
		},
	}
}
