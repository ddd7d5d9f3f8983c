package cli

import (
	"context"
	"log/slog"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/controlchart/pkg/cli/config"
	"github.com/secmon-lab/controlchart/pkg/utils/apperr"
	"github.com/urfave/cli/v3"
)

// Version is overwritten at build time with -ldflags "-X ..."
var Version = "dev"

// Run runs the controlchart command line
func Run(ctx context.Context, args []string) error {
	var loggerCfg config.Logger

	app := &cli.Command{
		Name:    "controlchart",
		Usage:   "Weekly median time-to-QA-ready report from Jira to Slack",
		Version: Version,
		Flags:   loggerCfg.Flags(),
		Before: func(ctx context.Context, c *cli.Command) (context.Context, error) {
			logger, err := loggerCfg.Configure()
			if err != nil {
				return nil, err
			}
			slog.SetDefault(logger)
			logger.Debug("controlchart started", "version", Version, "logger", loggerCfg)

			return ctxlog.With(ctx, logger), nil
		},
		Commands: []*cli.Command{
			cmdRun(),
			cmdServe(),
			cmdCheck(),
			cmdStatuses(),
		},
	}

	if err := app.Run(ctx, args); err != nil {
		apperr.Handle(ctx, err)
		return goerr.Wrap(err, "controlchart failed")
	}
	return nil
}
