package cli

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/m-mizutani/ctxlog"
	"github.com/secmon-lab/controlchart/pkg/cli/config"
	"github.com/secmon-lab/controlchart/pkg/usecase"
	"github.com/urfave/cli/v3"
)

func cmdRun() *cli.Command {
	var (
		jiraCfg   config.Jira
		slackCfg  config.Slack
		reportCfg config.Report
		dryRun    bool
	)

	flags := joinFlags(
		jiraCfg.Flags(),
		slackCfg.Flags(),
		reportCfg.Flags(),
		[]cli.Flag{
			&cli.BoolFlag{
				Name:        "dry-run",
				Usage:       "Print the report to stdout instead of posting it",
				Destination: &dryRun,
			},
		},
	)

	return &cli.Command{
		Name:  "run",
		Usage: "Compute the report once and post it",
		Flags: flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			logger := ctxlog.From(ctx)
			logger.Info("Starting controlchart run",
				slog.Any("jira", jiraCfg),
				slog.Any("slack", slackCfg),
				slog.Any("report", reportCfg),
				slog.Bool("dry_run", dryRun),
			)

			notifier, err := slackCfg.Configure(os.Stdout, dryRun)
			if err != nil {
				return err
			}

			reporter, _, err := newReporter(&jiraCfg, &reportCfg, notifier)
			if err != nil {
				usecase.NotifyFailure(ctx, notifier, err)
				return err
			}

			_, err = reporter.Run(ctx, time.Now())
			return err
		},
	}
}
