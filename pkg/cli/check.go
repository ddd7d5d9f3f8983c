package cli

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/controlchart/pkg/cli/config"
	"github.com/secmon-lab/controlchart/pkg/usecase"
	"github.com/urfave/cli/v3"
)

func cmdCheck() *cli.Command {
	var (
		jiraCfg   config.Jira
		slackCfg  config.Slack
		reportCfg config.Report
	)

	flags := joinFlags(
		jiraCfg.Flags(),
		slackCfg.Flags(),
		reportCfg.Flags(),
	)

	return &cli.Command{
		Name:  "check",
		Usage: "Verify Jira credentials, project visibility and Slack settings",
		Flags: flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			logger := ctxlog.From(ctx)
			logger.Debug("Checking connectivity",
				slog.Any("jira", jiraCfg),
				slog.Any("slack", slackCfg),
			)
			out := outputOf(c)

			client, cfg, err := newJiraClient(&jiraCfg, &reportCfg)
			if err != nil {
				return err
			}

			report, err := usecase.NewDiagnostics(client, cfg).CheckConnection(ctx)
			if err != nil {
				return err
			}

			fmt.Fprintf(out, "Jira: %s (version %s)\n", report.Server.ServerTitle, report.Server.Version)
			fmt.Fprintf(out, "Visible projects: %d\n", report.Visible)
			for _, key := range report.Found {
				fmt.Fprintf(out, "  ok      %s\n", key)
			}
			for _, key := range report.Missing {
				fmt.Fprintf(out, "  missing %s\n", key)
			}

			switch {
			case slackCfg.OAuthToken != "":
				auth, err := slackCfg.Service().AuthTestContext(ctx)
				if err != nil {
					return err
				}
				fmt.Fprintf(out, "Slack: bot %s in %s\n", auth.User, auth.Team)
			case slackCfg.WebhookURL != "":
				fmt.Fprintln(out, "Slack: webhook configured")
			default:
				fmt.Fprintln(out, "Slack: not configured")
			}

			if !report.OK() {
				return goerr.New("configured projects are not visible", goerr.V("missing", report.Missing))
			}
			return nil
		},
	}
}
