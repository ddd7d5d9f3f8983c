package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/secmon-lab/controlchart/pkg/cli/config"
	"github.com/secmon-lab/controlchart/pkg/usecase"
	"github.com/urfave/cli/v3"
)

func cmdStatuses() *cli.Command {
	var (
		jiraCfg   config.Jira
		reportCfg config.Report
	)

	flags := joinFlags(
		jiraCfg.Flags(),
		reportCfg.Flags(),
	)

	return &cli.Command{
		Name:  "statuses",
		Usage: "List workflow statuses per project and flag near matches of the target status",
		Flags: flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			out := outputOf(c)

			client, cfg, err := newJiraClient(&jiraCfg, &reportCfg)
			if err != nil {
				return err
			}

			fmt.Fprintf(out, "Target status: %q\n\n", cfg.TargetStatus)
			for _, inspection := range usecase.NewDiagnostics(client, cfg).InspectStatuses(ctx) {
				fmt.Fprintf(out, "%s\n", inspection.Project)
				if inspection.Err != nil {
					fmt.Fprintf(out, "  error: %v\n\n", inspection.Err)
					continue
				}

				labels := make([]string, 0, len(inspection.Statuses))
				for _, s := range inspection.Statuses {
					labels = append(labels, s.String())
				}
				fmt.Fprintf(out, "  statuses: %s\n", strings.Join(labels, ", "))

				switch {
				case inspection.Exact:
					fmt.Fprintln(out, "  target status found")
				case len(inspection.NearMatches) > 0:
					fmt.Fprintf(out, "  target status not found, differs only by case: %v (see --ignore-label-case)\n", inspection.NearMatches)
				default:
					fmt.Fprintln(out, "  target status not found")
				}
				fmt.Fprintln(out)
			}
			return nil
		},
	}
}

func outputOf(c *cli.Command) io.Writer {
	if w := c.Root().Writer; w != nil {
		return w
	}
	return os.Stdout
}
