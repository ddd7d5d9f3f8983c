package cli

import (
	"context"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/secmon-lab/controlchart/pkg/domain/interfaces"
	"github.com/secmon-lab/controlchart/pkg/utils/async"
)

// cronLogger routes cron's own logs to slog
type cronLogger struct {
	logger *slog.Logger
}

func (l cronLogger) Info(msg string, keysAndValues ...any) {
	l.logger.Debug(msg, keysAndValues...)
}

func (l cronLogger) Error(err error, msg string, keysAndValues ...any) {
	l.logger.Error(msg, append(keysAndValues, "error", err)...)
}

// startSchedule runs the report on schedule in loc. Each run is dispatched on
// runner, and a run still in progress makes the next tick skip.
func startSchedule(ctx context.Context, logger *slog.Logger, schedule string, loc *time.Location, reportUC interfaces.ReportUseCase, runner *async.Runner) (*cron.Cron, error) {
	cl := cronLogger{logger: logger.With("component", "cron")}
	c := cron.New(
		cron.WithLocation(loc),
		cron.WithLogger(cl),
		cron.WithChain(cron.SkipIfStillRunning(cl)),
	)

	_, err := c.AddFunc(schedule, func() {
		done := make(chan struct{})
		runner.Dispatch(ctx, "scheduled_run", func(ctx context.Context) error {
			defer close(done)
			_, err := reportUC.Run(ctx, time.Now())
			return err
		})
		<-done
	})
	if err != nil {
		return nil, err
	}

	c.Start()
	for _, entry := range c.Entries() {
		logger.Info("Report schedule registered",
			"schedule", schedule,
			"next", entry.Next,
		)
	}
	return c, nil
}
