package cli

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/robfig/cron/v3"
	"github.com/secmon-lab/controlchart/pkg/cli/config"
	controller "github.com/secmon-lab/controlchart/pkg/controller/http"
	"github.com/secmon-lab/controlchart/pkg/utils/async"
	"github.com/urfave/cli/v3"
)

func cmdServe() *cli.Command {
	var (
		serverCfg config.Server
		jiraCfg   config.Jira
		slackCfg  config.Slack
		reportCfg config.Report
	)

	flags := joinFlags(
		serverCfg.Flags(),
		jiraCfg.Flags(),
		slackCfg.Flags(),
		reportCfg.Flags(),
	)

	return &cli.Command{
		Name:  "serve",
		Usage: "Start HTTP server with report preview/trigger endpoints and an optional schedule",
		Flags: flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			logger := ctxlog.From(ctx)

			logger.Info("Starting controlchart server",
				slog.Any("server", serverCfg),
				slog.Any("jira", jiraCfg),
				slog.Any("slack", slackCfg),
				slog.Any("report", reportCfg),
			)

			if err := serverCfg.Validate(); err != nil {
				return err
			}

			notifier, err := slackCfg.Configure(os.Stdout, false)
			if err != nil {
				return err
			}

			reporter, cfg, err := newReporter(&jiraCfg, &reportCfg, notifier)
			if err != nil {
				return err
			}

			var runner async.Runner
			server := controller.NewServer(ctx, serverCfg.Addr, reporter, &runner)

			var scheduler *cron.Cron
			if serverCfg.Schedule != "" {
				loc, err := cfg.Location()
				if err != nil {
					return err
				}

				scheduler, err = startSchedule(ctx, logger, serverCfg.Schedule, loc, reporter, &runner)
				if err != nil {
					return goerr.Wrap(err, "failed to start schedule", goerr.V("schedule", serverCfg.Schedule))
				}
			}

			go func() {
				logger.Info("HTTP server starting", slog.String("addr", serverCfg.Addr))
				if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					logger.Error("HTTP server error", slog.Any("error", err))
				}
			}()

			sigChan := make(chan os.Signal, 1)
			signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

			select {
			case <-ctx.Done():
				logger.Info("Context cancelled, shutting down...")
			case sig := <-sigChan:
				logger.Info("Signal received, shutting down...", slog.Any("signal", sig))
			}

			shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
			defer cancel()

			if scheduler != nil {
				<-scheduler.Stop().Done()
			}

			if err := server.Shutdown(shutdownCtx); err != nil {
				return goerr.Wrap(err, "failed to shutdown server gracefully")
			}
			if err := runner.Wait(shutdownCtx); err != nil {
				logger.Warn("Report runs still in progress at shutdown", "error", err)
			}

			logger.Info("Server shutdown complete")
			return nil
		},
	}
}
