package config

import (
	"log/slog"

	"github.com/m-mizutani/goerr/v2"
	"github.com/robfig/cron/v3"
	"github.com/urfave/cli/v3"
)

// Server holds server configuration
type Server struct {
	Addr     string
	Schedule string
}

// Flags returns CLI flags for Server configuration
func (s *Server) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "addr",
			Usage:       "Server address",
			Category:    "Server",
			Value:       "localhost:8080",
			Sources:     cli.EnvVars("CONTROLCHART_ADDR"),
			Destination: &s.Addr,
		},
		&cli.StringFlag{
			Name:        "schedule",
			Usage:       "Cron expression for automatic report runs in the report timezone, e.g. \"0 9 * * MON\" (disabled if empty)",
			Category:    "Server",
			Sources:     cli.EnvVars("CONTROLCHART_SCHEDULE"),
			Destination: &s.Schedule,
		},
	}
}

// Validate validates the server configuration
func (s *Server) Validate() error {
	if s.Addr == "" {
		return goerr.New("server address is required")
	}
	if s.Schedule != "" {
		if _, err := cron.ParseStandard(s.Schedule); err != nil {
			return goerr.Wrap(err, "invalid schedule", goerr.V("schedule", s.Schedule))
		}
	}
	return nil
}

// LogValue returns structured log value
func (s Server) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("addr", s.Addr),
		slog.String("schedule", s.Schedule),
	)
}
