package config

import (
	"log/slog"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/controlchart/pkg/domain/model"
	"github.com/secmon-lab/controlchart/pkg/domain/types"
	"github.com/secmon-lab/controlchart/pkg/usecase"
	"github.com/urfave/cli/v3"
)

// Report holds what is measured and over which period
type Report struct {
	ConfigFile      string
	Timezone        string
	Projects        []string
	TargetStatus    string
	IgnoreLabelCase bool
	Title           string
	Concurrency     int
	WeeksAgo        int
	From            string
	To              string
}

// Flags returns CLI flags for Report configuration
func (r *Report) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "config",
			Aliases:     []string{"c"},
			Usage:       "YAML file with report settings (flags take precedence)",
			Category:    "Report",
			Sources:     cli.EnvVars("CONTROLCHART_CONFIG"),
			Destination: &r.ConfigFile,
		},
		&cli.StringFlag{
			Name:        "timezone",
			Usage:       "IANA timezone of the business day window (default: " + model.DefaultTimezone + ")",
			Category:    "Report",
			Sources:     cli.EnvVars("CONTROLCHART_TIMEZONE"),
			Destination: &r.Timezone,
		},
		&cli.StringSliceFlag{
			Name:        "project",
			Aliases:     []string{"p"},
			Usage:       "Project key to report, repeatable, in report order (default: GS2,GS1,PS2,GS5,RD1,GS3)",
			Category:    "Report",
			Sources:     cli.EnvVars("CONTROLCHART_PROJECTS"),
			Destination: &r.Projects,
		},
		&cli.StringFlag{
			Name:        "target-status",
			Usage:       "Status name marking an issue as ready for QA (default: " + model.DefaultTargetStatus.String() + ")",
			Category:    "Report",
			Sources:     cli.EnvVars("CONTROLCHART_TARGET_STATUS"),
			Destination: &r.TargetStatus,
		},
		&cli.BoolFlag{
			Name:        "ignore-label-case",
			Usage:       "Match the target status case-insensitively",
			Category:    "Report",
			Sources:     cli.EnvVars("CONTROLCHART_IGNORE_LABEL_CASE"),
			Destination: &r.IgnoreLabelCase,
		},
		&cli.StringFlag{
			Name:        "title",
			Usage:       "Report title",
			Category:    "Report",
			Sources:     cli.EnvVars("CONTROLCHART_TITLE"),
			Destination: &r.Title,
		},
		&cli.IntFlag{
			Name:        "concurrency",
			Usage:       "Number of projects fetched in parallel",
			Category:    "Report",
			Sources:     cli.EnvVars("CONTROLCHART_CONCURRENCY"),
			Destination: &r.Concurrency,
		},
		&cli.IntFlag{
			Name:        "weeks-ago",
			Usage:       "Report the work week this many weeks back (0 = current week)",
			Category:    "Period",
			Value:       1,
			Destination: &r.WeeksAgo,
		},
		&cli.StringFlag{
			Name:        "from",
			Usage:       "First day of an explicit period (YYYY-MM-DD), requires --to",
			Category:    "Period",
			Destination: &r.From,
		},
		&cli.StringFlag{
			Name:        "to",
			Usage:       "Last day of an explicit period (YYYY-MM-DD), requires --from",
			Category:    "Period",
			Destination: &r.To,
		},
	}
}

// Configure builds the report configuration from the optional file, the
// flags and the defaults, in that order of precedence from lowest.
func (r *Report) Configure() (model.ReportConfig, error) {
	var cfg model.ReportConfig
	if r.ConfigFile != "" {
		loaded, err := LoadReportFile(r.ConfigFile)
		if err != nil {
			return model.ReportConfig{}, err
		}
		cfg = *loaded
	}

	if r.Timezone != "" {
		cfg.Timezone = r.Timezone
	}
	if len(r.Projects) > 0 {
		cfg.Projects = make([]types.ProjectKey, 0, len(r.Projects))
		for _, p := range r.Projects {
			cfg.Projects = append(cfg.Projects, types.ProjectKey(p))
		}
	}
	if r.TargetStatus != "" {
		cfg.TargetStatus = types.StatusLabel(r.TargetStatus)
	}
	if r.IgnoreLabelCase {
		cfg.IgnoreLabelCase = true
	}
	if r.Title != "" {
		cfg.Title = r.Title
	}
	if r.Concurrency != 0 {
		cfg.Concurrency = r.Concurrency
	}

	if cfg.Timezone == "" {
		cfg.Timezone = model.DefaultTimezone
	}
	if len(cfg.Projects) == 0 {
		cfg.Projects = model.DefaultProjects()
	}
	if cfg.TargetStatus == "" {
		cfg.TargetStatus = model.DefaultTargetStatus
	}

	if err := cfg.Validate(); err != nil {
		return model.ReportConfig{}, err
	}
	return cfg, nil
}

// ReporterOptions returns the period selection of the run
func (r *Report) ReporterOptions() ([]usecase.ReporterOption, error) {
	if err := r.Validate(); err != nil {
		return nil, err
	}

	if r.From != "" {
		from, to := r.From, r.To
		return []usecase.ReporterOption{
			usecase.WithPeriod(func(now time.Time, loc *time.Location) (model.DateRange, error) {
				return model.ParseDateRange(from, to, loc)
			}),
		}, nil
	}

	return []usecase.ReporterOption{usecase.WithWeeksAgo(r.WeeksAgo)}, nil
}

// Validate validates the period flags
func (r *Report) Validate() error {
	if (r.From == "") != (r.To == "") {
		return goerr.New("--from and --to must be set together",
			goerr.V("from", r.From),
			goerr.V("to", r.To),
			goerr.T(model.ErrTagConfig))
	}
	if r.WeeksAgo < 0 {
		return goerr.New("--weeks-ago must not be negative",
			goerr.V("weeks_ago", r.WeeksAgo),
			goerr.T(model.ErrTagConfig))
	}
	return nil
}

// LogValue returns structured log value
func (r Report) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("config_file", r.ConfigFile),
		slog.String("timezone", r.Timezone),
		slog.Any("projects", r.Projects),
		slog.String("target_status", r.TargetStatus),
		slog.Int("weeks_ago", r.WeeksAgo),
		slog.String("from", r.From),
		slog.String("to", r.To),
	)
}
