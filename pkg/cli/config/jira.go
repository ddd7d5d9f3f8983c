package config

import (
	"log/slog"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/controlchart/pkg/service/jira"
	"github.com/urfave/cli/v3"
)

// Jira holds the issue tracker connection settings
type Jira struct {
	BaseURL    string
	Email      string
	Token      string
	APIVersion string
	Timeout    time.Duration
	PageSize   int
}

// Flags returns CLI flags for Jira configuration
func (j *Jira) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "jira-url",
			Usage:       "Jira base URL, e.g. https://example.atlassian.net",
			Category:    "Jira",
			Sources:     cli.EnvVars("CONTROLCHART_JIRA_URL", "JIRA_BASE_URL"),
			Destination: &j.BaseURL,
		},
		&cli.StringFlag{
			Name:        "jira-email",
			Usage:       "Jira account email for basic auth (bearer token auth if empty)",
			Category:    "Jira",
			Sources:     cli.EnvVars("CONTROLCHART_JIRA_EMAIL", "JIRA_EMAIL"),
			Destination: &j.Email,
		},
		&cli.StringFlag{
			Name:        "jira-token",
			Usage:       "Jira API token",
			Category:    "Jira",
			Sources:     cli.EnvVars("CONTROLCHART_JIRA_TOKEN", "JIRA_API_TOKEN"),
			Destination: &j.Token,
		},
		&cli.StringFlag{
			Name:        "jira-api-version",
			Usage:       "Jira REST API version (2 or 3)",
			Category:    "Jira",
			Value:       jira.DefaultAPIVersion,
			Sources:     cli.EnvVars("CONTROLCHART_JIRA_API_VERSION"),
			Destination: &j.APIVersion,
		},
		&cli.DurationFlag{
			Name:        "jira-timeout",
			Usage:       "Timeout of each Jira request",
			Category:    "Jira",
			Value:       jira.DefaultTimeout,
			Sources:     cli.EnvVars("CONTROLCHART_JIRA_TIMEOUT"),
			Destination: &j.Timeout,
		},
		&cli.IntFlag{
			Name:        "jira-page-size",
			Usage:       "Number of issues requested per search page",
			Category:    "Jira",
			Value:       jira.DefaultPageSize,
			Sources:     cli.EnvVars("CONTROLCHART_JIRA_PAGE_SIZE"),
			Destination: &j.PageSize,
		},
	}
}

// Validate validates the Jira configuration
func (j *Jira) Validate() error {
	if j.BaseURL == "" {
		return goerr.New("jira URL is required (--jira-url or JIRA_BASE_URL)")
	}
	if j.Token == "" {
		return goerr.New("jira API token is required (--jira-token or JIRA_API_TOKEN)")
	}
	return nil
}

// Configure creates a Jira client reading offset-less timestamps in loc
func (j *Jira) Configure(loc *time.Location) (*jira.Client, error) {
	if err := j.Validate(); err != nil {
		return nil, err
	}

	return jira.NewClient(jira.Config{
		BaseURL:    j.BaseURL,
		Email:      j.Email,
		Token:      j.Token,
		APIVersion: j.APIVersion,
		Timeout:    j.Timeout,
		PageSize:   j.PageSize,
		Location:   loc,
	})
}

// LogValue returns structured log value
func (j Jira) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("url", j.BaseURL),
		slog.String("email", j.Email),
		slog.Bool("has_token", j.Token != ""),
		slog.String("api_version", j.APIVersion),
		slog.Duration("timeout", j.Timeout),
	)
}
