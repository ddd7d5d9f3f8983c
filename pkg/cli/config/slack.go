package config

import (
	"io"
	"log/slog"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/controlchart/pkg/domain/interfaces"
	"github.com/secmon-lab/controlchart/pkg/domain/model"
	slackSvc "github.com/secmon-lab/controlchart/pkg/service/slack"
	"github.com/urfave/cli/v3"
)

// Slack holds the chat delivery settings
type Slack struct {
	WebhookURL string
	OAuthToken string
	Channel    string
	Username   string
	IconEmoji  string
	Timeout    time.Duration
}

// Flags returns CLI flags for Slack configuration
func (s *Slack) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "slack-webhook-url",
			Usage:       "Slack incoming webhook URL",
			Category:    "Slack",
			Sources:     cli.EnvVars("CONTROLCHART_SLACK_WEBHOOK_URL", "SLACK_WEBHOOK_URL"),
			Destination: &s.WebhookURL,
		},
		&cli.StringFlag{
			Name:        "slack-oauth-token",
			Usage:       "Slack bot token, used instead of the webhook when set",
			Category:    "Slack",
			Sources:     cli.EnvVars("CONTROLCHART_SLACK_OAUTH_TOKEN"),
			Destination: &s.OAuthToken,
		},
		&cli.StringFlag{
			Name:        "slack-channel",
			Usage:       "Channel the report is posted to",
			Category:    "Slack",
			Value:       slackSvc.DefaultChannel,
			Sources:     cli.EnvVars("CONTROLCHART_SLACK_CHANNEL"),
			Destination: &s.Channel,
		},
		&cli.StringFlag{
			Name:        "slack-username",
			Usage:       "Display name of the posted message",
			Category:    "Slack",
			Value:       slackSvc.DefaultUsername,
			Sources:     cli.EnvVars("CONTROLCHART_SLACK_USERNAME"),
			Destination: &s.Username,
		},
		&cli.StringFlag{
			Name:        "slack-icon-emoji",
			Usage:       "Icon emoji of the posted message",
			Category:    "Slack",
			Value:       slackSvc.DefaultIconEmoji,
			Sources:     cli.EnvVars("CONTROLCHART_SLACK_ICON_EMOJI"),
			Destination: &s.IconEmoji,
		},
		&cli.DurationFlag{
			Name:        "slack-timeout",
			Usage:       "Timeout of each Slack request",
			Category:    "Slack",
			Value:       slackSvc.DefaultTimeout,
			Sources:     cli.EnvVars("CONTROLCHART_SLACK_TIMEOUT"),
			Destination: &s.Timeout,
		},
	}
}

// IsConfigured checks if a delivery method is set
func (s *Slack) IsConfigured() bool {
	return s.WebhookURL != "" || s.OAuthToken != ""
}

// Identity returns how posted messages appear in the channel
func (s *Slack) Identity() slackSvc.Identity {
	return slackSvc.Identity{
		Channel:   s.Channel,
		Username:  s.Username,
		IconEmoji: s.IconEmoji,
	}
}

// Service creates a Web API client, nil when no bot token is set
func (s *Slack) Service() *slackSvc.Service {
	if s.OAuthToken == "" {
		return nil
	}
	return slackSvc.New(s.OAuthToken, slackSvc.WithTimeout(s.Timeout))
}

// Configure creates the notifier delivering reports. With dryRun the
// messages are written to w instead.
func (s *Slack) Configure(w io.Writer, dryRun bool) (interfaces.Notifier, error) {
	switch {
	case dryRun:
		return slackSvc.NewWriterNotifier(w), nil
	case s.OAuthToken != "":
		return slackSvc.NewBotNotifier(s.Service(), s.Identity()), nil
	case s.WebhookURL != "":
		return slackSvc.NewWebhookNotifier(s.WebhookURL, s.Identity(), s.Timeout), nil
	}
	return nil, goerr.New("slack is not configured (--slack-webhook-url or SLACK_WEBHOOK_URL)",
		goerr.T(model.ErrTagConfig))
}

// LogValue returns structured log value
func (s Slack) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Bool("has_webhook_url", s.WebhookURL != ""),
		slog.Bool("has_oauth_token", s.OAuthToken != ""),
		slog.String("channel", s.Channel),
		slog.String("username", s.Username),
		slog.Duration("timeout", s.Timeout),
	)
}
