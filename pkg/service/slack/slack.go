package slack

import (
	"context"
	"net/http"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/controlchart/pkg/domain/model"
	"github.com/slack-go/slack"
)

// DefaultTimeout bounds every Slack request
const DefaultTimeout = 30 * time.Second

// Service provides Slack Web API capabilities for bot tokens
type Service struct {
	client *slack.Client
}

// Option configures a Service
type Option func(*serviceConfig)

type serviceConfig struct {
	apiURL  string
	timeout time.Duration
}

// WithAPIURL overrides the Slack Web API endpoint. The URL must end with a slash.
func WithAPIURL(url string) Option {
	return func(c *serviceConfig) {
		c.apiURL = url
	}
}

// WithTimeout sets the HTTP timeout of Slack requests
func WithTimeout(timeout time.Duration) Option {
	return func(c *serviceConfig) {
		c.timeout = timeout
	}
}

// New creates a new Slack service
func New(token string, opts ...Option) *Service {
	cfg := serviceConfig{timeout: DefaultTimeout}
	for _, opt := range opts {
		opt(&cfg)
	}

	options := []slack.Option{
		slack.OptionHTTPClient(&http.Client{Timeout: cfg.timeout}),
	}
	if cfg.apiURL != "" {
		options = append(options, slack.OptionAPIURL(cfg.apiURL))
	}

	return &Service{
		client: slack.New(token, options...),
	}
}

// PostMessage sends a message to a Slack channel
func (s *Service) PostMessage(ctx context.Context, channel string, options ...slack.MsgOption) (string, string, error) {
	channelID, timestamp, err := s.client.PostMessageContext(ctx, channel, options...)
	if err != nil {
		return "", "", goerr.Wrap(err, "failed to post message to Slack",
			goerr.V("channel", channel),
			goerr.T(model.ErrTagNotify))
	}
	return channelID, timestamp, nil
}

// AuthTestContext tests authentication and returns basic information about the team and bot
func (s *Service) AuthTestContext(ctx context.Context) (*slack.AuthTestResponse, error) {
	resp, err := s.client.AuthTestContext(ctx)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to authenticate with Slack")
	}
	return resp, nil
}
