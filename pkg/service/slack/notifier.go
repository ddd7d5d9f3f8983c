package slack

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"sync"
	"time"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/controlchart/pkg/domain/interfaces"
	"github.com/secmon-lab/controlchart/pkg/domain/model"
	"github.com/slack-go/slack"
)

// Defaults of the posted message
const (
	DefaultChannel   = "#control-chart"
	DefaultUsername  = "QA Metrics Bot"
	DefaultIconEmoji = ":chart_with_upwards_trend:"
)

// Identity is how a posted message appears in the channel
type Identity struct {
	Channel   string
	Username  string
	IconEmoji string
}

// DefaultIdentity returns the identity used when none is configured
func DefaultIdentity() Identity {
	return Identity{
		Channel:   DefaultChannel,
		Username:  DefaultUsername,
		IconEmoji: DefaultIconEmoji,
	}
}

func (id Identity) withDefaults() Identity {
	if id.Channel == "" {
		id.Channel = DefaultChannel
	}
	if id.Username == "" {
		id.Username = DefaultUsername
	}
	if id.IconEmoji == "" {
		id.IconEmoji = DefaultIconEmoji
	}
	return id
}

// WebhookNotifier posts messages to a Slack incoming webhook
type WebhookNotifier struct {
	url      string
	identity Identity
	client   *http.Client
}

var _ interfaces.Notifier = (*WebhookNotifier)(nil)

// NewWebhookNotifier creates a notifier for an incoming webhook URL
func NewWebhookNotifier(url string, identity Identity, timeout time.Duration) *WebhookNotifier {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &WebhookNotifier{
		url:      url,
		identity: identity.withDefaults(),
		client:   &http.Client{Timeout: timeout},
	}
}

// Notify implements interfaces.Notifier
func (n *WebhookNotifier) Notify(ctx context.Context, text string) error {
	msg := &slack.WebhookMessage{
		Channel:   n.identity.Channel,
		Username:  n.identity.Username,
		IconEmoji: n.identity.IconEmoji,
		Text:      text,
	}

	if err := slack.PostWebhookCustomHTTPContext(ctx, n.url, n.client, msg); err != nil {
		return goerr.Wrap(err, "failed to post message to Slack webhook",
			goerr.V("channel", n.identity.Channel),
			goerr.T(model.ErrTagNotify))
	}

	ctxlog.From(ctx).Debug("Posted message to Slack webhook", "channel", n.identity.Channel)
	return nil
}

// BotNotifier posts messages with a bot token through chat.postMessage
type BotNotifier struct {
	service  *Service
	identity Identity
}

var _ interfaces.Notifier = (*BotNotifier)(nil)

// NewBotNotifier creates a notifier posting as the bot of service
func NewBotNotifier(service *Service, identity Identity) *BotNotifier {
	return &BotNotifier{
		service:  service,
		identity: identity.withDefaults(),
	}
}

// Notify implements interfaces.Notifier
func (n *BotNotifier) Notify(ctx context.Context, text string) error {
	channelID, ts, err := n.service.PostMessage(ctx, n.identity.Channel,
		slack.MsgOptionText(text, false),
		slack.MsgOptionUsername(n.identity.Username),
		slack.MsgOptionIconEmoji(n.identity.IconEmoji),
	)
	if err != nil {
		return err
	}

	ctxlog.From(ctx).Debug("Posted message to Slack",
		"channel", channelID,
		"ts", ts,
	)
	return nil
}

// WriterNotifier writes messages to w instead of Slack
type WriterNotifier struct {
	mu sync.Mutex
	w  io.Writer
}

var _ interfaces.Notifier = (*WriterNotifier)(nil)

// NewWriterNotifier creates a notifier printing to w
func NewWriterNotifier(w io.Writer) *WriterNotifier {
	return &WriterNotifier{w: w}
}

// Notify implements interfaces.Notifier
func (n *WriterNotifier) Notify(ctx context.Context, text string) error {
	n.mu.Lock()
	defer n.mu.Unlock()

	if _, err := fmt.Fprintln(n.w, text); err != nil {
		return goerr.Wrap(err, "failed to write message", goerr.T(model.ErrTagNotify))
	}
	return nil
}
