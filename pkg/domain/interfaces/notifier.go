package interfaces

//go:generate moq -out mocks/notifier_mock.go -pkg mocks . Notifier

import "context"

// Notifier delivers a preformatted text block to the configured chat destination
type Notifier interface {
	Notify(ctx context.Context, text string) error
}
