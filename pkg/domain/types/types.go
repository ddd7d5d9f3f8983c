package types

import (
	"strings"

	"github.com/google/uuid"
	"github.com/m-mizutani/goerr/v2"
)

// ProjectKey represents an issue tracker project key (e.g. "GS1")
type ProjectKey string

// String returns the string representation
func (k ProjectKey) String() string {
	return string(k)
}

// Validate checks that the key is non-empty and has no whitespace
func (k ProjectKey) Validate() error {
	if k == "" {
		return goerr.New("project key cannot be empty")
	}
	if strings.ContainsAny(string(k), " \t\r\n\"") {
		return goerr.New("project key contains invalid characters", goerr.V("key", k))
	}
	return nil
}

// IssueKey represents an issue identifier (e.g. "GS1-123")
type IssueKey string

// String returns the string representation
func (k IssueKey) String() string {
	return string(k)
}

// StatusLabel represents a workflow status name as shown by the issue tracker
type StatusLabel string

// String returns the string representation
func (l StatusLabel) String() string {
	return string(l)
}

// RunID identifies a single report run in logs
type RunID string

// String returns the string representation
func (id RunID) String() string {
	return string(id)
}

// NewRunID creates a new RunID using UUID v7
func NewRunID() RunID {
	id, err := uuid.NewV7()
	if err != nil {
		return RunID(uuid.New().String())
	}
	return RunID(id.String())
}

// ChannelName represents a Slack channel name or ID
type ChannelName string

// String returns the string representation
func (n ChannelName) String() string {
	return string(n)
}
