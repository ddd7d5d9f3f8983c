package model

import (
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/controlchart/pkg/domain/types"
)

// StatusField is the changelog field name of workflow status transitions
const StatusField = "status"

// StatusChange represents a single changelog item of an issue
type StatusChange struct {
	Field      string            `json:"field"`
	From       types.StatusLabel `json:"from"`
	To         types.StatusLabel `json:"to"`
	OccurredAt time.Time         `json:"occurredAt"`
}

// IsStatus reports whether the change is a workflow status transition
func (c StatusChange) IsStatus() bool {
	return c.Field == StatusField
}

// Issue is an issue record fetched from the tracker with its change history.
// It is read-only once built.
type Issue struct {
	Key       types.IssueKey `json:"key"`
	CreatedAt time.Time      `json:"createdAt"`
	History   []StatusChange `json:"history"`
}

// Validate checks the fields needed to extract a transition
func (i *Issue) Validate() error {
	if i.Key == "" {
		return goerr.New("issue key is required", goerr.T(ErrTagInvalidIssue))
	}
	if i.CreatedAt.IsZero() {
		return goerr.New("issue created time is missing",
			goerr.V("key", i.Key),
			goerr.T(ErrTagInvalidIssue))
	}
	for idx, change := range i.History {
		if change.IsStatus() && change.OccurredAt.IsZero() {
			return goerr.New("status change time is missing",
				goerr.V("key", i.Key),
				goerr.V("index", idx),
				goerr.T(ErrTagInvalidIssue))
		}
	}
	return nil
}

// Transition is the pair of timestamps a sample is computed from
type Transition struct {
	CreatedAt      time.Time
	TransitionedAt time.Time
}

// IssueQuery describes what the issue tracker is asked for
type IssueQuery struct {
	Project      types.ProjectKey
	Range        DateRange
	TargetStatus types.StatusLabel
	WithHistory  bool
}
