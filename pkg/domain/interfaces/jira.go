package interfaces

//go:generate moq -out mocks/issue_searcher_mock.go -pkg mocks . IssueSearcher
//go:generate moq -out mocks/tracker_inspector_mock.go -pkg mocks . TrackerInspector

import (
	"context"

	"github.com/secmon-lab/controlchart/pkg/domain/model"
	"github.com/secmon-lab/controlchart/pkg/domain/types"
)

// IssueSearcher queries the issue tracker
type IssueSearcher interface {
	// SearchIssues returns the issues of query.Project that moved to
	// query.TargetStatus during query.Range, with their change history when
	// query.WithHistory is set.
	SearchIssues(ctx context.Context, query model.IssueQuery) ([]*model.Issue, error)
}

// TrackerInspector exposes the read-only metadata used to diagnose the
// tracker setup
type TrackerInspector interface {
	ServerInfo(ctx context.Context) (*model.ServerInfo, error)
	Projects(ctx context.Context) ([]*model.Project, error)
	ProjectStatuses(ctx context.Context, project types.ProjectKey) ([]types.StatusLabel, error)
}
