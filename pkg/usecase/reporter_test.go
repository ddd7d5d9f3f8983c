package usecase_test

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/controlchart/pkg/domain/interfaces/mocks"
	"github.com/secmon-lab/controlchart/pkg/domain/model"
	"github.com/secmon-lab/controlchart/pkg/domain/types"
	"github.com/secmon-lab/controlchart/pkg/usecase"
)

func reportConfig(projects ...types.ProjectKey) model.ReportConfig {
	return model.ReportConfig{
		Timezone:     "Europe/Kyiv",
		Projects:     projects,
		TargetStatus: model.DefaultTargetStatus,
	}
}

func gs1Issues(loc *time.Location) []*model.Issue {
	return []*model.Issue{
		readyIssue("A",
			time.Date(2026, 10, 5, 9, 0, 0, 0, loc),
			time.Date(2026, 10, 5, 15, 0, 0, 0, loc)),
		readyIssue("B",
			time.Date(2026, 10, 9, 22, 0, 0, 0, loc),
			time.Date(2026, 10, 12, 1, 0, 0, 0, loc)),
		{
			Key:       "GS1-C",
			CreatedAt: time.Date(2026, 10, 6, 9, 0, 0, 0, loc),
		},
	}
}

type recordingNotifier struct {
	mu    sync.Mutex
	texts []string
	err   error
}

func (n *recordingNotifier) Notify(ctx context.Context, text string) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.texts = append(n.texts, text)
	return n.err
}

func TestReporterRun(t *testing.T) {
	ctx := context.Background()
	loc, err := time.LoadLocation("Europe/Kyiv")
	gt.NoError(t, err)
	now := time.Date(2026, 10, 14, 12, 0, 0, 0, loc)

	t.Run("reports every project in configured order", func(t *testing.T) {
		searcher := &mocks.IssueSearcherMock{
			SearchIssuesFunc: func(ctx context.Context, query model.IssueQuery) ([]*model.Issue, error) {
				if query.Project == "GS1" {
					return gs1Issues(loc), nil
				}
				return nil, nil
			},
		}
		notifier := &mocks.NotifierMock{
			NotifyFunc: func(ctx context.Context, text string) error {
				return nil
			},
		}

		reporter := usecase.NewReporter(searcher, notifier, reportConfig("GS2", "GS1"))
		report, err := reporter.Run(ctx, now)
		gt.NoError(t, err).Required()

		gt.Equal(t, len(report.Metrics), 2)
		gt.Equal(t, report.Metrics[0].Value, model.MetricZero)
		gt.Equal(t, report.Metrics[1].Value, "4h 29m")
		gt.NotEqual(t, report.RunID, types.RunID(""))

		gt.Equal(t, len(notifier.NotifyCalls()), 1)
		text := notifier.NotifyCalls()[0].Text
		gt.Equal(t, text, report.Text)
		gt.S(t, text).Contains("Oct 05 - Oct 09")
		gt.True(t, strings.Index(text, "GS2 - 0h 0m") < strings.Index(text, "GS1 - 4h 29m"))
	})

	t.Run("queries the previous work week with history", func(t *testing.T) {
		searcher := &mocks.IssueSearcherMock{
			SearchIssuesFunc: func(ctx context.Context, query model.IssueQuery) ([]*model.Issue, error) {
				return nil, nil
			},
		}
		notifier := &mocks.NotifierMock{
			NotifyFunc: func(ctx context.Context, text string) error { return nil },
		}

		_, err := usecase.NewReporter(searcher, notifier, reportConfig("GS1")).Run(ctx, now)
		gt.NoError(t, err)

		calls := searcher.SearchIssuesCalls()
		gt.Equal(t, len(calls), 1)
		query := calls[0].Query
		gt.Equal(t, query.Project, types.ProjectKey("GS1"))
		gt.Equal(t, query.TargetStatus, model.DefaultTargetStatus)
		gt.True(t, query.WithHistory)
		gt.True(t, query.Range.Start.Equal(time.Date(2026, 10, 5, 0, 1, 0, 0, loc)))
		gt.Equal(t, query.Range.End.Format(model.DateLayout), "2026-10-09")
	})

	t.Run("fetch failure marks only that project unavailable", func(t *testing.T) {
		searcher := &mocks.IssueSearcherMock{
			SearchIssuesFunc: func(ctx context.Context, query model.IssueQuery) ([]*model.Issue, error) {
				if query.Project == "GS2" {
					return nil, errors.New("timeout")
				}
				return gs1Issues(loc), nil
			},
		}
		notifier := &recordingNotifier{}

		report, err := usecase.NewReporter(searcher, notifier, reportConfig("GS2", "GS1")).Run(ctx, now)
		gt.NoError(t, err).Required()

		gt.Equal(t, report.Metrics[0].Value, model.MetricNotAvailable)
		gt.False(t, report.Metrics[0].Available())
		gt.True(t, goerr.HasTag(report.Metrics[0].Err, model.ErrTagFetch))
		gt.Equal(t, report.Metrics[1].Value, "4h 29m")

		gt.Equal(t, len(notifier.texts), 1)
		gt.S(t, notifier.texts[0]).Contains("GS2 - N/A")
		gt.S(t, notifier.texts[0]).Contains("GS1 - 4h 29m")
	})

	t.Run("delivery failure sends one failure message", func(t *testing.T) {
		searcher := &mocks.IssueSearcherMock{
			SearchIssuesFunc: func(ctx context.Context, query model.IssueQuery) ([]*model.Issue, error) {
				return nil, nil
			},
		}
		notifier := &recordingNotifier{err: errors.New("webhook rejected")}

		report, err := usecase.NewReporter(searcher, notifier, reportConfig("GS1")).Run(ctx, now)
		gt.Error(t, err)
		gt.True(t, goerr.HasTag(err, model.ErrTagNotify))
		gt.V(t, report).NotNil()

		gt.Equal(t, len(notifier.texts), 2)
		gt.S(t, notifier.texts[1]).Contains("Failed to generate Control Chart metrics")
		gt.S(t, notifier.texts[1]).Contains("webhook rejected")
	})

	t.Run("invalid configuration is reported through the failure notifier", func(t *testing.T) {
		searcher := &mocks.IssueSearcherMock{}
		notifier := &mocks.NotifierMock{}
		failure := &recordingNotifier{}

		cfg := reportConfig()
		report, err := usecase.NewReporter(searcher, notifier, cfg, usecase.WithFailureNotifier(failure)).Run(ctx, now)
		gt.Error(t, err)
		gt.True(t, errors.Is(err, model.ErrNoProjects))
		gt.True(t, goerr.HasTag(err, model.ErrTagConfig))
		gt.V(t, report).Nil()

		gt.Equal(t, len(searcher.SearchIssuesCalls()), 0)
		gt.Equal(t, len(notifier.NotifyCalls()), 0)
		gt.Equal(t, len(failure.texts), 1)
	})

	t.Run("unknown timezone fails before fetching", func(t *testing.T) {
		searcher := &mocks.IssueSearcherMock{}
		failure := &recordingNotifier{}

		cfg := reportConfig("GS1")
		cfg.Timezone = "Mars/Olympus"
		_, err := usecase.NewReporter(searcher, failure, cfg).Run(ctx, now)
		gt.Error(t, err)
		gt.True(t, goerr.HasTag(err, model.ErrTagConfig))
		gt.Equal(t, len(failure.texts), 1)
	})

	t.Run("weeks ago selects an earlier week", func(t *testing.T) {
		searcher := &mocks.IssueSearcherMock{
			SearchIssuesFunc: func(ctx context.Context, query model.IssueQuery) ([]*model.Issue, error) {
				return nil, nil
			},
		}
		notifier := &recordingNotifier{}

		report, err := usecase.NewReporter(searcher, notifier, reportConfig("GS1"), usecase.WithWeeksAgo(2)).Run(ctx, now)
		gt.NoError(t, err).Required()
		gt.Equal(t, report.Range.Start.Format(model.DateLayout), "2026-09-28")
		gt.S(t, report.Text).Contains("Sep 28 - Oct 02")
	})
}

func TestReporterConcurrentCollectKeepsOrder(t *testing.T) {
	ctx := context.Background()
	loc, err := time.LoadLocation("Europe/Kyiv")
	gt.NoError(t, err)
	now := time.Date(2026, 10, 14, 12, 0, 0, 0, loc)

	projects := []types.ProjectKey{"GS2", "GS1", "PS2", "GS5", "RD1", "GS3"}
	searcher := &mocks.IssueSearcherMock{
		SearchIssuesFunc: func(ctx context.Context, query model.IssueQuery) ([]*model.Issue, error) {
			switch query.Project {
			case "GS2":
				time.Sleep(20 * time.Millisecond)
				return gs1Issues(loc), nil
			case "RD1":
				return nil, errors.New("forbidden")
			}
			return nil, nil
		},
	}

	cfg := reportConfig(projects...)
	cfg.Concurrency = 3
	report, err := usecase.NewReporter(searcher, &recordingNotifier{}, cfg).Preview(ctx, now)
	gt.NoError(t, err).Required()

	gt.Equal(t, len(report.Metrics), len(projects))
	for i, project := range projects {
		gt.Equal(t, report.Metrics[i].Project, project)
	}
	gt.Equal(t, report.Metrics[0].Value, "4h 29m")
	gt.Equal(t, report.Metrics[4].Value, model.MetricNotAvailable)
	gt.Equal(t, len(searcher.SearchIssuesCalls()), len(projects))
}

func TestReporterPreviewDoesNotNotify(t *testing.T) {
	searcher := &mocks.IssueSearcherMock{
		SearchIssuesFunc: func(ctx context.Context, query model.IssueQuery) ([]*model.Issue, error) {
			return nil, nil
		},
	}
	notifier := &mocks.NotifierMock{}

	loc, err := time.LoadLocation("Europe/Kyiv")
	gt.NoError(t, err)

	report, err := usecase.NewReporter(searcher, notifier, reportConfig("GS1")).
		Preview(context.Background(), time.Date(2026, 10, 14, 12, 0, 0, 0, loc))
	gt.NoError(t, err).Required()
	gt.S(t, report.Text).Contains("GS1 - 0h 0m")
	gt.Equal(t, len(notifier.NotifyCalls()), 0)
}
