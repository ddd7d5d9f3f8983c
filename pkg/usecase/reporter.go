package usecase

import (
	"context"
	"time"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/controlchart/pkg/domain/interfaces"
	"github.com/secmon-lab/controlchart/pkg/domain/model"
	"github.com/secmon-lab/controlchart/pkg/domain/types"
	"github.com/secmon-lab/controlchart/pkg/service/workhours"
	"golang.org/x/sync/errgroup"
)

// PeriodFunc computes the reporting period for a run started at now
type PeriodFunc func(now time.Time, loc *time.Location) (model.DateRange, error)

// Reporter collects project metrics, renders the report and delivers it
type Reporter struct {
	searcher        interfaces.IssueSearcher
	notifier        interfaces.Notifier
	failureNotifier interfaces.Notifier
	config          model.ReportConfig
	period          PeriodFunc
}

var _ interfaces.ReportUseCase = (*Reporter)(nil)

// ReporterOption configures a Reporter
type ReporterOption func(*Reporter)

// WithPeriod overrides the reporting period, the previous work week by default
func WithPeriod(period PeriodFunc) ReporterOption {
	return func(r *Reporter) {
		r.period = period
	}
}

// WithWeeksAgo reports the work week weeksAgo weeks before the current one
func WithWeeksAgo(weeksAgo int) ReporterOption {
	return WithPeriod(func(now time.Time, loc *time.Location) (model.DateRange, error) {
		return model.WorkWeek(now, loc, weeksAgo), nil
	})
}

// WithFailureNotifier sets where failure messages go, the report notifier by default
func WithFailureNotifier(notifier interfaces.Notifier) ReporterOption {
	return func(r *Reporter) {
		r.failureNotifier = notifier
	}
}

// NewReporter creates a new Reporter
func NewReporter(searcher interfaces.IssueSearcher, notifier interfaces.Notifier, config model.ReportConfig, opts ...ReporterOption) *Reporter {
	r := &Reporter{
		searcher: searcher,
		notifier: notifier,
		config:   config,
		period: func(now time.Time, loc *time.Location) (model.DateRange, error) {
			return model.PreviousWorkWeek(now, loc), nil
		},
	}
	for _, opt := range opts {
		opt(r)
	}
	if r.failureNotifier == nil {
		r.failureNotifier = notifier
	}
	return r
}

// Run computes the report for the period around now and delivers it. Any
// error that escapes per-project handling is reported once through the
// failure notifier and returned.
func (r *Reporter) Run(ctx context.Context, now time.Time) (*model.Report, error) {
	runID := types.NewRunID()
	ctx = ctxlog.With(ctx, ctxlog.From(ctx).With("run_id", runID))
	logger := ctxlog.From(ctx)

	logger.Info("Starting report run")

	report, err := r.build(ctx, runID, now)
	if err == nil {
		logger.Info("Sending report", "text", report.Text)
		if notifyErr := r.notifier.Notify(ctx, report.Text); notifyErr != nil {
			err = goerr.Wrap(notifyErr, "failed to deliver report", goerr.T(model.ErrTagNotify))
		}
	}

	if err != nil {
		logger.Error("Report run failed", "error", err)
		r.notifyFailure(ctx, err)
		return report, err
	}

	logger.Info("Report delivered", "projects", len(report.Metrics))
	return report, nil
}

// Preview computes the report without delivering it
func (r *Reporter) Preview(ctx context.Context, now time.Time) (*model.Report, error) {
	return r.build(ctx, types.NewRunID(), now)
}

func (r *Reporter) build(ctx context.Context, runID types.RunID, now time.Time) (*model.Report, error) {
	if err := r.config.Validate(); err != nil {
		return nil, goerr.Wrap(err, "invalid report configuration")
	}

	loc, err := r.config.Location()
	if err != nil {
		return nil, err
	}

	dr, err := r.period(now, loc)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to compute report period")
	}

	ctxlog.From(ctx).Info("Collecting metrics",
		"start", dr.Start.Format(time.DateTime),
		"end", dr.End.Format(time.DateTime),
		"timezone", r.config.Timezone,
	)

	aggregator := NewAggregator(workhours.New(loc), r.config.Matcher())
	metrics := r.Collect(ctx, dr, aggregator)

	return &model.Report{
		RunID:   runID,
		Range:   dr,
		Metrics: metrics,
		Text:    BuildReport(r.config.HeaderTitle(), dr, r.config.Timezone, metrics),
	}, nil
}

// Collect computes the metric of every configured project, in configured
// order. A project whose issues cannot be fetched is reported as
// MetricNotAvailable and does not affect the others.
func (r *Reporter) Collect(ctx context.Context, dr model.DateRange, aggregator *Aggregator) []*model.ProjectMetric {
	projects := r.config.Projects
	metrics := make([]*model.ProjectMetric, len(projects))

	if r.config.Workers() == 1 {
		for i, project := range projects {
			metrics[i] = r.collectProject(ctx, project, dr, aggregator)
		}
		return metrics
	}

	var eg errgroup.Group
	eg.SetLimit(r.config.Workers())
	for i, project := range projects {
		eg.Go(func() error {
			metrics[i] = r.collectProject(ctx, project, dr, aggregator)
			return nil
		})
	}
	_ = eg.Wait()

	return metrics
}

func (r *Reporter) collectProject(ctx context.Context, project types.ProjectKey, dr model.DateRange, aggregator *Aggregator) *model.ProjectMetric {
	logger := ctxlog.From(ctx)
	logger.Info("Processing project", "project", project)

	issues, err := r.searcher.SearchIssues(ctx, model.IssueQuery{
		Project:      project,
		Range:        dr,
		TargetStatus: r.config.TargetStatus,
		WithHistory:  true,
	})
	if err != nil {
		err = goerr.Wrap(err, "failed to fetch issues",
			goerr.V("project", project),
			goerr.T(model.ErrTagFetch))
		logger.Warn("Project metric unavailable", "project", project, "error", err)
		return model.NewUnavailableMetric(project, err)
	}

	metric := aggregator.Aggregate(ctx, project, issues)
	logger.Info("Project metric computed",
		"project", project,
		"issues", len(issues),
		"samples", metric.Samples,
		"skipped", metric.Skipped,
		"value", metric.Value,
	)
	return metric
}

func (r *Reporter) notifyFailure(ctx context.Context, cause error) {
	NotifyFailure(ctx, r.failureNotifier, cause)
}

// NotifyFailure sends the degraded failure message for cause. A delivery
// error is only logged since there is nowhere left to report it.
func NotifyFailure(ctx context.Context, notifier interfaces.Notifier, cause error) {
	if notifier == nil {
		return
	}
	if err := notifier.Notify(ctx, BuildFailureMessage(cause)); err != nil {
		ctxlog.From(ctx).Error("Failed to deliver failure notification", "error", err)
	}
}
