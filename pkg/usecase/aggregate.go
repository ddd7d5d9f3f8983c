package usecase

import (
	"context"
	"fmt"
	"math"
	"slices"
	"time"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/controlchart/pkg/domain/model"
	"github.com/secmon-lab/controlchart/pkg/domain/types"
	"github.com/secmon-lab/controlchart/pkg/service/workhours"
)

// Aggregator turns the issues of one project into its median time-to-QA-ready
type Aggregator struct {
	clock   *workhours.Clock
	matcher model.LabelMatcher
}

// NewAggregator creates a new Aggregator
func NewAggregator(clock *workhours.Clock, matcher model.LabelMatcher) *Aggregator {
	return &Aggregator{
		clock:   clock,
		matcher: matcher,
	}
}

// Sample computes the business hours from creation to the target status of
// one issue. It returns false when the issue never reached the target status.
func (a *Aggregator) Sample(issue *model.Issue) (float64, bool, error) {
	if issue == nil {
		return 0, false, goerr.New("issue is nil", goerr.T(model.ErrTagInvalidIssue))
	}
	if err := issue.Validate(); err != nil {
		return 0, false, err
	}

	transition, ok := ExtractTransition(issue, a.matcher)
	if !ok {
		return 0, false, nil
	}

	return a.clock.ElapsedBusinessHours(transition.CreatedAt, transition.TransitionedAt), true, nil
}

// Aggregate computes the project metric. Invalid issues are skipped and
// counted, issues without a transition are left out. A project without any
// sample reports MetricZero.
func (a *Aggregator) Aggregate(ctx context.Context, project types.ProjectKey, issues []*model.Issue) *model.ProjectMetric {
	logger := ctxlog.From(ctx)

	metric := &model.ProjectMetric{Project: project}
	samples := make([]float64, 0, len(issues))

	for _, issue := range issues {
		hours, ok, err := a.Sample(issue)
		if err != nil {
			metric.Skipped++
			logger.Warn("Skipping issue",
				"project", project,
				"error", err,
			)
			continue
		}
		if !ok {
			logger.Debug("Issue has no transition to target status",
				"project", project,
				"issue", issue.Key,
			)
			continue
		}
		samples = append(samples, hours)
	}

	metric.Samples = len(samples)
	median, ok := Median(samples)
	if !ok {
		metric.Value = model.MetricZero
		return metric
	}

	metric.Hours = median
	metric.Value = FormatHours(median)
	return metric
}

// Median returns the median of samples, averaging the two middle values of an
// even count. It returns false for an empty set.
func Median(samples []float64) (float64, bool) {
	if len(samples) == 0 {
		return 0, false
	}

	sorted := slices.Clone(samples)
	slices.Sort(sorted)

	mid := len(sorted) / 2
	if len(sorted)%2 == 0 {
		return (sorted[mid-1] + sorted[mid]) / 2, true
	}
	return sorted[mid], true
}

// FormatHours formats fractional hours as "{H}h {M}m". The value is rounded to
// the millisecond to absorb float noise, then minutes are truncated.
func FormatHours(hours float64) string {
	if hours <= 0 || math.IsNaN(hours) {
		return model.MetricZero
	}

	ms := math.Round(hours * float64(time.Hour/time.Millisecond))
	d := time.Duration(ms) * time.Millisecond

	h := int64(d / time.Hour)
	m := int64(d % time.Hour / time.Minute)
	return fmt.Sprintf("%dh %dm", h, m)
}
