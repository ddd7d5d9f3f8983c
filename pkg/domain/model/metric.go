package model

import (
	"github.com/secmon-lab/controlchart/pkg/domain/types"
)

// Metric sentinels. MetricNotAvailable means the project could not be fetched,
// MetricZero means it was fetched but had no qualifying issues.
const (
	MetricNotAvailable = "N/A"
	MetricZero         = "0h 0m"
)

// ProjectMetric is the median time-to-QA-ready of one project for one run
type ProjectMetric struct {
	Project types.ProjectKey `json:"project"`
	Value   string           `json:"value"`
	Hours   float64          `json:"hours"`
	Samples int              `json:"samples"`
	Skipped int              `json:"skipped"`
	Err     error            `json:"-"`
}

// NewUnavailableMetric creates the metric of a project whose fetch failed
func NewUnavailableMetric(project types.ProjectKey, err error) *ProjectMetric {
	return &ProjectMetric{
		Project: project,
		Value:   MetricNotAvailable,
		Err:     err,
	}
}

// Available reports whether the metric was computed from fetched data
func (m *ProjectMetric) Available() bool {
	return m.Err == nil
}

// Report is the outcome of one report run
type Report struct {
	RunID   types.RunID      `json:"runId"`
	Range   DateRange        `json:"range"`
	Metrics []*ProjectMetric `json:"metrics"`
	Text    string           `json:"text"`
}
