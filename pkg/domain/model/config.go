package model

import (
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/controlchart/pkg/domain/types"
)

// Defaults of the weekly control chart report
const (
	DefaultTimezone     = "Europe/Kyiv"
	DefaultTargetStatus = types.StatusLabel("Ready For QA")
	DefaultTitle        = "Control Chart, median time"
)

// DefaultProjects returns the project keys reported when none are configured
func DefaultProjects() []types.ProjectKey {
	return []types.ProjectKey{"GS2", "GS1", "PS2", "GS5", "RD1", "GS3"}
}

// ReportConfig is the immutable configuration of a report run.
// Projects order is the order of lines in the report.
type ReportConfig struct {
	Timezone        string             `yaml:"timezone"`
	Projects        []types.ProjectKey `yaml:"projects"`
	TargetStatus    types.StatusLabel  `yaml:"target_status"`
	IgnoreLabelCase bool               `yaml:"ignore_label_case"`
	Title           string             `yaml:"title"`
	Concurrency     int                `yaml:"concurrency"`
}

// Validate validates the report configuration
func (c *ReportConfig) Validate() error {
	if _, err := c.Location(); err != nil {
		return err
	}

	if len(c.Projects) == 0 {
		return goerr.Wrap(ErrNoProjects, "invalid report configuration", goerr.T(ErrTagConfig))
	}

	seen := make(map[types.ProjectKey]bool)
	for i, project := range c.Projects {
		if err := project.Validate(); err != nil {
			return goerr.Wrap(err, "invalid project at index",
				goerr.V("index", i),
				goerr.T(ErrTagConfig))
		}
		if seen[project] {
			return goerr.New("duplicate project key",
				goerr.V("project", project),
				goerr.T(ErrTagConfig))
		}
		seen[project] = true
	}

	if c.TargetStatus == "" {
		return goerr.New("target status label is required", goerr.T(ErrTagConfig))
	}

	if c.Concurrency < 0 {
		return goerr.New("concurrency must not be negative",
			goerr.V("concurrency", c.Concurrency),
			goerr.T(ErrTagConfig))
	}

	return nil
}

// Location loads the configured timezone
func (c *ReportConfig) Location() (*time.Location, error) {
	if c.Timezone == "" {
		return nil, goerr.New("timezone is required", goerr.T(ErrTagConfig))
	}
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to load timezone",
			goerr.V("timezone", c.Timezone),
			goerr.T(ErrTagConfig))
	}
	return loc, nil
}

// Matcher returns the label matcher for the target status
func (c *ReportConfig) Matcher() LabelMatcher {
	return LabelMatcher{Target: c.TargetStatus, IgnoreCase: c.IgnoreLabelCase}
}

// Workers returns the number of projects fetched in parallel
func (c *ReportConfig) Workers() int {
	if c.Concurrency < 1 {
		return 1
	}
	return c.Concurrency
}

// HeaderTitle returns the report title, falling back to the default
func (c *ReportConfig) HeaderTitle() string {
	if c.Title == "" {
		return DefaultTitle
	}
	return c.Title
}
