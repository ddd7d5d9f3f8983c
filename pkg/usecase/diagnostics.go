package usecase

import (
	"context"
	"strings"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/controlchart/pkg/domain/interfaces"
	"github.com/secmon-lab/controlchart/pkg/domain/model"
	"github.com/secmon-lab/controlchart/pkg/domain/types"
)

// Diagnostics inspects the tracker setup behind a report configuration
type Diagnostics struct {
	tracker interfaces.TrackerInspector
	config  model.ReportConfig
}

// NewDiagnostics creates a new Diagnostics
func NewDiagnostics(tracker interfaces.TrackerInspector, config model.ReportConfig) *Diagnostics {
	return &Diagnostics{
		tracker: tracker,
		config:  config,
	}
}

// CheckConnection verifies the tracker is reachable with the configured
// credentials and that every configured project is visible.
func (d *Diagnostics) CheckConnection(ctx context.Context) (*model.ConnectionReport, error) {
	logger := ctxlog.From(ctx)

	info, err := d.tracker.ServerInfo(ctx)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to get server info")
	}
	logger.Info("Connected to issue tracker",
		"version", info.Version,
		"title", info.ServerTitle,
	)

	projects, err := d.tracker.Projects(ctx)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list projects")
	}

	visible := make(map[types.ProjectKey]bool, len(projects))
	for _, p := range projects {
		visible[p.Key] = true
	}

	report := &model.ConnectionReport{
		Server:  info,
		Visible: len(projects),
	}
	for _, key := range d.config.Projects {
		if visible[key] {
			report.Found = append(report.Found, key)
		} else {
			report.Missing = append(report.Missing, key)
		}
	}

	if !report.OK() {
		logger.Warn("Configured projects are not visible", "missing", report.Missing)
	}
	return report, nil
}

// InspectStatuses lists the statuses of every configured project and flags
// labels that equal the target status only when case is ignored.
func (d *Diagnostics) InspectStatuses(ctx context.Context) []*model.StatusInspection {
	target := d.config.TargetStatus
	results := make([]*model.StatusInspection, 0, len(d.config.Projects))

	for _, project := range d.config.Projects {
		inspection := &model.StatusInspection{Project: project}
		results = append(results, inspection)

		statuses, err := d.tracker.ProjectStatuses(ctx, project)
		if err != nil {
			inspection.Err = goerr.Wrap(err, "failed to get project statuses",
				goerr.V("project", project),
				goerr.T(model.ErrTagFetch))
			ctxlog.From(ctx).Warn("Cannot inspect project statuses", "project", project, "error", inspection.Err)
			continue
		}

		inspection.Statuses = statuses
		for _, status := range statuses {
			switch {
			case status == target:
				inspection.Exact = true
			case strings.EqualFold(status.String(), target.String()):
				inspection.NearMatches = append(inspection.NearMatches, status)
			}
		}
	}

	return results
}
