package usecase

import (
	"fmt"
	"strings"

	"github.com/secmon-lab/controlchart/pkg/domain/model"
)

const headerDateLayout = "Jan 02"

// BuildReport renders the chat message of a run. Projects are listed in the
// order of metrics.
func BuildReport(title string, dr model.DateRange, zone string, metrics []*model.ProjectMetric) string {
	var b strings.Builder

	fmt.Fprintf(&b, "*%s %s - %s from 00:01 to 23:59 %s time (business days)*\n\n",
		title,
		dr.Start.Format(headerDateLayout),
		dr.End.Format(headerDateLayout),
		zone,
	)

	for _, m := range metrics {
		fmt.Fprintf(&b, "%s - %s\n", m.Project, m.Value)
	}

	return strings.TrimSpace(b.String())
}

// BuildFailureMessage renders the degraded message sent when a run fails
func BuildFailureMessage(err error) string {
	return fmt.Sprintf("🚨 Failed to generate Control Chart metrics:\n```%s```", err.Error())
}
