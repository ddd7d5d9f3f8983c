package jira

import (
	"context"
	"net/url"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/controlchart/pkg/domain/interfaces"
	"github.com/secmon-lab/controlchart/pkg/domain/model"
	"github.com/secmon-lab/controlchart/pkg/domain/types"
)

var _ interfaces.TrackerInspector = (*Client)(nil)

// ServerInfo implements interfaces.TrackerInspector
func (c *Client) ServerInfo(ctx context.Context) (*model.ServerInfo, error) {
	var info model.ServerInfo
	if err := c.getJSON(ctx, "/serverInfo", nil, &info); err != nil {
		return nil, err
	}
	return &info, nil
}

// Projects implements interfaces.TrackerInspector
func (c *Client) Projects(ctx context.Context) ([]*model.Project, error) {
	var projects []*model.Project
	if err := c.getJSON(ctx, "/project", nil, &projects); err != nil {
		return nil, err
	}
	return projects, nil
}

type issueTypeStatuses struct {
	Name     string `json:"name"`
	Statuses []struct {
		Name string `json:"name"`
	} `json:"statuses"`
}

// ProjectStatuses implements interfaces.TrackerInspector. Statuses shared by
// several issue types are listed once, in first-seen order.
func (c *Client) ProjectStatuses(ctx context.Context, project types.ProjectKey) ([]types.StatusLabel, error) {
	if err := project.Validate(); err != nil {
		return nil, err
	}

	var issueTypes []issueTypeStatuses
	path := "/project/" + url.PathEscape(project.String()) + "/statuses"
	if err := c.getJSON(ctx, path, nil, &issueTypes); err != nil {
		return nil, goerr.Wrap(err, "failed to get project statuses", goerr.V("project", project))
	}

	seen := make(map[string]bool)
	var statuses []types.StatusLabel
	for _, it := range issueTypes {
		for _, s := range it.Statuses {
			if seen[s.Name] {
				continue
			}
			seen[s.Name] = true
			statuses = append(statuses, types.StatusLabel(s.Name))
		}
	}
	return statuses, nil
}
