package model

import (
	"github.com/secmon-lab/controlchart/pkg/domain/types"
)

// ServerInfo describes the issue tracker instance
type ServerInfo struct {
	BaseURL        string `json:"baseUrl"`
	Version        string `json:"version"`
	ServerTitle    string `json:"serverTitle"`
	DeploymentType string `json:"deploymentType"`
}

// Project is a project visible to the configured account
type Project struct {
	Key  types.ProjectKey `json:"key"`
	Name string           `json:"name"`
}

// ConnectionReport is the outcome of a tracker connectivity check
type ConnectionReport struct {
	Server  *ServerInfo        `json:"server"`
	Visible int                `json:"visible"`
	Found   []types.ProjectKey `json:"found"`
	Missing []types.ProjectKey `json:"missing"`
}

// OK reports whether every configured project is visible
func (r *ConnectionReport) OK() bool {
	return len(r.Missing) == 0
}

// StatusInspection lists the workflow statuses of one project and how they
// relate to the target status label
type StatusInspection struct {
	Project     types.ProjectKey    `json:"project"`
	Statuses    []types.StatusLabel `json:"statuses"`
	Exact       bool                `json:"exact"`
	NearMatches []types.StatusLabel `json:"nearMatches"`
	Err         error               `json:"-"`
}
