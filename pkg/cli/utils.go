package cli

import (
	"github.com/secmon-lab/controlchart/pkg/cli/config"
	"github.com/secmon-lab/controlchart/pkg/domain/interfaces"
	"github.com/secmon-lab/controlchart/pkg/domain/model"
	"github.com/secmon-lab/controlchart/pkg/service/jira"
	"github.com/secmon-lab/controlchart/pkg/usecase"
	"github.com/urfave/cli/v3"
)

// joinFlags combines multiple flag slices into one
func joinFlags(flags ...[]cli.Flag) []cli.Flag {
	var result []cli.Flag
	for _, f := range flags {
		result = append(result, f...)
	}
	return result
}

// newJiraClient builds the report configuration and a Jira client reading
// timestamps in its timezone
func newJiraClient(jiraCfg *config.Jira, reportCfg *config.Report) (*jira.Client, model.ReportConfig, error) {
	cfg, err := reportCfg.Configure()
	if err != nil {
		return nil, model.ReportConfig{}, err
	}

	loc, err := cfg.Location()
	if err != nil {
		return nil, model.ReportConfig{}, err
	}

	client, err := jiraCfg.Configure(loc)
	if err != nil {
		return nil, model.ReportConfig{}, err
	}
	return client, cfg, nil
}

// newReporter wires the report use case from the flag groups
func newReporter(jiraCfg *config.Jira, reportCfg *config.Report, notifier interfaces.Notifier) (*usecase.Reporter, model.ReportConfig, error) {
	client, cfg, err := newJiraClient(jiraCfg, reportCfg)
	if err != nil {
		return nil, model.ReportConfig{}, err
	}

	opts, err := reportCfg.ReporterOptions()
	if err != nil {
		return nil, model.ReportConfig{}, err
	}

	return usecase.NewReporter(client, notifier, cfg, opts...), cfg, nil
}
