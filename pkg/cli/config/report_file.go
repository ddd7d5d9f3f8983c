package config

import (
	"bytes"
	"errors"
	"io"
	"os"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/controlchart/pkg/domain/model"
	"gopkg.in/yaml.v3"
)

// LoadReportFile loads report settings from a YAML file. Unknown keys are
// rejected. The result is not validated since flags may still override it.
func LoadReportFile(path string) (*model.ReportConfig, error) {
	if path == "" {
		return nil, goerr.New("configuration file path is required")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, goerr.Wrap(err, "configuration file not found",
				goerr.V("path", path),
				goerr.T(model.ErrTagConfig))
		}
		return nil, goerr.Wrap(err, "failed to read configuration file",
			goerr.V("path", path))
	}

	var cfg model.ReportConfig
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, goerr.Wrap(err, "failed to parse YAML configuration",
			goerr.V("path", path),
			goerr.T(model.ErrTagConfig))
	}

	return &cfg, nil
}
