package interfaces

//go:generate moq -out mocks/report_usecase_mock.go -pkg mocks . ReportUseCase

import (
	"context"
	"time"

	"github.com/secmon-lab/controlchart/pkg/domain/model"
)

// ReportUseCase produces the weekly report
type ReportUseCase interface {
	// Run computes and delivers the report for the period around now
	Run(ctx context.Context, now time.Time) (*model.Report, error)
	// Preview computes the report without delivering it
	Preview(ctx context.Context, now time.Time) (*model.Report, error)
}
