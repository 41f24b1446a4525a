package usecase

import (
	"context"

	"courier/internal/domain/entity"
)

// ReportUsecase defines the reporting and dashboard aggregates.
// Every range is inclusive and must satisfy From <= To.
type ReportUsecase interface {
	OrdersByStatus(ctx context.Context, rng entity.DateRange) (*entity.StatusReport, error)
	OrdersByCity(ctx context.Context, rng entity.DateRange) (*entity.CityReport, error)
	DriversPerformance(ctx context.Context, rng entity.DateRange) (*entity.DriverPerformanceReport, error)
	Financial(ctx context.Context, rng entity.DateRange, groupBy entity.ReportGroupBy) (*entity.FinancialReport, error)
	OrderStats(ctx context.Context) (*entity.OrderStats, error)
}
