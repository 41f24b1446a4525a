package impl

import (
	"context"
	"testing"

	"courier/internal/domain/entity"
	domainerrors "courier/internal/domain/errors"
	"courier/internal/domain/repository"
	mockRepo "courier/internal/mocks/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestReportService(t *testing.T) (*reportService, *mockRepo.MockReportRepository) {
	reportRepo := mockRepo.NewMockReportRepository(t)
	srv := NewReportService(ReportServiceParams{ReportRepo: reportRepo, Logger: newDiscardLogger()}).(*reportService)
	srv.today = func() entity.Date { return entity.NewDate(fixedNow) }

	return srv, reportRepo
}

func mustRange(t *testing.T, from, to string) entity.DateRange {
	t.Helper()
	f, err := entity.ParseDate(from)
	require.NoError(t, err)
	e, err := entity.ParseDate(to)
	require.NoError(t, err)

	return entity.DateRange{From: f, To: e}
}

func TestReportService_RejectsInvalidRange(t *testing.T) {
	srv, _ := createTestReportService(t)
	ctx := context.Background()

	_, err := srv.OrdersByStatus(ctx, mustRange(t, "2024-03-10", "2024-03-01"))
	assert.ErrorIs(t, err, domainerrors.ErrInvalidDateRange)

	_, err = srv.OrdersByCity(ctx, entity.DateRange{})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidDateRange)

	_, err = srv.Financial(ctx, mustRange(t, "2024-03-01", "2024-03-02"), "year")
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestReportService_OrdersByStatus_FillsZeros(t *testing.T) {
	srv, reportRepo := createTestReportService(t)
	ctx := context.Background()
	rng := mustRange(t, "2024-03-01", "2024-03-31")

	reportRepo.EXPECT().CountByStatus(ctx, rng).Return([]repository.StatusTotal{
		{Status: entity.OrderStatusDelivered, Count: 4},
		{Status: entity.OrderStatusEntered, Count: 1},
	}, nil)

	report, err := srv.OrdersByStatus(ctx, rng)

	require.NoError(t, err)
	assert.Equal(t, int64(5), report.Total)
	assert.Len(t, report.Counts, len(entity.OrderStatuses))
	for _, c := range report.Counts {
		switch c.Status {
		case entity.OrderStatusDelivered:
			assert.Equal(t, int64(4), c.Count)
		case entity.OrderStatusEntered:
			assert.Equal(t, int64(1), c.Count)
		default:
			assert.Zero(t, c.Count)
		}
	}
}

func TestReportService_OrdersByCity_Percentages(t *testing.T) {
	srv, reportRepo := createTestReportService(t)
	ctx := context.Background()
	rng := mustRange(t, "2024-03-01", "2024-03-31")

	reportRepo.EXPECT().CountByCity(ctx, rng).Return([]repository.CityTotal{
		{City: "Cairo", Count: 2},
		{City: "Giza", Count: 1},
	}, nil)

	report, err := srv.OrdersByCity(ctx, rng)

	require.NoError(t, err)
	assert.Equal(t, int64(3), report.Total)
	assert.InDelta(t, 66.67, report.Cities[0].Percentage, 0.0001)
	assert.InDelta(t, 33.33, report.Cities[1].Percentage, 0.0001)
}

func TestReportService_DriversPerformance(t *testing.T) {
	srv, reportRepo := createTestReportService(t)
	ctx := context.Background()
	rng := mustRange(t, "2024-03-01", "2024-03-31")
	busy, quiet, idle := uuid.New(), uuid.New(), uuid.New()

	reportRepo.EXPECT().DriverTotals(ctx, rng).Return([]repository.DriverTotal{
		{DriverID: quiet, Total: 2, Delivered: 1, Returned: 1},
		{DriverID: idle, Total: 0},
		{DriverID: busy, Total: 8, Delivered: 6, Returned: 1},
	}, nil)

	report, err := srv.DriversPerformance(ctx, rng)

	require.NoError(t, err)
	require.Len(t, report.Drivers, 2)
	assert.Equal(t, busy, report.Drivers[0].DriverID)
	assert.InDelta(t, 75.0, report.Drivers[0].DeliveryRate, 0.0001)
	assert.Equal(t, quiet, report.Drivers[1].DriverID)
	assert.InDelta(t, 50.0, report.Drivers[1].DeliveryRate, 0.0001)
}

func TestReportService_Financial_NoDeliveries(t *testing.T) {
	srv, reportRepo := createTestReportService(t)
	ctx := context.Background()
	rng := mustRange(t, "2024-03-01", "2024-03-31")

	reportRepo.EXPECT().Delivered(ctx, rng).Return(repository.DeliveredTotal{}, nil)

	report, err := srv.Financial(ctx, rng, "")

	require.NoError(t, err)
	assert.Equal(t, entity.GroupByDay, report.GroupBy)
	assert.Zero(t, report.TotalAmount)
	assert.Zero(t, report.TotalOrders)
	assert.Zero(t, report.AverageOrderValue)
	assert.NotNil(t, report.Breakdown)
	assert.Empty(t, report.Breakdown)
	assert.NotNil(t, report.ByCity)
	assert.Empty(t, report.ByCity)
}

func TestReportService_Financial_Breakdowns(t *testing.T) {
	srv, reportRepo := createTestReportService(t)
	ctx := context.Background()
	rng := mustRange(t, "2024-03-01", "2024-03-31")
	week, _ := entity.ParseDate("2024-03-04")

	reportRepo.EXPECT().Delivered(ctx, rng).Return(repository.DeliveredTotal{Count: 3, Amount: decimal.RequireFromString("300.00")}, nil)
	reportRepo.EXPECT().DeliveredByBucket(ctx, rng, entity.GroupByWeek).Return([]repository.BucketTotal{
		{Period: week, Count: 3, Amount: decimal.RequireFromString("300.00")},
	}, nil)
	reportRepo.EXPECT().DeliveredByCity(ctx, rng).Return([]repository.CityTotal{
		{City: "Cairo", Count: 2, Amount: decimal.RequireFromString("200.00")},
		{City: "Giza", Count: 1, Amount: decimal.RequireFromString("100.00")},
	}, nil)

	report, err := srv.Financial(ctx, rng, entity.GroupByWeek)

	require.NoError(t, err)
	assert.InDelta(t, 300.0, report.TotalAmount, 0.0001)
	assert.InDelta(t, 100.0, report.AverageOrderValue, 0.0001)
	require.Len(t, report.Breakdown, 1)
	assert.Equal(t, "2024-03-04", report.Breakdown[0].Period)
	require.Len(t, report.ByCity, 2)
	assert.InDelta(t, 66.67, report.ByCity[0].Percentage, 0.0001)
}

func TestReportService_OrderStats(t *testing.T) {
	srv, reportRepo := createTestReportService(t)
	ctx := context.Background()
	today := entity.NewDate(fixedNow)

	reportRepo.EXPECT().CountOrders(ctx, (*entity.Date)(nil)).Return(10, nil)
	reportRepo.EXPECT().CountOrders(ctx, &today).Return(2, nil)
	reportRepo.EXPECT().CountAllByStatus(ctx).Return([]repository.StatusTotal{{Status: entity.OrderStatusAssigned, Count: 10}}, nil)
	reportRepo.EXPECT().CountDrivers(ctx).Return(4, nil)
	reportRepo.EXPECT().DeliveredAmount(ctx).Return(decimal.RequireFromString("1234.50"), nil)

	stats, err := srv.OrderStats(ctx)

	require.NoError(t, err)
	assert.Equal(t, int64(10), stats.TotalOrders)
	assert.Equal(t, int64(2), stats.TodayOrders)
	assert.Equal(t, int64(10), stats.ByStatus[entity.OrderStatusAssigned])
	assert.Contains(t, stats.ByStatus, entity.OrderStatusDelivered)
	assert.Equal(t, int64(4), stats.TotalDrivers)
	assert.InDelta(t, 1234.5, stats.DeliveredTotal, 0.0001)
}
