package impl

import (
	"context"
	"log/slog"
	"sort"

	deliverycontext "courier/internal/delivery/context"
	"courier/internal/domain/entity"
	domainerrors "courier/internal/domain/errors"
	"courier/internal/domain/repository"
	"courier/internal/usecase"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"go.uber.org/fx"
)

const percentPlaces = 2

//nolint:gochecknoglobals
var hundred = decimal.NewFromInt(100)

// reportService implements the ReportUsecase interface.
type reportService struct {
	reportRepo repository.ReportRepository
	logger     *slog.Logger
	today      func() entity.Date
}

// ReportServiceParams holds dependencies for ReportService, injected by Fx.
type ReportServiceParams struct {
	fx.In

	ReportRepo repository.ReportRepository
	Logger     *slog.Logger
}

// NewReportService is the constructor for reportService.
func NewReportService(params ReportServiceParams) usecase.ReportUsecase {
	return &reportService{
		reportRepo: params.ReportRepo,
		logger:     params.Logger,
		today:      entity.Today,
	}
}

func (srv *reportService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func validateRange(rng entity.DateRange) error {
	if rng.From.IsZero() || rng.To.IsZero() || rng.From.After(rng.To.Time) {
		return domainerrors.ErrInvalidDateRange
	}

	return nil
}

// percentage returns part/total*100 rounded to two places, or 0 when total is zero.
func percentage(part, total decimal.Decimal) float64 {
	if total.IsZero() {
		return 0
	}

	return part.Mul(hundred).Div(total).Round(percentPlaces).InexactFloat64()
}

// OrdersByStatus counts orders per status, listing every status even when zero.
func (srv *reportService) OrdersByStatus(ctx context.Context, rng entity.DateRange) (*entity.StatusReport, error) {
	if err := validateRange(rng); err != nil {
		return nil, err
	}

	totals, err := srv.reportRepo.CountByStatus(ctx, rng)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count orders by status")
	}

	counts, total := fillStatusCounts(totals)

	return &entity.StatusReport{Range: rng, Total: total, Counts: counts}, nil
}

func fillStatusCounts(totals []repository.StatusTotal) ([]entity.StatusCount, int64) {
	byStatus := make(map[entity.OrderStatus]int64, len(totals))
	for _, t := range totals {
		byStatus[t.Status] += t.Count
	}

	var total int64
	counts := make([]entity.StatusCount, 0, len(entity.OrderStatuses))
	for _, status := range entity.OrderStatuses {
		counts = append(counts, entity.StatusCount{Status: status, Count: byStatus[status]})
		total += byStatus[status]
	}

	return counts, total
}

// OrdersByCity counts orders per recipient city with each city's share of the total.
func (srv *reportService) OrdersByCity(ctx context.Context, rng entity.DateRange) (*entity.CityReport, error) {
	if err := validateRange(rng); err != nil {
		return nil, err
	}

	totals, err := srv.reportRepo.CountByCity(ctx, rng)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count orders by city")
	}

	var total int64
	for _, t := range totals {
		total += t.Count
	}

	cities := make([]entity.CityCount, 0, len(totals))
	for _, t := range totals {
		cities = append(cities, entity.CityCount{
			City:       t.City,
			Count:      t.Count,
			Percentage: percentage(decimal.NewFromInt(t.Count), decimal.NewFromInt(total)),
		})
	}

	return &entity.CityReport{Range: rng, Total: total, Cities: cities}, nil
}

// DriversPerformance reports drivers with orders in range, busiest first.
func (srv *reportService) DriversPerformance(ctx context.Context, rng entity.DateRange) (*entity.DriverPerformanceReport, error) {
	if err := validateRange(rng); err != nil {
		return nil, err
	}

	totals, err := srv.reportRepo.DriverTotals(ctx, rng)
	if err != nil {
		return nil, errors.Wrap(err, "failed to aggregate driver performance")
	}

	drivers := make([]entity.DriverPerformance, 0, len(totals))
	for _, t := range totals {
		if t.Total == 0 {
			continue
		}
		drivers = append(drivers, entity.DriverPerformance{
			DriverID:       t.DriverID,
			DriverName:     t.DriverName,
			DriverPhone:    t.DriverPhone,
			TotalOrders:    t.Total,
			DeliveredCount: t.Delivered,
			ReturnedCount:  t.Returned,
			DeliveryRate:   percentage(decimal.NewFromInt(t.Delivered), decimal.NewFromInt(t.Total)),
		})
	}
	sort.SliceStable(drivers, func(i, j int) bool {
		return drivers[i].TotalOrders > drivers[j].TotalOrders
	})

	return &entity.DriverPerformanceReport{Range: rng, Drivers: drivers}, nil
}

// Financial summarises delivered COD with a time-bucketed and a per-city breakdown.
func (srv *reportService) Financial(ctx context.Context, rng entity.DateRange, groupBy entity.ReportGroupBy) (*entity.FinancialReport, error) {
	if err := validateRange(rng); err != nil {
		return nil, err
	}
	if groupBy == "" {
		groupBy = entity.GroupByDay
	}
	if !groupBy.IsValid() {
		return nil, domainerrors.NewValidationError(domainerrors.FieldError{Field: "groupBy", Message: "groupBy must be one of day, week, month"})
	}

	report := &entity.FinancialReport{
		Range:     rng,
		GroupBy:   groupBy,
		Breakdown: []entity.AmountBucket{},
		ByCity:    []entity.CityAmount{},
	}

	delivered, err := srv.reportRepo.Delivered(ctx, rng)
	if err != nil {
		return nil, errors.Wrap(err, "failed to sum delivered orders")
	}
	if delivered.Count == 0 {
		return report, nil
	}

	report.TotalAmount = delivered.Amount.Round(percentPlaces).InexactFloat64()
	report.TotalOrders = delivered.Count
	report.AverageOrderValue = delivered.Amount.Div(decimal.NewFromInt(delivered.Count)).Round(percentPlaces).InexactFloat64()

	buckets, err := srv.reportRepo.DeliveredByBucket(ctx, rng, groupBy)
	if err != nil {
		return nil, errors.Wrap(err, "failed to bucket delivered orders")
	}
	for _, b := range buckets {
		report.Breakdown = append(report.Breakdown, entity.AmountBucket{
			Period: b.Period.String(),
			Amount: b.Amount.InexactFloat64(),
			Count:  b.Count,
		})
	}

	cities, err := srv.reportRepo.DeliveredByCity(ctx, rng)
	if err != nil {
		return nil, errors.Wrap(err, "failed to group delivered orders by city")
	}
	for _, c := range cities {
		report.ByCity = append(report.ByCity, entity.CityAmount{
			City:       c.City,
			Amount:     c.Amount.InexactFloat64(),
			Count:      c.Count,
			Percentage: percentage(c.Amount, delivered.Amount),
		})
	}

	srv.log(ctx).Debug("Financial report built",
		slog.String("from", rng.From.String()),
		slog.String("to", rng.To.String()),
		slog.Int("buckets", len(report.Breakdown)),
	)

	return report, nil
}

// OrderStats returns the dashboard counters.
func (srv *reportService) OrderStats(ctx context.Context) (*entity.OrderStats, error) {
	total, err := srv.reportRepo.CountOrders(ctx, nil)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count orders")
	}

	today := srv.today()
	todayCount, err := srv.reportRepo.CountOrders(ctx, &today)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count today's orders")
	}

	statusTotals, err := srv.reportRepo.CountAllByStatus(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count orders by status")
	}
	byStatus := make(map[entity.OrderStatus]int64, len(entity.OrderStatuses))
	for _, status := range entity.OrderStatuses {
		byStatus[status] = 0
	}
	for _, t := range statusTotals {
		byStatus[t.Status] += t.Count
	}

	drivers, err := srv.reportRepo.CountDrivers(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count drivers")
	}

	deliveredAmount, err := srv.reportRepo.DeliveredAmount(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to sum delivered amount")
	}

	return &entity.OrderStats{
		TotalOrders:    total,
		TodayOrders:    todayCount,
		ByStatus:       byStatus,
		TotalDrivers:   drivers,
		DeliveredTotal: deliveredAmount.InexactFloat64(),
	}, nil
}
