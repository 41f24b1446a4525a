package postgres

import (
	"context"
	"time"

	"courier/internal/domain/entity"
	"courier/internal/domain/repository"
	"courier/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/plugin/dbresolver"
)

// reportRepository runs read-only aggregates, routed to replicas when configured.
type reportRepository struct {
	db *gorm.DB
}

// NewReportRepository is the constructor for reportRepository.
func NewReportRepository(db *gorm.DB) repository.ReportRepository {
	return &reportRepository{
		db: db,
	}
}

func (repo *reportRepository) read(ctx context.Context) *gorm.DB {
	return repo.db.WithContext(ctx).Clauses(dbresolver.Read)
}

func (repo *reportRepository) ordersInRange(ctx context.Context, rng entity.DateRange) *gorm.DB {
	return repo.read(ctx).
		Model(&model.OrderModel{}).
		Where("order_date BETWEEN ? AND ?", toDatatypesDate(rng.From), toDatatypesDate(rng.To))
}

type statusRow struct {
	Status string
	Count  int64
}

func toStatusTotals(rows []statusRow) []repository.StatusTotal {
	totals := make([]repository.StatusTotal, 0, len(rows))
	for _, row := range rows {
		totals = append(totals, repository.StatusTotal{Status: entity.OrderStatus(row.Status), Count: row.Count})
	}

	return totals
}

type cityRow struct {
	City   string
	Count  int64
	Amount decimal.Decimal
}

func toCityTotals(rows []cityRow) []repository.CityTotal {
	totals := make([]repository.CityTotal, 0, len(rows))
	for _, row := range rows {
		totals = append(totals, repository.CityTotal(row))
	}

	return totals
}

// CountByStatus counts orders per status.
func (repo *reportRepository) CountByStatus(ctx context.Context, rng entity.DateRange) ([]repository.StatusTotal, error) {
	var rows []statusRow

	if err := repo.ordersInRange(ctx, rng).
		Select("status, COUNT(*) AS count").
		Group("status").
		Order("status").
		Scan(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to count orders by status")
	}

	return toStatusTotals(rows), nil
}

// CountByCity counts orders per recipient city, largest first.
func (repo *reportRepository) CountByCity(ctx context.Context, rng entity.DateRange) ([]repository.CityTotal, error) {
	var rows []cityRow

	if err := repo.ordersInRange(ctx, rng).
		Select("recipient_city AS city, COUNT(*) AS count, COALESCE(SUM(cod_amount), 0) AS amount").
		Group("recipient_city").
		Order("count DESC, city ASC").
		Scan(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to count orders by city")
	}

	return toCityTotals(rows), nil
}

type driverRow struct {
	DriverID    uuid.UUID
	DriverName  string
	DriverPhone string
	Total       int64
	Delivered   int64
	Returned    int64
}

// DriverTotals aggregates per driver. The inner join drops drivers without orders in range.
func (repo *reportRepository) DriverTotals(ctx context.Context, rng entity.DateRange) ([]repository.DriverTotal, error) {
	var rows []driverRow

	if err := repo.read(ctx).
		Table("drivers AS d").
		Select(`d.id AS driver_id, d.driver_name, d.driver_phone,
			COUNT(o.id) AS total,
			COUNT(o.id) FILTER (WHERE o.status = ?) AS delivered,
			COUNT(o.id) FILTER (WHERE o.status IN ?) AS returned`,
			string(entity.OrderStatusDelivered),
			[]string{string(entity.OrderStatusPartialReturn), string(entity.OrderStatusFullReturn)}).
		Joins("JOIN orders o ON o.driver_id = d.id").
		Where("o.order_date BETWEEN ? AND ?", toDatatypesDate(rng.From), toDatatypesDate(rng.To)).
		Group("d.id, d.driver_name, d.driver_phone").
		Order("total DESC").
		Scan(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to aggregate driver performance")
	}

	totals := make([]repository.DriverTotal, 0, len(rows))
	for _, row := range rows {
		totals = append(totals, repository.DriverTotal(row))
	}

	return totals, nil
}

type amountRow struct {
	Count  int64
	Amount decimal.Decimal
}

// Delivered sums the COD of delivered orders.
func (repo *reportRepository) Delivered(ctx context.Context, rng entity.DateRange) (repository.DeliveredTotal, error) {
	var row amountRow

	if err := repo.ordersInRange(ctx, rng).
		Select("COUNT(*) AS count, COALESCE(SUM(cod_amount), 0) AS amount").
		Where("status = ?", string(entity.OrderStatusDelivered)).
		Scan(&row).Error; err != nil {
		return repository.DeliveredTotal{}, errors.Wrap(err, "failed to sum delivered orders")
	}

	return repository.DeliveredTotal(row), nil
}

type bucketRow struct {
	Period time.Time
	Count  int64
	Amount decimal.Decimal
}

// DeliveredByBucket groups delivered COD by date_trunc of order_date. Weeks start on Monday.
func (repo *reportRepository) DeliveredByBucket(ctx context.Context, rng entity.DateRange, groupBy entity.ReportGroupBy) ([]repository.BucketTotal, error) {
	if !groupBy.IsValid() {
		return nil, errors.Errorf("unsupported bucket %q", groupBy)
	}

	var rows []bucketRow
	if err := repo.ordersInRange(ctx, rng).
		Select("date_trunc(?, order_date::timestamp)::date AS period, COUNT(*) AS count, COALESCE(SUM(cod_amount), 0) AS amount", string(groupBy)).
		Where("status = ?", string(entity.OrderStatusDelivered)).
		Group("1").
		Order("1").
		Scan(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to bucket delivered orders")
	}

	totals := make([]repository.BucketTotal, 0, len(rows))
	for _, row := range rows {
		totals = append(totals, repository.BucketTotal{
			Period: entity.NewDate(row.Period),
			Count:  row.Count,
			Amount: row.Amount,
		})
	}

	return totals, nil
}

// DeliveredByCity groups delivered COD by recipient city, largest amount first.
func (repo *reportRepository) DeliveredByCity(ctx context.Context, rng entity.DateRange) ([]repository.CityTotal, error) {
	var rows []cityRow

	if err := repo.ordersInRange(ctx, rng).
		Select("recipient_city AS city, COUNT(*) AS count, COALESCE(SUM(cod_amount), 0) AS amount").
		Where("status = ?", string(entity.OrderStatusDelivered)).
		Group("recipient_city").
		Order("amount DESC, city ASC").
		Scan(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to sum delivered orders by city")
	}

	return toCityTotals(rows), nil
}

// CountOrders counts all orders, or those of a single order date.
func (repo *reportRepository) CountOrders(ctx context.Context, date *entity.Date) (int64, error) {
	var count int64

	if err := repo.read(ctx).
		Model(&model.OrderModel{}).
		Scopes(orderDateScope(date)).
		Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count orders")
	}

	return count, nil
}

// CountAllByStatus counts every order per status.
func (repo *reportRepository) CountAllByStatus(ctx context.Context) ([]repository.StatusTotal, error) {
	var rows []statusRow

	if err := repo.read(ctx).
		Model(&model.OrderModel{}).
		Select("status, COUNT(*) AS count").
		Group("status").
		Scan(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to count orders by status")
	}

	return toStatusTotals(rows), nil
}

// CountDrivers counts registered drivers.
func (repo *reportRepository) CountDrivers(ctx context.Context) (int64, error) {
	var count int64

	if err := repo.read(ctx).
		Model(&model.DriverModel{}).
		Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count drivers")
	}

	return count, nil
}

// DeliveredAmount sums the COD of every delivered order.
func (repo *reportRepository) DeliveredAmount(ctx context.Context) (decimal.Decimal, error) {
	var row amountRow

	if err := repo.read(ctx).
		Model(&model.OrderModel{}).
		Select("COUNT(*) AS count, COALESCE(SUM(cod_amount), 0) AS amount").
		Where("status = ?", string(entity.OrderStatusDelivered)).
		Scan(&row).Error; err != nil {
		return decimal.Zero, errors.Wrap(err, "failed to sum delivered amount")
	}

	return row.Amount, nil
}
