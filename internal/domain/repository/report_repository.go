package repository

import (
	"context"

	"courier/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// StatusTotal is a raw status aggregate.
type StatusTotal struct {
	Status entity.OrderStatus
	Count  int64
}

// CityTotal is a raw per-city aggregate.
type CityTotal struct {
	City   string
	Count  int64
	Amount decimal.Decimal
}

// DriverTotal is a raw per-driver aggregate.
type DriverTotal struct {
	DriverID    uuid.UUID
	DriverName  string
	DriverPhone string
	Total       int64
	Delivered   int64
	Returned    int64
}

// BucketTotal is a raw per-period aggregate.
type BucketTotal struct {
	Period entity.Date
	Count  int64
	Amount decimal.Decimal
}

// DeliveredTotal is the delivered amount and count in a range.
type DeliveredTotal struct {
	Count  int64
	Amount decimal.Decimal
}

// ReportRepository runs aggregation queries. All ranges are inclusive on order_date.
type ReportRepository interface {
	CountByStatus(ctx context.Context, rng entity.DateRange) ([]StatusTotal, error)
	CountByCity(ctx context.Context, rng entity.DateRange) ([]CityTotal, error)
	// DriverTotals returns drivers with at least one order in range, busiest first.
	DriverTotals(ctx context.Context, rng entity.DateRange) ([]DriverTotal, error)
	Delivered(ctx context.Context, rng entity.DateRange) (DeliveredTotal, error)
	DeliveredByBucket(ctx context.Context, rng entity.DateRange, groupBy entity.ReportGroupBy) ([]BucketTotal, error)
	DeliveredByCity(ctx context.Context, rng entity.DateRange) ([]CityTotal, error)

	// Dashboard counters
	CountOrders(ctx context.Context, date *entity.Date) (int64, error)
	CountAllByStatus(ctx context.Context) ([]StatusTotal, error)
	CountDrivers(ctx context.Context) (int64, error)
	DeliveredAmount(ctx context.Context) (decimal.Decimal, error)
}
