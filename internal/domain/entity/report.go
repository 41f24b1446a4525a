package entity

import "github.com/google/uuid"

// ReportGroupBy selects the time bucket of the financial breakdown.
type ReportGroupBy string

const (
	GroupByDay   ReportGroupBy = "day"
	GroupByWeek  ReportGroupBy = "week"
	GroupByMonth ReportGroupBy = "month"
)

// IsValid checks if the bucket is supported.
func (g ReportGroupBy) IsValid() bool {
	switch g {
	case GroupByDay, GroupByWeek, GroupByMonth:
		return true
	default:
		return false
	}
}

// DateRange is an inclusive calendar date range.
type DateRange struct {
	From Date `json:"from"`
	To   Date `json:"to"`
}

// StatusCount is the number of orders in one status.
type StatusCount struct {
	Status OrderStatus `json:"status"`
	Count  int64       `json:"count"`
}

// CityCount is the number of orders shipped to one city.
type CityCount struct {
	City       string  `json:"city"`
	Count      int64   `json:"count"`
	Percentage float64 `json:"percentage"`
}

// DriverPerformance aggregates one driver's orders in a range.
type DriverPerformance struct {
	DriverID       uuid.UUID `json:"driver_id"`
	DriverName     string    `json:"driver_name"`
	DriverPhone    string    `json:"driver_phone"`
	TotalOrders    int64     `json:"total_orders"`
	DeliveredCount int64     `json:"delivered_orders"`
	ReturnedCount  int64     `json:"returned_orders"`
	DeliveryRate   float64   `json:"delivery_rate"`
}

// AmountBucket is a collected amount over one time bucket.
type AmountBucket struct {
	Period string  `json:"period"`
	Amount float64 `json:"amount"`
	Count  int64   `json:"count"`
}

// CityAmount is a collected amount for one city.
type CityAmount struct {
	City       string  `json:"city"`
	Amount     float64 `json:"amount"`
	Count      int64   `json:"count"`
	Percentage float64 `json:"percentage"`
}

// StatusReport is the orders-by-status report.
type StatusReport struct {
	Range  DateRange     `json:"range"`
	Total  int64         `json:"total"`
	Counts []StatusCount `json:"counts"`
}

// CityReport is the orders-by-city report.
type CityReport struct {
	Range  DateRange   `json:"range"`
	Total  int64       `json:"total"`
	Cities []CityCount `json:"cities"`
}

// DriverPerformanceReport lists drivers with at least one order in range.
type DriverPerformanceReport struct {
	Range   DateRange           `json:"range"`
	Drivers []DriverPerformance `json:"drivers"`
}

// FinancialReport summarises delivered COD in a range.
type FinancialReport struct {
	Range             DateRange      `json:"range"`
	GroupBy           ReportGroupBy  `json:"group_by"`
	TotalAmount       float64        `json:"total_amount"`
	TotalOrders       int64          `json:"total_orders"`
	AverageOrderValue float64        `json:"average_order_value"`
	Breakdown         []AmountBucket `json:"breakdown"`
	ByCity            []CityAmount   `json:"by_city"`
}

// OrderStats are the dashboard counters.
type OrderStats struct {
	TotalOrders    int64                 `json:"total_orders"`
	TodayOrders    int64                 `json:"today_orders"`
	ByStatus       map[OrderStatus]int64 `json:"by_status"`
	TotalDrivers   int64                 `json:"total_drivers"`
	DeliveredTotal float64               `json:"delivered_total"`
}
