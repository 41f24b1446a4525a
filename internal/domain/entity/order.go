package entity

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderStatus is the delivery state of an order.
type OrderStatus string

const (
	OrderStatusEntered        OrderStatus = "entered"
	OrderStatusAssigned       OrderStatus = "assigned"
	OrderStatusOutForDelivery OrderStatus = "out_for_delivery"
	OrderStatusDelivered      OrderStatus = "delivered"
	OrderStatusPartialReturn  OrderStatus = "partial_return"
	OrderStatusFullReturn     OrderStatus = "full_return"
)

// OrderStatuses lists every status in lifecycle order.
//
//nolint:gochecknoglobals
var OrderStatuses = []OrderStatus{
	OrderStatusEntered,
	OrderStatusAssigned,
	OrderStatusOutForDelivery,
	OrderStatusDelivered,
	OrderStatusPartialReturn,
	OrderStatusFullReturn,
}

// statusTransitions is the legal successor table, enforced only in strict mode.
//
//nolint:gochecknoglobals
var statusTransitions = map[OrderStatus][]OrderStatus{
	OrderStatusEntered:        {OrderStatusAssigned, OrderStatusOutForDelivery},
	OrderStatusAssigned:       {OrderStatusEntered, OrderStatusOutForDelivery},
	OrderStatusOutForDelivery: {OrderStatusAssigned, OrderStatusDelivered, OrderStatusPartialReturn, OrderStatusFullReturn},
	OrderStatusDelivered:      {},
	OrderStatusPartialReturn:  {},
	OrderStatusFullReturn:     {},
}

// String returns the string representation of the status.
func (s OrderStatus) String() string {
	return string(s)
}

// IsValid checks if the status is one of the closed set.
func (s OrderStatus) IsValid() bool {
	_, ok := statusTransitions[s]

	return ok
}

// IsReturn reports whether the status counts as a returned order.
func (s OrderStatus) IsReturn() bool {
	return s == OrderStatusPartialReturn || s == OrderStatusFullReturn
}

// CanTransitionTo reports whether next is a legal successor. Rewriting the
// current status is always allowed.
func (s OrderStatus) CanTransitionTo(next OrderStatus) bool {
	if s == next {
		return true
	}
	for _, candidate := range statusTransitions[s] {
		if candidate == next {
			return true
		}
	}

	return false
}

// Order is a shipment taken in by the back office.
type Order struct {
	ID               uuid.UUID       `json:"id"`
	Barcode          string          `json:"barcode"`
	OrderDate        Date            `json:"order_date"`
	RecipientName    string          `json:"recipient_name"`
	RecipientPhone   string          `json:"recipient_phone"`
	RecipientAddress string          `json:"recipient_address"`
	RecipientCity    string          `json:"recipient_city"`
	Notes            string          `json:"notes,omitempty"`
	CODAmount        decimal.Decimal `json:"cod_amount"`
	Status           OrderStatus     `json:"status"`
	DriverID         *uuid.UUID      `json:"driver_id"`
	CreatedBy        uuid.UUID       `json:"created_by"`
	CreatedAt        time.Time       `json:"created_at"`
	UpdatedAt        time.Time       `json:"updated_at"`

	Driver  *Driver      `json:"driver,omitempty"`
	Creator *UserSummary `json:"creator,omitempty"`
}

// MarshalJSON writes cod_amount as a fixed two-decimal number.
func (o Order) MarshalJSON() ([]byte, error) {
	type plain Order

	return json.Marshal(struct {
		plain
		CODAmount json.Number `json:"cod_amount"`
	}{plain: plain(o), CODAmount: moneyJSON(o.CODAmount)})
}

// OrderFilter narrows order listings. Empty fields do not filter.
type OrderFilter struct {
	Barcode       string
	RecipientName string
	Status        OrderStatus
	City          string
	DriverID      *uuid.UUID
	Date          *Date
}

// OrderChanges is a partial update; nil fields are left untouched.
type OrderChanges struct {
	Barcode          *string
	OrderDate        *Date
	RecipientName    *string
	RecipientPhone   *string
	RecipientAddress *string
	RecipientCity    *string
	Notes            *string
	CODAmount        *decimal.Decimal
}
