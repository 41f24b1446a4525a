package entity

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// DelegateSheet groups the orders handed to one driver for a delivery run.
type DelegateSheet struct {
	ID           uuid.UUID       `json:"id"`
	SheetBarcode string          `json:"sheet_barcode"`
	DriverID     uuid.UUID       `json:"driver_id"`
	TotalAmount  decimal.Decimal `json:"total_amount"`
	OrderCount   int             `json:"order_count"`
	CreatedBy    uuid.UUID       `json:"created_by"`
	CreatedAt    time.Time       `json:"created_at"`

	Driver *Driver `json:"driver,omitempty"`
}

// MarshalJSON writes total_amount as a fixed two-decimal number.
func (s DelegateSheet) MarshalJSON() ([]byte, error) {
	type plain DelegateSheet

	return json.Marshal(struct {
		plain
		TotalAmount json.Number `json:"total_amount"`
	}{plain: plain(s), TotalAmount: moneyJSON(s.TotalAmount)})
}

// DelegateSheetOrder links an order to a delegate sheet.
type DelegateSheetOrder struct {
	ID      uuid.UUID `json:"id"`
	SheetID uuid.UUID `json:"sheet_id"`
	OrderID uuid.UUID `json:"order_id"`
}

// DelegateSheetFilter narrows delegate sheet listings.
type DelegateSheetFilter struct {
	DriverID *uuid.UUID
	Barcode  string
	Date     *Date
}
