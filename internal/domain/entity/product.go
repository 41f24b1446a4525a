package entity

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ProductUnit is the unit a product is stocked in.
type ProductUnit string

const (
	ProductUnitPiece  ProductUnit = "PIECE"
	ProductUnitKG     ProductUnit = "KG"
	ProductUnitCarton ProductUnit = "CARTON"
)

// IsValid checks if the unit is one of the closed set.
func (u ProductUnit) IsValid() bool {
	switch u {
	case ProductUnitPiece, ProductUnitKG, ProductUnitCarton:
		return true
	default:
		return false
	}
}

// Product is a stocked item.
type Product struct {
	ID         uuid.UUID       `json:"id"`
	Name       string          `json:"name"`
	Quantity   int             `json:"quantity"`
	Price      decimal.Decimal `json:"price"`
	Unit       ProductUnit     `json:"unit"`
	Barcode    string          `json:"barcode"`
	ExpiryDate *Date           `json:"expiry_date"`
	CreatedAt  time.Time       `json:"created_at"`
	UpdatedAt  time.Time       `json:"updated_at"`
}

// MarshalJSON writes price as a fixed two-decimal number.
func (p Product) MarshalJSON() ([]byte, error) {
	type plain Product

	return json.Marshal(struct {
		plain
		Price json.Number `json:"price"`
	}{plain: plain(p), Price: moneyJSON(p.Price)})
}
