package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// ProductModel mirrors the 'products' table.
type ProductModel struct {
	ID         uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Name       string          `gorm:"type:varchar(255);not null"`
	Quantity   int             `gorm:"not null;default:0;check:quantity >= 0"`
	Price      decimal.Decimal `gorm:"type:numeric(12,2);not null;default:0;check:price >= 0"`
	Unit       string          `gorm:"type:varchar(16);not null;default:PIECE"`
	Barcode    string          `gorm:"type:varchar(100);uniqueIndex;not null"`
	ExpiryDate *datatypes.Date
	CreatedAt  time.Time `gorm:"index"`
	UpdatedAt  time.Time
}

// TableName explicitly sets the table name for GORM.
func (ProductModel) TableName() string {
	return "products"
}

// BeforeCreate assigns an id when the caller did not.
func (m *ProductModel) BeforeCreate(*gorm.DB) error {
	return newID(&m.ID)
}
