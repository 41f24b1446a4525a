package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// OrderModel mirrors the 'orders' table.
type OrderModel struct {
	ID               uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Barcode          string          `gorm:"type:varchar(100);uniqueIndex;not null"`
	OrderDate        datatypes.Date  `gorm:"not null;index"`
	RecipientName    string          `gorm:"type:varchar(255);not null"`
	RecipientPhone   string          `gorm:"type:varchar(50);not null"`
	RecipientAddress string          `gorm:"type:text;not null"`
	RecipientCity    string          `gorm:"type:varchar(100);not null;index"`
	Notes            string          `gorm:"type:text"`
	CODAmount        decimal.Decimal `gorm:"column:cod_amount;type:numeric(12,2);not null;default:0;check:cod_amount >= 0"`
	Status           string          `gorm:"type:varchar(32);not null;default:entered;index"`
	DriverID         *uuid.UUID      `gorm:"type:uuid;index"`
	CreatedBy        uuid.UUID       `gorm:"type:uuid;not null;index"`
	CreatedAt        time.Time       `gorm:"index"`
	UpdatedAt        time.Time

	Driver  *DriverModel `gorm:"foreignKey:DriverID;constraint:OnDelete:RESTRICT"`
	Creator *UserModel   `gorm:"foreignKey:CreatedBy;constraint:OnDelete:RESTRICT"`
}

// TableName explicitly sets the table name for GORM.
func (OrderModel) TableName() string {
	return "orders"
}

// BeforeCreate assigns an id when the caller did not.
func (m *OrderModel) BeforeCreate(*gorm.DB) error {
	return newID(&m.ID)
}
