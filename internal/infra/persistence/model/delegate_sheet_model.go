package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// DelegateSheetModel mirrors the 'delegate_sheets' table.
type DelegateSheetModel struct {
	ID           uuid.UUID       `gorm:"type:uuid;primaryKey"`
	SheetBarcode string          `gorm:"type:varchar(100);uniqueIndex;not null"`
	DriverID     uuid.UUID       `gorm:"type:uuid;not null;index"`
	TotalAmount  decimal.Decimal `gorm:"type:numeric(12,2);not null;default:0"`
	OrderCount   int             `gorm:"not null;default:0"`
	CreatedBy    uuid.UUID       `gorm:"type:uuid;not null"`
	CreatedAt    time.Time       `gorm:"index"`

	Driver  *DriverModel              `gorm:"foreignKey:DriverID;constraint:OnDelete:RESTRICT"`
	Creator *UserModel                `gorm:"foreignKey:CreatedBy;constraint:OnDelete:RESTRICT"`
	Orders  []DelegateSheetOrderModel `gorm:"foreignKey:SheetID"`
}

// TableName explicitly sets the table name for GORM.
func (DelegateSheetModel) TableName() string {
	return "delegate_sheets"
}

// BeforeCreate assigns an id when the caller did not.
func (m *DelegateSheetModel) BeforeCreate(*gorm.DB) error {
	return newID(&m.ID)
}

// DelegateSheetOrderModel mirrors the 'delegate_sheet_orders' link table.
type DelegateSheetOrderModel struct {
	ID      uuid.UUID `gorm:"type:uuid;primaryKey"`
	SheetID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_sheet_order"`
	OrderID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_sheet_order;index"`

	Sheet *DelegateSheetModel `gorm:"foreignKey:SheetID;constraint:OnDelete:CASCADE"`
	Order *OrderModel         `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (DelegateSheetOrderModel) TableName() string {
	return "delegate_sheet_orders"
}

// BeforeCreate assigns an id when the caller did not.
func (m *DelegateSheetOrderModel) BeforeCreate(*gorm.DB) error {
	return newID(&m.ID)
}
