package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// DriverModel mirrors the 'drivers' table. AssignedAreas is a JSON array of city names.
type DriverModel struct {
	ID             uuid.UUID                   `gorm:"type:uuid;primaryKey"`
	DriverName     string                      `gorm:"type:varchar(255);not null"`
	DriverPhone    string                      `gorm:"type:varchar(50);uniqueIndex;not null"`
	DriverIDNumber string                      `gorm:"column:driver_id_number;type:varchar(100)"`
	AssignedAreas  datatypes.JSONSlice[string] `gorm:"type:jsonb;not null;default:'[]'"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// TableName explicitly sets the table name for GORM.
func (DriverModel) TableName() string {
	return "drivers"
}

// BeforeCreate assigns an id when the caller did not.
func (m *DriverModel) BeforeCreate(*gorm.DB) error {
	return newID(&m.ID)
}
