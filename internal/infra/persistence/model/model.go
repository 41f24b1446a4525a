// Package model holds the GORM table mappings.
// Types are exported so they can be used by the GORM Gen tool from other packages.
package model

import (
	"github.com/google/uuid"
)

// newID fills an empty primary key with a time-ordered UUID.
func newID(id *uuid.UUID) error {
	if *id != uuid.Nil {
		return nil
	}
	generated, err := uuid.NewV7()
	if err != nil {
		return err
	}
	*id = generated

	return nil
}

// All lists every model in migration order.
func All() []any {
	return []any{
		&UserModel{},
		&DriverModel{},
		&CityModel{},
		&OrderModel{},
		&DelegateSheetModel{},
		&DelegateSheetOrderModel{},
		&ProductModel{},
	}
}
