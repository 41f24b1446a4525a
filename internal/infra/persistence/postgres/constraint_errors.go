package postgres

import (
	"strings"

	"courier/internal/errors"

	"gorm.io/gorm"
)

// PostgreSQL SQLSTATE codes for integrity violations. Raw Exec bypasses the
// dialector's translator, so the code is matched in the message as well.
const (
	sqlStateUniqueViolation     = "23505"
	sqlStateForeignKeyViolation = "23503"
	sqlStateCheckViolation      = "23514"
)

func violates(err error, sentinel error, sqlState string) bool {
	if err == nil {
		return false
	}

	return errors.Is(err, sentinel) || strings.Contains(err.Error(), "SQLSTATE "+sqlState)
}

func isUniqueConstraintViolation(err error) bool {
	return violates(err, gorm.ErrDuplicatedKey, sqlStateUniqueViolation)
}

func isForeignKeyConstraintViolation(err error) bool {
	return violates(err, gorm.ErrForeignKeyViolated, sqlStateForeignKeyViolation)
}

func isCheckConstraintViolation(err error) bool {
	return violates(err, gorm.ErrCheckConstraintViolated, sqlStateCheckViolation)
}
