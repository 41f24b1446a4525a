package postgres

import (
	"fmt"

	"courier/internal/errors"
	"courier/internal/infra/persistence/model"

	"gorm.io/gorm"
)

type schemaStatement struct {
	name string
	sql  string
}

// preMigrate runs before AutoMigrate.
var preMigrate = []schemaStatement{
	{name: "city sequence", sql: "CREATE SEQUENCE IF NOT EXISTS " + model.CitySequence},
}

// postMigrate holds what struct tags cannot express.
var postMigrate = []schemaStatement{
	{name: "city name index", sql: "CREATE UNIQUE INDEX IF NOT EXISTS idx_cities_name_lower ON cities (LOWER(name))"},
	{name: "order report index", sql: "CREATE INDEX IF NOT EXISTS idx_orders_status_date ON orders (status, order_date)"},
	{name: "city sequence position", sql: resyncSequenceSQL(model.CitySequence, model.CityModel{}.TableName(), model.CityIDPrefix)},
}

// resyncSequenceSQL moves seq past the highest numeric suffix already used
// by ids of the form <prefix><digits>, so rows loaded before the sequence
// existed are never reissued.
func resyncSequenceSQL(seq, table, prefix string) string {
	return fmt.Sprintf(
		"SELECT setval('%[1]s', COALESCE((SELECT MAX(substring(id from %[3]d)::bigint) FROM %[2]s WHERE id ~ '^%[4]s[0-9]+$'), 0) + 1, false)",
		seq, table, len(prefix)+1, prefix,
	)
}

// Migrate creates or updates every table plus the objects AutoMigrate cannot express.
func Migrate(db *gorm.DB) error {
	if err := execAll(db, preMigrate); err != nil {
		return err
	}

	if err := db.AutoMigrate(model.All()...); err != nil {
		return errors.Wrap(err, "failed to auto-migrate models")
	}

	return execAll(db, postMigrate)
}

func execAll(db *gorm.DB, statements []schemaStatement) error {
	for _, stmt := range statements {
		if err := db.Exec(stmt.sql).Error; err != nil {
			return errors.Wrapf(err, "failed to apply %s", stmt.name)
		}
	}

	return nil
}
