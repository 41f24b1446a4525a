package postgres

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type capturedQuery struct {
	sql  string
	vars []any
}

// newDryRunDB builds statements without a server and records every query.
func newDryRunDB(t *testing.T) (*gorm.DB, *[]capturedQuery) {
	t.Helper()

	db, err := gorm.Open(
		gormpostgres.New(gormpostgres.Config{DSN: "host=localhost user=courier dbname=courier sslmode=disable"}),
		&gorm.Config{DryRun: true, DisableAutomaticPing: true},
	)
	require.NoError(t, err)

	var captured []capturedQuery
	err = db.Callback().Query().After("gorm:query").Register("test:capture", func(tx *gorm.DB) {
		captured = append(captured, capturedQuery{
			sql:  tx.Statement.SQL.String(),
			vars: append([]any(nil), tx.Statement.Vars...),
		})
	})
	require.NoError(t, err)

	return db, &captured
}

func TestUserRepositoryFindByEmailUsesLowercasedLookup(t *testing.T) {
	db, captured := newDryRunDB(t)

	_, _ = NewUserRepository(db).FindByEmail(context.Background(), "Amal@Example.COM")

	require.Len(t, *captured, 1)
	q := (*captured)[0]
	assert.Contains(t, q.sql, `FROM "users"`)
	assert.Contains(t, q.sql, "LOWER(")
	assert.Contains(t, q.vars, "amal@example.com")
}

func TestCityRepositoryListEscapesSearch(t *testing.T) {
	db, captured := newDryRunDB(t)

	_, _ = NewCityRepository(db).List(context.Background(), "Cai_ro")

	require.Len(t, *captured, 1)
	q := (*captured)[0]
	assert.Contains(t, q.sql, `FROM "cities"`)
	assert.Contains(t, q.sql, "LIKE")
	assert.Contains(t, q.sql, `ORDER BY "cities"."name"`)
	assert.Contains(t, q.vars, `%cai\_ro%`)
}

func TestProductRepositoryListOrdersNewestFirst(t *testing.T) {
	db, captured := newDryRunDB(t)

	_, _ = NewProductRepository(db).List(context.Background())

	require.Len(t, *captured, 1)
	assert.Contains(t, (*captured)[0].sql, `ORDER BY "products"."created_at" DESC`)
}
