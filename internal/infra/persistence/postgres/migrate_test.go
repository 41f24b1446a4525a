package postgres

import (
	"testing"

	"courier/internal/infra/persistence/model"

	"github.com/stretchr/testify/assert"
)

func TestResyncSequenceSQL(t *testing.T) {
	got := resyncSequenceSQL(model.CitySequence, "cities", model.CityIDPrefix)

	assert.Equal(t,
		"SELECT setval('city_code_seq', COALESCE((SELECT MAX(substring(id from 6)::bigint) FROM cities WHERE id ~ '^city-[0-9]+$'), 0) + 1, false)",
		got,
	)
}

func TestPostMigrateResyncsCitySequence(t *testing.T) {
	var names []string
	for _, stmt := range postMigrate {
		names = append(names, stmt.name)
	}

	assert.Contains(t, names, "city sequence position")
	assert.Equal(t, "city sequence position", postMigrate[len(postMigrate)-1].name)
}
