package repository

import (
	"context"

	"courier/internal/domain/entity"

	"github.com/pkg/errors"
)

// ErrDuplicateCity is returned when a city name is already taken (case-insensitive).
var ErrDuplicateCity = errors.New("city already exists")

// CityRepository defines city persistence.
type CityRepository interface {
	// List returns cities ordered by name, filtered by a case-insensitive substring.
	List(ctx context.Context, search string) ([]*entity.City, error)
	NameExists(ctx context.Context, name string) (bool, error)
	// NextSequence reserves the next city number.
	NextSequence(ctx context.Context) (int64, error)
	Create(ctx context.Context, city *entity.City) error
}
