package usecase

import (
	"context"

	"courier/internal/domain/entity"
)

// CityUsecase defines city lookup and creation.
type CityUsecase interface {
	ListCities(ctx context.Context, search string) ([]*entity.City, error)
	CreateCity(ctx context.Context, name string) (*entity.City, error)
}
