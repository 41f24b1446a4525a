package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "courier/internal/delivery/context"
	"courier/internal/domain/entity"
	domainerrors "courier/internal/domain/errors"
	"courier/internal/domain/repository"
	"courier/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// cityService implements the CityUsecase interface.
type cityService struct {
	txManager repository.TransactionManager
	cityRepo  repository.CityRepository
	logger    *slog.Logger
}

// CityServiceParams holds dependencies for CityService, injected by Fx.
type CityServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	CityRepo  repository.CityRepository
	Logger    *slog.Logger
}

// NewCityService is the constructor for cityService.
func NewCityService(params CityServiceParams) usecase.CityUsecase {
	return &cityService{
		txManager: params.TxManager,
		cityRepo:  params.CityRepo,
		logger:    params.Logger,
	}
}

// ListCities returns cities by name, filtered by a case-insensitive substring.
func (srv *cityService) ListCities(ctx context.Context, search string) ([]*entity.City, error) {
	cities, err := srv.cityRepo.List(ctx, strings.TrimSpace(search))
	if err != nil {
		return nil, errors.Wrap(err, "failed to list cities")
	}

	return cities, nil
}

// CreateCity rejects case-insensitive duplicates and numbers the city from a sequence.
func (srv *cityService) CreateCity(ctx context.Context, name string) (*entity.City, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, domainerrors.NewValidationError(domainerrors.FieldError{Field: "name", Message: "name is required"})
	}

	city := &entity.City{Name: name}
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		cityRepo := repoFactory.CityRepo()

		exists, err := cityRepo.NameExists(ctx, name)
		if err != nil {
			return errors.Wrap(err, "failed to check city name")
		}
		if exists {
			return domainerrors.ErrCityAlreadyExists
		}

		seq, err := cityRepo.NextSequence(ctx)
		if err != nil {
			return errors.Wrap(err, "failed to allocate city id")
		}
		city.ID = entity.CityID(seq)

		return mapRepoError(cityRepo.Create(ctx, city),
			errorMapping{from: repository.ErrDuplicateCity, to: domainerrors.ErrCityAlreadyExists})
	})
	if err != nil {
		return nil, err
	}

	deliverycontext.GetLoggerOrDefault(ctx, srv.logger).Info("City created", slog.String("city_id", city.ID), slog.String("name", city.Name))

	return city, nil
}
