package impl

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	deliverycontext "courier/internal/delivery/context"
	"courier/internal/domain/entity"
	domainerrors "courier/internal/domain/errors"
	"courier/internal/domain/repository"
	"courier/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

//nolint:gochecknoglobals
var driverErrors = []errorMapping{
	{from: repository.ErrDriverNotFound, to: domainerrors.ErrDriverNotFound},
	{from: repository.ErrDuplicateDriverPhone, to: domainerrors.ErrDriverPhoneExists},
	{from: repository.ErrDriverInUse, to: domainerrors.ErrConflict.WithMessage("Driver is referenced by delegate sheets")},
}

// driverService implements the DriverUsecase interface.
type driverService struct {
	txManager  repository.TransactionManager
	driverRepo repository.DriverRepository
	orderRepo  repository.OrderRepository
	logger     *slog.Logger
	now        func() time.Time
}

// DriverServiceParams holds dependencies for DriverService, injected by Fx.
type DriverServiceParams struct {
	fx.In

	TxManager  repository.TransactionManager
	DriverRepo repository.DriverRepository
	OrderRepo  repository.OrderRepository
	Logger     *slog.Logger
}

// NewDriverService is the constructor for driverService.
func NewDriverService(params DriverServiceParams) usecase.DriverUsecase {
	return &driverService{
		txManager:  params.TxManager,
		driverRepo: params.DriverRepo,
		orderRepo:  params.OrderRepo,
		logger:     params.Logger,
		now:        time.Now,
	}
}

func (srv *driverService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ListDrivers returns a page of drivers, or every driver when All is set.
func (srv *driverService) ListDrivers(ctx context.Context, input usecase.ListDriversInput) (*entity.Page[*entity.Driver], error) {
	if input.All {
		drivers, _, err := srv.driverRepo.List(ctx, input.Filter, nil)
		if err != nil {
			return nil, errors.Wrap(err, "failed to list all drivers")
		}

		return &entity.Page[*entity.Driver]{Items: drivers}, nil
	}

	page := input.Page.Normalize()
	drivers, total, err := srv.driverRepo.List(ctx, input.Filter, &page)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list drivers")
	}

	return &entity.Page[*entity.Driver]{
		Items:      drivers,
		Pagination: entity.NewPagination(page, total),
	}, nil
}

// GetDriver returns one driver.
func (srv *driverService) GetDriver(ctx context.Context, id uuid.UUID) (*entity.Driver, error) {
	driver, err := srv.driverRepo.FindByID(ctx, id)
	if err != nil {
		return nil, mapRepoError(err, driverErrors...)
	}

	return driver, nil
}

// CreateDriver checks phone uniqueness and inserts the driver in one transaction.
func (srv *driverService) CreateDriver(ctx context.Context, input usecase.CreateDriverInput) (*entity.Driver, error) {
	now := srv.now()
	driver := &entity.Driver{
		DriverName:     strings.TrimSpace(input.DriverName),
		DriverPhone:    strings.TrimSpace(input.DriverPhone),
		DriverIDNumber: strings.TrimSpace(input.DriverIDNumber),
		AssignedAreas:  entity.NormalizeAreas(input.AssignedAreas),
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		driverRepo := repoFactory.DriverRepo()

		taken, err := driverRepo.PhoneTaken(ctx, driver.DriverPhone, nil)
		if err != nil {
			return errors.Wrap(err, "failed to check driver phone")
		}
		if taken {
			return domainerrors.ErrDriverPhoneExists
		}

		return mapRepoError(driverRepo.Create(ctx, driver), driverErrors...)
	})
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Driver created", slog.String("driver_id", driver.ID.String()))

	return driver, nil
}

// UpdateDriver applies a partial update; a new phone must not belong to another driver.
func (srv *driverService) UpdateDriver(ctx context.Context, id uuid.UUID, changes entity.DriverChanges) (*entity.Driver, error) {
	var updated *entity.Driver

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		driverRepo := repoFactory.DriverRepo()

		driver, err := driverRepo.FindByID(ctx, id)
		if err != nil {
			return mapRepoError(err, driverErrors...)
		}

		if changes.DriverPhone != nil {
			phone := strings.TrimSpace(*changes.DriverPhone)
			taken, err := driverRepo.PhoneTaken(ctx, phone, &id)
			if err != nil {
				return errors.Wrap(err, "failed to check driver phone")
			}
			if taken {
				return domainerrors.ErrDriverPhoneExists
			}
			driver.DriverPhone = phone
		}
		if changes.DriverName != nil {
			driver.DriverName = strings.TrimSpace(*changes.DriverName)
		}
		if changes.DriverIDNumber != nil {
			driver.DriverIDNumber = strings.TrimSpace(*changes.DriverIDNumber)
		}
		if changes.AssignedAreas != nil {
			driver.AssignedAreas = entity.NormalizeAreas(*changes.AssignedAreas)
		}
		driver.UpdatedAt = srv.now()

		if err := driverRepo.Update(ctx, driver); err != nil {
			return mapRepoError(err, driverErrors...)
		}
		updated = driver

		return nil
	})
	if err != nil {
		return nil, err
	}

	return updated, nil
}

// DeleteDriver refuses while orders reference the driver and reports how many do.
func (srv *driverService) DeleteDriver(ctx context.Context, id uuid.UUID) error {
	if _, err := srv.driverRepo.FindByID(ctx, id); err != nil {
		return mapRepoError(err, driverErrors...)
	}

	count, err := srv.orderRepo.CountByDriver(ctx, id)
	if err != nil {
		return errors.Wrap(err, "failed to count driver orders")
	}
	if count > 0 {
		return domainerrors.ErrDriverHasOrders.
			WithMessage(fmt.Sprintf("Driver has %d assigned order(s) and cannot be deleted", count)).
			WithDetails(map[string]int64{"order_count": count})
	}

	if err := srv.driverRepo.Delete(ctx, id); err != nil {
		return mapRepoError(err, driverErrors...)
	}

	srv.log(ctx).Info("Driver deleted", slog.String("driver_id", id.String()))

	return nil
}
