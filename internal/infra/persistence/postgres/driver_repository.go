package postgres

import (
	"context"

	"courier/internal/domain/entity"
	domainerrors "courier/internal/domain/errors"
	"courier/internal/domain/repository"
	"courier/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// driverRepository implements the repository.DriverRepository interface.
type driverRepository struct {
	db *gorm.DB
}

// NewDriverRepository is the constructor for driverRepository.
func NewDriverRepository(db *gorm.DB) repository.DriverRepository {
	return &driverRepository{
		db: db,
	}
}

func driverFilterScope(filter entity.DriverFilter) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if filter.Search == "" {
			return db
		}
		pattern := containsPattern(filter.Search)

		return db.Where("driver_name ILIKE ? OR driver_phone ILIKE ?", pattern, pattern)
	}
}

// List returns drivers newest first. A nil page returns every match.
func (repo *driverRepository) List(ctx context.Context, filter entity.DriverFilter, page *entity.PageRequest) ([]*entity.Driver, int64, error) {
	query := repo.db.WithContext(ctx).
		Scopes(driverFilterScope(filter)).
		Order("created_at DESC")

	var total int64
	if page != nil {
		if err := repo.db.WithContext(ctx).
			Model(&model.DriverModel{}).
			Scopes(driverFilterScope(filter)).
			Count(&total).Error; err != nil {
			return nil, 0, errors.Wrap(err, "failed to count drivers")
		}
		query = query.Offset(page.Offset()).Limit(page.Limit)
	}

	var driverModels []*model.DriverModel
	if err := query.Find(&driverModels).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to list drivers")
	}

	drivers := make([]*entity.Driver, 0, len(driverModels))
	for _, driverM := range driverModels {
		drivers = append(drivers, toDriverDomain(driverM))
	}
	if page == nil {
		total = int64(len(drivers))
	}

	return drivers, total, nil
}

// FindByID retrieves a driver by its unique ID.
func (repo *driverRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Driver, error) {
	var driverM model.DriverModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&driverM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrDriverNotFound
		}

		return nil, errors.Wrap(err, "failed to find driver by id")
	}

	return toDriverDomain(&driverM), nil
}

// PhoneTaken reports whether a driver other than exclude owns the phone number.
func (repo *driverRepository) PhoneTaken(ctx context.Context, phone string, exclude *uuid.UUID) (bool, error) {
	query := repo.db.WithContext(ctx).
		Model(&model.DriverModel{}).
		Where("driver_phone = ?", phone)
	if exclude != nil {
		query = query.Where("id <> ?", *exclude)
	}

	var count int64
	if err := query.Count(&count).Error; err != nil {
		return false, errors.Wrap(err, "failed to check driver phone")
	}

	return count > 0, nil
}

// Create persists a new driver.
func (repo *driverRepository) Create(ctx context.Context, driver *entity.Driver) error {
	driverM := fromDriverDomain(driver)

	if err := repo.db.WithContext(ctx).Create(driverM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateDriverPhone
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create driver")
	}

	driver.ID = driverM.ID
	driver.CreatedAt = driverM.CreatedAt
	driver.UpdatedAt = driverM.UpdatedAt

	return nil
}

// Update writes every mutable column of the driver.
func (repo *driverRepository) Update(ctx context.Context, driver *entity.Driver) error {
	areas := datatypes.JSONSlice[string]{}
	areas = append(areas, driver.AssignedAreas...)

	result := repo.db.WithContext(ctx).
		Model(&model.DriverModel{}).
		Where("id = ?", driver.ID).
		Updates(map[string]any{
			"driver_name":      driver.DriverName,
			"driver_phone":     driver.DriverPhone,
			"driver_id_number": driver.DriverIDNumber,
			"assigned_areas":   areas,
			"updated_at":       driver.UpdatedAt,
		})

	if result.Error != nil {
		if isUniqueConstraintViolation(result.Error) {
			return repository.ErrDuplicateDriverPhone
		}

		return errors.Wrap(result.Error, "failed to update driver")
	}

	if result.RowsAffected == 0 {
		return repository.ErrDriverNotFound
	}

	return nil
}

// Delete removes a driver. Referencing rows make the delete fail with ErrDriverInUse.
func (repo *driverRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.DriverModel{})

	if result.Error != nil {
		if isForeignKeyConstraintViolation(result.Error) {
			return repository.ErrDriverInUse
		}

		return errors.Wrap(result.Error, "failed to delete driver")
	}

	if result.RowsAffected == 0 {
		return repository.ErrDriverNotFound
	}

	return nil
}
