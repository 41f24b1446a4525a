package postgres

import (
	"context"
	"time"

	"courier/internal/domain/entity"
	domainerrors "courier/internal/domain/errors"
	"courier/internal/domain/repository"
	"courier/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// orderRepository implements the repository.OrderRepository interface.
type orderRepository struct {
	db *gorm.DB
}

// NewOrderRepository is the constructor for orderRepository.
func NewOrderRepository(db *gorm.DB) repository.OrderRepository {
	return &orderRepository{
		db: db,
	}
}

// orderFilterScope combines every non-empty filter field conjunctively.
func orderFilterScope(filter entity.OrderFilter) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if filter.Barcode != "" {
			db = db.Where("barcode ILIKE ?", containsPattern(filter.Barcode))
		}
		if filter.RecipientName != "" {
			db = db.Where("recipient_name ILIKE ?", containsPattern(filter.RecipientName))
		}
		if filter.Status != "" {
			db = db.Where("status = ?", string(filter.Status))
		}
		if filter.City != "" {
			db = db.Where("recipient_city = ?", filter.City)
		}
		if filter.DriverID != nil {
			db = db.Where("driver_id = ?", *filter.DriverID)
		}

		return orderDateScope(filter.Date)(db)
	}
}

func orderDateScope(date *entity.Date) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if date == nil {
			return db
		}

		return db.Where("order_date = ?", toDatatypesDate(*date))
	}
}

// List returns one page of filtered orders with their drivers, newest first.
func (repo *orderRepository) List(ctx context.Context, filter entity.OrderFilter, page entity.PageRequest) ([]*entity.Order, int64, error) {
	var total int64
	if err := repo.db.WithContext(ctx).
		Model(&model.OrderModel{}).
		Scopes(orderFilterScope(filter)).
		Count(&total).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to count orders")
	}

	var orderModels []*model.OrderModel
	if err := repo.db.WithContext(ctx).
		Scopes(orderFilterScope(filter)).
		Preload("Driver").
		Order("created_at DESC").
		Offset(page.Offset()).
		Limit(page.Limit).
		Find(&orderModels).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to list orders")
	}

	return toOrderDomains(orderModels), total, nil
}

// ListAll returns up to limit orders, newest first, optionally restricted to one day.
// GORM treats a negative limit as no limit.
func (repo *orderRepository) ListAll(ctx context.Context, date *entity.Date, limit int) ([]*entity.Order, error) {
	var orderModels []*model.OrderModel

	if err := repo.db.WithContext(ctx).
		Scopes(orderDateScope(date)).
		Preload("Driver").
		Order("created_at DESC").
		Limit(limit).
		Find(&orderModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list all orders")
	}

	return toOrderDomains(orderModels), nil
}

// FindByID loads an order with its driver and creator.
func (repo *orderRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	var orderM model.OrderModel

	if err := repo.db.WithContext(ctx).
		Preload("Driver").
		Preload("Creator").
		Where("id = ?", id).
		First(&orderM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrOrderNotFound
		}

		return nil, errors.Wrap(err, "failed to find order by id")
	}

	return toOrderDomain(&orderM), nil
}

// FindByBarcode matches the barcode exactly (case-sensitive).
func (repo *orderRepository) FindByBarcode(ctx context.Context, barcode string) (*entity.Order, error) {
	var orderM model.OrderModel

	if err := repo.db.WithContext(ctx).
		Preload("Driver").
		Preload("Creator").
		Where("barcode = ?", barcode).
		First(&orderM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrOrderNotFound
		}

		return nil, errors.Wrap(err, "failed to find order by barcode")
	}

	return toOrderDomain(&orderM), nil
}

// BarcodeExists reports whether the exact barcode is taken.
func (repo *orderRepository) BarcodeExists(ctx context.Context, barcode string) (bool, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.OrderModel{}).
		Where("barcode = ?", barcode).
		Count(&count).Error; err != nil {
		return false, errors.Wrap(err, "failed to check barcode")
	}

	return count > 0, nil
}

// FindByIDs loads the orders with the given ids. Missing ids are silently absent.
func (repo *orderRepository) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]*entity.Order, error) {
	if len(ids) == 0 {
		return []*entity.Order{}, nil
	}

	var orderModels []*model.OrderModel
	if err := repo.db.WithContext(ctx).
		Where("id IN ?", ids).
		Find(&orderModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find orders by ids")
	}

	return toOrderDomains(orderModels), nil
}

// CountByDriver counts orders currently assigned to the driver.
func (repo *orderRepository) CountByDriver(ctx context.Context, driverID uuid.UUID) (int64, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.OrderModel{}).
		Where("driver_id = ?", driverID).
		Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count driver orders")
	}

	return count, nil
}

// Create persists a new order.
func (repo *orderRepository) Create(ctx context.Context, order *entity.Order) error {
	orderM := fromOrderDomain(order)

	if err := repo.db.WithContext(ctx).Omit("Driver", "Creator").Create(orderM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateBarcode
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrCreatorNotFound
		}
		if isCheckConstraintViolation(err) {
			return domainerrors.NewValidationError(domainerrors.FieldError{Field: "cod_amount", Message: "must not be negative"})
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create order")
	}

	order.ID = orderM.ID
	order.CreatedAt = orderM.CreatedAt
	order.UpdatedAt = orderM.UpdatedAt

	return nil
}

// Update writes every mutable column of the order.
func (repo *orderRepository) Update(ctx context.Context, order *entity.Order) error {
	result := repo.db.WithContext(ctx).
		Model(&model.OrderModel{}).
		Where("id = ?", order.ID).
		Updates(map[string]any{
			"barcode":           order.Barcode,
			"order_date":        toDatatypesDate(order.OrderDate),
			"recipient_name":    order.RecipientName,
			"recipient_phone":   order.RecipientPhone,
			"recipient_address": order.RecipientAddress,
			"recipient_city":    order.RecipientCity,
			"notes":             order.Notes,
			"cod_amount":        order.CODAmount,
			"updated_at":        order.UpdatedAt,
		})

	if result.Error != nil {
		if isUniqueConstraintViolation(result.Error) {
			return repository.ErrDuplicateBarcode
		}
		if isCheckConstraintViolation(result.Error) {
			return domainerrors.NewValidationError(domainerrors.FieldError{Field: "cod_amount", Message: "must not be negative"})
		}

		return errors.Wrap(result.Error, "failed to update order")
	}

	if result.RowsAffected == 0 {
		return repository.ErrOrderNotFound
	}

	return nil
}

// UpdateStatus overwrites the order status.
func (repo *orderRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status entity.OrderStatus, updatedAt time.Time) error {
	result := repo.db.WithContext(ctx).
		Model(&model.OrderModel{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"status":     string(status),
			"updated_at": updatedAt,
		})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update order status")
	}

	if result.RowsAffected == 0 {
		return repository.ErrOrderNotFound
	}

	return nil
}

// AssignDriver sets or, with a nil id, clears the order's driver.
func (repo *orderRepository) AssignDriver(ctx context.Context, id uuid.UUID, driverID *uuid.UUID, updatedAt time.Time) error {
	var driver any
	if driverID != nil {
		driver = *driverID
	}

	result := repo.db.WithContext(ctx).
		Model(&model.OrderModel{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"driver_id":  driver,
			"updated_at": updatedAt,
		})

	if result.Error != nil {
		if isForeignKeyConstraintViolation(result.Error) {
			return repository.ErrDriverNotFound
		}

		return errors.Wrap(result.Error, "failed to assign driver")
	}

	if result.RowsAffected == 0 {
		return repository.ErrOrderNotFound
	}

	return nil
}

// Delete removes an order unconditionally.
func (repo *orderRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.OrderModel{})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete order")
	}

	if result.RowsAffected == 0 {
		return repository.ErrOrderNotFound
	}

	return nil
}

func toOrderDomains(orderModels []*model.OrderModel) []*entity.Order {
	orders := make([]*entity.Order, 0, len(orderModels))
	for _, orderM := range orderModels {
		orders = append(orders, toOrderDomain(orderM))
	}

	return orders
}
