package postgres

import (
	"context"

	"courier/internal/domain/entity"
	domainerrors "courier/internal/domain/errors"
	"courier/internal/domain/repository"
	"courier/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

const linkBatchSize = 200

// delegateSheetRepository implements the repository.DelegateSheetRepository interface.
type delegateSheetRepository struct {
	db *gorm.DB
}

// NewDelegateSheetRepository is the constructor for delegateSheetRepository.
func NewDelegateSheetRepository(db *gorm.DB) repository.DelegateSheetRepository {
	return &delegateSheetRepository{
		db: db,
	}
}

func sheetFilterScope(filter entity.DelegateSheetFilter) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if filter.DriverID != nil {
			db = db.Where("driver_id = ?", *filter.DriverID)
		}
		if filter.Barcode != "" {
			db = db.Where("sheet_barcode ILIKE ?", containsPattern(filter.Barcode))
		}
		if filter.Date != nil {
			start, end := dayBounds(*filter.Date)
			db = db.Where("created_at >= ? AND created_at < ?", start, end)
		}

		return db
	}
}

// List returns one page of sheets with their drivers, newest first.
func (repo *delegateSheetRepository) List(ctx context.Context, filter entity.DelegateSheetFilter, page entity.PageRequest) ([]*entity.DelegateSheet, int64, error) {
	var total int64
	if err := repo.db.WithContext(ctx).
		Model(&model.DelegateSheetModel{}).
		Scopes(sheetFilterScope(filter)).
		Count(&total).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to count delegate sheets")
	}

	var sheetModels []*model.DelegateSheetModel
	if err := repo.db.WithContext(ctx).
		Scopes(sheetFilterScope(filter)).
		Preload("Driver").
		Order("created_at DESC").
		Offset(page.Offset()).
		Limit(page.Limit).
		Find(&sheetModels).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to list delegate sheets")
	}

	return toDelegateSheetDomains(sheetModels), total, nil
}

// ListAll returns every sheet, newest first.
func (repo *delegateSheetRepository) ListAll(ctx context.Context) ([]*entity.DelegateSheet, error) {
	var sheetModels []*model.DelegateSheetModel

	if err := repo.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&sheetModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list all delegate sheets")
	}

	return toDelegateSheetDomains(sheetModels), nil
}

// FindByID loads a sheet with its driver.
func (repo *delegateSheetRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.DelegateSheet, error) {
	var sheetM model.DelegateSheetModel

	if err := repo.db.WithContext(ctx).
		Preload("Driver").
		Where("id = ?", id).
		First(&sheetM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrDelegateSheetNotFound
		}

		return nil, errors.Wrap(err, "failed to find delegate sheet by id")
	}

	return toDelegateSheetDomain(&sheetM), nil
}

// Create persists the sheet row only; links are written by CreateLinks.
func (repo *delegateSheetRepository) Create(ctx context.Context, sheet *entity.DelegateSheet) error {
	sheetM := fromDelegateSheetDomain(sheet)

	if err := repo.db.WithContext(ctx).Omit("Driver", "Creator", "Orders").Create(sheetM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateSheetBarcode
		}
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrDriverNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create delegate sheet")
	}

	sheet.ID = sheetM.ID
	sheet.CreatedAt = sheetM.CreatedAt

	return nil
}

// CreateLinks inserts the sheet-order link rows in batches.
func (repo *delegateSheetRepository) CreateLinks(ctx context.Context, links []*entity.DelegateSheetOrder) error {
	if len(links) == 0 {
		return nil
	}

	linkModels := make([]*model.DelegateSheetOrderModel, 0, len(links))
	for _, link := range links {
		linkModels = append(linkModels, &model.DelegateSheetOrderModel{
			ID:      link.ID,
			SheetID: link.SheetID,
			OrderID: link.OrderID,
		})
	}

	if err := repo.db.WithContext(ctx).
		Omit("Sheet", "Order").
		CreateInBatches(linkModels, linkBatchSize).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrOrderNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to link orders to delegate sheet")
	}

	for i, linkM := range linkModels {
		links[i].ID = linkM.ID
	}

	return nil
}

// FindOrders follows the link table and projects the order side, newest first.
func (repo *delegateSheetRepository) FindOrders(ctx context.Context, sheetID uuid.UUID) ([]*entity.Order, error) {
	var orderModels []*model.OrderModel

	if err := repo.db.WithContext(ctx).
		Joins("JOIN delegate_sheet_orders dso ON dso.order_id = orders.id").
		Where("dso.sheet_id = ?", sheetID).
		Preload("Driver").
		Order("orders.created_at DESC").
		Find(&orderModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find delegate sheet orders")
	}

	return toOrderDomains(orderModels), nil
}

func toDelegateSheetDomains(sheetModels []*model.DelegateSheetModel) []*entity.DelegateSheet {
	sheets := make([]*entity.DelegateSheet, 0, len(sheetModels))
	for _, sheetM := range sheetModels {
		sheets = append(sheets, toDelegateSheetDomain(sheetM))
	}

	return sheets
}
