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
	"courier/internal/domain/service"
	"courier/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"go.uber.org/fx"
)

const sheetBarcodePrefix = "DS"

//nolint:gochecknoglobals
var delegateSheetErrors = []errorMapping{
	{from: repository.ErrDelegateSheetNotFound, to: domainerrors.ErrDelegateSheetNotFound},
	{from: repository.ErrDuplicateSheetBarcode, to: domainerrors.ErrSheetBarcodeExists},
	{from: repository.ErrDriverNotFound, to: domainerrors.ErrDriverNotFound},
	{from: repository.ErrOrderNotFound, to: domainerrors.ErrOrderNotFound},
}

// delegateSheetService implements the DelegateSheetUsecase interface.
type delegateSheetService struct {
	txManager repository.TransactionManager
	sheetRepo repository.DelegateSheetRepository
	qrcode    service.QRCodeService
	logger    *slog.Logger
	now       func() time.Time
}

// DelegateSheetServiceParams holds dependencies for DelegateSheetService, injected by Fx.
type DelegateSheetServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	SheetRepo repository.DelegateSheetRepository
	QRCode    service.QRCodeService
	Logger    *slog.Logger
}

// NewDelegateSheetService is the constructor for delegateSheetService.
func NewDelegateSheetService(params DelegateSheetServiceParams) usecase.DelegateSheetUsecase {
	return &delegateSheetService{
		txManager: params.TxManager,
		sheetRepo: params.SheetRepo,
		qrcode:    params.QRCode,
		logger:    params.Logger,
		now:       time.Now,
	}
}

func (srv *delegateSheetService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ListDelegateSheets returns a page of sheets, newest first.
func (srv *delegateSheetService) ListDelegateSheets(ctx context.Context, filter entity.DelegateSheetFilter, page entity.PageRequest) (*entity.Page[*entity.DelegateSheet], error) {
	page = page.Normalize()

	sheets, total, err := srv.sheetRepo.List(ctx, filter, page)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list delegate sheets")
	}

	return &entity.Page[*entity.DelegateSheet]{
		Items:      sheets,
		Pagination: entity.NewPagination(page, total),
	}, nil
}

// GetDelegateSheet returns one sheet joined with its driver.
func (srv *delegateSheetService) GetDelegateSheet(ctx context.Context, id uuid.UUID) (*entity.DelegateSheet, error) {
	sheet, err := srv.sheetRepo.FindByID(ctx, id)
	if err != nil {
		return nil, mapRepoError(err, delegateSheetErrors...)
	}

	return sheet, nil
}

// CreateDelegateSheet writes the sheet and one link per distinct order in a single transaction.
func (srv *delegateSheetService) CreateDelegateSheet(ctx context.Context, input usecase.CreateDelegateSheetInput) (*entity.DelegateSheet, error) {
	orderIDs := uniqueIDs(input.OrderIDs)
	if len(orderIDs) == 0 {
		return nil, domainerrors.NewValidationError(domainerrors.FieldError{Field: "order_ids", Message: "at least one order is required"})
	}
	if input.TotalAmount != nil && input.TotalAmount.IsNegative() {
		return nil, domainerrors.NewValidationError(domainerrors.FieldError{Field: "total_amount", Message: "total_amount must not be negative"})
	}

	now := srv.now()
	sheet := &entity.DelegateSheet{
		SheetBarcode: strings.TrimSpace(input.SheetBarcode),
		DriverID:     input.DriverID,
		OrderCount:   len(orderIDs),
		CreatedBy:    input.CreatedBy,
		CreatedAt:    now,
	}
	if sheet.SheetBarcode == "" {
		sheet.SheetBarcode = newSheetBarcode(now)
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if _, err := repoFactory.DriverRepo().FindByID(ctx, input.DriverID); err != nil {
			return mapRepoError(err, delegateSheetErrors...)
		}

		orders, err := repoFactory.OrderRepo().FindByIDs(ctx, orderIDs)
		if err != nil {
			return errors.Wrap(err, "failed to load sheet orders")
		}
		if missing := missingOrderIDs(orderIDs, orders); len(missing) > 0 {
			return domainerrors.ErrOrderNotFound.
				WithMessage("Some orders do not exist").
				WithDetails(map[string][]uuid.UUID{"missing_order_ids": missing})
		}

		if input.TotalAmount != nil {
			sheet.TotalAmount = *input.TotalAmount
		} else {
			sheet.TotalAmount = sumCOD(orders)
		}

		sheetRepo := repoFactory.DelegateSheetRepo()
		if err := sheetRepo.Create(ctx, sheet); err != nil {
			return mapRepoError(err, delegateSheetErrors...)
		}

		links := make([]*entity.DelegateSheetOrder, 0, len(orderIDs))
		for _, orderID := range orderIDs {
			links = append(links, &entity.DelegateSheetOrder{SheetID: sheet.ID, OrderID: orderID})
		}

		return mapRepoError(sheetRepo.CreateLinks(ctx, links), delegateSheetErrors...)
	})
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Delegate sheet created",
		slog.String("sheet_id", sheet.ID.String()),
		slog.String("sheet_barcode", sheet.SheetBarcode),
		slog.Int("order_count", sheet.OrderCount),
	)

	return sheet, nil
}

// ListSheetOrders returns the orders linked to a sheet.
func (srv *delegateSheetService) ListSheetOrders(ctx context.Context, id uuid.UUID) ([]*entity.Order, error) {
	if _, err := srv.sheetRepo.FindByID(ctx, id); err != nil {
		return nil, mapRepoError(err, delegateSheetErrors...)
	}

	orders, err := srv.sheetRepo.FindOrders(ctx, id)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list delegate sheet orders")
	}

	return orders, nil
}

// Label renders the sheet barcode as a PNG QR code.
func (srv *delegateSheetService) Label(ctx context.Context, id uuid.UUID) ([]byte, error) {
	sheet, err := srv.GetDelegateSheet(ctx, id)
	if err != nil {
		return nil, err
	}

	png, err := srv.qrcode.GenerateLabel(sheet.SheetBarcode)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate delegate sheet label")
	}

	return png, nil
}

// newSheetBarcode formats DS-YYYYMMDD-XXXXXXXX from the creation day and a random suffix.
func newSheetBarcode(now time.Time) string {
	suffix := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", ""))[:8]

	return fmt.Sprintf("%s-%s-%s", sheetBarcodePrefix, now.UTC().Format("20060102"), suffix)
}

func uniqueIDs(ids []uuid.UUID) []uuid.UUID {
	seen := make(map[uuid.UUID]struct{}, len(ids))
	result := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		result = append(result, id)
	}

	return result
}

func missingOrderIDs(want []uuid.UUID, found []*entity.Order) []uuid.UUID {
	present := make(map[uuid.UUID]struct{}, len(found))
	for _, order := range found {
		present[order.ID] = struct{}{}
	}

	var missing []uuid.UUID
	for _, id := range want {
		if _, ok := present[id]; !ok {
			missing = append(missing, id)
		}
	}

	return missing
}

func sumCOD(orders []*entity.Order) decimal.Decimal {
	total := decimal.Zero
	for _, order := range orders {
		total = total.Add(order.CODAmount)
	}

	return total
}
