package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"courier/config"
	deliverycontext "courier/internal/delivery/context"
	"courier/internal/domain/entity"
	domainerrors "courier/internal/domain/errors"
	"courier/internal/domain/repository"
	"courier/internal/domain/service"
	"courier/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

//nolint:gochecknoglobals
var orderErrors = []errorMapping{
	{from: repository.ErrOrderNotFound, to: domainerrors.ErrOrderNotFound},
	{from: repository.ErrDuplicateBarcode, to: domainerrors.ErrBarcodeAlreadyExists},
	{from: repository.ErrDriverNotFound, to: domainerrors.ErrDriverNotFound},
}

// orderService implements the OrderUsecase interface.
type orderService struct {
	txManager         repository.TransactionManager
	orderRepo         repository.OrderRepository
	driverRepo        repository.DriverRepository
	publisher         service.EventPublisher
	qrcode            service.QRCodeService
	strictTransitions bool
	listAllCap        int
	logger            *slog.Logger
	now               func() time.Time
}

// OrderServiceParams holds dependencies for OrderService, injected by Fx.
type OrderServiceParams struct {
	fx.In

	TxManager  repository.TransactionManager
	OrderRepo  repository.OrderRepository
	DriverRepo repository.DriverRepository
	Publisher  service.EventPublisher
	QRCode     service.QRCodeService
	Config     *config.Config
	Logger     *slog.Logger
}

// NewOrderService is the constructor for orderService.
func NewOrderService(params OrderServiceParams) usecase.OrderUsecase {
	srv := &orderService{
		txManager:  params.TxManager,
		orderRepo:  params.OrderRepo,
		driverRepo: params.DriverRepo,
		publisher:  params.Publisher,
		qrcode:     params.QRCode,
		listAllCap: 1000,
		logger:     params.Logger,
		now:        time.Now,
	}
	if params.Config != nil && params.Config.Orders != nil {
		srv.strictTransitions = params.Config.Orders.StrictStatusTransitions
		if params.Config.Orders.ListAllCap > 0 {
			srv.listAllCap = params.Config.Orders.ListAllCap
		}
	}

	return srv
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *orderService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ListOrders returns a filtered page, or with All the newest orders up to the configured cap.
func (srv *orderService) ListOrders(ctx context.Context, input usecase.ListOrdersInput) (*entity.Page[*entity.Order], error) {
	if input.All {
		orders, err := srv.orderRepo.ListAll(ctx, input.Filter.Date, srv.listAllCap)
		if err != nil {
			return nil, errors.Wrap(err, "failed to list all orders")
		}

		return &entity.Page[*entity.Order]{Items: orders}, nil
	}

	page := input.Page.Normalize()
	orders, total, err := srv.orderRepo.List(ctx, input.Filter, page)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list orders")
	}

	return &entity.Page[*entity.Order]{
		Items:      orders,
		Pagination: entity.NewPagination(page, total),
	}, nil
}

// GetOrder returns the order with its driver and creator.
func (srv *orderService) GetOrder(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	order, err := srv.orderRepo.FindByID(ctx, id)
	if err != nil {
		return nil, mapRepoError(err, orderErrors...)
	}

	return order, nil
}

// FindByBarcode looks an order up by its exact barcode.
func (srv *orderService) FindByBarcode(ctx context.Context, barcode string) (*entity.Order, error) {
	order, err := srv.orderRepo.FindByBarcode(ctx, barcode)
	if err != nil {
		return nil, mapRepoError(err, orderErrors...)
	}

	return order, nil
}

// CheckBarcode reports whether the exact barcode is already used.
func (srv *orderService) CheckBarcode(ctx context.Context, barcode string) (bool, error) {
	if strings.TrimSpace(barcode) == "" {
		return false, domainerrors.NewValidationError(domainerrors.FieldError{Field: "barcode", Message: "barcode is required"})
	}

	exists, err := srv.orderRepo.BarcodeExists(ctx, barcode)
	if err != nil {
		return false, errors.Wrap(err, "failed to check barcode")
	}

	return exists, nil
}

// CreateOrder checks the creator and barcode, then inserts the order in one transaction.
func (srv *orderService) CreateOrder(ctx context.Context, input usecase.CreateOrderInput) (*entity.Order, error) {
	if input.CODAmount.IsNegative() {
		return nil, domainerrors.NewValidationError(domainerrors.FieldError{Field: "cod_amount", Message: "cod_amount must not be negative"})
	}

	now := srv.now()
	orderDate := entity.NewDate(now)
	if input.OrderDate != nil && !input.OrderDate.IsZero() {
		orderDate = *input.OrderDate
	}

	order := &entity.Order{
		Barcode:          strings.TrimSpace(input.Barcode),
		OrderDate:        orderDate,
		RecipientName:    input.RecipientName,
		RecipientPhone:   input.RecipientPhone,
		RecipientAddress: input.RecipientAddress,
		RecipientCity:    input.RecipientCity,
		Notes:            input.Notes,
		CODAmount:        input.CODAmount,
		Status:           entity.OrderStatusEntered,
		CreatedBy:        input.CreatedBy,
		CreatedAt:        now,
		UpdatedAt:        now,
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		exists, err := repoFactory.UserRepo().Exists(ctx, input.CreatedBy)
		if err != nil {
			return errors.Wrap(err, "failed to check creator")
		}
		if !exists {
			return domainerrors.ErrCreatorNotFound
		}

		orderRepo := repoFactory.OrderRepo()
		taken, err := orderRepo.BarcodeExists(ctx, order.Barcode)
		if err != nil {
			return errors.Wrap(err, "failed to check barcode")
		}
		if taken {
			return domainerrors.ErrBarcodeAlreadyExists
		}

		return mapRepoError(orderRepo.Create(ctx, order), orderErrors...)
	})
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Order created", slog.String("order_id", order.ID.String()), slog.String("barcode", order.Barcode))

	return order, nil
}

// UpdateOrder applies a partial update, re-checking barcode uniqueness when it changes.
func (srv *orderService) UpdateOrder(ctx context.Context, id uuid.UUID, changes entity.OrderChanges) (*entity.Order, error) {
	if changes.CODAmount != nil && changes.CODAmount.IsNegative() {
		return nil, domainerrors.NewValidationError(domainerrors.FieldError{Field: "cod_amount", Message: "cod_amount must not be negative"})
	}

	var updated *entity.Order
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		orderRepo := repoFactory.OrderRepo()

		order, err := orderRepo.FindByID(ctx, id)
		if err != nil {
			return mapRepoError(err, orderErrors...)
		}

		if changes.Barcode != nil {
			barcode := strings.TrimSpace(*changes.Barcode)
			if barcode != order.Barcode {
				taken, err := orderRepo.BarcodeExists(ctx, barcode)
				if err != nil {
					return errors.Wrap(err, "failed to check barcode")
				}
				if taken {
					return domainerrors.ErrBarcodeAlreadyExists
				}
				order.Barcode = barcode
			}
		}
		applyOrderChanges(order, changes)
		order.UpdatedAt = srv.now()

		if err := orderRepo.Update(ctx, order); err != nil {
			return mapRepoError(err, orderErrors...)
		}
		updated = order

		return nil
	})
	if err != nil {
		return nil, err
	}

	return updated, nil
}

func applyOrderChanges(order *entity.Order, changes entity.OrderChanges) {
	if changes.OrderDate != nil && !changes.OrderDate.IsZero() {
		order.OrderDate = *changes.OrderDate
	}
	if changes.RecipientName != nil {
		order.RecipientName = *changes.RecipientName
	}
	if changes.RecipientPhone != nil {
		order.RecipientPhone = *changes.RecipientPhone
	}
	if changes.RecipientAddress != nil {
		order.RecipientAddress = *changes.RecipientAddress
	}
	if changes.RecipientCity != nil {
		order.RecipientCity = *changes.RecipientCity
	}
	if changes.Notes != nil {
		order.Notes = *changes.Notes
	}
	if changes.CODAmount != nil {
		order.CODAmount = *changes.CODAmount
	}
}

// DeleteOrder removes an order unconditionally.
func (srv *orderService) DeleteOrder(ctx context.Context, id uuid.UUID) error {
	if err := srv.orderRepo.Delete(ctx, id); err != nil {
		return mapRepoError(err, orderErrors...)
	}

	srv.log(ctx).Info("Order deleted", slog.String("order_id", id.String()))

	return nil
}

// AssignDriver sets or clears the driver. A missing driver leaves the order untouched.
func (srv *orderService) AssignDriver(ctx context.Context, id uuid.UUID, driverID *uuid.UUID) (*entity.Order, error) {
	if driverID != nil {
		if _, err := srv.driverRepo.FindByID(ctx, *driverID); err != nil {
			return nil, mapRepoError(err, orderErrors...)
		}
	}

	if err := srv.orderRepo.AssignDriver(ctx, id, driverID, srv.now()); err != nil {
		return nil, mapRepoError(err, orderErrors...)
	}

	order, err := srv.orderRepo.FindByID(ctx, id)
	if err != nil {
		return nil, mapRepoError(err, orderErrors...)
	}

	srv.publish(ctx, service.OrderEventDriverAssigned, order)

	return order, nil
}

// UpdateStatus writes the new status. The transition table is only consulted in strict mode.
func (srv *orderService) UpdateStatus(ctx context.Context, id uuid.UUID, status entity.OrderStatus) (*entity.Order, error) {
	if !status.IsValid() {
		return nil, domainerrors.ErrInvalidOrderStatus.WithDetails(map[string]any{
			"status":  status,
			"allowed": entity.OrderStatuses,
		})
	}

	var updated *entity.Order
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		orderRepo := repoFactory.OrderRepo()

		order, err := orderRepo.FindByID(ctx, id)
		if err != nil {
			return mapRepoError(err, orderErrors...)
		}

		if srv.strictTransitions && !order.Status.CanTransitionTo(status) {
			return domainerrors.ErrInvalidStatusTransition.WithDetails(map[string]any{
				"from": order.Status,
				"to":   status,
			})
		}

		now := srv.now()
		if err := orderRepo.UpdateStatus(ctx, id, status, now); err != nil {
			return mapRepoError(err, orderErrors...)
		}
		order.Status = status
		order.UpdatedAt = now
		updated = order

		return nil
	})
	if err != nil {
		return nil, err
	}

	srv.publish(ctx, service.OrderEventStatusChanged, updated)

	return updated, nil
}

// Label renders the order barcode as a QR code.
func (srv *orderService) Label(ctx context.Context, id uuid.UUID) ([]byte, error) {
	order, err := srv.GetOrder(ctx, id)
	if err != nil {
		return nil, err
	}

	png, err := srv.qrcode.GenerateLabel(order.Barcode)
	if err != nil {
		return nil, errors.Wrap(err, "failed to render order label")
	}

	return png, nil
}

// publish is best effort; a failed publish never fails the request.
func (srv *orderService) publish(ctx context.Context, eventType string, order *entity.Order) {
	event := &service.OrderEvent{
		RequestID:  deliverycontext.GetRequestIDFromContext(ctx),
		Type:       eventType,
		OrderID:    order.ID.String(),
		Barcode:    order.Barcode,
		Status:     order.Status.String(),
		OccurredAt: srv.now().UTC(),
	}
	if order.DriverID != nil {
		event.DriverID = order.DriverID.String()
	}

	if err := srv.publisher.PublishOrderEvent(ctx, event); err != nil {
		srv.log(ctx).Warn("Failed to publish order event",
			slog.String("event_type", eventType),
			slog.String("order_id", event.OrderID),
			slog.Any("error", err),
		)
	}
}
