package impl

import (
	"context"
	"testing"

	"courier/config"
	"courier/internal/domain/entity"
	domainerrors "courier/internal/domain/errors"
	"courier/internal/domain/repository"
	"courier/internal/domain/service"
	mockRepo "courier/internal/mocks/repository"
	mockSvc "courier/internal/mocks/service"
	"courier/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type orderServiceFixtures struct {
	service   *orderService
	txManager *mockRepo.MockTransactionManager
	repos     *repoSet
	publisher *mockSvc.MockEventPublisher
	qrcode    *mockSvc.MockQRCodeService
}

func createTestOrderService(t *testing.T, cfg *config.Config) orderServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	repos := newRepoSet(t)
	publisher := mockSvc.NewMockEventPublisher(t)
	qrcode := mockSvc.NewMockQRCodeService(t)

	srv := NewOrderService(OrderServiceParams{
		TxManager:  txManager,
		OrderRepo:  repos.orderRepo,
		DriverRepo: repos.driver,
		Publisher:  publisher,
		QRCode:     qrcode,
		Config:     cfg,
		Logger:     newDiscardLogger(),
	}).(*orderService)
	srv.now = fixedClock

	return orderServiceFixtures{
		service:   srv,
		txManager: txManager,
		repos:     repos,
		publisher: publisher,
		qrcode:    qrcode,
	}
}

func validOrderInput(creator uuid.UUID) usecase.CreateOrderInput {
	return usecase.CreateOrderInput{
		Barcode:          "BC-1001",
		RecipientName:    "Mona Adel",
		RecipientPhone:   "01000000001",
		RecipientAddress: "12 Nile St",
		RecipientCity:    "Cairo",
		CODAmount:        decimal.RequireFromString("150.00"),
		CreatedBy:        creator,
	}
}

func TestOrderService_CreateOrder_Defaults(t *testing.T) {
	fx := createTestOrderService(t, newTestConfig())
	ctx := context.Background()
	creator := uuid.New()
	input := validOrderInput(creator)

	expectTx(fx.txManager, fx.repos.factory)
	fx.repos.userRepo.EXPECT().Exists(ctx, creator).Return(true, nil)
	fx.repos.orderRepo.EXPECT().BarcodeExists(ctx, "BC-1001").Return(false, nil)
	fx.repos.orderRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Order")).
		Run(func(_ context.Context, order *entity.Order) {
			order.ID = uuid.New()
		}).
		Return(nil)

	order, err := fx.service.CreateOrder(ctx, input)

	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, order.ID)
	assert.Equal(t, entity.OrderStatusEntered, order.Status)
	assert.Equal(t, "2024-03-05", order.OrderDate.String())
	assert.True(t, decimal.RequireFromString("150").Equal(order.CODAmount))
	assert.Equal(t, "150.00", order.CODAmount.StringFixed(2))
	assert.Equal(t, fixedNow, order.CreatedAt)
	assert.Equal(t, fixedNow, order.UpdatedAt)
}

func TestOrderService_CreateOrder_UsesSuppliedDate(t *testing.T) {
	fx := createTestOrderService(t, newTestConfig())
	ctx := context.Background()
	creator := uuid.New()
	input := validOrderInput(creator)
	supplied, err := entity.ParseDate("2024-02-29")
	require.NoError(t, err)
	input.OrderDate = &supplied

	expectTx(fx.txManager, fx.repos.factory)
	fx.repos.userRepo.EXPECT().Exists(ctx, creator).Return(true, nil)
	fx.repos.orderRepo.EXPECT().BarcodeExists(ctx, "BC-1001").Return(false, nil)
	fx.repos.orderRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Order")).Return(nil)

	order, err := fx.service.CreateOrder(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, "2024-02-29", order.OrderDate.String())
}

func TestOrderService_CreateOrder_DuplicateBarcode(t *testing.T) {
	fx := createTestOrderService(t, newTestConfig())
	ctx := context.Background()
	creator := uuid.New()

	expectTx(fx.txManager, fx.repos.factory)
	fx.repos.userRepo.EXPECT().Exists(ctx, creator).Return(true, nil)
	fx.repos.orderRepo.EXPECT().BarcodeExists(ctx, "BC-1001").Return(true, nil)

	order, err := fx.service.CreateOrder(ctx, validOrderInput(creator))

	assert.Nil(t, order)
	assert.ErrorIs(t, err, domainerrors.ErrBarcodeAlreadyExists)
}

func TestOrderService_CreateOrder_RaceOnInsertMapsToConflict(t *testing.T) {
	fx := createTestOrderService(t, newTestConfig())
	ctx := context.Background()
	creator := uuid.New()

	expectTx(fx.txManager, fx.repos.factory)
	fx.repos.userRepo.EXPECT().Exists(ctx, creator).Return(true, nil)
	fx.repos.orderRepo.EXPECT().BarcodeExists(ctx, "BC-1001").Return(false, nil)
	fx.repos.orderRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Order")).Return(repository.ErrDuplicateBarcode)

	_, err := fx.service.CreateOrder(ctx, validOrderInput(creator))

	assert.ErrorIs(t, err, domainerrors.ErrBarcodeAlreadyExists)
}

func TestOrderService_CreateOrder_UnknownCreator(t *testing.T) {
	fx := createTestOrderService(t, newTestConfig())
	ctx := context.Background()
	creator := uuid.New()

	expectTx(fx.txManager, fx.repos.factory)
	fx.repos.userRepo.EXPECT().Exists(ctx, creator).Return(false, nil)

	_, err := fx.service.CreateOrder(ctx, validOrderInput(creator))

	assert.ErrorIs(t, err, domainerrors.ErrCreatorNotFound)
}

func TestOrderService_CreateOrder_NegativeCOD(t *testing.T) {
	fx := createTestOrderService(t, newTestConfig())
	input := validOrderInput(uuid.New())
	input.CODAmount = decimal.NewFromInt(-1)

	_, err := fx.service.CreateOrder(context.Background(), input)

	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestOrderService_ListOrders(t *testing.T) {
	t.Run("paginated", func(t *testing.T) {
		fx := createTestOrderService(t, newTestConfig())
		ctx := context.Background()
		filter := entity.OrderFilter{RecipientName: "mona"}

		fx.repos.orderRepo.EXPECT().
			List(ctx, filter, entity.PageRequest{Page: 2, Limit: 10}).
			Return([]*entity.Order{{Barcode: "A"}}, 11, nil)

		page, err := fx.service.ListOrders(ctx, usecase.ListOrdersInput{
			Filter: filter,
			Page:   entity.PageRequest{Page: 2},
		})

		require.NoError(t, err)
		require.NotNil(t, page.Pagination)
		assert.Len(t, page.Items, 1)
		assert.Equal(t, int64(11), page.Pagination.Total)
		assert.Equal(t, 2, page.Pagination.TotalPages)
	})

	t.Run("all ignores field filters and caps", func(t *testing.T) {
		cfg := newTestConfig()
		cfg.Orders.ListAllCap = 5
		fx := createTestOrderService(t, cfg)
		ctx := context.Background()
		day, _ := entity.ParseDate("2024-03-01")

		fx.repos.orderRepo.EXPECT().ListAll(ctx, &day, 5).Return([]*entity.Order{}, nil)

		page, err := fx.service.ListOrders(ctx, usecase.ListOrdersInput{
			Filter: entity.OrderFilter{Barcode: "ignored", Date: &day},
			All:    true,
		})

		require.NoError(t, err)
		assert.Nil(t, page.Pagination)
	})
}

func TestOrderService_UpdateOrder_BarcodeConflict(t *testing.T) {
	fx := createTestOrderService(t, newTestConfig())
	ctx := context.Background()
	id := uuid.New()
	newBarcode := "BC-2"

	expectTx(fx.txManager, fx.repos.factory)
	fx.repos.orderRepo.EXPECT().FindByID(ctx, id).Return(&entity.Order{ID: id, Barcode: "BC-1"}, nil)
	fx.repos.orderRepo.EXPECT().BarcodeExists(ctx, newBarcode).Return(true, nil)

	_, err := fx.service.UpdateOrder(ctx, id, entity.OrderChanges{Barcode: &newBarcode})

	assert.ErrorIs(t, err, domainerrors.ErrBarcodeAlreadyExists)
}

func TestOrderService_UpdateOrder_SameBarcodeSkipsCheck(t *testing.T) {
	fx := createTestOrderService(t, newTestConfig())
	ctx := context.Background()
	id := uuid.New()
	barcode := "BC-1"
	notes := "leave at door"

	expectTx(fx.txManager, fx.repos.factory)
	fx.repos.orderRepo.EXPECT().FindByID(ctx, id).Return(&entity.Order{ID: id, Barcode: barcode}, nil)
	fx.repos.orderRepo.EXPECT().Update(ctx, mock.AnythingOfType("*entity.Order")).Return(nil)

	order, err := fx.service.UpdateOrder(ctx, id, entity.OrderChanges{Barcode: &barcode, Notes: &notes})

	require.NoError(t, err)
	assert.Equal(t, notes, order.Notes)
	assert.Equal(t, fixedNow, order.UpdatedAt)
}

func TestOrderService_DeleteOrder_NotFound(t *testing.T) {
	fx := createTestOrderService(t, newTestConfig())
	ctx := context.Background()
	id := uuid.New()

	fx.repos.orderRepo.EXPECT().Delete(ctx, id).Return(repository.ErrOrderNotFound)

	err := fx.service.DeleteOrder(ctx, id)

	assert.ErrorIs(t, err, domainerrors.ErrOrderNotFound)
}

func TestOrderService_AssignDriver(t *testing.T) {
	t.Run("unknown driver leaves order untouched", func(t *testing.T) {
		fx := createTestOrderService(t, newTestConfig())
		ctx := context.Background()
		driverID := uuid.New()

		fx.repos.driver.EXPECT().FindByID(ctx, driverID).Return(nil, repository.ErrDriverNotFound)

		_, err := fx.service.AssignDriver(ctx, uuid.New(), &driverID)

		assert.ErrorIs(t, err, domainerrors.ErrDriverNotFound)
		fx.repos.orderRepo.AssertNotCalled(t, "AssignDriver", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("nil clears assignment and publishes", func(t *testing.T) {
		fx := createTestOrderService(t, newTestConfig())
		ctx := context.Background()
		id := uuid.New()

		fx.repos.orderRepo.EXPECT().AssignDriver(ctx, id, (*uuid.UUID)(nil), fixedNow).Return(nil)
		fx.repos.orderRepo.EXPECT().FindByID(ctx, id).Return(&entity.Order{ID: id, Status: entity.OrderStatusEntered}, nil)
		fx.publisher.EXPECT().
			PublishOrderEvent(ctx, mock.MatchedBy(func(e *service.OrderEvent) bool {
				return e.Type == service.OrderEventDriverAssigned && e.OrderID == id.String() && e.DriverID == ""
			})).
			Return(nil)

		order, err := fx.service.AssignDriver(ctx, id, nil)

		require.NoError(t, err)
		assert.Nil(t, order.DriverID)
	})
}

func TestOrderService_UpdateStatus(t *testing.T) {
	t.Run("rejects unknown status", func(t *testing.T) {
		fx := createTestOrderService(t, newTestConfig())

		_, err := fx.service.UpdateStatus(context.Background(), uuid.New(), entity.OrderStatus("lost"))

		assert.ErrorIs(t, err, domainerrors.ErrInvalidOrderStatus)
	})

	t.Run("overwrites any status by default", func(t *testing.T) {
		fx := createTestOrderService(t, newTestConfig())
		ctx := context.Background()
		id := uuid.New()

		expectTx(fx.txManager, fx.repos.factory)
		fx.repos.orderRepo.EXPECT().FindByID(ctx, id).Return(&entity.Order{ID: id, Status: entity.OrderStatusDelivered}, nil)
		fx.repos.orderRepo.EXPECT().UpdateStatus(ctx, id, entity.OrderStatusEntered, fixedNow).Return(nil)
		fx.publisher.EXPECT().PublishOrderEvent(ctx, mock.AnythingOfType("*service.OrderEvent")).Return(errors.New("broker down"))

		order, err := fx.service.UpdateStatus(ctx, id, entity.OrderStatusEntered)

		require.NoError(t, err)
		assert.Equal(t, entity.OrderStatusEntered, order.Status)
		assert.Equal(t, fixedNow, order.UpdatedAt)
	})

	t.Run("strict mode refuses illegal transition", func(t *testing.T) {
		cfg := newTestConfig()
		cfg.Orders.StrictStatusTransitions = true
		fx := createTestOrderService(t, cfg)
		ctx := context.Background()
		id := uuid.New()

		expectTx(fx.txManager, fx.repos.factory)
		fx.repos.orderRepo.EXPECT().FindByID(ctx, id).Return(&entity.Order{ID: id, Status: entity.OrderStatusDelivered}, nil)

		_, err := fx.service.UpdateStatus(ctx, id, entity.OrderStatusEntered)

		assert.ErrorIs(t, err, domainerrors.ErrInvalidStatusTransition)
	})
}

func TestOrderService_Label(t *testing.T) {
	fx := createTestOrderService(t, newTestConfig())
	ctx := context.Background()
	id := uuid.New()

	fx.repos.orderRepo.EXPECT().FindByID(ctx, id).Return(&entity.Order{ID: id, Barcode: "BC-9"}, nil)
	fx.qrcode.EXPECT().GenerateLabel("BC-9").Return([]byte{0x89, 'P', 'N', 'G'}, nil)

	png, err := fx.service.Label(ctx, id)

	require.NoError(t, err)
	assert.Equal(t, []byte{0x89, 'P', 'N', 'G'}, png)
}
