package impl

import (
	"context"
	"regexp"
	"testing"

	"courier/internal/domain/entity"
	domainerrors "courier/internal/domain/errors"
	"courier/internal/domain/repository"
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

type sheetServiceFixtures struct {
	service   *delegateSheetService
	txManager *mockRepo.MockTransactionManager
	repos     *repoSet
	qrcode    *mockSvc.MockQRCodeService
}

func createTestDelegateSheetService(t *testing.T) sheetServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	repos := newRepoSet(t)
	qrcode := mockSvc.NewMockQRCodeService(t)

	srv := NewDelegateSheetService(DelegateSheetServiceParams{
		TxManager: txManager,
		SheetRepo: repos.sheet,
		QRCode:    qrcode,
		Logger:    newDiscardLogger(),
	}).(*delegateSheetService)
	srv.now = fixedClock

	return sheetServiceFixtures{service: srv, txManager: txManager, repos: repos, qrcode: qrcode}
}

func TestDelegateSheetService_Create_DerivesBarcodeAndTotal(t *testing.T) {
	fx := createTestDelegateSheetService(t)
	ctx := context.Background()
	driverID := uuid.New()
	first, second := uuid.New(), uuid.New()
	sheetID := uuid.New()

	expectTx(fx.txManager, fx.repos.factory)
	fx.repos.driver.EXPECT().FindByID(ctx, driverID).Return(&entity.Driver{ID: driverID}, nil)
	fx.repos.orderRepo.EXPECT().FindByIDs(ctx, []uuid.UUID{first, second}).Return([]*entity.Order{
		{ID: first, CODAmount: decimal.RequireFromString("100.50")},
		{ID: second, CODAmount: decimal.RequireFromString("49.50")},
	}, nil)
	fx.repos.sheet.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.DelegateSheet")).
		Run(func(_ context.Context, sheet *entity.DelegateSheet) { sheet.ID = sheetID }).
		Return(nil)
	fx.repos.sheet.EXPECT().
		CreateLinks(ctx, mock.MatchedBy(func(links []*entity.DelegateSheetOrder) bool {
			return len(links) == 2 && links[0].SheetID == sheetID && links[0].OrderID == first && links[1].OrderID == second
		})).
		Return(nil)

	sheet, err := fx.service.CreateDelegateSheet(ctx, usecase.CreateDelegateSheetInput{
		DriverID:  driverID,
		OrderIDs:  []uuid.UUID{first, second, first},
		CreatedBy: uuid.New(),
	})

	require.NoError(t, err)
	assert.Equal(t, 2, sheet.OrderCount)
	assert.Equal(t, "150.00", sheet.TotalAmount.StringFixed(2))
	assert.Regexp(t, regexp.MustCompile(`^DS-20240305-[0-9A-F]{8}$`), sheet.SheetBarcode)
}

func TestDelegateSheetService_Create_MissingOrders(t *testing.T) {
	fx := createTestDelegateSheetService(t)
	ctx := context.Background()
	driverID := uuid.New()
	known, missing := uuid.New(), uuid.New()

	expectTx(fx.txManager, fx.repos.factory)
	fx.repos.driver.EXPECT().FindByID(ctx, driverID).Return(&entity.Driver{ID: driverID}, nil)
	fx.repos.orderRepo.EXPECT().FindByIDs(ctx, []uuid.UUID{known, missing}).Return([]*entity.Order{{ID: known}}, nil)

	_, err := fx.service.CreateDelegateSheet(ctx, usecase.CreateDelegateSheetInput{
		DriverID: driverID,
		OrderIDs: []uuid.UUID{known, missing},
	})

	require.ErrorIs(t, err, domainerrors.ErrOrderNotFound)
	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, map[string][]uuid.UUID{"missing_order_ids": {missing}}, appErr.Details())
}

func TestDelegateSheetService_Create_LinkFailureRollsBack(t *testing.T) {
	fx := createTestDelegateSheetService(t)
	ctx := context.Background()
	driverID := uuid.New()
	orderID := uuid.New()
	total := decimal.NewFromInt(10)

	expectTx(fx.txManager, fx.repos.factory)
	fx.repos.driver.EXPECT().FindByID(ctx, driverID).Return(&entity.Driver{ID: driverID}, nil)
	fx.repos.orderRepo.EXPECT().FindByIDs(ctx, []uuid.UUID{orderID}).Return([]*entity.Order{{ID: orderID}}, nil)
	fx.repos.sheet.EXPECT().Create(ctx, mock.AnythingOfType("*entity.DelegateSheet")).Return(nil)
	fx.repos.sheet.EXPECT().CreateLinks(ctx, mock.Anything).Return(errors.New("connection reset"))

	sheet, err := fx.service.CreateDelegateSheet(ctx, usecase.CreateDelegateSheetInput{
		DriverID:     driverID,
		SheetBarcode: "DS-CUSTOM",
		TotalAmount:  &total,
		OrderIDs:     []uuid.UUID{orderID},
	})

	assert.Nil(t, sheet)
	assert.ErrorContains(t, err, "connection reset")
}

func TestDelegateSheetService_Create_Validation(t *testing.T) {
	fx := createTestDelegateSheetService(t)
	negative := decimal.NewFromInt(-5)

	_, err := fx.service.CreateDelegateSheet(context.Background(), usecase.CreateDelegateSheetInput{DriverID: uuid.New()})
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)

	_, err = fx.service.CreateDelegateSheet(context.Background(), usecase.CreateDelegateSheetInput{
		DriverID:    uuid.New(),
		OrderIDs:    []uuid.UUID{uuid.New()},
		TotalAmount: &negative,
	})
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestDelegateSheetService_Create_UnknownDriver(t *testing.T) {
	fx := createTestDelegateSheetService(t)
	ctx := context.Background()
	driverID := uuid.New()

	expectTx(fx.txManager, fx.repos.factory)
	fx.repos.driver.EXPECT().FindByID(ctx, driverID).Return(nil, repository.ErrDriverNotFound)

	_, err := fx.service.CreateDelegateSheet(ctx, usecase.CreateDelegateSheetInput{DriverID: driverID, OrderIDs: []uuid.UUID{uuid.New()}})

	assert.ErrorIs(t, err, domainerrors.ErrDriverNotFound)
}

func TestDelegateSheetService_ListSheetOrders(t *testing.T) {
	fx := createTestDelegateSheetService(t)
	ctx := context.Background()
	id := uuid.New()

	fx.repos.sheet.EXPECT().FindByID(ctx, id).Return(nil, repository.ErrDelegateSheetNotFound)

	_, err := fx.service.ListSheetOrders(ctx, id)

	assert.ErrorIs(t, err, domainerrors.ErrDelegateSheetNotFound)
}

func TestDelegateSheetService_Label(t *testing.T) {
	fx := createTestDelegateSheetService(t)
	ctx := context.Background()
	id := uuid.New()

	fx.repos.sheet.EXPECT().FindByID(ctx, id).Return(&entity.DelegateSheet{ID: id, SheetBarcode: "DS-1"}, nil)
	fx.qrcode.EXPECT().GenerateLabel("DS-1").Return([]byte("png"), nil)

	png, err := fx.service.Label(ctx, id)

	require.NoError(t, err)
	assert.Equal(t, []byte("png"), png)
}
