package impl

import (
	"context"
	"testing"

	"courier/internal/domain/entity"
	domainerrors "courier/internal/domain/errors"
	"courier/internal/domain/repository"
	mockRepo "courier/internal/mocks/repository"
	"courier/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type driverServiceFixtures struct {
	service   *driverService
	txManager *mockRepo.MockTransactionManager
	repos     *repoSet
}

func createTestDriverService(t *testing.T) driverServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	repos := newRepoSet(t)

	srv := NewDriverService(DriverServiceParams{
		TxManager:  txManager,
		DriverRepo: repos.driver,
		OrderRepo:  repos.orderRepo,
		Logger:     newDiscardLogger(),
	}).(*driverService)
	srv.now = fixedClock

	return driverServiceFixtures{service: srv, txManager: txManager, repos: repos}
}

func TestDriverService_CreateDriver_NormalizesAreas(t *testing.T) {
	fx := createTestDriverService(t)
	ctx := context.Background()

	expectTx(fx.txManager, fx.repos.factory)
	fx.repos.driver.EXPECT().PhoneTaken(ctx, "0100", (*uuid.UUID)(nil)).Return(false, nil)
	fx.repos.driver.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Driver")).Return(nil)

	driver, err := fx.service.CreateDriver(ctx, usecase.CreateDriverInput{
		DriverName:    " Ahmed ",
		DriverPhone:   "0100",
		AssignedAreas: []string{"Cairo", " cairo", "", "Giza"},
	})

	require.NoError(t, err)
	assert.Equal(t, "Ahmed", driver.DriverName)
	assert.Equal(t, []string{"Cairo", "Giza"}, driver.AssignedAreas)
}

func TestDriverService_CreateDriver_PhoneTaken(t *testing.T) {
	fx := createTestDriverService(t)
	ctx := context.Background()

	expectTx(fx.txManager, fx.repos.factory)
	fx.repos.driver.EXPECT().PhoneTaken(ctx, "0100", (*uuid.UUID)(nil)).Return(true, nil)

	_, err := fx.service.CreateDriver(ctx, usecase.CreateDriverInput{DriverName: "A", DriverPhone: "0100"})

	assert.ErrorIs(t, err, domainerrors.ErrDriverPhoneExists)
}

func TestDriverService_UpdateDriver_ExcludesSelfFromPhoneCheck(t *testing.T) {
	fx := createTestDriverService(t)
	ctx := context.Background()
	id := uuid.New()
	phone := "0111"

	expectTx(fx.txManager, fx.repos.factory)
	fx.repos.driver.EXPECT().FindByID(ctx, id).Return(&entity.Driver{ID: id, DriverPhone: "0100"}, nil)
	fx.repos.driver.EXPECT().PhoneTaken(ctx, phone, &id).Return(false, nil)
	fx.repos.driver.EXPECT().Update(ctx, mock.AnythingOfType("*entity.Driver")).Return(nil)

	driver, err := fx.service.UpdateDriver(ctx, id, entity.DriverChanges{DriverPhone: &phone})

	require.NoError(t, err)
	assert.Equal(t, phone, driver.DriverPhone)
	assert.Equal(t, fixedNow, driver.UpdatedAt)
}

func TestDriverService_UpdateDriver_NotFound(t *testing.T) {
	fx := createTestDriverService(t)
	ctx := context.Background()
	id := uuid.New()

	expectTx(fx.txManager, fx.repos.factory)
	fx.repos.driver.EXPECT().FindByID(ctx, id).Return(nil, repository.ErrDriverNotFound)

	_, err := fx.service.UpdateDriver(ctx, id, entity.DriverChanges{})

	assert.ErrorIs(t, err, domainerrors.ErrDriverNotFound)
}

func TestDriverService_DeleteDriver(t *testing.T) {
	t.Run("refused with order count", func(t *testing.T) {
		fx := createTestDriverService(t)
		ctx := context.Background()
		id := uuid.New()

		fx.repos.driver.EXPECT().FindByID(ctx, id).Return(&entity.Driver{ID: id}, nil)
		fx.repos.orderRepo.EXPECT().CountByDriver(ctx, id).Return(3, nil)

		err := fx.service.DeleteDriver(ctx, id)

		require.ErrorIs(t, err, domainerrors.ErrDriverHasOrders)
		var appErr domainerrors.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, map[string]int64{"order_count": 3}, appErr.Details())
		assert.Contains(t, appErr.Message(), "3")
	})

	t.Run("unreferenced driver is removed", func(t *testing.T) {
		fx := createTestDriverService(t)
		ctx := context.Background()
		id := uuid.New()

		fx.repos.driver.EXPECT().FindByID(ctx, id).Return(&entity.Driver{ID: id}, nil)
		fx.repos.orderRepo.EXPECT().CountByDriver(ctx, id).Return(0, nil)
		fx.repos.driver.EXPECT().Delete(ctx, id).Return(nil)

		require.NoError(t, fx.service.DeleteDriver(ctx, id))
	})

	t.Run("sheet reference is a conflict", func(t *testing.T) {
		fx := createTestDriverService(t)
		ctx := context.Background()
		id := uuid.New()

		fx.repos.driver.EXPECT().FindByID(ctx, id).Return(&entity.Driver{ID: id}, nil)
		fx.repos.orderRepo.EXPECT().CountByDriver(ctx, id).Return(0, nil)
		fx.repos.driver.EXPECT().Delete(ctx, id).Return(repository.ErrDriverInUse)

		err := fx.service.DeleteDriver(ctx, id)

		assert.ErrorIs(t, err, domainerrors.ErrConflict)
	})
}

func TestDriverService_ListDrivers_All(t *testing.T) {
	fx := createTestDriverService(t)
	ctx := context.Background()

	fx.repos.driver.EXPECT().
		List(ctx, entity.DriverFilter{Search: "ah"}, (*entity.PageRequest)(nil)).
		Return([]*entity.Driver{{DriverName: "Ahmed"}}, 1, nil)

	page, err := fx.service.ListDrivers(ctx, usecase.ListDriversInput{Filter: entity.DriverFilter{Search: "ah"}, All: true})

	require.NoError(t, err)
	assert.Nil(t, page.Pagination)
	assert.Len(t, page.Items, 1)
}
