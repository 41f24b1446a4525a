package impl

import (
	"context"
	"testing"

	"courier/internal/domain/entity"
	domainerrors "courier/internal/domain/errors"
	"courier/internal/domain/repository"
	mockRepo "courier/internal/mocks/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestCityService(t *testing.T) (*cityService, *mockRepo.MockTransactionManager, *repoSet) {
	txManager := mockRepo.NewMockTransactionManager(t)
	repos := newRepoSet(t)

	srv := NewCityService(CityServiceParams{
		TxManager: txManager,
		CityRepo:  repos.city,
		Logger:    newDiscardLogger(),
	}).(*cityService)

	return srv, txManager, repos
}

func TestCityService_CreateCity_AssignsSequentialID(t *testing.T) {
	srv, txManager, repos := createTestCityService(t)
	ctx := context.Background()

	expectTx(txManager, repos.factory)
	repos.city.EXPECT().NameExists(ctx, "Cairo").Return(false, nil)
	repos.city.EXPECT().NextSequence(ctx).Return(7, nil)
	repos.city.EXPECT().
		Create(ctx, mock.MatchedBy(func(c *entity.City) bool { return c.ID == "city-007" && c.Name == "Cairo" })).
		Return(nil)

	city, err := srv.CreateCity(ctx, "  Cairo ")

	require.NoError(t, err)
	assert.Equal(t, "city-007", city.ID)
}

func TestCityService_CreateCity_CaseInsensitiveDuplicate(t *testing.T) {
	srv, txManager, repos := createTestCityService(t)
	ctx := context.Background()

	expectTx(txManager, repos.factory)
	repos.city.EXPECT().NameExists(ctx, "cairo").Return(true, nil)

	_, err := srv.CreateCity(ctx, "cairo")

	assert.ErrorIs(t, err, domainerrors.ErrCityAlreadyExists)
}

func TestCityService_CreateCity_UniqueIndexRace(t *testing.T) {
	srv, txManager, repos := createTestCityService(t)
	ctx := context.Background()

	expectTx(txManager, repos.factory)
	repos.city.EXPECT().NameExists(ctx, "Giza").Return(false, nil)
	repos.city.EXPECT().NextSequence(ctx).Return(8, nil)
	repos.city.EXPECT().Create(ctx, mock.AnythingOfType("*entity.City")).Return(repository.ErrDuplicateCity)

	_, err := srv.CreateCity(ctx, "Giza")

	assert.ErrorIs(t, err, domainerrors.ErrCityAlreadyExists)
}

func TestCityService_CreateCity_BlankName(t *testing.T) {
	srv, _, _ := createTestCityService(t)

	_, err := srv.CreateCity(context.Background(), "   ")

	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestCityService_ListCities_TrimsSearch(t *testing.T) {
	srv, _, repos := createTestCityService(t)
	ctx := context.Background()

	repos.city.EXPECT().List(ctx, "ca").Return([]*entity.City{{ID: "city-001", Name: "Cairo"}}, nil)

	cities, err := srv.ListCities(ctx, " ca ")

	require.NoError(t, err)
	assert.Len(t, cities, 1)
}
