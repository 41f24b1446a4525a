package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"courier/config"
	"courier/internal/domain/repository"
	mockRepo "courier/internal/mocks/repository"

	"github.com/stretchr/testify/mock"
)

//nolint:gochecknoglobals
var fixedNow = time.Date(2024, time.March, 5, 10, 30, 0, 0, time.UTC)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig() *config.Config {
	return &config.Config{
		Auth: &config.AuthConfig{
			BcryptCost:     12,
			AccessTokenTTL: time.Hour,
		},
		Orders: &config.OrdersConfig{
			ListAllCap: 1000,
		},
		Bootstrap: &config.BootstrapConfig{
			UserID:   "00000000-0000-7000-8000-000000000001",
			Username: "admin",
			Email:    "admin@courier.local",
			Password: "ChangeMe123!",
		},
	}
}

// repoSet bundles the repository mocks shared by a test and its transaction factory.
type repoSet struct {
	factory   *mockRepo.MockRepositoryFactory
	userRepo  *mockRepo.MockUserRepository
	orderRepo *mockRepo.MockOrderRepository
	driver    *mockRepo.MockDriverRepository
	city      *mockRepo.MockCityRepository
	sheet     *mockRepo.MockDelegateSheetRepository
	product   *mockRepo.MockProductRepository
}

func newRepoSet(t *testing.T) *repoSet {
	set := &repoSet{
		factory:   mockRepo.NewMockRepositoryFactory(t),
		userRepo:  mockRepo.NewMockUserRepository(t),
		orderRepo: mockRepo.NewMockOrderRepository(t),
		driver:    mockRepo.NewMockDriverRepository(t),
		city:      mockRepo.NewMockCityRepository(t),
		sheet:     mockRepo.NewMockDelegateSheetRepository(t),
		product:   mockRepo.NewMockProductRepository(t),
	}

	set.factory.EXPECT().UserRepo().Return(set.userRepo).Maybe()
	set.factory.EXPECT().OrderRepo().Return(set.orderRepo).Maybe()
	set.factory.EXPECT().DriverRepo().Return(set.driver).Maybe()
	set.factory.EXPECT().CityRepo().Return(set.city).Maybe()
	set.factory.EXPECT().DelegateSheetRepo().Return(set.sheet).Maybe()
	set.factory.EXPECT().ProductRepo().Return(set.product).Maybe()

	return set
}

// expectTx makes the transaction manager run fn against the shared factory and return its error.
func expectTx(txManager *mockRepo.MockTransactionManager, factory repository.RepositoryFactory) {
	txManager.EXPECT().
		Execute(mock.Anything, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(factory)
		})
}

func fixedClock() time.Time {
	return fixedNow
}
