package impl

import (
	"archive/zip"
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"courier/internal/domain/entity"
	domainerrors "courier/internal/domain/errors"
	mockSvc "courier/internal/mocks/service"
	"courier/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type exportServiceFixtures struct {
	service *exportService
	repos   *repoSet
	store   *mockSvc.MockArchiveStore
}

func createTestExportService(t *testing.T) exportServiceFixtures {
	repos := newRepoSet(t)
	store := mockSvc.NewMockArchiveStore(t)

	srv := NewExportService(ExportServiceParams{
		UserRepo:    repos.userRepo,
		OrderRepo:   repos.orderRepo,
		DriverRepo:  repos.driver,
		CityRepo:    repos.city,
		SheetRepo:   repos.sheet,
		ProductRepo: repos.product,
		Store:       store,
		Logger:      newDiscardLogger(),
	}).(*exportService)
	srv.now = fixedClock

	return exportServiceFixtures{service: srv, repos: repos, store: store}
}

func TestExportService_Users_OmitsPasswordHash(t *testing.T) {
	fx := createTestExportService(t)
	ctx := context.Background()

	fx.repos.userRepo.EXPECT().List(ctx).Return([]*entity.User{{
		ID:           uuid.MustParse("0190c1a2-0000-7000-8000-000000000001"),
		Username:     "Doe, Jane",
		Email:        "jane@example.com",
		PasswordHash: "$2a$12$secret",
		Role:         entity.RoleAdmin,
		CreatedAt:    fixedNow,
		UpdatedAt:    fixedNow,
	}}, nil)
	fx.store.EXPECT().Save(ctx, "exports/20240305-103000/users-20240305-103000.csv", "text/csv", mock.Anything).Return(nil)

	file, err := fx.service.Export(ctx, usecase.ExportUsers)

	require.NoError(t, err)
	assert.Equal(t, "users-20240305-103000.csv", file.Name)
	assert.Equal(t, "text/csv", file.ContentType)
	content := string(file.Data)
	assert.True(t, strings.HasPrefix(content, "id,username,email,role,created_at,updated_at\n"))
	assert.Contains(t, content, `"Doe, Jane"`)
	assert.Contains(t, content, "2024-03-05T10:30:00Z")
	assert.NotContains(t, content, "secret")
}

func TestExportService_Drivers_FlattensAreas(t *testing.T) {
	fx := createTestExportService(t)
	ctx := context.Background()

	fx.repos.driver.EXPECT().List(ctx, entity.DriverFilter{}, (*entity.PageRequest)(nil)).Return([]*entity.Driver{{
		ID:            uuid.New(),
		DriverName:    "Ahmed",
		AssignedAreas: []string{"Cairo", "Giza"},
	}}, 1, nil)
	fx.store.EXPECT().Save(ctx, mock.Anything, "text/csv", mock.Anything).Return(errors.New("bucket offline"))

	file, err := fx.service.Export(ctx, usecase.ExportDrivers)

	require.NoError(t, err)
	assert.Contains(t, string(file.Data), `"[""Cairo"",""Giza""]"`)
}

func TestExportService_All_BundlesEveryResource(t *testing.T) {
	fx := createTestExportService(t)
	ctx := context.Background()
	driverID := uuid.New()

	fx.repos.userRepo.EXPECT().List(ctx).Return(nil, nil)
	fx.repos.orderRepo.EXPECT().ListAll(ctx, (*entity.Date)(nil), -1).Return([]*entity.Order{{
		ID:        uuid.New(),
		Barcode:   "BC-1",
		OrderDate: entity.NewDate(fixedNow),
		CODAmount: decimal.NewFromInt(150),
		Status:    entity.OrderStatusEntered,
		DriverID:  &driverID,
		CreatedAt: fixedNow.Add(-time.Hour),
	}}, nil)
	fx.repos.driver.EXPECT().List(ctx, entity.DriverFilter{}, (*entity.PageRequest)(nil)).Return(nil, 0, nil)
	fx.repos.city.EXPECT().List(ctx, "").Return([]*entity.City{{ID: "city-001", Name: "Cairo"}}, nil)
	fx.repos.sheet.EXPECT().ListAll(ctx).Return(nil, nil)
	fx.repos.product.EXPECT().List(ctx).Return(nil, nil)
	fx.store.EXPECT().Save(ctx, "exports/20240305-103000/courier-export-20240305-103000.zip", "application/zip", mock.Anything).Return(nil)

	file, err := fx.service.Export(ctx, usecase.ExportAll)

	require.NoError(t, err)
	assert.Equal(t, "application/zip", file.ContentType)

	reader, err := zip.NewReader(bytes.NewReader(file.Data), int64(len(file.Data)))
	require.NoError(t, err)
	names := make([]string, 0, len(reader.File))
	for _, f := range reader.File {
		names = append(names, f.Name)
	}
	assert.Equal(t, []string{
		"users.csv", "orders.csv", "drivers.csv", "cities.csv", "delegate_sheets.csv", "products.csv",
	}, names)
}

func TestExportService_UnknownType(t *testing.T) {
	fx := createTestExportService(t)

	_, err := fx.service.Export(context.Background(), "invoices")

	assert.ErrorIs(t, err, domainerrors.ErrInvalidExportType)
}
