package postgres

import (
	"testing"
	"time"

	"courier/internal/domain/entity"
	"courier/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
)

func TestContainsPattern(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{in: "abc", want: "%abc%"},
		{in: "50%", want: `%50\%%`},
		{in: "a_b", want: `%a\_b%`},
		{in: `c:\x`, want: `%c:\\x%`},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, containsPattern(tt.in))
	}
}

func TestDayBounds(t *testing.T) {
	day, err := entity.ParseDate("2024-02-28")
	require.NoError(t, err)

	start, end := dayBounds(day)
	assert.Equal(t, time.Date(2024, 2, 28, 0, 0, 0, 0, time.UTC), start)
	assert.Equal(t, time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC), end)
}

func TestOrderMapping_RoundTrip(t *testing.T) {
	driverID := uuid.New()
	orderDate, err := entity.ParseDate("2024-05-01")
	require.NoError(t, err)

	order := &entity.Order{
		ID:               uuid.New(),
		Barcode:          "BC-1",
		OrderDate:        orderDate,
		RecipientName:    "Mona",
		RecipientPhone:   "0100",
		RecipientAddress: "12 Nile St",
		RecipientCity:    "Cairo",
		CODAmount:        decimal.RequireFromString("150.00"),
		Status:           entity.OrderStatusAssigned,
		DriverID:         &driverID,
		CreatedBy:        uuid.New(),
	}

	orderM := fromOrderDomain(order)
	assert.Equal(t, "assigned", orderM.Status)
	assert.Equal(t, datatypes.Date(orderDate.Time), orderM.OrderDate)

	orderM.Creator = &model.UserModel{ID: order.CreatedBy, Username: "clerk", PasswordHash: "secret", Role: "data_entry"}
	back := toOrderDomain(orderM)

	assert.Equal(t, order.Barcode, back.Barcode)
	assert.Equal(t, "2024-05-01", back.OrderDate.String())
	assert.True(t, order.CODAmount.Equal(back.CODAmount))
	assert.Equal(t, &driverID, back.DriverID)
	require.NotNil(t, back.Creator)
	assert.Equal(t, "clerk", back.Creator.Username)
	assert.Equal(t, entity.RoleDataEntry, back.Creator.Role)
	assert.Nil(t, back.Driver)
}

func TestDriverMapping_CopiesAreas(t *testing.T) {
	driverM := &model.DriverModel{
		ID:            uuid.New(),
		DriverName:    "Ali",
		AssignedAreas: datatypes.JSONSlice[string]{"Cairo", "Giza"},
	}

	driver := toDriverDomain(driverM)
	driver.AssignedAreas[0] = "Alex"

	assert.Equal(t, "Cairo", driverM.AssignedAreas[0])
	assert.Equal(t, []string{"Alex", "Giza"}, driver.AssignedAreas)

	empty := fromDriverDomain(&entity.Driver{})
	assert.NotNil(t, empty.AssignedAreas)
	assert.Len(t, empty.AssignedAreas, 0)
}

func TestProductMapping_ExpiryDate(t *testing.T) {
	expiry, err := entity.ParseDate("2025-12-31")
	require.NoError(t, err)

	productM := fromProductDomain(&entity.Product{Name: "Tea", Unit: entity.ProductUnitCarton, ExpiryDate: &expiry})
	require.NotNil(t, productM.ExpiryDate)
	assert.Equal(t, "CARTON", productM.Unit)

	back := toProductDomain(productM)
	require.NotNil(t, back.ExpiryDate)
	assert.Equal(t, "2025-12-31", back.ExpiryDate.String())

	assert.Nil(t, toProductDomain(&model.ProductModel{}).ExpiryDate)
}
