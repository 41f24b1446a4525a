package api

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"courier/config"
	"courier/internal/delivery/api/middleware"
	"courier/internal/delivery/api/router"
	"courier/internal/delivery/api/router/handler"
	deliverycontext "courier/internal/delivery/context"
	"courier/internal/domain/entity"
	domainerrors "courier/internal/domain/errors"
	"courier/internal/domain/service"
	mockSvc "courier/internal/mocks/service"
	mockUC "courier/internal/mocks/usecase"
	"courier/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var (
	adminID     = uuid.MustParse("0190a000-0000-7000-8000-00000000000a")
	dataEntryID = uuid.MustParse("0190a000-0000-7000-8000-00000000000d")
)

type testAPI struct {
	e        *echo.Echo
	userUC   *mockUC.MockUserUsecase
	orderUC  *mockUC.MockOrderUsecase
	driverUC *mockUC.MockDriverUsecase
	cityUC   *mockUC.MockCityUsecase
	sheetUC  *mockUC.MockDelegateSheetUsecase
	prodUC   *mockUC.MockProductUsecase
	reportUC *mockUC.MockReportUsecase
	exportUC *mockUC.MockExportUsecase
}

func newTestAPI(t *testing.T) *testAPI {
	t.Helper()

	tokens := mockSvc.NewMockTokenService(t)
	tokens.EXPECT().ValidateToken("admin-token").
		Return(&service.Claims{UserID: adminID, Role: string(entity.RoleAdmin)}, nil).Maybe()
	tokens.EXPECT().ValidateToken("entry-token").
		Return(&service.Claims{UserID: dataEntryID, Role: string(entity.RoleDataEntry)}, nil).Maybe()
	tokens.EXPECT().ValidateToken("expired-token").
		Return(nil, domainerrors.ErrUnauthorized).Maybe()

	api := &testAPI{
		userUC:   mockUC.NewMockUserUsecase(t),
		orderUC:  mockUC.NewMockOrderUsecase(t),
		driverUC: mockUC.NewMockDriverUsecase(t),
		cityUC:   mockUC.NewMockCityUsecase(t),
		sheetUC:  mockUC.NewMockDelegateSheetUsecase(t),
		prodUC:   mockUC.NewMockProductUsecase(t),
		reportUC: mockUC.NewMockReportUsecase(t),
		exportUC: mockUC.NewMockExportUsecase(t),
	}

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	cfg := &config.Config{}
	cfg.HTTP.MaxRequestBodySize = "1MB"

	api.e = NewEcho(cfg, logger, router.NewRouter(router.RouterParams{
		AuthHandler:          handler.NewAuthHandler(handler.AuthHandlerParams{UserUC: api.userUC}),
		UserHandler:          handler.NewUserHandler(handler.UserHandlerParams{UserUC: api.userUC}),
		OrderHandler:         handler.NewOrderHandler(handler.OrderHandlerParams{OrderUC: api.orderUC, Logger: logger}),
		DriverHandler:        handler.NewDriverHandler(handler.DriverHandlerParams{DriverUC: api.driverUC, Logger: logger}),
		CityHandler:          handler.NewCityHandler(handler.CityHandlerParams{CityUC: api.cityUC}),
		DelegateSheetHandler: handler.NewDelegateSheetHandler(handler.DelegateSheetHandlerParams{SheetUC: api.sheetUC}),
		ProductHandler:       handler.NewProductHandler(handler.ProductHandlerParams{ProductUC: api.prodUC}),
		ReportHandler:        handler.NewReportHandler(handler.ReportHandlerParams{ReportUC: api.reportUC}),
		ExportHandler:        handler.NewExportHandler(handler.ExportHandlerParams{ExportUC: api.exportUC, Logger: logger}),
		AuthMiddleware:       middleware.NewAuthMiddleware(middleware.AuthMiddlewareParams{TokenService: tokens}),
	}))

	return api
}

func (a *testAPI) do(method, target, token, body string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}

	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	a.e.ServeHTTP(rec, req)

	return rec
}

type envelope struct {
	Data       json.RawMessage    `json:"data"`
	Message    string             `json:"message"`
	Pagination *entity.Pagination `json:"pagination"`
	Error      *struct {
		Code    string          `json:"code"`
		Message string          `json:"message"`
		Details json.RawMessage `json:"details"`
	} `json:"error"`
	Meta struct {
		RequestID string `json:"request_id"`
	} `json:"meta"`
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) envelope {
	t.Helper()

	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env), rec.Body.String())

	return env
}

func TestHealth(t *testing.T) {
	api := newTestAPI(t)

	rec := api.do(http.MethodGet, "/health", "", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	env := decode(t, rec)
	assert.JSONEq(t, `{"status":"ok"}`, string(env.Data))
	assert.NotEmpty(t, env.Meta.RequestID)
	assert.Equal(t, env.Meta.RequestID, rec.Header().Get(deliverycontext.HeaderXRequestID))
}

func TestAuthentication(t *testing.T) {
	api := newTestAPI(t)

	tests := []struct {
		name    string
		header  string
		message string
	}{
		{name: "missing header", header: "", message: "Authorization header is missing"},
		{name: "not bearer", header: "Basic abc", message: "Invalid token format, must be Bearer token"},
		{name: "invalid token", header: "Bearer expired-token", message: "Invalid or expired token"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/orders", nil)
			if tt.header != "" {
				req.Header.Set(echo.HeaderAuthorization, tt.header)
			}
			rec := httptest.NewRecorder()
			api.e.ServeHTTP(rec, req)

			assert.Equal(t, http.StatusUnauthorized, rec.Code)
			env := decode(t, rec)
			require.NotNil(t, env.Error)
			assert.Equal(t, "UNAUTHORIZED", env.Error.Code)
			assert.Equal(t, tt.message, env.Error.Message)
		})
	}
}

func TestPermissions(t *testing.T) {
	api := newTestAPI(t)

	t.Run("data entry cannot manage users", func(t *testing.T) {
		rec := api.do(http.MethodGet, "/users", "entry-token", "")

		assert.Equal(t, http.StatusForbidden, rec.Code)
		assert.Equal(t, "FORBIDDEN", decode(t, rec).Error.Code)
	})

	t.Run("data entry cannot export", func(t *testing.T) {
		rec := api.do(http.MethodGet, "/data-management/export?type=all", "entry-token", "")

		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("any role may check a user", func(t *testing.T) {
		id := uuid.New()
		api.userUC.EXPECT().UserExists(mock.Anything, id).Return(true, nil).Once()

		rec := api.do(http.MethodGet, "/users/check?id="+id.String(), "entry-token", "")

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"exists":true}`, string(decode(t, rec).Data))
	})
}

func TestOrderRoutes(t *testing.T) {
	t.Run("list is paginated", func(t *testing.T) {
		api := newTestAPI(t)
		api.orderUC.EXPECT().
			ListOrders(mock.Anything, mock.MatchedBy(func(in usecase.ListOrdersInput) bool {
				return in.Page == entity.PageRequest{Page: 2, Limit: 5} &&
					in.Filter.Status == entity.OrderStatusDelivered &&
					in.Filter.Date != nil && in.Filter.Date.String() == "2024-03-05" &&
					!in.All
			})).
			Return(&entity.Page[*entity.Order]{
				Items:      []*entity.Order{{ID: uuid.New(), Barcode: "B-1"}},
				Pagination: entity.NewPagination(entity.PageRequest{Page: 2, Limit: 5}, 6),
			}, nil).Once()

		rec := api.do(http.MethodGet, "/orders?page=2&limit=5&status=delivered&date=2024-03-05", "entry-token", "")

		assert.Equal(t, http.StatusOK, rec.Code)
		env := decode(t, rec)
		require.NotNil(t, env.Pagination)
		assert.Equal(t, &entity.Pagination{Page: 2, Limit: 5, Total: 6, TotalPages: 2}, env.Pagination)
	})

	t.Run("unknown status filter is rejected", func(t *testing.T) {
		api := newTestAPI(t)

		rec := api.do(http.MethodGet, "/orders?status=lost", "entry-token", "")

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "VALIDATION_FAILED", decode(t, rec).Error.Code)
	})

	t.Run("create validates the body", func(t *testing.T) {
		api := newTestAPI(t)

		rec := api.do(http.MethodPost, "/orders", "entry-token", `{"barcode":"B-1"}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		env := decode(t, rec)
		assert.Equal(t, "VALIDATION_FAILED", env.Error.Code)

		var fields []domainerrors.FieldError
		require.NoError(t, json.Unmarshal(env.Error.Details, &fields))
		names := make([]string, 0, len(fields))
		for _, f := range fields {
			names = append(names, f.Field)
		}
		assert.ElementsMatch(t, []string{"recipient_name", "recipient_phone", "recipient_address", "recipient_city", "cod_amount"}, names)
	})

	t.Run("create records the caller as creator", func(t *testing.T) {
		api := newTestAPI(t)
		api.orderUC.EXPECT().
			CreateOrder(mock.Anything, mock.MatchedBy(func(in usecase.CreateOrderInput) bool {
				return in.CreatedBy == dataEntryID &&
					in.Barcode == "B-1" &&
					in.CODAmount.Equal(decimal.RequireFromString("150.00")) &&
					in.OrderDate == nil
			})).
			Return(&entity.Order{ID: uuid.New(), Barcode: "B-1", Status: entity.OrderStatusEntered, CODAmount: decimal.RequireFromString("150")}, nil).Once()

		rec := api.do(http.MethodPost, "/orders", "entry-token", `{
			"barcode": " B-1 ",
			"recipient_name": "Amal",
			"recipient_phone": "0100",
			"recipient_address": "1 Nile St",
			"recipient_city": "Cairo",
			"cod_amount": 150.00
		}`)

		assert.Equal(t, http.StatusCreated, rec.Code)
		assert.Contains(t, rec.Body.String(), `"cod_amount":150.00`)
		assert.Equal(t, "Order created successfully", decode(t, rec).Message)
	})

	t.Run("malformed id", func(t *testing.T) {
		api := newTestAPI(t)

		rec := api.do(http.MethodGet, "/orders/not-a-uuid", "entry-token", "")

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("not found", func(t *testing.T) {
		api := newTestAPI(t)
		id := uuid.New()
		api.orderUC.EXPECT().GetOrder(mock.Anything, id).Return(nil, domainerrors.ErrOrderNotFound).Once()

		rec := api.do(http.MethodGet, "/orders/"+id.String(), "entry-token", "")

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, "ORDER_NOT_FOUND", decode(t, rec).Error.Code)
	})

	t.Run("barcode check is not shadowed by the id route", func(t *testing.T) {
		api := newTestAPI(t)
		api.orderUC.EXPECT().CheckBarcode(mock.Anything, "B-9").Return(false, nil).Once()

		rec := api.do(http.MethodGet, "/orders/check-barcode?barcode=B-9", "entry-token", "")

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"exists":false}`, string(decode(t, rec).Data))
	})

	t.Run("null driver clears the assignment", func(t *testing.T) {
		api := newTestAPI(t)
		id := uuid.New()
		api.orderUC.EXPECT().AssignDriver(mock.Anything, id, (*uuid.UUID)(nil)).
			Return(&entity.Order{ID: id}, nil).Once()

		rec := api.do(http.MethodPut, "/orders/"+id.String()+"/assign-driver", "entry-token", `{"driver_id":null}`)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "Driver unassigned successfully", decode(t, rec).Message)
	})

	t.Run("label is a png", func(t *testing.T) {
		api := newTestAPI(t)
		id := uuid.New()
		api.orderUC.EXPECT().Label(mock.Anything, id).Return([]byte("\x89PNG"), nil).Once()

		rec := api.do(http.MethodGet, "/orders/"+id.String()+"/label", "entry-token", "")

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "image/png", rec.Header().Get(echo.HeaderContentType))
	})
}

func TestDeleteDriverWithOrders(t *testing.T) {
	api := newTestAPI(t)
	id := uuid.New()
	api.driverUC.EXPECT().DeleteDriver(mock.Anything, id).
		Return(domainerrors.ErrDriverHasOrders.WithDetails(map[string]int64{"order_count": 3})).Once()

	rec := api.do(http.MethodDelete, "/drivers/"+id.String(), "entry-token", "")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	env := decode(t, rec)
	assert.Equal(t, "DRIVER_HAS_ORDERS", env.Error.Code)
	assert.JSONEq(t, `{"order_count":3}`, string(env.Error.Details))
}

func TestDeleteUserPassesCaller(t *testing.T) {
	api := newTestAPI(t)
	api.userUC.EXPECT().
		DeleteUser(mock.Anything, entity.Principal{UserID: adminID, Role: entity.RoleAdmin}, adminID).
		Return(domainerrors.ErrCannotDeleteSelf).Once()

	rec := api.do(http.MethodDelete, "/users/"+adminID.String(), "admin-token", "")

	assert.Equal(t, http.StatusForbidden, rec.Code)
	env := decode(t, rec)
	assert.Equal(t, "CANNOT_DELETE_SELF", env.Error.Code)
	assert.Empty(t, env.Error.Details)
}

func TestLogin(t *testing.T) {
	api := newTestAPI(t)
	user := &entity.User{ID: adminID, Email: "admin@courier.local", PasswordHash: "secret-hash", Role: entity.RoleAdmin}
	api.userUC.EXPECT().
		Login(mock.Anything, usecase.LoginInput{Email: "admin@courier.local", Password: "ChangeMe123!"}).
		Return(&usecase.LoginOutput{AccessToken: "tok", User: user}, nil).Once()

	rec := api.do(http.MethodPost, "/auth/login", "", `{"email":"admin@courier.local","password":"ChangeMe123!"}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, `"access_token":"tok"`)
	assert.Contains(t, body, `"token_type":"Bearer"`)
	assert.NotContains(t, body, "secret-hash")
}

func TestReportsRequireRange(t *testing.T) {
	api := newTestAPI(t)

	rec := api.do(http.MethodGet, "/reports/orders-by-status?from=2024-01-01", "entry-token", "")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "VALIDATION_FAILED", decode(t, rec).Error.Code)
}

func TestFinancialReportGroupBy(t *testing.T) {
	api := newTestAPI(t)
	from, _ := entity.ParseDate("2024-01-01")
	to, _ := entity.ParseDate("2024-01-31")
	api.reportUC.EXPECT().
		Financial(mock.Anything, entity.DateRange{From: from, To: to}, entity.GroupByWeek).
		Return(&entity.FinancialReport{GroupBy: entity.GroupByWeek}, nil).Once()

	rec := api.do(http.MethodGet, "/reports/financial?from=2024-01-01&to=2024-01-31&groupBy=week", "entry-token", "")

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestExportDownload(t *testing.T) {
	api := newTestAPI(t)
	api.exportUC.EXPECT().Export(mock.Anything, "orders").
		Return(&usecase.ExportFile{Name: "orders-20240305-103000.csv", ContentType: "text/csv; charset=utf-8", Data: []byte("id\n")}, nil).Once()

	rec := api.do(http.MethodGet, "/data-management/export?type=orders", "admin-token", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/csv; charset=utf-8", rec.Header().Get(echo.HeaderContentType))
	assert.Equal(t, `attachment; filename=orders-20240305-103000.csv`, rec.Header().Get(echo.HeaderContentDisposition))
	assert.Equal(t, "id\n", rec.Body.String())
}

func TestUnknownRoute(t *testing.T) {
	api := newTestAPI(t)

	rec := api.do(http.MethodGet, "/nope", "", "")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "NOT_FOUND", decode(t, rec).Error.Code)
}
