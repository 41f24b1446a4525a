// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"courier/internal/delivery/api/middleware"
	"courier/internal/delivery/api/router/handler"
	"courier/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler          *handler.AuthHandler
	UserHandler          *handler.UserHandler
	OrderHandler         *handler.OrderHandler
	DriverHandler        *handler.DriverHandler
	CityHandler          *handler.CityHandler
	DelegateSheetHandler *handler.DelegateSheetHandler
	ProductHandler       *handler.ProductHandler
	ReportHandler        *handler.ReportHandler
	ExportHandler        *handler.ExportHandler
	AuthMiddleware       *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler          *handler.AuthHandler
	userHandler          *handler.UserHandler
	orderHandler         *handler.OrderHandler
	driverHandler        *handler.DriverHandler
	cityHandler          *handler.CityHandler
	delegateSheetHandler *handler.DelegateSheetHandler
	productHandler       *handler.ProductHandler
	reportHandler        *handler.ReportHandler
	exportHandler        *handler.ExportHandler
	authMiddleware       *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:          params.AuthHandler,
		userHandler:          params.UserHandler,
		orderHandler:         params.OrderHandler,
		driverHandler:        params.DriverHandler,
		cityHandler:          params.CityHandler,
		delegateSheetHandler: params.DelegateSheetHandler,
		productHandler:       params.ProductHandler,
		reportHandler:        params.ReportHandler,
		exportHandler:        params.ExportHandler,
		authMiddleware:       params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)

	auth := r.authMiddleware.Authenticate
	can := r.authMiddleware.RequirePermission

	authGroup := e.Group("/auth")
	{
		authGroup.POST("/register", r.authHandler.Register)
		authGroup.POST("/login", r.authHandler.Login)
		authGroup.GET("/me", r.authHandler.Me, auth)
	}

	users := e.Group("/users", auth)
	{
		// Any signed-in role may probe for a user's existence.
		users.GET("/check", r.userHandler.CheckUser)
		users.GET("", r.userHandler.ListUsers, can(entity.PermissionUsersManage))
		users.POST("", r.userHandler.CreateUser, can(entity.PermissionUsersManage))
		users.GET("/:id", r.userHandler.GetUser, can(entity.PermissionUsersManage))
		users.PATCH("/:id", r.userHandler.UpdateUser, can(entity.PermissionUsersManage))
		users.DELETE("/:id", r.userHandler.DeleteUser, can(entity.PermissionUsersManage))
	}

	orders := e.Group("/orders", auth)
	{
		orders.GET("", r.orderHandler.ListOrders, can(entity.PermissionOrdersRead))
		orders.POST("", r.orderHandler.CreateOrder, can(entity.PermissionOrdersWrite))
		orders.GET("/check-barcode", r.orderHandler.CheckBarcode, can(entity.PermissionOrdersRead))
		orders.GET("/find-by-barcode", r.orderHandler.FindByBarcode, can(entity.PermissionOrdersRead))
		orders.GET("/:id", r.orderHandler.GetOrder, can(entity.PermissionOrdersRead))
		orders.PUT("/:id", r.orderHandler.UpdateOrder, can(entity.PermissionOrdersWrite))
		orders.DELETE("/:id", r.orderHandler.DeleteOrder, can(entity.PermissionOrdersWrite))
		orders.PUT("/:id/status", r.orderHandler.UpdateStatus, can(entity.PermissionOrdersWrite))
		orders.PUT("/:id/assign-driver", r.orderHandler.AssignDriver, can(entity.PermissionOrdersWrite))
		orders.GET("/:id/label", r.orderHandler.Label, can(entity.PermissionOrdersRead))
	}

	drivers := e.Group("/drivers", auth)
	{
		drivers.GET("", r.driverHandler.ListDrivers, can(entity.PermissionDriversRead))
		drivers.POST("", r.driverHandler.CreateDriver, can(entity.PermissionDriversWrite))
		drivers.GET("/:id", r.driverHandler.GetDriver, can(entity.PermissionDriversRead))
		drivers.PUT("/:id", r.driverHandler.UpdateDriver, can(entity.PermissionDriversWrite))
		drivers.DELETE("/:id", r.driverHandler.DeleteDriver, can(entity.PermissionDriversWrite))
	}

	cities := e.Group("/cities", auth)
	{
		cities.GET("", r.cityHandler.ListCities, can(entity.PermissionCitiesRead))
		cities.POST("", r.cityHandler.CreateCity, can(entity.PermissionCitiesWrite))
	}

	sheets := e.Group("/delegate-sheets", auth)
	{
		sheets.GET("", r.delegateSheetHandler.ListDelegateSheets, can(entity.PermissionSheetsRead))
		sheets.POST("", r.delegateSheetHandler.CreateDelegateSheet, can(entity.PermissionSheetsWrite))
		sheets.GET("/:id", r.delegateSheetHandler.GetDelegateSheet, can(entity.PermissionSheetsRead))
		sheets.GET("/:id/orders", r.delegateSheetHandler.ListSheetOrders, can(entity.PermissionSheetsRead))
		sheets.GET("/:id/label", r.delegateSheetHandler.Label, can(entity.PermissionSheetsRead))
	}

	products := e.Group("/products", auth)
	{
		products.GET("", r.productHandler.ListProducts, can(entity.PermissionProductsRead))
		products.POST("", r.productHandler.CreateProduct, can(entity.PermissionProductsWrite))
	}

	reports := e.Group("/reports", auth, can(entity.PermissionReportsRead))
	{
		reports.GET("/orders-by-status", r.reportHandler.OrdersByStatus)
		reports.GET("/orders-by-city", r.reportHandler.OrdersByCity)
		reports.GET("/drivers-performance", r.reportHandler.DriversPerformance)
		reports.GET("/financial", r.reportHandler.Financial)
	}

	e.GET("/stats/orders", r.reportHandler.OrderStats, auth, can(entity.PermissionReportsRead))
	e.GET("/data-management/export", r.exportHandler.Export, auth, can(entity.PermissionDataExport))
}
