package errors

import "net/http"

//nolint:gochecknoglobals
var (
	ErrValidationFailed  = NewBaseError(http.StatusBadRequest, "VALIDATION_FAILED", "Input validation failed")
	ErrInvalidDateRange  = NewBaseError(http.StatusBadRequest, "INVALID_DATE_RANGE", "A valid from/to date range is required")
	ErrInvalidExportType = NewBaseError(http.StatusBadRequest, "INVALID_EXPORT_TYPE", "Unknown export type")

	ErrInvalidCredentials = NewBaseError(http.StatusUnauthorized, "INVALID_CREDENTIALS", "Invalid email or password")
	ErrUnauthorized       = NewBaseError(http.StatusUnauthorized, "UNAUTHORIZED", "Authentication required")
	ErrForbidden          = NewBaseError(http.StatusForbidden, "FORBIDDEN", "Access denied")
	ErrPasswordHashFailed = NewBaseError(http.StatusInternalServerError, "PASSWORD_HASH_FAILED", "Password processing failed")

	ErrUserNotFound          = NewBaseError(http.StatusNotFound, "USER_NOT_FOUND", "User not found")
	ErrUserAlreadyExists     = NewBaseError(http.StatusConflict, "USER_ALREADY_EXISTS", "Email is already registered")
	ErrCreatorNotFound       = NewBaseError(http.StatusBadRequest, "CREATOR_NOT_FOUND", "Creating user does not exist")
	ErrCannotDeleteSelf      = NewBaseError(http.StatusForbidden, "CANNOT_DELETE_SELF", "You cannot delete your own account")
	ErrCannotDeleteBootstrap = NewBaseError(http.StatusForbidden, "CANNOT_DELETE_BOOTSTRAP", "The bootstrap administrator cannot be deleted")

	ErrOrderNotFound           = NewBaseError(http.StatusNotFound, "ORDER_NOT_FOUND", "Order not found")
	ErrBarcodeAlreadyExists    = NewBaseError(http.StatusConflict, "BARCODE_ALREADY_EXISTS", "An order with this barcode already exists")
	ErrInvalidOrderStatus      = NewBaseError(http.StatusBadRequest, "INVALID_ORDER_STATUS", "Unknown order status")
	ErrInvalidStatusTransition = NewBaseError(http.StatusConflict, "INVALID_STATUS_TRANSITION", "Order cannot move to the requested status")

	ErrDriverNotFound    = NewBaseError(http.StatusNotFound, "DRIVER_NOT_FOUND", "Driver not found")
	ErrDriverPhoneExists = NewBaseError(http.StatusConflict, "DRIVER_PHONE_EXISTS", "A driver with this phone number already exists")
	ErrDriverHasOrders   = NewBaseError(http.StatusBadRequest, "DRIVER_HAS_ORDERS", "Driver still has assigned orders")

	ErrCityAlreadyExists = NewBaseError(http.StatusConflict, "CITY_ALREADY_EXISTS", "A city with this name already exists")

	ErrDelegateSheetNotFound = NewBaseError(http.StatusNotFound, "DELEGATE_SHEET_NOT_FOUND", "Delegate sheet not found")
	ErrSheetBarcodeExists    = NewBaseError(http.StatusConflict, "SHEET_BARCODE_EXISTS", "A delegate sheet with this barcode already exists")

	ErrProductBarcodeExists = NewBaseError(http.StatusConflict, "PRODUCT_BARCODE_EXISTS", "A product with this barcode already exists")

	ErrInternalError = NewBaseError(http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error")
	ErrNotFound      = NewBaseError(http.StatusNotFound, "NOT_FOUND", "Resource not found")
	ErrConflict      = NewBaseError(http.StatusConflict, "CONFLICT", "Resource conflict")
)
