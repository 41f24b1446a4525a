package usecase

import "context"

// Export types
const (
	ExportUsers          = "users"
	ExportOrders         = "orders"
	ExportDrivers        = "drivers"
	ExportCities         = "cities"
	ExportDelegateSheets = "delegate_sheets"
	ExportProducts       = "products"
	ExportAll            = "all"
)

// ExportTypes lists the single-resource export types in archive order.
//
//nolint:gochecknoglobals
var ExportTypes = []string{
	ExportUsers,
	ExportOrders,
	ExportDrivers,
	ExportCities,
	ExportDelegateSheets,
	ExportProducts,
}

// ExportFile is a downloadable export.
type ExportFile struct {
	Name        string
	ContentType string
	Data        []byte
}

// ExportUsecase produces CSV files, or a zip of all of them.
type ExportUsecase interface {
	Export(ctx context.Context, exportType string) (*ExportFile, error)
}
