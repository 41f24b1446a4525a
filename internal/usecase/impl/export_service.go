package impl

import (
	"context"
	"encoding/json"
	"log/slog"
	"path"
	"strconv"
	"time"

	deliverycontext "courier/internal/delivery/context"
	"courier/internal/domain/entity"
	domainerrors "courier/internal/domain/errors"
	"courier/internal/domain/repository"
	"courier/internal/domain/service"
	"courier/internal/usecase"
	"courier/internal/util"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	contentTypeCSV = "text/csv"
	contentTypeZip = "application/zip"

	exportTimestampLayout = "20060102-150405"
	exportKeyPrefix       = "exports"
)

// exportService implements the ExportUsecase interface.
type exportService struct {
	userRepo    repository.UserRepository
	orderRepo   repository.OrderRepository
	driverRepo  repository.DriverRepository
	cityRepo    repository.CityRepository
	sheetRepo   repository.DelegateSheetRepository
	productRepo repository.ProductRepository
	store       service.ArchiveStore
	logger      *slog.Logger
	now         func() time.Time
}

// ExportServiceParams holds dependencies for ExportService, injected by Fx.
type ExportServiceParams struct {
	fx.In

	UserRepo    repository.UserRepository
	OrderRepo   repository.OrderRepository
	DriverRepo  repository.DriverRepository
	CityRepo    repository.CityRepository
	SheetRepo   repository.DelegateSheetRepository
	ProductRepo repository.ProductRepository
	Store       service.ArchiveStore
	Logger      *slog.Logger
}

// NewExportService is the constructor for exportService.
func NewExportService(params ExportServiceParams) usecase.ExportUsecase {
	return &exportService{
		userRepo:    params.UserRepo,
		orderRepo:   params.OrderRepo,
		driverRepo:  params.DriverRepo,
		cityRepo:    params.CityRepo,
		sheetRepo:   params.SheetRepo,
		productRepo: params.ProductRepo,
		store:       params.Store,
		logger:      params.Logger,
		now:         time.Now,
	}
}

func (srv *exportService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Export renders one resource as CSV, or every resource zipped together for "all".
func (srv *exportService) Export(ctx context.Context, exportType string) (*usecase.ExportFile, error) {
	startTime := srv.now()
	stamp := startTime.UTC().Format(exportTimestampLayout)

	var file *usecase.ExportFile
	if exportType == usecase.ExportAll {
		files := make([]util.NamedFile, 0, len(usecase.ExportTypes))
		for _, t := range usecase.ExportTypes {
			data, err := srv.render(ctx, t)
			if err != nil {
				return nil, err
			}
			files = append(files, util.NamedFile{Name: t + ".csv", Data: data})
		}

		archive, err := util.ZipFiles(files)
		if err != nil {
			return nil, errors.Wrap(err, "failed to build export archive")
		}
		file = &usecase.ExportFile{Name: "courier-export-" + stamp + ".zip", ContentType: contentTypeZip, Data: archive}
	} else {
		data, err := srv.render(ctx, exportType)
		if err != nil {
			return nil, err
		}
		file = &usecase.ExportFile{Name: exportType + "-" + stamp + ".csv", ContentType: contentTypeCSV, Data: data}
	}

	key := path.Join(exportKeyPrefix, stamp, file.Name)
	if err := srv.store.Save(ctx, key, file.ContentType, file.Data); err != nil {
		srv.log(ctx).Warn("Failed to archive export", slog.String("key", key), slog.Any("error", err))
	}

	srv.log(ctx).Info("Export produced",
		slog.String("type", exportType),
		slog.String("file", file.Name),
		slog.String("size", util.FormatBytes(int64(len(file.Data)))),
		slog.String("duration", util.FormatDuration(srv.now().Sub(startTime))),
	)

	return file, nil
}

func (srv *exportService) render(ctx context.Context, exportType string) ([]byte, error) {
	var (
		header []string
		rows   [][]string
		err    error
	)

	switch exportType {
	case usecase.ExportUsers:
		header, rows, err = srv.userRows(ctx)
	case usecase.ExportOrders:
		header, rows, err = srv.orderRows(ctx)
	case usecase.ExportDrivers:
		header, rows, err = srv.driverRows(ctx)
	case usecase.ExportCities:
		header, rows, err = srv.cityRows(ctx)
	case usecase.ExportDelegateSheets:
		header, rows, err = srv.sheetRows(ctx)
	case usecase.ExportProducts:
		header, rows, err = srv.productRows(ctx)
	default:
		return nil, domainerrors.ErrInvalidExportType.WithDetails(map[string]any{
			"type":    exportType,
			"allowed": append(append([]string{}, usecase.ExportTypes...), usecase.ExportAll),
		})
	}
	if err != nil {
		return nil, errors.Wrapf(err, "failed to load %s for export", exportType)
	}

	data, err := util.EncodeCSV(header, rows)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to encode %s", exportType)
	}

	return data, nil
}

func (srv *exportService) userRows(ctx context.Context) ([]string, [][]string, error) {
	users, err := srv.userRepo.List(ctx)
	if err != nil {
		return nil, nil, err
	}

	header := []string{"id", "username", "email", "role", "created_at", "updated_at"}
	rows := make([][]string, 0, len(users))
	for _, u := range users {
		rows = append(rows, []string{
			u.ID.String(), u.Username, u.Email, u.Role.String(),
			formatTime(u.CreatedAt), formatTime(u.UpdatedAt),
		})
	}

	return header, rows, nil
}

func (srv *exportService) orderRows(ctx context.Context) ([]string, [][]string, error) {
	orders, err := srv.orderRepo.ListAll(ctx, nil, -1)
	if err != nil {
		return nil, nil, err
	}

	header := []string{
		"id", "barcode", "order_date", "recipient_name", "recipient_phone", "recipient_address",
		"recipient_city", "notes", "cod_amount", "status", "driver_id", "created_by", "created_at", "updated_at",
	}
	rows := make([][]string, 0, len(orders))
	for _, o := range orders {
		rows = append(rows, []string{
			o.ID.String(), o.Barcode, o.OrderDate.String(), o.RecipientName, o.RecipientPhone, o.RecipientAddress,
			o.RecipientCity, o.Notes, o.CODAmount.StringFixed(2), o.Status.String(), formatOptionalID(o.DriverID),
			o.CreatedBy.String(), formatTime(o.CreatedAt), formatTime(o.UpdatedAt),
		})
	}

	return header, rows, nil
}

func (srv *exportService) driverRows(ctx context.Context) ([]string, [][]string, error) {
	drivers, _, err := srv.driverRepo.List(ctx, entity.DriverFilter{}, nil)
	if err != nil {
		return nil, nil, err
	}

	header := []string{"id", "driver_name", "driver_phone", "driver_id_number", "assigned_areas", "created_at", "updated_at"}
	rows := make([][]string, 0, len(drivers))
	for _, d := range drivers {
		areas, err := json.Marshal(d.AssignedAreas)
		if err != nil {
			return nil, nil, errors.Wrap(err, "failed to encode assigned areas")
		}
		rows = append(rows, []string{
			d.ID.String(), d.DriverName, d.DriverPhone, d.DriverIDNumber, string(areas),
			formatTime(d.CreatedAt), formatTime(d.UpdatedAt),
		})
	}

	return header, rows, nil
}

func (srv *exportService) cityRows(ctx context.Context) ([]string, [][]string, error) {
	cities, err := srv.cityRepo.List(ctx, "")
	if err != nil {
		return nil, nil, err
	}

	header := []string{"id", "name", "created_at"}
	rows := make([][]string, 0, len(cities))
	for _, c := range cities {
		rows = append(rows, []string{c.ID, c.Name, formatTime(c.CreatedAt)})
	}

	return header, rows, nil
}

func (srv *exportService) sheetRows(ctx context.Context) ([]string, [][]string, error) {
	sheets, err := srv.sheetRepo.ListAll(ctx)
	if err != nil {
		return nil, nil, err
	}

	header := []string{"id", "sheet_barcode", "driver_id", "total_amount", "order_count", "created_by", "created_at"}
	rows := make([][]string, 0, len(sheets))
	for _, s := range sheets {
		rows = append(rows, []string{
			s.ID.String(), s.SheetBarcode, s.DriverID.String(), s.TotalAmount.StringFixed(2),
			strconv.Itoa(s.OrderCount), s.CreatedBy.String(), formatTime(s.CreatedAt),
		})
	}

	return header, rows, nil
}

func (srv *exportService) productRows(ctx context.Context) ([]string, [][]string, error) {
	products, err := srv.productRepo.List(ctx)
	if err != nil {
		return nil, nil, err
	}

	header := []string{"id", "name", "quantity", "price", "unit", "barcode", "expiry_date", "created_at", "updated_at"}
	rows := make([][]string, 0, len(products))
	for _, p := range products {
		expiry := ""
		if p.ExpiryDate != nil {
			expiry = p.ExpiryDate.String()
		}
		rows = append(rows, []string{
			p.ID.String(), p.Name, strconv.Itoa(p.Quantity), p.Price.StringFixed(2), string(p.Unit),
			p.Barcode, expiry, formatTime(p.CreatedAt), formatTime(p.UpdatedAt),
		})
	}

	return header, rows, nil
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}

	return t.UTC().Format(time.RFC3339)
}

func formatOptionalID(id *uuid.UUID) string {
	if id == nil {
		return ""
	}

	return id.String()
}
