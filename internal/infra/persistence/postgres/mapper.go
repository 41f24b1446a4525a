package postgres

import (
	"strings"
	"time"

	"courier/internal/domain/entity"
	"courier/internal/infra/persistence/model"

	"gorm.io/datatypes"
)

// --- Mapper Functions ---

func toUserDomain(data *model.UserModel) *entity.User {
	if data == nil {
		return nil
	}

	return &entity.User{
		ID:           data.ID,
		Username:     data.Username,
		Email:        data.Email,
		PasswordHash: data.PasswordHash,
		Role:         entity.Role(data.Role),
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}

func fromUserDomain(data *entity.User) *model.UserModel {
	if data == nil {
		return nil
	}

	return &model.UserModel{
		ID:           data.ID,
		Username:     data.Username,
		Email:        data.Email,
		PasswordHash: data.PasswordHash,
		Role:         string(data.Role),
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}

func toDriverDomain(data *model.DriverModel) *entity.Driver {
	if data == nil {
		return nil
	}

	areas := make([]string, 0, len(data.AssignedAreas))
	areas = append(areas, data.AssignedAreas...)

	return &entity.Driver{
		ID:             data.ID,
		DriverName:     data.DriverName,
		DriverPhone:    data.DriverPhone,
		DriverIDNumber: data.DriverIDNumber,
		AssignedAreas:  areas,
		CreatedAt:      data.CreatedAt,
		UpdatedAt:      data.UpdatedAt,
	}
}

func fromDriverDomain(data *entity.Driver) *model.DriverModel {
	if data == nil {
		return nil
	}

	areas := datatypes.JSONSlice[string]{}
	areas = append(areas, data.AssignedAreas...)

	return &model.DriverModel{
		ID:             data.ID,
		DriverName:     data.DriverName,
		DriverPhone:    data.DriverPhone,
		DriverIDNumber: data.DriverIDNumber,
		AssignedAreas:  areas,
		CreatedAt:      data.CreatedAt,
		UpdatedAt:      data.UpdatedAt,
	}
}

func toCityDomain(data *model.CityModel) *entity.City {
	if data == nil {
		return nil
	}

	return &entity.City{
		ID:        data.ID,
		Name:      data.Name,
		CreatedAt: data.CreatedAt,
	}
}

func toOrderDomain(data *model.OrderModel) *entity.Order {
	if data == nil {
		return nil
	}

	order := &entity.Order{
		ID:               data.ID,
		Barcode:          data.Barcode,
		OrderDate:        fromDatatypesDate(data.OrderDate),
		RecipientName:    data.RecipientName,
		RecipientPhone:   data.RecipientPhone,
		RecipientAddress: data.RecipientAddress,
		RecipientCity:    data.RecipientCity,
		Notes:            data.Notes,
		CODAmount:        data.CODAmount,
		Status:           entity.OrderStatus(data.Status),
		DriverID:         data.DriverID,
		CreatedBy:        data.CreatedBy,
		CreatedAt:        data.CreatedAt,
		UpdatedAt:        data.UpdatedAt,
		Driver:           toDriverDomain(data.Driver),
	}
	if data.Creator != nil {
		order.Creator = toUserDomain(data.Creator).Summary()
	}

	return order
}

func fromOrderDomain(data *entity.Order) *model.OrderModel {
	if data == nil {
		return nil
	}

	return &model.OrderModel{
		ID:               data.ID,
		Barcode:          data.Barcode,
		OrderDate:        toDatatypesDate(data.OrderDate),
		RecipientName:    data.RecipientName,
		RecipientPhone:   data.RecipientPhone,
		RecipientAddress: data.RecipientAddress,
		RecipientCity:    data.RecipientCity,
		Notes:            data.Notes,
		CODAmount:        data.CODAmount,
		Status:           string(data.Status),
		DriverID:         data.DriverID,
		CreatedBy:        data.CreatedBy,
		CreatedAt:        data.CreatedAt,
		UpdatedAt:        data.UpdatedAt,
	}
}

func toDelegateSheetDomain(data *model.DelegateSheetModel) *entity.DelegateSheet {
	if data == nil {
		return nil
	}

	return &entity.DelegateSheet{
		ID:           data.ID,
		SheetBarcode: data.SheetBarcode,
		DriverID:     data.DriverID,
		TotalAmount:  data.TotalAmount,
		OrderCount:   data.OrderCount,
		CreatedBy:    data.CreatedBy,
		CreatedAt:    data.CreatedAt,
		Driver:       toDriverDomain(data.Driver),
	}
}

func fromDelegateSheetDomain(data *entity.DelegateSheet) *model.DelegateSheetModel {
	if data == nil {
		return nil
	}

	return &model.DelegateSheetModel{
		ID:           data.ID,
		SheetBarcode: data.SheetBarcode,
		DriverID:     data.DriverID,
		TotalAmount:  data.TotalAmount,
		OrderCount:   data.OrderCount,
		CreatedBy:    data.CreatedBy,
		CreatedAt:    data.CreatedAt,
	}
}

func toProductDomain(data *model.ProductModel) *entity.Product {
	if data == nil {
		return nil
	}

	product := &entity.Product{
		ID:        data.ID,
		Name:      data.Name,
		Quantity:  data.Quantity,
		Price:     data.Price,
		Unit:      entity.ProductUnit(data.Unit),
		Barcode:   data.Barcode,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
	if data.ExpiryDate != nil {
		expiry := fromDatatypesDate(*data.ExpiryDate)
		product.ExpiryDate = &expiry
	}

	return product
}

func fromProductDomain(data *entity.Product) *model.ProductModel {
	if data == nil {
		return nil
	}

	product := &model.ProductModel{
		ID:        data.ID,
		Name:      data.Name,
		Quantity:  data.Quantity,
		Price:     data.Price,
		Unit:      string(data.Unit),
		Barcode:   data.Barcode,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
	if data.ExpiryDate != nil {
		expiry := toDatatypesDate(*data.ExpiryDate)
		product.ExpiryDate = &expiry
	}

	return product
}

func toDatatypesDate(d entity.Date) datatypes.Date {
	return datatypes.Date(d.Time)
}

func fromDatatypesDate(d datatypes.Date) entity.Date {
	return entity.NewDate(time.Time(d))
}

// containsPattern builds an ILIKE pattern matching s anywhere, with wildcards in s escaped.
func containsPattern(s string) string {
	replacer := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

	return "%" + replacer.Replace(s) + "%"
}

// dayBounds returns the half-open timestamp window [day, day+1).
func dayBounds(d entity.Date) (time.Time, time.Time) {
	return d.Time, d.AddDays(1).Time
}
