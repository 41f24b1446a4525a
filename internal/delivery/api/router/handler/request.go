package handler

import (
	"strings"

	"courier/internal/delivery/api/middleware"
	"courier/internal/domain/entity"
	domainerrors "courier/internal/domain/errors"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// PageQuery is the page selection shared by paginated list endpoints
type PageQuery struct {
	Page  int `query:"page" validate:"omitempty,gte=1"`
	Limit int `query:"limit" validate:"omitempty,gte=1"`
}

// PageRequest clamps the query to the allowed page bounds
func (q PageQuery) PageRequest() entity.PageRequest {
	return entity.PageRequest{Page: q.Page, Limit: q.Limit}.Normalize()
}

// DateRangeQuery is the inclusive from/to range taken by every report
type DateRangeQuery struct {
	From string `query:"from" validate:"required,datetime=2006-01-02"`
	To   string `query:"to" validate:"required,datetime=2006-01-02"`
}

// DateRange parses the already validated bounds
func (q DateRangeQuery) DateRange() (entity.DateRange, error) {
	from, err := parseDate("from", q.From)
	if err != nil {
		return entity.DateRange{}, err
	}
	to, err := parseDate("to", q.To)
	if err != nil {
		return entity.DateRange{}, err
	}

	return entity.DateRange{From: *from, To: *to}, nil
}

func parseIDParam(c echo.Context) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return uuid.Nil, domainerrors.NewValidationError(domainerrors.FieldError{Field: "id", Message: "must be a valid UUID"})
	}

	return id, nil
}

// parseOptionalUUID returns nil for a blank value
func parseOptionalUUID(field, value string) (*uuid.UUID, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil, nil
	}

	id, err := uuid.Parse(value)
	if err != nil {
		return nil, domainerrors.NewValidationError(domainerrors.FieldError{Field: field, Message: "must be a valid UUID"})
	}

	return &id, nil
}

// parseDate returns nil for a blank value
func parseDate(field, value string) (*entity.Date, error) {
	if strings.TrimSpace(value) == "" {
		return nil, nil
	}

	date, err := entity.ParseDate(value)
	if err != nil {
		return nil, domainerrors.NewValidationError(domainerrors.FieldError{Field: field, Message: "must be a date in YYYY-MM-DD format"})
	}

	return &date, nil
}

func principalOf(c echo.Context) (entity.Principal, error) {
	principal, ok := middleware.GetPrincipal(c)
	if !ok {
		return entity.Principal{}, domainerrors.ErrUnauthorized
	}

	return principal, nil
}
