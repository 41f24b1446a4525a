package postgres

import (
	"context"
	"strings"

	"courier/internal/domain/entity"
	domainerrors "courier/internal/domain/errors"
	"courier/internal/domain/repository"
	"courier/internal/infra/persistence/model"
	"courier/internal/infra/persistence/postgres/query"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// cityRepository implements the repository.CityRepository interface.
type cityRepository struct {
	db *gorm.DB
	q  *query.Query
}

// NewCityRepository is the constructor for cityRepository.
func NewCityRepository(db *gorm.DB) repository.CityRepository {
	return &cityRepository{
		db: db,
		q:  query.Use(db),
	}
}

// List returns cities ordered by name, optionally filtered by a case-insensitive substring.
func (repo *cityRepository) List(ctx context.Context, search string) ([]*entity.City, error) {
	c := repo.q.CityModel

	do := c.WithContext(ctx).Order(c.Name.Asc())
	if search != "" {
		do = do.Where(c.Name.Lower().Like(containsPattern(strings.ToLower(search))))
	}

	cityModels, err := do.Find()
	if err != nil {
		return nil, errors.Wrap(err, "failed to list cities")
	}

	cities := make([]*entity.City, 0, len(cityModels))
	for _, cityM := range cityModels {
		cities = append(cities, toCityDomain(cityM))
	}

	return cities, nil
}

// NameExists compares names case-insensitively.
func (repo *cityRepository) NameExists(ctx context.Context, name string) (bool, error) {
	c := repo.q.CityModel

	count, err := c.WithContext(ctx).Where(c.Name.Lower().Eq(strings.ToLower(name))).Count()
	if err != nil {
		return false, errors.Wrap(err, "failed to check city name")
	}

	return count > 0, nil
}

// NextSequence draws the next value of the city sequence. Values are never reused.
func (repo *cityRepository) NextSequence(ctx context.Context) (int64, error) {
	var seq int64

	if err := repo.db.WithContext(ctx).
		Raw("SELECT nextval(?)", model.CitySequence).
		Scan(&seq).Error; err != nil {
		return 0, errors.Wrap(err, "failed to draw city sequence")
	}

	return seq, nil
}

// Create persists a new city.
func (repo *cityRepository) Create(ctx context.Context, city *entity.City) error {
	cityM := &model.CityModel{
		ID:   city.ID,
		Name: city.Name,
	}

	if err := repo.q.CityModel.WithContext(ctx).Create(cityM); err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateCity
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create city")
	}

	city.CreatedAt = cityM.CreatedAt

	return nil
}
