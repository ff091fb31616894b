package postgres

import (
	"context"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"userregistry/internal/domain/entity"
	"userregistry/internal/domain/repository"
	"userregistry/internal/infra/persistence/model"
)

// geographyRepository is the GORM implementation of repository.GeographyRepository.
type geographyRepository struct {
	db *gorm.DB
}

// NewGeographyRepository is the constructor for geographyRepository.
func NewGeographyRepository(db *gorm.DB) repository.GeographyRepository {
	return &geographyRepository{db: db}
}

// CountryExists reports whether a country with the given ID is stored.
func (r *geographyRepository) CountryExists(ctx context.Context, id int64) (bool, error) {
	return r.exists(ctx, &model.CountryModel{}, id)
}

// DepartmentExists reports whether a department with the given ID is stored.
func (r *geographyRepository) DepartmentExists(ctx context.Context, id int64) (bool, error) {
	return r.exists(ctx, &model.DepartmentModel{}, id)
}

// MunicipalityExists reports whether a municipality with the given ID is stored.
func (r *geographyRepository) MunicipalityExists(ctx context.Context, id int64) (bool, error) {
	return r.exists(ctx, &model.MunicipalityModel{}, id)
}

func (r *geographyRepository) exists(ctx context.Context, tableModel any, id int64) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(tableModel).Where("id = ?", id).Count(&count).Error
	if err != nil {
		return false, errors.Wrap(err, "failed to check reference existence")
	}

	return count > 0, nil
}

// ReplaceCountries loads the given rows, upserting by primary key so
// re-running a load is idempotent.
func (r *geographyRepository) ReplaceCountries(ctx context.Context, countries []*entity.Country) error {
	if len(countries) == 0 {
		return nil
	}

	rows := make([]model.CountryModel, 0, len(countries))
	for _, c := range countries {
		rows = append(rows, model.CountryModel{ID: c.ID, Name: c.Name})
	}

	return r.upsert(ctx, rows, "failed to load countries")
}

// ReplaceDepartments loads the given rows, upserting by primary key.
func (r *geographyRepository) ReplaceDepartments(ctx context.Context, departments []*entity.Department) error {
	if len(departments) == 0 {
		return nil
	}

	rows := make([]model.DepartmentModel, 0, len(departments))
	for _, d := range departments {
		rows = append(rows, model.DepartmentModel{ID: d.ID, Name: d.Name, CountryID: d.CountryID})
	}

	return r.upsert(ctx, rows, "failed to load departments")
}

// ReplaceMunicipalities loads the given rows, upserting by primary key.
func (r *geographyRepository) ReplaceMunicipalities(ctx context.Context, municipalities []*entity.Municipality) error {
	if len(municipalities) == 0 {
		return nil
	}

	rows := make([]model.MunicipalityModel, 0, len(municipalities))
	for _, m := range municipalities {
		rows = append(rows, model.MunicipalityModel{ID: m.ID, Name: m.Name, DepartmentID: m.DepartmentID})
	}

	return r.upsert(ctx, rows, "failed to load municipalities")
}

// ListCountries returns all stored countries ordered by id.
func (r *geographyRepository) ListCountries(ctx context.Context) ([]*entity.Country, error) {
	var rows []model.CountryModel
	if err := r.db.WithContext(ctx).Order("id").Find(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list countries")
	}

	countries := make([]*entity.Country, 0, len(rows))
	for i := range rows {
		countries = append(countries, rows[i].ToEntity())
	}

	return countries, nil
}

// ListDepartments returns all stored departments ordered by id.
func (r *geographyRepository) ListDepartments(ctx context.Context) ([]*entity.Department, error) {
	var rows []model.DepartmentModel
	if err := r.db.WithContext(ctx).Order("id").Find(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list departments")
	}

	departments := make([]*entity.Department, 0, len(rows))
	for i := range rows {
		departments = append(departments, rows[i].ToEntity())
	}

	return departments, nil
}

// ListMunicipalities returns all stored municipalities ordered by id.
func (r *geographyRepository) ListMunicipalities(ctx context.Context) ([]*entity.Municipality, error) {
	var rows []model.MunicipalityModel
	if err := r.db.WithContext(ctx).Order("id").Find(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list municipalities")
	}

	municipalities := make([]*entity.Municipality, 0, len(rows))
	for i := range rows {
		municipalities = append(municipalities, rows[i].ToEntity())
	}

	return municipalities, nil
}

func (r *geographyRepository) upsert(ctx context.Context, rows any, wrapMsg string) error {
	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			UpdateAll: true,
		}).
		Create(rows).Error
	if err != nil {
		return errors.Wrap(err, wrapMsg)
	}

	return nil
}
