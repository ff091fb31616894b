package postgres

import (
	"context"

	"github.com/pkg/errors"
	"gorm.io/gorm"

	"userregistry/internal/domain/entity"
	"userregistry/internal/domain/repository"
	"userregistry/internal/infra/persistence/model"
)

// registrantRepository is the GORM implementation of repository.RegistrantRepository.
type registrantRepository struct {
	db *gorm.DB
}

// NewRegistrantRepository is the constructor for registrantRepository.
func NewRegistrantRepository(db *gorm.DB) repository.RegistrantRepository {
	return &registrantRepository{db: db}
}

// Create stores a new registrant and fills in its generated ID.
func (r *registrantRepository) Create(ctx context.Context, registrant *entity.Registrant) error {
	registrantModel := model.RegistrantModelFromEntity(registrant)
	registrantModel.ID = 0 // Let the database assign the key.

	if err := r.db.WithContext(ctx).Create(registrantModel).Error; err != nil {
		return errors.Wrap(err, "failed to create registrant")
	}

	registrant.ID = registrantModel.ID
	registrant.CreatedAt = registrantModel.CreatedAt
	registrant.UpdatedAt = registrantModel.UpdatedAt

	return nil
}

// FindByID retrieves a registrant by its surrogate key.
func (r *registrantRepository) FindByID(ctx context.Context, id int64) (*entity.Registrant, error) {
	var registrantModel model.RegistrantModel
	err := r.db.WithContext(ctx).First(&registrantModel, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrRegistrantNotFound
		}

		return nil, errors.Wrap(err, "failed to find registrant by id")
	}

	return registrantModel.ToEntity(), nil
}

// Update persists changes to an existing registrant.
func (r *registrantRepository) Update(ctx context.Context, registrant *entity.Registrant) error {
	registrantModel := model.RegistrantModelFromEntity(registrant)

	result := r.db.WithContext(ctx).
		Model(&model.RegistrantModel{}).
		Where("id = ?", registrantModel.ID).
		Updates(map[string]any{
			"name":            registrantModel.Name,
			"phone":           registrantModel.Phone,
			"address":         registrantModel.Address,
			"country_id":      registrantModel.CountryID,
			"department_id":   registrantModel.DepartmentID,
			"municipality_id": registrantModel.MunicipalityID,
		})
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update registrant")
	}
	if result.RowsAffected == 0 {
		return repository.ErrRegistrantNotFound
	}

	return nil
}

// Delete removes the registrant with the given ID.
func (r *registrantRepository) Delete(ctx context.Context, id int64) error {
	result := r.db.WithContext(ctx).Delete(&model.RegistrantModel{}, id)
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete registrant")
	}
	if result.RowsAffected == 0 {
		return repository.ErrRegistrantNotFound
	}

	return nil
}

// ListAll returns every stored registrant ordered by ID.
func (r *registrantRepository) ListAll(ctx context.Context) ([]*entity.Registrant, error) {
	var registrantModels []model.RegistrantModel
	if err := r.db.WithContext(ctx).Order("id").Find(&registrantModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list registrants")
	}

	registrants := make([]*entity.Registrant, 0, len(registrantModels))
	for i := range registrantModels {
		registrants = append(registrants, registrantModels[i].ToEntity())
	}

	return registrants, nil
}
