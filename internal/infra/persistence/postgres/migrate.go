package postgres

import (
	"gorm.io/gorm"

	"userregistry/internal/infra/persistence/model"
)

// Migrate keeps the schema in sync with the data models. AutoMigrate only
// adds missing tables, columns and indexes; it never drops anything.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&model.AccountModel{},
		&model.RegistrantModel{},
		&model.CountryModel{},
		&model.DepartmentModel{},
		&model.MunicipalityModel{},
	)
}
