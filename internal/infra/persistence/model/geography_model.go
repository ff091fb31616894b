package model

import "userregistry/internal/domain/entity"

// CountryModel mirrors the 'countries' reference table. IDs come from the
// CSV source files, never from the database.
type CountryModel struct {
	ID   int64  `gorm:"primaryKey"`
	Name string `gorm:"type:varchar(255);not null"`
}

// TableName explicitly sets the table name for GORM.
func (CountryModel) TableName() string {
	return "countries"
}

// ToEntity converts the data model to a domain entity.
func (m *CountryModel) ToEntity() *entity.Country {
	return &entity.Country{ID: m.ID, Name: m.Name}
}

// DepartmentModel mirrors the 'departments' reference table.
type DepartmentModel struct {
	ID        int64  `gorm:"primaryKey"`
	Name      string `gorm:"type:varchar(255);not null"`
	CountryID int64  `gorm:"not null;index"`
}

// TableName explicitly sets the table name for GORM.
func (DepartmentModel) TableName() string {
	return "departments"
}

// ToEntity converts the data model to a domain entity.
func (m *DepartmentModel) ToEntity() *entity.Department {
	return &entity.Department{ID: m.ID, Name: m.Name, CountryID: m.CountryID}
}

// MunicipalityModel mirrors the 'municipalities' reference table.
type MunicipalityModel struct {
	ID           int64  `gorm:"primaryKey"`
	Name         string `gorm:"type:varchar(255);not null"`
	DepartmentID int64  `gorm:"not null;index"`
}

// TableName explicitly sets the table name for GORM.
func (MunicipalityModel) TableName() string {
	return "municipalities"
}

// ToEntity converts the data model to a domain entity.
func (m *MunicipalityModel) ToEntity() *entity.Municipality {
	return &entity.Municipality{ID: m.ID, Name: m.Name, DepartmentID: m.DepartmentID}
}
