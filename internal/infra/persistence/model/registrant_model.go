package model

import (
	"time"

	"userregistry/internal/domain/entity"
)

// RegistrantModel mirrors the 'registrants' table.
type RegistrantModel struct {
	ID             int64  `gorm:"primaryKey;autoIncrement"`
	Name           string `gorm:"type:varchar(255);not null"`
	Phone          string `gorm:"type:varchar(50);not null"`
	Address        string `gorm:"type:varchar(255)"`
	CountryID      int64  `gorm:"not null;index"`
	DepartmentID   int64  `gorm:"not null;index"`
	MunicipalityID int64  `gorm:"not null;index"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// TableName explicitly sets the table name for GORM.
func (RegistrantModel) TableName() string {
	return "registrants"
}

// ToEntity converts the data model to a domain entity.
func (m *RegistrantModel) ToEntity() *entity.Registrant {
	return &entity.Registrant{
		ID:             m.ID,
		Name:           m.Name,
		Phone:          m.Phone,
		Address:        m.Address,
		CountryID:      m.CountryID,
		DepartmentID:   m.DepartmentID,
		MunicipalityID: m.MunicipalityID,
		CreatedAt:      m.CreatedAt,
		UpdatedAt:      m.UpdatedAt,
	}
}

// RegistrantModelFromEntity converts a domain entity to the data model.
func RegistrantModelFromEntity(registrant *entity.Registrant) *RegistrantModel {
	return &RegistrantModel{
		ID:             registrant.ID,
		Name:           registrant.Name,
		Phone:          registrant.Phone,
		Address:        registrant.Address,
		CountryID:      registrant.CountryID,
		DepartmentID:   registrant.DepartmentID,
		MunicipalityID: registrant.MunicipalityID,
		CreatedAt:      registrant.CreatedAt,
		UpdatedAt:      registrant.UpdatedAt,
	}
}
