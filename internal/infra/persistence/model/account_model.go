// Package model contains the GORM data models mirroring the database schema.
package model

import (
	"time"

	"userregistry/internal/domain/entity"
)

// AccountModel mirrors the 'auth_users' table.
type AccountModel struct {
	ID           int64  `gorm:"primaryKey;autoIncrement"`
	Username     string `gorm:"type:varchar(100);not null"`
	Email        string `gorm:"type:varchar(255);not null;uniqueIndex:idx_auth_users_email"`
	PasswordHash string `gorm:"type:varchar(255)"`
	Role         string `gorm:"type:varchar(50);not null"`
	IsGoogleAuth bool   `gorm:"not null;default:false"`
	GoogleID     string `gorm:"type:varchar(255);index:idx_auth_users_google_id"`
	IsAuthorized bool   `gorm:"not null;default:false"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (AccountModel) TableName() string {
	return "auth_users"
}

// ToEntity converts the data model to a domain entity.
func (m *AccountModel) ToEntity() *entity.Account {
	return &entity.Account{
		ID:           m.ID,
		Username:     m.Username,
		Email:        m.Email,
		PasswordHash: m.PasswordHash,
		Role:         entity.Role(m.Role),
		IsGoogleAuth: m.IsGoogleAuth,
		GoogleID:     m.GoogleID,
		IsAuthorized: m.IsAuthorized,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}

// AccountModelFromEntity converts a domain entity to the data model.
func AccountModelFromEntity(account *entity.Account) *AccountModel {
	return &AccountModel{
		ID:           account.ID,
		Username:     account.Username,
		Email:        account.Email,
		PasswordHash: account.PasswordHash,
		Role:         account.Role.String(),
		IsGoogleAuth: account.IsGoogleAuth,
		GoogleID:     account.GoogleID,
		IsAuthorized: account.IsAuthorized,
		CreatedAt:    account.CreatedAt,
		UpdatedAt:    account.UpdatedAt,
	}
}
