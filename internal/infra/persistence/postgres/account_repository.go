package postgres

import (
	"context"

	"github.com/pkg/errors"
	"gorm.io/gorm"

	"userregistry/internal/domain/entity"
	domainerrors "userregistry/internal/domain/errors"
	"userregistry/internal/domain/repository"
	"userregistry/internal/infra/persistence/model"
)

// accountRepository is the GORM implementation of repository.AccountRepository.
type accountRepository struct {
	db *gorm.DB
}

// NewAccountRepository is the constructor for accountRepository.
func NewAccountRepository(db *gorm.DB) repository.AccountRepository {
	return &accountRepository{db: db}
}

// Create stores a new account and fills in its generated ID.
func (r *accountRepository) Create(ctx context.Context, account *entity.Account) error {
	accountModel := model.AccountModelFromEntity(account)
	accountModel.ID = 0 // Let the database assign the key.

	if err := r.db.WithContext(ctx).Create(accountModel).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrEmailAlreadyRegistered.WrapMessage("create account")
		}

		return errors.Wrap(err, "failed to create account")
	}

	account.ID = accountModel.ID
	account.CreatedAt = accountModel.CreatedAt
	account.UpdatedAt = accountModel.UpdatedAt

	return nil
}

// FindByID retrieves an account by its surrogate key.
func (r *accountRepository) FindByID(ctx context.Context, id int64) (*entity.Account, error) {
	var accountModel model.AccountModel
	err := r.db.WithContext(ctx).First(&accountModel, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrAccountNotFound
		}

		return nil, errors.Wrap(err, "failed to find account by id")
	}

	return accountModel.ToEntity(), nil
}

// FindByEmail retrieves an account by its email address.
func (r *accountRepository) FindByEmail(ctx context.Context, email string) (*entity.Account, error) {
	var accountModel model.AccountModel
	err := r.db.WithContext(ctx).Where("email = ?", email).First(&accountModel).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrAccountNotFound
		}

		return nil, errors.Wrap(err, "failed to find account by email")
	}

	return accountModel.ToEntity(), nil
}

// FindByGoogleID retrieves an account by its Google subject identifier.
func (r *accountRepository) FindByGoogleID(ctx context.Context, googleID string) (*entity.Account, error) {
	var accountModel model.AccountModel
	err := r.db.WithContext(ctx).Where("google_id = ?", googleID).First(&accountModel).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrAccountNotFound
		}

		return nil, errors.Wrap(err, "failed to find account by google id")
	}

	return accountModel.ToEntity(), nil
}

// Update persists changes to an existing account.
func (r *accountRepository) Update(ctx context.Context, account *entity.Account) error {
	accountModel := model.AccountModelFromEntity(account)

	result := r.db.WithContext(ctx).
		Model(&model.AccountModel{}).
		Where("id = ?", accountModel.ID).
		Updates(map[string]any{
			"username":       accountModel.Username,
			"email":          accountModel.Email,
			"password_hash":  accountModel.PasswordHash,
			"role":           accountModel.Role,
			"is_google_auth": accountModel.IsGoogleAuth,
			"google_id":      accountModel.GoogleID,
			"is_authorized":  accountModel.IsAuthorized,
		})
	if result.Error != nil {
		if isUniqueConstraintViolation(result.Error) {
			return domainerrors.ErrEmailAlreadyRegistered.WrapMessage("update account")
		}

		return errors.Wrap(result.Error, "failed to update account")
	}
	if result.RowsAffected == 0 {
		return repository.ErrAccountNotFound
	}

	return nil
}

// Delete removes the account with the given ID.
func (r *accountRepository) Delete(ctx context.Context, id int64) error {
	result := r.db.WithContext(ctx).Delete(&model.AccountModel{}, id)
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete account")
	}
	if result.RowsAffected == 0 {
		return repository.ErrAccountNotFound
	}

	return nil
}

// ListAll returns every stored account ordered by ID.
func (r *accountRepository) ListAll(ctx context.Context) ([]*entity.Account, error) {
	var accountModels []model.AccountModel
	if err := r.db.WithContext(ctx).Order("id").Find(&accountModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list accounts")
	}

	accounts := make([]*entity.Account, 0, len(accountModels))
	for i := range accountModels {
		accounts = append(accounts, accountModels[i].ToEntity())
	}

	return accounts, nil
}
