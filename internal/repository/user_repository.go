package repository

import (
	"context"
	"errors"

	"github.com/rohitYaduvanshi/Propertix-Backend/internal/models"
	appErr "github.com/rohitYaduvanshi/Propertix-Backend/pkg/errors"
	"gorm.io/gorm"
)

type UserRepository interface {
	BaseRepository[models.User]
	// GetByWallet expects an already normalized address.
	GetByWallet(ctx context.Context, wallet string, dest *models.User) error
}

type userRepository struct {
	BaseRepository[models.User]
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{BaseRepository: NewBaseRepository[models.User](db), db: db}
}

func (r *userRepository) GetByWallet(ctx context.Context, wallet string, dest *models.User) error {
	if err := r.db.WithContext(ctx).Where("wallet_address = ?", wallet).First(dest).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return appErr.New(appErr.CodeNotFound, "user not found")
		}
		return appErr.Wrap(err, appErr.CodeInternal, "get user by wallet failed")
	}
	return nil
}
