package repository

import (
	"context"

	"github.com/rohitYaduvanshi/Propertix-Backend/internal/models"
	"gorm.io/gorm"
)

// registerModels returns all models that need a table.
func registerModels() []interface{} {
	return []interface{}{
		&models.User{},
	}
}

// Migrate creates the users table and its unique wallet index if missing.
// It is idempotent and never drops columns.
func Migrate(ctx context.Context, db *gorm.DB) error {
	return db.WithContext(ctx).AutoMigrate(registerModels()...)
}
