package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// User is a party registered by wallet address.
type User struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Name          *string   `json:"name"`
	Email         *string   `json:"email"`
	Role          *string   `json:"role"`
	WalletAddress string    `gorm:"uniqueIndex;not null" json:"walletAddress"`
	CreatedAt     time.Time `json:"createdAt"`
}

// TableName pins the table name so it does not depend on gorm's naming strategy.
func (User) TableName() string {
	return "users"
}

// BeforeCreate assigns the identifier and enforces the lowercase wallet invariant.
func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	u.WalletAddress = NormalizeWallet(u.WalletAddress)
	return nil
}

// NormalizeWallet returns the canonical stored form of a wallet address.
func NormalizeWallet(addr string) string {
	return strings.ToLower(addr)
}
