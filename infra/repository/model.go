package repository

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Account represents an account record in the database.
type Account struct {
	ID        string          `gorm:"type:varchar(64);primaryKey"`
	Balance   decimal.Decimal `gorm:"type:numeric(20,2);not null;default:0"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName specifies the table name for the Account model.
func (Account) TableName() string {
	return "accounts"
}

// Migrate creates or updates the accounts table.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&Account{})
}
