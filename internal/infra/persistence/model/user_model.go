// Package model holds the relational persistence models used by the postgres backend.
package model

import (
	"time"

	"github.com/google/uuid"
)

// UserModel mirrors the 'users' table. IDs are generated by the application.
type UserModel struct {
	ID                   uuid.UUID `gorm:"type:uuid;primaryKey"`
	FirstName            string    `gorm:"type:varchar(100);not null"`
	LastName             string    `gorm:"type:varchar(100);not null"`
	Email                string    `gorm:"type:varchar(255);uniqueIndex;not null"`
	PasswordHash         string    `gorm:"type:varchar(255);not null"`
	Role                 string    `gorm:"type:varchar(16);not null;default:buyer"`
	SellerStatus         string    `gorm:"type:varchar(16);index;not null;default:''"`
	IsVerified           bool      `gorm:"not null;default:false"`
	StudentIDNumber      string    `gorm:"type:varchar(64)"`
	VerificationImageRef string    `gorm:"type:varchar(255)"`
	ApplicationDate      *time.Time
	CreatedAt            time.Time `gorm:"index"`
	UpdatedAt            time.Time
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}
