package model

import (
	"time"

	"github.com/google/uuid"
)

// UserModel mirrors the 'users' table. PostgreSQL generates UUIDs via gen_random_uuid().
type UserModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	Email     string    `gorm:"type:varchar(255);unique;not null"`
	Name      *string   `gorm:"type:varchar(255)"`
	AvatarURL *string   `gorm:"column:avatar_url;type:text"`
	Role      string    `gorm:"type:varchar(20);not null;default:Customer"`
	Provider  string    `gorm:"type:varchar(20);not null;default:Email"`
	GoogleID  *string   `gorm:"column:google_id;type:varchar(255);unique"`
	CreatedAt time.Time
	UpdatedAt time.Time

	VerificationCodes []VerificationCodeModel `gorm:"foreignKey:UserID"`
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}
