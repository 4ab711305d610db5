package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

// ProductModel mirrors the 'products' table. Images are stored as a JSONB array
// to keep their order.
type ProductModel struct {
	ID          uuid.UUID                   `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	GearID      string                      `gorm:"column:gear_id;type:varchar(255);unique;not null"`
	Title       string                      `gorm:"type:varchar(255);not null"`
	Description string                      `gorm:"type:text;not null"`
	Brand       string                      `gorm:"type:varchar(20);not null"`
	Category    string                      `gorm:"type:varchar(255);not null"`
	Price       decimal.Decimal             `gorm:"type:numeric(10,2);not null"`
	Images      datatypes.JSONSlice[string] `gorm:"type:jsonb;not null"`
	Stock       int                         `gorm:"not null;default:0"`
	CreatedAt   time.Time                   `gorm:"index"`
	UpdatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (ProductModel) TableName() string {
	return "products"
}
