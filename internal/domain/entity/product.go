package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Brand is the closed set of manufacturers the catalog carries.
type Brand string

const (
	BrandCuisinart  Brand = "Cuisinart"
	BrandKitchenaid Brand = "Kitchenaid"
)

// IsValid checks if the Brand belongs to the catalog.
func (b Brand) IsValid() bool {
	return b == BrandCuisinart || b == BrandKitchenaid
}

// Product is a catalog item.
type Product struct {
	ID          uuid.UUID
	GearID      string // External identifier, unique.
	Title       string
	Description string
	Brand       Brand
	Category    string
	Price       decimal.Decimal
	Images      []string // Ordered image URLs.
	Stock       int
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// ProductChanges is a partial update. Nil fields are left untouched.
type ProductChanges struct {
	GearID      *string
	Title       *string
	Description *string
	Brand       *Brand
	Category    *string
	Price       *decimal.Decimal
	Images      []string // nil means unchanged; an empty slice clears the list.
	Stock       *int
}

// IsEmpty reports whether the update carries no fields at all.
func (c *ProductChanges) IsEmpty() bool {
	return c.GearID == nil && c.Title == nil && c.Description == nil && c.Brand == nil &&
		c.Category == nil && c.Price == nil && c.Images == nil && c.Stock == nil
}
