package repository

import (
	"context"

	"peterparts/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Domain-specific errors for product persistence.
var (
	// ErrProductNotFound is returned when no product row matches.
	ErrProductNotFound = errors.New("product not found")
	// ErrDuplicateProduct is returned when the gearId is already taken.
	ErrDuplicateProduct = errors.New("product already exists")
)

// ProductRepository defines the catalog operations.
type ProductRepository interface {
	// List returns every product, newest first.
	List(ctx context.Context) ([]*entity.Product, error)

	// FindByID retrieves a single product.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Product, error)

	// Create persists a new product and fills in generated fields.
	Create(ctx context.Context, product *entity.Product) error

	// Update applies a partial change and returns the stored row.
	Update(ctx context.Context, id uuid.UUID, changes *entity.ProductChanges) (*entity.Product, error)

	// Delete removes a product.
	Delete(ctx context.Context, id uuid.UUID) error
}
