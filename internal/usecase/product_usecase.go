package usecase

import (
	"context"
	"time"

	"peterparts/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CreateProductInput is a normalized create payload.
type CreateProductInput struct {
	GearID      string
	Title       string
	Description string
	Brand       entity.Brand
	Category    string
	Price       decimal.Decimal
	Images      []string
	Stock       *int // Accepted for compatibility, the stored stock always starts at 0.
}

// ProductImageInput is an uploaded image.
type ProductImageInput struct {
	Data        []byte
	ContentType string
}

// ProductDTO is the public view of a product.
type ProductDTO struct {
	ID          uuid.UUID       `json:"id"`
	GearID      string          `json:"gearId"`
	Title       string          `json:"title"`
	Description string          `json:"description"`
	Brand       entity.Brand    `json:"brand"`
	Category    string          `json:"category"`
	Price       decimal.Decimal `json:"price"`
	Images      []string        `json:"images"`
	Stock       int             `json:"stock"`
	CreatedAt   time.Time       `json:"createdAt"`
	UpdatedAt   time.Time       `json:"updatedAt"`
}

// NewProductDTO converts a product entity into its public view.
func NewProductDTO(product *entity.Product) *ProductDTO {
	if product == nil {
		return nil
	}

	images := product.Images
	if images == nil {
		images = []string{}
	}

	return &ProductDTO{
		ID:          product.ID,
		GearID:      product.GearID,
		Title:       product.Title,
		Description: product.Description,
		Brand:       product.Brand,
		Category:    product.Category,
		Price:       product.Price,
		Images:      images,
		Stock:       product.Stock,
		CreatedAt:   product.CreatedAt,
		UpdatedAt:   product.UpdatedAt,
	}
}

// ProductUsecase defines the catalog operations. Product IDs arrive as raw
// path values; one that is not a UUID cannot match a row and reports not found.
type ProductUsecase interface {
	List(ctx context.Context) ([]*ProductDTO, error)
	Get(ctx context.Context, id string) (*ProductDTO, error)
	Create(ctx context.Context, input *CreateProductInput) (*ProductDTO, error)
	Update(ctx context.Context, id string, changes *entity.ProductChanges) (*ProductDTO, error)
	Delete(ctx context.Context, id string) error
	AddImage(ctx context.Context, id string, input *ProductImageInput) (*ProductDTO, error)
}
