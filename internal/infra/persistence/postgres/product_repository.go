package postgres

import (
	"context"

	"peterparts/internal/domain/entity"
	domainerrors "peterparts/internal/domain/errors"
	"peterparts/internal/domain/repository"
	"peterparts/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// productRepository implements repository.ProductRepository.
type productRepository struct {
	db *gorm.DB
}

// NewProductRepository is the constructor for productRepository.
func NewProductRepository(db *gorm.DB) repository.ProductRepository {
	return &productRepository{
		db: db,
	}
}

// List returns every product ordered by creation time, newest first.
func (repo *productRepository) List(ctx context.Context) ([]*entity.Product, error) {
	var productModels []*model.ProductModel

	if err := repo.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&productModels).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list products")
	}

	products := make([]*entity.Product, 0, len(productModels))
	for _, productM := range productModels {
		products = append(products, toProductDomain(productM))
	}

	return products, nil
}

// FindByID retrieves a single product.
func (repo *productRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	var productM model.ProductModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&productM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrProductNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find product by ID")
	}

	return toProductDomain(&productM), nil
}

// Create persists a new product.
func (repo *productRepository) Create(ctx context.Context, product *entity.Product) error {
	productM := fromProductDomain(product)

	if err := repo.db.WithContext(ctx).Create(productM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateProduct
		}
		if isCheckConstraintViolation(err) || isNotNullConstraintViolation(err) {
			return domainerrors.ErrInvalidProductPayload.WrapMessage(err.Error())
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create product")
	}

	product.ID = productM.ID
	product.CreatedAt = productM.CreatedAt
	product.UpdatedAt = productM.UpdatedAt

	return nil
}

// Update applies the set fields of changes and returns the stored row.
func (repo *productRepository) Update(ctx context.Context, id uuid.UUID, changes *entity.ProductChanges) (*entity.Product, error) {
	result := repo.db.WithContext(ctx).
		Model(&model.ProductModel{}).
		Where("id = ?", id).
		Updates(productChangeColumns(changes))

	if result.Error != nil {
		if isUniqueConstraintViolation(result.Error) {
			return nil, repository.ErrDuplicateProduct
		}
		if isCheckConstraintViolation(result.Error) {
			return nil, domainerrors.ErrInvalidProductPayload.WrapMessage(result.Error.Error())
		}

		return nil, domainerrors.NewDatabaseExecuteError(result.Error, "failed to update product")
	}

	if result.RowsAffected == 0 {
		return nil, repository.ErrProductNotFound
	}

	return repo.FindByID(ctx, id)
}

// Delete removes a product.
func (repo *productRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.ProductModel{})

	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete product")
	}

	if result.RowsAffected == 0 {
		return repository.ErrProductNotFound
	}

	return nil
}

func productChangeColumns(changes *entity.ProductChanges) map[string]any {
	columns := make(map[string]any)
	if changes == nil {
		return columns
	}

	if changes.GearID != nil {
		columns["gear_id"] = *changes.GearID
	}
	if changes.Title != nil {
		columns["title"] = *changes.Title
	}
	if changes.Description != nil {
		columns["description"] = *changes.Description
	}
	if changes.Brand != nil {
		columns["brand"] = string(*changes.Brand)
	}
	if changes.Category != nil {
		columns["category"] = *changes.Category
	}
	if changes.Price != nil {
		columns["price"] = *changes.Price
	}
	if changes.Images != nil {
		columns["images"] = datatypes.JSONSlice[string](changes.Images)
	}
	if changes.Stock != nil {
		columns["stock"] = *changes.Stock
	}

	return columns
}

func toProductDomain(productM *model.ProductModel) *entity.Product {
	if productM == nil {
		return nil
	}

	images := []string(productM.Images)
	if images == nil {
		images = []string{}
	}

	return &entity.Product{
		ID:          productM.ID,
		GearID:      productM.GearID,
		Title:       productM.Title,
		Description: productM.Description,
		Brand:       entity.Brand(productM.Brand),
		Category:    productM.Category,
		Price:       productM.Price,
		Images:      images,
		Stock:       productM.Stock,
		CreatedAt:   productM.CreatedAt,
		UpdatedAt:   productM.UpdatedAt,
	}
}

func fromProductDomain(product *entity.Product) *model.ProductModel {
	if product == nil {
		return nil
	}

	images := product.Images
	if images == nil {
		images = []string{}
	}

	return &model.ProductModel{
		ID:          product.ID,
		GearID:      product.GearID,
		Title:       product.Title,
		Description: product.Description,
		Brand:       string(product.Brand),
		Category:    product.Category,
		Price:       product.Price,
		Images:      datatypes.JSONSlice[string](images),
		Stock:       product.Stock,
		CreatedAt:   product.CreatedAt,
		UpdatedAt:   product.UpdatedAt,
	}
}
