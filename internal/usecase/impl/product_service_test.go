package impl

import (
	"bytes"
	"context"
	"testing"
	"time"

	"peterparts/internal/domain/entity"
	domainerrors "peterparts/internal/domain/errors"
	"peterparts/internal/domain/repository"
	mockRepo "peterparts/internal/mocks/repository"
	mockSvc "peterparts/internal/mocks/service"
	"peterparts/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var pngHeader = []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR\x00\x00\x00\x01\x00\x00\x00\x01")

type productServiceFixtures struct {
	service      *productService
	txManager    *mockRepo.MockTransactionManager
	productRepo  *mockRepo.MockProductRepository
	imageStorage *mockSvc.MockImageStorage
}

func createTestProductService(t *testing.T) productServiceFixtures {
	f := productServiceFixtures{
		txManager:    mockRepo.NewMockTransactionManager(t),
		productRepo:  mockRepo.NewMockProductRepository(t),
		imageStorage: mockSvc.NewMockImageStorage(t),
	}

	f.service = NewProductService(ProductServiceParams{
		TxManager:    f.txManager,
		ProductRepo:  f.productRepo,
		ImageStorage: f.imageStorage,
		Config:       newTestConfig(),
		Logger:       newDiscardLogger(),
	}).(*productService)

	return f
}

func sampleProduct() *entity.Product {
	return &entity.Product{
		ID:        uuid.New(),
		GearID:    "gear-1",
		Title:     "Stand Mixer Bowl",
		Brand:     entity.BrandKitchenaid,
		Category:  "bowls",
		Price:     decimal.RequireFromString("49.99"),
		Images:    []string{},
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
}

func TestProductService_Create_ForcesZeroStock(t *testing.T) {
	f := createTestProductService(t)
	ctx := context.Background()
	stock := 25

	f.productRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Product")).
		Run(func(_ context.Context, product *entity.Product) {
			assert.Equal(t, 0, product.Stock)
			assert.NotNil(t, product.Images)
			product.ID = uuid.New()
		}).
		Return(nil)

	dto, err := f.service.Create(ctx, &usecase.CreateProductInput{
		GearID: "gear-1",
		Title:  "Blade",
		Brand:  entity.BrandCuisinart,
		Price:  decimal.RequireFromString("12.50"),
		Stock:  &stock,
	})

	require.NoError(t, err)
	assert.Equal(t, 0, dto.Stock)
	assert.Equal(t, []string{}, dto.Images)
	assert.Equal(t, "12.5", dto.Price.String())
}

func TestProductService_Create_Errors(t *testing.T) {
	ctx := context.Background()

	t.Run("brand outside catalog", func(t *testing.T) {
		f := createTestProductService(t)

		_, err := f.service.Create(ctx, &usecase.CreateProductInput{GearID: "g", Brand: "Acme"})
		assert.ErrorIs(t, err, domainerrors.ErrInvalidProductPayload)
	})

	t.Run("duplicate gear id", func(t *testing.T) {
		f := createTestProductService(t)
		f.productRepo.EXPECT().Create(ctx, mock.Anything).Return(repository.ErrDuplicateProduct)

		_, err := f.service.Create(ctx, &usecase.CreateProductInput{GearID: "g", Brand: entity.BrandCuisinart})
		assert.ErrorIs(t, err, domainerrors.ErrProductAlreadyExists)
	})

	t.Run("database failure", func(t *testing.T) {
		f := createTestProductService(t)
		f.productRepo.EXPECT().Create(ctx, mock.Anything).Return(errors.New("disk full"))

		_, err := f.service.Create(ctx, &usecase.CreateProductInput{GearID: "g", Brand: entity.BrandCuisinart})
		assert.ErrorIs(t, err, domainerrors.ErrCreateProductFailed)
	})
}

func TestProductService_List(t *testing.T) {
	f := createTestProductService(t)
	ctx := context.Background()
	newer, older := sampleProduct(), sampleProduct()

	f.productRepo.EXPECT().List(ctx).Return([]*entity.Product{newer, older}, nil).Once()
	dtos, err := f.service.List(ctx)
	require.NoError(t, err)
	require.Len(t, dtos, 2)
	assert.Equal(t, newer.ID, dtos[0].ID)

	f.productRepo.EXPECT().List(ctx).Return(nil, errors.New("boom")).Once()
	_, err = f.service.List(ctx)
	assert.ErrorIs(t, err, domainerrors.ErrListProductsFailed)
}

func TestProductService_Get(t *testing.T) {
	ctx := context.Background()

	t.Run("malformed id", func(t *testing.T) {
		f := createTestProductService(t)

		_, err := f.service.Get(ctx, "not-a-uuid")
		assert.ErrorIs(t, err, domainerrors.ErrProductNotFound)
	})

	t.Run("missing row", func(t *testing.T) {
		f := createTestProductService(t)
		id := uuid.New()
		f.productRepo.EXPECT().FindByID(ctx, id).Return(nil, repository.ErrProductNotFound)

		_, err := f.service.Get(ctx, id.String())
		assert.ErrorIs(t, err, domainerrors.ErrProductNotFound)
	})

	t.Run("found", func(t *testing.T) {
		f := createTestProductService(t)
		product := sampleProduct()
		f.productRepo.EXPECT().FindByID(ctx, product.ID).Return(product, nil)

		dto, err := f.service.Get(ctx, product.ID.String())
		require.NoError(t, err)
		assert.Equal(t, "gear-1", dto.GearID)
	})
}

func TestProductService_Update(t *testing.T) {
	ctx := context.Background()
	badBrand := entity.Brand("Acme")
	negative := -1
	title := "New title"

	tests := []struct {
		name    string
		id      string
		changes *entity.ProductChanges
		wantErr error
	}{
		{name: "nothing to change", id: uuid.NewString(), changes: &entity.ProductChanges{}, wantErr: domainerrors.ErrNoFieldsToUpdate},
		{name: "bad brand", id: uuid.NewString(), changes: &entity.ProductChanges{Brand: &badBrand}, wantErr: domainerrors.ErrInvalidBrand},
		{name: "negative stock", id: uuid.NewString(), changes: &entity.ProductChanges{Stock: &negative}, wantErr: domainerrors.ErrInvalidStock},
		{name: "malformed id", id: "42", changes: &entity.ProductChanges{Title: &title}, wantErr: domainerrors.ErrProductNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := createTestProductService(t)

			_, err := f.service.Update(ctx, tt.id, tt.changes)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}

	t.Run("missing row", func(t *testing.T) {
		f := createTestProductService(t)
		id := uuid.New()
		f.productRepo.EXPECT().Update(ctx, id, mock.Anything).Return(nil, repository.ErrProductNotFound)

		_, err := f.service.Update(ctx, id.String(), &entity.ProductChanges{Title: &title})
		assert.ErrorIs(t, err, domainerrors.ErrProductNotFound)
	})

	t.Run("applies changes", func(t *testing.T) {
		f := createTestProductService(t)
		product := sampleProduct()
		changes := &entity.ProductChanges{Title: &title}
		f.productRepo.EXPECT().Update(ctx, product.ID, changes).
			RunAndReturn(func(_ context.Context, _ uuid.UUID, c *entity.ProductChanges) (*entity.Product, error) {
				product.Title = *c.Title

				return product, nil
			})

		dto, err := f.service.Update(ctx, product.ID.String(), changes)
		require.NoError(t, err)
		assert.Equal(t, "New title", dto.Title)
	})
}

func TestProductService_Delete(t *testing.T) {
	ctx := context.Background()
	id := uuid.New()

	f := createTestProductService(t)
	f.productRepo.EXPECT().Delete(ctx, id).Return(nil).Once()
	require.NoError(t, f.service.Delete(ctx, id.String()))

	f.productRepo.EXPECT().Delete(ctx, id).Return(repository.ErrProductNotFound).Once()
	assert.ErrorIs(t, f.service.Delete(ctx, id.String()), domainerrors.ErrProductNotFound)

	f.productRepo.EXPECT().Delete(ctx, id).Return(errors.New("lock timeout")).Once()
	assert.ErrorIs(t, f.service.Delete(ctx, id.String()), domainerrors.ErrDeleteProductFailed)

	assert.ErrorIs(t, f.service.Delete(ctx, "nope"), domainerrors.ErrProductNotFound)
}

func TestProductService_AddImage(t *testing.T) {
	ctx := context.Background()

	t.Run("stores and appends", func(t *testing.T) {
		f := createTestProductService(t)
		product := sampleProduct()
		product.Images = []string{"https://cdn.example.com/old.png"}

		f.productRepo.EXPECT().FindByID(ctx, product.ID).Return(product, nil)
		f.imageStorage.EXPECT().
			Put(ctx, mock.AnythingOfType("string"), pngHeader, "image/png").
			RunAndReturn(func(_ context.Context, key string, _ []byte, _ string) (string, error) {
				assert.Regexp(t, `^products/`+product.ID.String()+`/[0-9a-f]{64}\.png$`, key)

				return "https://cdn.example.com/" + key, nil
			})

		factory := mockRepo.NewMockRepositoryFactory(t)
		txProductRepo := mockRepo.NewMockProductRepository(t)
		factory.EXPECT().NewProductRepository().Return(txProductRepo)
		txProductRepo.EXPECT().FindByID(ctx, product.ID).Return(product, nil)
		txProductRepo.EXPECT().Update(ctx, product.ID, mock.AnythingOfType("*entity.ProductChanges")).
			RunAndReturn(func(_ context.Context, _ uuid.UUID, c *entity.ProductChanges) (*entity.Product, error) {
				require.Len(t, c.Images, 2)
				assert.Equal(t, "https://cdn.example.com/old.png", c.Images[0])
				updated := *product
				updated.Images = c.Images

				return &updated, nil
			})
		f.txManager.EXPECT().Execute(ctx, mock.Anything).
			RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
				return fn(factory)
			})

		dto, err := f.service.AddImage(ctx, product.ID.String(), &usecase.ProductImageInput{Data: pngHeader, ContentType: "image/png"})
		require.NoError(t, err)
		assert.Len(t, dto.Images, 2)
		assert.Len(t, product.Images, 1, "stored entity slice is not mutated")
	})

	t.Run("same upload twice is a no-op", func(t *testing.T) {
		f := createTestProductService(t)
		product := sampleProduct()

		f.productRepo.EXPECT().FindByID(ctx, product.ID).Return(product, nil)
		f.imageStorage.EXPECT().Put(ctx, mock.Anything, mock.Anything, "image/png").
			RunAndReturn(func(_ context.Context, key string, _ []byte, _ string) (string, error) {
				product.Images = []string{"/" + key}

				return "/" + key, nil
			})

		factory := mockRepo.NewMockRepositoryFactory(t)
		txProductRepo := mockRepo.NewMockProductRepository(t)
		factory.EXPECT().NewProductRepository().Return(txProductRepo)
		txProductRepo.EXPECT().FindByID(ctx, product.ID).Return(product, nil)
		f.txManager.EXPECT().Execute(ctx, mock.Anything).
			RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
				return fn(factory)
			})

		dto, err := f.service.AddImage(ctx, product.ID.String(), &usecase.ProductImageInput{Data: pngHeader})
		require.NoError(t, err)
		assert.Len(t, dto.Images, 1)
	})

	t.Run("rejections", func(t *testing.T) {
		f := createTestProductService(t)
		id := uuid.NewString()

		_, err := f.service.AddImage(ctx, id, &usecase.ProductImageInput{})
		assert.ErrorIs(t, err, domainerrors.ErrInvalidImageUpload)

		_, err = f.service.AddImage(ctx, id, &usecase.ProductImageInput{Data: bytes.Repeat([]byte{0x89}, 2048)})
		assert.ErrorIs(t, err, domainerrors.ErrImageTooLarge)

		_, err = f.service.AddImage(ctx, id, &usecase.ProductImageInput{Data: []byte("plain text"), ContentType: "image/png"})
		assert.ErrorIs(t, err, domainerrors.ErrInvalidImageUpload)

		_, err = f.service.AddImage(ctx, "bad-id", &usecase.ProductImageInput{Data: pngHeader})
		assert.ErrorIs(t, err, domainerrors.ErrProductNotFound)
	})

	t.Run("storage failure", func(t *testing.T) {
		f := createTestProductService(t)
		product := sampleProduct()

		f.productRepo.EXPECT().FindByID(ctx, product.ID).Return(product, nil)
		f.imageStorage.EXPECT().Put(ctx, mock.Anything, mock.Anything, "image/png").Return("", errors.New("bucket gone"))

		_, err := f.service.AddImage(ctx, product.ID.String(), &usecase.ProductImageInput{Data: pngHeader})
		assert.ErrorIs(t, err, domainerrors.ErrImageUploadFailed)
	})
}
