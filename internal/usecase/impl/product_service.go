package impl

import (
	"context"
	"log/slog"
	"mime"
	"net/http"

	"peterparts/config"
	deliverycontext "peterparts/internal/delivery/context"
	"peterparts/internal/domain/entity"
	domainerrors "peterparts/internal/domain/errors"
	"peterparts/internal/domain/repository"
	"peterparts/internal/domain/service"
	"peterparts/internal/usecase"
	"peterparts/internal/util"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const defaultMaxImageBytes = 5 << 20

var imageExtensions = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/gif":  ".gif",
	"image/webp": ".webp",
}

// productService implements the ProductUsecase interface.
type productService struct {
	txManager     repository.TransactionManager
	productRepo   repository.ProductRepository
	imageStorage  service.ImageStorage
	maxImageBytes int64
	logger        *slog.Logger
}

// ProductServiceParams holds dependencies for ProductService, injected by Fx.
type ProductServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	ProductRepo  repository.ProductRepository
	ImageStorage service.ImageStorage
	Config       *config.Config
	Logger       *slog.Logger
}

// NewProductService is the constructor for productService.
func NewProductService(params ProductServiceParams) usecase.ProductUsecase {
	maxImageBytes := int64(defaultMaxImageBytes)
	if params.Config != nil && params.Config.Storage != nil && params.Config.Storage.MaxImageBytes > 0 {
		maxImageBytes = params.Config.Storage.MaxImageBytes
	}

	return &productService{
		txManager:     params.TxManager,
		productRepo:   params.ProductRepo,
		imageStorage:  params.ImageStorage,
		maxImageBytes: maxImageBytes,
		logger:        params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *productService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.Logger(ctx, srv.logger)
}

// List returns the whole catalog, newest first.
func (srv *productService) List(ctx context.Context) ([]*usecase.ProductDTO, error) {
	products, err := srv.productRepo.List(ctx)
	if err != nil {
		srv.log(ctx).Error("Failed to list products", slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrListProductsFailed, err.Error())
	}

	dtos := make([]*usecase.ProductDTO, 0, len(products))
	for _, product := range products {
		dtos = append(dtos, usecase.NewProductDTO(product))
	}

	return dtos, nil
}

// Get returns one product.
func (srv *productService) Get(ctx context.Context, id string) (*usecase.ProductDTO, error) {
	productID, ok := parseProductID(id)
	if !ok {
		return nil, domainerrors.ErrProductNotFound
	}

	product, err := srv.productRepo.FindByID(ctx, productID)
	if errors.Is(err, repository.ErrProductNotFound) {
		return nil, domainerrors.ErrProductNotFound
	}
	if err != nil {
		srv.log(ctx).Error("Failed to fetch product", slog.Any("productID", productID), slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrFetchProductFailed, err.Error())
	}

	return usecase.NewProductDTO(product), nil
}

// Create stores a new product. Stock always starts at zero, whatever the
// payload says.
func (srv *productService) Create(ctx context.Context, input *usecase.CreateProductInput) (*usecase.ProductDTO, error) {
	if input == nil || !input.Brand.IsValid() {
		return nil, domainerrors.ErrInvalidProductPayload
	}

	images := input.Images
	if images == nil {
		images = []string{}
	}

	product := &entity.Product{
		GearID:      input.GearID,
		Title:       input.Title,
		Description: input.Description,
		Brand:       input.Brand,
		Category:    input.Category,
		Price:       input.Price,
		Images:      images,
		Stock:       0,
	}

	err := srv.productRepo.Create(ctx, product)
	if errors.Is(err, repository.ErrDuplicateProduct) {
		return nil, domainerrors.ErrProductAlreadyExists
	}
	if err != nil {
		srv.log(ctx).Error("Failed to create product", slog.String("gearID", input.GearID), slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrCreateProductFailed, err.Error())
	}

	srv.log(ctx).Info("Product created", slog.Any("productID", product.ID), slog.String("gearID", product.GearID))

	return usecase.NewProductDTO(product), nil
}

// Update applies a partial change.
func (srv *productService) Update(ctx context.Context, id string, changes *entity.ProductChanges) (*usecase.ProductDTO, error) {
	if changes == nil || changes.IsEmpty() {
		return nil, domainerrors.ErrNoFieldsToUpdate
	}
	if changes.Brand != nil && !changes.Brand.IsValid() {
		return nil, domainerrors.ErrInvalidBrand
	}
	if changes.Stock != nil && *changes.Stock < 0 {
		return nil, domainerrors.ErrInvalidStock
	}

	productID, ok := parseProductID(id)
	if !ok {
		return nil, domainerrors.ErrProductNotFound
	}

	product, err := srv.productRepo.Update(ctx, productID, changes)
	switch {
	case errors.Is(err, repository.ErrProductNotFound):
		return nil, domainerrors.ErrProductNotFound
	case errors.Is(err, repository.ErrDuplicateProduct):
		return nil, domainerrors.ErrProductAlreadyExists
	case err != nil:
		srv.log(ctx).Error("Failed to update product", slog.Any("productID", productID), slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrUpdateProductFailed, err.Error())
	}

	return usecase.NewProductDTO(product), nil
}

// Delete removes a product.
func (srv *productService) Delete(ctx context.Context, id string) error {
	productID, ok := parseProductID(id)
	if !ok {
		return domainerrors.ErrProductNotFound
	}

	err := srv.productRepo.Delete(ctx, productID)
	if errors.Is(err, repository.ErrProductNotFound) {
		return domainerrors.ErrProductNotFound
	}
	if err != nil {
		srv.log(ctx).Error("Failed to delete product", slog.Any("productID", productID), slog.Any("error", err))

		return errors.Wrap(domainerrors.ErrDeleteProductFailed, err.Error())
	}

	srv.log(ctx).Info("Product deleted", slog.Any("productID", productID))

	return nil
}

// AddImage stores an uploaded image and appends its URL to the product.
// The object key is content addressed, so re-uploading the same file is a no-op.
func (srv *productService) AddImage(ctx context.Context, id string, input *usecase.ProductImageInput) (*usecase.ProductDTO, error) {
	productID, ok := parseProductID(id)
	if !ok {
		return nil, domainerrors.ErrProductNotFound
	}
	if input == nil || len(input.Data) == 0 {
		return nil, errors.Wrap(domainerrors.ErrInvalidImageUpload, "empty upload")
	}
	if int64(len(input.Data)) > srv.maxImageBytes {
		return nil, domainerrors.ErrImageTooLarge.WithDetails("limit is " + util.FormatBytes(srv.maxImageBytes))
	}

	contentType := detectImageType(input.Data)
	ext, ok := imageExtensions[contentType]
	if !ok {
		return nil, domainerrors.ErrInvalidImageUpload.WithDetails(
			"unsupported content type " + contentType + " (declared " + input.ContentType + ")")
	}

	if _, err := srv.productRepo.FindByID(ctx, productID); err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, domainerrors.ErrProductNotFound
		}

		return nil, errors.Wrap(domainerrors.ErrFetchProductFailed, err.Error())
	}

	key := "products/" + productID.String() + "/" + util.Checksum(input.Data) + ext
	imageURL, err := srv.imageStorage.Put(ctx, key, input.Data, contentType)
	if err != nil {
		srv.log(ctx).Error("Failed to store product image", slog.Any("productID", productID), slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrImageUploadFailed, err.Error())
	}

	var updated *entity.Product
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		productRepo := repoFactory.NewProductRepository()

		product, err := productRepo.FindByID(ctx, productID)
		if err != nil {
			return err
		}

		for _, existing := range product.Images {
			if existing == imageURL {
				updated = product

				return nil
			}
		}

		images := append(append([]string{}, product.Images...), imageURL)
		updated, err = productRepo.Update(ctx, productID, &entity.ProductChanges{Images: images})

		return err
	})
	if errors.Is(err, repository.ErrProductNotFound) {
		return nil, domainerrors.ErrProductNotFound
	}
	if err != nil {
		srv.log(ctx).Error("Failed to attach product image", slog.Any("productID", productID), slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrUpdateProductFailed, err.Error())
	}

	srv.log(ctx).Info("Product image added", slog.Any("productID", productID), slog.String("url", imageURL))

	return usecase.NewProductDTO(updated), nil
}

func parseProductID(id string) (uuid.UUID, bool) {
	productID, err := uuid.Parse(id)
	if err != nil {
		return uuid.Nil, false
	}

	return productID, true
}

// detectImageType sniffs the bytes. The declared type is only reported back
// when the upload is rejected.
func detectImageType(data []byte) string {
	sniffed, _, err := mime.ParseMediaType(http.DetectContentType(data))
	if err != nil {
		return "application/octet-stream"
	}

	return sniffed
}
