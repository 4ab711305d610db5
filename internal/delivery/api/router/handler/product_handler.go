package handler

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"

	"peterparts/internal/delivery/api/response"
	"peterparts/internal/domain/entity"
	domainerrors "peterparts/internal/domain/errors"
	"peterparts/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

const imageFormField = "image"

// ProductHandlerParams holds dependencies for ProductHandler, injected by Fx.
type ProductHandlerParams struct {
	fx.In

	ProductUC usecase.ProductUsecase
	Logger    *slog.Logger
}

// ProductHandler serves the catalog endpoints.
type ProductHandler struct {
	productUC usecase.ProductUsecase
	logger    *slog.Logger
}

// NewProductHandler is the constructor for ProductHandler
func NewProductHandler(params ProductHandlerParams) *ProductHandler {
	return &ProductHandler{
		productUC: params.ProductUC,
		logger:    params.Logger,
	}
}

// CreateProductRequest represents the request body for creating a product.
// Text fields must be present strings; empty strings are allowed.
type CreateProductRequest struct {
	GearID      *string         `json:"gearId"`
	Title       *string         `json:"title"`
	Description *string         `json:"description"`
	Brand       *string         `json:"brand" validate:"required,brand"`
	Category    *string         `json:"category"`
	Price       json.RawMessage `json:"price"`
	Images      json.RawMessage `json:"images"`
	Stock       json.RawMessage `json:"stock"`
}

// UpdateProductRequest represents a partial update. Absent fields are left alone.
type UpdateProductRequest struct {
	GearID      *string         `json:"gearId"`
	Title       *string         `json:"title"`
	Description *string         `json:"description"`
	Brand       json.RawMessage `json:"brand"`
	Category    *string         `json:"category"`
	Price       json.RawMessage `json:"price"`
	Images      json.RawMessage `json:"images"`
	Stock       json.RawMessage `json:"stock"`
}

// List handles GET /products
func (h *ProductHandler) List(c echo.Context) error {
	products, err := h.productUC.List(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.JSON(c, http.StatusOK, products)
}

// Get handles GET /products/:id
func (h *ProductHandler) Get(c echo.Context) error {
	product, err := h.productUC.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.JSON(c, http.StatusOK, product)
}

// Create handles POST /products
func (h *ProductHandler) Create(c echo.Context) error {
	var req CreateProductRequest
	if err := c.Bind(&req); err != nil {
		return response.HandleAppError(c, domainerrors.ErrInvalidProductPayload)
	}

	input, err := req.toInput(c.Validate)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	product, err := h.productUC.Create(c.Request().Context(), input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.JSON(c, http.StatusCreated, product)
}

// Update handles PUT /products/:id
func (h *ProductHandler) Update(c echo.Context) error {
	var req UpdateProductRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid request body")
	}

	changes, err := req.toChanges()
	if err != nil {
		return response.HandleAppError(c, err)
	}

	product, err := h.productUC.Update(c.Request().Context(), c.Param("id"), changes)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.JSON(c, http.StatusOK, product)
}

// Delete handles DELETE /products/:id
func (h *ProductHandler) Delete(c echo.Context) error {
	if err := h.productUC.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return response.HandleAppError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// UploadImage handles POST /products/:id/images with a multipart "image" field.
func (h *ProductHandler) UploadImage(c echo.Context) error {
	fileHeader, err := c.FormFile(imageFormField)
	if err != nil {
		return response.HandleAppError(c, domainerrors.ErrInvalidImageUpload.WithDetails("multipart field \"image\" is required"))
	}

	file, err := fileHeader.Open()
	if err != nil {
		return response.HandleAppError(c, domainerrors.ErrInvalidImageUpload)
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return response.HandleAppError(c, domainerrors.ErrInvalidImageUpload)
	}

	product, err := h.productUC.AddImage(c.Request().Context(), c.Param("id"), &usecase.ProductImageInput{
		Data:        data,
		ContentType: fileHeader.Header.Get(echo.HeaderContentType),
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.JSON(c, http.StatusCreated, product)
}

func (req *CreateProductRequest) toInput(validate func(any) error) (*usecase.CreateProductInput, error) {
	for _, field := range []struct {
		name  string
		value *string
	}{
		{"gearId", req.GearID},
		{"title", req.Title},
		{"description", req.Description},
		{"category", req.Category},
	} {
		if field.value == nil {
			return nil, domainerrors.ErrInvalidProductPayload.WithDetails(field.name + ": string")
		}
	}

	if err := validate(req); err != nil {
		return nil, domainerrors.ErrInvalidProductPayload.WithDetails(err.Error())
	}

	price, ok := parsePrice(req.Price)
	if !ok {
		return nil, domainerrors.ErrInvalidProductPayload.WithDetails("price: number")
	}

	images, ok := parseImages(req.Images)
	if !ok {
		return nil, domainerrors.ErrInvalidProductPayload.WithDetails("images: array of strings")
	}

	var stock *int
	if present(req.Stock) {
		value, ok := parseStock(req.Stock)
		if !ok {
			return nil, domainerrors.ErrInvalidProductPayload.WithDetails("stock: number")
		}
		stock = &value
	}

	return &usecase.CreateProductInput{
		GearID:      *req.GearID,
		Title:       *req.Title,
		Description: *req.Description,
		Brand:       entity.Brand(*req.Brand),
		Category:    *req.Category,
		Price:       price,
		Images:      images,
		Stock:       stock,
	}, nil
}

func (req *UpdateProductRequest) toChanges() (*entity.ProductChanges, error) {
	changes := &entity.ProductChanges{
		GearID:      req.GearID,
		Title:       req.Title,
		Description: req.Description,
		Category:    req.Category,
	}

	if present(req.Brand) {
		brand, ok := parseBrand(req.Brand)
		if !ok {
			return nil, domainerrors.ErrInvalidBrand
		}
		changes.Brand = &brand
	}

	if present(req.Price) {
		price, ok := parsePrice(req.Price)
		if !ok {
			return nil, domainerrors.ErrInvalidPrice
		}
		changes.Price = &price
	}

	if present(req.Images) {
		images, ok := parseImages(req.Images)
		if !ok {
			return nil, domainerrors.ErrInvalidImages
		}
		changes.Images = images
	}

	if present(req.Stock) {
		stock, ok := parseStock(req.Stock)
		if !ok || stock < 0 {
			return nil, domainerrors.ErrInvalidStock
		}
		changes.Stock = &stock
	}

	if changes.IsEmpty() {
		return nil, domainerrors.ErrNoFieldsToUpdate
	}

	return changes, nil
}
