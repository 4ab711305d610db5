package handler

import (
	"log/slog"
	"net/http"
	"net/url"
	"strconv"

	"peterparts/internal/delivery/api/response"
	deliverycontext "peterparts/internal/delivery/context"
	domainerrors "peterparts/internal/domain/errors"
	"peterparts/internal/domain/service"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// ImageHandlerParams holds dependencies for ImageHandler, injected by Fx.
type ImageHandlerParams struct {
	fx.In

	ImageStorage service.ImageStorage
	Logger       *slog.Logger
}

// ImageHandler streams stored product images back to clients.
type ImageHandler struct {
	storage service.ImageStorage
	logger  *slog.Logger
}

// NewImageHandler is the constructor for ImageHandler
func NewImageHandler(params ImageHandlerParams) *ImageHandler {
	return &ImageHandler{
		storage: params.ImageStorage,
		logger:  params.Logger,
	}
}

// Serve handles GET /static/images/* where the wildcard is the blob key.
func (h *ImageHandler) Serve(c echo.Context) error {
	key := c.Param("*")
	if unescaped, err := url.PathUnescape(key); err == nil {
		key = unescaped
	}

	image, err := h.storage.Open(c.Request().Context(), key)
	if err != nil {
		if !errors.Is(err, domainerrors.ErrImageNotFound) {
			deliverycontext.Logger(c.Request().Context(), h.logger).Error("Failed to open image",
				slog.String("key", key),
				slog.Any("error", err),
			)

			return response.HandleAppError(c, domainerrors.ErrImageReadFailed)
		}

		return response.HandleAppError(c, err)
	}
	defer image.Body.Close()

	header := c.Response().Header()
	if image.CacheControl != "" {
		header.Set("Cache-Control", image.CacheControl)
	}
	if image.Size >= 0 {
		header.Set(echo.HeaderContentLength, strconv.FormatInt(image.Size, 10))
	}

	contentType := image.ContentType
	if contentType == "" {
		contentType = echo.MIMEOctetStream
	}

	return c.Stream(http.StatusOK, contentType, image.Body)
}
