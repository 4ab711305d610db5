package api

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"peterparts/config"
	apimiddleware "peterparts/internal/delivery/api/middleware"
	"peterparts/internal/delivery/api/router"
	"peterparts/internal/delivery/api/router/handler"
	deliverycontext "peterparts/internal/delivery/context"
	"peterparts/internal/domain/entity"
	"peterparts/internal/domain/service"
	"peterparts/internal/infra/auth"
	"peterparts/internal/infra/metrics"
	"peterparts/internal/infra/storage"
	mockRepo "peterparts/internal/mocks/repository"
	mockSvc "peterparts/internal/mocks/service"
	mockUsecase "peterparts/internal/mocks/usecase"
	"peterparts/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
	"gocloud.dev/blob/memblob"
)

type serverFixtures struct {
	echo      *echo.Echo
	tokenSvc  *mockSvc.MockTokenService
	authUC    *mockUsecase.MockAuthUsecase
	productUC *mockUsecase.MockProductUsecase
	images    service.ImageStorage
}

func newTestServer(t *testing.T, protectWrites bool) serverFixtures {
	cfg := &config.Config{}
	cfg.HTTP.MaxRequestBodySize = "1MB"
	cfg.HTTP.AllowedOrigins = []string{"https://shop.example.com"}
	cfg.Frontend.URL = "https://shop.example.com"
	cfg.Auth = &config.AuthConfig{ProtectProductWrites: protectWrites}

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	f := serverFixtures{
		tokenSvc:  mockSvc.NewMockTokenService(t),
		authUC:    mockUsecase.NewMockAuthUsecase(t),
		productUC: mockUsecase.NewMockProductUsecase(t),
	}
	bucket := memblob.OpenBucket(nil)
	t.Cleanup(func() { bucket.Close() })
	f.images = storage.NewBucketStorage(bucket, "")
	registry := metrics.NewRegistry()
	f.tokenSvc.EXPECT().TTL().Return(7 * 24 * time.Hour)

	f.echo = newEcho(ServerParams{
		Lc:      fxtest.NewLifecycle(t),
		Cfg:     cfg,
		Logger:  logger,
		Metrics: registry,
		RouterParams: router.RouterParams{
			AuthHandler: handler.NewAuthHandler(handler.AuthHandlerParams{
				AuthUC: f.authUC, CookiePolicy: auth.NewCookiePolicy(cfg, f.tokenSvc), Config: cfg, Logger: logger,
			}),
			ProductHandler: handler.NewProductHandler(handler.ProductHandlerParams{ProductUC: f.productUC, Logger: logger}),
			HealthHandler: handler.NewHealthHandler(handler.HealthHandlerParams{
				HealthChecker: mockRepo.NewMockHealthChecker(t), Logger: logger,
			}),
			ImageHandler:   handler.NewImageHandler(handler.ImageHandlerParams{ImageStorage: f.images, Logger: logger}),
			AuthMiddleware: apimiddleware.NewAuthMiddleware(f.tokenSvc, logger),
			Metrics:        registry,
			Config:         cfg,
		},
	})

	return f
}

func (f serverFixtures) do(method, target, body string, prepare ...func(*http.Request)) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	for _, p := range prepare {
		p(req)
	}
	rec := httptest.NewRecorder()
	f.echo.ServeHTTP(rec, req)

	return rec
}

func bearer(token string) func(*http.Request) {
	return func(r *http.Request) { r.Header.Set(echo.HeaderAuthorization, "Bearer "+token) }
}

func (f serverFixtures) tokenFor(token string, role entity.Role) {
	f.tokenSvc.EXPECT().Verify(token).Return(&service.VerifiedClaims{SessionPayload: service.SessionPayload{
		UserID: uuid.New(), Email: "a@b.com", Role: role,
	}}, true)
}

func TestServer_OTPLoginScenario(t *testing.T) {
	f := newTestServer(t, false)
	f.authUC.EXPECT().SendOTP(mock.Anything, "a@b.com").Return(nil)
	f.authUC.EXPECT().VerifyOTP(mock.Anything, &usecase.VerifyOTPInput{Email: "a@b.com", Code: "123456"}).
		Return(&usecase.SessionOutput{User: &usecase.UserDTO{Email: "a@b.com"}, Token: "jwt"}, nil)

	rec := f.do(http.MethodPost, "/auth/otp/send", `{"email":"a@b.com"}`)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"message":"Verification code sent successfully"}`, rec.Body.String())
	assert.NotEmpty(t, rec.Header().Get(deliverycontext.HeaderXRequestID))

	rec = f.do(http.MethodPost, "/auth/otp/verify", `{"email":"a@b.com","code":"123456"}`)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"email":"a@b.com"`)
	assert.Contains(t, rec.Header().Get("Set-Cookie"), auth.SessionCookieName+"=jwt")
}

func TestServer_MeRequiresSession(t *testing.T) {
	f := newTestServer(t, false)

	rec := f.do(http.MethodGet, "/auth/me", "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "AUTHENTICATION_REQUIRED")
}

func TestServer_ProductWritesOpenByDefault(t *testing.T) {
	f := newTestServer(t, false)
	f.productUC.EXPECT().Delete(mock.Anything, "p1").Return(nil)

	rec := f.do(http.MethodDelete, "/products/p1", "")
	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestServer_ProtectedProductWrites(t *testing.T) {
	f := newTestServer(t, true)
	f.tokenFor("customer", entity.RoleCustomer)
	f.tokenFor("admin", entity.RoleAdmin)
	f.productUC.EXPECT().Delete(mock.Anything, "p1").Return(nil)
	f.productUC.EXPECT().List(mock.Anything).Return([]*usecase.ProductDTO{}, nil)

	assert.Equal(t, http.StatusUnauthorized, f.do(http.MethodDelete, "/products/p1", "").Code)
	assert.Equal(t, http.StatusForbidden, f.do(http.MethodDelete, "/products/p1", "", bearer("customer")).Code)
	assert.Equal(t, http.StatusNoContent, f.do(http.MethodDelete, "/products/p1", "", bearer("admin")).Code)

	assert.Equal(t, http.StatusOK, f.do(http.MethodGet, "/products", "").Code, "reads stay public")
}

func TestServer_MetricsAndNotFound(t *testing.T) {
	f := newTestServer(t, false)

	rec := f.do(http.MethodGet, "/nope", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), `"code":"HTTP_ERROR"`)

	rec = f.do(http.MethodGet, "/metrics", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "peterparts_http_requests_total")
}

func TestServer_CORSAllowsCredentials(t *testing.T) {
	f := newTestServer(t, false)

	rec := f.do(http.MethodOptions, "/auth/me", "", func(r *http.Request) {
		r.Header.Set(echo.HeaderOrigin, "https://shop.example.com")
		r.Header.Set(echo.HeaderAccessControlRequestMethod, http.MethodGet)
	})

	assert.Equal(t, "https://shop.example.com", rec.Header().Get(echo.HeaderAccessControlAllowOrigin))
	assert.Equal(t, "true", rec.Header().Get(echo.HeaderAccessControlAllowCredentials))
}

func TestServer_ServesStoredImages(t *testing.T) {
	f := newTestServer(t, false)
	id := uuid.NewString()

	url, err := f.images.Put(context.Background(), "products/"+id+"/abc.png", []byte("png-bytes"), "image/png")
	require.NoError(t, err)
	assert.Equal(t, "/static/images/products/"+id+"/abc.png", url)

	rec := f.do(http.MethodGet, url, "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/png", rec.Header().Get(echo.HeaderContentType))
	assert.Equal(t, "png-bytes", rec.Body.String())

	rec = f.do(http.MethodGet, "/static/images/products/"+id+"/missing.png", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "IMAGE_NOT_FOUND")
}
