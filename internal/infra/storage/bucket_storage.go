// Package storage keeps uploaded product images in a gocloud.dev bucket.
package storage

import (
	"context"
	"log/slog"
	"net/url"
	"strings"

	"peterparts/config"
	domainerrors "peterparts/internal/domain/errors"
	"peterparts/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
	"gocloud.dev/blob"
	// Bucket drivers selectable through storage.bucketUrl.
	_ "gocloud.dev/blob/fileblob"
	_ "gocloud.dev/blob/gcsblob"
	_ "gocloud.dev/blob/memblob"
	_ "gocloud.dev/blob/s3blob"
	"gocloud.dev/gcerrors"
)

const (
	defaultBucketURL = "mem://"
	// ServePath is where the API streams images back when no
	// storage.publicBaseUrl points at a CDN or public bucket.
	ServePath = "/static/images"
)

type bucketStorage struct {
	bucket        *blob.Bucket
	publicBaseURL string
}

// BucketStorageParams holds dependencies for NewImageStorage
type BucketStorageParams struct {
	fx.In

	Lifecycle fx.Lifecycle
	Config    *config.Config
	Logger    *slog.Logger
}

// NewImageStorage opens the configured bucket and closes it on shutdown.
func NewImageStorage(params BucketStorageParams) (service.ImageStorage, error) {
	storageCfg := params.Config.Storage
	if storageCfg == nil {
		storageCfg = &config.StorageConfig{}
	}

	bucketURL := storageCfg.BucketURL
	if bucketURL == "" {
		params.Logger.Warn("storage.bucketUrl is empty, product images are kept in memory")
		bucketURL = defaultBucketURL
	}

	bucket, err := blob.OpenBucket(context.Background(), bucketURL)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open bucket %s", bucketURL)
	}

	params.Lifecycle.Append(fx.Hook{
		OnStop: func(context.Context) error {
			return bucket.Close()
		},
	})

	return NewBucketStorage(bucket, storageCfg.PublicBaseURL), nil
}

// NewBucketStorage wraps an already opened bucket.
func NewBucketStorage(bucket *blob.Bucket, publicBaseURL string) service.ImageStorage {
	return &bucketStorage{
		bucket:        bucket,
		publicBaseURL: strings.TrimRight(publicBaseURL, "/"),
	}
}

// Put writes data under key and returns the URL clients should use.
func (s *bucketStorage) Put(ctx context.Context, key string, data []byte, contentType string) (string, error) {
	opts := &blob.WriterOptions{
		ContentType:  contentType,
		CacheControl: "public, max-age=31536000, immutable",
	}
	if err := s.bucket.WriteAll(ctx, key, data, opts); err != nil {
		return "", errors.Wrapf(err, "failed to write blob %s", key)
	}

	return s.publicURL(key), nil
}

// Open streams the blob stored under key.
func (s *bucketStorage) Open(ctx context.Context, key string) (*service.StoredImage, error) {
	if !validKey(key) {
		return nil, domainerrors.ErrImageNotFound
	}

	reader, err := s.bucket.NewReader(ctx, key, nil)
	if err != nil {
		if gcerrors.Code(err) == gcerrors.NotFound {
			return nil, domainerrors.ErrImageNotFound
		}

		return nil, errors.Wrapf(err, "failed to open blob %s", key)
	}

	attrs, err := s.bucket.Attributes(ctx, key)
	if err != nil {
		reader.Close()

		return nil, errors.Wrapf(err, "failed to read attributes of blob %s", key)
	}

	return &service.StoredImage{
		Body:         reader,
		ContentType:  reader.ContentType(),
		Size:         reader.Size(),
		CacheControl: attrs.CacheControl,
	}, nil
}

func (s *bucketStorage) publicURL(key string) string {
	escaped := (&url.URL{Path: key}).EscapedPath()
	if s.publicBaseURL == "" {
		return ServePath + "/" + escaped
	}

	return s.publicBaseURL + "/" + escaped
}

func validKey(key string) bool {
	if key == "" || strings.HasPrefix(key, "/") {
		return false
	}
	for _, segment := range strings.Split(key, "/") {
		if segment == "" || segment == "." || segment == ".." {
			return false
		}
	}

	return true
}
