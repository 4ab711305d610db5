package service

import (
	"context"
	"io"
)

// StoredImage is an image read back from storage. Callers close Body.
type StoredImage struct {
	Body         io.ReadCloser
	ContentType  string
	Size         int64
	CacheControl string
}

// ImageStorage keeps uploaded product images and returns their public URL.
type ImageStorage interface {
	Put(ctx context.Context, key string, data []byte, contentType string) (string, error)
	// Open returns ErrImageNotFound when nothing is stored under key.
	Open(ctx context.Context, key string) (*StoredImage, error)
}
