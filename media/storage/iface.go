package storage

import "context"

//go:generate mockery --name Storage --output ./mocks
type Storage interface {
	Upload(ctx context.Context, objectPath string, data []byte, contentType string) (string, error)
	Download(ctx context.Context, url string) ([]byte, error)
	Delete(ctx context.Context, url string) error
}
