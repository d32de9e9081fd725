package storage

import (
	"context"
	"io"

	"github.com/pkg/errors"

	"github.com/monsalvellc/RoofingLeadApp/framework/connection"
)

// CloudStorage stores job media in a single GCS bucket.
type CloudStorage struct {
	storageClientFun connection.StorageFromContextFun
	bucket           string
}

// NewCloudStorage returns a Storage over the given bucket using the
// connection's client.
func NewCloudStorage(fun connection.StorageFromContextFun, bucket string) *CloudStorage {
	return &CloudStorage{
		storageClientFun: fun,
		bucket:           bucket,
	}
}

func (s *CloudStorage) Upload(ctx context.Context, objectPath string, data []byte, contentType string) (string, error) {
	obj := s.storageClientFun(ctx).Bucket(s.bucket).Object(objectPath)

	w := obj.NewWriter(ctx)
	if contentType != "" {
		w.ContentType = contentType
	}

	if _, err := w.Write(data); err != nil {
		w.Close()
		return "", errors.Wrapf(ErrStorageFailure, "write %s: %s", objectPath, err)
	}

	if err := w.Close(); err != nil {
		return "", errors.Wrapf(ErrStorageFailure, "close %s: %s", objectPath, err)
	}

	return publicURL(s.bucket, objectPath), nil
}

func (s *CloudStorage) Download(ctx context.Context, url string) ([]byte, error) {
	objectPath, ok := objectFromURL(s.bucket, url)
	if !ok {
		return nil, errors.Wrapf(ErrStorageFailure, "url %s is not in bucket %s", url, s.bucket)
	}

	r, err := s.storageClientFun(ctx).Bucket(s.bucket).Object(objectPath).NewReader(ctx)
	if err != nil {
		return nil, errors.Wrapf(ErrStorageFailure, "open %s: %s", objectPath, err)
	}
	defer r.Close()

	data, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Wrapf(ErrStorageFailure, "read %s: %s", objectPath, err)
	}

	return data, nil
}

func (s *CloudStorage) Delete(ctx context.Context, url string) error {
	objectPath, ok := objectFromURL(s.bucket, url)
	if !ok {
		return errors.Wrapf(ErrStorageFailure, "url %s is not in bucket %s", url, s.bucket)
	}

	if err := s.storageClientFun(ctx).Bucket(s.bucket).Object(objectPath).Delete(ctx); err != nil {
		return errors.Wrapf(ErrStorageFailure, "delete %s: %s", objectPath, err)
	}

	return nil
}
