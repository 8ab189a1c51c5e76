package store

import (
	"context"
	"errors"
	"io"
	"time"

	"cloud.google.com/go/storage"
)

const gcsOpTimeout = 10 * time.Second

// GCSStore keeps one object per key in a Cloud Storage bucket. Object
// writes are atomic on the GCS side, so readers never observe a partial
// value.
type GCSStore struct {
	client *storage.Client
	bucket *storage.BucketHandle
	prefix string
	ctx    context.Context
}

func NewGCSStore(ctx context.Context, bucket, prefix string) (*GCSStore, error) {
	client, err := storage.NewClient(ctx)
	if err != nil {
		return nil, err
	}
	return &GCSStore{
		client: client,
		bucket: client.Bucket(bucket),
		prefix: prefix,
		ctx:    ctx,
	}, nil
}

func (s *GCSStore) Put(key string, value []byte) error {
	ctx, cancel := context.WithTimeout(s.ctx, gcsOpTimeout)
	defer cancel()

	w := s.object(key).NewWriter(ctx)
	if _, err := w.Write(value); err != nil {
		_ = w.Close()
		return err
	}
	return w.Close()
}

func (s *GCSStore) Get(key string) ([]byte, error) {
	ctx, cancel := context.WithTimeout(s.ctx, gcsOpTimeout)
	defer cancel()

	rc, err := s.object(key).NewReader(ctx)
	if err != nil {
		if errors.Is(err, storage.ErrObjectNotExist) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	defer rc.Close()
	return io.ReadAll(rc)
}

func (s *GCSStore) Del(key string) error {
	ctx, cancel := context.WithTimeout(s.ctx, gcsOpTimeout)
	defer cancel()

	if err := s.object(key).Delete(ctx); err != nil && !errors.Is(err, storage.ErrObjectNotExist) {
		return err
	}
	return nil
}

func (s *GCSStore) Close() error {
	return s.client.Close()
}

func (s *GCSStore) object(key string) *storage.ObjectHandle {
	return s.bucket.Object(s.prefix + key)
}
