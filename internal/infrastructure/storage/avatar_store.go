package storage

import (
	"context"
	"fmt"
	"io"

	"cloud.google.com/go/storage"

	"github.com/oksasatya/go-ddd-resource-api/internal/application"
	"github.com/oksasatya/go-ddd-resource-api/pkg/helpers"
)

const avatarCacheControl = "public, max-age=86400"

// GCSAvatarStore uploads avatars into a single bucket.
type GCSAvatarStore struct {
	client *storage.Client
	bucket string
}

func NewGCSAvatarStore(client *storage.Client, bucket string) *GCSAvatarStore {
	return &GCSAvatarStore{client: client, bucket: bucket}
}

var _ application.AvatarStore = (*GCSAvatarStore)(nil)

// Upload streams r to objectPath and returns its public URL.
func (s *GCSAvatarStore) Upload(ctx context.Context, objectPath, contentType string, r io.Reader) (string, error) {
	if s.client == nil || s.bucket == "" {
		return "", application.ErrStorageUnavailable
	}
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	w := s.client.Bucket(s.bucket).Object(objectPath).NewWriter(ctx)
	w.ContentType = contentType
	w.CacheControl = avatarCacheControl
	// avatars are small; a single request avoids resumable-upload overhead
	w.ChunkSize = 0
	if _, err := io.Copy(w, r); err != nil {
		cancel()
		_ = w.Close()
		return "", fmt.Errorf("upload %s: %w", objectPath, err)
	}
	if err := w.Close(); err != nil {
		return "", fmt.Errorf("finalize %s: %w", objectPath, err)
	}
	return helpers.ObjectURL(s.bucket, objectPath), nil
}
