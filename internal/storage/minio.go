package storage

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// MinIOMirror keeps a best-effort object-store copy of document content,
// keyed by document ID. It backs the optional content mirror wired into the
// documents service; Mongo remains the source of truth.
type MinIOMirror struct {
	client *minio.Client
	bucket string
}

// NewMinIOMirror creates a MinIO client and ensures the bucket exists.
func NewMinIOMirror(cfg *MinIOConfig) (*MinIOMirror, error) {
	if cfg == nil || cfg.Endpoint == "" {
		return nil, fmt.Errorf("minio config missing")
	}
	mc, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("minio new: %w", err)
	}
	s := &MinIOMirror{client: mc, bucket: cfg.Bucket}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := mc.MakeBucket(ctx, s.bucket, minio.MakeBucketOptions{}); err != nil {
		// tolerate pre-existing bucket
		exist, xerr := mc.BucketExists(ctx, s.bucket)
		if xerr != nil || !exist {
			return nil, fmt.Errorf("minio bucket ensure: %w", err)
		}
	}
	return s, nil
}

// Put stores the current document content under the document ID.
func (s *MinIOMirror) Put(ctx context.Context, id, name, content string) error {
	_, err := s.client.PutObject(ctx, s.bucket, id, strings.NewReader(content), int64(len(content)), minio.PutObjectOptions{
		ContentType:  "text/plain; charset=utf-8",
		UserMetadata: map[string]string{"name": name},
	})
	return err
}

// Remove drops the mirrored object for a deleted document.
func (s *MinIOMirror) Remove(ctx context.Context, id string) error {
	return s.client.RemoveObject(ctx, s.bucket, id, minio.RemoveObjectOptions{})
}
