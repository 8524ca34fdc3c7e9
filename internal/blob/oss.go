package blob

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/aliyun/aliyun-oss-go-sdk/oss"
	"github.com/community-content-api/internal/config"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// OSSStore stores blobs in an Aliyun OSS bucket
type OSSStore struct {
	bucket   *oss.Bucket
	endpoint string
	name     string
	log      zerolog.Logger
}

// NewOSSStore creates a blob store backed by Aliyun OSS
func NewOSSStore(cfg *config.BlobConfig, log zerolog.Logger) (*OSSStore, error) {
	client, err := oss.New(cfg.Endpoint, cfg.AccessKeyID, cfg.AccessKeySecret)
	if err != nil {
		return nil, fmt.Errorf("failed to create OSS client: %w", err)
	}

	bucket, err := client.Bucket(cfg.Bucket)
	if err != nil {
		return nil, fmt.Errorf("failed to open OSS bucket %s: %w", cfg.Bucket, err)
	}

	return &OSSStore{
		bucket:   bucket,
		endpoint: cfg.Endpoint,
		name:     cfg.Bucket,
		log:      log.With().Str("component", "blob").Logger(),
	}, nil
}

// Put uploads the image bytes under a generated key and returns the public
// object URL
func (s *OSSStore) Put(ctx context.Context, data []byte, contentType string) (string, error) {
	key := fmt.Sprintf("papers/%s/%s", time.Now().Format("2006/01"), uuid.New().String())

	err := s.bucket.PutObject(key, bytes.NewReader(data), oss.ContentType(contentType))
	if err != nil {
		return "", fmt.Errorf("failed to put object %s: %w", key, err)
	}

	s.log.Debug().Str("key", key).Int("size_bytes", len(data)).Msg("Blob uploaded")

	return fmt.Sprintf("https://%s.%s/%s", s.name, s.endpoint, key), nil
}
