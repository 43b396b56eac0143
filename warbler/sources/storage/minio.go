package storage

import (
	"context"
	"fmt"
	"io"
	"path/filepath"

	"warbler/warbler/config"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// MinIOClient stores user-uploaded profile artwork. Objects are keyed
// by user id so a re-upload replaces the previous image.
type MinIOClient struct {
	client   *minio.Client
	bucket   string
	endpoint string
}

func NewMinIOClient(cfg config.Config) (*MinIOClient, error) {
	client, err := minio.New(
		cfg.MinIOEndpoint,
		&minio.Options{
			Creds:  credentials.NewStaticV4(cfg.MinIOAccessKey, cfg.MinIOSecretKey, ""),
			Secure: false,
		},
	)
	if err != nil {
		return nil, err
	}
	exists, err := client.BucketExists(context.Background(), cfg.MinIOBucket)
	if err != nil {
		return nil, err
	}
	if !exists {
		if err := client.MakeBucket(context.Background(), cfg.MinIOBucket, minio.MakeBucketOptions{}); err != nil {
			return nil, err
		}
	}
	return &MinIOClient{client: client, bucket: cfg.MinIOBucket, endpoint: cfg.MinIOEndpoint}, nil
}

// UploadImage stores an avatar or header image for the user and returns
// the public URL to write into the profile. kind is "avatar" or "header".
func (m *MinIOClient) UploadImage(ctx context.Context, userID uint, kind string, body io.Reader, size int64, contentType string) (string, error) {
	ext := ".png"
	switch contentType {
	case "image/jpeg":
		ext = ".jpg"
	case "image/gif":
		ext = ".gif"
	}
	key := filepath.Join("profiles", fmt.Sprintf("%d-%s%s", userID, kind, ext))

	_, err := m.client.PutObject(ctx, m.bucket, key, body, size, minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("http://%s/%s/%s", m.endpoint, m.bucket, key), nil
}
