package storage

import (
	"context"
	"fmt"
	"io"
	"log"

	"noteshare/config"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// S3Store writes uploads to an S3-compatible bucket and returns the public
// object URL. Used when notes should outlive the server's local disk.
type S3Store struct {
	client *minio.Client
	bucket string
	scheme string
}

func NewS3Store(cfg config.StorageConfig) (*S3Store, error) {
	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("creating s3 client: %w", err)
	}

	scheme := "https"
	if !cfg.UseSSL {
		scheme = "http"
	}
	return &S3Store{client: client, bucket: cfg.Bucket, scheme: scheme}, nil
}

func (s *S3Store) Save(ctx context.Context, name string, r io.Reader, size int64, contentType string) (string, error) {
	if contentType == "" {
		contentType = DefaultContentType
	}
	info, err := s.client.PutObject(ctx, s.bucket, name, r, size, minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return "", fmt.Errorf("putting object %s: %w", name, err)
	}
	log.Printf("S3Store: stored %s (%d bytes)", info.Key, info.Size)

	return fmt.Sprintf("%s://%s/%s/%s", s.scheme, s.client.EndpointURL().Host, s.bucket, name), nil
}
