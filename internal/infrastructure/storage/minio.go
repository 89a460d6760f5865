package storage

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"github.com/johnquangdev/meeting-analyzer/pkg/config"
)

const (
	analysisPrefix = "analyses/"
	uploadRetries  = 3
)

// MinIOArchive stores a JSON copy of every analysis in an S3-compatible bucket
type MinIOArchive struct {
	client *minio.Client
	bucket string
}

// NewMinIOArchive creates the client and makes sure the bucket exists
func NewMinIOArchive(ctx context.Context, cfg *config.ArchiveConfig) (*MinIOArchive, error) {
	minioClient, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKeyID, cfg.SecretAccessKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create MinIO client: %w", err)
	}

	archive := &MinIOArchive{
		client: minioClient,
		bucket: cfg.BucketName,
	}

	if err := archive.ensureBucket(ctx); err != nil {
		return nil, fmt.Errorf("failed to initialize bucket: %w", err)
	}

	return archive, nil
}

func (m *MinIOArchive) ensureBucket(ctx context.Context) error {
	exists, err := m.client.BucketExists(ctx, m.bucket)
	if err != nil {
		return fmt.Errorf("failed to check bucket existence: %w", err)
	}

	if !exists {
		if err := m.client.MakeBucket(ctx, m.bucket, minio.MakeBucketOptions{}); err != nil {
			return fmt.Errorf("failed to create bucket: %w", err)
		}
	}
	return nil
}

// ObjectName returns the object key for an analysis
func ObjectName(id uuid.UUID) string {
	return analysisPrefix + id.String() + ".json"
}

// Save uploads the analysis document, retrying transient failures
func (m *MinIOArchive) Save(ctx context.Context, id uuid.UUID, payload []byte) error {
	upload := func() error {
		_, err := m.client.PutObject(ctx, m.bucket, ObjectName(id), bytes.NewReader(payload), int64(len(payload)), minio.PutObjectOptions{
			ContentType: "application/json",
		})
		return err
	}

	policy := backoff.WithContext(
		backoff.WithMaxRetries(backoff.NewConstantBackOff(200*time.Millisecond), uploadRetries),
		ctx,
	)
	if err := backoff.Retry(upload, policy); err != nil {
		return fmt.Errorf("failed to upload analysis: %w", err)
	}
	return nil
}

// Remove deletes the archived copy. Removing a missing object is not an error.
func (m *MinIOArchive) Remove(ctx context.Context, id uuid.UUID) error {
	if err := m.client.RemoveObject(ctx, m.bucket, ObjectName(id), minio.RemoveObjectOptions{}); err != nil {
		return fmt.Errorf("failed to remove analysis: %w", err)
	}
	return nil
}
