package adapter

import (
	"bytes"
	"context"
	"fmt"
	"net/url"
	"path"
	"strings"
	"time"

	"github.com/MKhiriev/go-sheet-sync/internal/config"
	"github.com/MKhiriev/go-sheet-sync/internal/logger"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

type minioObjectStore struct {
	client        *minio.Client
	bucket        string
	publicBaseURL string
	timeout       time.Duration

	logger *logger.Logger
}

// NewMinioObjectStore connects to the MinIO / S3 endpoint of cfg and makes
// sure the bucket exists.
func NewMinioObjectStore(ctx context.Context, cfg config.ObjectStore, log *logger.Logger) (ObjectStore, error) {
	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
		Region: cfg.Region,
	})
	if err != nil {
		return nil, fmt.Errorf("create object store client: %w", err)
	}

	exists, err := client.BucketExists(ctx, cfg.Bucket)
	if err != nil {
		return nil, fmt.Errorf("check bucket %s: %w", cfg.Bucket, err)
	}
	if !exists {
		if err = client.MakeBucket(ctx, cfg.Bucket, minio.MakeBucketOptions{Region: cfg.Region}); err != nil {
			return nil, fmt.Errorf("create bucket %s: %w", cfg.Bucket, err)
		}
		log.Info().Str("func", "NewMinioObjectStore").Str("bucket", cfg.Bucket).Msg("bucket created")
	}

	return newMinioObjectStore(client, cfg, log), nil
}

func newMinioObjectStore(client *minio.Client, cfg config.ObjectStore, log *logger.Logger) *minioObjectStore {
	return &minioObjectStore{
		client:        client,
		bucket:        cfg.Bucket,
		publicBaseURL: strings.TrimRight(strings.TrimSpace(cfg.PublicBaseURL), "/"),
		timeout:       cfg.TransferTimeout,
		logger:        log,
	}
}

// Transfer implements [ObjectStore]. The object key is folder/name; the
// returned location is the public URL when one is configured, otherwise
// s3://bucket/key.
func (m *minioObjectStore) Transfer(ctx context.Context, data []byte, name, mimeType, folder string) (string, error) {
	key, err := objectKey(folder, name)
	if err != nil {
		return "", err
	}
	if len(data) == 0 {
		return "", fmt.Errorf("%w: %s", ErrEmptyFile, key)
	}
	if mimeType == "" {
		mimeType = DetectMimeType(name, data)
	}

	if m.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, m.timeout)
		defer cancel()
	}

	info, err := m.client.PutObject(ctx, m.bucket, key, bytes.NewReader(data), int64(len(data)),
		minio.PutObjectOptions{ContentType: mimeType})
	if err != nil {
		return "", fmt.Errorf("%w: put %s: %w", ErrTransferFailed, key, err)
	}

	m.logger.Debug().
		Str("func", "minioObjectStore.Transfer").
		Str("key", info.Key).
		Int64("size", info.Size).
		Msg("object stored")

	return m.location(key), nil
}

func (m *minioObjectStore) location(key string) string {
	if m.publicBaseURL == "" {
		return "s3://" + m.bucket + "/" + key
	}

	segments := strings.Split(key, "/")
	for i, s := range segments {
		segments[i] = url.PathEscape(s)
	}
	return m.publicBaseURL + "/" + strings.Join(segments, "/")
}

// objectKey joins folder and the base name of name, rejecting names that
// would escape the folder or are empty.
func objectKey(folder, name string) (string, error) {
	base := path.Base(strings.ReplaceAll(strings.TrimSpace(name), "\\", "/"))
	if base == "" || base == "." || base == "/" || base == ".." {
		return "", fmt.Errorf("%w: %q", ErrInvalidObjectName, name)
	}

	folder = strings.Trim(path.Clean("/"+strings.TrimSpace(folder)), "/")
	if folder == "" {
		return base, nil
	}
	return folder + "/" + base, nil
}
