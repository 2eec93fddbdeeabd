package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"mime"
	"path/filepath"
	"strings"
	"time"

	"reel/internal/config"
	"reel/internal/logging"
	"reel/internal/metrics"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	gobreaker "github.com/sony/gobreaker/v2"
)

var (
	ErrStorageDisabled    = errors.New("object storage is disabled")
	ErrStorageUnavailable = errors.New("object storage is unavailable")
)

type Storage interface {
	UploadMedia(ctx context.Context, projectID int64, fileName, contentType string, file io.Reader, size int64) (objectKey string, url string, err error)
	DeleteObject(ctx context.Context, objectKey string) error
	Ping(ctx context.Context) error
}

// objectAPI is the part of *minio.Client the media store calls.
type objectAPI interface {
	PutObject(ctx context.Context, bucketName, objectName string, reader io.Reader, objectSize int64, opts minio.PutObjectOptions) (minio.UploadInfo, error)
	RemoveObject(ctx context.Context, bucketName, objectName string, opts minio.RemoveObjectOptions) error
	BucketExists(ctx context.Context, bucketName string) (bool, error)
	MakeBucket(ctx context.Context, bucketName string, opts minio.MakeBucketOptions) error
}

type MinIOClient struct {
	client  objectAPI
	bucket  string
	baseURL string
	cb      *gobreaker.CircuitBreaker[interface{}]
}

// NewStorage returns the MinIO store, or a store that refuses every call when MinIO is disabled.
func NewStorage(ctx context.Context, cfg config.MinIO) (Storage, error) {
	if !cfg.Enabled {
		return disabledStorage{}, nil
	}

	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
		Region: cfg.Region,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create minio client: %w", err)
	}

	m := newMinIOClient(client, cfg)
	if err := m.ensureBucket(ctx, cfg.Region); err != nil {
		return nil, err
	}

	return m, nil
}

func newMinIOClient(client objectAPI, cfg config.MinIO) *MinIOClient {
	baseURL := strings.TrimSuffix(cfg.PublicURL, "/")
	if baseURL == "" {
		scheme := "http"
		if cfg.UseSSL {
			scheme = "https"
		}
		baseURL = scheme + "://" + cfg.Endpoint
	}

	return &MinIOClient{
		client:  client,
		bucket:  cfg.BucketName,
		baseURL: baseURL,
		cb:      newBreaker("minio", cfg.BreakerMaxFailures, cfg.BreakerTimeout),
	}
}

func newBreaker(name string, maxFailures uint32, timeout time.Duration) *gobreaker.CircuitBreaker[interface{}] {
	if maxFailures == 0 {
		maxFailures = 5
	}
	if timeout <= 0 {
		timeout = 30 * time.Second
	}

	metrics.CircuitBreakerState.WithLabelValues(name).Set(0)

	return gobreaker.NewCircuitBreaker[interface{}](gobreaker.Settings{
		Name:        name,
		MaxRequests: 1,
		Timeout:     timeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= maxFailures
		},
		IsExcluded: func(err error) bool {
			return errors.Is(err, context.Canceled)
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logging.Warn().Str("breaker", name).Str("from", from.String()).Str("to", to.String()).
				Msg("storage circuit breaker state changed")

			metrics.CircuitBreakerState.WithLabelValues(name).Set(stateToFloat(to))
			metrics.CircuitBreakerTransitions.WithLabelValues(name, from.String(), to.String()).Inc()
		},
	})
}

func stateToFloat(state gobreaker.State) float64 {
	switch state {
	case gobreaker.StateHalfOpen:
		return 1
	case gobreaker.StateOpen:
		return 2
	default:
		return 0
	}
}

func (m *MinIOClient) execute(operation string, fn func() (interface{}, error)) (interface{}, error) {
	result, err := m.cb.Execute(fn)
	if err != nil {
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			metrics.RecordStorageOperation(operation, "rejected")
			return nil, fmt.Errorf("%w: %v", ErrStorageUnavailable, err)
		}
		metrics.RecordStorageOperation(operation, "failure")
		return nil, err
	}

	metrics.RecordStorageOperation(operation, "success")
	return result, nil
}

func (m *MinIOClient) ensureBucket(ctx context.Context, region string) error {
	exists, err := m.client.BucketExists(ctx, m.bucket)
	if err != nil {
		return fmt.Errorf("failed to check bucket %s: %w", m.bucket, err)
	}
	if exists {
		return nil
	}

	if err := m.client.MakeBucket(ctx, m.bucket, minio.MakeBucketOptions{Region: region}); err != nil {
		return fmt.Errorf("failed to create bucket %s: %w", m.bucket, err)
	}

	logging.Info().Str("bucket", m.bucket).Msg("created media bucket")
	return nil
}

func (m *MinIOClient) UploadMedia(ctx context.Context, projectID int64, fileName, contentType string, file io.Reader, size int64) (string, string, error) {
	fileExt := strings.ToLower(filepath.Ext(fileName))

	if contentType == "" {
		contentType = mime.TypeByExtension(fileExt)
	}
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	now := time.Now().UTC()
	objectKey := fmt.Sprintf("projects/%d/%d/%02d/%s%s",
		projectID,
		now.Year(),
		now.Month(),
		uuid.New().String(),
		fileExt)

	_, err := m.execute("upload", func() (interface{}, error) {
		return m.client.PutObject(ctx, m.bucket, objectKey, file, size, minio.PutObjectOptions{
			ContentType: contentType,
			UserMetadata: map[string]string{
				"original-filename": fileName,
				"project-id":        fmt.Sprint(projectID),
				"uploaded-at":       now.Format(time.RFC3339),
			},
		})
	})
	if err != nil {
		return "", "", fmt.Errorf("failed to upload %s: %w", fileName, err)
	}

	return objectKey, m.ObjectURL(objectKey), nil
}

func (m *MinIOClient) DeleteObject(ctx context.Context, objectKey string) error {
	_, err := m.execute("delete", func() (interface{}, error) {
		return nil, m.client.RemoveObject(ctx, m.bucket, objectKey, minio.RemoveObjectOptions{GovernanceBypass: true})
	})
	if err != nil {
		return fmt.Errorf("failed to delete object %s: %w", objectKey, err)
	}
	return nil
}

func (m *MinIOClient) Ping(ctx context.Context) error {
	_, err := m.execute("ping", func() (interface{}, error) {
		exists, err := m.client.BucketExists(ctx, m.bucket)
		if err != nil {
			return nil, err
		}
		if !exists {
			return nil, fmt.Errorf("bucket %s does not exist", m.bucket)
		}
		return nil, nil
	})
	return err
}

// ObjectURL is the public URL clients use to fetch objectKey.
func (m *MinIOClient) ObjectURL(objectKey string) string {
	return fmt.Sprintf("%s/%s/%s", m.baseURL, m.bucket, objectKey)
}

type disabledStorage struct{}

func (disabledStorage) UploadMedia(context.Context, int64, string, string, io.Reader, int64) (string, string, error) {
	return "", "", ErrStorageDisabled
}

func (disabledStorage) DeleteObject(context.Context, string) error {
	return ErrStorageDisabled
}

func (disabledStorage) Ping(context.Context) error {
	return ErrStorageDisabled
}
