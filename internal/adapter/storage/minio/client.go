// internal/adapter/storage/minio/client.go
package minio

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/feature/s3/manager"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"

	appconfig "github.com/GoArmGo/Wallsplash/internal/config"
)

// Client представляет собой клиент для зеркалирования файлов в MinIO (S3-совместимое хранилище).
type Client struct {
	s3Client   *s3.Client
	uploader   *manager.Uploader
	bucketName string
	baseURL    string
	logger     *slog.Logger
}

// Settings - параметры подключения к MinIO.
type Settings struct {
	Endpoint        string
	AccessKeyID     string
	SecretAccessKey string
	UseSSL          bool
	BucketName      string
	Region          string
}

// SettingsFromConfig собирает Settings из конфигурации приложения.
func SettingsFromConfig(cfg *appconfig.Config) Settings {
	return Settings{
		Endpoint:        cfg.MinioEndpoint,
		AccessKeyID:     cfg.MinioAccessKeyID,
		SecretAccessKey: cfg.MinioSecretAccessKey,
		UseSSL:          cfg.MinioUseSSL,
		BucketName:      cfg.MinioBucketName,
		Region:          cfg.MinioRegion,
	}
}

// Validate проверяет, что заданы все обязательные параметры.
func (s Settings) Validate() error {
	var missing []string
	if s.Endpoint == "" {
		missing = append(missing, "MINIO_ENDPOINT")
	}
	if s.AccessKeyID == "" {
		missing = append(missing, "MINIO_ACCESS_KEY_ID")
	}
	if s.SecretAccessKey == "" {
		missing = append(missing, "MINIO_SECRET_ACCESS_KEY")
	}
	if s.BucketName == "" {
		missing = append(missing, "MINIO_BUCKET_NAME")
	}
	if s.Region == "" {
		missing = append(missing, "MINIO_REGION")
	}
	if len(missing) > 0 {
		return fmt.Errorf("MinIO credentials must be set in environment variables: %s", strings.Join(missing, ", "))
	}
	return nil
}

// EndpointURL возвращает полный URL MinIO со схемой.
func (s Settings) EndpointURL() string {
	if s.UseSSL {
		return fmt.Sprintf("https://%s", s.Endpoint)
	}
	return fmt.Sprintf("http://%s", s.Endpoint)
}

// NewMinioClient создает клиент MinIO и при необходимости создает бакет.
func NewMinioClient(ctx context.Context, settings Settings, logger *slog.Logger) (*Client, error) {
	if err := settings.Validate(); err != nil {
		return nil, err
	}

	endpointURL := settings.EndpointURL()

	cfgAws, err := awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithRegion(settings.Region),
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(settings.AccessKeyID, settings.SecretAccessKey, "")),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config for MinIO: %w", err)
	}

	s3Client := s3.NewFromConfig(cfgAws, func(o *s3.Options) {
		o.BaseEndpoint = aws.String(endpointURL)
		o.UsePathStyle = true
	})

	uploader := manager.NewUploader(s3Client)

	// Проверяем существование бакета
	headCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	_, err = s3Client.HeadBucket(headCtx, &s3.HeadBucketInput{
		Bucket: aws.String(settings.BucketName),
	})

	if err != nil {
		logger.Info("bucket not found, creating", "bucket", settings.BucketName)

		_, createErr := s3Client.CreateBucket(ctx, &s3.CreateBucketInput{
			Bucket: aws.String(settings.BucketName),
			CreateBucketConfiguration: &types.CreateBucketConfiguration{
				LocationConstraint: types.BucketLocationConstraint(settings.Region),
			},
		})
		if createErr != nil {
			return nil, fmt.Errorf("failed to create bucket '%s': %w", settings.BucketName, createErr)
		}

		// Ждем пока бакет станет доступен
		waiter := s3.NewBucketExistsWaiter(s3Client)
		if err := waiter.Wait(ctx, &s3.HeadBucketInput{
			Bucket: aws.String(settings.BucketName),
		}, 30*time.Second); err != nil {
			return nil, fmt.Errorf("failed waiting for bucket '%s' to be created: %w", settings.BucketName, err)
		}

		logger.Info("bucket created", "bucket", settings.BucketName)
	}

	return &Client{
		s3Client:   s3Client,
		uploader:   uploader,
		bucketName: settings.BucketName,
		baseURL:    endpointURL,
		logger:     logger,
	}, nil
}

// ObjectURL возвращает URL объекта в бакете (path-style).
func ObjectURL(baseURL, bucket, key string) string {
	return fmt.Sprintf("%s/%s/%s", strings.TrimRight(baseURL, "/"), bucket, strings.TrimLeft(key, "/"))
}

// UploadFile загружает файл в бакет и возвращает его URL.
func (c *Client) UploadFile(ctx context.Context, objectKey string, fileContent io.Reader, contentType string) (string, error) {
	start := time.Now()

	_, err := c.uploader.Upload(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(c.bucketName),
		Key:         aws.String(objectKey),
		Body:        fileContent,
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload file %s to bucket %s: %w", objectKey, c.bucketName, err)
	}

	location := ObjectURL(c.baseURL, c.bucketName, objectKey)
	c.logger.Info("file mirrored to MinIO",
		"key", objectKey,
		"location", location,
		"duration_ms", time.Since(start).Milliseconds(),
	)
	return location, nil
}
