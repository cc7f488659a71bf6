package storage

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"
	"github.com/vitrine/marketplace-backend/config"
	"github.com/vitrine/marketplace-backend/pkg/logger"
)

const presignExpiry = 15 * time.Minute

var ErrUnsupportedContentType = errors.New("content type is not an accepted image type")

// AllowedImageTypes maps accepted upload content types to their file extension.
var AllowedImageTypes = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/gif":  ".gif",
	"image/webp": ".webp",
}

type S3Storage struct {
	presign *s3.PresignClient
	bucket  string
	region  string
	baseURL string
}

type PresignedUpload struct {
	UploadURL string    `json:"upload_url"`
	FileURL   string    `json:"file_url"`
	Key       string    `json:"key"`
	ExpiresAt time.Time `json:"expires_at"`
}

func NewS3Storage(ctx context.Context, cfg *config.S3Config) (*S3Storage, error) {
	var awsCfg aws.Config

	// Static credentials win; otherwise use the default chain (env, ~/.aws, IAM role)
	if cfg.AccessKeyID != "" && cfg.SecretAccessKey != "" {
		awsCfg = aws.Config{
			Region: cfg.Region,
			Credentials: credentials.NewStaticCredentialsProvider(
				cfg.AccessKeyID,
				cfg.SecretAccessKey,
				"",
			),
		}
	} else {
		var err error
		awsCfg, err = awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(cfg.Region))
		if err != nil {
			return nil, fmt.Errorf("failed to load AWS config: %w", err)
		}
	}

	logger.Info("S3 storage configured", logger.Fields{
		"bucket": cfg.Bucket,
		"region": cfg.Region,
	})

	return &S3Storage{
		presign: s3.NewPresignClient(s3.NewFromConfig(awsCfg)),
		bucket:  cfg.Bucket,
		region:  cfg.Region,
		baseURL: cfg.BaseURL,
	}, nil
}

// PresignProductImage returns a presigned PUT URL for a new image of productID.
func (s *S3Storage) PresignProductImage(ctx context.Context, productID uint, filename, contentType string) (*PresignedUpload, error) {
	ext, err := imageExtension(filename, contentType)
	if err != nil {
		return nil, err
	}
	key := fmt.Sprintf("products/%d/%s%s", productID, uuid.New().String(), ext)

	req, err := s.presign.PresignPutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		ContentType: aws.String(contentType),
	}, s3.WithPresignExpires(presignExpiry))
	if err != nil {
		return nil, fmt.Errorf("failed to generate presigned URL: %w", err)
	}

	return &PresignedUpload{
		UploadURL: req.URL,
		FileURL:   s.fileURL(key),
		Key:       key,
		ExpiresAt: time.Now().Add(presignExpiry),
	}, nil
}

func (s *S3Storage) fileURL(key string) string {
	if s.baseURL != "" {
		// CloudFront or custom domain
		return fmt.Sprintf("%s/%s", s.baseURL, key)
	}
	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", s.bucket, s.region, key)
}

// imageExtension keeps the client's extension when present, else derives one from contentType.
func imageExtension(filename, contentType string) (string, error) {
	defaultExt, ok := AllowedImageTypes[strings.ToLower(contentType)]
	if !ok {
		return "", ErrUnsupportedContentType
	}
	if ext := strings.ToLower(filepath.Ext(filename)); ext != "" {
		return ext, nil
	}
	return defaultExt, nil
}
