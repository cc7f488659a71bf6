package storage

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vitrine/marketplace-backend/config"
)

func newTestStorage(t *testing.T, baseURL string) *S3Storage {
	s, err := NewS3Storage(context.Background(), &config.S3Config{
		Region:          "sa-east-1",
		Bucket:          "vitrine-images",
		AccessKeyID:     "AKIAEXAMPLE",
		SecretAccessKey: "secret",
		BaseURL:         baseURL,
	})
	require.NoError(t, err)
	return s
}

func TestPresignProductImage(t *testing.T) {
	s := newTestStorage(t, "")

	upload, err := s.PresignProductImage(context.Background(), 42, "foto.PNG", "image/png")
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(upload.Key, "products/42/"))
	assert.True(t, strings.HasSuffix(upload.Key, ".png"))
	assert.Contains(t, upload.UploadURL, "X-Amz-Signature=")
	assert.Contains(t, upload.UploadURL, "vitrine-images")
	assert.Equal(t, "https://vitrine-images.s3.sa-east-1.amazonaws.com/"+upload.Key, upload.FileURL)
	assert.False(t, upload.ExpiresAt.IsZero())
}

func TestPresignProductImage_BaseURL(t *testing.T) {
	s := newTestStorage(t, "https://cdn.example.com")

	upload, err := s.PresignProductImage(context.Background(), 1, "", "image/webp")
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(upload.Key, ".webp"))
	assert.Equal(t, "https://cdn.example.com/"+upload.Key, upload.FileURL)
}

func TestPresignProductImage_RejectsNonImage(t *testing.T) {
	s := newTestStorage(t, "")

	_, err := s.PresignProductImage(context.Background(), 1, "notes.pdf", "application/pdf")
	assert.ErrorIs(t, err, ErrUnsupportedContentType)
}
