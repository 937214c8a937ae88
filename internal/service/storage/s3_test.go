package storage

import (
	"context"
	"errors"
	"io"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kingrain94/usage-billing-api/internal/config"
)

type fakeS3Client struct {
	put     *s3.PutObjectInput
	body    []byte
	deleted []string
	err     error
}

func (f *fakeS3Client) PutObject(_ context.Context, params *s3.PutObjectInput, _ ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.put = params
	f.body, _ = io.ReadAll(params.Body)
	return &s3.PutObjectOutput{}, nil
}

func (f *fakeS3Client) DeleteObject(_ context.Context, params *s3.DeleteObjectInput, _ ...func(*s3.Options)) (*s3.DeleteObjectOutput, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.deleted = append(f.deleted, aws.ToString(params.Key))
	return &s3.DeleteObjectOutput{}, nil
}

func TestUpload_ReturnsPublicURL(t *testing.T) {
	// Arrange
	client := &fakeS3Client{}
	store := NewS3Storage(client, &config.S3Config{BucketName: "assets", PublicBaseURL: "https://cdn.example.com/"})

	// Act
	url, err := store.Upload(context.Background(), "tenant_logos/tenant_1/logo.png", "image/png", []byte("png"), map[string]string{"tenant-id": "tenant_1"})

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "https://cdn.example.com/tenant_logos/tenant_1/logo.png", url)
	assert.Equal(t, "assets", aws.ToString(client.put.Bucket))
	assert.Equal(t, "image/png", aws.ToString(client.put.ContentType))
	assert.Equal(t, []byte("png"), client.body)
}

func TestUpload_FallsBackToS3URL(t *testing.T) {
	store := NewS3Storage(&fakeS3Client{}, &config.S3Config{BucketName: "assets"})

	url, err := store.Upload(context.Background(), "invoices/tenant_1/a.pdf", "application/pdf", nil, nil)

	require.NoError(t, err)
	assert.Equal(t, "s3://assets/invoices/tenant_1/a.pdf", url)
}

func TestUploadAndDelete_Errors(t *testing.T) {
	store := NewS3Storage(&fakeS3Client{err: errors.New("access denied")}, &config.S3Config{BucketName: "assets"})

	_, err := store.Upload(context.Background(), "k", "text/plain", nil, nil)
	assert.ErrorContains(t, err, "failed to upload k to S3")
	assert.ErrorContains(t, store.Delete(context.Background(), "k"), "failed to delete k from S3")
}

func TestDelete(t *testing.T) {
	client := &fakeS3Client{}
	store := NewS3Storage(client, &config.S3Config{BucketName: "assets"})

	require.NoError(t, store.Delete(context.Background(), "tenant_logos/tenant_1/logo.png"))
	assert.Equal(t, []string{"tenant_logos/tenant_1/logo.png"}, client.deleted)
}
