package storage_test

import (
	"context"
	"fmt"
	"testing"

	"products-api/core/storage"
	"products-api/core/storage/mocks"

	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestNewClient(t *testing.T) {
	t.Run("ValidConfig", func(t *testing.T) {
		cfg := storage.Config{
			Endpoint:  "localhost:9000",
			AccessKey: "testkey",
			SecretKey: "testsecret",
			UseSSL:    false,
			Bucket:    "sync-archive",
			Region:    "us-east-1",
		}

		client, err := storage.NewClient(cfg)
		assert.NoError(t, err)
		assert.NotNil(t, client)
	})

	t.Run("EndpointWithHTTP", func(t *testing.T) {
		cfg := storage.Config{
			Endpoint:  "http://localhost:9000",
			AccessKey: "testkey",
			SecretKey: "testsecret",
			UseSSL:    false,
		}

		client, err := storage.NewClient(cfg)
		assert.NoError(t, err)
		assert.NotNil(t, client)
	})

	t.Run("EndpointWithHTTPS", func(t *testing.T) {
		cfg := storage.Config{
			Endpoint:  "https://s3.amazonaws.com",
			AccessKey: "testkey",
			SecretKey: "testsecret",
			UseSSL:    true,
			Region:    "us-east-1",
		}

		client, err := storage.NewClient(cfg)
		assert.NoError(t, err)
		assert.NotNil(t, client)
	})
}

func TestEnsureBucket(t *testing.T) {
	ctx := context.Background()

	t.Run("BucketExists", func(t *testing.T) {
		mockClient := new(mocks.Client)
		mockClient.On("BucketExists", mock.Anything, "sync-archive").Return(true, nil)

		err := storage.EnsureBucket(ctx, mockClient, "sync-archive")
		assert.NoError(t, err)
		mockClient.AssertNotCalled(t, "MakeBucket", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("CreatesMissingBucket", func(t *testing.T) {
		mockClient := new(mocks.Client)
		mockClient.On("BucketExists", mock.Anything, "sync-archive").Return(false, nil)
		mockClient.On("MakeBucket", mock.Anything, "sync-archive", minio.MakeBucketOptions{}).Return(nil)

		err := storage.EnsureBucket(ctx, mockClient, "sync-archive")
		assert.NoError(t, err)
		mockClient.AssertCalled(t, "MakeBucket", mock.Anything, "sync-archive", minio.MakeBucketOptions{})
	})

	t.Run("CheckFails", func(t *testing.T) {
		mockClient := new(mocks.Client)
		mockClient.On("BucketExists", mock.Anything, "sync-archive").
			Return(false, fmt.Errorf("connection refused"))

		err := storage.EnsureBucket(ctx, mockClient, "sync-archive")
		assert.Error(t, err)
	})
}
