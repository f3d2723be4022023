package storage

import (
	"context"
	"io"
	"log"
	"net/url"
	"time"

	"github.com/dasomcenter/dasom-api/internal/config"
	minioSDK "github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// Client wraps the MinIO SDK with the single application bucket.
type Client struct {
	mc     *minioSDK.Client
	bucket string
}

// New connects to MinIO using the loaded config and ensures the bucket
// exists.
func New(ctx context.Context) (*Client, error) {
	mc, err := minioSDK.New(config.MinioEndpoint, &minioSDK.Options{
		Creds:  credentials.NewStaticV4(config.MinioAccessKey, config.MinioSecretKey, ""),
		Secure: config.MinioUseSSL,
	})
	if err != nil {
		return nil, err
	}

	exists, err := mc.BucketExists(ctx, config.MinioBucket)
	if err != nil {
		return nil, err
	}
	if !exists {
		if err := mc.MakeBucket(ctx, config.MinioBucket, minioSDK.MakeBucketOptions{}); err != nil {
			return nil, err
		}
		log.Printf("Bucket created: %s", config.MinioBucket)
	}

	return &Client{mc: mc, bucket: config.MinioBucket}, nil
}

// Put streams an object into the bucket.
func (c *Client) Put(ctx context.Context, key, contentType string, r io.Reader, size int64) error {
	_, err := c.mc.PutObject(ctx, c.bucket, key, r, size, minioSDK.PutObjectOptions{
		ContentType: contentType,
	})
	return err
}

// PresignedGet returns a time-limited download URL. downloadName sets the
// browser filename via content disposition.
func (c *Client) PresignedGet(ctx context.Context, key, downloadName string, expiry time.Duration) (string, error) {
	params := url.Values{}
	if downloadName != "" {
		params.Set("response-content-disposition", "attachment; filename=\""+downloadName+"\"")
	}
	u, err := c.mc.PresignedGetObject(ctx, c.bucket, key, expiry, params)
	if err != nil {
		return "", err
	}
	return u.String(), nil
}

// Remove deletes an object. Missing objects are not an error.
func (c *Client) Remove(ctx context.Context, key string) error {
	return c.mc.RemoveObject(ctx, c.bucket, key, minioSDK.RemoveObjectOptions{})
}
