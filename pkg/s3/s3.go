// Package s3 is a thin wrapper over the AWS SDK pointed at an
// S3-compatible endpoint (ArvanCloud in production). All objects are
// private and reads go out as presigned URLs.
package s3

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awscfg "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"

	"github.com/medera/medera_backend/config"
)

type Client struct {
	api      *s3.Client
	presign  *s3.PresignClient
	bucket   string
	urlValid time.Duration
}

func New(cfg config.S3Config) (*Client, error) {
	if cfg.Bucket == "" {
		return nil, errors.New("s3: bucket name is required")
	}

	awsCfg, err := awscfg.LoadDefaultConfig(context.Background(),
		awscfg.WithRegion(cfg.Region),
		awscfg.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			cfg.AccessKeyID, cfg.SecretAccessKey, "")),
	)
	if err != nil {
		return nil, fmt.Errorf("s3: load config: %w", err)
	}

	api := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		o.BaseEndpoint = aws.String(cfg.Endpoint)
		// ArvanCloud does not resolve virtual-hosted bucket names.
		o.UsePathStyle = true
	})

	urlValid := time.Duration(cfg.PresignTTLSec) * time.Second
	if urlValid <= 0 {
		urlValid = 5 * time.Minute
	}

	return &Client{
		api:      api,
		presign:  s3.NewPresignClient(api),
		bucket:   cfg.Bucket,
		urlValid: urlValid,
	}, nil
}

// Upload stores an object under key, which follows the convention
// {entity}/{id}.{ext}.
func (c *Client) Upload(ctx context.Context, key, contentType string, body io.Reader, size int64) error {
	_, err := c.api.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(c.bucket),
		Key:           aws.String(key),
		Body:          body,
		ContentLength: aws.Int64(size),
		ContentType:   aws.String(contentType),
		ACL:           types.ObjectCannedACLPrivate,
	})
	if err != nil {
		return fmt.Errorf("s3 upload %q: %w", key, err)
	}
	return nil
}

// PresignDownload returns a GET URL that expires after the configured TTL.
func (c *Client) PresignDownload(ctx context.Context, key string) (string, error) {
	out, err := c.presign.PresignGetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(c.bucket),
		Key:    aws.String(key),
	}, s3.WithPresignExpires(c.urlValid))
	if err != nil {
		return "", fmt.Errorf("s3 presign %q: %w", key, err)
	}
	return out.URL, nil
}

func (c *Client) Delete(ctx context.Context, key string) error {
	_, err := c.api.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(c.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return fmt.Errorf("s3 delete %q: %w", key, err)
	}
	return nil
}
