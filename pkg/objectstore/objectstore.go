// Package objectstore implements the public metadata store on an
// S3-compatible service (Akave O3 in production, MinIO in development).
// Objects are small JSON documents written public-read under deterministic
// keys; their path-style URL is the listing's token URI.
package objectstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"go.uber.org/zap"

	cfg "github.com/debugger-labs/debugger-go/pkg/config"
)

// s3API is the slice of the AWS SDK S3 client used by Client, extracted so
// tests can substitute a fake.
type s3API interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
	HeadBucket(ctx context.Context, params *s3.HeadBucketInput, optFns ...func(*s3.Options)) (*s3.HeadBucketOutput, error)
	CreateBucket(ctx context.Context, params *s3.CreateBucketInput, optFns ...func(*s3.Options)) (*s3.CreateBucketOutput, error)
}

// Client writes public metadata documents to one bucket of an S3-compatible
// store and derives their public URLs.
type Client struct {
	api      s3API
	endpoint string
	bucket   string
}

// New builds a Client from the S3 section of the config, using static
// credentials and a custom endpoint. Path-style addressing is forced because
// Akave O3 does not resolve virtual-hosted bucket subdomains.
func New(ctx context.Context, c cfg.S3) (*Client, error) {
	if c.Endpoint == "" || c.Bucket == "" {
		return nil, errors.New("objectstore: endpoint and bucket are required")
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithRegion(c.Region),
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			c.AccessKeyID,
			c.SecretAccessKey,
			"",
		)))
	if err != nil {
		return nil, err
	}

	api := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		o.BaseEndpoint = aws.String(c.Endpoint)
		o.UsePathStyle = true
	})

	return &Client{
		api:      api,
		endpoint: strings.TrimRight(c.Endpoint, "/"),
		bucket:   c.Bucket,
	}, nil
}

// EnsureBucket checks that the metadata bucket exists and creates it when the
// head request reports it missing. Run once at startup; any other head error
// (bad credentials, unreachable endpoint) is fatal for the caller to decide.
func (c *Client) EnsureBucket(ctx context.Context) error {
	_, err := c.api.HeadBucket(ctx, &s3.HeadBucketInput{Bucket: aws.String(c.bucket)})
	if err == nil {
		zap.L().Info("object store bucket is accessible", zap.String("bucket", c.bucket))
		return nil
	}

	var notFound *types.NotFound
	var noSuchBucket *types.NoSuchBucket
	if !errors.As(err, &notFound) && !errors.As(err, &noSuchBucket) {
		return fmt.Errorf("checking bucket %q: %w", c.bucket, err)
	}

	zap.L().Warn("object store bucket not found, creating it", zap.String("bucket", c.bucket))
	if _, err := c.api.CreateBucket(ctx, &s3.CreateBucketInput{Bucket: aws.String(c.bucket)}); err != nil {
		return fmt.Errorf("creating bucket %q: %w", c.bucket, err)
	}
	zap.L().Info("created object store bucket", zap.String("bucket", c.bucket))
	return nil
}

// PutJSON uploads data as an indented JSON document under key with public
// read access and returns its path-style public URL.
func (c *Client) PutJSON(ctx context.Context, key string, data any) (string, error) {
	raw, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal metadata: %w", err)
	}

	_, err = c.api.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(c.bucket),
		Key:         aws.String(key),
		Body:        strings.NewReader(string(raw)),
		ContentType: aws.String("application/json"),
		ACL:         types.ObjectCannedACLPublicRead,
	})
	if err != nil {
		zap.L().Error("object store upload failed", zap.String("key", key), zap.Error(err))
		return "", fmt.Errorf("failed to upload public metadata: %w", err)
	}

	url := c.PublicURL(key)
	zap.L().Debug("uploaded public metadata", zap.String("url", url))
	return url, nil
}

// PublicURL returns the path-style URL of an object: {endpoint}/{bucket}/{key}.
func (c *Client) PublicURL(key string) string {
	return fmt.Sprintf("%s/%s/%s", c.endpoint, c.bucket, key)
}
