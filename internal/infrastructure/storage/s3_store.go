package storage

import (
	"context"
	"fmt"
	gopath "path"
	"path/filepath"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"

	"github.com/MogudumpuramNikitha/MOGUDUMUPURAMNIKITHA/domain"
)

// S3Config holds the bucket settings for the S3-backed store. Endpoint
// is optional and allows MinIO-compatible deployments.
type S3Config struct {
	Bucket    string
	Region    string
	Prefix    string
	Endpoint  string
	AccessKey string
	SecretKey string
}

// S3StoreImpl implements domain.FileStore on an S3 bucket
type S3StoreImpl struct {
	client *s3.Client
	bucket string
	prefix string
}

// NewS3Store creates a new S3-backed file store
func NewS3Store(ctx context.Context, cfg S3Config) (*S3StoreImpl, error) {
	opts := []func(*awsconfig.LoadOptions) error{
		awsconfig.WithRegion(cfg.Region),
	}
	if cfg.AccessKey != "" {
		opts = append(opts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKey, cfg.SecretKey, ""),
		))
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
			o.UsePathStyle = true
		}
	})

	return &S3StoreImpl{client: client, bucket: cfg.Bucket, prefix: cfg.Prefix}, nil
}

// Save implements domain.FileStore
func (s *S3StoreImpl) Save(ctx context.Context, category string, upload *domain.Upload) (string, error) {
	key := gopath.Join(s.prefix, category, uuid.NewString()+filepath.Ext(upload.Filename))

	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(s.bucket),
		Key:           aws.String(key),
		Body:          upload.Content,
		ContentLength: aws.Int64(upload.Size),
	})
	if err != nil {
		return "", fmt.Errorf("failed to store upload in s3: %w", err)
	}

	return key, nil
}
