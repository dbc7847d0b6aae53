package imagestore

import (
	"bytes"
	"context"
	"fmt"

	errs "github.com/amirhossein-jamali/ev-carbon-rewards/internal/domain/error"
	coreport "github.com/amirhossein-jamali/ev-carbon-rewards/internal/domain/port/core"
	"github.com/amirhossein-jamali/ev-carbon-rewards/internal/domain/port/media"
	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// ObjectClient is the part of the S3 client the store needs
type ObjectClient interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
	DeleteObject(ctx context.Context, params *s3.DeleteObjectInput, optFns ...func(*s3.Options)) (*s3.DeleteObjectOutput, error)
}

// S3Options configures the S3 backed store
type S3Options struct {
	Bucket          string
	Region          string
	Endpoint        string
	AccessKeyID     string
	SecretAccessKey string
	UsePathStyle    bool
}

// S3Store uploads images to an S3 compatible bucket
type S3Store struct {
	client ObjectClient
	bucket string
	logger coreport.Logger
}

var _ media.ImageStore = (*S3Store)(nil)

// NewS3Store builds a client from the default AWS chain. Static keys and
// a custom endpoint override the chain when set.
func NewS3Store(ctx context.Context, opts S3Options, logger coreport.Logger) (*S3Store, error) {
	loadOpts := []func(*awsconfig.LoadOptions) error{
		awsconfig.WithRegion(opts.Region),
	}
	if opts.AccessKeyID != "" {
		loadOpts = append(loadOpts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(opts.AccessKeyID, opts.SecretAccessKey, ""),
		))
	}

	cfg, err := awsconfig.LoadDefaultConfig(ctx, loadOpts...)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	client := s3.NewFromConfig(cfg, func(o *s3.Options) {
		if opts.Endpoint != "" {
			o.BaseEndpoint = aws.String(opts.Endpoint)
		}
		o.UsePathStyle = opts.UsePathStyle
	})

	return NewS3StoreWithClient(client, opts.Bucket, logger), nil
}

// NewS3StoreWithClient uses an already configured client
func NewS3StoreWithClient(client ObjectClient, bucket string, logger coreport.Logger) *S3Store {
	return &S3Store{client: client, bucket: bucket, logger: logger}
}

// Save puts the image under its object key
func (s *S3Store) Save(ctx context.Context, folder string, userID uint64, img *media.Image) (string, error) {
	key := objectKey(folder, userID, img.Extension)

	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(s.bucket),
		Key:           aws.String(key),
		Body:          bytes.NewReader(img.Data),
		ContentLength: aws.Int64(int64(len(img.Data))),
		ContentType:   aws.String(img.ContentType),
	})
	if err != nil {
		s.logger.Error("Failed to put image object", map[string]any{
			"bucket": s.bucket,
			"key":    key,
			"error":  err.Error(),
		})
		return "", fmt.Errorf("%w: %v", errs.ErrImageStorage, err)
	}

	return key, nil
}

// Delete removes the object; S3 reports success for missing keys
func (s *S3Store) Delete(ctx context.Context, imageID string) error {
	_, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(imageID),
	})
	if err != nil {
		s.logger.Error("Failed to delete image object", map[string]any{
			"bucket": s.bucket,
			"key":    imageID,
			"error":  err.Error(),
		})
		return fmt.Errorf("%w: %v", errs.ErrImageStorage, err)
	}
	return nil
}
