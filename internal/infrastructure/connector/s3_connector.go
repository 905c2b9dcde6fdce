package connector

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/url"
	"strings"

	"github.com/Brownie-08/Portfolio/internal/domain/media"
	"github.com/Brownie-08/Portfolio/internal/pkg/config"
	"github.com/Brownie-08/Portfolio/internal/pkg/logger"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
)

// s3API is the subset of the S3 client the connector calls
type s3API interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
	GetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error)
	HeadObject(ctx context.Context, params *s3.HeadObjectInput, optFns ...func(*s3.Options)) (*s3.HeadObjectOutput, error)
	DeleteObject(ctx context.Context, params *s3.DeleteObjectInput, optFns ...func(*s3.Options)) (*s3.DeleteObjectOutput, error)
}

type s3Connector struct {
	client   s3API
	settings config.S3Settings
	logger   logger.Logger
}

// NewS3Connector creates a connector for an S3 compatible bucket
func NewS3Connector(ctx context.Context, settings *config.S3Settings, logger logger.Logger) (media.Connector, error) {
	if settings.Bucket == "" {
		return nil, fmt.Errorf("s3 requires a bucket name")
	}

	opts := []func(*awsconfig.LoadOptions) error{}
	if settings.Region != "" {
		opts = append(opts, awsconfig.WithRegion(settings.Region))
	}
	if settings.AccessKeyID != "" && settings.SecretAccessKey != "" {
		opts = append(opts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(settings.AccessKeyID, settings.SecretAccessKey, ""),
		))
	}

	cfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to load aws config: %w", err)
	}

	client := s3.NewFromConfig(cfg, func(o *s3.Options) {
		if settings.Endpoint != "" {
			o.BaseEndpoint = aws.String(settings.Endpoint)
			o.UsePathStyle = true
		}
	})

	return newS3Connector(client, *settings, logger), nil
}

func newS3Connector(client s3API, settings config.S3Settings, logger logger.Logger) *s3Connector {
	return &s3Connector{
		client:   client,
		settings: settings,
		logger:   logger,
	}
}

func (c *s3Connector) Name() string {
	return config.S3StorageBackend
}

func (c *s3Connector) Save(ctx context.Context, upload *media.Upload) (*media.Ref, error) {
	key := objectKey(upload.Slot.Folder(), upload.Filename, true)

	data, err := io.ReadAll(upload.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read upload: %w", err)
	}

	input := &s3.PutObjectInput{
		Bucket:        aws.String(c.settings.Bucket),
		Key:           aws.String(key),
		Body:          bytes.NewReader(data),
		ContentLength: aws.Int64(int64(len(data))),
	}
	if upload.ContentType != "" {
		input.ContentType = aws.String(upload.ContentType)
	}
	if _, err := c.client.PutObject(ctx, input); err != nil {
		return nil, fmt.Errorf("failed to upload to s3: %w", err)
	}

	kind := upload.Kind()
	objectURL, err := c.URL(key, kind)
	if err != nil {
		return nil, err
	}

	c.logger.Info("Uploaded media to s3 with key ", key)
	return &media.Ref{
		Backend: c.Name(),
		Kind:    kind,
		Key:     key,
		URL:     objectURL,
	}, nil
}

func (c *s3Connector) Open(ctx context.Context, key string) (io.ReadCloser, error) {
	out, err := c.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(c.settings.Bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		if isMissingObject(err) {
			return nil, fmt.Errorf("%s: %w", key, media.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to download from s3: %w", err)
	}
	return out.Body, nil
}

func (c *s3Connector) Exists(ctx context.Context, key string) (bool, error) {
	_, err := c.client.HeadObject(ctx, &s3.HeadObjectInput{
		Bucket: aws.String(c.settings.Bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		if isMissingObject(err) {
			return false, nil
		}
		return false, fmt.Errorf("failed to stat s3 object: %w", err)
	}
	return true, nil
}

func (c *s3Connector) Delete(ctx context.Context, key string) error {
	_, err := c.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(c.settings.Bucket),
		Key:    aws.String(key),
	})
	if err != nil && !isMissingObject(err) {
		return fmt.Errorf("failed to delete from s3: %w", err)
	}

	c.logger.Info("Deleted s3 object with key ", key)
	return nil
}

func (c *s3Connector) URL(key string, kind media.Kind) (string, error) {
	key = strings.TrimPrefix(key, "/")
	if key == "" {
		return "", fmt.Errorf("empty key: %w", media.ErrInvalidKey)
	}

	if base := c.settings.PublicBaseURL; base != "" {
		return strings.TrimSuffix(base, "/") + "/" + key, nil
	}
	if c.settings.Endpoint != "" {
		return fmt.Sprintf("%s/%s/%s", strings.TrimSuffix(c.settings.Endpoint, "/"), c.settings.Bucket, key), nil
	}

	host := c.settings.Bucket + ".s3.amazonaws.com"
	if c.settings.Region != "" {
		host = fmt.Sprintf("%s.s3.%s.amazonaws.com", c.settings.Bucket, c.settings.Region)
	}
	u := url.URL{Scheme: "https", Host: host, Path: "/" + key}
	return u.String(), nil
}

func isMissingObject(err error) bool {
	var notFound *types.NotFound
	var noSuchKey *types.NoSuchKey
	return errors.As(err, &notFound) || errors.As(err, &noSuchKey)
}
