package storage

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"studio-booking-server/config"
)

// SignedURLExpiry is how long a generated retrieval URL stays valid.
const SignedURLExpiry = time.Hour

// ObjectStore is the object-storage surface the handlers depend on.
// Keys are stored in the database; URLs are always derived per request.
type ObjectStore interface {
	Upload(ctx context.Context, key string, body io.Reader, contentType string) error
	Delete(ctx context.Context, key string) error
	SignedURL(ctx context.Context, key string) (string, error)
}

// S3Store talks to a single bucket.
type S3Store struct {
	client  *s3.Client
	presign *s3.PresignClient
	bucket  string
}

// NewS3Store builds a store from the loaded app configuration.
func NewS3Store(ctx context.Context) (*S3Store, error) {
	s3cfg := config.AppConfig.S3
	if s3cfg.Bucket == "" {
		return nil, fmt.Errorf("S3_BUCKET_NAME missing")
	}

	opts := []func(*awsconfig.LoadOptions) error{
		awsconfig.WithRegion(s3cfg.Region),
	}
	if s3cfg.AccessKeyID != "" {
		opts = append(opts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(s3cfg.AccessKeyID, s3cfg.SecretAccessKey, ""),
		))
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg)
	return &S3Store{
		client:  client,
		presign: s3.NewPresignClient(client),
		bucket:  s3cfg.Bucket,
	}, nil
}

func (s *S3Store) Upload(ctx context.Context, key string, body io.Reader, contentType string) error {
	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      &s.bucket,
		Key:         &key,
		Body:        body,
		ContentType: &contentType,
	})
	return err
}

func (s *S3Store) Delete(ctx context.Context, key string) error {
	_, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: &s.bucket,
		Key:    &key,
	})
	return err
}

func (s *S3Store) SignedURL(ctx context.Context, key string) (string, error) {
	req, err := s.presign.PresignGetObject(ctx, &s3.GetObjectInput{
		Bucket: &s.bucket,
		Key:    &key,
	}, s3.WithPresignExpires(SignedURLExpiry))
	if err != nil {
		return "", err
	}
	return req.URL, nil
}

// MediaKey builds the deterministic bucket key for a gallery upload:
// gallery/<galleryId>/albums/<albumId>/<unix-ms>-<sanitized filename>.
func MediaKey(galleryID, albumID uint, filename string) string {
	return fmt.Sprintf("gallery/%d/albums/%d/%d-%s",
		galleryID, albumID, time.Now().UnixMilli(), SanitizeFilename(filename))
}

// StudioKey builds the bucket key for the studio profile image.
func StudioKey(filename string) string {
	return fmt.Sprintf("studio/%d-%s", time.Now().UnixMilli(), SanitizeFilename(filename))
}

// SanitizeFilename replaces whitespace runs so keys stay URL-friendly.
func SanitizeFilename(name string) string {
	return strings.Join(strings.Fields(name), "_")
}
