package services

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// SpacesService stores generated artifacts (CSV exports, leaderboard
// images) in a DigitalOcean Spaces bucket.
type SpacesService struct {
	client     *s3.Client
	bucket     string
	region     string
	ExportRoot string
}

func NewSpacesService(spacesKey, spacesSecret, region, bucket, exportRoot string) *SpacesService {
	resolver := aws.EndpointResolverWithOptionsFunc(func(service, region string, options ...interface{}) (aws.Endpoint, error) {
		return aws.Endpoint{
			URL: fmt.Sprintf("https://%s.digitaloceanspaces.com", region),
		}, nil
	})

	cfg, err := config.LoadDefaultConfig(context.TODO(),
		config.WithEndpointResolverWithOptions(resolver),
		config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(spacesKey, spacesSecret, "")),
		config.WithRegion(region),
	)
	if err != nil {
		panic(fmt.Sprintf("Unable to load Spaces config: %v", err))
	}

	client := s3.NewFromConfig(cfg)

	return &SpacesService{
		client:     client,
		bucket:     bucket,
		region:     region,
		ExportRoot: strings.Trim(exportRoot, "/"),
	}
}

// UploadExport streams a CSV report into the bucket and returns its URL.
func (s *SpacesService) UploadExport(ctx context.Context, key string, body io.Reader) (string, error) {
	fullKey := s.objectKey(key)
	contentType := "text/csv"

	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      &s.bucket,
		Key:         &fullKey,
		Body:        body,
		ContentType: &contentType,
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload export %s: %w", fullKey, err)
	}

	return s.objectURL(fullKey), nil
}

// UploadImage stores a rendered PNG and returns its URL.
func (s *SpacesService) UploadImage(ctx context.Context, key string, data []byte) (string, error) {
	fullKey := s.objectKey(key)
	contentType := "image/png"

	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      &s.bucket,
		Key:         &fullKey,
		Body:        bytes.NewReader(data),
		ContentType: &contentType,
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload image %s: %w", fullKey, err)
	}

	return s.objectURL(fullKey), nil
}

// DeleteExport removes a previously uploaded report.
func (s *SpacesService) DeleteExport(ctx context.Context, key string) error {
	fullKey := s.objectKey(key)
	_, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: &s.bucket,
		Key:    &fullKey,
	})
	if err != nil {
		return fmt.Errorf("failed to delete export %s: %w", fullKey, err)
	}
	return nil
}

func (s *SpacesService) objectKey(key string) string {
	if s.ExportRoot == "" {
		return key
	}
	return s.ExportRoot + "/" + key
}

func (s *SpacesService) objectURL(fullKey string) string {
	return fmt.Sprintf("https://%s.%s.digitaloceanspaces.com/%s", s.bucket, s.region, fullKey)
}

func (s *SpacesService) GetBucket() string {
	return s.bucket
}

func (s *SpacesService) GetRegion() string {
	return s.region
}
