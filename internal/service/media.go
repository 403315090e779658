package service

import (
	"context"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	v4 "github.com/aws/aws-sdk-go-v2/aws/signer/v4"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"

	"eblog_backend/internal/config"
)

// Upload URLs are fixed-purpose: one jpeg banner image, short-lived.
const (
	uploadURLExpiry   = 1000 * time.Second
	uploadContentType = "image/jpeg"
)

// presignPutFunc matches s3.PresignClient.PresignPutObject, injectable for tests.
type presignPutFunc func(ctx context.Context, in *s3.PutObjectInput, optFns ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error)

// MediaService hands out pre-signed PUT URLs so clients upload banner images
// straight to object storage without routing the bytes through this API.
type MediaService struct {
	presignPut presignPutFunc
	bucket     string
}

// NewMediaService constructs the S3 presign client from static credentials.
func NewMediaService(ctx context.Context, cfg *config.Config) (*MediaService, error) {
	if cfg.AWSAccessKeyID == "" || cfg.AWSSecretAccessKey == "" {
		return nil, fmt.Errorf("missing AWS credentials")
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(
		ctx,
		awsconfig.WithRegion(cfg.AWSRegion),
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(cfg.AWSAccessKeyID, cfg.AWSSecretAccessKey, "")),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg)
	presignClient := s3.NewPresignClient(client)

	return &MediaService{
		presignPut: presignClient.PresignPutObject,
		bucket:     cfg.S3Bucket,
	}, nil
}

// GenerateUploadURL pre-signs a PUT for a randomly named jpeg object.
func (s *MediaService) GenerateUploadURL(ctx context.Context) (string, error) {
	key := fmt.Sprintf("%s-%d.jpeg", uuid.NewString(), time.Now().UnixMilli())

	req, err := s.presignPut(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		ContentType: aws.String(uploadContentType),
	}, s3.WithPresignExpires(uploadURLExpiry))
	if err != nil {
		return "", fmt.Errorf("failed to presign upload: %w", err)
	}

	return req.URL, nil
}
