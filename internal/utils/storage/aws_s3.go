package storage

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"Go-Recipe-Share/internal/utils"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"
)

type (
	AwsS3 interface {
		UploadFile(ctx context.Context, fileName string, data []byte, folder string, contentType string) (string, error)
		DeleteFile(ctx context.Context, objectKey string) error
		GetPublicLinkKey(objectKey string) string
		GetObjectKeyFromLink(link string) string
	}

	awsS3 struct {
		client *s3.Client
		bucket string
		region string
	}

	s3PhotoStore struct {
		s3 AwsS3
	}
)

func NewAwsS3(ctx context.Context, cfg utils.Config) (AwsS3, error) {
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithRegion(cfg.AWSS3Region),
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			cfg.AWSAccessKey,
			cfg.AWSSecretKey,
			"",
		)),
	)
	if err != nil {
		return nil, err
	}

	return &awsS3{
		client: s3.NewFromConfig(awsCfg),
		bucket: cfg.AWSS3Bucket,
		region: cfg.AWSS3Region,
	}, nil
}

func (a *awsS3) UploadFile(ctx context.Context, fileName string, data []byte, folder string, contentType string) (string, error) {
	objectKey := folder + "/" + fileName
	_, err := a.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(a.bucket),
		Key:         aws.String(objectKey),
		Body:        bytes.NewReader(data),
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", err
	}
	return objectKey, nil
}

func (a *awsS3) DeleteFile(ctx context.Context, objectKey string) error {
	_, err := a.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(a.bucket),
		Key:    aws.String(objectKey),
	})
	return err
}

func (a *awsS3) GetPublicLinkKey(objectKey string) string {
	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", a.bucket, a.region, objectKey)
}

func (a *awsS3) GetObjectKeyFromLink(link string) string {
	prefix := fmt.Sprintf("https://%s.s3.%s.amazonaws.com/", a.bucket, a.region)
	if !strings.HasPrefix(link, prefix) {
		return ""
	}
	return strings.TrimPrefix(link, prefix)
}

// NewS3PhotoStore stores photos as public S3 objects.
func NewS3PhotoStore(s3 AwsS3) PhotoStore {
	return &s3PhotoStore{s3: s3}
}

func (s *s3PhotoStore) Save(ctx context.Context, folder string, data []byte, mime string) (string, error) {
	objectKey, err := s.s3.UploadFile(ctx, uuid.NewString()+extensionFor(mime), data, folder, mime)
	if err != nil {
		return "", err
	}
	return s.s3.GetPublicLinkKey(objectKey), nil
}

func (s *s3PhotoStore) Delete(ctx context.Context, ref string) error {
	key := s.s3.GetObjectKeyFromLink(ref)
	if key == "" {
		return nil
	}
	return s.s3.DeleteFile(ctx, key)
}

// NewPhotoStore picks S3 when a bucket is configured, inline data URIs
// otherwise.
func NewPhotoStore(ctx context.Context, cfg utils.Config) (PhotoStore, error) {
	if cfg.AWSS3Bucket == "" {
		return NewInlineStore(), nil
	}
	client, err := NewAwsS3(ctx, cfg)
	if err != nil {
		return nil, err
	}
	return NewS3PhotoStore(client), nil
}
