package storage

import (
	"context"
	"errors"
	"fmt"
	"mime/multipart"
	"path/filepath"

	"github.com/OojayFidel/plp-hackathon-2/internal/utils"
	"github.com/aws/aws-sdk-go-v2/aws"
	awscfg "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/gofiber/fiber/v2/log"
	"github.com/google/uuid"
)

var ErrStorageDisabled = errors.New("image storage not configured")

type (
	// AwsS3 stores user-provided recipe photos. When the bucket is not
	// configured the uploader stays disabled and uploads fail with
	// ErrStorageDisabled.
	AwsS3 interface {
		Enabled() bool
		UploadFile(ctx context.Context, folder string, file *multipart.FileHeader) (string, error)
	}

	awsS3 struct {
		client *s3.Client
		bucket string
		region string
	}
)

func NewAwsS3() AwsS3 {
	bucket := utils.GetConfig("AWS_S3_BUCKET")
	region := utils.GetConfig("AWS_S3_REGION")
	accessKey := utils.GetConfig("AWS_ACCESS_KEY")
	secretKey := utils.GetConfig("AWS_SECRET_KEY")

	if bucket == "" || region == "" {
		return &awsS3{}
	}

	cfg, err := awscfg.LoadDefaultConfig(context.Background(),
		awscfg.WithRegion(region),
		awscfg.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(accessKey, secretKey, ""),
		),
	)
	if err != nil {
		log.Warnf("loading AWS config failed, image uploads disabled: %v", err)
		return &awsS3{}
	}

	return &awsS3{
		client: s3.NewFromConfig(cfg),
		bucket: bucket,
		region: region,
	}
}

func (s *awsS3) Enabled() bool {
	return s.client != nil
}

func (s *awsS3) UploadFile(ctx context.Context, folder string, file *multipart.FileHeader) (string, error) {
	if s.client == nil {
		return "", ErrStorageDisabled
	}

	src, err := file.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	key := folder + "/" + uuid.NewString() + filepath.Ext(file.Filename)
	_, err = s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        src,
		ContentType: aws.String(file.Header.Get("Content-Type")),
	})
	if err != nil {
		return "", err
	}

	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", s.bucket, s.region, key), nil
}
