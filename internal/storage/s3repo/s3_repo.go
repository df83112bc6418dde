package s3repo

import (
	"context"
	"io"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/feature/s3/manager"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/pkg/errors"
	"go.opentelemetry.io/otel"

	"audio_recorder/config"
)

const traceName = "s3-repo"

// S3Repository uploads finished recordings to an S3-compatible endpoint.
// It implements entity.BlobStorage.
type S3Repository struct {
	client *s3.Client
}

// NewS3Repository -.
func NewS3Repository(cfg config.Storage) *S3Repository {
	resolver := aws.EndpointResolverWithOptionsFunc(func(service, region string, options ...any) (aws.Endpoint, error) {
		return aws.Endpoint{
			PartitionID:       "aws",
			SigningRegion:     cfg.Region,
			URL:               cfg.Endpoint,
			HostnameImmutable: true,
		}, nil
	})

	awsCfg := aws.Config{
		Region:                      cfg.Region,
		EndpointResolverWithOptions: resolver,
		Credentials:                 credentials.NewStaticCredentialsProvider(cfg.AccessKey, cfg.SecretKey, ""),
	}

	return &S3Repository{client: s3.NewFromConfig(awsCfg)}
}

// UploadObject streams r into bucket/key.
func (s3Repo *S3Repository) UploadObject(ctx context.Context, bucket string, key string, r io.Reader) error {
	ctx, span := otel.Tracer(traceName).Start(ctx, "UploadObject")
	defer span.End()

	uploader := manager.NewUploader(s3Repo.client)

	_, err := uploader.Upload(ctx, &s3.PutObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(key),
		Body:   r,
	})
	if err != nil {
		return errors.Wrap(err, "s3repo - UploadObject - uploader.Upload")
	}

	return nil
}
