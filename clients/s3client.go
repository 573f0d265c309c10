package clients

import (
	"context"
	"io"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	s3Config "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/feature/s3/manager"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/buscavan/api/config"
)

type S3Client *s3.Client

// NewS3Client configures a new AWS S3 object storage client.
func NewS3Client(cfg config.Config) (S3Client, error) {
	creds := credentials.NewStaticCredentialsProvider(cfg.S3.AccessKeyID, cfg.S3.SecretAccessKey, "")
	awsCfg, err := s3Config.LoadDefaultConfig(context.TODO(), s3Config.WithCredentialsProvider(creds), s3Config.WithRegion(cfg.S3.Region))
	if err != nil {
		return nil, err
	}
	s3Client := s3.NewFromConfig(awsCfg)
	return s3Client, nil
}

// BlobStore wraps an S3 client with the bucket-scoped operations the service
// layer needs: upload an object, presign a long-lived GET URL for it, and
// delete it again when a later step of the attachment flow fails.
type BlobStore struct {
	client   *s3.Client
	uploader *manager.Uploader
	presign  *s3.PresignClient
	bucket   string
}

// NewBlobStore creates a BlobStore for a bucket. S3Client is a defined
// pointer type with an empty method set, so it is converted back to
// *s3.Client before anything interface-shaped sees it.
func NewBlobStore(client S3Client, bucket string) *BlobStore {
	s3Client := (*s3.Client)(client)
	return &BlobStore{
		client:   s3Client,
		uploader: manager.NewUploader(s3Client),
		presign:  s3.NewPresignClient(s3Client),
		bucket:   bucket,
	}
}

// Upload writes an object to the bucket under the given key.
func (b *BlobStore) Upload(ctx context.Context, key string, body io.Reader, size int64, contentType string) error {
	_, err := b.uploader.Upload(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(b.bucket),
		Key:           aws.String(key),
		Body:          body,
		ContentLength: size,
		ContentType:   aws.String(contentType),
	})
	return err
}

// SignedURL returns a presigned GET URL for an object, valid for ttl.
func (b *BlobStore) SignedURL(ctx context.Context, key string, ttl time.Duration) (string, error) {
	req, err := b.presign.PresignGetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(b.bucket),
		Key:    aws.String(key),
	}, s3.WithPresignExpires(ttl))
	if err != nil {
		return "", err
	}
	return req.URL, nil
}

// Delete removes an object from the bucket.
func (b *BlobStore) Delete(ctx context.Context, key string) error {
	_, err := b.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(b.bucket),
		Key:    aws.String(key),
	})
	return err
}
