package cloud

import (
	"bytes"
	"context"
	"errors"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	s3types "github.com/aws/aws-sdk-go-v2/service/s3/types"
)

// Bucket wraps the S3 operations the pipeline needs: bucket provisioning,
// prefix clearing, and byte uploads.
type Bucket struct {
	client *s3.Client
	name   string
	region string
}

// NewBucket creates an S3-backed storage gateway for the named bucket.
func NewBucket(ctx context.Context, name, region string) (*Bucket, error) {
	cfg, err := config.LoadDefaultConfig(ctx, config.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("loading AWS config: %w", err)
	}

	return &Bucket{
		client: s3.NewFromConfig(cfg),
		name:   name,
		region: region,
	}, nil
}

// Name returns the bucket name.
func (b *Bucket) Name() string { return b.name }

// EnsureBucket creates the bucket if it does not already exist. A bucket
// that exists and is owned by the caller is not an error.
func (b *Bucket) EnsureBucket(ctx context.Context) error {
	input := &s3.CreateBucketInput{
		Bucket: aws.String(b.name),
	}
	if b.region != "us-east-1" {
		input.CreateBucketConfiguration = &s3types.CreateBucketConfiguration{
			LocationConstraint: s3types.BucketLocationConstraint(b.region),
		}
	}

	_, err := b.client.CreateBucket(ctx, input)
	var owned *s3types.BucketAlreadyOwnedByYou
	if errors.As(err, &owned) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("creating bucket %s: %w", b.name, err)
	}
	return nil
}

// EmptyPrefix deletes every object under the given key prefix.
func (b *Bucket) EmptyPrefix(ctx context.Context, prefix string) error {
	paginator := s3.NewListObjectsV2Paginator(b.client, &s3.ListObjectsV2Input{
		Bucket: aws.String(b.name),
		Prefix: aws.String(prefix),
	})

	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return fmt.Errorf("listing objects under %s: %w", prefix, err)
		}
		for _, obj := range page.Contents {
			_, err := b.client.DeleteObject(ctx, &s3.DeleteObjectInput{
				Bucket: aws.String(b.name),
				Key:    obj.Key,
			})
			if err != nil {
				return fmt.Errorf("deleting %s: %w", aws.ToString(obj.Key), err)
			}
		}
	}
	return nil
}

// Upload stores a payload at the given key with the declared content type.
func (b *Bucket) Upload(ctx context.Context, key string, body []byte, contentType string) error {
	_, err := b.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(b.name),
		Key:         aws.String(key),
		Body:        bytes.NewReader(body),
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return fmt.Errorf("uploading %s: %w", key, err)
	}
	return nil
}
