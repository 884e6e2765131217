package cloud

import (
	"context"
	"fmt"
)

// SetupConfig holds configuration for standalone bucket provisioning.
type SetupConfig struct {
	Region string
	Bucket string
}

// Setup provisions the destination bucket ahead of a pipeline run. The
// run command itself assumes the bucket exists unless told otherwise, so
// this is the explicit provisioning step.
func Setup(ctx context.Context, cfg SetupConfig) error {
	bucket, err := NewBucket(ctx, cfg.Bucket, cfg.Region)
	if err != nil {
		return err
	}

	fmt.Printf("Creating S3 bucket %s...\n", cfg.Bucket)
	if err := bucket.EnsureBucket(ctx); err != nil {
		return fmt.Errorf("provisioning bucket: %w", err)
	}
	fmt.Println("  Ready.")
	return nil
}
