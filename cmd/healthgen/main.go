package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"github.com/treadway/healthgen/internal/cloud"
	"github.com/treadway/healthgen/internal/pipeline"
	"github.com/treadway/healthgen/internal/progress"
	"github.com/treadway/healthgen/internal/synth"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "healthgen",
		Short: "Generate synthetic healthcare datasets and upload them to S3",
	}

	rootCmd.AddCommand(newRunCmd())
	rootCmd.AddCommand(newCloudSetupCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRunCmd() *cobra.Command {
	var (
		bucket       string
		region       string
		devRecords   int
		prodRecords  int
		seed         uint64
		windowStart  string
		compress     bool
		ensureBucket bool
		noProgress   bool
	)

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Generate patient, EHR, and claims datasets for dev and prod",
		RunE: func(cmd *cobra.Command, args []string) error {
			window, err := parseWindow(windowStart)
			if err != nil {
				return fmt.Errorf("parsing window start: %w", err)
			}
			if devRecords < 0 || prodRecords < 0 {
				return fmt.Errorf("record counts must be non-negative")
			}

			var mgr progress.Manager
			if noProgress {
				mgr = progress.NewLogManager()
			} else {
				mgr = progress.NewMPBManager()
			}

			// Handle signals
			ctx, cancel := context.WithCancel(context.Background())
			defer cancel()
			sigCh := make(chan os.Signal, 1)
			signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
			go func() {
				<-sigCh
				fmt.Fprintln(os.Stderr, "\nInterrupted, stopping...")
				cancel()
			}()

			gw, err := cloud.NewBucket(ctx, bucket, region)
			if err != nil {
				return err
			}

			cfg := pipeline.Config{
				Envs: []pipeline.Env{
					{Name: "dev", Records: devRecords},
					{Name: "prod", Records: prodRecords},
				},
				Seed:         seed,
				Window:       window,
				Compress:     compress,
				EnsureBucket: ensureBucket,
			}

			startTime := time.Now()
			if err := pipeline.Run(ctx, cfg, gw, mgr); err != nil {
				return err
			}

			fmt.Fprintf(os.Stderr, "\nGenerated %d dev and %d prod records per dataset in %.1fs\n",
				devRecords, prodRecords, time.Since(startTime).Seconds())
			fmt.Fprintf(os.Stderr, "Artifacts uploaded to s3://%s\n", gw.Name())
			return nil
		},
	}

	cmd.Flags().StringVar(&bucket, "bucket", "healthcare-data-bucket-treadway", "Destination S3 bucket")
	cmd.Flags().StringVar(&region, "region", "us-east-1", "AWS region")
	cmd.Flags().IntVar(&devRecords, "dev-records", 5000, "Record count for the dev tier")
	cmd.Flags().IntVar(&prodRecords, "prod-records", 20000, "Record count for the prod tier")
	cmd.Flags().Uint64Var(&seed, "seed", 0, "Random seed for reproducible datasets (0 = random)")
	cmd.Flags().StringVar(&windowStart, "window-start", "2020-01-01", "Earliest date sampled for any record")
	cmd.Flags().BoolVar(&compress, "compress", false, "Gzip the CSV and NDJSON artifacts before upload")
	cmd.Flags().BoolVar(&ensureBucket, "ensure-bucket", false, "Create the bucket if missing (failure aborts the run)")
	cmd.Flags().BoolVar(&noProgress, "no-progress", false, "Disable progress bars")

	return cmd
}

// parseWindow builds the record window from a YYYY-MM-DD start date; the
// window always ends at the current date.
func parseWindow(start string) (synth.Window, error) {
	startDate, err := time.Parse(synth.DateFormat, strings.TrimSpace(start))
	if err != nil {
		return synth.Window{}, err
	}
	window := synth.Window{Start: startDate.UTC(), End: time.Now().UTC()}
	if window.End.Before(window.Start) {
		return synth.Window{}, fmt.Errorf("window start %s is in the future", start)
	}
	return window, nil
}

func newCloudSetupCmd() *cobra.Command {
	var (
		region string
		bucket string
	)

	cmd := &cobra.Command{
		Use:   "cloud-setup",
		Short: "Provision the destination S3 bucket",
		RunE: func(cmd *cobra.Command, args []string) error {
			return cloud.Setup(context.Background(), cloud.SetupConfig{
				Region: region,
				Bucket: bucket,
			})
		},
	}

	cmd.Flags().StringVar(&region, "region", "us-east-1", "AWS region")
	cmd.Flags().StringVar(&bucket, "bucket", "healthcare-data-bucket-treadway", "S3 bucket to create")

	return cmd
}
