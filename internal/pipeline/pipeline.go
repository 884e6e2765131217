package pipeline

import (
	"context"
	"fmt"

	"github.com/treadway/healthgen/internal/encode"
	"github.com/treadway/healthgen/internal/progress"
	"github.com/treadway/healthgen/internal/synth"
)

// Gateway is the storage contract the pipeline depends on. S3 satisfies
// it in production; tests use an in-memory fake.
type Gateway interface {
	EnsureBucket(ctx context.Context) error
	EmptyPrefix(ctx context.Context, prefix string) error
	Upload(ctx context.Context, key string, body []byte, contentType string) error
}

// Fixed artifact names within each environment prefix.
const (
	PatientFile = "patient_data.csv"
	EHRFile     = "ehr_data.json"
	ClaimsFile  = "claims_data.parquet"
)

// Env is one environment tier: its key prefix and record count.
type Env struct {
	Name    string
	Records int
}

// DefaultEnvs returns the standard dev and prod tiers.
func DefaultEnvs() []Env {
	return []Env{
		{Name: "dev", Records: 5000},
		{Name: "prod", Records: 20000},
	}
}

// Config holds one run's settings.
type Config struct {
	Envs         []Env
	Seed         uint64 // 0 means time-seeded
	Window       synth.Window
	Compress     bool // gzip the text artifacts before upload
	EnsureBucket bool // create the bucket; failure is fatal
}

// Run executes one generate-serialize-upload pass per environment,
// sequentially. A failed pass aborts the run; completed passes are not
// rolled back.
func Run(ctx context.Context, cfg Config, gw Gateway, mgr progress.Manager) error {
	if cfg.EnsureBucket {
		if err := gw.EnsureBucket(ctx); err != nil {
			return fmt.Errorf("ensuring bucket: %w", err)
		}
	}

	gen := synth.NewGenerator(cfg.Seed, cfg.Window)

	for i, env := range cfg.Envs {
		tracker := mgr.NewTracker(i, len(cfg.Envs), env.Name)
		err := runPass(ctx, env, cfg, gw, gen, tracker)
		tracker.Done() // bars must complete before Wait, even on failure
		if err != nil {
			mgr.Wait()
			return fmt.Errorf("%s pass: %w", env.Name, err)
		}
	}
	mgr.Wait()
	return nil
}

// passSteps is the number of tracked steps in one pass: clear, three
// generations, three uploads.
const passSteps = 7

func runPass(ctx context.Context, env Env, cfg Config, gw Gateway, gen *synth.Generator, tracker progress.Tracker) error {
	prefix := env.Name + "/"
	step := int64(0)
	advance := func(stage string) {
		tracker.SetStage(stage)
		tracker.SetProgress(step, passSteps)
		step++
	}

	advance("clearing " + prefix)
	if err := gw.EmptyPrefix(ctx, prefix); err != nil {
		return err
	}

	advance(fmt.Sprintf("generating %d patients", env.Records))
	patients, err := gen.Patients(env.Records)
	if err != nil {
		return err
	}
	patientIDs := make([]string, len(patients))
	for i, p := range patients {
		patientIDs[i] = p.PatientID
	}

	advance(fmt.Sprintf("generating %d visits", env.Records))
	visits, err := gen.Visits(env.Records, patientIDs)
	if err != nil {
		return err
	}

	advance(fmt.Sprintf("generating %d claims", env.Records))
	claims, err := gen.Claims(env.Records, patientIDs)
	if err != nil {
		return err
	}

	csvData, err := encode.PatientsCSV(patients)
	if err != nil {
		return err
	}
	advance("uploading " + PatientFile)
	if err := upload(ctx, gw, prefix, PatientFile, csvData, "text/csv", cfg.Compress); err != nil {
		return err
	}

	ndjsonData, err := encode.VisitsNDJSON(visits)
	if err != nil {
		return err
	}
	advance("uploading " + EHRFile)
	if err := upload(ctx, gw, prefix, EHRFile, ndjsonData, "application/json", cfg.Compress); err != nil {
		return err
	}

	parquetData, err := encode.ClaimsParquet(claims)
	if err != nil {
		return err
	}
	advance("uploading " + ClaimsFile)
	// Parquet compresses its own column chunks; never double-compressed.
	if err := upload(ctx, gw, prefix, ClaimsFile, parquetData, "application/octet-stream", false); err != nil {
		return err
	}

	advance("done")
	return nil
}

func upload(ctx context.Context, gw Gateway, prefix, name string, body []byte, contentType string, compress bool) error {
	if compress {
		compressed, err := encode.Gzip(body)
		if err != nil {
			return err
		}
		return gw.Upload(ctx, prefix+name+".gz", compressed, "application/gzip")
	}
	return gw.Upload(ctx, prefix+name, body, contentType)
}
