package synth

import (
	crand "crypto/rand"
	"errors"
	"fmt"
	"io"
	"math"
	mrand "math/rand"
	"time"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/google/uuid"
)

// ErrNoPatientIDs is returned when visit or claim generation is asked to
// reference an empty patient set.
var ErrNoPatientIDs = errors.New("patient ID list is empty")

// maxIDAttempts bounds the retries for a colliding identifier before the
// allocator gives up. At UUIDv4 volumes a single retry is already
// unexpected; hitting the bound means the entropy source is broken.
const maxIDAttempts = 100

// Window is the historical date range all synthetic dates are drawn from.
type Window struct {
	Start time.Time
	End   time.Time
}

// DefaultWindow returns the standard record window: 2020-01-01 through today.
func DefaultWindow() Window {
	return Window{
		Start: time.Date(2020, time.January, 1, 0, 0, 0, 0, time.UTC),
		End:   time.Now().UTC(),
	}
}

// Generator produces synthetic healthcare records. All randomness flows
// through the injected faker and ID source, so a fixed seed yields a
// reproducible dataset.
type Generator struct {
	faker  *gofakeit.Faker
	ids    *idAllocator
	window Window
}

// NewGenerator creates a generator over the given date window.
// A zero seed draws entropy from the OS; any other seed is deterministic.
func NewGenerator(seed uint64, window Window) *Generator {
	var idSrc io.Reader = crand.Reader
	if seed != 0 {
		idSrc = mrand.New(mrand.NewSource(int64(seed)))
	}
	return &Generator{
		faker:  gofakeit.New(seed),
		ids:    newIDAllocator(idSrc),
		window: window,
	}
}

// Patients generates n patient demographic records with pairwise-unique
// identifiers.
func (g *Generator) Patients(n int) ([]Patient, error) {
	patients := make([]Patient, 0, n)
	for i := 0; i < n; i++ {
		id, err := g.ids.next()
		if err != nil {
			return nil, fmt.Errorf("allocating patient ID: %w", err)
		}
		patients = append(patients, Patient{
			PatientID:        id,
			FirstName:        g.faker.FirstName(),
			LastName:         g.faker.LastName(),
			Age:              g.faker.IntRange(0, 100),
			Gender:           pick(g.faker, genders),
			ZipCode:          g.faker.Zip(),
			InsuranceType:    pick(g.faker, insuranceTypes),
			RegistrationDate: g.dateInWindow(),
		})
	}
	return patients, nil
}

// Visits generates n EHR visit records, each referencing a patient ID
// sampled with replacement from patientIDs.
func (g *Generator) Visits(n int, patientIDs []string) ([]Visit, error) {
	if len(patientIDs) == 0 {
		return nil, fmt.Errorf("generating visits: %w", ErrNoPatientIDs)
	}
	visits := make([]Visit, 0, n)
	for i := 0; i < n; i++ {
		code := pick(g.faker, visitDiagnosisCodes)
		desc, err := code.Description()
		if err != nil {
			return nil, fmt.Errorf("generating visits: %w", err)
		}
		visits = append(visits, Visit{
			PatientID:     pick(g.faker, patientIDs),
			VisitDate:     g.dateInWindow().Format(DateFormat),
			DiagnosisCode: code,
			DiagnosisDesc: desc,
			HeartRate:     g.faker.IntRange(60, 100),
			BloodPressure: fmt.Sprintf("%d/%d", g.faker.IntRange(110, 140), g.faker.IntRange(70, 90)),
			Temperature:   round1(g.faker.Float64Range(97.0, 99.5)),
		})
	}
	return visits, nil
}

// Claims generates n claim records, each referencing a patient ID sampled
// with replacement from patientIDs. Claim and provider identifiers are
// unique within the generator's lifetime.
func (g *Generator) Claims(n int, patientIDs []string) ([]Claim, error) {
	if len(patientIDs) == 0 {
		return nil, fmt.Errorf("generating claims: %w", ErrNoPatientIDs)
	}
	claims := make([]Claim, 0, n)
	for i := 0; i < n; i++ {
		claimID, err := g.ids.next()
		if err != nil {
			return nil, fmt.Errorf("allocating claim ID: %w", err)
		}
		providerID, err := g.ids.next()
		if err != nil {
			return nil, fmt.Errorf("allocating provider ID: %w", err)
		}
		claims = append(claims, Claim{
			ClaimID:       claimID,
			PatientID:     pick(g.faker, patientIDs),
			ProviderID:    providerID,
			ServiceDate:   g.dateInWindow(), // already midnight UTC
			DiagnosisCode: string(pick(g.faker, claimDiagnosisCodes)),
			ProcedureCode: pick(g.faker, procedureCodes),
			ClaimAmount:   round2(g.faker.Float64Range(100, 5000)),
			Status:        string(pick(g.faker, claimStatuses)),
		})
	}
	return claims, nil
}

// dateInWindow samples a calendar date from the window, truncated to
// midnight UTC.
func (g *Generator) dateInWindow() time.Time {
	d := g.faker.DateRange(g.window.Start, g.window.End).UTC()
	return time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, time.UTC)
}

func pick[T any](f *gofakeit.Faker, choices []T) T {
	return choices[f.IntRange(0, len(choices)-1)]
}

func round1(v float64) float64 { return math.Round(v*10) / 10 }
func round2(v float64) float64 { return math.Round(v*100) / 100 }

// idAllocator hands out UUIDv4 strings, tracking every issued value and
// failing fast on repeated collisions instead of looping forever.
type idAllocator struct {
	src  io.Reader
	seen map[string]struct{}
}

func newIDAllocator(src io.Reader) *idAllocator {
	return &idAllocator{src: src, seen: make(map[string]struct{})}
}

func (a *idAllocator) next() (string, error) {
	for attempt := 0; attempt < maxIDAttempts; attempt++ {
		id, err := uuid.NewRandomFromReader(a.src)
		if err != nil {
			return "", fmt.Errorf("reading ID entropy: %w", err)
		}
		s := id.String()
		if _, dup := a.seen[s]; dup {
			continue
		}
		a.seen[s] = struct{}{}
		return s, nil
	}
	return "", fmt.Errorf("no unique ID after %d attempts", maxIDAttempts)
}
