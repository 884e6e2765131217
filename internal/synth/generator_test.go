package synth

import (
	"errors"
	"math"
	"reflect"
	"strings"
	"testing"
	"time"
)

func testWindow() Window {
	return Window{
		Start: time.Date(2020, time.January, 1, 0, 0, 0, 0, time.UTC),
		End:   time.Date(2024, time.June, 30, 0, 0, 0, 0, time.UTC),
	}
}

func TestPatients_CountAndUniqueIDs(t *testing.T) {
	for _, n := range []int{0, 1, 50} {
		g := NewGenerator(1, testWindow())
		patients, err := g.Patients(n)
		if err != nil {
			t.Fatalf("Patients(%d) failed: %v", n, err)
		}
		if len(patients) != n {
			t.Fatalf("Patients(%d) returned %d records", n, len(patients))
		}
		seen := make(map[string]struct{}, n)
		for _, p := range patients {
			if _, dup := seen[p.PatientID]; dup {
				t.Errorf("duplicate patient ID %s", p.PatientID)
			}
			seen[p.PatientID] = struct{}{}
		}
	}
}

func TestPatients_FieldRanges(t *testing.T) {
	g := NewGenerator(2, testWindow())
	patients, err := g.Patients(200)
	if err != nil {
		t.Fatalf("Patients failed: %v", err)
	}
	w := testWindow()
	for _, p := range patients {
		if p.Age < 0 || p.Age > 100 {
			t.Errorf("age %d out of range", p.Age)
		}
		if p.Gender != GenderMale && p.Gender != GenderFemale {
			t.Errorf("unexpected gender %q", p.Gender)
		}
		switch p.InsuranceType {
		case InsurancePrivate, InsuranceMedicare, InsuranceMedicaid:
		default:
			t.Errorf("unexpected insurance type %q", p.InsuranceType)
		}
		if p.FirstName == "" || p.LastName == "" || p.ZipCode == "" {
			t.Errorf("empty name or zip in %+v", p)
		}
		if p.RegistrationDate.Before(w.Start) || p.RegistrationDate.After(w.End) {
			t.Errorf("registration date %s outside window", p.RegistrationDate)
		}
	}
}

func TestVisits_EmptyPatientIDs(t *testing.T) {
	g := NewGenerator(3, testWindow())
	if _, err := g.Visits(10, nil); !errors.Is(err, ErrNoPatientIDs) {
		t.Fatalf("expected ErrNoPatientIDs, got %v", err)
	}
}

func TestVisits_Fields(t *testing.T) {
	g := NewGenerator(4, testWindow())
	ids := []string{"p-1", "p-2", "p-3"}
	visits, err := g.Visits(200, ids)
	if err != nil {
		t.Fatalf("Visits failed: %v", err)
	}
	if len(visits) != 200 {
		t.Fatalf("expected 200 visits, got %d", len(visits))
	}
	idSet := map[string]struct{}{"p-1": {}, "p-2": {}, "p-3": {}}
	for _, v := range visits {
		if _, ok := idSet[v.PatientID]; !ok {
			t.Errorf("visit references unknown patient %q", v.PatientID)
		}
		desc, err := v.DiagnosisCode.Description()
		if err != nil {
			t.Fatalf("Description(%s): %v", v.DiagnosisCode, err)
		}
		if v.DiagnosisDesc != desc {
			t.Errorf("code %s: desc %q does not match table value %q", v.DiagnosisCode, v.DiagnosisDesc, desc)
		}
		if v.HeartRate < 60 || v.HeartRate > 100 {
			t.Errorf("heart rate %d out of range", v.HeartRate)
		}
		if v.Temperature < 97.0 || v.Temperature > 99.5 {
			t.Errorf("temperature %v out of range", v.Temperature)
		}
		if math.Abs(v.Temperature*10-math.Round(v.Temperature*10)) > 1e-9 {
			t.Errorf("temperature %v has more than one decimal", v.Temperature)
		}
		parts := strings.Split(v.BloodPressure, "/")
		if len(parts) != 2 {
			t.Errorf("blood pressure %q is not systolic/diastolic", v.BloodPressure)
		}
		if _, err := time.Parse(DateFormat, v.VisitDate); err != nil {
			t.Errorf("visit date %q: %v", v.VisitDate, err)
		}
	}
}

func TestClaims_EmptyPatientIDs(t *testing.T) {
	g := NewGenerator(5, testWindow())
	if _, err := g.Claims(10, []string{}); !errors.Is(err, ErrNoPatientIDs) {
		t.Fatalf("expected ErrNoPatientIDs, got %v", err)
	}
}

func TestClaims_Fields(t *testing.T) {
	g := NewGenerator(6, testWindow())
	claims, err := g.Claims(200, []string{"p-1", "p-2"})
	if err != nil {
		t.Fatalf("Claims failed: %v", err)
	}
	seen := make(map[string]struct{})
	for _, c := range claims {
		for _, id := range []string{c.ClaimID, c.ProviderID} {
			if _, dup := seen[id]; dup {
				t.Errorf("duplicate identifier %s", id)
			}
			seen[id] = struct{}{}
		}
		if c.ClaimAmount < 100 || c.ClaimAmount > 5000 {
			t.Errorf("claim amount %v out of range", c.ClaimAmount)
		}
		cents := c.ClaimAmount * 100
		if math.Abs(cents-math.Round(cents)) > 1e-6 {
			t.Errorf("claim amount %v has more than two decimals", c.ClaimAmount)
		}
		h, m, s := c.ServiceDate.Clock()
		if h != 0 || m != 0 || s != 0 || c.ServiceDate.Nanosecond() != 0 {
			t.Errorf("service date %s has non-zero time of day", c.ServiceDate)
		}
		if c.DiagnosisCode == string(DiagGeneralExam) {
			t.Errorf("claims must not use the wellness exam code")
		}
		if _, err := DiagnosisCode(c.DiagnosisCode).Description(); err != nil {
			t.Errorf("claim diagnosis code %q: %v", c.DiagnosisCode, err)
		}
		switch ClaimStatus(c.Status) {
		case StatusPaid, StatusDenied, StatusPending:
		default:
			t.Errorf("unexpected status %q", c.Status)
		}
	}
}

func TestGenerator_Deterministic(t *testing.T) {
	a := NewGenerator(42, testWindow())
	b := NewGenerator(42, testWindow())

	pa, err := a.Patients(20)
	if err != nil {
		t.Fatalf("Patients failed: %v", err)
	}
	pb, err := b.Patients(20)
	if err != nil {
		t.Fatalf("Patients failed: %v", err)
	}
	if !reflect.DeepEqual(pa, pb) {
		t.Errorf("same seed produced different patients")
	}
}

// constReader always returns the same bytes, forcing every UUID to collide.
type constReader struct{}

func (constReader) Read(p []byte) (int, error) {
	for i := range p {
		p[i] = 0xAB
	}
	return len(p), nil
}

func TestIDAllocator_FailsFastOnCollisions(t *testing.T) {
	a := newIDAllocator(constReader{})
	if _, err := a.next(); err != nil {
		t.Fatalf("first allocation failed: %v", err)
	}
	if _, err := a.next(); err == nil {
		t.Fatal("expected collision exhaustion error, got nil")
	}
}

func TestDescription_UnknownCode(t *testing.T) {
	if _, err := DiagnosisCode("X99.9").Description(); err == nil {
		t.Fatal("expected error for unmapped code")
	}
}
