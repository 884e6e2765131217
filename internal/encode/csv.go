package encode

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strconv"

	"github.com/treadway/healthgen/internal/synth"
)

// patientHeader is the fixed column order of the patient CSV artifact.
var patientHeader = []string{
	"patient_id", "first_name", "last_name", "age",
	"gender", "zip_code", "insurance_type", "registration_date",
}

// PatientsCSV serializes patients to a CSV table with a header row.
func PatientsCSV(patients []synth.Patient) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(patientHeader); err != nil {
		return nil, fmt.Errorf("writing CSV header: %w", err)
	}
	for _, p := range patients {
		row := []string{
			p.PatientID,
			p.FirstName,
			p.LastName,
			strconv.Itoa(p.Age),
			string(p.Gender),
			p.ZipCode,
			string(p.InsuranceType),
			p.RegistrationDate.Format(synth.DateFormat),
		}
		if err := w.Write(row); err != nil {
			return nil, fmt.Errorf("writing CSV row: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("flushing CSV: %w", err)
	}
	return buf.Bytes(), nil
}
