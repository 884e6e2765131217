package synth

import "time"

// DateFormat is the calendar-date layout used in CSV and NDJSON output.
const DateFormat = "2006-01-02"

// Patient is one row of the demographics dataset.
type Patient struct {
	PatientID        string
	FirstName        string
	LastName         string
	Age              int
	Gender           Gender
	ZipCode          string
	InsuranceType    InsuranceType
	RegistrationDate time.Time
}

// Visit is one EHR visit record. Fields are shaped for one-object-per-line
// JSON output: dates are pre-formatted and no value may embed a newline.
type Visit struct {
	PatientID     string        `json:"patient_id"`
	VisitDate     string        `json:"visit_date"`
	DiagnosisCode DiagnosisCode `json:"diagnosis_code"`
	DiagnosisDesc string        `json:"diagnosis_desc"`
	HeartRate     int           `json:"heart_rate"`
	BloodPressure string        `json:"blood_pressure"`
	Temperature   float64       `json:"temperature"`
}

// Claim is one row of the claims dataset. The parquet tags declare the
// fixed 8-column schema; service_date is stored at millisecond precision
// with a zero time-of-day.
type Claim struct {
	ClaimID       string    `parquet:"claim_id"`
	PatientID     string    `parquet:"patient_id"`
	ProviderID    string    `parquet:"provider_id"`
	ServiceDate   time.Time `parquet:"service_date,timestamp(millisecond)"`
	DiagnosisCode string    `parquet:"diagnosis_code"`
	ProcedureCode string    `parquet:"procedure_code"`
	ClaimAmount   float64   `parquet:"claim_amount"`
	Status        string    `parquet:"status"`
}
