package synth

import "fmt"

// DiagnosisCode is an ICD-10 code from the closed set this generator emits.
type DiagnosisCode string

const (
	DiagDiabetes     DiagnosisCode = "E11.9"
	DiagHypertension DiagnosisCode = "I10"
	DiagAsthma       DiagnosisCode = "J45"
	DiagKidney       DiagnosisCode = "N18.9"
	DiagGeneralExam  DiagnosisCode = "Z00.0"
)

// visitDiagnosisCodes are the codes sampled for EHR visits.
var visitDiagnosisCodes = []DiagnosisCode{
	DiagDiabetes,
	DiagHypertension,
	DiagAsthma,
	DiagKidney,
	DiagGeneralExam,
}

// claimDiagnosisCodes are the codes sampled for claims (no wellness exams).
var claimDiagnosisCodes = []DiagnosisCode{
	DiagDiabetes,
	DiagHypertension,
	DiagAsthma,
	DiagKidney,
}

// diagnosisDescriptions maps every code in the closed set to its
// human-readable description. Adding a code without a description here
// makes Description return an error rather than emitting a blank field.
var diagnosisDescriptions = map[DiagnosisCode]string{
	DiagDiabetes:     "Type 2 diabetes mellitus",
	DiagHypertension: "Essential hypertension",
	DiagAsthma:       "Asthma",
	DiagKidney:       "Chronic kidney disease",
	DiagGeneralExam:  "General medical exam",
}

// Description returns the human-readable description for the code.
func (c DiagnosisCode) Description() (string, error) {
	desc, ok := diagnosisDescriptions[c]
	if !ok {
		return "", fmt.Errorf("diagnosis code %q has no description mapping", string(c))
	}
	return desc, nil
}

// procedureCodes are CPT codes sampled for claims.
var procedureCodes = []string{"99213", "80053", "83036", "93000"}

// Gender values emitted for patients.
type Gender string

const (
	GenderMale   Gender = "Male"
	GenderFemale Gender = "Female"
)

var genders = []Gender{GenderMale, GenderFemale}

// InsuranceType values emitted for patients.
type InsuranceType string

const (
	InsurancePrivate  InsuranceType = "Private"
	InsuranceMedicare InsuranceType = "Medicare"
	InsuranceMedicaid InsuranceType = "Medicaid"
)

var insuranceTypes = []InsuranceType{InsurancePrivate, InsuranceMedicare, InsuranceMedicaid}

// ClaimStatus values emitted for claims.
type ClaimStatus string

const (
	StatusPaid    ClaimStatus = "Paid"
	StatusDenied  ClaimStatus = "Denied"
	StatusPending ClaimStatus = "Pending"
)

var claimStatuses = []ClaimStatus{StatusPaid, StatusDenied, StatusPending}
