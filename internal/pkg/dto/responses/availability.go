package responses

import "protrack-service/internal/app/models"

// PatientForms is the best-effort resolution result. Errors lists protocols
// that could not be resolved; their absence from Forms is not a hard failure.
type PatientForms struct {
	PatientID string              `json:"patient_id"`
	Forms     []models.FormStatus `json:"forms"`
	Errors    []string            `json:"errors,omitempty"`
}
