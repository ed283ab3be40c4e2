package responses

import (
	"protrack-service/internal/app/models"
	"protrack-service/internal/pkg/exceptions"
	"protrack-service/internal/pkg/protodto"
)

// SubmissionResult carries the created instance plus the per-answer outcome
// list, so the caller can retry exactly the answers that failed. Warning is
// set only when the submission was partial.
type SubmissionResult struct {
	FormInstance *protodto.FormInstance               `json:"form_instance"`
	Outcomes     []models.AnswerOutcome               `json:"outcomes"`
	Warning      *exceptions.PartialSubmissionWarning `json:"warning,omitempty"`
}
