package exceptions

import (
	"strings"

	"protrack-service/internal/pkg/constvars"
)

// MissingRequiredAnswersError reports every unanswered required question at
// once, not just the first one encountered.
type MissingRequiredAnswersError struct {
	CustomError
	MissingQuestionIDs []string `json:"missing_question_ids"`
}

func (e *MissingRequiredAnswersError) Unwrap() error {
	return &e.CustomError
}

func ErrMissingRequiredAnswers(questionIDs []string) *MissingRequiredAnswersError {
	return &MissingRequiredAnswersError{
		CustomError: CustomError{
			StatusCode:    constvars.StatusBadRequest,
			ClientMessage: constvars.ErrClientMissingRequiredAnswers,
			DevMessage:    constvars.ErrDevMissingRequiredAnswers + ": " + strings.Join(questionIDs, ","),
			Location:      getLocation(2),
		},
		MissingQuestionIDs: questionIDs,
	}
}

// PartialSubmissionWarning is surfaced to the caller when the form instance
// was created but one or more answers failed to save. It is carried inside a
// success response, never as the top-level error.
type PartialSubmissionWarning struct {
	FormInstanceID    string   `json:"form_instance_id"`
	FailedQuestionIDs []string `json:"failed_question_ids"`
	Message           string   `json:"message"`
}

func NewPartialSubmissionWarning(formInstanceID string, failedQuestionIDs []string) *PartialSubmissionWarning {
	return &PartialSubmissionWarning{
		FormInstanceID:    formInstanceID,
		FailedQuestionIDs: failedQuestionIDs,
		Message:           constvars.SubmitFormPartialMessage,
	}
}
