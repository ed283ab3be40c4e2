package submissions

import (
	"context"

	"protrack-service/internal/app/models"
	"protrack-service/internal/pkg/dto/requests"
	"protrack-service/internal/pkg/dto/responses"
)

// SubmissionUsecase coordinates the instance-then-answers write sequence.
// Instance creation happens-before any answer submission; answers reference
// the instance's generated ID.
type SubmissionUsecase interface {
	SubmitForm(ctx context.Context, session *models.Session, request *requests.SubmitForm) (*responses.SubmissionResult, error)
	ListJournal(ctx context.Context, patientID string) ([]models.SubmissionJournalEntry, error)
}
