package contracts

import (
	"context"

	"protrack-service/internal/app/models"
)

type JournalRepository interface {
	CreateEntry(ctx context.Context, entry *models.SubmissionJournalEntry) error
	FindByPatientID(ctx context.Context, patientID string) ([]models.SubmissionJournalEntry, error)
}
