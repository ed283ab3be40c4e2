package availability

import (
	"context"

	"protrack-service/internal/app/models"
	"protrack-service/internal/pkg/dto/responses"
)

type AvailabilityUsecase interface {
	ResolveFormsForPatient(ctx context.Context, session *models.Session, patientID string) (*responses.PatientForms, error)
}

// CompletionTracker answers whether a scheduled occurrence was already
// answered, from the backend's responded-forms set.
type CompletionTracker interface {
	RespondedSet(ctx context.Context, token, protocolID, patientID string) (map[string]bool, error)
	IsCompleted(ctx context.Context, token, protocolID, patientID, formID string, occurrenceIndex int) (bool, error)
	Invalidate(ctx context.Context, protocolID, patientID string) error
}
