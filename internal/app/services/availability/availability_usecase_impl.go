package availability

import (
	"context"
	"fmt"
	"time"

	"protrack-service/internal/app/config"
	"protrack-service/internal/app/contracts"
	"protrack-service/internal/app/models"
	"protrack-service/internal/app/services/schedule"
	"protrack-service/internal/pkg/constvars"
	"protrack-service/internal/pkg/dto/responses"
	"protrack-service/internal/pkg/protodto"
	"protrack-service/internal/pkg/utils"

	"go.uber.org/zap"
)

type availabilityUsecase struct {
	PatientProtocolClient contracts.PatientProtocolClient
	ProtocolFormClient    contracts.ProtocolFormClient
	CompletionTracker     CompletionTracker
	InternalConfig        *config.InternalConfig
	Location              *time.Location
	Log                   *zap.Logger

	now func() time.Time
}

func NewAvailabilityUsecase(
	patientProtocolClient contracts.PatientProtocolClient,
	protocolFormClient contracts.ProtocolFormClient,
	completionTracker CompletionTracker,
	internalConfig *config.InternalConfig,
	location *time.Location,
	log *zap.Logger,
) AvailabilityUsecase {
	return &availabilityUsecase{
		PatientProtocolClient: patientProtocolClient,
		ProtocolFormClient:    protocolFormClient,
		CompletionTracker:     completionTracker,
		InternalConfig:        internalConfig,
		Location:              location,
		Log:                   log,
		now:                   time.Now,
	}
}

// ResolveFormsForPatient aggregates every scheduled form occurrence of every
// protocol assigned to the patient. One broken protocol degrades to an entry
// in Errors; it never blanks the whole list. The aggregated list carries no
// ordering guarantee; callers sort as needed.
func (uc *availabilityUsecase) ResolveFormsForPatient(ctx context.Context, session *models.Session, patientID string) (*responses.PatientForms, error) {
	token := ""
	if session != nil {
		token = session.BackendToken
	}

	assignments, err := uc.PatientProtocolClient.FindByPatientID(ctx, token, patientID)
	if err != nil {
		return nil, err
	}

	result := &responses.PatientForms{
		PatientID: patientID,
		Forms:     []models.FormStatus{},
	}

	for _, assignment := range assignments {
		statuses, err := uc.resolveProtocol(ctx, token, patientID, assignment)
		if err != nil {
			uc.Log.Warn("skipping protocol during availability resolution",
				zap.String(constvars.LoggingPatientIDKey, patientID),
				zap.String(constvars.LoggingProtocolIDKey, assignment.ProtocolID),
				zap.Error(err),
			)
			result.Errors = append(result.Errors, fmt.Sprintf("protocol %s could not be resolved", assignment.ProtocolID))
			continue
		}
		result.Forms = append(result.Forms, statuses...)
	}

	return result, nil
}

func (uc *availabilityUsecase) resolveProtocol(ctx context.Context, token, patientID string, assignment protodto.PatientProtocol) ([]models.FormStatus, error) {
	startDate, err := utils.ParseCalendarDate(assignment.StartDate, uc.Location)
	if err != nil {
		return nil, fmt.Errorf("invalid start date %q: %w", assignment.StartDate, err)
	}

	protocolForms, err := uc.ProtocolFormClient.FindByProtocolID(ctx, token, assignment.ProtocolID)
	if err != nil {
		return nil, err
	}

	// One responded-set fetch per protocol, shared by all its forms.
	respondedSet, err := uc.CompletionTracker.RespondedSet(ctx, token, assignment.ProtocolID, patientID)
	if err != nil {
		return nil, err
	}

	now := uc.now()
	var statuses []models.FormStatus
	for _, protocolForm := range protocolForms {
		occurrences := 1
		if uc.InternalConfig.Protocol.ExpandRepeatOccurrences && protocolForm.RepeatCount > 1 {
			occurrences = protocolForm.RepeatCount
		}

		for k := 0; k < occurrences; k++ {
			availability, err := schedule.ComputeAvailability(startDate, protocolForm.DelayDays, k, protocolForm.RepeatIntervalDays, now, uc.Location)
			if err != nil {
				return nil, err
			}

			status := models.AvailabilityStatus{
				AvailableDate: utils.FormatCalendarDate(availability.AvailableDate),
			}
			switch {
			// Completed wins regardless of date math.
			case respondedSet[protocolForm.FormID]:
				status.State = models.AvailabilityCompleted
			case availability.Available:
				status.State = models.AvailabilityAvailable
			default:
				status.State = models.AvailabilityPending
				status.DaysUntil = availability.DaysUntil
			}

			statuses = append(statuses, models.FormStatus{
				FormID:            protocolForm.FormID,
				Title:             formTitle(protocolForm),
				ProtocolID:        assignment.ProtocolID,
				ProtocolFormID:    protocolForm.ID,
				PatientProtocolID: assignment.ID,
				OccurrenceIndex:   k,
				Status:            status,
			})
		}
	}

	return statuses, nil
}

func formTitle(protocolForm protodto.ProtocolForm) string {
	if protocolForm.FormNameEs != "" {
		return protocolForm.FormNameEs
	}
	return protocolForm.FormNameEn
}
