package submissions

import (
	"context"
	"time"

	"protrack-service/internal/app/contracts"
	"protrack-service/internal/app/models"
	"protrack-service/internal/app/services/availability"
	"protrack-service/internal/pkg/constvars"
	"protrack-service/internal/pkg/dto/requests"
	"protrack-service/internal/pkg/dto/responses"
	"protrack-service/internal/pkg/exceptions"
	"protrack-service/internal/pkg/protodto"
	"protrack-service/internal/pkg/utils"

	"go.uber.org/zap"
)

type submissionUsecase struct {
	QuestionClient     contracts.QuestionClient
	FormInstanceClient contracts.FormInstanceClient
	ResponseClient     contracts.ResponseClient
	JournalRepository  contracts.JournalRepository
	EventPublisher     contracts.EventPublisher
	CompletionTracker  availability.CompletionTracker
	Log                *zap.Logger

	now func() time.Time
}

func NewSubmissionUsecase(
	questionClient contracts.QuestionClient,
	formInstanceClient contracts.FormInstanceClient,
	responseClient contracts.ResponseClient,
	journalRepository contracts.JournalRepository,
	eventPublisher contracts.EventPublisher,
	completionTracker availability.CompletionTracker,
	log *zap.Logger,
) SubmissionUsecase {
	return &submissionUsecase{
		QuestionClient:     questionClient,
		FormInstanceClient: formInstanceClient,
		ResponseClient:     responseClient,
		JournalRepository:  journalRepository,
		EventPublisher:     eventPublisher,
		CompletionTracker:  completionTracker,
		Log:                log,
		now:                time.Now,
	}
}

// SubmitForm validates every required question up front, creates the form
// instance, then submits answers one by one. A failed answer never aborts the
// rest; partial submission is an accepted outcome surfaced as a warning, not
// an error.
func (uc *submissionUsecase) SubmitForm(ctx context.Context, session *models.Session, request *requests.SubmitForm) (*responses.SubmissionResult, error) {
	token := ""
	if session != nil {
		token = session.BackendToken
	}

	questions, err := uc.QuestionClient.FindByFormID(ctx, token, request.FormID)
	if err != nil {
		return nil, err
	}

	if missing := missingRequiredQuestionIDs(questions, request.Answers); len(missing) > 0 {
		return nil, exceptions.ErrMissingRequiredAnswers(missing)
	}

	instance, err := uc.FormInstanceClient.CreateFormInstance(ctx, token, &protodto.CreateFormInstanceRequest{
		PatientProtocolID: request.PatientProtocolID,
		ProtocolFormID:    request.ProtocolFormID,
		ScheduledDate:     request.ScheduledDate,
	})
	if err != nil {
		return nil, err
	}

	outcomes := make([]models.AnswerOutcome, 0, len(request.Answers))
	failedQuestionIDs := []string{}
	for _, answer := range request.Answers {
		err := uc.ResponseClient.CreateResponse(ctx, token, &protodto.CreateResponseRequest{
			FormInstanceID: instance.ID,
			QuestionID:     answer.QuestionID,
			AnswerText:     answer.AnswerText,
			AnswerOptionID: answer.AnswerOptionID,
		})
		if err != nil {
			uc.Log.Warn("answer submission failed, continuing with the rest",
				zap.String(constvars.LoggingInstanceIDKey, instance.ID),
				zap.String(constvars.LoggingQuestionIDKey, answer.QuestionID),
				zap.Error(err),
			)
			outcomes = append(outcomes, models.AnswerOutcome{
				QuestionID: answer.QuestionID,
				Succeeded:  false,
				Error:      err.Error(),
			})
			failedQuestionIDs = append(failedQuestionIDs, answer.QuestionID)
			continue
		}
		outcomes = append(outcomes, models.AnswerOutcome{
			QuestionID: answer.QuestionID,
			Succeeded:  true,
		})
	}

	uc.journalAttempt(ctx, instance, request, outcomes)
	uc.publishSubmitted(ctx, instance, request, failedQuestionIDs)

	if err := uc.CompletionTracker.Invalidate(ctx, request.ProtocolID, request.PatientID); err != nil {
		uc.Log.Warn("responded-set cache invalidation failed",
			zap.String(constvars.LoggingProtocolIDKey, request.ProtocolID),
			zap.String(constvars.LoggingPatientIDKey, request.PatientID),
			zap.Error(err),
		)
	}

	result := &responses.SubmissionResult{
		FormInstance: instance,
		Outcomes:     outcomes,
	}
	if len(failedQuestionIDs) > 0 {
		result.Warning = exceptions.NewPartialSubmissionWarning(instance.ID, failedQuestionIDs)
	}
	return result, nil
}

func (uc *submissionUsecase) ListJournal(ctx context.Context, patientID string) ([]models.SubmissionJournalEntry, error) {
	return uc.JournalRepository.FindByPatientID(ctx, patientID)
}

// journalAttempt records the submission outcome for cross-session retry. The
// answers already live in the backend, so a journal failure only logs.
func (uc *submissionUsecase) journalAttempt(ctx context.Context, instance *protodto.FormInstance, request *requests.SubmitForm, outcomes []models.AnswerOutcome) {
	now := uc.now()
	entry := &models.SubmissionJournalEntry{
		ID:                utils.GenerateJournalID(),
		PatientID:         request.PatientID,
		PatientProtocolID: request.PatientProtocolID,
		ProtocolFormID:    request.ProtocolFormID,
		FormInstanceID:    instance.ID,
		ScheduledDate:     request.ScheduledDate,
		Outcomes:          outcomes,
		TimeModel:         models.TimeModel{CreatedAt: now, UpdatedAt: now},
	}
	if err := uc.JournalRepository.CreateEntry(ctx, entry); err != nil {
		uc.Log.Error("failed to journal submission attempt",
			zap.String(constvars.LoggingInstanceIDKey, instance.ID),
			zap.Error(err),
		)
	}
}

func (uc *submissionUsecase) publishSubmitted(ctx context.Context, instance *protodto.FormInstance, request *requests.SubmitForm, failedQuestionIDs []string) {
	event := &contracts.FormSubmittedEvent{
		PatientID:         request.PatientID,
		PatientProtocolID: request.PatientProtocolID,
		ProtocolFormID:    request.ProtocolFormID,
		FormInstanceID:    instance.ID,
		FailedQuestionIDs: failedQuestionIDs,
	}
	if err := uc.EventPublisher.PublishFormSubmitted(ctx, event); err != nil {
		uc.Log.Error("failed to publish form submitted event",
			zap.String(constvars.LoggingInstanceIDKey, instance.ID),
			zap.Error(err),
		)
	}
}

// missingRequiredQuestionIDs collects every unanswered required question, in
// the form's question order, so the caller sees the full list at once.
func missingRequiredQuestionIDs(questions []protodto.Question, answers []requests.SubmitAnswer) []string {
	answered := make(map[string]bool, len(answers))
	for _, answer := range answers {
		if answer.AnswerText != "" || answer.AnswerOptionID != nil {
			answered[answer.QuestionID] = true
		}
	}

	missing := []string{}
	for _, question := range questions {
		if question.IsRequired && !answered[question.ID] {
			missing = append(missing, question.ID)
		}
	}
	return missing
}
