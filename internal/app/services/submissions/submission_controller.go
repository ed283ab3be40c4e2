package submissions

import (
	"context"
	"net/http"
	"time"

	"protrack-service/internal/app/models"
	"protrack-service/internal/pkg/constvars"
	"protrack-service/internal/pkg/dto/requests"
	"protrack-service/internal/pkg/exceptions"
	"protrack-service/internal/pkg/utils"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type SubmissionController struct {
	Log               *zap.Logger
	SubmissionUsecase SubmissionUsecase
}

func NewSubmissionController(logger *zap.Logger, submissionUsecase SubmissionUsecase) *SubmissionController {
	return &SubmissionController{
		Log:               logger,
		SubmissionUsecase: submissionUsecase,
	}
}

func (ctrl *SubmissionController) SubmitForm(w http.ResponseWriter, r *http.Request) {
	request := new(requests.SubmitForm)
	if err := json.NewDecoder(r.Body).Decode(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}
	if err := utils.ValidateStruct(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	session, _ := r.Context().Value(constvars.CONTEXT_SESSION_DATA_KEY).(*models.Session)
	// Patients only ever submit on their own behalf.
	if session != nil && session.Role == models.RolePatient && session.PatientID != request.PatientID {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrRoleNotPermitted(nil))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	result, err := ctrl.SubmissionUsecase.SubmitForm(ctx, session, request)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	message := constvars.SubmitFormSuccessMessage
	if result.Warning != nil {
		message = constvars.SubmitFormPartialMessage
	}
	utils.BuildSuccessResponse(w, constvars.StatusCreated, message, result)
}

func (ctrl *SubmissionController) GetPatientJournal(w http.ResponseWriter, r *http.Request) {
	patientID := chi.URLParam(r, "patient_id")

	session, _ := r.Context().Value(constvars.CONTEXT_SESSION_DATA_KEY).(*models.Session)
	if session != nil && session.Role == models.RolePatient && session.PatientID != patientID {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrRoleNotPermitted(nil))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	entries, err := ctrl.SubmissionUsecase.ListJournal(ctx, patientID)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.JournalListSuccessMessage, entries)
}
