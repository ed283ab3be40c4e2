package availability

import (
	"context"
	"net/http"
	"time"

	"protrack-service/internal/app/models"
	"protrack-service/internal/pkg/constvars"
	"protrack-service/internal/pkg/exceptions"
	"protrack-service/internal/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type AvailabilityController struct {
	Log                 *zap.Logger
	AvailabilityUsecase AvailabilityUsecase
}

func NewAvailabilityController(logger *zap.Logger, availabilityUsecase AvailabilityUsecase) *AvailabilityController {
	return &AvailabilityController{
		Log:                 logger,
		AvailabilityUsecase: availabilityUsecase,
	}
}

func (ctrl *AvailabilityController) GetPatientForms(w http.ResponseWriter, r *http.Request) {
	patientID := chi.URLParam(r, "patient_id")

	session, _ := r.Context().Value(constvars.CONTEXT_SESSION_DATA_KEY).(*models.Session)
	// Patients only ever see their own dashboard.
	if session != nil && session.Role == models.RolePatient && session.PatientID != patientID {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrRoleNotPermitted(nil))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	result, err := ctrl.AvailabilityUsecase.ResolveFormsForPatient(ctx, session, patientID)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.FormListSuccessMessage, result)
}
