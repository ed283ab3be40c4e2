package analysis

import (
	"context"
	"net/http"
	"time"

	"protrack-service/internal/app/models"
	"protrack-service/internal/pkg/constvars"
	"protrack-service/internal/pkg/dto/requests"
	"protrack-service/internal/pkg/exceptions"
	"protrack-service/internal/pkg/utils"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type AnalysisController struct {
	Log             *zap.Logger
	AnalysisUsecase AnalysisUsecase
}

func NewAnalysisController(logger *zap.Logger, analysisUsecase AnalysisUsecase) *AnalysisController {
	return &AnalysisController{
		Log:             logger,
		AnalysisUsecase: analysisUsecase,
	}
}

func (ctrl *AnalysisController) AnalyzeResponses(w http.ResponseWriter, r *http.Request) {
	request, session, ok := ctrl.decodeRequest(w, r)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	result, err := ctrl.AnalysisUsecase.AnalyzeResponses(ctx, session, request)
	if err != nil {
		ctrl.writeError(w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.AnalysisSuccessMessage, result)
}

func (ctrl *AnalysisController) ExportAnalysis(w http.ResponseWriter, r *http.Request) {
	request, session, ok := ctrl.decodeRequest(w, r)
	if !ok {
		return
	}

	// Export runs the query and streams the CSV to object storage; it can
	// outlive the plain query timeout.
	ctx, cancel := context.WithTimeout(r.Context(), 30*time.Second)
	defer cancel()

	result, err := ctrl.AnalysisUsecase.ExportAnalysis(ctx, session, request)
	if err != nil {
		ctrl.writeError(w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.AnalysisExportSuccessMessage, result)
}

func (ctrl *AnalysisController) decodeRequest(w http.ResponseWriter, r *http.Request) (*requests.AnalyzeResponses, *models.Session, bool) {
	request := new(requests.AnalyzeResponses)
	if err := json.NewDecoder(r.Body).Decode(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return nil, nil, false
	}
	if err := utils.ValidateStruct(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return nil, nil, false
	}

	session, _ := r.Context().Value(constvars.CONTEXT_SESSION_DATA_KEY).(*models.Session)
	return request, session, true
}

func (ctrl *AnalysisController) writeError(w http.ResponseWriter, err error) {
	if err == context.DeadlineExceeded {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
		return
	}
	utils.BuildErrorResponse(ctrl.Log, w, err)
}
