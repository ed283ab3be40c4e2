package routers

import (
	"protrack-service/internal/app/delivery/http/middlewares"
	"protrack-service/internal/app/models"
	"protrack-service/internal/app/services/analysis"

	"github.com/go-chi/chi/v5"
)

func attachAnalysisRoutes(router chi.Router, middlewares *middlewares.Middlewares, analysisController *analysis.AnalysisController) {
	canView := middlewares.RequireCapability(func(c models.Capabilities) bool { return c.CanView })

	router.With(middlewares.Authenticate, canView).Post("/", analysisController.AnalyzeResponses)
	router.With(middlewares.Authenticate, canView).Post("/export", analysisController.ExportAnalysis)
}
