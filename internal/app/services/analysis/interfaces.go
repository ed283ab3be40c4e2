package analysis

import (
	"context"

	"protrack-service/internal/app/models"
	"protrack-service/internal/pkg/dto/requests"
	"protrack-service/internal/pkg/dto/responses"
)

type AnalysisUsecase interface {
	AnalyzeResponses(ctx context.Context, session *models.Session, request *requests.AnalyzeResponses) (*responses.AnalysisResult, error)
	ExportAnalysis(ctx context.Context, session *models.Session, request *requests.AnalyzeResponses) (*responses.AnalysisExport, error)
}
