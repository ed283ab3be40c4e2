package analysisdata

import (
	"context"

	"protrack-service/internal/app/contracts"
	"protrack-service/internal/app/services/backend/restclient"
	"protrack-service/internal/pkg/constvars"
	"protrack-service/internal/pkg/protodto"
)

type analysisRestClient struct {
	client *restclient.Client
}

func NewAnalysisRestClient(client *restclient.Client) contracts.AnalysisClient {
	return &analysisRestClient{client: client}
}

func (c *analysisRestClient) AnalyzeData(ctx context.Context, token string, request *protodto.AnalysisRequest) ([]protodto.AnalysisRow, error) {
	var result []protodto.AnalysisRow
	err := c.client.PostJSON(ctx, token, constvars.BackendPathAnalyzeData, constvars.BackendResourceAnalysis, request, &result)
	if err != nil {
		return nil, err
	}
	return result, nil
}
