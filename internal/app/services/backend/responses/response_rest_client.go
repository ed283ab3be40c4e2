package responses

import (
	"context"

	"protrack-service/internal/app/contracts"
	"protrack-service/internal/app/services/backend/restclient"
	"protrack-service/internal/pkg/constvars"
	"protrack-service/internal/pkg/protodto"
)

type responseRestClient struct {
	client *restclient.Client
}

func NewResponseRestClient(client *restclient.Client) contracts.ResponseClient {
	return &responseRestClient{client: client}
}

func (c *responseRestClient) CreateResponse(ctx context.Context, token string, request *protodto.CreateResponseRequest) error {
	return c.client.PostJSON(ctx, token, constvars.BackendPathResponses, constvars.BackendResourceResponse, request, nil)
}
