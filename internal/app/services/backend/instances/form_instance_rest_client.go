package instances

import (
	"context"

	"protrack-service/internal/app/contracts"
	"protrack-service/internal/app/services/backend/restclient"
	"protrack-service/internal/pkg/constvars"
	"protrack-service/internal/pkg/protodto"
)

type formInstanceRestClient struct {
	client *restclient.Client
}

func NewFormInstanceRestClient(client *restclient.Client) contracts.FormInstanceClient {
	return &formInstanceRestClient{client: client}
}

func (c *formInstanceRestClient) CreateFormInstance(ctx context.Context, token string, request *protodto.CreateFormInstanceRequest) (*protodto.FormInstance, error) {
	instance := new(protodto.FormInstance)
	err := c.client.PostJSON(ctx, token, constvars.BackendPathFormInstances, constvars.BackendResourceFormInstance, request, instance)
	if err != nil {
		return nil, err
	}
	return instance, nil
}
