package protocolforms

import (
	"context"
	"fmt"

	"protrack-service/internal/app/contracts"
	"protrack-service/internal/app/services/backend/restclient"
	"protrack-service/internal/pkg/constvars"
	"protrack-service/internal/pkg/protodto"
)

type protocolFormRestClient struct {
	client *restclient.Client
}

func NewProtocolFormRestClient(client *restclient.Client) contracts.ProtocolFormClient {
	return &protocolFormRestClient{client: client}
}

func (c *protocolFormRestClient) FindByProtocolID(ctx context.Context, token, protocolID string) ([]protodto.ProtocolForm, error) {
	var result []protodto.ProtocolForm
	path := fmt.Sprintf(constvars.BackendPathProtocolForms, protocolID)
	err := c.client.GetJSON(ctx, token, path, constvars.BackendResourceProtocolForm, &result)
	if err != nil {
		return nil, err
	}
	return result, nil
}

func (c *protocolFormRestClient) FindRespondedForms(ctx context.Context, token, protocolID, patientID string) ([]protodto.RespondedForm, error) {
	var result []protodto.RespondedForm
	path := fmt.Sprintf(constvars.BackendPathRespondedForms, protocolID, patientID)
	err := c.client.GetJSON(ctx, token, path, constvars.BackendResourceResponded, &result)
	if err != nil {
		return nil, err
	}
	return result, nil
}
