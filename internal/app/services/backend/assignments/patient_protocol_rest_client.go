package assignments

import (
	"context"
	"fmt"

	"protrack-service/internal/app/contracts"
	"protrack-service/internal/app/services/backend/restclient"
	"protrack-service/internal/pkg/constvars"
	"protrack-service/internal/pkg/protodto"
)

type patientProtocolRestClient struct {
	client *restclient.Client
}

func NewPatientProtocolRestClient(client *restclient.Client) contracts.PatientProtocolClient {
	return &patientProtocolRestClient{client: client}
}

func (c *patientProtocolRestClient) FindByPatientID(ctx context.Context, token, patientID string) ([]protodto.PatientProtocol, error) {
	var result []protodto.PatientProtocol
	path := fmt.Sprintf(constvars.BackendPathAssignmentsByPatient, patientID)
	err := c.client.GetJSON(ctx, token, path, constvars.BackendResourceAssignment, &result)
	if err != nil {
		return nil, err
	}
	return result, nil
}
