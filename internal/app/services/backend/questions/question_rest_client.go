package questions

import (
	"context"
	"fmt"

	"protrack-service/internal/app/contracts"
	"protrack-service/internal/app/services/backend/restclient"
	"protrack-service/internal/pkg/constvars"
	"protrack-service/internal/pkg/protodto"
)

type questionRestClient struct {
	client *restclient.Client
}

func NewQuestionRestClient(client *restclient.Client) contracts.QuestionClient {
	return &questionRestClient{client: client}
}

func (c *questionRestClient) FindByFormID(ctx context.Context, token, formID string) ([]protodto.Question, error) {
	var result []protodto.Question
	path := fmt.Sprintf(constvars.BackendPathFormQuestions, formID)
	err := c.client.GetJSON(ctx, token, path, constvars.BackendResourceQuestion, &result)
	if err != nil {
		return nil, err
	}
	return result, nil
}
