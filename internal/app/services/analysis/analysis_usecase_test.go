package analysis

import (
	"context"
	"io"
	"strings"
	"testing"

	"protrack-service/internal/pkg/dto/requests"
	"protrack-service/internal/pkg/protodto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeQuestionClient struct {
	questionsByForm map[string][]protodto.Question
	calls           int
}

func (f *fakeQuestionClient) FindByFormID(ctx context.Context, token, formID string) ([]protodto.Question, error) {
	f.calls++
	return f.questionsByForm[formID], nil
}

type fakeAnalysisClient struct {
	lastRequest *protodto.AnalysisRequest
	rows        []protodto.AnalysisRow
}

func (f *fakeAnalysisClient) AnalyzeData(ctx context.Context, token string, request *protodto.AnalysisRequest) ([]protodto.AnalysisRow, error) {
	f.lastRequest = request
	return f.rows, nil
}

type fakeObjectStorage struct {
	bucket      string
	objectName  string
	contentType string
	data        []byte
}

func (f *fakeObjectStorage) UploadObject(ctx context.Context, bucketName, objectName, contentType string, data io.Reader, size int64) (string, error) {
	f.bucket = bucketName
	f.objectName = objectName
	f.contentType = contentType
	raw, err := io.ReadAll(data)
	if err != nil {
		return "", err
	}
	f.data = raw
	return objectName, nil
}

func TestAnalysisUsecase(t *testing.T) {
	optionID := "opt-yes"
	questions := &fakeQuestionClient{questionsByForm: map[string][]protodto.Question{
		"form-a": {
			{ID: "q-1", FormID: "form-a", Type: protodto.QuestionTypeSingleChoice,
				Options: []protodto.Option{{ID: optionID, TextEs: "Sí"}}},
			{ID: "q-2", FormID: "form-a", Type: protodto.QuestionTypeText},
		},
	}}

	t.Run("Builds Payload And Queries The Backend", func(t *testing.T) {
		backend := &fakeAnalysisClient{rows: []protodto.AnalysisRow{{PatientID: "patient-1", QuestionID: "q-2", AnswerText: "bien", Total: 3}}}
		uc := NewAnalysisUsecase(questions, backend, &fakeObjectStorage{}, "exports", zap.NewNop())

		result, err := uc.AnalyzeResponses(context.Background(), nil, &requests.AnalyzeResponses{
			Conditions: []requests.AnalysisCondition{
				{FormID: "form-a", QuestionID: "q-1", SelectedOptionID: &optionID},
			},
			ResultFieldIDs: []string{"q-2"},
		})
		require.NoError(t, err)

		require.NotNil(t, backend.lastRequest)
		require.Len(t, backend.lastRequest.Filtros, 1)
		assert.Equal(t, "Sí", backend.lastRequest.Filtros[0].AnswerText)
		assert.Equal(t, []string{"q-2"}, backend.lastRequest.Traer)
		require.Len(t, result.Rows, 1)
		assert.Equal(t, 3, result.Rows[0].Total)
	})

	t.Run("Fetches Each Form Once Across Conditions", func(t *testing.T) {
		questions.calls = 0
		backend := &fakeAnalysisClient{}
		uc := NewAnalysisUsecase(questions, backend, &fakeObjectStorage{}, "exports", zap.NewNop())

		_, err := uc.AnalyzeResponses(context.Background(), nil, &requests.AnalyzeResponses{
			Conditions: []requests.AnalysisCondition{
				{FormID: "form-a", QuestionID: "q-1", SelectedOptionID: &optionID},
				{FormID: "form-a", QuestionID: "q-2", RawText: "bien"},
			},
		})
		require.NoError(t, err)
		assert.Equal(t, 1, questions.calls)
	})

	t.Run("Export Writes A CSV Object", func(t *testing.T) {
		backend := &fakeAnalysisClient{rows: []protodto.AnalysisRow{
			{PatientID: "patient-1", QuestionID: "q-2", AnswerText: "bien", FormInstanceID: "instance-1", Total: 3},
		}}
		storage := &fakeObjectStorage{}
		uc := NewAnalysisUsecase(questions, backend, storage, "exports", zap.NewNop())

		result, err := uc.ExportAnalysis(context.Background(), nil, &requests.AnalyzeResponses{
			Conditions: []requests.AnalysisCondition{
				{FormID: "form-a", QuestionID: "q-1", SelectedOptionID: &optionID},
			},
		})
		require.NoError(t, err)

		assert.Equal(t, "exports", result.Bucket)
		assert.Equal(t, storage.objectName, result.ObjectName)
		assert.Equal(t, 1, result.RowCount)
		assert.Equal(t, "text/csv", storage.contentType)

		lines := strings.Split(strings.TrimSpace(string(storage.data)), "\n")
		require.Len(t, lines, 2)
		assert.Equal(t, "patient_id,question_id,answer_text,form_instance_id,total", lines[0])
		assert.Equal(t, "patient-1,q-2,bien,instance-1,3", lines[1])
	})
}
