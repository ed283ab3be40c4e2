package analysis

import (
	"bytes"
	"context"
	"encoding/csv"
	"strconv"

	"protrack-service/internal/app/contracts"
	"protrack-service/internal/app/models"
	"protrack-service/internal/pkg/constvars"
	"protrack-service/internal/pkg/dto/requests"
	"protrack-service/internal/pkg/dto/responses"
	"protrack-service/internal/pkg/exceptions"
	"protrack-service/internal/pkg/protodto"
	"protrack-service/internal/pkg/utils"

	"go.uber.org/zap"
)

type analysisUsecase struct {
	QuestionClient contracts.QuestionClient
	AnalysisClient contracts.AnalysisClient
	ObjectStorage  contracts.ObjectStorage
	ExportBucket   string
	Log            *zap.Logger
}

func NewAnalysisUsecase(
	questionClient contracts.QuestionClient,
	analysisClient contracts.AnalysisClient,
	objectStorage contracts.ObjectStorage,
	exportBucket string,
	log *zap.Logger,
) AnalysisUsecase {
	return &analysisUsecase{
		QuestionClient: questionClient,
		AnalysisClient: analysisClient,
		ObjectStorage:  objectStorage,
		ExportBucket:   exportBucket,
		Log:            log,
	}
}

func (uc *analysisUsecase) AnalyzeResponses(ctx context.Context, session *models.Session, request *requests.AnalyzeResponses) (*responses.AnalysisResult, error) {
	token := ""
	if session != nil {
		token = session.BackendToken
	}

	questionsByID, err := uc.loadConditionQuestions(ctx, token, request.Conditions)
	if err != nil {
		return nil, err
	}

	payload, err := BuildAnalysisPayload(questionsByID, request.Conditions, request.ResultFieldIDs)
	if err != nil {
		return nil, err
	}

	rows, err := uc.AnalysisClient.AnalyzeData(ctx, token, payload)
	if err != nil {
		return nil, err
	}

	return &responses.AnalysisResult{Rows: rows}, nil
}

func (uc *analysisUsecase) ExportAnalysis(ctx context.Context, session *models.Session, request *requests.AnalyzeResponses) (*responses.AnalysisExport, error) {
	result, err := uc.AnalyzeResponses(ctx, session, request)
	if err != nil {
		return nil, err
	}

	data, err := encodeRowsCSV(result.Rows)
	if err != nil {
		return nil, err
	}

	objectName := utils.GenerateExportObjectName()
	if _, err := uc.ObjectStorage.UploadObject(ctx, uc.ExportBucket, objectName, constvars.MIMETextCSV, bytes.NewReader(data), int64(len(data))); err != nil {
		return nil, err
	}

	return &responses.AnalysisExport{
		Bucket:     uc.ExportBucket,
		ObjectName: objectName,
		RowCount:   len(result.Rows),
	}, nil
}

// loadConditionQuestions fetches the question lists of every distinct form
// referenced by the conditions, keyed by question ID. One fetch per form;
// conditions on the same form share it.
func (uc *analysisUsecase) loadConditionQuestions(ctx context.Context, token string, conditions []requests.AnalysisCondition) (map[string]protodto.Question, error) {
	questionsByID := map[string]protodto.Question{}
	fetched := map[string]bool{}
	for _, condition := range conditions {
		if fetched[condition.FormID] {
			continue
		}
		questions, err := uc.QuestionClient.FindByFormID(ctx, token, condition.FormID)
		if err != nil {
			return nil, err
		}
		fetched[condition.FormID] = true
		for _, question := range questions {
			questionsByID[question.ID] = question
		}
	}
	return questionsByID, nil
}

func encodeRowsCSV(rows []protodto.AnalysisRow) ([]byte, error) {
	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)

	records := [][]string{{"patient_id", "question_id", "answer_text", "form_instance_id", "total"}}
	for _, row := range rows {
		records = append(records, []string{
			row.PatientID,
			row.QuestionID,
			row.AnswerText,
			row.FormInstanceID,
			strconv.Itoa(row.Total),
		})
	}

	if err := writer.WriteAll(records); err != nil {
		return nil, exceptions.ErrCannotMarshalJSON(err)
	}
	return buf.Bytes(), nil
}
