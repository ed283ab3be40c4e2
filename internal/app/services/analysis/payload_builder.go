package analysis

import (
	"protrack-service/internal/pkg/dto/requests"
	"protrack-service/internal/pkg/exceptions"
	"protrack-service/internal/pkg/protodto"
)

// BuildAnalysisPayload translates filter conditions into the backend's query
// body. The backend filters on the option's Spanish display text rather than
// its ID, and the "anwerText" field spelling is the backend's contract. Both
// quirks are preserved bit-exact.
func BuildAnalysisPayload(questionsByID map[string]protodto.Question, conditions []requests.AnalysisCondition, resultFieldIDs []string) (*protodto.AnalysisRequest, error) {
	filtros := make([]protodto.FilterClause, 0, len(conditions))
	for _, condition := range conditions {
		question, ok := questionsByID[condition.QuestionID]
		if !ok {
			return nil, exceptions.ErrUnknownAnalysisQuestion(condition.QuestionID)
		}

		answerText := condition.RawText
		if condition.SelectedOptionID != nil && question.Type.HasOptions() {
			option, ok := findOption(question, *condition.SelectedOptionID)
			if !ok {
				return nil, exceptions.ErrUnknownAnalysisOption(*condition.SelectedOptionID)
			}
			answerText = option.TextEs
		}

		// IDForm comes from the question's owning form, not the condition's
		// form hint. An empty answerText is a valid empty-string filter.
		filtros = append(filtros, protodto.FilterClause{
			IDForm:     question.FormID,
			IDQuestion: question.ID,
			AnswerText: answerText,
		})
	}

	traer := make([]string, 0, len(resultFieldIDs))
	traer = append(traer, resultFieldIDs...)

	return &protodto.AnalysisRequest{
		Filtros: filtros,
		Traer:   traer,
	}, nil
}

func findOption(question protodto.Question, optionID string) (protodto.Option, bool) {
	for _, option := range question.Options {
		if option.ID == optionID {
			return option, true
		}
	}
	return protodto.Option{}, false
}
