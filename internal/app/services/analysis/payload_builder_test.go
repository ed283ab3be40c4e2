package analysis

import (
	"testing"

	"protrack-service/internal/pkg/dto/requests"
	"protrack-service/internal/pkg/exceptions"
	"protrack-service/internal/pkg/protodto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func questionIndex(questions ...protodto.Question) map[string]protodto.Question {
	byID := make(map[string]protodto.Question, len(questions))
	for _, q := range questions {
		byID[q.ID] = q
	}
	return byID
}

func TestBuildAnalysisPayload(t *testing.T) {
	choiceQuestion := protodto.Question{
		ID:     "q-choice",
		FormID: "form-a",
		Type:   protodto.QuestionTypeSingleChoice,
		Options: []protodto.Option{
			{ID: "opt-yes", TextEs: "Sí", TextEn: "Yes"},
			{ID: "opt-no", TextEs: "No", TextEn: "No"},
		},
	}
	textQuestion := protodto.Question{
		ID:     "q-text",
		FormID: "form-b",
		Type:   protodto.QuestionTypeText,
	}

	t.Run("Option Condition Resolves To Spanish Display Text", func(t *testing.T) {
		optionID := "opt-yes"
		payload, err := BuildAnalysisPayload(
			questionIndex(choiceQuestion),
			[]requests.AnalysisCondition{{FormID: "form-a", QuestionID: "q-choice", SelectedOptionID: &optionID}},
			nil,
		)
		require.NoError(t, err)

		require.Len(t, payload.Filtros, 1)
		assert.Equal(t, "Sí", payload.Filtros[0].AnswerText)
	})

	t.Run("Free Text Condition Passes The Raw String", func(t *testing.T) {
		payload, err := BuildAnalysisPayload(
			questionIndex(textQuestion),
			[]requests.AnalysisCondition{{FormID: "form-b", QuestionID: "q-text", RawText: "dolor de cabeza"}},
			nil,
		)
		require.NoError(t, err)

		require.Len(t, payload.Filtros, 1)
		assert.Equal(t, "dolor de cabeza", payload.Filtros[0].AnswerText)
	})

	t.Run("Empty Value Emits An Empty String Filter", func(t *testing.T) {
		payload, err := BuildAnalysisPayload(
			questionIndex(textQuestion),
			[]requests.AnalysisCondition{{FormID: "form-b", QuestionID: "q-text", RawText: ""}},
			nil,
		)
		require.NoError(t, err)

		require.Len(t, payload.Filtros, 1)
		assert.Equal(t, "", payload.Filtros[0].AnswerText)
	})

	t.Run("Clause Form Comes From The Question Owning Form", func(t *testing.T) {
		// The condition's form hint points elsewhere; the owning form wins.
		payload, err := BuildAnalysisPayload(
			questionIndex(choiceQuestion),
			[]requests.AnalysisCondition{{FormID: "form-other", QuestionID: "q-choice", RawText: "x"}},
			nil,
		)
		require.NoError(t, err)

		require.Len(t, payload.Filtros, 1)
		assert.Equal(t, "form-a", payload.Filtros[0].IDForm)
	})

	t.Run("Empty Result Fields Stay Empty", func(t *testing.T) {
		payload, err := BuildAnalysisPayload(questionIndex(textQuestion), nil, nil)
		require.NoError(t, err)

		assert.NotNil(t, payload.Traer)
		assert.Empty(t, payload.Traer)
	})

	t.Run("Unknown Question Is Rejected", func(t *testing.T) {
		_, err := BuildAnalysisPayload(
			questionIndex(),
			[]requests.AnalysisCondition{{FormID: "form-a", QuestionID: "q-missing"}},
			nil,
		)

		var customErr *exceptions.CustomError
		require.ErrorAs(t, err, &customErr)
		assert.Equal(t, 400, customErr.StatusCode)
	})

	t.Run("Unknown Option Is Rejected", func(t *testing.T) {
		optionID := "opt-missing"
		_, err := BuildAnalysisPayload(
			questionIndex(choiceQuestion),
			[]requests.AnalysisCondition{{FormID: "form-a", QuestionID: "q-choice", SelectedOptionID: &optionID}},
			nil,
		)
		assert.Error(t, err)
	})
}
