package requests

// AnalysisCondition filters on one question. A condition may reference a
// question from any form, not just one currently selected filter form.
type AnalysisCondition struct {
	FormID           string  `json:"form_id" validate:"required"`
	QuestionID       string  `json:"question_id" validate:"required"`
	SelectedOptionID *string `json:"selected_option_id"`
	RawText          string  `json:"raw_text"`
}

type AnalyzeResponses struct {
	Conditions     []AnalysisCondition `json:"conditions" validate:"dive"`
	ResultFieldIDs []string            `json:"result_field_ids"`
}
