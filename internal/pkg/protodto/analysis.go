package protodto

// FilterClause is one condition of the ad-hoc analysis query. The backend
// filters on display text, not option IDs, and the "anwerText" spelling is
// the backend's actual contract; it must be preserved bit-exact.
type FilterClause struct {
	IDForm     string `json:"idForm"`
	IDQuestion string `json:"idQuestion"`
	AnswerText string `json:"anwerText"`
}

// AnalysisRequest is the body of POST /responses/analizeData. An empty Traer
// list means "return all fields" downstream and must not be defaulted.
type AnalysisRequest struct {
	Filtros []FilterClause `json:"filtros"`
	Traer   []string       `json:"traer"`
}

type AnalysisRow struct {
	PatientID      string `json:"patient_id"`
	QuestionID     string `json:"question_id"`
	AnswerText     string `json:"answer_text"`
	FormInstanceID string `json:"form_instance_id"`
	Total          int    `json:"total"`
}
