package protodto

type CreateFormInstanceRequest struct {
	PatientProtocolID string `json:"patient_protocol_id"`
	ProtocolFormID    string `json:"protocol_form_id"`
	// ScheduledDate is a calendar date (YYYY-MM-DD).
	ScheduledDate string `json:"scheduled_date"`
}

type FormInstance struct {
	ID                string `json:"id"`
	PatientProtocolID string `json:"patient_protocol_id"`
	ProtocolFormID    string `json:"protocol_form_id"`
	ScheduledDate     string `json:"scheduled_date"`
	OccurrenceIndex   int    `json:"occurrence_index"`
}

type CreateResponseRequest struct {
	FormInstanceID string  `json:"form_instance_id"`
	QuestionID     string  `json:"question_id"`
	AnswerText     string  `json:"answer_text"`
	AnswerOptionID *string `json:"answer_option_id"`
}
