package requests

type SubmitAnswer struct {
	QuestionID     string  `json:"question_id" validate:"required"`
	AnswerText     string  `json:"answer_text"`
	AnswerOptionID *string `json:"answer_option_id"`
}

type SubmitForm struct {
	PatientID         string         `json:"patient_id" validate:"required"`
	ProtocolID        string         `json:"protocol_id" validate:"required"`
	PatientProtocolID string         `json:"patient_protocol_id" validate:"required"`
	ProtocolFormID    string         `json:"protocol_form_id" validate:"required"`
	FormID            string         `json:"form_id" validate:"required"`
	ScheduledDate     string         `json:"scheduled_date" validate:"required,datetime=2006-01-02"`
	Answers           []SubmitAnswer `json:"answers" validate:"dive"`
}
