package models

// AnswerOutcome records whether one answer of a submission reached the
// backend. Failed outcomes keep the dev error so the caller can decide which
// answers to retry.
type AnswerOutcome struct {
	QuestionID string `json:"question_id" bson:"questionId"`
	Succeeded  bool   `json:"succeeded" bson:"succeeded"`
	Error      string `json:"error,omitempty" bson:"error,omitempty"`
}

type SubmissionJournalEntry struct {
	ID                string          `json:"id" bson:"_id"`
	PatientID         string          `json:"patient_id" bson:"patientId"`
	PatientProtocolID string          `json:"patient_protocol_id" bson:"patientProtocolId"`
	ProtocolFormID    string          `json:"protocol_form_id" bson:"protocolFormId"`
	FormInstanceID    string          `json:"form_instance_id" bson:"formInstanceId"`
	ScheduledDate     string          `json:"scheduled_date" bson:"scheduledDate"`
	Outcomes          []AnswerOutcome `json:"outcomes" bson:"outcomes"`
	TimeModel         `bson:",inline"`
}
