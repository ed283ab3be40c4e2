package contracts

import "context"

// EventPublisher emits domain events to the message broker. Publish failures
// must never fail the operation that produced the event.
type EventPublisher interface {
	PublishFormSubmitted(ctx context.Context, event *FormSubmittedEvent) error
}

type FormSubmittedEvent struct {
	PatientID         string   `json:"patient_id"`
	PatientProtocolID string   `json:"patient_protocol_id"`
	ProtocolFormID    string   `json:"protocol_form_id"`
	FormInstanceID    string   `json:"form_instance_id"`
	FailedQuestionIDs []string `json:"failed_question_ids,omitempty"`
}
