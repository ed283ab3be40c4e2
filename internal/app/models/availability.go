package models

// AvailabilityState is the derived status of one scheduled form occurrence.
// It is always recomputed from the current date, never persisted.
type AvailabilityState string

const (
	AvailabilityCompleted AvailabilityState = "completed"
	AvailabilityAvailable AvailabilityState = "available"
	AvailabilityPending   AvailabilityState = "pending"
)

type AvailabilityStatus struct {
	State AvailabilityState `json:"state"`
	// AvailableDate is the calendar date (YYYY-MM-DD) from which this
	// occurrence may be completed.
	AvailableDate string `json:"available_date"`
	// DaysUntil is only meaningful while State is pending.
	DaysUntil int `json:"days_until,omitempty"`
}

type FormStatus struct {
	FormID            string             `json:"form_id"`
	Title             string             `json:"title"`
	ProtocolID        string             `json:"protocol_id"`
	ProtocolFormID    string             `json:"protocol_form_id"`
	PatientProtocolID string             `json:"patient_protocol_id"`
	OccurrenceIndex   int                `json:"occurrence_index"`
	Status            AvailabilityStatus `json:"status"`
}
