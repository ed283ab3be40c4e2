package protodto

// PatientProtocol is a protocol assignment as served by the backend. The
// backend cascades deletion of responses when an assignment is removed, so
// IDs must never be reused locally.
type PatientProtocol struct {
	ID         string `json:"id"`
	PatientID  string `json:"patient_id"`
	ProtocolID string `json:"protocol_id"`
	// StartDate is a calendar date (YYYY-MM-DD), no time-of-day component.
	StartDate string `json:"start_date"`
}
