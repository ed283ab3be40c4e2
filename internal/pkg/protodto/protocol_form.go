package protodto

// ProtocolForm binds a form to a protocol with its scheduling metadata. The
// backend denormalizes the form's display names into the listing payload.
type ProtocolForm struct {
	ID                 string  `json:"id"`
	ProtocolID         string  `json:"protocol_id"`
	FormID             string  `json:"form_id"`
	DelayDays          int     `json:"delay_days"`
	RepeatCount        int     `json:"repeat_count"`
	RepeatIntervalDays int     `json:"repeat_interval_days"`
	OrderInProtocol    int     `json:"order_in_protocol"`
	PreviousFormID     *string `json:"previous_form_id,omitempty"`
	FormKeyName        string  `json:"form_key_name"`
	FormNameEs         string  `json:"form_name_es"`
	FormNameEn         string  `json:"form_name_en"`
}

// RespondedForm marks a form as already completed for a given
// (protocol, patient) pair. The backend keys this by form only; it does not
// report which occurrence was answered.
type RespondedForm struct {
	FormID string `json:"form_id"`
}
