package models

import "time"

// Session is the explicit session object passed to collaborators instead of
// global browser-storage style state. BackendToken is forwarded to the
// protocol backend as a bearer token; it may be empty for anonymous reads.
type Session struct {
	SessionID    string    `json:"session_id"`
	UserID       string    `json:"user_id"`
	Username     string    `json:"username"`
	Role         Role      `json:"role"`
	PatientID    string    `json:"patient_id,omitempty"`
	BackendToken string    `json:"backend_token,omitempty"`
	ExpiresAt    time.Time `json:"expires_at"`
}
