package responses

import "protrack-service/internal/app/models"

type Login struct {
	Token        string              `json:"token"`
	Username     string              `json:"username"`
	Role         models.Role         `json:"role"`
	Capabilities models.Capabilities `json:"capabilities"`
	PatientID    string              `json:"patient_id,omitempty"`
}

type Register struct {
	UserID   string      `json:"user_id"`
	Username string      `json:"username"`
	Role     models.Role `json:"role"`
}
