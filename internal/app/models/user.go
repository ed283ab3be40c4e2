package models

import "time"

type TimeModel struct {
	CreatedAt time.Time  `json:"createdAt" bson:"createdAt"`
	UpdatedAt time.Time  `json:"updatedAt" bson:"updatedAt"`
	DeletedAt *time.Time `json:"deletedAt,omitempty" bson:"deletedAt,omitempty"`
}

type User struct {
	ID        string `bson:"_id,omitempty"`
	Username  string `bson:"username"`
	Email     string `bson:"email"`
	Password  string `bson:"password"`
	Role      Role   `bson:"role"`
	PatientID string `bson:"patientId,omitempty"`
	TimeModel `bson:",inline"`
}
