package requests

type Login struct {
	Username string `json:"username" validate:"required,alphanum,min=3,max=32"`
	Password string `json:"password" validate:"required"`
}

type Register struct {
	Username  string `json:"username" validate:"required,alphanum,min=3,max=32"`
	Email     string `json:"email" validate:"required,email"`
	Password  string `json:"password" validate:"required,password"`
	Role      string `json:"role" validate:"required,role"`
	PatientID string `json:"patient_id"`
}
