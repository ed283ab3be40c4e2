package contracts

import (
	"context"

	"protrack-service/internal/pkg/protodto"
)

// PatientProtocolClient reads protocol assignments from the backend.
type PatientProtocolClient interface {
	FindByPatientID(ctx context.Context, token, patientID string) ([]protodto.PatientProtocol, error)
}

// ProtocolFormClient reads protocol-form definitions and the responded-forms
// set for a (protocol, patient) pair.
type ProtocolFormClient interface {
	FindByProtocolID(ctx context.Context, token, protocolID string) ([]protodto.ProtocolForm, error)
	FindRespondedForms(ctx context.Context, token, protocolID, patientID string) ([]protodto.RespondedForm, error)
}

// QuestionClient reads the ordered question list of one form.
type QuestionClient interface {
	FindByFormID(ctx context.Context, token, formID string) ([]protodto.Question, error)
}

// FormInstanceClient creates form instances. An instance is created exactly
// once per (assignment, protocol form, occurrence), the moment a patient
// begins submitting.
type FormInstanceClient interface {
	CreateFormInstance(ctx context.Context, token string, request *protodto.CreateFormInstanceRequest) (*protodto.FormInstance, error)
}

// ResponseClient submits one answer row per call.
type ResponseClient interface {
	CreateResponse(ctx context.Context, token string, request *protodto.CreateResponseRequest) error
}

// AnalysisClient runs the ad-hoc filtered analysis query.
type AnalysisClient interface {
	AnalyzeData(ctx context.Context, token string, request *protodto.AnalysisRequest) ([]protodto.AnalysisRow, error)
}
