package constvars

// Resource names of the protocol backend, used in error messages and paths.
const (
	BackendResourceAssignment   = "PatientProtocol"
	BackendResourceProtocolForm = "ProtocolForm"
	BackendResourceResponded    = "RespondedForms"
	BackendResourceFormInstance = "FormInstance"
	BackendResourceQuestion     = "Question"
	BackendResourceResponse     = "Response"
	BackendResourceAnalysis     = "AnalysisData"
)

// Backend endpoint path formats, relative to the configured base URL.
const (
	BackendPathAssignmentsByPatient = "/patient-protocols/patient/%s"
	BackendPathProtocolForms        = "/protocols/%s/forms"
	BackendPathRespondedForms       = "/protocols/%s/responded/%s"
	BackendPathFormQuestions        = "/forms/%s/questions"
	BackendPathFormInstances        = "/form-instances"
	BackendPathResponses            = "/responses"
	BackendPathAnalyzeData          = "/responses/analizeData"
)
