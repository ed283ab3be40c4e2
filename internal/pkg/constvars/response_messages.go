package constvars

const (
	LoginSuccessMessage            = "Successfully logged in"
	RegisterSuccessMessage         = "Successfully registered user"
	LogoutSuccessMessage           = "Successfully logged out"
	FormListSuccessMessage         = "Successfully fetched patient forms"
	SubmitFormSuccessMessage       = "Successfully submitted form"
	SubmitFormPartialMessage       = "Form submitted, but some answers could not be saved"
	JournalListSuccessMessage      = "Successfully fetched submission journal"
	AnalysisSuccessMessage         = "Successfully analyzed responses"
	AnalysisExportSuccessMessage   = "Successfully exported analysis result"
	ResponseUnknown                = "unknown"
)
