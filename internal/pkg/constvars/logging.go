package constvars

const (
	LoggingRequestIDKey    = "request_id"
	LoggingMethodKey       = "method"
	LoggingEndpointKey     = "endpoint"
	LoggingRemoteAddrKey   = "remote_addr"
	LoggingUserAgentKey    = "user_agent"
	LoggingQueryKey        = "query"
	LoggingStatusCodeKey   = "status_code"
	LoggingDurationKey     = "duration"
	LoggingSuccessKey      = "success"
	LoggingOperationKey    = "operation"
	LoggingProtocolIDKey   = "protocol_id"
	LoggingPatientIDKey    = "patient_id"
	LoggingQuestionIDKey   = "question_id"
	LoggingInstanceIDKey   = "form_instance_id"
	LoggingErrorCodeKey    = "error_code"
	LoggingErrorMessageKey = "error_message"
)
