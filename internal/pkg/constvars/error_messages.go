package constvars

// Client-facing messages
const (
	ErrClientSomethingWrongWithApplication = "Something went wrong with the application, please try again later"
	ErrClientCannotProcessRequest          = "Cannot process your request, please check your input"
	ErrClientNotAuthorized                 = "You are not authorized to perform this action"
	ErrClientNotLoggedIn                   = "You are not logged in, please log in first"
	ErrClientInvalidUsernameOrPassword     = "Invalid username or password"
	ErrClientServerLongRespond             = "The server took too long to respond, please try again"
	ErrClientBackendUnavailable            = "The protocol service is temporarily unavailable, please try again"
	ErrClientResourceNotFound              = "The requested resource was not found"
	ErrClientMissingRequiredAnswers        = "Some required questions have not been answered"
)

// Developer-facing messages
const (
	ErrDevValidationFailed         = "VALIDATION_FAILED"
	ErrDevCannotParseJSON          = "CANNOT_PARSE_JSON"
	ErrDevCannotMarshalJSON        = "CANNOT_MARSHAL_JSON"
	ErrDevCreateHTTPRequest        = "FAILED_TO_CREATE_HTTP_REQUEST"
	ErrDevSendHTTPRequest          = "FAILED_TO_SEND_HTTP_REQUEST"
	ErrDevDecodeBackendResponse    = "FAILED_TO_DECODE_BACKEND_RESPONSE"
	ErrDevBackendRejectedRequest   = "BACKEND_REJECTED_REQUEST"
	ErrDevBackendResourceNotFound  = "BACKEND_RESOURCE_NOT_FOUND"
	ErrDevServerDeadlineExceeded   = "SERVER_DEADLINE_EXCEEDED"
	ErrDevAuthTokenMissing         = "AUTH_TOKEN_MISSING"
	ErrDevAuthTokenInvalid         = "AUTH_TOKEN_INVALID"
	ErrDevAuthTokenInvalidOrExpired = "AUTH_TOKEN_INVALID_OR_EXPIRED"
	ErrDevAuthGenerateToken        = "FAILED_TO_GENERATE_AUTH_TOKEN"
	ErrDevAuthSigningMethod        = "UNEXPECTED_JWT_SIGNING_METHOD"
	ErrDevAuthInvalidSession       = "INVALID_SESSION"
	ErrDevInvalidCredentials       = "INVALID_CREDENTIALS"
	ErrDevFailedToHashPassword     = "FAILED_TO_HASH_PASSWORD"
	ErrDevInvalidRoleType          = "INVALID_ROLE_TYPE"
	ErrDevRoleNotPermitted         = "ROLE_NOT_PERMITTED"
	ErrDevUserNotExists            = "USER_NOT_EXISTS"
	ErrDevUsernameAlreadyExists    = "USERNAME_ALREADY_EXISTS"
	ErrDevMissingRequiredAnswers   = "MISSING_REQUIRED_ANSWERS"
	ErrDevUnknownAnalysisQuestion  = "ANALYSIS_UNKNOWN_QUESTION_%s"
	ErrDevUnknownAnalysisOption    = "ANALYSIS_UNKNOWN_OPTION_%s"
	ErrDevDBFailedToFindDocument   = "DB_FAILED_TO_FIND_DOCUMENT"
	ErrDevDBFailedToInsertDocument = "DB_FAILED_TO_INSERT_DOCUMENT"
	ErrDevDBFailedToUpdateDocument = "DB_FAILED_TO_UPDATE_DOCUMENT"
	ErrDevDBFailedToIterateDocuments = "DB_FAILED_TO_ITERATE_DOCUMENTS"
	ErrDevRedisGetData             = "REDIS_FAILED_TO_GET_DATA"
	ErrDevRedisSetData             = "REDIS_FAILED_TO_SET_DATA"
	ErrDevRedisDeleteData          = "REDIS_FAILED_TO_DELETE_DATA"
	ErrDevMinioFailedToCreateObject = "MINIO_FAILED_TO_CREATE_OBJECT_IN_BUCKET_%s"
	ErrDevRabbitMQPublishMessage   = "RABBITMQ_FAILED_TO_PUBLISH_MESSAGE_TO_%s"
)

// Validation messages mapper
var CustomValidationErrorMessages = map[string]string{
	"required": "is required",
	"email":    "must be a valid email",
	"alphanum": "must contain only alphanumeric characters",
	"min":      "must be at least %s characters long",
	"max":      "maximum at %s characters long",
	"numeric":  "must be a number",
	"oneof":    "must be one of [%s]",
	"gte":      "must be greater than or equal to %s",
	"datetime": "must be a valid date",
	"password": "must be at least 8 characters long, contain at least one special character, and one uppercase letter",
	"role":     "must be a known role",
}

// Tags that require parameter substitution
var TagsWithParams = map[string]bool{
	"min":   true,
	"max":   true,
	"oneof": true,
	"gte":   true,
}
