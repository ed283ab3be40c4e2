package constvars

type ContextKey string

const (
	CONTEXT_REQUEST_ID_KEY           ContextKey = "request_id"
	CONTEXT_SESSION_DATA_KEY         ContextKey = "session_data"
	CONTEXT_IS_CLIENT_REQUEST_ID_KEY ContextKey = "is_client_request_id"
)

const (
	REQUEST_ID_PREFIX = "PRTRK_SVC_"
)

const (
	ProtrackRoleAdmin   = "Admin"
	ProtrackRoleEditor  = "Editor"
	ProtrackRoleViewer  = "Viewer"
	ProtrackRolePatient = "Patient"
)

const (
	ResourceAuth        = "auth"
	ResourceUsers       = "users"
	ResourcePatients    = "patients"
	ResourceSubmissions = "submissions"
	ResourceAnalysis    = "analysis"
)

const (
	RedisKeyRespondedSetFormat = "responded:%s:%s"
	RedisKeySessionFormat      = "session:%s"
)

const (
	MongoCollectionUsers   = "users"
	MongoCollectionJournal = "submission_journal"
)
