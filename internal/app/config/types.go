package config

type (
	DriverConfig struct {
		MongoDB  MongoDB
		Redis    Redis
		RabbitMQ RabbitMQ
		Minio    Minio
		Logger   Logger
	}
	MongoDB struct {
		Port     string
		Host     string
		DbName   string
		Username string
		Password string
	}
	Redis struct {
		Host     string
		Port     string
		Password string
	}
	RabbitMQ struct {
		Port     string
		Host     string
		Username string
		Password string
	}
	Minio struct {
		Port         string
		Host         string
		Username     string
		Password     string
		ExportBucket string
		UseSSL       bool
	}
	Logger struct {
		Level               string
		OutputFileName      string
		OutputErrorFileName string
	}
)

type (
	InternalConfig struct {
		App      App
		Backend  Backend
		JWT      JWT
		Protocol Protocol
	}
	App struct {
		Env             string
		Port            string
		Version         string
		Timezone        string
		EndpointPrefix  string
		MaxRequests     int
		ShutdownTimeout int
	}
	Backend struct {
		BaseUrl string
		// RequestTimeoutSeconds bounds every backend call; there is no
		// automatic retry, failures surface to the caller.
		RequestTimeoutSeconds int
		// RequestsPerSecond throttles outbound calls to the backend.
		RequestsPerSecond int
		// ServiceToken is the service account credential forwarded to the
		// backend on behalf of logged-in users. Empty means anonymous.
		ServiceToken string
	}
	JWT struct {
		Secret        string
		ExpTimeInHour int
	}
	Protocol struct {
		// ExpandRepeatOccurrences controls whether the resolver emits one
		// FormStatus per repeat occurrence or only occurrence 0. The backend's
		// responded-forms set cannot distinguish occurrences, so expansion is
		// off by default.
		ExpandRepeatOccurrences bool
		// RespondedCacheTTLSeconds bounds staleness of the cached
		// responded-forms set.
		RespondedCacheTTLSeconds int
	}
)
