package config

import (
	"protrack-service/internal/pkg/utils"

	"github.com/joho/godotenv"
)

func init() {
	godotenv.Load()
}

func NewDriverConfig() *DriverConfig {
	return &DriverConfig{
		MongoDB: MongoDB{
			Port:     utils.GetEnvString("MONGODB_PORT", "27017"),
			Host:     utils.GetEnvString("MONGODB_HOST", "localhost"),
			DbName:   utils.GetEnvString("MONGODB_DB_NAME", "protrack"),
			Username: utils.GetEnvString("MONGODB_USERNAME", "defaultUsername"),
			Password: utils.GetEnvString("MONGODB_PASSWORD", "defaultPassword"),
		},
		Redis: Redis{
			Host:     utils.GetEnvString("REDIS_HOST", "localhost"),
			Port:     utils.GetEnvString("REDIS_PORT", "6379"),
			Password: utils.GetEnvString("REDIS_PASSWORD", ""),
		},
		RabbitMQ: RabbitMQ{
			Port:     utils.GetEnvString("RABBITMQ_PORT", "5672"),
			Host:     utils.GetEnvString("RABBITMQ_HOST", "localhost"),
			Username: utils.GetEnvString("RABBITMQ_USERNAME", "guest"),
			Password: utils.GetEnvString("RABBITMQ_PASSWORD", "guest"),
		},
		Minio: Minio{
			Port:         utils.GetEnvString("MINIO_PORT", "9000"),
			Host:         utils.GetEnvString("MINIO_HOST", "localhost"),
			Username:     utils.GetEnvString("MINIO_USERNAME", "defaultUsername"),
			Password:     utils.GetEnvString("MINIO_PASSWORD", "defaultPassword"),
			ExportBucket: utils.GetEnvString("MINIO_EXPORT_BUCKET", "analysis-exports"),
			UseSSL:       utils.GetEnvBool("MINIO_USE_SSL", false),
		},
		Logger: Logger{
			Level:               utils.GetEnvString("LOGGER_LEVEL", "debug"),
			OutputFileName:      utils.GetEnvString("LOGGER_OUTPUT_FILENAME", "logger.log"),
			OutputErrorFileName: utils.GetEnvString("LOGGER_OUTPUT_ERROR_FILENAME", "logger_error.log"),
		},
	}
}

func NewInternalConfig() *InternalConfig {
	return &InternalConfig{
		App: App{
			Env:             utils.GetEnvString("APP_ENV", "development"),
			Port:            utils.GetEnvString("APP_PORT", ":8080"),
			Version:         utils.GetEnvString("APP_VERSION", "v1"),
			Timezone:        utils.GetEnvString("APP_TIMEZONE", "America/Montevideo"),
			EndpointPrefix:  utils.GetEnvString("APP_ENDPOINT_PREFIX", "api"),
			MaxRequests:     utils.GetEnvInt("APP_MAX_REQUEST", 10),
			ShutdownTimeout: utils.GetEnvInt("APP_SHUTDOWN_TIMEOUT", 10),
		},
		Backend: Backend{
			BaseUrl:               utils.GetEnvString("BACKEND_BASE_URL", "http://localhost:3000/api"),
			RequestTimeoutSeconds: utils.GetEnvInt("BACKEND_REQUEST_TIMEOUT_SECONDS", 10),
			RequestsPerSecond:     utils.GetEnvInt("BACKEND_REQUESTS_PER_SECOND", 20),
			ServiceToken:          utils.GetEnvString("BACKEND_SERVICE_TOKEN", ""),
		},
		JWT: JWT{
			Secret:        utils.GetEnvString("JWT_SECRET", "anyjwt"),
			ExpTimeInHour: utils.GetEnvInt("JWT_EXP_TIME_IN_HOUR", 1),
		},
		Protocol: Protocol{
			ExpandRepeatOccurrences:  utils.GetEnvBool("PROTOCOL_EXPAND_REPEAT_OCCURRENCES", false),
			RespondedCacheTTLSeconds: utils.GetEnvInt("PROTOCOL_RESPONDED_CACHE_TTL_SECONDS", 60),
		},
	}
}
