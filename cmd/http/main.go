package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"protrack-service/internal/app/config"
	"protrack-service/internal/app/delivery/http/middlewares"
	"protrack-service/internal/app/delivery/http/routers"
	"protrack-service/internal/app/drivers/database"
	"protrack-service/internal/app/drivers/logger"
	"protrack-service/internal/app/drivers/queue"
	minioDriver "protrack-service/internal/app/drivers/storage"
	"protrack-service/internal/app/services/analysis"
	"protrack-service/internal/app/services/auth"
	"protrack-service/internal/app/services/availability"
	"protrack-service/internal/app/services/backend/analysisdata"
	"protrack-service/internal/app/services/backend/assignments"
	"protrack-service/internal/app/services/backend/instances"
	"protrack-service/internal/app/services/backend/protocolforms"
	"protrack-service/internal/app/services/backend/questions"
	backendResponses "protrack-service/internal/app/services/backend/responses"
	"protrack-service/internal/app/services/backend/restclient"
	"protrack-service/internal/app/services/shared/events"
	"protrack-service/internal/app/services/shared/redis"
	"protrack-service/internal/app/services/shared/session"
	"protrack-service/internal/app/services/shared/storage"
	"protrack-service/internal/app/services/submissions"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()

	zapLogger := logger.NewZapLogger(driverConfig, internalConfig)
	defer zapLogger.Sync()

	location, err := time.LoadLocation(internalConfig.App.Timezone)
	if err != nil {
		log.Fatalf("Error loading location %s: %v", internalConfig.App.Timezone, err)
	}

	mongoDB := database.NewMongoDB(driverConfig)
	redisClient := database.NewRedisClient(driverConfig)
	rabbitConn := queue.NewRabbitMQConnection(driverConfig)
	minioClient := minioDriver.NewMinioClient(driverConfig)
	chiRouter := chi.NewRouter()

	bootstrapTheApp(config.Bootstrap{
		Router:         chiRouter,
		MongoDB:        mongoDB,
		Redis:          redisClient,
		RabbitMQ:       rabbitConn,
		Minio:          minioClient,
		Logger:         zapLogger,
		DriverConfig:   driverConfig,
		InternalConfig: internalConfig,
	}, location)

	server := &http.Server{
		Addr:    internalConfig.App.Port,
		Handler: chiRouter,
	}

	go func() {
		zapLogger.Info("server listening", zap.String("addr", internalConfig.App.Port))
		err := server.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)
	<-c

	zapLogger.Info("waiting for in-flight requests to finish")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Second*time.Duration(internalConfig.App.ShutdownTimeout),
	)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		zapLogger.Error("server shutdown failed", zap.Error(err))
	}
}

func bootstrapTheApp(bootstrap config.Bootstrap, location *time.Location) {
	// Shared infrastructure
	redisRepository := redis.NewRedisRepository(bootstrap.Redis)
	sessionService := session.NewSessionService(session.NewRedisStore(redisRepository))
	objectStorage := storage.NewMinioStorage(bootstrap.Minio)

	eventPublisher, err := events.NewRabbitEventPublisher(bootstrap.RabbitMQ, bootstrap.Logger)
	if err != nil {
		log.Fatalf("Failed to set up the event publisher: %v", err)
	}

	// Protocol backend clients
	backendClient := restclient.NewClient(bootstrap.InternalConfig.Backend)
	patientProtocolClient := assignments.NewPatientProtocolRestClient(backendClient)
	protocolFormClient := protocolforms.NewProtocolFormRestClient(backendClient)
	questionClient := questions.NewQuestionRestClient(backendClient)
	formInstanceClient := instances.NewFormInstanceRestClient(backendClient)
	responseClient := backendResponses.NewResponseRestClient(backendClient)
	analysisClient := analysisdata.NewAnalysisRestClient(backendClient)

	// Middlewares
	middlewares := middlewares.NewMiddlewares(bootstrap.Logger, sessionService, bootstrap.InternalConfig)

	// Auth
	userRepository := auth.NewUserMongoRepository(bootstrap.MongoDB, bootstrap.DriverConfig.MongoDB.DbName)
	authUsecase := auth.NewAuthUsecase(userRepository, sessionService, bootstrap.InternalConfig, bootstrap.Logger)
	authController := auth.NewAuthController(bootstrap.Logger, authUsecase)

	// Availability
	completionTracker := availability.NewCompletionTracker(
		protocolFormClient,
		redisRepository,
		bootstrap.InternalConfig.Protocol.RespondedCacheTTLSeconds,
		bootstrap.Logger,
	)
	availabilityUsecase := availability.NewAvailabilityUsecase(
		patientProtocolClient,
		protocolFormClient,
		completionTracker,
		bootstrap.InternalConfig,
		location,
		bootstrap.Logger,
	)
	availabilityController := availability.NewAvailabilityController(bootstrap.Logger, availabilityUsecase)

	// Submissions
	journalRepository := submissions.NewJournalMongoRepository(bootstrap.MongoDB, bootstrap.DriverConfig.MongoDB.DbName)
	submissionUsecase := submissions.NewSubmissionUsecase(
		questionClient,
		formInstanceClient,
		responseClient,
		journalRepository,
		eventPublisher,
		completionTracker,
		bootstrap.Logger,
	)
	submissionController := submissions.NewSubmissionController(bootstrap.Logger, submissionUsecase)

	// Analysis
	analysisUsecase := analysis.NewAnalysisUsecase(
		questionClient,
		analysisClient,
		objectStorage,
		bootstrap.DriverConfig.Minio.ExportBucket,
		bootstrap.Logger,
	)
	analysisController := analysis.NewAnalysisController(bootstrap.Logger, analysisUsecase)

	routers.SetupRoutes(
		bootstrap.Router,
		bootstrap.InternalConfig,
		middlewares,
		authController,
		availabilityController,
		submissionController,
		analysisController,
	)
}
