package routers

import (
	"fmt"
	"time"

	"protrack-service/internal/app/config"
	"protrack-service/internal/app/delivery/http/middlewares"
	"protrack-service/internal/app/services/analysis"
	"protrack-service/internal/app/services/auth"
	"protrack-service/internal/app/services/availability"
	"protrack-service/internal/app/services/submissions"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
)

func SetupRoutes(
	router *chi.Mux,
	internalConfig *config.InternalConfig,
	middlewares *middlewares.Middlewares,
	authController *auth.AuthController,
	availabilityController *availability.AvailabilityController,
	submissionController *submissions.SubmissionController,
	analysisController *analysis.AnalysisController,
) {
	corsOptions := cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Request-ID"},
		ExposedHeaders:   []string{"Link", "X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           300,
	}
	router.Use(cors.Handler(corsOptions))

	router.Use(httprate.LimitByIP(internalConfig.App.MaxRequests, time.Second))

	router.Use(middlewares.RequestIDMiddleware)
	router.Use(middlewares.Logging)

	endpointPrefix := fmt.Sprintf("/%s", internalConfig.App.EndpointPrefix)
	versionPrefix := fmt.Sprintf("/%s", internalConfig.App.Version)

	router.Route(endpointPrefix, func(r chi.Router) {
		r.Route(versionPrefix, func(r chi.Router) {
			r.Route("/auth", func(r chi.Router) {
				attachAuthRoutes(r, middlewares, authController)
			})

			r.Route("/patients", func(r chi.Router) {
				attachPatientRoutes(r, middlewares, availabilityController, submissionController)
			})

			r.Route("/submissions", func(r chi.Router) {
				attachSubmissionRoutes(r, middlewares, submissionController)
			})

			r.Route("/analysis", func(r chi.Router) {
				attachAnalysisRoutes(r, middlewares, analysisController)
			})
		})
	})
}
