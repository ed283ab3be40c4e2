package routers

import (
	"protrack-service/internal/app/delivery/http/middlewares"
	"protrack-service/internal/app/services/submissions"

	"github.com/go-chi/chi/v5"
)

func attachSubmissionRoutes(router chi.Router, middlewares *middlewares.Middlewares, submissionController *submissions.SubmissionController) {
	router.With(middlewares.Authenticate).Post("/", submissionController.SubmitForm)
}
