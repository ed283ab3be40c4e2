package routers

import (
	"protrack-service/internal/app/delivery/http/middlewares"
	"protrack-service/internal/app/services/availability"
	"protrack-service/internal/app/services/submissions"

	"github.com/go-chi/chi/v5"
)

func attachPatientRoutes(
	router chi.Router,
	middlewares *middlewares.Middlewares,
	availabilityController *availability.AvailabilityController,
	submissionController *submissions.SubmissionController,
) {
	// The form dashboard tolerates anonymous reads; the backend decides what
	// an anonymous caller may see.
	router.With(middlewares.OptionalAuthenticate).Get("/{patient_id}/forms", availabilityController.GetPatientForms)
	router.With(middlewares.Authenticate).Get("/{patient_id}/journal", submissionController.GetPatientJournal)
}
