package routers

import (
	"protrack-service/internal/app/delivery/http/middlewares"
	"protrack-service/internal/app/services/auth"

	"github.com/go-chi/chi/v5"
)

func attachAuthRoutes(router chi.Router, middlewares *middlewares.Middlewares, authController *auth.AuthController) {
	router.Post("/login", authController.Login)
	router.With(middlewares.Authenticate).Post("/register", authController.Register)
	router.With(middlewares.Authenticate).Post("/logout", authController.Logout)
}
