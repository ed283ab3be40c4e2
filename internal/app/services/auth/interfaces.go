package auth

import (
	"context"

	"protrack-service/internal/app/models"
	"protrack-service/internal/pkg/dto/requests"
	"protrack-service/internal/pkg/dto/responses"
)

type AuthUsecase interface {
	Login(ctx context.Context, request *requests.Login) (*responses.Login, error)
	Register(ctx context.Context, session *models.Session, request *requests.Register) (*responses.Register, error)
	Logout(ctx context.Context, session *models.Session) error
}
