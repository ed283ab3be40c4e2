package auth

import (
	"context"
	"fmt"
	"time"

	"protrack-service/internal/app/config"
	"protrack-service/internal/app/contracts"
	"protrack-service/internal/app/models"
	"protrack-service/internal/pkg/dto/requests"
	"protrack-service/internal/pkg/dto/responses"
	"protrack-service/internal/pkg/exceptions"
	"protrack-service/internal/pkg/utils"

	"go.uber.org/zap"
)

type authUsecase struct {
	UserRepository contracts.UserRepository
	SessionService contracts.SessionService
	InternalConfig *config.InternalConfig
	Log            *zap.Logger

	now func() time.Time
}

func NewAuthUsecase(
	userRepository contracts.UserRepository,
	sessionService contracts.SessionService,
	internalConfig *config.InternalConfig,
	log *zap.Logger,
) AuthUsecase {
	return &authUsecase{
		UserRepository: userRepository,
		SessionService: sessionService,
		InternalConfig: internalConfig,
		Log:            log,
		now:            time.Now,
	}
}

func (uc *authUsecase) Login(ctx context.Context, request *requests.Login) (*responses.Login, error) {
	user, err := uc.UserRepository.FindByUsername(ctx, request.Username)
	if err != nil {
		return nil, err
	}
	if user == nil || !utils.CheckPasswordHash(request.Password, user.Password) {
		// One message for both cases; the caller learns nothing about which
		// part was wrong.
		return nil, exceptions.ErrInvalidUsernameOrPassword(nil)
	}

	expTime := time.Duration(uc.InternalConfig.JWT.ExpTimeInHour) * time.Hour
	session := &models.Session{
		SessionID:    utils.GenerateSessionID(),
		UserID:       user.ID,
		Username:     user.Username,
		Role:         user.Role,
		PatientID:    user.PatientID,
		BackendToken: uc.InternalConfig.Backend.ServiceToken,
		ExpiresAt:    uc.now().Add(expTime),
	}
	if err := uc.SessionService.CreateSession(ctx, session); err != nil {
		return nil, err
	}

	token, err := utils.GenerateJWT(session.SessionID, uc.InternalConfig.JWT.Secret, expTime)
	if err != nil {
		return nil, err
	}

	return &responses.Login{
		Token:        token,
		Username:     user.Username,
		Role:         user.Role,
		Capabilities: user.Role.Capabilities(),
		PatientID:    user.PatientID,
	}, nil
}

// Register is admin-only: creating accounts is a CanCreate capability plus
// the admin role, so editors cannot mint new users.
func (uc *authUsecase) Register(ctx context.Context, session *models.Session, request *requests.Register) (*responses.Register, error) {
	if session == nil || session.Role != models.RoleAdmin {
		return nil, exceptions.ErrRoleNotPermitted(nil)
	}

	role, err := models.ParseRole(request.Role)
	if err != nil {
		return nil, exceptions.ErrInvalidRoleType(err)
	}

	existing, err := uc.UserRepository.FindByUsername(ctx, request.Username)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, exceptions.ErrUsernameAlreadyExist(fmt.Errorf("username %s is taken", request.Username))
	}

	hashed, err := utils.HashPassword(request.Password)
	if err != nil {
		return nil, exceptions.ErrHashPassword(err)
	}

	now := uc.now()
	user := &models.User{
		Username:  request.Username,
		Email:     request.Email,
		Password:  hashed,
		Role:      role,
		PatientID: request.PatientID,
		TimeModel: models.TimeModel{CreatedAt: now, UpdatedAt: now},
	}
	userID, err := uc.UserRepository.CreateUser(ctx, user)
	if err != nil {
		return nil, err
	}

	return &responses.Register{
		UserID:   userID,
		Username: user.Username,
		Role:     user.Role,
	}, nil
}

func (uc *authUsecase) Logout(ctx context.Context, session *models.Session) error {
	if session == nil {
		return exceptions.ErrInvalidSession(fmt.Errorf("no active session"))
	}
	return uc.SessionService.DestroySession(ctx, session.SessionID)
}
