package auth

import (
	"context"
	"testing"
	"time"

	"protrack-service/internal/app/config"
	"protrack-service/internal/app/models"
	"protrack-service/internal/app/services/shared/session"
	"protrack-service/internal/pkg/dto/requests"
	"protrack-service/internal/pkg/exceptions"
	"protrack-service/internal/pkg/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeUserRepository struct {
	byUsername map[string]*models.User
}

func newFakeUserRepository() *fakeUserRepository {
	return &fakeUserRepository{byUsername: map[string]*models.User{}}
}

func (f *fakeUserRepository) CreateUser(ctx context.Context, user *models.User) (string, error) {
	user.ID = utils.GenerateSessionID()
	f.byUsername[user.Username] = user
	return user.ID, nil
}

func (f *fakeUserRepository) FindByUsername(ctx context.Context, username string) (*models.User, error) {
	return f.byUsername[username], nil
}

func (f *fakeUserRepository) FindByID(ctx context.Context, userID string) (*models.User, error) {
	for _, user := range f.byUsername {
		if user.ID == userID {
			return user, nil
		}
	}
	return nil, nil
}

func seedUser(t *testing.T, repo *fakeUserRepository, username, password string, role models.Role, patientID string) *models.User {
	t.Helper()
	hashed, err := utils.HashPassword(password)
	require.NoError(t, err)
	user := &models.User{
		ID:        username + "-id",
		Username:  username,
		Email:     username + "@example.com",
		Password:  hashed,
		Role:      role,
		PatientID: patientID,
	}
	repo.byUsername[username] = user
	return user
}

func testConfig() *config.InternalConfig {
	cfg := &config.InternalConfig{}
	cfg.JWT.Secret = "test-secret"
	cfg.JWT.ExpTimeInHour = 1
	cfg.Backend.ServiceToken = "backend-token"
	return cfg
}

func TestAuthUsecase(t *testing.T) {
	t.Run("Login Issues A Token Bound To A Stored Session", func(t *testing.T) {
		repo := newFakeUserRepository()
		seedUser(t, repo, "ana", "Secret!Pass1", models.RolePatient, "patient-7")
		sessions := session.NewSessionService(session.NewMemoryStore())
		uc := NewAuthUsecase(repo, sessions, testConfig(), zap.NewNop())

		result, err := uc.Login(context.Background(), &requests.Login{Username: "ana", Password: "Secret!Pass1"})
		require.NoError(t, err)

		assert.Equal(t, models.RolePatient, result.Role)
		assert.Equal(t, "patient-7", result.PatientID)
		assert.True(t, result.Capabilities.CanView)
		assert.False(t, result.Capabilities.CanCreate)

		sessionID, err := utils.ParseJWT(result.Token, "test-secret")
		require.NoError(t, err)
		stored, err := sessions.GetSession(context.Background(), sessionID)
		require.NoError(t, err)
		assert.Equal(t, "ana", stored.Username)
		assert.Equal(t, "backend-token", stored.BackendToken)
		assert.True(t, stored.ExpiresAt.After(time.Now()))
	})

	t.Run("Wrong Password And Unknown User Get The Same Answer", func(t *testing.T) {
		repo := newFakeUserRepository()
		seedUser(t, repo, "ana", "Secret!Pass1", models.RolePatient, "")
		sessions := session.NewSessionService(session.NewMemoryStore())
		uc := NewAuthUsecase(repo, sessions, testConfig(), zap.NewNop())

		_, wrongPassErr := uc.Login(context.Background(), &requests.Login{Username: "ana", Password: "nope"})
		_, unknownUserErr := uc.Login(context.Background(), &requests.Login{Username: "ghost", Password: "nope"})

		var first, second *exceptions.CustomError
		require.ErrorAs(t, wrongPassErr, &first)
		require.ErrorAs(t, unknownUserErr, &second)
		assert.Equal(t, first.StatusCode, second.StatusCode)
		assert.Equal(t, first.ClientMessage, second.ClientMessage)
	})

	t.Run("Register Requires The Admin Role", func(t *testing.T) {
		repo := newFakeUserRepository()
		sessions := session.NewSessionService(session.NewMemoryStore())
		uc := NewAuthUsecase(repo, sessions, testConfig(), zap.NewNop())

		editorSession := &models.Session{SessionID: "s-1", Role: models.RoleEditor}
		_, err := uc.Register(context.Background(), editorSession, &requests.Register{
			Username: "newbie", Email: "n@example.com", Password: "Secret!Pass1", Role: "Viewer",
		})

		var customErr *exceptions.CustomError
		require.ErrorAs(t, err, &customErr)
		assert.Equal(t, 403, customErr.StatusCode)
	})

	t.Run("Register Rejects A Taken Username", func(t *testing.T) {
		repo := newFakeUserRepository()
		seedUser(t, repo, "ana", "Secret!Pass1", models.RoleViewer, "")
		sessions := session.NewSessionService(session.NewMemoryStore())
		uc := NewAuthUsecase(repo, sessions, testConfig(), zap.NewNop())

		adminSession := &models.Session{SessionID: "s-1", Role: models.RoleAdmin}
		_, err := uc.Register(context.Background(), adminSession, &requests.Register{
			Username: "ana", Email: "a@example.com", Password: "Secret!Pass1", Role: "Viewer",
		})
		assert.Error(t, err)
	})

	t.Run("Register Stores A Hash Not The Password", func(t *testing.T) {
		repo := newFakeUserRepository()
		sessions := session.NewSessionService(session.NewMemoryStore())
		uc := NewAuthUsecase(repo, sessions, testConfig(), zap.NewNop())

		adminSession := &models.Session{SessionID: "s-1", Role: models.RoleAdmin}
		result, err := uc.Register(context.Background(), adminSession, &requests.Register{
			Username: "newbie", Email: "n@example.com", Password: "Secret!Pass1", Role: "Patient", PatientID: "patient-9",
		})
		require.NoError(t, err)

		stored := repo.byUsername["newbie"]
		require.NotNil(t, stored)
		assert.Equal(t, result.UserID, stored.ID)
		assert.NotEqual(t, "Secret!Pass1", stored.Password)
		assert.True(t, utils.CheckPasswordHash("Secret!Pass1", stored.Password))
	})

	t.Run("Logout Destroys The Session", func(t *testing.T) {
		repo := newFakeUserRepository()
		seedUser(t, repo, "ana", "Secret!Pass1", models.RoleViewer, "")
		sessions := session.NewSessionService(session.NewMemoryStore())
		uc := NewAuthUsecase(repo, sessions, testConfig(), zap.NewNop())

		result, err := uc.Login(context.Background(), &requests.Login{Username: "ana", Password: "Secret!Pass1"})
		require.NoError(t, err)
		sessionID, err := utils.ParseJWT(result.Token, "test-secret")
		require.NoError(t, err)

		require.NoError(t, uc.Logout(context.Background(), &models.Session{SessionID: sessionID}))

		_, err = sessions.GetSession(context.Background(), sessionID)
		assert.Error(t, err)
	})
}
