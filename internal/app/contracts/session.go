package contracts

import (
	"context"
	"time"

	"protrack-service/internal/app/models"
)

// SessionStore is the pluggable persistence adapter behind sessions. The
// production implementation is Redis; tests use an in-memory fake.
type SessionStore interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string, exp time.Duration) error
	Clear(ctx context.Context, key string) error
}

type SessionService interface {
	CreateSession(ctx context.Context, session *models.Session) error
	GetSession(ctx context.Context, sessionID string) (*models.Session, error)
	DestroySession(ctx context.Context, sessionID string) error
}
