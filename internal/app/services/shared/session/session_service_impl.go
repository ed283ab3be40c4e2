package session

import (
	"context"
	"fmt"
	"time"

	"protrack-service/internal/app/contracts"
	"protrack-service/internal/app/models"
	"protrack-service/internal/pkg/constvars"
	"protrack-service/internal/pkg/exceptions"

	"github.com/goccy/go-json"
)

type sessionService struct {
	store contracts.SessionStore
}

func NewSessionService(store contracts.SessionStore) contracts.SessionService {
	return &sessionService{store: store}
}

func (s *sessionService) CreateSession(ctx context.Context, session *models.Session) error {
	data, err := json.Marshal(session)
	if err != nil {
		return exceptions.ErrCannotMarshalJSON(err)
	}

	key := fmt.Sprintf(constvars.RedisKeySessionFormat, session.SessionID)
	ttl := time.Until(session.ExpiresAt)
	if ttl <= 0 {
		return exceptions.ErrInvalidSession(fmt.Errorf("session already expired"))
	}
	return s.store.Set(ctx, key, string(data), ttl)
}

func (s *sessionService) GetSession(ctx context.Context, sessionID string) (*models.Session, error) {
	key := fmt.Sprintf(constvars.RedisKeySessionFormat, sessionID)
	data, err := s.store.Get(ctx, key)
	if err != nil {
		return nil, err
	}
	if data == "" {
		return nil, exceptions.ErrInvalidSession(fmt.Errorf("session %s not found", sessionID))
	}

	session := new(models.Session)
	if err := json.Unmarshal([]byte(data), session); err != nil {
		return nil, exceptions.ErrCannotParseJSON(err)
	}
	return session, nil
}

func (s *sessionService) DestroySession(ctx context.Context, sessionID string) error {
	key := fmt.Sprintf(constvars.RedisKeySessionFormat, sessionID)
	return s.store.Clear(ctx, key)
}
