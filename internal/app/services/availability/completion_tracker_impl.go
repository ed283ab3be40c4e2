package availability

import (
	"context"
	"fmt"
	"time"

	"protrack-service/internal/app/contracts"
	"protrack-service/internal/pkg/constvars"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type completionTracker struct {
	ProtocolFormClient contracts.ProtocolFormClient
	RedisRepository    contracts.RedisRepository
	CacheTTL           time.Duration
	Log                *zap.Logger
}

func NewCompletionTracker(
	protocolFormClient contracts.ProtocolFormClient,
	redisRepository contracts.RedisRepository,
	cacheTTLSeconds int,
	log *zap.Logger,
) CompletionTracker {
	return &completionTracker{
		ProtocolFormClient: protocolFormClient,
		RedisRepository:    redisRepository,
		CacheTTL:           time.Duration(cacheTTLSeconds) * time.Second,
		Log:                log,
	}
}

// RespondedSet returns the set of form IDs already answered for the
// (protocol, patient) pair. The set is cached in Redis so resolving a
// protocol with many forms costs one backend call, not one per form. Cache
// failures degrade to a direct fetch.
func (t *completionTracker) RespondedSet(ctx context.Context, token, protocolID, patientID string) (map[string]bool, error) {
	cacheKey := fmt.Sprintf(constvars.RedisKeyRespondedSetFormat, protocolID, patientID)

	cached, err := t.RedisRepository.Get(ctx, cacheKey)
	if err != nil {
		t.Log.Warn("responded-set cache read failed, falling back to backend",
			zap.String(constvars.LoggingProtocolIDKey, protocolID),
			zap.String(constvars.LoggingPatientIDKey, patientID),
			zap.Error(err),
		)
	} else if cached != "" {
		var formIDs []string
		if err := json.Unmarshal([]byte(cached), &formIDs); err == nil {
			return buildSet(formIDs), nil
		}
	}

	responded, err := t.ProtocolFormClient.FindRespondedForms(ctx, token, protocolID, patientID)
	if err != nil {
		return nil, err
	}

	formIDs := make([]string, len(responded))
	for i, form := range responded {
		formIDs[i] = form.FormID
	}

	if err := t.RedisRepository.Set(ctx, cacheKey, formIDs, t.CacheTTL); err != nil {
		t.Log.Warn("responded-set cache write failed",
			zap.String(constvars.LoggingProtocolIDKey, protocolID),
			zap.String(constvars.LoggingPatientIDKey, patientID),
			zap.Error(err),
		)
	}

	return buildSet(formIDs), nil
}

// IsCompleted reports completion for one occurrence. The backend's responded
// set is keyed by form only, so every occurrence of a responded form counts
// as completed.
func (t *completionTracker) IsCompleted(ctx context.Context, token, protocolID, patientID, formID string, occurrenceIndex int) (bool, error) {
	set, err := t.RespondedSet(ctx, token, protocolID, patientID)
	if err != nil {
		return false, err
	}
	return set[formID], nil
}

func (t *completionTracker) Invalidate(ctx context.Context, protocolID, patientID string) error {
	cacheKey := fmt.Sprintf(constvars.RedisKeyRespondedSetFormat, protocolID, patientID)
	return t.RedisRepository.Delete(ctx, cacheKey)
}

func buildSet(formIDs []string) map[string]bool {
	set := make(map[string]bool, len(formIDs))
	for _, id := range formIDs {
		set[id] = true
	}
	return set
}
