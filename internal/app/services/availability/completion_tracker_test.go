package availability

import (
	"context"
	"errors"
	"testing"
	"time"

	"protrack-service/internal/pkg/protodto"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeRedisRepository struct {
	data      map[string]string
	getErr    error
	setErr    error
	deleted   []string
	setCalls  int
	lastValue interface{}
}

func newFakeRedisRepository() *fakeRedisRepository {
	return &fakeRedisRepository{data: map[string]string{}}
}

func (f *fakeRedisRepository) Get(ctx context.Context, key string) (string, error) {
	if f.getErr != nil {
		return "", f.getErr
	}
	return f.data[key], nil
}

func (f *fakeRedisRepository) Set(ctx context.Context, key string, value interface{}, exp time.Duration) error {
	f.setCalls++
	f.lastValue = value
	if f.setErr != nil {
		return f.setErr
	}
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	f.data[key] = string(raw)
	return nil
}

func (f *fakeRedisRepository) Delete(ctx context.Context, key string) error {
	f.deleted = append(f.deleted, key)
	delete(f.data, key)
	return nil
}

type countingProtocolFormClient struct {
	responded []protodto.RespondedForm
	err       error
	calls     int
}

func (c *countingProtocolFormClient) FindByProtocolID(ctx context.Context, token, protocolID string) ([]protodto.ProtocolForm, error) {
	return nil, nil
}

func (c *countingProtocolFormClient) FindRespondedForms(ctx context.Context, token, protocolID, patientID string) ([]protodto.RespondedForm, error) {
	c.calls++
	if c.err != nil {
		return nil, c.err
	}
	return c.responded, nil
}

func TestCompletionTracker(t *testing.T) {
	t.Run("Caches Responded Set Across Calls", func(t *testing.T) {
		redisRepo := newFakeRedisRepository()
		formClient := &countingProtocolFormClient{responded: []protodto.RespondedForm{{FormID: "form-1"}, {FormID: "form-2"}}}
		tracker := NewCompletionTracker(formClient, redisRepo, 300, zap.NewNop())

		first, err := tracker.RespondedSet(context.Background(), "token", "proto-1", "patient-1")
		require.NoError(t, err)
		second, err := tracker.RespondedSet(context.Background(), "token", "proto-1", "patient-1")
		require.NoError(t, err)

		assert.Equal(t, first, second)
		assert.True(t, first["form-1"])
		assert.True(t, first["form-2"])
		assert.Equal(t, 1, formClient.calls)
	})

	t.Run("Cache Read Failure Falls Back To Backend", func(t *testing.T) {
		redisRepo := newFakeRedisRepository()
		redisRepo.getErr = errors.New("connection refused")
		formClient := &countingProtocolFormClient{responded: []protodto.RespondedForm{{FormID: "form-1"}}}
		tracker := NewCompletionTracker(formClient, redisRepo, 300, zap.NewNop())

		set, err := tracker.RespondedSet(context.Background(), "token", "proto-1", "patient-1")
		require.NoError(t, err)

		assert.True(t, set["form-1"])
		assert.Equal(t, 1, formClient.calls)
	})

	t.Run("Backend Failure Propagates", func(t *testing.T) {
		redisRepo := newFakeRedisRepository()
		formClient := &countingProtocolFormClient{err: errors.New("backend down")}
		tracker := NewCompletionTracker(formClient, redisRepo, 300, zap.NewNop())

		_, err := tracker.RespondedSet(context.Background(), "token", "proto-1", "patient-1")
		assert.Error(t, err)
	})

	t.Run("Every Occurrence Of A Responded Form Counts As Completed", func(t *testing.T) {
		redisRepo := newFakeRedisRepository()
		formClient := &countingProtocolFormClient{responded: []protodto.RespondedForm{{FormID: "form-1"}}}
		tracker := NewCompletionTracker(formClient, redisRepo, 300, zap.NewNop())

		for _, occurrence := range []int{0, 1, 5} {
			completed, err := tracker.IsCompleted(context.Background(), "token", "proto-1", "patient-1", "form-1", occurrence)
			require.NoError(t, err)
			assert.True(t, completed)
		}
	})

	t.Run("Invalidate Drops The Cached Set", func(t *testing.T) {
		redisRepo := newFakeRedisRepository()
		formClient := &countingProtocolFormClient{responded: []protodto.RespondedForm{{FormID: "form-1"}}}
		tracker := NewCompletionTracker(formClient, redisRepo, 300, zap.NewNop())

		_, err := tracker.RespondedSet(context.Background(), "token", "proto-1", "patient-1")
		require.NoError(t, err)

		require.NoError(t, tracker.Invalidate(context.Background(), "proto-1", "patient-1"))

		_, err = tracker.RespondedSet(context.Background(), "token", "proto-1", "patient-1")
		require.NoError(t, err)
		assert.Equal(t, 2, formClient.calls)
	})
}
