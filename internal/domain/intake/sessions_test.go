package intake

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	apperrors "github.com/yanqian/risk-intake/pkg/errors"
)

func TestSessionsLifecycle(t *testing.T) {
	sessions := NewSessions(Config{SessionTTL: time.Hour}, &stubPredictor{}, newTestLogger())

	id, ctrl := sessions.Create()
	require.NotEmpty(t, id)
	require.Equal(t, 1, sessions.Len())

	got, err := sessions.Get(id)
	require.NoError(t, err)
	require.Same(t, ctrl, got)

	require.True(t, sessions.Delete(id))
	require.False(t, sessions.Delete(id))

	_, err = sessions.Get(id)
	require.True(t, apperrors.IsCode(err, apperrors.CodeSessionNotFound))
}

func TestSessionsAreIndependent(t *testing.T) {
	sessions := NewSessions(Config{}, &stubPredictor{}, newTestLogger())

	_, first := sessions.Create()
	_, second := sessions.Create()
	require.NoError(t, first.UpdateField(FieldAge, "70"))

	require.Equal(t, "70", first.View().Form.Age)
	require.Equal(t, "", second.View().Form.Age)
}

func TestSessionsExpireWhenIdle(t *testing.T) {
	now := time.Date(2025, 1, 1, 10, 0, 0, 0, time.UTC)
	sessions := NewSessions(Config{SessionTTL: 10 * time.Minute}, &stubPredictor{}, newTestLogger())
	sessions.now = func() time.Time { return now }

	idle, _ := sessions.Create()
	active, _ := sessions.Create()

	now = now.Add(8 * time.Minute)
	_, err := sessions.Get(active)
	require.NoError(t, err)

	now = now.Add(5 * time.Minute)
	require.Equal(t, 1, sessions.Sweep())
	require.Equal(t, 1, sessions.Len())

	_, err = sessions.Get(idle)
	require.Error(t, err)

	now = now.Add(11 * time.Minute)
	_, err = sessions.Get(active)
	require.True(t, apperrors.IsCode(err, apperrors.CodeSessionNotFound))
	require.Zero(t, sessions.Len())
}

func TestSessionsRunStopsWithContext(t *testing.T) {
	sessions := NewSessions(Config{SweepInterval: time.Millisecond}, &stubPredictor{}, newTestLogger())
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan struct{})
	go func() {
		sessions.Run(ctx)
		close(done)
	}()
	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("sweeper did not stop")
	}
}
