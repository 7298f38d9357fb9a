package cleanup

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/merxlab/merx/pkg/builder"
)

func TestExpireSessions(t *testing.T) {
	sessions := builder.NewManager()

	stale := sessions.Create("owner-1")
	stale.UpdatedAt = time.Now().Add(-2 * time.Hour)
	fresh := sessions.Create("owner-1")

	svc := NewService(sessions, time.Minute, time.Hour)
	svc.expireSessions()

	_, err := sessions.Get(stale.ID, "owner-1")
	assert.Error(t, err, "idle session should be gone")

	_, err = sessions.Get(fresh.ID, "owner-1")
	assert.NoError(t, err, "active session survives")
}

func TestStartStop(t *testing.T) {
	sessions := builder.NewManager()
	svc := NewService(sessions, 10*time.Millisecond, time.Hour)

	svc.Start(context.Background())
	require.NotNil(t, svc.done)

	done := make(chan struct{})
	go func() {
		svc.Stop()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Stop did not return")
	}
}
