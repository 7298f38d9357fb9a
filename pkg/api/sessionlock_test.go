package api

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionLocks(t *testing.T) {
	t.Run("same session gets the same mutex", func(t *testing.T) {
		locks := newSessionLocks()
		first := locks.lock("agent-1", "sess-1")
		second := locks.lock("agent-1", "sess-1")
		assert.Same(t, first, second)

		other := locks.lock("agent-1", "sess-2")
		assert.NotSame(t, first, other)
	})

	t.Run("idle entries are dropped, fresh ones survive", func(t *testing.T) {
		locks := newSessionLocks()
		locks.lock("agent-1", "stale")
		locks.lock("agent-1", "fresh")
		locks.locks["agent-1/stale"].lastUse = time.Now().Add(-2 * time.Hour)

		assert.Equal(t, 1, locks.deleteStale(time.Hour))
		require.Len(t, locks.locks, 1)
		assert.Contains(t, locks.locks, "agent-1/fresh")
	})

	t.Run("acquisitions sweep stale entries periodically", func(t *testing.T) {
		locks := newSessionLocks()
		locks.lock("agent-1", "abandoned")
		locks.locks["agent-1/abandoned"].lastUse = time.Now().Add(-2 * time.Hour)

		for i := 0; i < lockSweepEvery; i++ {
			locks.lock("agent-1", fmt.Sprintf("sess-%d", i))
		}

		assert.NotContains(t, locks.locks, "agent-1/abandoned",
			"the map must not retain every session ever seen")
	})
}
