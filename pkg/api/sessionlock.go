package api

import (
	"sync"
	"time"
)

const (
	// lockMaxIdle is far longer than any turn budget, so an entry still
	// held by a request is never evicted out from under its holder.
	lockMaxIdle = time.Hour
	// lockSweepEvery bounds how often acquisitions pay for a full sweep.
	lockSweepEvery = 256
)

// sessionLocks serializes chat turns per (agent, session) so concurrent
// messages from one widget cannot interleave their history reads and
// appends. Entries idle longer than lockMaxIdle are swept on the way in,
// keeping the map proportional to recently active sessions rather than
// every session ever seen.
type sessionLocks struct {
	mu     sync.Mutex
	locks  map[string]*sessionLock
	sinceN int
}

type sessionLock struct {
	sync.Mutex
	lastUse time.Time
}

func newSessionLocks() *sessionLocks {
	return &sessionLocks{locks: make(map[string]*sessionLock)}
}

func (s *sessionLocks) lock(agentID, sessionID string) *sync.Mutex {
	key := agentID + "/" + sessionID
	s.mu.Lock()
	defer s.mu.Unlock()

	s.sinceN++
	if s.sinceN >= lockSweepEvery {
		s.sinceN = 0
		s.deleteStaleLocked(lockMaxIdle)
	}

	l, ok := s.locks[key]
	if !ok {
		l = &sessionLock{}
		s.locks[key] = l
	}
	l.lastUse = time.Now()
	return &l.Mutex
}

// deleteStale drops entries idle longer than maxIdle and reports how many.
func (s *sessionLocks) deleteStale(maxIdle time.Duration) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.deleteStaleLocked(maxIdle)
}

func (s *sessionLocks) deleteStaleLocked(maxIdle time.Duration) int {
	cutoff := time.Now().Add(-maxIdle)
	n := 0
	for key, l := range s.locks {
		if l.lastUse.Before(cutoff) {
			delete(s.locks, key)
			n++
		}
	}
	return n
}
