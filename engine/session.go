package engine

import (
	"math/rand"
	"sync/atomic"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/google/uuid"
)

// Session tracks one run from start to game over
// The RNG seed derives from the run ID by hashing, so a logged run ID
// reproduces the spawn and spread sequence. Rand is used only from the
// simulation goroutine
type Session struct {
	ID        uuid.UUID
	Seed      uint64
	StartedAt time.Time
	Rand      *rand.Rand

	Kills          atomic.Int64
	BossesDefeated atomic.Int64
	XPCollected    atomic.Int64
}

// Summary is the immutable session output consumed at run end by the
// persistence/meta-progression layer
type Summary struct {
	ID             uuid.UUID
	Kills          int64
	BossesDefeated int64
	XPCollected    int64
	Survived       time.Duration
}

// NewSession creates a session with a fresh run ID and derived seed
func NewSession() *Session {
	id := uuid.New()
	seed := xxhash.Sum64String(id.String())
	return &Session{
		ID:        id,
		Seed:      seed,
		StartedAt: time.Now(),
		Rand:      rand.New(rand.NewSource(int64(seed))),
	}
}

// Summary captures the current counters
func (s *Session) Summary() Summary {
	return Summary{
		ID:             s.ID,
		Kills:          s.Kills.Load(),
		BossesDefeated: s.BossesDefeated.Load(),
		XPCollected:    s.XPCollected.Load(),
		Survived:       time.Since(s.StartedAt),
	}
}
