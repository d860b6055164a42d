package sources

import (
	"context"
	"math/rand"
	"sync"
	"time"
)

// Pacer inserts the politeness delay between an adapter's outbound
// requests. Each adapter holds its own pacer; no pacing state is shared
// across adapters or across runs.
type Pacer interface {
	// Wait blocks for one politeness interval or until the context is done.
	Wait(ctx context.Context)
}

// NewRandomPacer returns a pacer that sleeps a uniformly random duration
// in [min, max] per call. The randomized spread avoids a fixed request
// cadence against origin servers.
func NewRandomPacer(min, max time.Duration) Pacer {
	if max < min {
		max = min
	}
	return &randomPacer{
		min: min,
		max: max,
		rng: rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

type randomPacer struct {
	min time.Duration
	max time.Duration

	mu  sync.Mutex
	rng *rand.Rand
}

func (p *randomPacer) Wait(ctx context.Context) {
	p.mu.Lock()
	span := p.max - p.min
	d := p.min
	if span > 0 {
		d += time.Duration(p.rng.Int63n(int64(span) + 1))
	}
	p.mu.Unlock()

	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-timer.C:
	case <-ctx.Done():
	}
}

// NopPacer returns a pacer that never sleeps. Used in tests.
func NopPacer() Pacer {
	return nopPacer{}
}

type nopPacer struct{}

func (nopPacer) Wait(context.Context) {}
