package latency

import (
	"context"
	"errors"
	"math/rand"
	"sync"
	"time"

	"barberapp/internal/usecase/interfaces"
)

// ErrSimulatedFailure is returned by Wait when the policy decides the simulated request fails.
var ErrSimulatedFailure = errors.New("simulated transient failure")

const (
	DefaultMin = 150 * time.Millisecond
	DefaultMax = 500 * time.Millisecond
)

// Observer is notified after every simulated call.
type Observer interface {
	ObserveSimulatedCall(delay time.Duration, failed bool)
}

// Policy delays repository calls by a random duration in [Min, Max] and
// fails a FailureRate fraction of them with ErrSimulatedFailure.
//
// The zero Policy waits for nothing and never fails.
type Policy struct {
	Min         time.Duration
	Max         time.Duration
	FailureRate float64

	observer Observer
	mu       sync.Mutex
	rnd      *rand.Rand
}

var _ interfaces.ILatencyPolicy = (*Policy)(nil)

// New builds a policy. Min/Max are swapped when given in the wrong order and
// FailureRate is clamped to [0, 1].
func New(lo, hi time.Duration, failureRate float64) *Policy {
	lo, hi = max(lo, 0), max(hi, 0)
	if hi < lo {
		lo, hi = hi, lo
	}
	if failureRate < 0 {
		failureRate = 0
	}
	if failureRate > 1 {
		failureRate = 1
	}
	return &Policy{
		Min:         lo,
		Max:         hi,
		FailureRate: failureRate,
		rnd:         rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// Default returns the 150ms-500ms policy used when nothing is configured.
func Default() *Policy {
	return New(DefaultMin, DefaultMax, 0)
}

// None returns a policy that neither waits nor fails. Used by tests.
func None() *Policy {
	return New(0, 0, 0)
}

// WithObserver attaches o and returns the policy for chaining.
func (p *Policy) WithObserver(o Observer) *Policy {
	p.observer = o
	return p
}

// Wait blocks for the simulated delay. It returns ctx.Err() if the context ends first.
func (p *Policy) Wait(ctx context.Context) error {
	if p == nil {
		return nil
	}
	delay, fail := p.next()

	if delay > 0 {
		timer := time.NewTimer(delay)
		defer timer.Stop()
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-timer.C:
		}
	} else if err := ctx.Err(); err != nil {
		return err
	}

	if p.observer != nil {
		p.observer.ObserveSimulatedCall(delay, fail)
	}
	if fail {
		return ErrSimulatedFailure
	}
	return nil
}

func (p *Policy) next() (time.Duration, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.rnd == nil {
		p.rnd = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	delay := p.Min
	if span := p.Max - p.Min; span > 0 {
		delay += time.Duration(p.rnd.Int63n(int64(span) + 1))
	}
	fail := p.FailureRate > 0 && p.rnd.Float64() < p.FailureRate
	return delay, fail
}
