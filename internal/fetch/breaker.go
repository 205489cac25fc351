package fetch

import (
	"sync"
	"time"

	"github.com/failsafe-go/failsafe-go"
	"github.com/failsafe-go/failsafe-go/circuitbreaker"

	"github.com/ppiankov/capsule/internal/logging"
	"github.com/ppiankov/capsule/internal/metrics"
)

// BreakerState mirrors the failsafe-go circuit states
type BreakerState int

const (
	StateClosed BreakerState = iota
	StateHalfOpen
	StateOpen
)

func (s BreakerState) String() string {
	switch s {
	case StateClosed:
		return "closed"
	case StateHalfOpen:
		return "half-open"
	case StateOpen:
		return "open"
	default:
		return "unknown"
	}
}

// BreakerConfig configures per-host circuit breakers
type BreakerConfig struct {
	// FailureThreshold failures within Window executions open the circuit
	FailureThreshold uint
	Window           uint
	// OpenFor is how long an open circuit rejects calls before probing again
	OpenFor time.Duration
	Logger  logging.Logger
}

// Breakers holds one circuit breaker per remote host. An open breaker fails calls
// immediately; nothing here retries.
type Breakers struct {
	mu     sync.Mutex
	byHost map[string]circuitbreaker.CircuitBreaker[any]
	cfg    BreakerConfig
}

// NewBreakers creates an empty breaker set
func NewBreakers(cfg BreakerConfig) *Breakers {
	if cfg.Window == 0 {
		cfg.Window = 5
	}
	if cfg.FailureThreshold == 0 || cfg.FailureThreshold > cfg.Window {
		cfg.FailureThreshold = cfg.Window
	}
	if cfg.OpenFor == 0 {
		cfg.OpenFor = 30 * time.Second
	}
	return &Breakers{
		byHost: make(map[string]circuitbreaker.CircuitBreaker[any]),
		cfg:    cfg,
	}
}

// Execute runs fn through the breaker for host
func (b *Breakers) Execute(host string, fn func() (any, error)) (any, error) {
	return failsafe.With(b.get(host)).Get(fn)
}

// State returns the breaker state for host (closed when never used)
func (b *Breakers) State(host string) BreakerState {
	b.mu.Lock()
	cb, ok := b.byHost[host]
	b.mu.Unlock()
	if !ok {
		return StateClosed
	}
	return convertState(cb.State())
}

func (b *Breakers) get(host string) circuitbreaker.CircuitBreaker[any] {
	b.mu.Lock()
	defer b.mu.Unlock()

	if cb, ok := b.byHost[host]; ok {
		return cb
	}

	logger := b.cfg.Logger
	cb := circuitbreaker.NewBuilder[any]().
		WithFailureThresholdRatio(b.cfg.FailureThreshold, b.cfg.Window).
		WithDelay(b.cfg.OpenFor).
		WithSuccessThreshold(1).
		OnStateChanged(func(event circuitbreaker.StateChangedEvent) {
			from, to := convertState(event.OldState), convertState(event.NewState)
			metrics.RecordBreakerState(host, int(to))
			if logger != nil {
				logger.WithFields(logging.Fields{
					"host":       host,
					"from_state": from.String(),
					"to_state":   to.String(),
				}).Warn("circuit breaker state change")
			}
		}).
		Build()

	b.byHost[host] = cb
	return cb
}

func convertState(state circuitbreaker.State) BreakerState {
	switch state {
	case circuitbreaker.HalfOpenState:
		return StateHalfOpen
	case circuitbreaker.OpenState:
		return StateOpen
	default:
		return StateClosed
	}
}
