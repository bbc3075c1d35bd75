// Package debounce runs a remote check for one input field once the user
// stops typing. A new value supersedes whatever was pending: the timer is
// reset, the in-flight request is cancelled, and a late answer for an older
// value is dropped before it can touch any state.
package debounce

import (
	"context"
	"strings"
	"sync"
	"time"
)

// Lookup performs the remote call for value. It must honour ctx cancellation.
type Lookup[T any] func(ctx context.Context, value string) (T, error)

// Handlers receive the outcome of a lookup. They run with the validator's
// lock held, so they must not call back into Change or Stop. Any handler may
// be nil.
type Handlers[T any] struct {
	// OnClear runs when the value becomes blank.
	OnClear func()
	// OnStart runs right before the lookup is issued.
	OnStart func(value string)
	// OnSuccess and OnFailure run only for the latest value. Cancelled and
	// superseded lookups never reach them.
	OnSuccess func(value string, result T)
	OnFailure func(value string, err error)
}

type Validator[T any] struct {
	mu       sync.Mutex
	base     context.Context
	delay    time.Duration
	lookup   Lookup[T]
	handlers Handlers[T]

	gen    uint64
	timer  *time.Timer
	cancel context.CancelFunc
}

func New[T any](ctx context.Context, delay time.Duration, lookup Lookup[T], h Handlers[T]) *Validator[T] {
	return &Validator[T]{
		base:     ctx,
		delay:    delay,
		lookup:   lookup,
		handlers: h,
	}
}

// Change records a new field value. Blank values settle immediately through
// OnClear; anything else arms the delay timer.
func (v *Validator[T]) Change(value string) {
	v.mu.Lock()
	defer v.mu.Unlock()

	gen := v.supersede()

	if strings.TrimSpace(value) == "" {
		if v.handlers.OnClear != nil {
			v.handlers.OnClear()
		}
		return
	}

	v.timer = time.AfterFunc(v.delay, func() { v.fire(gen, value) })
}

// Stop drops the pending timer and cancels any in-flight lookup.
func (v *Validator[T]) Stop() {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.supersede()
}

// Pending reports whether a timer is armed or a lookup is in flight.
func (v *Validator[T]) Pending() bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.timer != nil || v.cancel != nil
}

// supersede invalidates everything started for earlier values. Callers hold mu.
func (v *Validator[T]) supersede() uint64 {
	v.gen++
	if v.timer != nil {
		v.timer.Stop()
		v.timer = nil
	}
	if v.cancel != nil {
		v.cancel()
		v.cancel = nil
	}
	return v.gen
}

func (v *Validator[T]) fire(gen uint64, value string) {
	v.mu.Lock()
	if gen != v.gen {
		v.mu.Unlock()
		return
	}
	v.timer = nil
	ctx, cancel := context.WithCancel(v.base)
	v.cancel = cancel
	if v.handlers.OnStart != nil {
		v.handlers.OnStart(value)
	}
	v.mu.Unlock()

	result, err := v.lookup(ctx, value)

	v.mu.Lock()
	defer v.mu.Unlock()
	cancelled := ctx.Err() != nil
	cancel()

	if gen != v.gen {
		return
	}
	v.cancel = nil
	if cancelled {
		return
	}

	if err != nil {
		if v.handlers.OnFailure != nil {
			v.handlers.OnFailure(value, err)
		}
		return
	}
	if v.handlers.OnSuccess != nil {
		v.handlers.OnSuccess(value, result)
	}
}
