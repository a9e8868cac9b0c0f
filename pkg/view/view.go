// Package view holds the per-page fetch lifecycle: a controller starts in a
// loading state, runs its fetch, and either applies the result or records an
// error. A controller that was unmounted before the fetch resolved discards
// the result instead of applying it to stale state.
package view

import (
	"context"
	"sync"
)

// State is a snapshot of a controller: Loading starts true and flips to false
// when a fetch resolves or fails while the controller is still mounted.
type State[T any] struct {
	Loading bool
	Err     error
	Data    T
}

type Controller[T any] struct {
	mu        sync.Mutex
	state     State[T]
	unmounted bool
	cancel    context.CancelFunc
}

func NewController[T any]() *Controller[T] {
	return &Controller[T]{state: State[T]{Loading: true}}
}

// Load runs fetch and applies its result. Nothing is applied if the
// controller was unmounted (or ctx cancelled) while the fetch was in flight.
func (c *Controller[T]) Load(ctx context.Context, fetch func(context.Context) (T, error)) {
	ctx, cancel := context.WithCancel(ctx)

	c.mu.Lock()
	if c.unmounted {
		c.mu.Unlock()
		cancel()
		return
	}
	c.cancel = cancel
	c.mu.Unlock()

	data, err := fetch(ctx)

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.unmounted || ctx.Err() != nil {
		return
	}
	if err != nil {
		c.state.Err = err
	} else {
		c.state.Data = data
	}
	c.state.Loading = false
}

// Unmount marks the controller dead and cancels any in-flight fetch.
func (c *Controller[T]) Unmount() {
	c.mu.Lock()
	c.unmounted = true
	cancel := c.cancel
	c.mu.Unlock()
	if cancel != nil {
		cancel()
	}
}

func (c *Controller[T]) State() State[T] {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}
