// Package listctrl orchestrates list fetches for one screen: it subscribes to
// a liststate.Store and refetches on every change, cancelling the in-flight
// request so that only the response to the most recently issued request may
// update visible state (last-request-wins). A failed fetch keeps the previous
// successful page so the screen never flashes to empty.
package listctrl

import (
	"context"
	"errors"
	"sync"

	"github.com/simp-lee/loanadmin/internal/domain"
	"github.com/simp-lee/loanadmin/internal/liststate"
)

// Phase is the controller's reported fetch status.
type Phase int

const (
	// PhaseLoading means a fetch for the current state is outstanding and no
	// result has ever been delivered, or the delivered result predates the
	// current state. Consumers render a skeleton.
	PhaseLoading Phase = iota
	// PhaseReady means Result corresponds to the current state.
	PhaseReady
	// PhaseError means the latest fetch failed. Result still holds the last
	// good page, if any.
	PhaseError
)

// Snapshot is the controller's state at one point in time.
type Snapshot[T any] struct {
	Phase Phase
	// Result is the last successfully fetched page. It is preserved across
	// fetch errors so consumers can keep rendering stale-but-real data.
	Result *domain.PageResult[T]
	// Query is the list query that produced Result.
	Query domain.ListQuery
	// Err is the failure of the latest fetch when Phase is PhaseError.
	Err error
	// Version is the store version the latest settled fetch was issued for.
	Version uint64
}

// FetchFunc loads one page of records for the given query. Implementations
// must honor ctx cancellation; the controller cancels superseded fetches.
type FetchFunc[T any] func(ctx context.Context, q domain.ListQuery) (*domain.PageResult[T], error)

// Controller drives fetches for one list screen.
type Controller[T any] struct {
	store *liststate.Store
	fetch FetchFunc[T]

	mu      sync.Mutex
	seq     uint64
	cancel  context.CancelFunc
	snap    Snapshot[T]
	changed chan struct{}
}

// New creates a controller bound to the given state store and fetch function.
// Call Run to start the subscription loop.
func New[T any](store *liststate.Store, fetch FetchFunc[T]) *Controller[T] {
	return &Controller[T]{
		store:   store,
		fetch:   fetch,
		changed: make(chan struct{}),
	}
}

// Run issues an initial fetch for the store's current state, then refetches
// on every state change until ctx is done. Each change cancels the in-flight
// fetch before issuing the next one.
func (c *Controller[T]) Run(ctx context.Context) {
	sub := c.store.Subscribe()
	c.Refresh(ctx)
	for {
		select {
		case <-ctx.Done():
			c.mu.Lock()
			if c.cancel != nil {
				c.cancel()
			}
			c.mu.Unlock()
			return
		case <-sub:
			c.Refresh(ctx)
		}
	}
}

// Refresh issues a fetch for the store's current state, superseding any fetch
// still in flight. It returns without waiting for the fetch to settle.
func (c *Controller[T]) Refresh(ctx context.Context) {
	c.mu.Lock()
	version := c.store.Version()
	query := c.store.Query().Normalize()

	c.seq++
	seq := c.seq
	if c.cancel != nil {
		c.cancel()
	}
	fetchCtx, cancel := context.WithCancel(ctx)
	c.cancel = cancel

	c.snap.Phase = PhaseLoading
	c.publishLocked()
	c.mu.Unlock()

	go c.run(fetchCtx, cancel, seq, version, query)
}

// run performs one fetch and applies its outcome unless it was superseded.
func (c *Controller[T]) run(ctx context.Context, cancel context.CancelFunc, seq, version uint64, query domain.ListQuery) {
	defer cancel()
	result, err := c.fetch(ctx, query)

	c.mu.Lock()
	defer c.mu.Unlock()

	// A newer fetch was issued while this one was in flight; its response is
	// stale regardless of arrival order and must not touch the snapshot.
	if seq != c.seq {
		return
	}

	if err != nil {
		if errors.Is(err, context.Canceled) {
			return
		}
		c.snap.Phase = PhaseError
		c.snap.Err = err
		c.snap.Version = version
		c.publishLocked()
		return
	}

	c.snap = Snapshot[T]{
		Phase:   PhaseReady,
		Result:  result,
		Query:   query,
		Version: version,
	}
	c.publishLocked()

	// The backend may report fewer pages than the requested position; pull
	// the store back into range. The clamp bumps the store version and
	// triggers one follow-up fetch.
	if pages := result.Pagination.Pages; pages > 0 && query.Page > pages {
		go c.store.ClampToPages(pages)
	}
}

// Snapshot returns the current snapshot.
func (c *Controller[T]) Snapshot() Snapshot[T] {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.snap
}

// Wait blocks until a fetch issued for store version minVersion or newer has
// settled (ready or error), then returns that snapshot. It returns early with
// ctx.Err when ctx is done.
func (c *Controller[T]) Wait(ctx context.Context, minVersion uint64) (Snapshot[T], error) {
	for {
		c.mu.Lock()
		snap := c.snap
		ch := c.changed
		c.mu.Unlock()

		if snap.Phase != PhaseLoading && snap.Version >= minVersion {
			return snap, nil
		}

		select {
		case <-ctx.Done():
			return snap, ctx.Err()
		case <-ch:
		}
	}
}

// publishLocked wakes all Wait callers. Callers must hold c.mu.
func (c *Controller[T]) publishLocked() {
	close(c.changed)
	c.changed = make(chan struct{})
}
