package cursoragent

import (
	"context"
	"sync"

	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/semaphore"

	"github.com/yidong72/cursor-agent-sdk-go/internal/errors"
)

// defaultPoolWorkers bounds concurrent agent processes per pool.
const defaultPoolWorkers = 4

// Future is a handle to a task submitted to a Pool.
type Future[T any] struct {
	done  chan struct{}
	value T
	err   error
}

func newFuture[T any]() *Future[T] {
	return &Future[T]{done: make(chan struct{})}
}

// resolve publishes the task outcome. Called exactly once.
func (f *Future[T]) resolve(value T, err error) {
	f.value = value
	f.err = err
	close(f.done)
}

// Wait blocks until the task finishes or ctx is cancelled. Waiting with
// a cancelled context abandons the wait, not the task.
func (f *Future[T]) Wait(ctx context.Context) (T, error) {
	select {
	case <-f.done:
		return f.value, f.err
	case <-ctx.Done():
		var zero T
		return zero, ctx.Err()
	}
}

// Done returns a channel closed when the task has finished.
func (f *Future[T]) Done() <-chan struct{} {
	return f.done
}

// PoolOption configures a Pool.
type PoolOption func(*poolConfig)

type poolConfig struct {
	workers int64
}

// WithWorkers sets how many agent processes the pool runs at once.
// Values below one fall back to the default of four.
func WithWorkers(n int) PoolOption {
	return func(c *poolConfig) {
		if n > 0 {
			c.workers = int64(n)
		}
	}
}

// Pool runs queries on a bounded set of workers so a burst of prompts
// does not fork an unbounded number of agent processes.
//
// Every task owns its process end to end: cancelling or timing out one
// task never disturbs its siblings. Tasks carry their submission
// context, so a task whose context dies while queued resolves with that
// context's error instead of running.
//
// Example usage:
//
//	pool := cursoragent.NewPool(client)
//	defer pool.Close()
//
//	futures := make([]*cursoragent.Future[*cursoragent.Result], len(prompts))
//	for i, prompt := range prompts {
//	    futures[i] = pool.Submit(ctx, prompt)
//	}
//	for _, fut := range futures {
//	    result, err := fut.Wait(ctx)
//	    // ...
//	}
type Pool struct {
	client *Client
	sem    *semaphore.Weighted

	mu     sync.Mutex
	closed bool
	wg     sync.WaitGroup
}

// NewPool creates a pool over client. A nil client gets the default
// configuration.
func NewPool(client *Client, opts ...PoolOption) *Pool {
	if client == nil {
		client = New()
	}

	cfg := &poolConfig{workers: defaultPoolWorkers}
	for _, opt := range opts {
		opt(cfg)
	}

	return &Pool{
		client: client,
		sem:    semaphore.NewWeighted(cfg.workers),
	}
}

// Submit schedules a single-shot query and returns immediately. The
// future resolves to whatever Client.Query would have returned.
// Submitting to a closed pool resolves with ErrPoolClosed.
func (p *Pool) Submit(ctx context.Context, prompt string, opts ...QueryOption) *Future[*Result] {
	fut := newFuture[*Result]()

	spawnInto(ctx, p, fut, func() (*Result, error) {
		return p.client.Query(ctx, prompt, opts...)
	})

	return fut
}

// SubmitStream schedules a streaming query that a worker drains to
// completion. onEvent, when non-nil, is invoked synchronously for each
// event as it arrives; the future resolves to the full event log once
// the stream ends.
func (p *Pool) SubmitStream(ctx context.Context, prompt string, onEvent func(Event), opts ...QueryOption) *Future[[]Event] {
	fut := newFuture[[]Event]()

	spawnInto(ctx, p, fut, func() ([]Event, error) {
		stream, err := p.client.QueryStream(ctx, prompt, opts...)
		if err != nil {
			return nil, err
		}
		defer stream.Close()

		for ev := range stream.Events() {
			if onEvent != nil {
				onEvent(ev)
			}
		}

		return stream.Collected(), nil
	})

	return fut
}

// QueryMany runs every prompt through the pool and returns results in
// prompt order. Agent-side failures arrive as failure results in their
// slot; the error return is reserved for launch errors, which abort the
// whole batch since every prompt would hit the same one.
func (p *Pool) QueryMany(ctx context.Context, prompts []string, opts ...QueryOption) ([]*Result, error) {
	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		return nil, errors.ErrPoolClosed
	}
	p.mu.Unlock()

	results := make([]*Result, len(prompts))

	g, gctx := errgroup.WithContext(ctx)
	for i, prompt := range prompts {
		g.Go(func() error {
			if err := p.sem.Acquire(gctx, 1); err != nil {
				return err
			}
			defer p.sem.Release(1)

			result, err := p.client.Query(gctx, prompt, opts...)
			if err != nil {
				return err
			}

			results[i] = result

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return results, nil
}

// Close marks the pool closed and waits for in-flight tasks to finish.
// Later submissions resolve with ErrPoolClosed.
func (p *Pool) Close() {
	p.mu.Lock()
	p.closed = true
	p.mu.Unlock()

	p.wg.Wait()
}

// spawnInto runs task on a worker goroutine and resolves fut with its
// outcome. The worker slot is acquired with the task's own context so a
// queued task can still be abandoned individually.
func spawnInto[T any](ctx context.Context, p *Pool, fut *Future[T], task func() (T, error)) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.closed {
		var zero T
		fut.resolve(zero, errors.ErrPoolClosed)

		return
	}

	p.wg.Go(func() {
		if err := p.sem.Acquire(ctx, 1); err != nil {
			var zero T
			fut.resolve(zero, err)

			return
		}
		defer p.sem.Release(1)

		fut.resolve(task())
	})
}
