package worker

import (
	"context"
	"errors"
	"sync"
	"time"
)

type Task func(ctx context.Context) error

// Result reports the outcome of the task submitted at position Index.
type Result struct {
	Index int
	Err   error
}

type indexedTask struct {
	index int
	run   Task
}

type Pool struct {
	workers int
	tasks   chan indexedTask
	wg      sync.WaitGroup
	mu      sync.RWMutex
	rate    <-chan time.Time
	ticker  *time.Ticker
	next    int
	closed  bool
}

func NewPool(workers, buffer int) *Pool {
	if workers <= 0 {
		workers = 1
	}
	if buffer < 0 {
		buffer = 0
	}
	return &Pool{
		workers: workers,
		tasks:   make(chan indexedTask, buffer),
	}
}

func (p *Pool) Workers() int {
	if p == nil {
		return 0
	}
	return p.workers
}

// SetRateLimit spaces task starts across all workers. rps <= 0 removes the limit.
func (p *Pool) SetRateLimit(rps int) {
	if p == nil {
		return
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	p.stopTicker()
	if rps <= 0 {
		return
	}
	p.ticker = time.NewTicker(time.Second / time.Duration(rps))
	p.rate = p.ticker.C
}

func (p *Pool) stopTicker() {
	if p.ticker != nil {
		p.ticker.Stop()
		p.ticker = nil
		p.rate = nil
	}
}

// SubmitContext enqueues t unless ctx ends first. Tasks are indexed in submission order.
func (p *Pool) SubmitContext(ctx context.Context, t Task) error {
	if p == nil || t == nil {
		return nil
	}
	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		return errPoolClosed
	}
	idx := p.next
	p.next++
	p.mu.Unlock()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case p.tasks <- indexedTask{index: idx, run: t}:
		return nil
	}
}

// Close stops accepting tasks. Queued tasks still run; the rate ticker stops once workers exit.
func (p *Pool) Close() {
	if p == nil {
		return
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed {
		return
	}
	p.closed = true
	close(p.tasks)
}

// Run starts the workers. The returned channel closes once the pool is closed and drained,
// or once ctx ends.
func (p *Pool) Run(ctx context.Context) <-chan Result {
	if p == nil {
		out := make(chan Result)
		close(out)
		return out
	}
	out := make(chan Result, p.workers*1024)

	p.wg.Add(p.workers)
	for i := 0; i < p.workers; i++ {
		go func() {
			defer p.wg.Done()
			for {
				select {
				case <-ctx.Done():
					return
				case t, ok := <-p.tasks:
					if !ok {
						return
					}
					p.mu.RLock()
					rate := p.rate
					p.mu.RUnlock()
					if rate != nil {
						select {
						case <-ctx.Done():
							return
						case <-rate:
						}
					}
					err := t.run(ctx)
					select {
					case <-ctx.Done():
						return
					case out <- Result{Index: t.index, Err: err}:
					}
				}
			}
		}()
	}

	go func() {
		p.wg.Wait()
		p.mu.Lock()
		p.stopTicker()
		p.mu.Unlock()
		close(out)
	}()

	return out
}

var errPoolClosed = errors.New("worker pool closed")

// Limits bounds a batch run. PerSecond <= 0 leaves task starts unthrottled.
type Limits struct {
	Workers   int
	PerSecond int
}

// Each runs fn for every index in [0, n) on a fresh pool and returns the first error.
// Remaining tasks are cancelled once an error is seen.
func Each(ctx context.Context, limits Limits, n int, fn func(ctx context.Context, i int) error) error {
	if err := ctx.Err(); err != nil || n <= 0 {
		return err
	}
	workers := limits.Workers
	if workers > n {
		workers = n
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	p := NewPool(workers, workers)
	p.SetRateLimit(limits.PerSecond)
	results := p.Run(ctx)

	go func() {
		defer p.Close()
		for i := 0; i < n; i++ {
			i := i
			if err := p.SubmitContext(ctx, func(ctx context.Context) error { return fn(ctx, i) }); err != nil {
				return
			}
		}
	}()

	var firstErr error
	done := 0
	for r := range results {
		done++
		if r.Err != nil && firstErr == nil {
			firstErr = r.Err
			cancel()
		}
	}
	if firstErr != nil {
		return firstErr
	}
	if done < n {
		if err := ctx.Err(); err != nil {
			return err
		}
	}
	return nil
}
