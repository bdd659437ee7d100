// Package worker provides a worker pool for searching root moves in
// parallel. Every work item carries its own board so workers never share
// mutable state.
package worker

import (
	"sync"
	"sync/atomic"

	"github.com/lgbarn/chess-engine-go/internal/chess"
)

// WorkItem is one root move to evaluate on a private copy of the position.
type WorkItem struct {
	Board *chess.Board // Owned by the worker that receives the item
	Move  chess.Move
	Index int // Enumeration index, used to merge results deterministically
}

// ProcessResult is the outcome of evaluating a WorkItem.
type ProcessResult struct {
	Index   int
	Move    chess.Move
	Score   int
	Nodes   int64
	Skipped bool // Move was illegal or not searched
	Err     error
}

// ProcessFunc is the function signature for processing a work item.
type ProcessFunc func(item WorkItem) ProcessResult

// Pool manages a fixed set of goroutines feeding from a shared channel.
type Pool struct {
	numWorkers  int
	bufferSize  int
	workChan    chan WorkItem
	resultChan  chan ProcessResult
	processFunc ProcessFunc
	wg          sync.WaitGroup
	stopped     atomic.Bool
	processed   atomic.Int64
}

// PoolOption configures a Pool.
type PoolOption func(*Pool)

// WithWorkers sets the number of worker goroutines.
func WithWorkers(n int) PoolOption {
	return func(p *Pool) {
		if n >= 1 {
			p.numWorkers = n
		}
	}
}

// WithBufferSize sets the channel buffer size.
func WithBufferSize(size int) PoolOption {
	return func(p *Pool) {
		if size >= 1 {
			p.bufferSize = size
		}
	}
}

// NewPool creates a pool with the given number of workers and buffer size.
// Values below one are raised to one.
func NewPool(numWorkers, bufferSize int, processFunc ProcessFunc) *Pool {
	return NewPoolWithOptions(processFunc, WithWorkers(numWorkers), WithBufferSize(bufferSize))
}

// NewPoolWithOptions creates a pool using functional options.
// Default: 1 worker, buffer size of 10.
func NewPoolWithOptions(processFunc ProcessFunc, opts ...PoolOption) *Pool {
	p := &Pool{
		numWorkers:  1,
		bufferSize:  10,
		processFunc: processFunc,
	}
	for _, opt := range opts {
		opt(p)
	}
	p.workChan = make(chan WorkItem, p.bufferSize)
	p.resultChan = make(chan ProcessResult, p.bufferSize)
	return p
}

// Start launches the worker goroutines.
func (p *Pool) Start() {
	for i := 0; i < p.numWorkers; i++ {
		p.wg.Add(1)
		go p.worker()
	}
}

func (p *Pool) worker() {
	defer p.wg.Done()

	for item := range p.workChan {
		if p.IsStopped() {
			continue // drain
		}
		res := p.processFunc(item)
		p.processed.Add(1)
		p.resultChan <- res
	}
}

// Submit queues a work item, blocking while the buffer is full.
func (p *Pool) Submit(item WorkItem) {
	p.workChan <- item
}

// TrySubmit queues a work item without blocking.
// Returns false if the buffer is full or the pool is stopped.
func (p *Pool) TrySubmit(item WorkItem) bool {
	if p.IsStopped() {
		return false
	}
	select {
	case p.workChan <- item:
		return true
	default:
		return false
	}
}

// Stop makes workers discard queued items instead of processing them.
func (p *Pool) Stop() {
	p.stopped.Store(true)
}

// IsStopped returns true once Stop has been called.
func (p *Pool) IsStopped() bool {
	return p.stopped.Load()
}

// Close closes the work channel, waits for the workers and then closes
// the result channel.
func (p *Pool) Close() {
	close(p.workChan)
	p.wg.Wait()
	close(p.resultChan)
}

// Results returns the result channel.
func (p *Pool) Results() <-chan ProcessResult {
	return p.resultChan
}

// NumWorkers returns the number of workers in the pool.
func (p *Pool) NumWorkers() int {
	return p.numWorkers
}

// Processed returns how many items have been processed so far.
func (p *Pool) Processed() int64 {
	return p.processed.Load()
}
