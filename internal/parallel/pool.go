// Package parallel runs independent jobs on a fixed set of goroutines.
//
// cmd/geomdemo uses it to flatten every (curve, tolerance) pair of a sweep
// concurrently. Each worker owns a queue and steals from the others when its
// own runs dry, which keeps all workers busy when jobs differ in cost, as
// flattening at 0.001 does compared to 1.
package parallel

import (
	"context"
	"runtime"
	"sync"
	"sync/atomic"
)

// WorkerPool is a pool of goroutines with per-worker queues.
// It is safe for concurrent use.
type WorkerPool struct {
	queues  []chan func()
	done    chan struct{}
	wg      sync.WaitGroup
	running atomic.Bool
}

// NewWorkerPool starts workers goroutines. A non-positive count means
// GOMAXPROCS.
func NewWorkerPool(workers int) *WorkerPool {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	queueSize := max(workers*4, 8)

	p := &WorkerPool{
		queues: make([]chan func(), workers),
		done:   make(chan struct{}),
	}
	for i := range p.queues {
		p.queues[i] = make(chan func(), queueSize)
	}
	p.running.Store(true)

	p.wg.Add(workers)
	for i := range workers {
		go p.worker(i)
	}
	return p
}

func (p *WorkerPool) worker(id int) {
	defer p.wg.Done()
	own := p.queues[id]
	for {
		select {
		case job := <-own:
			job()
			continue
		case <-p.done:
			p.drain(own)
			return
		default:
		}

		if job := p.steal(id); job != nil {
			job()
			continue
		}
		select {
		case job := <-own:
			job()
		case <-p.done:
			p.drain(own)
			return
		}
	}
}

func (p *WorkerPool) drain(queue chan func()) {
	for {
		select {
		case job := <-queue:
			job()
		default:
			return
		}
	}
}

// steal takes one job from another worker's queue, or returns nil.
func (p *WorkerPool) steal(self int) func() {
	for i := 1; i < len(p.queues); i++ {
		select {
		case job := <-p.queues[(self+i)%len(p.queues)]:
			return job
		default:
		}
	}
	return nil
}

// Run executes jobs and waits for them to finish. Jobs are dealt round-robin
// to the worker queues. When ctx is cancelled, jobs not yet started are
// skipped and ctx.Err() is returned once the started ones complete.
// Run on a closed pool returns ErrClosed; Close must not be called while
// Run is in progress.
func (p *WorkerPool) Run(ctx context.Context, jobs []func()) error {
	if !p.running.Load() {
		return ErrClosed
	}
	var pending sync.WaitGroup
	pending.Add(len(jobs))

	for i, job := range jobs {
		wrapped := func() {
			defer pending.Done()
			if ctx.Err() == nil {
				job()
			}
		}
		select {
		case p.queues[i%len(p.queues)] <- wrapped:
		case <-ctx.Done():
			pending.Add(-(len(jobs) - i))
			pending.Wait()
			return ctx.Err()
		case <-p.done:
			pending.Add(-(len(jobs) - i))
			pending.Wait()
			return ErrClosed
		}
	}
	pending.Wait()
	return ctx.Err()
}

// Close stops accepting work, runs what is queued and waits for the
// workers to exit. It is safe to call more than once.
func (p *WorkerPool) Close() {
	if !p.running.CompareAndSwap(true, false) {
		return
	}
	close(p.done)
	p.wg.Wait()
}

// Workers returns the number of worker goroutines.
func (p *WorkerPool) Workers() int {
	return len(p.queues)
}
