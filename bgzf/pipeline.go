// Copyright 2026 The bamrescue Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package bgzf

import (
	"context"
	"runtime"

	"golang.org/x/sync/semaphore"
)

// pendingResult is a single outstanding payload-validation task.
type pendingResult struct {
	ch chan blockStatus
}

func (p pendingResult) wait() blockStatus { return <-p.ch }

// pipeline dispatches payload validation across a bounded worker pool, or
// inline on the calling goroutine when workers == 1, while preserving
// enqueue order on output: workers may finish out of order, but draining the
// queue always yields results in the order blocks were dispatched.
type pipeline struct {
	workers int
	sem     *semaphore.Weighted
	queue   []pendingResult
}

// newPipeline builds a pipeline for the given worker count. workers == 0
// means "use the machine's logical CPU count".
func newPipeline(workers int) *pipeline {
	if workers == 0 {
		workers = runtime.NumCPU()
	}
	p := &pipeline{workers: workers}
	if workers > 1 {
		p.sem = semaphore.NewWeighted(int64(workers))
	}
	return p
}

// inline reports whether the pipeline validates payloads synchronously on
// the calling goroutine instead of farming them out to workers.
func (p *pipeline) inline() bool { return p.workers == 1 }

// dispatch starts validating blk's payload. On an inline pipeline it
// validates immediately and returns an already-resolved result; otherwise it
// blocks until a worker slot is free, then validates on a new goroutine.
func (p *pipeline) dispatch(blk *blockRecord) pendingResult {
	ch := make(chan blockStatus, 1)
	if p.inline() {
		ch <- validatePayload(blk)
		return pendingResult{ch: ch}
	}

	_ = p.sem.Acquire(context.Background(), 1)
	go func() {
		defer p.sem.Release(1)
		ch <- validatePayload(blk)
	}()
	return pendingResult{ch: ch}
}

// full reports whether the outstanding-task queue is at its bound.
func (p *pipeline) full() bool { return len(p.queue) == maxOutstanding }

// push enqueues a freshly dispatched task.
func (p *pipeline) push(r pendingResult) { p.queue = append(p.queue, r) }

// popOldest blocks until the oldest outstanding task completes and removes
// it from the queue.
func (p *pipeline) popOldest() blockStatus {
	r := p.queue[0]
	p.queue = p.queue[1:]
	return r.wait()
}

// drain waits for every remaining outstanding task, in FIFO order, and
// empties the queue.
func (p *pipeline) drain() []blockStatus {
	results := make([]blockStatus, 0, len(p.queue))
	for _, r := range p.queue {
		results = append(results, r.wait())
	}
	p.queue = nil
	return results
}
