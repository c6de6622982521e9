/*
 * Copyright (c) 2018 The Go Authors. All rights reserved.
 * Use of this source code is governed by a BSD-style license that can be found in the LICENSE file.
 */

package restclient

import "sync"

// JobQueue is a FIFO of jobs for a single origin. Push is safe to call
// while a worker is draining the same queue — a goroutine
// holds the mutex only long enough to splice one element in or out.
type JobQueue struct {
	mu    sync.Mutex
	items []job
}

// NewJobQueue returns an empty queue.
func NewJobQueue() *JobQueue {
	return &JobQueue{}
}

// Push appends j to the back of the queue.
func (q *JobQueue) Push(j job) {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.items = append(q.items, j)
}

// Pop removes and returns the front job, or ok=false if the queue is empty.
func (q *JobQueue) Pop() (j job, ok bool) {
	q.mu.Lock()
	defer q.mu.Unlock()
	if len(q.items) == 0 {
		return job{}, false
	}
	j = q.items[0]
	q.items = q.items[1:]
	return j, true
}

// Len returns the number of jobs currently queued.
func (q *JobQueue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.items)
}
