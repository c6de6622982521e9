/*
 * Copyright (c) 2018 The Go Authors. All rights reserved.
 * Use of this source code is governed by a BSD-style license that can be found in the LICENSE file.
 */

package restclient

import (
	"context"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/matiu2/RESTClient/url"
)

// defaultMaxWorkersPerOrigin caps concurrent Connections per origin.
const defaultMaxWorkersPerOrigin = 4

// Client is the job distributor: callers Enqueue work against an origin
// and call Run to drain every origin's queue, at most
// maxWorkersPerOrigin Connections open per origin at a time.
type Client struct {
	mu                  sync.Mutex
	queues              map[url.HostInfo]*JobQueue
	pools               map[url.HostInfo]*ConnectionPool
	log                 *logrus.Logger
	maxWorkersPerOrigin int
}

// Option configures a Client at construction time.
type Option func(*Client)

// WithLogger overrides the logrus.Logger the Client and its workers log
// through. The default is logrus.StandardLogger().
func WithLogger(log *logrus.Logger) Option {
	return func(c *Client) { c.log = log }
}

// WithMaxWorkersPerOrigin overrides the default concurrency cap of 4
// Connections per origin.
func WithMaxWorkersPerOrigin(n int) Option {
	return func(c *Client) {
		if n > 0 {
			c.maxWorkersPerOrigin = n
		}
	}
}

// NewClient returns an empty Client ready to accept Enqueue calls.
func NewClient(opts ...Option) *Client {
	c := &Client{
		queues:              make(map[url.HostInfo]*JobQueue),
		pools:               make(map[url.HostInfo]*ConnectionPool),
		log:                 logrus.StandardLogger(),
		maxWorkersPerOrigin: defaultMaxWorkersPerOrigin,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Enqueue appends a Job bound to origin. Safe to call concurrently with
// Run — a queue may receive new work after its drain has begun.
func (c *Client) Enqueue(name string, origin url.HostInfo, fn JobFunc) {
	c.mu.Lock()
	q, ok := c.queues[origin]
	if !ok {
		q = NewJobQueue()
		c.queues[origin] = q
		c.pools[origin] = NewConnectionPool(origin)
	}
	c.mu.Unlock()
	q.Push(job{name: name, origin: origin, fn: fn})
}

// Run drives every non-empty origin queue to completion, spawning up to
// maxWorkersPerOrigin workers per origin and repeating until no origin has
// outstanding work. It returns once every queue it observed
// is empty, or ctx is done.
func (c *Client) Run(ctx context.Context) error {
	for {
		origins := c.nonEmptyOrigins()
		if len(origins) == 0 {
			return nil
		}

		var wg sync.WaitGroup
		for _, origin := range origins {
			c.mu.Lock()
			queue := c.queues[origin]
			pool := c.pools[origin]
			c.mu.Unlock()

			n := c.maxWorkersPerOrigin
			if queued := queue.Len(); queued < n {
				n = queued
			}
			for i := 0; i < n; i++ {
				wg.Add(1)
				go func(origin url.HostInfo, pool *ConnectionPool, queue *JobQueue) {
					defer wg.Done()
					runWorker(ctx, origin, pool, queue, c.log)
				}(origin, pool, queue)
			}
		}
		wg.Wait()

		if err := ctx.Err(); err != nil {
			return err
		}
		c.dropDrainedOrigins()
	}
}

func (c *Client) nonEmptyOrigins() []url.HostInfo {
	c.mu.Lock()
	defer c.mu.Unlock()
	origins := make([]url.HostInfo, 0, len(c.queues))
	for origin, q := range c.queues {
		if q.Len() > 0 {
			origins = append(origins, origin)
		}
	}
	return origins
}

func (c *Client) dropDrainedOrigins() {
	c.mu.Lock()
	defer c.mu.Unlock()
	for origin, q := range c.queues {
		if q.Len() == 0 {
			delete(c.queues, origin)
			if pool, ok := c.pools[origin]; ok {
				pool.Cleanup()
				delete(c.pools, origin)
			}
		}
	}
}
