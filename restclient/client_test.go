/*
 * Copyright (c) 2018 The Go Authors. All rights reserved.
 * Use of this source code is governed by a BSD-style license that can be found in the LICENSE file.
 */

package restclient

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matiu2/RESTClient/url"
)

func TestClientRunDrainsAllQueuedJobs(t *testing.T) {
	c := NewClient(WithMaxWorkersPerOrigin(4))
	originA := url.HostInfo{Scheme: url.SchemeHTTP, Hostname: "a.example.com"}
	originB := url.HostInfo{Scheme: url.SchemeHTTP, Hostname: "b.example.com"}

	var ran int32
	const jobsPerOrigin = 11

	for i := 0; i < jobsPerOrigin; i++ {
		c.Enqueue("a-job", originA, func(name string, origin url.HostInfo, conn *Connection) bool {
			atomic.AddInt32(&ran, 1)
			return true
		})
		c.Enqueue("b-job", originB, func(name string, origin url.HostInfo, conn *Connection) bool {
			atomic.AddInt32(&ran, 1)
			return true
		})
	}

	require.NoError(t, c.Run(context.Background()))
	assert.EqualValues(t, jobsPerOrigin*2, ran)

	// A subsequent Run on the same Client with no queued work is a no-op.
	require.NoError(t, c.Run(context.Background()))
	assert.EqualValues(t, jobsPerOrigin*2, ran)
}

func TestClientRunCapsWorkersPerOrigin(t *testing.T) {
	const workerCap = 3
	c := NewClient(WithMaxWorkersPerOrigin(workerCap))
	origin := url.HostInfo{Scheme: url.SchemeHTTP, Hostname: "capped.example.com"}

	var mu sync.Mutex
	var inFlight, maxInFlight int32
	release := make(chan struct{})
	var once sync.Once

	for i := 0; i < 10; i++ {
		c.Enqueue("job", origin, func(name string, origin url.HostInfo, conn *Connection) bool {
			mu.Lock()
			inFlight++
			if inFlight > maxInFlight {
				maxInFlight = inFlight
			}
			n := inFlight
			mu.Unlock()

			if n >= workerCap {
				once.Do(func() { close(release) })
			}
			<-release

			mu.Lock()
			inFlight--
			mu.Unlock()
			return true
		})
	}

	require.NoError(t, c.Run(context.Background()))
	assert.LessOrEqual(t, int(maxInFlight), workerCap)
}

func TestClientEnqueueWhileRunIsSafe(t *testing.T) {
	c := NewClient(WithMaxWorkersPerOrigin(2))
	origin := url.HostInfo{Scheme: url.SchemeHTTP, Hostname: "chained.example.com"}

	var ran int32
	var chainedOnce sync.Once
	c.Enqueue("seed", origin, func(name string, origin url.HostInfo, conn *Connection) bool {
		atomic.AddInt32(&ran, 1)
		chainedOnce.Do(func() {
			c.Enqueue("chained", origin, func(name string, origin url.HostInfo, conn *Connection) bool {
				atomic.AddInt32(&ran, 1)
				return true
			})
		})
		return true
	})

	require.NoError(t, c.Run(context.Background()))
	assert.EqualValues(t, 2, ran)
}
