/*
 * Copyright (c) 2018 The Go Authors. All rights reserved.
 * Use of this source code is governed by a BSD-style license that can be found in the LICENSE file.
 */

package restclient

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matiu2/RESTClient/url"
)

func TestJobQueueFIFOOrder(t *testing.T) {
	q := NewJobQueue()
	origin := url.HostInfo{Scheme: url.SchemeHTTP, Hostname: "example.com"}
	q.Push(job{name: "a", origin: origin})
	q.Push(job{name: "b", origin: origin})
	q.Push(job{name: "c", origin: origin})
	assert.Equal(t, 3, q.Len())

	first, ok := q.Pop()
	require.True(t, ok)
	assert.Equal(t, "a", first.name)

	second, ok := q.Pop()
	require.True(t, ok)
	assert.Equal(t, "b", second.name)

	assert.Equal(t, 1, q.Len())
}

func TestJobQueuePopEmptyReportsFalse(t *testing.T) {
	q := NewJobQueue()
	_, ok := q.Pop()
	assert.False(t, ok)
}

func TestJobQueuePushWhileDraining(t *testing.T) {
	q := NewJobQueue()
	origin := url.HostInfo{Scheme: url.SchemeHTTP, Hostname: "example.com"}
	q.Push(job{name: "a", origin: origin})

	first, ok := q.Pop()
	require.True(t, ok)
	assert.Equal(t, "a", first.name)

	// A new push after the queue was observed empty must still be visible.
	q.Push(job{name: "b", origin: origin})
	assert.Equal(t, 1, q.Len())
}
