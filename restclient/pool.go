/*
 * Copyright (c) 2018 The Go Authors. All rights reserved.
 * Use of this source code is governed by a BSD-style license that can be found in the LICENSE file.
 */

package restclient

import (
	"sync"

	"github.com/matiu2/RESTClient/url"
)

// ConnectionPool is the per-origin multiset of Connections: idle
// Connections are reused across Acquire calls, closed ones are reaped
// before each acquisition, and at most one Lease can reference a given
// Connection at a time.
type ConnectionPool struct {
	mu    sync.Mutex
	host  url.HostInfo
	conns []*Connection
}

// NewConnectionPool returns an empty pool for host.
func NewConnectionPool(host url.HostInfo) *ConnectionPool {
	return &ConnectionPool{host: host}
}

// Lease is a scoped borrow of a Connection from its pool. Release clears
// the in-use marker so a later Acquire can hand the Connection out again.
type Lease struct {
	pool *ConnectionPool
	conn *Connection
}

// Connection returns the leased Connection.
func (l *Lease) Connection() *Connection { return l.conn }

// Release clears the Connection's in-use marker. Safe to call more than
// once.
func (l *Lease) Release() {
	l.pool.mu.Lock()
	defer l.pool.mu.Unlock()
	l.conn.inUse = false
}

// Acquire returns a Lease on one Connection for this pool's origin. An
// idle, open Connection is reused if one exists; otherwise a new
// Connection is created and added to the pool. Closed Connections are
// reaped first.
func (p *ConnectionPool) Acquire() *Lease {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.reapLocked()

	for _, c := range p.conns {
		if !c.inUse && c.Open() {
			c.inUse = true
			return &Lease{pool: p, conn: c}
		}
	}

	c := NewConnection(p.host)
	c.inUse = true
	p.conns = append(p.conns, c)
	return &Lease{pool: p, conn: c}
}

func (p *ConnectionPool) reapLocked() {
	live := p.conns[:0]
	for _, c := range p.conns {
		if c.inUse || c.Open() {
			live = append(live, c)
		}
	}
	p.conns = live
}

// Cleanup removes all closed Connections from the pool. Destroying a pool
// with any open Connection is a programmer error: the pool cannot close
// them itself, since close may involve awaiting a graceful TLS shutdown
// — the caller must Close every Connection it used before
// letting the pool go out of scope.
func (p *ConnectionPool) Cleanup() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.reapLocked()
}
