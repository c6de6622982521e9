/*
 * Copyright (c) 2018 The Go Authors. All rights reserved.
 * Use of this source code is governed by a BSD-style license that can be found in the LICENSE file.
 */

package restclient

import (
	"bufio"
	"crypto/tls"
	"net"
	"sync"

	"github.com/matiu2/RESTClient/url"
)

// Connection owns one socket — plain TCP or TLS-over-TCP — against one
// HostInfo. It resolves lazily on first use, caches the
// resolved endpoint list, and is reused across sequential jobs from a
// worker until the worker has no further job for it.
type Connection struct {
	mu sync.Mutex

	host url.HostInfo

	endpoints []string // host:port pairs, cached after first successful resolve
	netConn   net.Conn
	closed    bool

	bw *bufio.Writer
	br *bufio.Reader

	inUse bool
}

// NewConnection returns an unopened Connection for host. The socket is not
// dialed until the first request.
func NewConnection(host url.HostInfo) *Connection {
	return &Connection{host: host, closed: true}
}

// Open reports whether the underlying socket is currently open. Used by
// ConnectionPool's reaping pass instead of re-deriving
// liveness from socket internals on every acquire.
func (c *Connection) Open() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.netConn != nil && !c.closed
}

func (c *Connection) isTLS() bool {
	_, ok := c.netConn.(*tls.Conn)
	return ok
}
