/*
 * Copyright (c) 2018 The Go Authors. All rights reserved.
 * Use of this source code is governed by a BSD-style license that can be found in the LICENSE file.
 */

package restclient

import (
	"bufio"
	"context"
	"crypto/tls"
	"errors"
	"fmt"
	"io"
	"net"
	"os"
	"strconv"
	"syscall"
	"time"

	"github.com/matiu2/RESTClient/hdr"
)

// ensureConnection resolves the host on first use and opens the socket if
// it is not already open, performing a TLS handshake with hostname
// verification when the origin is https.
func (c *Connection) ensureConnection(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.netConn != nil && !c.closed {
		return nil
	}

	if len(c.endpoints) == 0 {
		addrs, err := net.DefaultResolver.LookupHost(ctx, c.host.Hostname)
		if err != nil {
			return fmt.Errorf("%w: %v", ErrResolve, err)
		}
		port := strconv.Itoa(int(c.host.GetPort()))
		for _, a := range addrs {
			c.endpoints = append(c.endpoints, net.JoinHostPort(a, port))
		}
	}

	var dialErr error
	var conn net.Conn
	dialer := &net.Dialer{Timeout: 30 * time.Second}
	for _, ep := range c.endpoints {
		conn, dialErr = dialer.DialContext(ctx, "tcp", ep)
		if dialErr == nil {
			break
		}
	}
	if dialErr != nil {
		return fmt.Errorf("%w: %v", ErrConnect, dialErr)
	}

	if c.host.IsSSL() {
		tlsConn := tls.Client(conn, &tls.Config{
			ServerName: c.host.Hostname,
			MinVersion: tls.VersionTLS12,
		})
		if err := tlsConn.HandshakeContext(ctx); err != nil {
			conn.Close()
			return &TlsVerifyError{Host: c.host.Hostname, Err: err}
		}
		conn = tlsConn
	}

	c.netConn = conn
	c.closed = false
	c.bw = bufio.NewWriter(conn)
	c.br = bufio.NewReader(conn)
	return nil
}

// Action sends req over c and returns the parsed Response, propagating
// *HttpStatusError when the reason phrase was not "OK". If
// the caller pre-assigned resp.Body (e.g. to a file-backed Body via
// NewBodyFile), the response is streamed into it instead of memory.
func (c *Connection) Action(ctx context.Context, req *Request, resp *Response) error {
	if err := c.ensureConnection(ctx); err != nil {
		return err
	}

	c.mu.Lock()
	addDefaultHeaders(req, c.host.HostHeader())
	if err := writeRequest(c.bw, req); err != nil {
		c.mu.Unlock()
		c.closeLocked()
		return fmt.Errorf("%w: %v", ErrConnect, err)
	}
	if err := c.bw.Flush(); err != nil {
		c.mu.Unlock()
		c.closeLocked()
		return fmt.Errorf("%w: %v", ErrConnect, err)
	}

	err := readResponse(c.br, resp)
	keepAlive := resp.keepAlive
	c.mu.Unlock()

	var statusErr *HttpStatusError
	if err != nil && !errors.As(err, &statusErr) {
		c.Close()
		return err
	}
	if !keepAlive {
		c.Close()
	}
	return err
}

func (c *Connection) newRequest(method, path string) *Request {
	return NewRequest(method, path)
}

// Get performs a GET against path, with optional extra headers.
func (c *Connection) Get(ctx context.Context, path string, headers hdr.Header) (*Response, error) {
	req := c.newRequest(GET, path)
	for _, k := range headers.Keys() {
		req.Headers.Set(k, headers.Get(k))
	}
	resp := NewResponse()
	return resp, c.Action(ctx, req, resp)
}

// GetToFile performs a GET against path, streaming the response body to
// filePath instead of materializing it in memory.
func (c *Connection) GetToFile(ctx context.Context, path, filePath string) (*Response, error) {
	req := c.newRequest(GET, path)
	resp := NewResponse()
	resp.Body = NewBodyFile(filePath)
	return resp, c.Action(ctx, req, resp)
}

// Del performs a DELETE against path.
func (c *Connection) Del(ctx context.Context, path string) (*Response, error) {
	req := c.newRequest(DELETE, path)
	resp := NewResponse()
	return resp, c.Action(ctx, req, resp)
}

// Put performs a PUT of body against path.
func (c *Connection) Put(ctx context.Context, path, body string) (*Response, error) {
	req := c.newRequest(PUT, path)
	req.Body = NewBodyString(body)
	resp := NewResponse()
	return resp, c.Action(ctx, req, resp)
}

// Post performs a POST of body against path.
func (c *Connection) Post(ctx context.Context, path, body string) (*Response, error) {
	req := c.newRequest(POST, path)
	req.Body = NewBodyString(body)
	resp := NewResponse()
	return resp, c.Action(ctx, req, resp)
}

// Patch performs a PATCH of body against path.
func (c *Connection) Patch(ctx context.Context, path, body string) (*Response, error) {
	req := c.newRequest(PATCH, path)
	req.Body = NewBodyString(body)
	resp := NewResponse()
	return resp, c.Action(ctx, req, resp)
}

// PutStream performs a PUT against path with a request body read from r.
func (c *Connection) PutStream(ctx context.Context, path string, r io.Reader) (*Response, error) {
	return c.actionWithStream(ctx, PUT, path, r)
}

// PostStream performs a POST against path with a request body read from r.
func (c *Connection) PostStream(ctx context.Context, path string, r io.Reader) (*Response, error) {
	return c.actionWithStream(ctx, POST, path, r)
}

// PostFile performs a POST against path with a request body read from the
// file at filePath.
func (c *Connection) PostFile(ctx context.Context, path, filePath string) (*Response, error) {
	req := c.newRequest(POST, path)
	req.Body = NewBodyFile(filePath)
	resp := NewResponse()
	return resp, c.Action(ctx, req, resp)
}

// actionWithStream sends a chunk-encoded request body read directly from r,
// without buffering it into a Body first — the caller's reader may have no
// known length at all.
func (c *Connection) actionWithStream(ctx context.Context, method, path string, r io.Reader) (*Response, error) {
	req := c.newRequest(method, path)
	req.stream = r
	resp := NewResponse()
	return resp, c.Action(ctx, req, resp)
}

// Close shuts the connection down. A TLS session is given a chance at
// graceful shutdown first; benign outcomes (peer closed without
// close_notify, clean mutual close, shutdown aborted because the peer
// dropped) are accepted silently. Any other shutdown error is surfaced as
// *TlsShutdownError, but the socket is still closed.
func (c *Connection) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.closeLocked()
}

func (c *Connection) closeLocked() error {
	if c.netConn == nil || c.closed {
		c.closed = true
		return nil
	}
	var shutdownErr error
	if tlsConn, ok := c.netConn.(*tls.Conn); ok {
		if err := tlsConn.Close(); err != nil && !isBenignShutdown(err) {
			shutdownErr = &TlsShutdownError{Err: err}
		}
	} else {
		c.netConn.Close()
	}
	c.closed = true
	if shutdownErr != nil {
		return shutdownErr
	}
	return nil
}

// isBenignShutdown reports whether err is one of the three non-error
// shutdown outcomes: the peer closing the TCP layer without a
// close_notify (io.EOF), a clean mutual close_notify followed by EOF, or
// the close_notify write aborting because the peer had already dropped
// the connection (ECONNRESET/EPIPE on the close/write). Any other
// *net.OpError — a genuine write failure, timeout, or reset unrelated to
// an already-departed peer — is left as a real error.
func isBenignShutdown(err error) bool {
	if err == nil {
		return true
	}
	if errors.Is(err, io.EOF) || errors.Is(err, net.ErrClosed) {
		return true
	}
	var opErr *net.OpError
	if !errors.As(err, &opErr) {
		return false
	}
	if opErr.Op != "close" && opErr.Op != "write" {
		return false
	}
	var sysErr *os.SyscallError
	if errors.As(opErr.Err, &sysErr) {
		return errors.Is(sysErr.Err, syscall.ECONNRESET) || errors.Is(sysErr.Err, syscall.EPIPE)
	}
	return false
}
