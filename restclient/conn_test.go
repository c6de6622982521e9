/*
 * Copyright (c) 2018 The Go Authors. All rights reserved.
 * Use of this source code is governed by a BSD-style license that can be found in the LICENSE file.
 */

package restclient

import (
	"errors"
	"io"
	"net"
	"os"
	"syscall"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/matiu2/RESTClient/url"
)

func TestIsBenignShutdownAcceptsEOF(t *testing.T) {
	assert.True(t, isBenignShutdown(io.EOF))
}

func TestIsBenignShutdownAcceptsNil(t *testing.T) {
	assert.True(t, isBenignShutdown(nil))
}

func TestIsBenignShutdownAcceptsClosedConn(t *testing.T) {
	assert.True(t, isBenignShutdown(net.ErrClosed))
}

func TestIsBenignShutdownAcceptsConnectionResetOnClose(t *testing.T) {
	opErr := &net.OpError{Op: "close", Err: &os.SyscallError{Syscall: "write", Err: syscall.ECONNRESET}}
	assert.True(t, isBenignShutdown(opErr))
}

func TestIsBenignShutdownAcceptsBrokenPipeOnWrite(t *testing.T) {
	opErr := &net.OpError{Op: "write", Err: &os.SyscallError{Syscall: "write", Err: syscall.EPIPE}}
	assert.True(t, isBenignShutdown(opErr))
}

func TestIsBenignShutdownRejectsUnrelatedOpError(t *testing.T) {
	opErr := &net.OpError{Op: "close", Err: errors.New("broken pipe")}
	assert.False(t, isBenignShutdown(opErr))
}

func TestIsBenignShutdownRejectsResetOnReadNotCloseOrWrite(t *testing.T) {
	opErr := &net.OpError{Op: "read", Err: &os.SyscallError{Syscall: "read", Err: syscall.ECONNRESET}}
	assert.False(t, isBenignShutdown(opErr))
}

func TestIsBenignShutdownRejectsOtherErrors(t *testing.T) {
	assert.False(t, isBenignShutdown(errors.New("something else went wrong")))
}

func TestConnectionCloseOnUnopenedConnectionIsNoop(t *testing.T) {
	conn := NewConnection(url.HostInfo{Scheme: url.SchemeHTTP, Hostname: "example.com"})
	assert.NoError(t, conn.Close())
	assert.False(t, conn.Open())
}
