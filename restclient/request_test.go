/*
 * Copyright (c) 2018 The Go Authors. All rights reserved.
 * Use of this source code is governed by a BSD-style license that can be found in the LICENSE file.
 */

package restclient

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddDefaultHeadersDoesNotClobberCaller(t *testing.T) {
	req := NewRequest(GET, "/")
	req.Headers.Set("Accept", "application/json")
	addDefaultHeaders(req, "example.com:8443")
	assert.Equal(t, "application/json", req.Headers.Get("Accept"))
	assert.Equal(t, "example.com:8443", req.Headers.Get("Host"))
	assert.Equal(t, "gzip, deflate", req.Headers.Get("Accept-Encoding"))
}

func TestWriteRequestContentLengthFraming(t *testing.T) {
	req := NewRequest(POST, "/items")
	req.Body = NewBodyString("payload")
	addDefaultHeaders(req, "example.com")

	var buf bytes.Buffer
	require.NoError(t, writeRequest(&buf, req))

	wire := buf.String()
	assert.True(t, strings.HasPrefix(wire, "POST /items HTTP/1.1\r\n"))
	assert.Contains(t, wire, "Content-Length: 7\r\n")
	assert.True(t, strings.HasSuffix(wire, "payload"))
}

func TestWriteRequestChunkedFramingForStreamedBody(t *testing.T) {
	req := NewRequest(PUT, "/stream")
	req.stream = strings.NewReader("streamed body of unknown length")

	var buf bytes.Buffer
	require.NoError(t, writeRequest(&buf, req))

	wire := buf.String()
	assert.Contains(t, wire, "Transfer-Encoding: chunked\r\n")
	assert.NotContains(t, wire, "Content-Length:")
	assert.True(t, strings.HasSuffix(wire, "0\r\n\r\n"))
}

func TestWriteRequestDefaultsPathToSlash(t *testing.T) {
	req := NewRequest(GET, "")
	var buf bytes.Buffer
	require.NoError(t, writeRequest(&buf, req))
	assert.True(t, strings.HasPrefix(buf.String(), "GET / HTTP/1.1\r\n"))
}
