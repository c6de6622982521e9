/*
 * Copyright (c) 2018 The Go Authors. All rights reserved.
 * Use of this source code is governed by a BSD-style license that can be found in the LICENSE file.
 */

package restclient

import (
	"bufio"
	"bytes"
	"compress/gzip"
	"errors"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadResponseContentLengthBody(t *testing.T) {
	wire := "HTTP/1.1 200 OK\r\nContent-Length: 5\r\nConnection: keep-alive\r\n\r\nhello"
	resp := NewResponse()
	require.NoError(t, readResponse(bufio.NewReader(strings.NewReader(wire)), resp))
	assert.Equal(t, 200, resp.Code)
	assert.True(t, resp.keepAlive)
	s, err := resp.Body.ToString()
	require.NoError(t, err)
	assert.Equal(t, "hello", s)
}

func TestReadResponseChunkedBody(t *testing.T) {
	wire := "HTTP/1.1 200 OK\r\nTransfer-Encoding: chunked\r\n\r\n4\r\nWiki\r\n0\r\n\r\n"
	resp := NewResponse()
	require.NoError(t, readResponse(bufio.NewReader(strings.NewReader(wire)), resp))
	s, err := resp.Body.ToString()
	require.NoError(t, err)
	assert.Equal(t, "Wiki", s)
}

func TestReadResponseConnectionCloseEndsKeepAlive(t *testing.T) {
	wire := "HTTP/1.1 200 OK\r\nConnection: close\r\n\r\nrest of the stream"
	resp := NewResponse()
	require.NoError(t, readResponse(bufio.NewReader(strings.NewReader(wire)), resp))
	assert.False(t, resp.keepAlive)
	s, err := resp.Body.ToString()
	require.NoError(t, err)
	assert.Equal(t, "rest of the stream", s)
}

func TestReadResponseNonOKReasonReturnsHttpStatusError(t *testing.T) {
	wire := "HTTP/1.1 404 Not Found\r\nContent-Length: 9\r\n\r\nnot found"
	resp := NewResponse()
	err := readResponse(bufio.NewReader(strings.NewReader(wire)), resp)
	require.Error(t, err)
	var statusErr *HttpStatusError
	require.True(t, errors.As(err, &statusErr))
	assert.Equal(t, 404, statusErr.Code)
	assert.Equal(t, "not found", statusErr.Body)

	s, _ := resp.Body.ToString()
	assert.Equal(t, "not found", s)
}

func TestReadResponseGzipContentEncoding(t *testing.T) {
	var compressed bytes.Buffer
	gz := gzip.NewWriter(&compressed)
	_, err := gz.Write([]byte("decompressed payload"))
	require.NoError(t, err)
	require.NoError(t, gz.Close())

	wire := "HTTP/1.1 200 OK\r\nContent-Encoding: gzip\r\nContent-Length: " +
		strconv.Itoa(compressed.Len()) + "\r\n\r\n" + compressed.String()

	resp := NewResponse()
	require.NoError(t, readResponse(bufio.NewReader(strings.NewReader(wire)), resp))
	s, err := resp.Body.ToString()
	require.NoError(t, err)
	assert.Equal(t, "decompressed payload", s)
}

func TestReadResponseZeroLengthBody(t *testing.T) {
	wire := "HTTP/1.1 204 OK\r\nConnection: keep-alive\r\n\r\n"
	resp := NewResponse()
	require.NoError(t, readResponse(bufio.NewReader(strings.NewReader(wire)), resp))
	s, err := resp.Body.ToString()
	require.NoError(t, err)
	assert.Equal(t, "", s)
}

