/*
 * Copyright (c) 2018 The Go Authors. All rights reserved.
 * Use of this source code is governed by a BSD-style license that can be found in the LICENSE file.
 */

package hdr

import (
	"bufio"
	"errors"
	"strings"
)

// ErrMalformedHeaderLine is returned by ReadLine when a line is neither a
// valid "Name: Value" pair nor the blank terminator line.
var ErrMalformedHeaderLine = errors.New("hdr: malformed header line")

// ReadLine reads one header line from r. A blank line (bare CRLF) reports
// done=true and ends the header block. Leading and
// trailing whitespace around the value is trimmed; the name is returned
// exactly as it appeared on the wire (case preserved).
func ReadLine(r *bufio.Reader) (name, value string, done bool, err error) {
	line, err := r.ReadString('\n')
	if err != nil {
		return "", "", false, err
	}
	line = strings.TrimRight(line, "\r\n")
	if line == "" {
		return "", "", true, nil
	}
	colon := strings.IndexByte(line, ':')
	if colon < 0 {
		return "", "", false, ErrMalformedHeaderLine
	}
	name = line[:colon]
	value = strings.TrimSpace(line[colon+1:])
	if !ValidHeaderFieldName(name) || !ValidHeaderFieldValue(value) {
		return "", "", false, ErrMalformedHeaderLine
	}
	return name, value, false, nil
}

// Canonicalize rewrites name to the engine's canonical casing when it is
// one of the headers the wire decoder interprets; any other
// name is returned unchanged, preserving wire casing for everything the
// engine does not inspect.
func Canonicalize(name string) string {
	switch strings.ToLower(name) {
	case "host":
		return Host
	case "accept":
		return Accept
	case "accept-encoding":
		return AcceptEncoding
	case "te":
		return TE
	case "content-length":
		return ContentLength
	case "connection":
		return Connection
	case "transfer-encoding":
		return TransferEncoding
	case "content-encoding":
		return ContentEncoding
	default:
		return name
	}
}
