/*
 * Copyright (c) 2018 The Go Authors. All rights reserved.
 * Use of this source code is governed by a BSD-style license that can be found in the LICENSE file.
 */

package restclient

import (
	"io"

	"github.com/matiu2/RESTClient/hdr"
)

// Verb constants for the handful of methods this module's own helpers
// construct. The engine imposes no list on the wire: any
// uppercase ASCII token a caller writes into Request.Method is sent as-is.
const (
	GET    = "GET"
	HEAD   = "HEAD"
	POST   = "POST"
	PUT    = "PUT"
	PATCH  = "PATCH"
	DELETE = "DELETE"
)

// Request is the caller-constructed HTTP/1.1 request: verb, path, Headers,
// and Body. The engine mutates it only to inject default
// headers where absent.
type Request struct {
	Method  string
	Path    string
	Headers hdr.Header
	Body    *Body

	// stream, when set by actionWithStream, is sent chunk-encoded directly
	// from the caller's io.Reader instead of being buffered into Body first
	// — the one case where the request body's length is genuinely unknown
	// ahead of time.
	stream io.Reader
}

// NewRequest builds a Request with an empty Header set and an empty Body,
// ready for the caller to fill in.
func NewRequest(method, path string) *Request {
	return &Request{
		Method:  method,
		Path:    path,
		Headers: hdr.New(),
		Body:    NewBody(),
	}
}
