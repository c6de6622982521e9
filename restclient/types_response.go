/*
 * Copyright (c) 2018 The Go Authors. All rights reserved.
 * Use of this source code is governed by a BSD-style license that can be found in the LICENSE file.
 */

package restclient

import "github.com/matiu2/RESTClient/hdr"

// Response is the engine's result for one request: numeric status code,
// Headers, and Body. The caller may pre-initialize Body (e.g.
// to a file path) before the exchange, in which case the engine streams
// the response into it instead of materializing it in memory.
type Response struct {
	Code    int
	Headers hdr.Header
	Body    *Body

	// keepAlive records whether this exchange left the connection eligible
	// for reuse; Connection.Action consults it to decide whether to close.
	keepAlive bool
}

// NewResponse builds a Response with an empty Header set and a fresh,
// in-memory Body. Callers that want the body streamed to disk should
// replace Body with NewBodyFile(path) before passing the Response to
// Connection.Action.
func NewResponse() *Response {
	return &Response{Headers: hdr.New(), Body: NewBody()}
}
