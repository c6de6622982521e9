/*
 * Copyright (c) 2018 The Go Authors. All rights reserved.
 * Use of this source code is governed by a BSD-style license that can be found in the LICENSE file.
 */

package restclient

import (
	"errors"
	"fmt"
)

// Transport and parse errors propagate out of Connection methods;
// HttpStatusError is raised only after the response has been fully
// received.
var (
	// ErrResolve reports that DNS resolution failed for a HostInfo.
	ErrResolve = errors.New("restclient: dns resolution failed")

	// ErrConnect reports that TCP connect failed against every resolved
	// endpoint.
	ErrConnect = errors.New("restclient: connect failed to all endpoints")

	// ErrWireParse reports that a response status line, header, or chunked
	// framing was malformed.
	ErrWireParse = errors.New("restclient: malformed response")

	// ErrIO reports that a Body's backing storage failed a read or write.
	ErrIO = errors.New("restclient: body io failure")
)

// TlsVerifyError reports that a TLS handshake completed at the transport
// level but certificate verification failed: chain failure, expired
// certificate, or a hostname that does not match the presented identity.
type TlsVerifyError struct {
	Host string
	Err  error
}

func (e *TlsVerifyError) Error() string {
	return fmt.Sprintf("restclient: tls verify failed for %s: %v", e.Host, e.Err)
}

func (e *TlsVerifyError) Unwrap() error { return e.Err }

// TlsShutdownError reports that graceful TLS shutdown returned an error
// other than one of the recognized benign outcomes.
type TlsShutdownError struct {
	Err error
}

func (e *TlsShutdownError) Error() string {
	return fmt.Sprintf("restclient: tls shutdown: %v", e.Err)
}

func (e *TlsShutdownError) Unwrap() error { return e.Err }

// HttpStatusError reports that the wire exchange succeeded but the status
// line's reason phrase was not "OK". It carries the numeric status code and
// the fully-received response body so the caller can still inspect both.
type HttpStatusError struct {
	Code int
	Body string
}

func (e *HttpStatusError) Error() string {
	return fmt.Sprintf("restclient: http status %d", e.Code)
}
