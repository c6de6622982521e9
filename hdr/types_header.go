/*
 * Copyright (c) 2018 The Go Authors. All rights reserved.
 * Use of this source code is governed by a BSD-style license that can be found in the LICENSE file.
 */

package hdr

// Header is an ordered mapping from header name to value. Unlike net/http's
// Header, a name carries exactly one value: a second Set of the
// same name overwrites it in place, keeping its original position. Lookups
// by Get/Has are case-sensitive as stored; the wire decoder is responsible
// for emitting canonical casing for the interpreted subset (see Canonicalize).
type Header struct {
	keys []string
	vals map[string]string
}

// The small set of header names the wire codec interprets and therefore
// always stores/emits with this exact canonical casing.
const (
	Host             = "Host"
	Accept           = "Accept"
	AcceptEncoding   = "Accept-Encoding"
	TE               = "TE"
	ContentLength    = "Content-Length"
	Connection       = "Connection"
	TransferEncoding = "Transfer-Encoding"
	ContentEncoding  = "Content-Encoding"
)
