/*
 * Copyright (c) 2018 The Go Authors. All rights reserved.
 * Use of this source code is governed by a BSD-style license that can be found in the LICENSE file.
 */

package restclient

import (
	"bufio"
	"compress/gzip"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/matiu2/RESTClient/hdr"
)

// readResponse drives the response parser over br — status line, header
// block, body framing, then trailer merge — filling resp and reporting
// whether the connection remains eligible for keep-alive reuse.
//
// If the status line's reason phrase is not "OK" the body is still fully
// read and stored before *HttpStatusError is returned, so the caller can
// inspect both Code and Body.
func readResponse(br *bufio.Reader, resp *Response) error {
	code, ok, err := readStatusLine(br)
	if err != nil {
		return err
	}
	resp.Code = code

	if err := readHeaderBlock(br, resp); err != nil {
		return err
	}

	framed, trailer, keepAlive, err := frameBody(br, resp.Headers)
	if err != nil {
		return err
	}
	resp.keepAlive = keepAlive

	decoded := framed
	if strings.EqualFold(resp.Headers.Get(hdr.ContentEncoding), "gzip") {
		gz, err := gzip.NewReader(framed)
		if err != nil {
			return fmt.Errorf("%w: gzip: %v", ErrWireParse, err)
		}
		decoded = gz
	}

	w, err := resp.Body.WriteStream()
	if err != nil {
		return err
	}
	if _, err := io.Copy(w, decoded); err != nil {
		return fmt.Errorf("%w: %v", ErrWireParse, err)
	}

	if trailer != nil {
		for _, k := range trailer.Keys() {
			resp.Headers.Set(k, trailer.Get(k))
		}
	}

	if !ok {
		body, _ := resp.Body.ToString()
		return &HttpStatusError{Code: code, Body: body}
	}
	return nil
}

// readStatusLine reads exactly three whitespace-separated tokens,
// "HTTP/1.1 <code> <reason>". Only the first three tokens are
// significant, mirroring a stream-extraction reader that reads word by
// word rather than splitting on the full line. ok reports whether the
// reason token was "OK".
func readStatusLine(br *bufio.Reader) (code int, ok bool, err error) {
	line, err := br.ReadString('\n')
	if err != nil {
		return 0, false, fmt.Errorf("%w: status line: %v", ErrWireParse, err)
	}
	fields := strings.Fields(line)
	if len(fields) < 3 {
		return 0, false, fmt.Errorf("%w: malformed status line %q", ErrWireParse, line)
	}
	code, err = strconv.Atoi(fields[1])
	if err != nil {
		return 0, false, fmt.Errorf("%w: bad status code %q", ErrWireParse, fields[1])
	}
	return code, fields[2] == "OK", nil
}

// readHeaderBlock reads header lines until a bare CRLF.
func readHeaderBlock(br *bufio.Reader, resp *Response) error {
	for {
		name, value, done, err := hdr.ReadLine(br)
		if err != nil {
			return fmt.Errorf("%w: %v", ErrWireParse, err)
		}
		if done {
			return nil
		}
		resp.Headers.Set(hdr.Canonicalize(name), value)
	}
}

// frameBody resolves how the body is delimited — chunked, Content-Length,
// or close-delimited — and returns a reader over exactly the bytes
// belonging to this response's body, never past the boundary, so a
// keep-alive connection's next response starts clean. It also returns the
// merged trailer headers if the body was chunked, and whether the
// connection remains keep-alive.
func frameBody(br *bufio.Reader, headers hdr.Header) (io.Reader, *hdr.Header, bool, error) {
	keepAlive := !strings.EqualFold(headers.Get(hdr.Connection), "close")

	if strings.Contains(strings.ToLower(headers.Get(hdr.TransferEncoding)), "chunked") {
		cr := newChunkReader(br)
		return cr, &cr.Trailer, keepAlive, nil
	}

	if cl := headers.Get(hdr.ContentLength); cl != "" {
		n, err := strconv.ParseInt(cl, 10, 64)
		if err != nil || n < 0 {
			return nil, nil, false, fmt.Errorf("%w: bad Content-Length %q", ErrWireParse, cl)
		}
		if n > 0 {
			return io.LimitReader(br, n), nil, keepAlive, nil
		}
		return io.LimitReader(br, 0), nil, keepAlive, nil
	}

	if !keepAlive {
		return br, nil, false, nil
	}

	return io.LimitReader(br, 0), nil, keepAlive, nil
}
