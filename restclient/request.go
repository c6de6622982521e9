/*
 * Copyright (c) 2018 The Go Authors. All rights reserved.
 * Use of this source code is governed by a BSD-style license that can be found in the LICENSE file.
 */

package restclient

import (
	"fmt"
	"io"
	"strconv"

	"github.com/matiu2/RESTClient/hdr"
)

// addDefaultHeaders injects Host, Accept, Accept-Encoding and TE when the
// caller did not already set them. It never overwrites
// a header the caller supplied.
func addDefaultHeaders(req *Request, hostHeader string) {
	req.Headers.SetDefault(hdr.Host, hostHeader)
	req.Headers.SetDefault(hdr.Accept, "*/*")
	req.Headers.SetDefault(hdr.AcceptEncoding, "gzip, deflate")
	req.Headers.SetDefault(hdr.TE, "trailers")
}

// writeRequest serializes req to w as an HTTP/1.1 request line, headers,
// and body, choosing Content-Length or chunked framing from the Body's
// known size.
func writeRequest(w io.Writer, req *Request) error {
	path := req.Path
	if path == "" {
		path = "/"
	}
	if _, err := fmt.Fprintf(w, "%s %s HTTP/1.1\r\n", req.Method, path); err != nil {
		return err
	}

	size := req.Body.Size()
	if req.stream == nil && size >= 0 {
		req.Headers.SetDefault(hdr.ContentLength, strconv.FormatInt(size, 10))
	} else {
		req.Headers.SetDefault(hdr.TransferEncoding, "chunked")
	}

	if err := req.Headers.Write(w); err != nil {
		return err
	}
	if _, err := io.WriteString(w, "\r\n"); err != nil {
		return err
	}

	if req.stream != nil {
		return writeChunked(w, req.stream)
	}

	bodyStream, err := req.Body.ReadStream()
	if err != nil {
		return err
	}
	if size >= 0 {
		if _, err := io.Copy(w, bodyStream); err != nil {
			return err
		}
		return nil
	}
	return writeChunked(w, bodyStream)
}
