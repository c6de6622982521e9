/*
 * Copyright (c) 2018 The Go Authors. All rights reserved.
 * Use of this source code is governed by a BSD-style license that can be found in the LICENSE file.
 */

package restclient

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/matiu2/RESTClient/hdr"
)

const maxChunkLineLength = 4096

var crlf = []byte("\r\n")

// writeChunked reads r to exhaustion and writes it to w as HTTP/1.1 chunked
// transfer encoding: one chunk per read of up to 4 KiB,
// terminated by a zero-length chunk.
func writeChunked(w io.Writer, r io.Reader) error {
	buf := make([]byte, 4096)
	for {
		n, err := r.Read(buf)
		if n > 0 {
			if _, werr := fmt.Fprintf(w, "%x\r\n", n); werr != nil {
				return werr
			}
			if _, werr := w.Write(buf[:n]); werr != nil {
				return werr
			}
			if _, werr := w.Write(crlf); werr != nil {
				return werr
			}
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			return err
		}
	}
	_, err := io.WriteString(w, "0\r\n\r\n")
	return err
}

// chunkReader decodes an HTTP/1.1 chunked body from a *bufio.Reader shared
// with the rest of the response decoder, so it never reads past the
// terminating zero chunk's trailing CRLF, leaving the connection's buffer
// clean for whatever the next response on the same connection reads.
type chunkReader struct {
	br       *bufio.Reader
	n        int64 // bytes remaining in the current chunk
	sawEOF   bool
	Trailer  hdr.Header
	err      error
}

func newChunkReader(br *bufio.Reader) *chunkReader {
	return &chunkReader{br: br, Trailer: hdr.New()}
}

func (c *chunkReader) Read(p []byte) (int, error) {
	if c.err != nil {
		return 0, c.err
	}
	if c.sawEOF {
		return 0, io.EOF
	}
	if c.n == 0 {
		if err := c.beginChunk(); err != nil {
			c.err = err
			return 0, err
		}
		if c.sawEOF {
			if err := c.readTrailer(); err != nil {
				c.err = err
				return 0, err
			}
			return 0, io.EOF
		}
	}
	if int64(len(p)) > c.n {
		p = p[:c.n]
	}
	n, err := c.br.Read(p)
	c.n -= int64(n)
	if err != nil && err != io.EOF {
		return n, fmt.Errorf("%w: %v", ErrWireParse, err)
	}
	if c.n == 0 {
		if _, err := io.ReadFull(c.br, make([]byte, 2)); err != nil {
			return n, fmt.Errorf("%w: missing chunk terminator: %v", ErrWireParse, err)
		}
	}
	return n, nil
}

// beginChunk reads one "hex[;ext...]\r\n" chunk-size line. A size of 0
// marks the terminating chunk and sets sawEOF.
func (c *chunkReader) beginChunk() error {
	line, err := readChunkLine(c.br)
	if err != nil {
		return err
	}
	size, err := parseHexUint(line)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrWireParse, err)
	}
	if size == 0 {
		c.sawEOF = true
		return nil
	}
	c.n = int64(size)
	return nil
}

// readTrailer consumes trailing headers after the terminating chunk, if
// any, merging them into Trailer.
func (c *chunkReader) readTrailer() error {
	for {
		name, value, done, err := hdr.ReadLine(c.br)
		if err != nil {
			return fmt.Errorf("%w: %v", ErrWireParse, err)
		}
		if done {
			return nil
		}
		c.Trailer.Set(hdr.Canonicalize(name), value)
	}
}

// readChunkLine reads up to maxChunkLineLength bytes ending in \n, strips
// any chunk-extension after ';' (ignored), and returns the hex length
// bytes.
func readChunkLine(b *bufio.Reader) ([]byte, error) {
	line, err := b.ReadSlice('\n')
	if err != nil {
		if err == io.EOF {
			err = io.ErrUnexpectedEOF
		}
		return nil, fmt.Errorf("%w: %v", ErrWireParse, err)
	}
	if len(line) > maxChunkLineLength {
		return nil, fmt.Errorf("%w: chunk size line too long", ErrWireParse)
	}
	line = bytes.TrimRight(line, "\r\n")
	if semi := bytes.IndexByte(line, ';'); semi >= 0 {
		line = line[:semi]
	}
	line = bytes.TrimSpace(line)
	return line, nil
}

func parseHexUint(v []byte) (uint64, error) {
	if len(v) == 0 {
		return 0, errors.New("empty chunk length")
	}
	var n uint64
	for i, b := range v {
		if i == 16 {
			return 0, errors.New("chunk length too large")
		}
		var d uint64
		switch {
		case '0' <= b && b <= '9':
			d = uint64(b - '0')
		case 'a' <= b && b <= 'f':
			d = uint64(b-'a') + 10
		case 'A' <= b && b <= 'F':
			d = uint64(b-'A') + 10
		default:
			return 0, fmt.Errorf("invalid byte %q in chunk length", b)
		}
		n = n<<4 | d
	}
	return n, nil
}
