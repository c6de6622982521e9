/*
 * Copyright (c) 2018 The Go Authors. All rights reserved.
 * Use of this source code is governed by a BSD-style license that can be found in the LICENSE file.
 */

package restclient

import (
	"bytes"
	"fmt"
	"io"
	"os"
)

// Assign replaces the Body with a string-backed representation. Never
// fails.
func (b *Body) Assign(s string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.closeFilesLocked()
	b.kind = bodyString
	b.data = []byte(s)
}

// AssignFile replaces the Body with a file-backed representation rooted at
// path. File handles are opened lazily on first use; assignment itself
// never fails. File-backed is a terminal state: a later Assign/AssignFile
// is still honored (it simply closes the old handles), but nothing
// promotes *out* of bodyFile implicitly the way bodyString promotes to
// bodyStream on write.
func (b *Body) AssignFile(path string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.closeFilesLocked()
	b.kind = bodyFile
	b.path = path
	b.rf = nil
	b.wf = nil
	b.written = false
}

func (b *Body) closeFilesLocked() {
	if b.rf != nil {
		b.rf.Close()
		b.rf = nil
	}
	if b.wf != nil {
		b.wf.Close()
		b.wf = nil
	}
}

// ReadStream returns a readable byte stream positioned at the start of the
// Body's content.
func (b *Body) ReadStream() (io.Reader, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	switch b.kind {
	case bodyEmpty:
		return bytes.NewReader(nil), nil
	case bodyString, bodyStream:
		return bytes.NewReader(b.data), nil
	case bodyFile:
		if err := b.openReadLocked(); err != nil {
			return nil, err
		}
		if _, err := b.rf.Seek(0, io.SeekStart); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrIO, err)
		}
		return b.rf, nil
	default:
		panic("restclient: unreachable body kind")
	}
}

// openReadLocked flushes a pending writer (so the reader sees everything
// written so far) and lazily opens the read handle. b.mu must be held.
func (b *Body) openReadLocked() error {
	if b.wf != nil {
		if err := b.wf.Sync(); err != nil {
			return fmt.Errorf("%w: %v", ErrIO, err)
		}
	}
	if b.rf != nil {
		return nil
	}
	f, err := os.OpenFile(b.path, os.O_RDONLY|os.O_CREATE, 0o644)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrIO, err)
	}
	b.rf = f
	return nil
}

// bodyWriter is the writable stream handed back by WriteStream for the two
// in-memory representations: writes append to the Body's data under lock,
// promoting an empty or string-backed Body to memory-stream on the first
// write.
type bodyWriter struct {
	b *Body
}

func (w bodyWriter) Write(p []byte) (int, error) {
	w.b.mu.Lock()
	defer w.b.mu.Unlock()
	if w.b.kind == bodyEmpty || w.b.kind == bodyString {
		w.b.kind = bodyStream
	}
	w.b.data = append(w.b.data, p...)
	return len(p), nil
}

// WriteStream returns a writable byte stream positioned at the current end
// of the Body's content.
func (b *Body) WriteStream() (io.Writer, error) {
	b.mu.Lock()
	kind := b.kind
	b.mu.Unlock()
	switch kind {
	case bodyEmpty, bodyString, bodyStream:
		return bodyWriter{b}, nil
	case bodyFile:
		b.mu.Lock()
		defer b.mu.Unlock()
		if b.rf != nil {
			b.rf.Close()
			b.rf = nil
		}
		if b.wf == nil {
			f, err := os.OpenFile(b.path, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0o644)
			if err != nil {
				return nil, fmt.Errorf("%w: %v", ErrIO, err)
			}
			b.wf = f
		}
		b.written = true
		return b.wf, nil
	default:
		panic("restclient: unreachable body kind")
	}
}

// Consume appends bytes to the Body's write side. Equivalent to writing the
// full slice to WriteStream in one call.
func (b *Body) Consume(p []byte) error {
	w, err := b.WriteStream()
	if err != nil {
		return err
	}
	if _, err := w.Write(p); err != nil {
		return fmt.Errorf("%w: %v", ErrIO, err)
	}
	return nil
}

// Size returns the Body's length if known (≥0), or -1 if unknown. A
// freshly constructed empty Body reports 0.
func (b *Body) Size() int64 {
	b.mu.Lock()
	defer b.mu.Unlock()
	switch b.kind {
	case bodyEmpty:
		return 0
	case bodyString, bodyStream:
		return int64(len(b.data))
	case bodyFile:
		if b.wf != nil {
			if err := b.wf.Sync(); err != nil {
				return -1
			}
		}
		fi, err := os.Stat(b.path)
		if err != nil {
			return 0
		}
		return fi.Size()
	default:
		return -1
	}
}

// ToString materializes the full content as a string.
func (b *Body) ToString() (string, error) {
	r, err := b.ReadStream()
	if err != nil {
		return "", err
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrIO, err)
	}
	return string(data), nil
}

// Flush ensures buffered writes are durable to the backing store. For the
// in-memory representations this is a no-op; for file-backed it syncs the
// write handle if one is open.
func (b *Body) Flush() error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.kind == bodyFile && b.wf != nil {
		if err := b.wf.Sync(); err != nil {
			return fmt.Errorf("%w: %v", ErrIO, err)
		}
	}
	return nil
}

// Close releases any open file handles. Safe to call on any representation.
func (b *Body) Close() error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.closeFilesLocked()
	return nil
}
