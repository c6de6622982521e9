/*
 * Copyright (c) 2018 The Go Authors. All rights reserved.
 * Use of this source code is governed by a BSD-style license that can be found in the LICENSE file.
 */

package restclient

import (
	"os"
	"sync"
)

// bodyKind tags which of the three representations a Body currently holds.
// Dispatch is by switch on this field rather than by downcast.
type bodyKind int

const (
	bodyEmpty bodyKind = iota
	bodyString
	bodyStream
	bodyFile
)

// Body is a payload that is either a bounded string, a growable in-memory
// stream, or a file-backed stream, behind one uniform read/write/size
// surface. Exactly one representation is active at a time; assigning a
// string or stream replaces the representation atomically (under mu).
type Body struct {
	mu   sync.Mutex
	kind bodyKind

	// bodyString / bodyStream: data holds the full in-memory content; for
	// bodyString it is treated as immutable until the first write, at which
	// point the representation promotes to bodyStream.
	data []byte

	// bodyFile: path plus lazily opened handles. A write-then-read sequence
	// flushes the writer before opening the reader.
	path    string
	rf      *os.File
	wf      *os.File
	written bool
}

// NewBody returns an empty Body (size 0, no representation chosen yet).
func NewBody() *Body {
	return &Body{kind: bodyEmpty}
}

// NewBodyString returns a Body assigned to s.
func NewBodyString(s string) *Body {
	b := &Body{}
	b.Assign(s)
	return b
}

// NewBodyFile returns a Body assigned to the file at path. Opens are lazy:
// this never fails at construction, only on first use.
func NewBodyFile(path string) *Body {
	b := &Body{}
	b.AssignFile(path)
	return b
}
