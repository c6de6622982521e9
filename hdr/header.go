/*
 * Copyright (c) 2018 The Go Authors. All rights reserved.
 * Use of this source code is governed by a BSD-style license that can be found in the LICENSE file.
 */

package hdr

// New returns an empty Header ready to use.
func New() Header {
	return Header{vals: make(map[string]string)}
}

// Set stores value under key. A key already present keeps its original
// position but takes the new value.
func (h *Header) Set(key, value string) {
	if h.vals == nil {
		h.vals = make(map[string]string)
	}
	if _, ok := h.vals[key]; !ok {
		h.keys = append(h.keys, key)
	}
	h.vals[key] = value
}

// SetDefault sets key to value only if key is not already present.
// Used by the wire codec to inject default headers without
// clobbering a caller-supplied value.
func (h *Header) SetDefault(key, value string) {
	if h.Has(key) {
		return
	}
	h.Set(key, value)
}

// Get returns the value stored under key, or "" if absent.
func (h Header) Get(key string) string {
	return h.vals[key]
}

// Has reports whether key is present.
func (h Header) Has(key string) bool {
	_, ok := h.vals[key]
	return ok
}

// Del removes key.
func (h *Header) Del(key string) {
	if !h.Has(key) {
		return
	}
	delete(h.vals, key)
	for i, k := range h.keys {
		if k == key {
			h.keys = append(h.keys[:i], h.keys[i+1:]...)
			break
		}
	}
}

// Keys returns the header names in insertion order.
func (h Header) Keys() []string {
	return h.keys
}

// Len returns the number of distinct header names.
func (h Header) Len() int {
	return len(h.keys)
}

// Clone returns an independent copy of h.
func (h Header) Clone() Header {
	h2 := New()
	for _, k := range h.keys {
		h2.Set(k, h.vals[k])
	}
	return h2
}
