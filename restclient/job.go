/*
 * Copyright (c) 2018 The Go Authors. All rights reserved.
 * Use of this source code is governed by a BSD-style license that can be found in the LICENSE file.
 */

package restclient

import "github.com/matiu2/RESTClient/url"

// JobFunc is the closure a caller enqueues: it receives the job's own name,
// its origin, and an exclusively-held Connection for the duration of the
// call. A false return or a panic is logged by the worker
// and never propagated to Run — a failed Job records its own outcome in
// whatever state the caller closed over.
type JobFunc func(name string, origin url.HostInfo, conn *Connection) bool

// job is one queued (name, origin, closure) triple.
type job struct {
	name   string
	origin url.HostInfo
	fn     JobFunc
}
