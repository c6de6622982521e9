/*
 * Copyright (c) 2018 The Go Authors. All rights reserved.
 * Use of this source code is governed by a BSD-style license that can be found in the LICENSE file.
 */

package restclient

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/matiu2/RESTClient/url"
)

// runWorker binds one Connection to queue and drains it until empty
//. A worker never returns an error to its caller: a Job
// that panics or returns false is logged and the worker moves on to the
// next Job. The Connection is closed and its Lease released once the
// queue runs dry.
func runWorker(ctx context.Context, origin url.HostInfo, pool *ConnectionPool, queue *JobQueue, log *logrus.Logger) {
	if queue.Len() == 0 {
		return
	}

	lease := pool.Acquire()
	conn := lease.Connection()
	defer lease.Release()
	defer conn.Close()

	for {
		select {
		case <-ctx.Done():
			return
		default:
		}
		j, ok := queue.Pop()
		if !ok {
			return
		}
		runJob(ctx, j, conn, log)
	}
}

func runJob(ctx context.Context, j job, conn *Connection, log *logrus.Logger) {
	defer func() {
		if r := recover(); r != nil {
			log.WithFields(logrus.Fields{
				"job":    j.name,
				"origin": j.origin.String(),
			}).Errorf("job panicked: %v", r)
		}
	}()

	if !j.fn(j.name, j.origin, conn) {
		log.WithFields(logrus.Fields{
			"job":    j.name,
			"origin": j.origin.String(),
		}).Warn("job reported failure")
	}
}
