/*
 * Copyright (c) 2018 The Go Authors. All rights reserved.
 * Use of this source code is governed by a BSD-style license that can be found in the LICENSE file.
 */

package url

import "fmt"

func (e *MalformedURLError) Error() string {
	return fmt.Sprintf("url: malformed URL %q at byte %d", e.Input, e.Pos)
}
