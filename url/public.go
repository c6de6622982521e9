/*
 * Copyright (c) 2018 The Go Authors. All rights reserved.
 * Use of this source code is governed by a BSD-style license that can be found in the LICENSE file.
 */

package url

// Render is an alias for (*URL).String, named to match the round-trip
// property render(parse(u)) ≡ u after default-port elision.
func Render(u *URL) string { return u.String() }

// MustParse is like Parse but panics on a malformed URL. Intended for
// literal URLs known at compile time (tests, constants), not caller input.
func MustParse(raw string) *URL {
	u, err := Parse(raw)
	if err != nil {
		panic(err)
	}
	return u
}
