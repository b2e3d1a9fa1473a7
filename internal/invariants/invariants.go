// Copyright 2026 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

// Package invariants gates expensive consistency checks behind the
// "invariants" and "race" build tags.
package invariants

// Check runs fn and panics with the error it returns, but only if we were built
// with the "invariants" or "race" build tags. In other builds fn is never
// called.
func Check(fn func() error) {
	if !Enabled {
		return
	}
	if err := fn(); err != nil {
		panic(err)
	}
}
