// Copyright 2026 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

// Package base defines fundamental types shared by the bstview packages that
// sit around the engine: the Logger interface used by sessions and tools, and
// the error values produced when user input cannot be interpreted.
//
// The engine itself (package bstview) never logs and never fails; nothing in
// it depends on this package.
package base
