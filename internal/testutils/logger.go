// Copyright 2026 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

// Package testutils contains helpers shared by tests across bstview packages.
package testutils

import (
	"fmt"
	"strings"
	"sync"
	"testing"

	"github.com/cockroachdb/bstview/internal/base"
)

// Logger is a logger that writes to a testing.TB.
type Logger struct {
	T testing.TB
}

var _ base.Logger = Logger{}

func (l Logger) Infof(format string, args ...interface{}) {
	l.T.Logf(format, args...)
}

func (l Logger) Errorf(format string, args ...interface{}) {
	l.T.Logf(format, args...)
}

func (l Logger) Fatalf(format string, args ...interface{}) {
	l.T.Helper()
	l.T.Fatalf(format, args...)
}

// BufferLogger accumulates log lines so tests can make them part of their
// expected output.
type BufferLogger struct {
	mu  sync.Mutex
	buf strings.Builder
}

var _ base.Logger = (*BufferLogger)(nil)

func (b *BufferLogger) Infof(format string, args ...interface{}) {
	b.write("", format, args...)
}

func (b *BufferLogger) Errorf(format string, args ...interface{}) {
	b.write("error: ", format, args...)
}

func (b *BufferLogger) Fatalf(format string, args ...interface{}) {
	b.write("fatal: ", format, args...)
	panic(fmt.Sprintf(format, args...))
}

func (b *BufferLogger) write(prefix, format string, args ...interface{}) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.buf.WriteString(prefix)
	fmt.Fprintf(&b.buf, format, args...)
	if !strings.HasSuffix(format, "\n") {
		b.buf.WriteByte('\n')
	}
}

// String returns everything logged so far and clears the buffer.
func (b *BufferLogger) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	s := b.buf.String()
	b.buf.Reset()
	return s
}
