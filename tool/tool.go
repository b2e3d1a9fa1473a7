// Copyright 2026 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

// Package tool implements the bstview command line: one-shot commands that
// build and inspect a tree, an interactive REPL driving a session, and a
// runner for REPL scripts.
package tool

import (
	"github.com/cockroachdb/bstview/canvas"
	"github.com/cockroachdb/bstview/session"
	"github.com/spf13/cobra"
)

// T is the container for all of the tools.
type T struct {
	Commands []*cobra.Command
	tree     *treeT
	repl     *replT
	opts     session.Options
}

// Option is an optional argument to New.
type Option func(*T)

// Logger configures the logger used by the sessions that the tools create. The
// default is session.NoopLogger.
func Logger(l session.Logger) Option {
	return func(t *T) {
		t.opts.Logger = l
	}
}

// Canvas configures the geometry of the drawings.
func Canvas(opts canvas.Options) Option {
	return func(t *T) {
		t.opts.Canvas = opts
	}
}

// New creates a new tool container.
func New(opts ...Option) *T {
	t := &T{
		opts: session.Options{Logger: session.NoopLogger},
	}
	for _, o := range opts {
		o(t)
	}
	t.opts.EnsureDefaults()

	t.tree = newTree(&t.opts)
	t.repl = newREPL(&t.opts)
	t.Commands = []*cobra.Command{
		t.tree.Root,
		t.repl.Root,
		t.repl.Run,
	}
	return t
}

// SetLogger replaces the logger after construction, for example from a
// persistent flag of the root command.
func (t *T) SetLogger(l session.Logger) {
	t.opts.Logger = l
}
