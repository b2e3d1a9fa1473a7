// Copyright 2026 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package session

import (
	"github.com/cockroachdb/bstview/canvas"
	"github.com/cockroachdb/bstview/internal/base"
	"github.com/cockroachdb/bstview/metrics"
)

// Logger defines an interface for writing log messages.
type Logger = base.Logger

// DefaultLogger logs to the Go stdlib logs.
var DefaultLogger = base.DefaultLogger{}

// NoopLogger discards all log messages.
var NoopLogger = base.NoopLogger{}

// Options holds the optional parameters for a Session.
type Options struct {
	// Logger receives a line for every operation applied to the tree.
	//
	// The default is DefaultLogger.
	Logger Logger

	// Canvas is the geometry of the drawing.
	Canvas canvas.Options

	// Metrics, if set, are updated for every operation.
	Metrics *metrics.Collectors
}

// EnsureDefaults ensures that the default values for all options are set if a
// valid value was not already specified. Returns the new options.
func (o *Options) EnsureDefaults() *Options {
	if o == nil {
		o = &Options{}
	}
	if o.Logger == nil {
		o.Logger = DefaultLogger
	}
	o.Canvas.EnsureDefaults()
	return o
}
