// Copyright 2026 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package canvas

// Options holds the geometry of a drawing. All distances are in pixels. The
// zero value of a field selects its default.
type Options struct {
	// OriginX and OriginY are the center of the root node.
	OriginX int
	OriginY int
	// Offset is the horizontal distance between the root and each of its
	// children. It is halved at every level.
	Offset int
	// LevelGap is the vertical distance between a node and its children.
	LevelGap int
	// Radius is the radius of the circle drawn for each node; a click within
	// this distance of a node's center selects it.
	Radius int
	// ColumnWidth is the number of pixels that map to one character column
	// when rendering as text.
	ColumnWidth int
}

// EnsureDefaults ensures that the default values for all options are set if a
// valid value was not already specified. Returns the new options.
func (o *Options) EnsureDefaults() *Options {
	if o == nil {
		o = &Options{}
	}
	if o.OriginX == 0 {
		o.OriginX = 400
	}
	if o.OriginY == 0 {
		o.OriginY = 20
	}
	if o.Offset <= 0 {
		o.Offset = 200
	}
	if o.LevelGap <= 0 {
		o.LevelGap = 80
	}
	if o.Radius <= 0 {
		o.Radius = 15
	}
	if o.ColumnWidth <= 0 {
		o.ColumnWidth = 10
	}
	return o
}
