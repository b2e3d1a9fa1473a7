// Copyright 2026 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package canvas

import (
	"slices"

	"github.com/cockroachdb/swiss"
)

// Index maps node values to the position where they were last drawn. The zero
// value is not usable; use MakeIndex or Reset.
type Index struct {
	positions swiss.Map[int, Point]
	// order holds the values in the order in which they were drawn.
	order []int
}

// MakeIndex returns an empty index.
func MakeIndex() *Index {
	idx := &Index{}
	idx.Reset()
	return idx
}

// Reset removes all entries.
func (idx *Index) Reset() {
	idx.positions.Init(16)
	idx.order = idx.order[:0]
}

// Record notes that value was drawn at p. Recording a value again moves it and
// makes it the most recently drawn one.
func (idx *Index) Record(value int, p Point) {
	if _, ok := idx.positions.Get(value); ok {
		idx.order = slices.DeleteFunc(idx.order, func(v int) bool { return v == value })
	}
	idx.positions.Put(value, p)
	idx.order = append(idx.order, value)
}

// RecordLayout resets the index and records every placement of l.
func (idx *Index) RecordLayout(l Layout) {
	idx.Reset()
	for _, p := range l.Placements {
		idx.Record(p.Value, p.Pos)
	}
}

// Position returns the position where value was last drawn.
func (idx *Index) Position(value int) (Point, bool) {
	return idx.positions.Get(value)
}

// Len returns the number of values in the index.
func (idx *Index) Len() int {
	return idx.positions.Len()
}

// Hit returns the value of the node whose circle of the given radius contains
// p. If several circles contain p, the one with the nearest center wins and
// among equally near ones the most recently drawn.
func (idx *Index) Hit(p Point, radius int) (value int, ok bool) {
	var best int
	for _, v := range idx.order {
		c, _ := idx.positions.Get(v)
		dx, dy := p.X-c.X, p.Y-c.Y
		if d := dx*dx + dy*dy; d <= radius*radius && (!ok || d <= best) {
			best, value, ok = d, v, true
		}
	}
	return value, ok
}
