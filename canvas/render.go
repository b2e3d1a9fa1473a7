// Copyright 2026 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package canvas

import (
	"math"
	"strconv"

	"github.com/cockroachdb/bstview/internal/ascii"
)

// Render draws the layout as text. Every level of the tree takes two lines: the
// node labels and, below them, a '/' or '\' midway between each node and its
// children. Pixel columns are mapped to character columns using
// opts.ColumnWidth and the drawing is shifted so that the leftmost label starts
// in the first column. An empty layout renders as the empty string.
func Render(l Layout, opts *Options) string {
	opts = opts.EnsureDefaults()
	if l.Empty() {
		return ""
	}
	col := func(x int) int {
		return floorDiv(x, opts.ColumnWidth)
	}
	labelStart := func(p Placement) int {
		return col(p.Pos.X) - len(strconv.Itoa(p.Value))/2
	}
	shift := math.MaxInt
	for _, p := range l.Placements {
		shift = min(shift, labelStart(p))
	}
	row := func(y int) int {
		return 2 * floorDiv(y-opts.OriginY, opts.LevelGap)
	}

	b := ascii.Make(0, 0)
	for _, p := range l.Placements {
		b.At(row(p.Pos.Y), labelStart(p)-shift).WriteString(strconv.Itoa(p.Value))
	}
	for _, e := range l.Edges {
		ch := "\\"
		if e.To.X < e.From.X {
			ch = "/"
		}
		mid := (col(e.From.X) + col(e.To.X)) / 2
		b.At(row(e.From.Y)+1, mid-shift).WriteString(ch)
	}
	return b.String()
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}
