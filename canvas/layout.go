// Copyright 2026 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

// Package canvas computes where the nodes of a bstview.Tree are drawn, renders
// the drawing as text, and maps click positions back to node values. It only
// reads the shape of the tree through the bstview.Node accessors.
package canvas

import (
	"fmt"

	"github.com/cockroachdb/bstview"
)

// Point is a position in pixels. Y grows downwards.
type Point struct {
	X, Y int
}

func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// Placement is the position assigned to one node.
type Placement struct {
	Value int
	Pos   Point
	// Depth is 0 for the root.
	Depth int
}

// Edge is a line from a parent to one of its children.
type Edge struct {
	From, To Point
}

// Layout is the drawing of a tree: node placements in preorder and the edges
// between them.
type Layout struct {
	Placements []Placement
	Edges      []Edge
}

// Empty returns true if the layout has no nodes.
func (l *Layout) Empty() bool {
	return len(l.Placements) == 0
}

// ComputeLayout places the subtree rooted at root. The root is centered at the
// origin; children are placed one level gap below their parent and one offset
// to its left or right, and the offset is halved for each following level.
func ComputeLayout(root *bstview.Node, opts *Options) Layout {
	opts = opts.EnsureDefaults()
	var l Layout
	var place func(n *bstview.Node, pos Point, offset, depth int)
	place = func(n *bstview.Node, pos Point, offset, depth int) {
		l.Placements = append(l.Placements, Placement{Value: n.Value(), Pos: pos, Depth: depth})
		if left := n.Left(); left != nil {
			childPos := Point{X: pos.X - offset, Y: pos.Y + opts.LevelGap}
			l.Edges = append(l.Edges, Edge{From: pos, To: childPos})
			place(left, childPos, offset/2, depth+1)
		}
		if right := n.Right(); right != nil {
			childPos := Point{X: pos.X + offset, Y: pos.Y + opts.LevelGap}
			l.Edges = append(l.Edges, Edge{From: pos, To: childPos})
			place(right, childPos, offset/2, depth+1)
		}
	}
	if root != nil {
		place(root, Point{X: opts.OriginX, Y: opts.OriginY}, opts.Offset, 0)
	}
	return l
}
