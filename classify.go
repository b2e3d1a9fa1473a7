// Copyright 2026 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package bstview

import (
	"github.com/cockroachdb/bstview/internal/treesteps"
	"github.com/cockroachdb/redact"
)

// ClassificationKind describes where a probe value stands relative to a tree.
type ClassificationKind int8

const (
	// EmptyTree means the tree has no nodes.
	EmptyTree ClassificationKind = iota
	// Equal means the value is stored in the last node of the path.
	Equal
	// BelongsLeft means the value would become the left child of the last node
	// of the path.
	BelongsLeft
	// BelongsRight means the value would become the right child of the last
	// node of the path.
	BelongsRight
)

var kindNames = [...]string{
	EmptyTree:    "empty-tree",
	Equal:        "equal",
	BelongsLeft:  "belongs-left",
	BelongsRight: "belongs-right",
}

// String implements fmt.Stringer.
func (k ClassificationKind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "unknown"
}

// SafeValue implements redact.SafeValue.
func (k ClassificationKind) SafeValue() {}

// Classification is the result of Tree.Classify.
type Classification struct {
	Kind ClassificationKind
	// Path holds the values of the nodes visited from the root, inclusive of
	// the node where the descent stopped. It is nil for EmptyTree.
	Path []int
}

// Stop returns the value of the node where the descent stopped. It returns
// false for EmptyTree.
func (c Classification) Stop() (int, bool) {
	if len(c.Path) == 0 {
		return 0, false
	}
	return c.Path[len(c.Path)-1], true
}

// String implements fmt.Stringer.
func (c Classification) String() string {
	return redact.StringWithoutMarkers(c)
}

// SafeFormat implements redact.SafeFormatter.
func (c Classification) SafeFormat(w redact.SafePrinter, _ rune) {
	w.Print(c.Kind)
	if c.Kind == EmptyTree {
		return
	}
	w.SafeString(" [")
	for i, v := range c.Path {
		if i > 0 {
			w.SafeRune(' ')
		}
		w.Printf("%d", redact.SafeInt(v))
	}
	w.SafeRune(']')
}

// Classify reports where value stands in the tree without modifying it. It
// follows the same descent as Insert and stops at the node that holds value or
// at the node under which value would be attached.
func (t *Tree) Classify(value int) Classification {
	if t.root == nil {
		return Classification{Kind: EmptyTree}
	}
	var path []int
	for n := t.root; ; {
		path = append(path, n.value)
		var op *treesteps.Op
		if treesteps.IsRecording(n) {
			op = treesteps.StartOpf(n, "classify(%d)", value)
		}
		var next *Node
		var kind ClassificationKind
		switch {
		case value < n.value:
			next, kind = n.left, BelongsLeft
		case value > n.value:
			next, kind = n.right, BelongsRight
		default:
			kind = Equal
		}
		if next == nil {
			op.Finishf("= %s", kind)
			return Classification{Kind: kind, Path: path}
		}
		op.Finishf("descend")
		n = next
	}
}
