// Copyright 2026 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package bstview

import (
	"encoding/binary"
	"math"

	"github.com/cespare/xxhash/v2"
	"github.com/cockroachdb/bstview/internal/treeprinter"
	"github.com/cockroachdb/errors"
)

// CheckInvariants verifies the ordering invariant of every node: values in a
// left subtree are strictly smaller and values in a right subtree strictly
// larger than the value of the subtree root. It returns an assertion failure
// naming the first offending node.
func (t *Tree) CheckInvariants() error {
	return t.root.checkBounds(math.MinInt, math.MaxInt, false, false)
}

// checkBounds verifies that every value in the subtree rooted at n lies in
// (lo, hi). The hasLo and hasHi flags allow MinInt and MaxInt to be stored.
func (n *Node) checkBounds(lo, hi int, hasLo, hasHi bool) error {
	if n == nil {
		return nil
	}
	if hasLo && n.value <= lo {
		return errors.AssertionFailedf("node %d is not greater than ancestor %d", n.value, lo)
	}
	if hasHi && n.value >= hi {
		return errors.AssertionFailedf("node %d is not smaller than ancestor %d", n.value, hi)
	}
	if err := n.left.checkBounds(lo, n.value, hasLo, true); err != nil {
		return err
	}
	return n.right.checkBounds(n.value, hi, true, hasHi)
}

// Fingerprint returns a hash of the shape of the tree. Two trees have the same
// fingerprint if (barring collisions) they have the same values arranged in
// the same shape.
func (t *Tree) Fingerprint() uint64 {
	d := xxhash.New()
	var buf [binary.MaxVarintLen64 + 1]byte
	var walk func(n *Node)
	walk = func(n *Node) {
		if n == nil {
			_, _ = d.Write([]byte{0})
			return
		}
		buf[0] = 1
		l := binary.PutVarint(buf[1:], int64(n.value))
		_, _ = d.Write(buf[:l+1])
		walk(n.left)
		walk(n.right)
	}
	walk(t.root)
	return d.Sum64()
}

// DebugString returns a multi-line representation of the shape of the tree.
// Children are prefixed with L or R according to their side.
func (t *Tree) DebugString() string {
	if t.root == nil {
		return "<empty>\n"
	}
	tp := treeprinter.New()
	t.root.print(tp.Childf("%d", t.root.value))
	return tp.String()
}

func (n *Node) print(tp treeprinter.Node) {
	if n.left != nil {
		n.left.print(tp.Childf("L %d", n.left.value))
	}
	if n.right != nil {
		n.right.print(tp.Childf("R %d", n.right.value))
	}
}
