// Copyright 2026 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package bstview

import (
	"github.com/cockroachdb/bstview/internal/invariants"
	"github.com/cockroachdb/bstview/internal/treesteps"
)

// Node is a node in a Tree. A node exclusively owns its children; a nil child
// means there is no child on that side.
type Node struct {
	value       int
	left, right *Node
}

// Value returns the key stored in the node.
func (n *Node) Value() int {
	return n.value
}

// Left returns the left child, or nil. It is safe to call on a nil node.
func (n *Node) Left() *Node {
	if n == nil {
		return nil
	}
	return n.left
}

// Right returns the right child, or nil. It is safe to call on a nil node.
func (n *Node) Right() *Node {
	if n == nil {
		return nil
	}
	return n.right
}

// Tree is an unbalanced binary search tree of distinct integers. The zero value
// is an empty tree ready to use.
type Tree struct {
	root *Node
}

// New returns an empty tree.
func New() *Tree {
	return &Tree{}
}

// Root returns the root node, or nil if the tree is empty. The returned node
// must not be retained across mutations of the tree.
func (t *Tree) Root() *Node {
	return t.root
}

// Empty returns true if the tree has no nodes.
func (t *Tree) Empty() bool {
	return t.root == nil
}

// Insert adds value to the tree. If value is already present the tree is left
// unchanged.
func (t *Tree) Insert(value int) {
	if t.root == nil {
		t.root = &Node{value: value}
		treesteps.NodeUpdated(t, "root created")
		return
	}
	if t.root.insert(value) {
		invariants.Check(t.CheckInvariants)
	}
}

// insert descends from n and attaches a new leaf for value. It returns false if
// value was already present.
func (n *Node) insert(value int) (inserted bool) {
	if treesteps.IsRecording(n) {
		op := treesteps.StartOpf(n, "insert(%d)", value)
		defer func() {
			if inserted {
				op.Finishf("done")
			} else {
				op.Finishf("present")
			}
		}()
	}
	switch {
	case value < n.value:
		if n.left == nil {
			n.left = &Node{value: value}
			treesteps.NodeUpdated(n, "left child added")
			return true
		}
		return n.left.insert(value)
	case value > n.value:
		if n.right == nil {
			n.right = &Node{value: value}
			treesteps.NodeUpdated(n, "right child added")
			return true
		}
		return n.right.insert(value)
	default:
		return false
	}
}

// Delete removes value from the tree. If value is not present the tree is left
// unchanged.
func (t *Tree) Delete(value int) {
	if treesteps.IsRecording(t) {
		op := treesteps.StartOpf(t, "delete(%d)", value)
		defer op.Finishf("done")
	}
	if root := t.root.delete(value); root != t.root {
		t.root = root
		treesteps.NodeUpdated(t, "root replaced")
	}
	invariants.Check(t.CheckInvariants)
}

// delete removes value from the subtree rooted at n and returns the new root of
// that subtree. The physical node that disappears always has at most one
// child: a node with two children takes over the value of its in-order
// successor, and the successor (which has no left child) is removed instead.
func (n *Node) delete(value int) *Node {
	if n == nil {
		return nil
	}
	if treesteps.IsRecording(n) {
		op := treesteps.StartOpf(n, "delete(%d)", value)
		defer op.Finishf("done")
	}
	switch {
	case value < n.value:
		if left := n.left.delete(value); left != n.left {
			n.left = left
			treesteps.NodeUpdated(n, "left child replaced")
		}
	case value > n.value:
		if right := n.right.delete(value); right != n.right {
			n.right = right
			treesteps.NodeUpdated(n, "right child replaced")
		}
	case n.left == nil:
		return n.right
	case n.right == nil:
		return n.left
	default:
		succ := n.right.leftmost()
		n.value = succ.value
		treesteps.NodeUpdated(n, "value replaced by successor")
		if right := n.right.delete(succ.value); right != n.right {
			n.right = right
			treesteps.NodeUpdated(n, "right child replaced")
		}
	}
	return n
}

// leftmost returns the node holding the smallest value of the subtree rooted at
// n, following left links until none remains.
func (n *Node) leftmost() *Node {
	for n.left != nil {
		n = n.left
	}
	return n
}

// Contains returns true if value is in the tree.
func (t *Tree) Contains(value int) bool {
	for n := t.root; n != nil; {
		switch {
		case value < n.value:
			n = n.left
		case value > n.value:
			n = n.right
		default:
			return true
		}
	}
	return false
}

// Len returns the number of nodes in the tree.
func (t *Tree) Len() int {
	return t.root.count()
}

func (n *Node) count() int {
	if n == nil {
		return 0
	}
	return 1 + n.left.count() + n.right.count()
}

// Height returns the number of nodes on the longest root-to-leaf path. An empty
// tree has height 0.
func (t *Tree) Height() int {
	return t.root.height()
}

func (n *Node) height() int {
	if n == nil {
		return 0
	}
	return 1 + max(n.left.height(), n.right.height())
}
