// Copyright 2026 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package bstview

import "github.com/cockroachdb/bstview/internal/treesteps"

var _ treesteps.Node = (*Tree)(nil)
var _ treesteps.Node = (*Node)(nil)

// TreeStepsNode implements the treesteps.Node interface.
func (t *Tree) TreeStepsNode() treesteps.NodeInfo {
	info := treesteps.NodeInfof("tree")
	info.AddChildren(t.root)
	return info
}

// TreeStepsNode implements the treesteps.Node interface. When a node has a
// single child, the missing side is shown as a property so that left and right
// children can be told apart.
func (n *Node) TreeStepsNode() treesteps.NodeInfo {
	info := treesteps.NodeInfof("%d", n.value)
	switch {
	case n.left == nil && n.right != nil:
		info.AddPropf("left", "nil")
	case n.left != nil && n.right == nil:
		info.AddPropf("right", "nil")
	}
	info.AddChildren(n.left, n.right)
	return info
}
