// Copyright 2026 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package bstview

// PreorderTraversal returns the values of the tree in preorder: each node
// before its left subtree, which comes before its right subtree. The result is
// computed on every call; an empty tree yields an empty slice.
func (t *Tree) PreorderTraversal() []int {
	return t.root.preorder(make([]int, 0, t.Len()))
}

func (n *Node) preorder(result []int) []int {
	if n == nil {
		return result
	}
	result = append(result, n.value)
	result = n.left.preorder(result)
	return n.right.preorder(result)
}

// InorderTraversal returns the values of the tree in order: left subtree, node,
// right subtree. The values are always strictly ascending.
func (t *Tree) InorderTraversal() []int {
	return t.root.inorder(make([]int, 0, t.Len()))
}

func (n *Node) inorder(result []int) []int {
	if n == nil {
		return result
	}
	result = n.left.inorder(result)
	result = append(result, n.value)
	return n.right.inorder(result)
}

// PostorderTraversal returns the values of the tree in postorder: left
// subtree, right subtree, then the node itself.
func (t *Tree) PostorderTraversal() []int {
	return t.root.postorder(make([]int, 0, t.Len()))
}

func (n *Node) postorder(result []int) []int {
	if n == nil {
		return result
	}
	result = n.left.postorder(result)
	result = n.right.postorder(result)
	return append(result, n.value)
}
