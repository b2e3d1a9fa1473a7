// Copyright 2026 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

// Package bstview provides an unbalanced binary search tree over distinct
// integer keys, built to be inspected: besides Insert and Delete it offers the
// three classical traversals and Classify, which reports the root-to-leaf path
// a probe value would descend and where it would land.
//
// Every node exclusively owns its children, and the Tree owns the root. There
// are no parent pointers; all navigation is top-down and a deleted node is
// simply unlinked. For every node, the values in its left subtree are strictly
// smaller and the values in its right subtree strictly larger than its own.
// Inserting a value that is already present and deleting a value that is not
// are no-ops.
//
// All operations are total: none of them return errors. The read accessors
// (Tree.Root, Node.Value, Node.Left, Node.Right) expose the shape to
// renderers such as package canvas; parsing user input and formatting results
// as text is left to callers (see package session).
//
// A Tree is not safe for concurrent use.
package bstview
