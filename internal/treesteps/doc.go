// Copyright 2026 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

// Package treesteps records step-by-step operations on hierarchical data
// structures so they can be replayed for inspection.
//
// Every node of the structure implements the Node interface, returning its
// name, a few properties and its children. A recording is started on the
// root; operations are bracketed with StartOpf / Finishf and significant state
// changes are announced with NodeUpdated. Each of these calls snapshots the
// whole tree as a Step. The resulting Steps can be printed as text or encoded
// into a URL for an interactive viewer.
//
// # Example
//
// A binary search tree instruments its insert like this:
//
//	func (n *node) TreeStepsNode() treesteps.NodeInfo {
//	    info := treesteps.NodeInfof("%d", n.value)
//	    info.AddChildren(n.left, n.right)
//	    return info
//	}
//
//	func (n *node) insert(v int) {
//	    if treesteps.IsRecording(n) {
//	        op := treesteps.StartOpf(n, "insert(%d)", v)
//	        defer op.Finishf("done")
//	    }
//	    if v < n.value {
//	        if n.left == nil {
//	            n.left = &node{value: v}
//	            treesteps.NodeUpdated(n, "left child added")
//	            return
//	        }
//	        n.left.insert(v)
//	    }
//	    // ...
//	}
//
//	rec := treesteps.StartRecording(root, "insert 35")
//	root.insert(35)
//	fmt.Println(rec.Finish())
//
// # Recording Options
//
// MaxTreeDepth and MaxOpDepth limit how much of a deep structure is captured:
//
//	rec := treesteps.StartRecording(root, "operation",
//	    treesteps.MaxTreeDepth(5),
//	    treesteps.MaxOpDepth(3),
//	)
//
// # Performance Considerations
//
// Check IsRecording before formatting operations. When no recording is in
// progress it is a single atomic load, and it avoids boxing the arguments of
// StartOpf.
package treesteps
