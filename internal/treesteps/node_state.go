// Copyright 2026 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package treesteps

import (
	"fmt"
	"sync"
	"sync/atomic"
)

// nodeState is the per-node bookkeeping of an in-progress recording.
type nodeState struct {
	recording *Recording
	depth     int
	node      Node
	name      string

	// ops currently running for this node.
	ops []*Op
}

var mu struct {
	sync.Mutex

	active atomic.Bool
	nodes  map[Node]*nodeState
}

// snapshotLocked captures ns and its descendants (down to the recording's
// maximum tree depth). Nodes seen for the first time are registered with the
// recording, which is how nodes created during an operation join it.
func snapshotLocked(ns *nodeState) TreeNode {
	info := ns.node.TreeStepsNode()
	ns.name = info.name
	t := TreeNode{Name: info.name, Properties: info.properties}
	for _, op := range ns.ops {
		desc := op.details
		if op.state != "" {
			desc += " " + op.state
		}
		t.Ops = append(t.Ops, desc)
	}
	for _, child := range info.children {
		if ns.depth >= ns.recording.maxTreeDepth {
			t.Children = append(t.Children, TreeNode{Name: "..."})
			continue
		}
		cs := stateLocked(ns.recording, child)
		cs.depth = ns.depth + 1
		t.Children = append(t.Children, snapshotLocked(cs))
	}
	return t
}

func stateLocked(r *Recording, n Node) *nodeState {
	ns, ok := mu.nodes[n]
	if !ok {
		ns = &nodeState{recording: r, node: n}
		mu.nodes[n] = ns
	} else if ns.recording != r {
		panic(fmt.Sprintf("node %v part of multiple recordings", n))
	}
	return ns
}
