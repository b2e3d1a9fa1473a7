// Copyright 2026 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package treesteps

import (
	"fmt"
	"reflect"
	"slices"
	"strings"
	"unicode"

	"github.com/cockroachdb/bstview/internal/treeprinter"
)

// Node must be implemented by every node in the hierarchy.
type Node interface {
	TreeStepsNode() NodeInfo
}

// NodeInfo contains the information that we present for each node.
type NodeInfo struct {
	name       string
	properties [][2]string
	children   []Node
}

// NodeInfof returns a NodeInfo with the name initialized with a formatted
// string.
func NodeInfof(format string, args ...any) NodeInfo {
	return NodeInfo{name: fmt.Sprintf(format, args...)}
}

// AddPropf adds a property to the NodeInfo.
func (ni *NodeInfo) AddPropf(key string, format string, args ...any) {
	ni.properties = append(ni.properties, [2]string{key, fmt.Sprintf(format, args...)})
}

// AddChildren adds one or more children to the NodeInfo.
//
// Any nil children are ignored (this includes nil pointers of any type).
func (ni *NodeInfo) AddChildren(nodes ...Node) {
	for _, n := range nodes {
		if n == nil {
			continue
		}
		if val := reflect.ValueOf(n); val.Kind() == reflect.Ptr && val.IsNil() {
			continue
		}
		ni.children = append(ni.children, n)
	}
}

// Recording captures the step-by-step propagation of operations. See
// StartRecording.
type Recording struct {
	name         string
	maxTreeDepth int
	maxOpDepth   int
	root         *nodeState
	steps        []Step
}

// RecordingOption is an optional argument to StartRecording.
type RecordingOption func(*Recording)

// MaxTreeDepth configures a recording to only show trees up to a certain depth.
// Operations and node updates below that level are ignored.
func MaxTreeDepth(maxTreeDepth int) RecordingOption {
	return func(r *Recording) {
		r.maxTreeDepth = maxTreeDepth
		r.maxOpDepth = min(r.maxOpDepth, maxTreeDepth)
	}
}

// MaxOpDepth configures a recording to only show operations for nodes up to a
// certain depth. Operations and node updates below that level are ignored.
func MaxOpDepth(maxOpDepth int) RecordingOption {
	return func(r *Recording) {
		r.maxOpDepth = maxOpDepth
		r.maxTreeDepth = max(r.maxTreeDepth, maxOpDepth)
	}
}

// StartRecording starts a new recording of the hierarchy under root and emits
// the "initial" step.
//
// It is not legal to start a recording that involves the same node as another
// in-progress recording.
func StartRecording(root Node, name string, opts ...RecordingOption) *Recording {
	mu.Lock()
	defer mu.Unlock()
	mu.active.Store(true)
	r := &Recording{
		name:         name,
		maxTreeDepth: 20,
		maxOpDepth:   10,
	}
	for _, o := range opts {
		o(r)
	}
	if mu.nodes == nil {
		mu.nodes = make(map[Node]*nodeState)
	}
	r.root = stateLocked(r, root)
	r.stepLockedf("initial")
	return r
}

// Finish completes the recording and returns the recorded steps.
func (r *Recording) Finish() Steps {
	mu.Lock()
	defer mu.Unlock()
	for n, ns := range mu.nodes {
		if ns.recording == r {
			delete(mu.nodes, n)
		}
	}
	if len(mu.nodes) == 0 {
		mu.active.Store(false)
	}
	r.root = nil
	return Steps{Name: r.name, Steps: r.steps}
}

func (r *Recording) stepLockedf(format string, args ...any) {
	r.steps = append(r.steps, Step{
		Name: fmt.Sprintf(format, args...),
		Root: snapshotLocked(r.root),
	})
}

// IsRecording indicates whether a recording involving a given node is currently
// in progress. Can be used as a fast check before calling StartOpf.
func IsRecording(n Node) bool {
	if !mu.active.Load() {
		return false
	}
	mu.Lock()
	defer mu.Unlock()
	_, ok := mu.nodes[n]
	return ok
}

// NodeUpdated emits a step in the recording that involves the given node, if
// any. It is used when the state of the node changed in a significant way. The
// reason is optional and shows up in the step description.
func NodeUpdated(n Node, reason string) {
	if !mu.active.Load() {
		return
	}
	mu.Lock()
	defer mu.Unlock()
	ns, ok := mu.nodes[n]
	if !ok || ns.depth > ns.recording.maxOpDepth {
		return
	}
	if reason == "" {
		ns.recording.stepLockedf("node %s updated", firstWord(ns.name))
	} else {
		ns.recording.stepLockedf("node %s: %s", firstWord(ns.name), reason)
	}
}

// Op represents an operation that is associated with a node.
type Op struct {
	details   string
	state     string
	nodeState *nodeState
}

// StartOpf registers the start of a new operation on a node and emits a step.
// The operation is displayed for the node until Finishf is called.
//
// If no recording involving the node is in progress, does nothing and returns
// nil. All Op methods can be called (and do nothing) on a nil Op.
func StartOpf(node Node, format string, args ...any) *Op {
	mu.Lock()
	defer mu.Unlock()
	ns, ok := mu.nodes[node]
	if !ok || ns.depth > ns.recording.maxOpDepth {
		return nil
	}
	op := &Op{
		details:   fmt.Sprintf(format, args...),
		nodeState: ns,
	}
	ns.ops = append(ns.ops, op)
	ns.recording.stepLockedf("%s on %s started", firstWord(op.details), firstWord(ns.name))
	return op
}

// Updatef changes the state of the operation and emits a step. The state shows
// up after the details that were provided to StartOpf.
func (op *Op) Updatef(format string, args ...any) {
	if op == nil {
		return
	}
	mu.Lock()
	defer mu.Unlock()
	op.state = fmt.Sprintf(format, args...)
	op.nodeState.recording.stepLockedf("%s on %s updated", firstWord(op.details), firstWord(op.nodeState.name))
}

// Finishf sets the final state of the operation, emits a step and removes the
// operation from its node.
func (op *Op) Finishf(format string, args ...any) {
	if op == nil {
		return
	}
	mu.Lock()
	defer mu.Unlock()
	op.state = fmt.Sprintf(format, args...)
	ns := op.nodeState
	ns.recording.stepLockedf("%s on %s finished", firstWord(op.details), firstWord(ns.name))
	ns.ops = slices.DeleteFunc(ns.ops, func(o *Op) bool { return o == op })
}

func firstWord(str string) string {
	for i, r := range str {
		if unicode.IsSpace(r) || strings.ContainsRune("()[]{}:", r) {
			return str[:i]
		}
	}
	return str
}

// TreeToString returns a string representation of the current state of a Node
// tree, outside of any recording.
func TreeToString(n Node) string {
	tp := treeprinter.New()
	printNode(n, tp)
	return tp.String()
}

func printNode(n Node, parent treeprinter.Node) {
	ni := n.TreeStepsNode()
	tpNode := parent.Child(ni.name)
	for _, prop := range ni.properties {
		tpNode.Childf("%s: %s", prop[0], prop[1])
	}
	for _, child := range ni.children {
		printNode(child, tpNode)
	}
}
