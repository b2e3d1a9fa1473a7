// Copyright 2026 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package treesteps

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// sumTree is a binary tree where every node tracks the sum of the values in its
// subtree.
type sumTree struct {
	name        string
	sum         int
	left, right *sumTree
}

var _ Node = (*sumTree)(nil)

// TreeStepsNode implements the Node interface.
func (t *sumTree) TreeStepsNode() NodeInfo {
	info := NodeInfof("%s", t.name)
	info.AddPropf("sum", "%d", t.sum)
	info.AddChildren(t.left, t.right)
	return info
}

// add adds delta to the named node and to the sums of its ancestors.
func (t *sumTree) add(target string, delta int) bool {
	op := StartOpf(t, "add(%s, %d)", target, delta)
	found := t.name == target ||
		(t.left != nil && t.left.add(target, delta)) ||
		(t.right != nil && t.right.add(target, delta))
	if found {
		t.sum += delta
		NodeUpdated(t, "sum updated")
	}
	op.Finishf("= %t", found)
	return found
}

func makeSumTree() *sumTree {
	return &sumTree{
		name:  "a",
		sum:   3,
		left:  &sumTree{name: "b", sum: 1},
		right: &sumTree{name: "c", sum: 2},
	}
}

func stepNames(s Steps) []string {
	var names []string
	for _, step := range s.Steps {
		names = append(names, step.Name)
	}
	return names
}

func TestRecording(t *testing.T) {
	root := makeSumTree()
	require.False(t, IsRecording(root))

	rec := StartRecording(root, "add c")
	require.True(t, IsRecording(root))
	require.True(t, IsRecording(root.right))
	require.True(t, root.add("c", 5))
	steps := rec.Finish()
	require.False(t, IsRecording(root))
	require.False(t, IsRecording(root.left))

	require.Equal(t, "add c", steps.Name)
	require.Equal(t, []string{
		"initial",
		"add on a started",
		"add on b started",
		"add on b finished",
		"add on c started",
		"node c: sum updated",
		"add on c finished",
		"node a: sum updated",
		"add on a finished",
	}, stepNames(steps))

	single := Steps{Name: "add c", Steps: steps.Steps[6:7]}
	require.Equal(t, `add c
step 1/1: add on c finished
a <- add(c, 5)
├── sum: 3
├── b
│   └── sum: 1
└── c <- add(c, 5) = true
    └── sum: 7
`, single.String())

	require.Equal(t, `a
├── sum: 8
├── b
│   └── sum: 1
└── c
    └── sum: 7
`, TreeToString(root))
}

func TestRecordingDepthLimits(t *testing.T) {
	for _, opt := range []RecordingOption{MaxTreeDepth(0), MaxOpDepth(0)} {
		root := makeSumTree()
		rec := StartRecording(root, "add b", opt)
		require.True(t, root.add("b", 1))
		steps := rec.Finish()
		require.Equal(t, []string{
			"initial",
			"add on a started",
			"node a: sum updated",
			"add on a finished",
		}, stepNames(steps))
	}

	root := makeSumTree()
	rec := StartRecording(root, "add b", MaxTreeDepth(0))
	steps := rec.Finish()
	require.Equal(t, TreeNode{
		Name:       "a",
		Properties: [][2]string{{"sum", "3"}},
		Children:   []TreeNode{{Name: "..."}, {Name: "..."}},
	}, steps.Steps[0].Root)
}

func TestNilOp(t *testing.T) {
	root := makeSumTree()
	op := StartOpf(root, "noop")
	require.Nil(t, op)
	op.Updatef("ignored")
	op.Finishf("ignored")
	NodeUpdated(root, "ignored")
}

func TestUpdatef(t *testing.T) {
	root := makeSumTree()
	rec := StartRecording(root, "update")
	op := StartOpf(root, "scan")
	op.Updatef("halfway")
	op.Finishf("done")
	steps := rec.Finish()
	require.Equal(t, []string{
		"initial",
		"scan on a started",
		"scan on a updated",
		"scan on a finished",
	}, stepNames(steps))
	require.Equal(t, []string{"scan halfway"}, steps.Steps[2].Root.Ops)
	require.Empty(t, steps.Steps[0].Root.Ops)
}

func TestURL(t *testing.T) {
	root := makeSumTree()
	rec := StartRecording(root, "add c")
	root.add("c", 1)
	steps := rec.Finish()

	u := steps.URL()
	require.Equal(t, "https", u.Scheme)
	require.Equal(t, "raduberinde.github.io", u.Host)
	require.Equal(t, "treesteps/decode.html", u.Path)
	require.NotEmpty(t, u.Fragment)

	decoded, err := DecodeURL(u)
	require.NoError(t, err)
	require.Equal(t, steps, decoded)
}
