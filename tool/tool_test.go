// Copyright 2026 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package tool

import (
	"bytes"
	"fmt"
	"net/url"
	"strings"
	"testing"

	"github.com/cockroachdb/bstview"
	"github.com/cockroachdb/bstview/internal/testutils"
	"github.com/cockroachdb/bstview/internal/treesteps"
	"github.com/cockroachdb/bstview/session"
	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, tool *T, args ...string) string {
	var buf bytes.Buffer
	c := &cobra.Command{}
	c.AddCommand(tool.Commands...)
	c.SetArgs(args)
	c.SetOutput(&buf)
	require.NoError(t, c.Execute())
	return buf.String()
}

func TestBuild(t *testing.T) {
	out := execute(t, New(), "tree", "build", "50,30", "70", "--debug", "--fingerprint")
	for _, s := range []string{
		"ORDER", "VALUES",
		"preorder", "[50 30 70]",
		"inorder", "[30 50 70]",
		"postorder", "[30 70 50]",
		"           /                   \\\n",
		"50\n├── L 30\n└── R 70\n",
		"fingerprint: ",
	} {
		require.Contains(t, out, s)
	}

	tr := bstview.New()
	for _, v := range []int{50, 30, 70} {
		tr.Insert(v)
	}
	require.Contains(t, out, fmt.Sprintf("fingerprint: %016x\n", tr.Fingerprint()))
}

func TestBuildRandom(t *testing.T) {
	a := execute(t, New(), "tree", "build", "--random=20", "--seed=7", "--fingerprint")
	b := execute(t, New(), "tree", "build", "--random=20", "--seed=7", "--fingerprint")
	require.Equal(t, a, b)

	values, err := randomValues(5, 6, 1, []int{0})
	require.NoError(t, err)
	require.ElementsMatch(t, []int{1, 2, 3, 4, 5}, values)

	_, err = randomValues(6, 6, 1, []int{0})
	require.Error(t, err)

	out := execute(t, New(), "tree", "build", "--random=3", "--max=2")
	require.Contains(t, out, "cannot draw 3 distinct values from [0, 2)")
}

func TestStats(t *testing.T) {
	out := execute(t, New(), "tree", "stats", "50,30,70,20,40,60,80")
	require.Contains(t, out, "nodes: 7\nheight: 3\nprobes: 8\n")
	require.Contains(t, out, "path length: mean 3.00, p50 3, p90 3, max 3\n")
	require.Contains(t, out, "depth by in-order position")

	out = execute(t, New(), "tree", "stats", "1,2,3")
	require.Contains(t, out, "nodes: 3\nheight: 3\nprobes: 2\n")

	out = execute(t, New(), "tree", "stats", "5")
	require.Contains(t, out, "probes: 2\n")
}

func TestGapProbes(t *testing.T) {
	require.Nil(t, gapProbes(nil))
	require.Equal(t, []int{0, 2, 5, 8}, gapProbes([]int{1, 4, 7}))
	require.Equal(t, []int{0, 3}, gapProbes([]int{1, 2}))
	require.Equal(t, []int{maxInt - 1}, gapProbes([]int{maxInt}))
}

func TestStepsURL(t *testing.T) {
	out := execute(t, New(), "tree", "steps", "--values=50,30", "insert", "40")
	i := strings.Index(out, "url: ")
	require.NotEqual(t, -1, i)
	u, err := url.Parse(strings.TrimSpace(out[i+len("url: "):]))
	require.NoError(t, err)
	steps, err := treesteps.DecodeURL(*u)
	require.NoError(t, err)
	require.Equal(t, "insert(40)", steps.Name)
	require.Equal(t, out[:i], steps.String())
}

func TestLogger(t *testing.T) {
	var log testutils.BufferLogger
	tool := New(Logger(&log))
	execute(t, tool, "tree", "classify", "--values=2,1", "1")
	require.Equal(t, "insert(2): applied\ninsert(1): applied\n", log.String())

	var other testutils.BufferLogger
	tool.SetLogger(&other)
	execute(t, tool, "tree", "classify", "--values=3", "1")
	require.Equal(t, "", log.String())
	require.Equal(t, "insert(3): applied\n", other.String())
}

func TestParseValues(t *testing.T) {
	values, err := parseValues("1,2", "3 , 4", "")
	require.NoError(t, err)
	require.Equal(t, []int{1, 2, 3, 4}, values)

	values, err = parseValues()
	require.NoError(t, err)
	require.Empty(t, values)

	_, err = parseValues("1,a")
	require.True(t, errors.Is(err, session.ErrInvalidInput))
}

func TestScriptLines(t *testing.T) {
	lines, err := scriptLines([]byte("# comment\ninsert 1\n\n   \n  # indented comment\nshow\n"))
	require.NoError(t, err)
	require.Equal(t, []string{"insert 1", "show"}, lines)
}
