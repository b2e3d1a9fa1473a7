// Copyright 2026 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package tool

import (
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/HdrHistogram/hdrhistogram-go"
	"github.com/cockroachdb/bstview"
	"github.com/cockroachdb/bstview/metrics"
	"github.com/cockroachdb/bstview/session"
	"github.com/cockroachdb/errors"
	"github.com/guptarohit/asciigraph"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"golang.org/x/exp/rand"
)

// treeT implements the one-shot tree commands, including both configuration
// state and the commands themselves.
type treeT struct {
	Root     *cobra.Command
	Build    *cobra.Command
	Classify *cobra.Command
	Stats    *cobra.Command
	Steps    *cobra.Command

	opts *session.Options

	// Flags.
	random      int
	seed        int64
	maxValue    int
	debug       bool
	fingerprint bool
	values      string
	height      int
	url         bool
}

func newTree(opts *session.Options) *treeT {
	t := &treeT{opts: opts}

	t.Root = &cobra.Command{
		Use:   "tree",
		Short: "build and inspect binary search trees",
	}
	t.Build = &cobra.Command{
		Use:   "build <values>",
		Short: "build a tree and print its traversals and drawing",
		Long: `
Build a tree by inserting the given values in order and print the three
traversals followed by a drawing of the tree. Values can be separated by
commas or spaces.
`,
		Run: t.runBuild,
	}
	t.Classify = &cobra.Command{
		Use:   "classify --values <values> <probes>",
		Short: "describe where probe values stand in a tree",
		Args:  cobra.MinimumNArgs(1),
		Run:   t.runClassify,
	}
	t.Stats = &cobra.Command{
		Use:   "stats <values>",
		Short: "print the depth profile and probe path lengths of a tree",
		Long: `
Print the depth of every node in in-order position as a plot, and the
distribution of the number of nodes visited when probing each gap between
consecutive values (and beyond both ends).
`,
		Args: cobra.MinimumNArgs(1),
		Run:  t.runStats,
	}
	t.Steps = &cobra.Command{
		Use:   "steps --values <values> <insert|delete|classify> <value>",
		Short: "show how an operation travels through a tree",
		Args:  cobra.ExactArgs(2),
		Run:   t.runSteps,
	}

	t.Root.AddCommand(t.Build, t.Classify, t.Stats, t.Steps)

	t.Build.Flags().IntVar(
		&t.random, "random", 0, "number of random distinct values to append")
	t.Build.Flags().Int64Var(
		&t.seed, "seed", 1, "seed for --random")
	t.Build.Flags().IntVar(
		&t.maxValue, "max", 1000, "random values are drawn from [0, max)")
	t.Build.Flags().BoolVar(
		&t.debug, "debug", false, "print the structure of the tree")
	t.Build.Flags().BoolVar(
		&t.fingerprint, "fingerprint", false, "print the shape fingerprint of the tree")
	for _, cmd := range []*cobra.Command{t.Classify, t.Steps} {
		cmd.Flags().StringVar(
			&t.values, "values", "", "comma separated values to insert first")
	}
	t.Stats.Flags().IntVar(
		&t.height, "height", 10, "height of the depth plot")
	t.Steps.Flags().BoolVar(
		&t.url, "url", true, "print a visualization URL")
	return t
}

func (t *treeT) runBuild(cmd *cobra.Command, args []string) {
	stdout, stderr := cmd.OutOrStdout(), cmd.OutOrStderr()
	values, err := parseValues(args...)
	if err != nil {
		fmt.Fprintf(stderr, "%s\n", err)
		return
	}
	if t.random > 0 {
		extra, err := randomValues(t.random, t.maxValue, t.seed, values)
		if err != nil {
			fmt.Fprintf(stderr, "%s\n", err)
			return
		}
		values = append(values, extra...)
	}
	s := loadSession(t.opts, values)
	tree := s.Tree()

	tbl := tablewriter.NewWriter(stdout)
	tbl.SetHeader([]string{"Order", "Values"})
	tbl.SetAutoWrapText(false)
	for _, row := range []struct {
		name   string
		values []int
	}{
		{"preorder", tree.PreorderTraversal()},
		{"inorder", tree.InorderTraversal()},
		{"postorder", tree.PostorderTraversal()},
	} {
		tbl.Append([]string{row.name, fmt.Sprint(row.values)})
	}
	tbl.Render()

	if d := s.Drawing(); d != "" {
		fmt.Fprintf(stdout, "%s\n", d)
	}
	if t.debug {
		fmt.Fprint(stdout, tree.DebugString())
	}
	if t.fingerprint {
		fmt.Fprintf(stdout, "fingerprint: %016x\n", tree.Fingerprint())
	}
}

// randomValues returns n random values in [0, maxValue) that are distinct
// from each other and from existing.
func randomValues(n, maxValue int, seed int64, existing []int) ([]int, error) {
	seen := make(map[int]struct{}, len(existing)+n)
	for _, v := range existing {
		seen[v] = struct{}{}
	}
	free := maxValue
	for v := range seen {
		if v >= 0 && v < maxValue {
			free--
		}
	}
	if n > free {
		return nil, errors.Newf("cannot draw %d distinct values from [0, %d)", n, maxValue)
	}
	rng := rand.New(rand.NewSource(uint64(seed)))
	res := make([]int, 0, n)
	for len(res) < n {
		v := rng.Intn(maxValue)
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		res = append(res, v)
	}
	return res, nil
}

func (t *treeT) runClassify(cmd *cobra.Command, args []string) {
	stdout, stderr := cmd.OutOrStdout(), cmd.OutOrStderr()
	values, err := parseValues(t.values)
	if err != nil {
		fmt.Fprintf(stderr, "%s\n", err)
		return
	}
	probes, err := parseValues(args...)
	if err != nil {
		fmt.Fprintf(stderr, "%s\n", err)
		return
	}
	tree := loadSession(t.opts, values).Tree()
	for _, p := range probes {
		fmt.Fprintf(stdout, "%s\n", session.Describe(p, tree.Classify(p)))
	}
}

func (t *treeT) runStats(cmd *cobra.Command, args []string) {
	stdout, stderr := cmd.OutOrStdout(), cmd.OutOrStderr()
	values, err := parseValues(args...)
	if err != nil {
		fmt.Fprintf(stderr, "%s\n", err)
		return
	}
	tree := loadSession(t.opts, values).Tree()
	if err := writeStats(stdout, tree, t.height); err != nil {
		fmt.Fprintf(stderr, "%s\n", err)
	}
}

// gapProbes returns one value for every gap between consecutive values of the
// sorted slice, plus one value beyond each end. Every probe is absent from the
// tree.
func gapProbes(sorted []int) []int {
	if len(sorted) == 0 {
		return nil
	}
	var probes []int
	if first := sorted[0]; first > minInt {
		probes = append(probes, first-1)
	}
	for i := 1; i < len(sorted); i++ {
		if sorted[i]-sorted[i-1] > 1 {
			probes = append(probes, sorted[i-1]+1)
		}
	}
	if last := sorted[len(sorted)-1]; last < maxInt {
		probes = append(probes, last+1)
	}
	return probes
}

const (
	maxInt = int(^uint(0) >> 1)
	minInt = -maxInt - 1
)

func writeStats(w io.Writer, tree *bstview.Tree, plotHeight int) error {
	inorder := tree.InorderTraversal()
	fmt.Fprintf(w, "nodes: %d\nheight: %d\n", len(inorder), tree.Height())
	if len(inorder) == 0 {
		return nil
	}

	probes := gapProbes(inorder)
	hist := hdrhistogram.New(1, int64(tree.Height())+1, 3)
	for _, p := range probes {
		if err := hist.RecordValue(int64(len(tree.Classify(p).Path))); err != nil {
			return errors.Wrapf(err, "recording path length of %d", p)
		}
	}
	fmt.Fprintf(w, "probes: %d\n", hist.TotalCount())
	fmt.Fprintf(w, "path length: mean %.2f, p50 %d, p90 %d, max %d\n",
		hist.Mean(), hist.ValueAtPercentile(50), hist.ValueAtPercentile(90), hist.Max())

	depths := make([]float64, len(inorder))
	for i, v := range inorder {
		depths[i] = float64(len(tree.Classify(v).Path) - 1)
	}
	if len(depths) == 1 {
		// A plot needs at least two points.
		depths = append(depths, depths[0])
	}
	fmt.Fprintf(w, "%s\n", asciigraph.Plot(depths,
		asciigraph.Height(plotHeight), asciigraph.Caption("depth by in-order position")))
	return nil
}

func (t *treeT) runSteps(cmd *cobra.Command, args []string) {
	stdout, stderr := cmd.OutOrStdout(), cmd.OutOrStderr()
	op := strings.ToLower(args[0])
	if !slices.Contains([]string{metrics.OpInsert, metrics.OpDelete, metrics.OpClassify}, op) {
		fmt.Fprintf(stderr, "unknown operation %q\n", args[0])
		return
	}
	values, err := parseValues(t.values)
	if err != nil {
		fmt.Fprintf(stderr, "%s\n", err)
		return
	}
	s := loadSession(t.opts, values)
	s.SetEntry(args[1])
	steps, err := s.Trace(op)
	if err != nil {
		fmt.Fprintf(stderr, "%s\n", err)
		return
	}
	fmt.Fprint(stdout, steps.String())
	if t.url {
		u := steps.URL()
		fmt.Fprintf(stdout, "url: %s\n", u.String())
	}
}
