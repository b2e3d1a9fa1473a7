// Copyright 2026 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package session

import (
	"fmt"
	"strings"
	"testing"

	"github.com/cockroachdb/bstview"
	"github.com/cockroachdb/bstview/canvas"
	"github.com/cockroachdb/bstview/internal/testutils"
	"github.com/cockroachdb/bstview/metrics"
	"github.com/cockroachdb/crlib/crstrings"
	"github.com/cockroachdb/datadriven"
	"github.com/cockroachdb/errors"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
)

func TestSession(t *testing.T) {
	var s *Session
	var log testutils.BufferLogger
	datadriven.RunTest(t, "testdata/session", func(t *testing.T, td *datadriven.TestData) string {
		var buf strings.Builder
		apply := func(fn func() error) {
			for _, line := range crstrings.Lines(td.Input) {
				s.SetEntry(line)
				err := fn()
				fmt.Fprintf(&buf, "%s\n", s.Info())
				if err != nil {
					fmt.Fprintf(&buf, "error: %v (invalid input: %t)\n", err, errors.Is(err, ErrInvalidInput))
				}
			}
		}

		switch td.Cmd {
		case "new":
			s = New(&Options{Logger: &log})
			return s.Info() + "\n"

		case "insert":
			apply(s.Insert)
		case "delete":
			apply(s.Delete)
		case "classify":
			apply(func() error {
				_, err := s.Classify()
				return err
			})

		case "click":
			var p canvas.Point
			td.ScanArgs(t, "x", &p.X)
			td.ScanArgs(t, "y", &p.Y)
			if s.Click(p) {
				fmt.Fprintf(&buf, "entry: %s\n", s.Entry())
			} else {
				buf.WriteString("miss\n")
			}

		case "show":
			l := s.Labels()
			fmt.Fprintf(&buf, "%s\n%s\n%s\n", l.Preorder, l.Inorder, l.Postorder)
			if d := s.Drawing(); d != "" {
				for _, line := range strings.Split(d, "\n") {
					fmt.Fprintf(&buf, "|%s\n", line)
				}
			}

		case "log":
			buf.WriteString(log.String())

		case "counts":
			fmt.Fprintf(&buf, "%s\n", s.Counts())

		case "trace":
			var op string
			td.ScanArgs(t, "op", &op)
			s.SetEntry(strings.TrimSpace(td.Input))
			steps, err := s.Trace(op)
			if err != nil {
				return fmt.Sprintf("error: %v\n", err)
			}
			buf.WriteString(steps.String())

		default:
			td.Fatalf(t, "unknown command %q", td.Cmd)
		}
		return buf.String()
	})
}

func TestParseValue(t *testing.T) {
	for _, tc := range []struct {
		text string
		v    int
		ok   bool
	}{
		{"42", 42, true},
		{"  -7 ", -7, true},
		{"+3", 3, true},
		{"", 0, false},
		{"abc", 0, false},
		{"1.5", 0, false},
		{"12a", 0, false},
	} {
		v, err := ParseValue(tc.text)
		if !tc.ok {
			require.Error(t, err, "%q", tc.text)
			require.True(t, errors.Is(err, ErrInvalidInput))
			continue
		}
		require.NoError(t, err)
		require.Equal(t, tc.v, v)
	}
}

func TestFormat(t *testing.T) {
	require.Equal(t, "inorder: [1, 2, 3]", FormatSequence("inorder", []int{1, 2, 3}))
	require.Equal(t, "preorder: []", FormatSequence("preorder", nil))

	tree := bstview.New()
	require.Equal(t, "the tree is empty; 5 would become the root", Describe(5, tree.Classify(5)))
	for _, v := range []int{50, 30, 70, 20, 40, 60, 80} {
		tree.Insert(v)
	}
	require.Equal(t, "35 belongs to the left of 40 (path: 50 -> 30 -> 40)", Describe(35, tree.Classify(35)))
	require.Equal(t, "85 belongs to the right of 80 (path: 50 -> 70 -> 80)", Describe(85, tree.Classify(85)))
	require.Equal(t, "30 is in the tree at depth 1 (path: 50 -> 30)", Describe(30, tree.Classify(30)))
}

func TestMetrics(t *testing.T) {
	m := metrics.NewCollectors()
	s := New(&Options{Logger: NoopLogger, Metrics: m})
	for _, e := range []string{"5", "3", "5", "x"} {
		s.SetEntry(e)
		_ = s.Insert()
	}
	s.SetEntry("9")
	require.NoError(t, s.Delete())

	require.Equal(t, 2.0, testutil.ToFloat64(m.Ops.WithLabelValues(metrics.OpInsert, metrics.OutcomeApplied)))
	require.Equal(t, 1.0, testutil.ToFloat64(m.Ops.WithLabelValues(metrics.OpInsert, metrics.OutcomeNoop)))
	require.Equal(t, 1.0, testutil.ToFloat64(m.Ops.WithLabelValues(metrics.OpInsert, metrics.OutcomeRejected)))
	require.Equal(t, 1.0, testutil.ToFloat64(m.Ops.WithLabelValues(metrics.OpDelete, metrics.OutcomeNoop)))
	require.Equal(t, metrics.OpCounts{Inserts: 3, Duplicates: 1, Deletes: 1, Misses: 1, Rejected: 1}, s.Counts())
}

func TestTraceUnknown(t *testing.T) {
	s := New(&Options{Logger: &testutils.Logger{T: t}})
	s.SetEntry("1")
	_, err := s.Trace("rotate")
	require.Error(t, err)
	require.True(t, s.Tree().Empty())
}
