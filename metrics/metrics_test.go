// Copyright 2026 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package metrics

import (
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/require"
)

func TestOpCounts(t *testing.T) {
	var c OpCounts
	require.True(t, c.IsZero())

	c.IncInsert(true)
	c.IncInsert(true)
	c.IncInsert(false)
	c.IncDelete(false)
	c.IncClassify()
	c.IncRejected()
	require.Equal(t, OpCounts{Inserts: 3, Duplicates: 1, Deletes: 1, Misses: 1, Classifies: 1, Rejected: 1}, c)
	require.Equal(t, uint64(6), c.Total())
	require.False(t, c.IsZero())
	require.Equal(t, "inserts: 3 (1 duplicate), deletes: 1 (1 missing), classifies: 1, rejected: 1", c.String())

	var sum OpCounts
	sum.Accumulate(c)
	sum.Accumulate(c)
	require.Equal(t, uint64(12), sum.Total())
	require.Equal(t, uint64(2), sum.Duplicates)
}

func TestCollectors(t *testing.T) {
	c := NewCollectors()
	reg := prometheus.NewRegistry()
	require.NoError(t, c.Register(reg))
	err := c.Register(reg)
	require.Error(t, err)
	require.True(t, errors.As(err, &prometheus.AlreadyRegisteredError{}))

	c.ObserveOp(OpInsert, OutcomeApplied)
	c.ObserveOp(OpInsert, OutcomeApplied)
	c.ObserveOp(OpDelete, OutcomeNoop)
	require.Equal(t, 2.0, testutil.ToFloat64(c.Ops.WithLabelValues(OpInsert, OutcomeApplied)))
	require.Equal(t, 1.0, testutil.ToFloat64(c.Ops.WithLabelValues(OpDelete, OutcomeNoop)))

	c.ObservePath(3)
	c.ObservePath(5)
	var m dto.Metric
	require.NoError(t, c.PathLength.Write(&m))
	require.Equal(t, uint64(2), m.GetHistogram().GetSampleCount())
	require.Equal(t, 8.0, m.GetHistogram().GetSampleSum())

	// Nil collectors are ignored.
	var none *Collectors
	none.ObserveOp(OpClassify, OutcomeApplied)
	none.ObservePath(1)
}
