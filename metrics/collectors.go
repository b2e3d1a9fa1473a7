// Copyright 2026 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package metrics

import (
	"github.com/cockroachdb/errors"
	"github.com/prometheus/client_golang/prometheus"
)

// Operation labels.
const (
	OpInsert   = "insert"
	OpDelete   = "delete"
	OpClassify = "classify"
)

// Outcome labels.
const (
	OutcomeApplied  = "applied"
	OutcomeNoop     = "noop"
	OutcomeRejected = "rejected"
)

// Collectors exports tree operations to Prometheus.
type Collectors struct {
	// Ops counts requests by operation and outcome.
	Ops *prometheus.CounterVec
	// PathLength is the number of nodes visited by each request.
	PathLength prometheus.Histogram
}

// NewCollectors returns unregistered collectors.
func NewCollectors() *Collectors {
	return &Collectors{
		Ops: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "bstview",
				Name:      "ops_total",
				Help:      "Number of tree operations by operation and outcome.",
			}, []string{"op", "outcome"},
		),
		PathLength: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: "bstview",
				Name:      "path_length",
				Help:      "Number of nodes visited from the root by an operation.",
				Buckets:   prometheus.ExponentialBuckets(1, 2, 8),
			},
		),
	}
}

// Register registers all collectors with r.
func (c *Collectors) Register(r prometheus.Registerer) error {
	for _, col := range []prometheus.Collector{c.Ops, c.PathLength} {
		if err := r.Register(col); err != nil {
			return errors.Wrap(err, "registering bstview collectors")
		}
	}
	return nil
}

// ObserveOp counts one request. It is a no-op on nil Collectors.
func (c *Collectors) ObserveOp(op, outcome string) {
	if c == nil {
		return
	}
	c.Ops.With(prometheus.Labels{"op": op, "outcome": outcome}).Inc()
}

// ObservePath records the length of a descent path. It is a no-op on nil
// Collectors.
func (c *Collectors) ObservePath(n int) {
	if c == nil {
		return
	}
	c.PathLength.Observe(float64(n))
}
