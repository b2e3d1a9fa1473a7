// Copyright 2026 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

// Package metrics tracks the operations applied to a tree during a session,
// both as plain counters and as Prometheus collectors.
package metrics

import (
	"github.com/cockroachdb/crlib/crhumanize"
	"github.com/cockroachdb/redact"
)

// OpCounts counts the operations applied to a tree.
type OpCounts struct {
	// Inserts is the number of insert requests, including duplicates.
	Inserts uint64
	// Duplicates is the number of inserts of a value that was already present.
	Duplicates uint64
	// Deletes is the number of delete requests, including misses.
	Deletes uint64
	// Misses is the number of deletes of a value that was not present.
	Misses uint64
	// Classifies is the number of classify requests.
	Classifies uint64
	// Rejected is the number of requests whose input was not a valid integer.
	Rejected uint64
}

// IncInsert counts an insert; inserted is false if the value was present.
func (c *OpCounts) IncInsert(inserted bool) {
	c.Inserts++
	if !inserted {
		c.Duplicates++
	}
}

// IncDelete counts a delete; deleted is false if the value was not present.
func (c *OpCounts) IncDelete(deleted bool) {
	c.Deletes++
	if !deleted {
		c.Misses++
	}
}

// IncClassify counts a classify request.
func (c *OpCounts) IncClassify() {
	c.Classifies++
}

// IncRejected counts a request with invalid input.
func (c *OpCounts) IncRejected() {
	c.Rejected++
}

// Accumulate increases the counts by the given amounts.
func (c *OpCounts) Accumulate(other OpCounts) {
	c.Inserts += other.Inserts
	c.Duplicates += other.Duplicates
	c.Deletes += other.Deletes
	c.Misses += other.Misses
	c.Classifies += other.Classifies
	c.Rejected += other.Rejected
}

// Total returns the number of requests, rejected ones included.
func (c OpCounts) Total() uint64 {
	return c.Inserts + c.Deletes + c.Classifies + c.Rejected
}

func (c OpCounts) IsZero() bool {
	return c == OpCounts{}
}

func (c OpCounts) String() string {
	return redact.StringWithoutMarkers(c)
}

// SafeFormat implements redact.SafeFormatter.
func (c OpCounts) SafeFormat(w redact.SafePrinter, verb rune) {
	count := func(n uint64) redact.SafeString {
		return redact.SafeString(crhumanize.Count(n, crhumanize.Compact))
	}
	w.Printf("inserts: %s (%s duplicate), deletes: %s (%s missing), classifies: %s, rejected: %s",
		count(c.Inserts), count(c.Duplicates), count(c.Deletes), count(c.Misses),
		count(c.Classifies), count(c.Rejected))
}
