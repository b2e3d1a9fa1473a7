// Copyright 2026 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package tool

import (
	"strconv"
	"strings"

	"github.com/cockroachdb/bstview/internal/base"
	"github.com/cockroachdb/bstview/internal/strparse"
	"github.com/cockroachdb/bstview/session"
)

// parseValues parses a list of integers separated by commas or whitespace. The
// arguments are joined first, so "1,2 3" and "1" "2,3" are equivalent.
func parseValues(args ...string) ([]int, error) {
	var values []int
	err := strparse.Parse(func() {
		p := strparse.MakeParser(",", strings.Join(args, " "))
		values = p.Ints(",")
	})
	if err != nil {
		return nil, base.MarkInvalidInput(err, "invalid values")
	}
	return values, nil
}

// loadSession returns a session whose tree holds values, inserted in order.
func loadSession(opts *session.Options, values []int) *session.Session {
	s := session.New(opts)
	for _, v := range values {
		s.SetEntry(strconv.Itoa(v))
		// The entry is always a valid integer.
		_ = s.Insert()
	}
	return s
}
