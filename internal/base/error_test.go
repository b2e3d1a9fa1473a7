// Copyright 2026 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package base

import (
	"strconv"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/require"
)

func TestInvalidInput(t *testing.T) {
	err := InvalidInputf("cannot parse %q", "abc")
	require.True(t, errors.Is(err, ErrInvalidInput))
	require.Equal(t, `cannot parse "abc"`, err.Error())

	_, parseErr := strconv.Atoi("x1")
	err = MarkInvalidInput(parseErr, "insert")
	require.True(t, errors.Is(err, ErrInvalidInput))
	require.Contains(t, err.Error(), "insert: ")
	var numErr *strconv.NumError
	require.True(t, errors.As(err, &numErr))

	require.NoError(t, MarkInvalidInput(nil, "insert"))
	require.False(t, errors.Is(errors.New("other"), ErrInvalidInput))
}

func TestNoopLogger(t *testing.T) {
	var l Logger = NoopLogger{}
	l.Infof("ignored %d", 1)
	l.Errorf("ignored %d", 2)
	require.PanicsWithValue(t, "fatal 3", func() { l.Fatalf("fatal %d", 3) })
}
