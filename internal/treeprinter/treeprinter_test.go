// Copyright 2026 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package treeprinter

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTreePrinter(t *testing.T) {
	tp := New()
	require.Equal(t, "", tp.String())

	root := tp.Child("50")
	l := root.Child("30")
	l.Child("20")
	l.Childf("%d", 40)
	r := root.Child("70")
	r.Child("80")
	tp.Child("other")

	require.Equal(t, `50
├── 30
│   ├── 20
│   └── 40
└── 70
    └── 80
other
`, r.String())
}
