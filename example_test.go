// Copyright 2026 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package bstview_test

import (
	"fmt"

	"github.com/cockroachdb/bstview"
)

func Example() {
	t := bstview.New()
	for _, v := range []int{50, 30, 70, 20, 40, 60, 80} {
		t.Insert(v)
	}
	fmt.Println(t.InorderTraversal())
	fmt.Println(t.PreorderTraversal())
	fmt.Println(t.Classify(35))

	t.Delete(30)
	fmt.Println(t.InorderTraversal())
	fmt.Println(t.Root().Left().Value())
	// Output:
	// [20 30 40 50 60 70 80]
	// [50 30 20 40 70 60 80]
	// belongs-left [50 30 40]
	// [20 40 50 60 70 80]
	// 40
}
