// Copyright 2026 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package session

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/cockroachdb/bstview"
	"github.com/cockroachdb/bstview/internal/base"
)

// ErrInvalidInput marks errors caused by an entry that is not an integer. Test
// for it with errors.Is.
var ErrInvalidInput = base.ErrInvalidInput

// InvalidInputMessage is shown in the info label when the entry text is not an
// integer.
const InvalidInputMessage = "please enter a valid integer"

// ParseValue parses the text of the entry field. Surrounding whitespace is
// ignored. The returned error is marked with base.ErrInvalidInput.
func ParseValue(text string) (int, error) {
	v, err := strconv.Atoi(strings.TrimSpace(text))
	if err != nil {
		return 0, base.InvalidInputf("%q is not an integer", text)
	}
	return v, nil
}

// FormatSequence formats a traversal for display, for example
// "inorder: [1, 2, 3]".
func FormatSequence(name string, values []int) string {
	var buf strings.Builder
	buf.WriteString(name)
	buf.WriteString(": [")
	buf.WriteString(joinValues(values, ", "))
	buf.WriteString("]")
	return buf.String()
}

func joinValues(values []int, sep string) string {
	strs := make([]string, len(values))
	for i, v := range values {
		strs[i] = strconv.Itoa(v)
	}
	return strings.Join(strs, sep)
}

// Describe returns a sentence describing the classification of value.
func Describe(value int, c bstview.Classification) string {
	path := joinValues(c.Path, " -> ")
	stop, _ := c.Stop()
	switch c.Kind {
	case bstview.EmptyTree:
		return fmt.Sprintf("the tree is empty; %d would become the root", value)
	case bstview.Equal:
		return fmt.Sprintf("%d is in the tree at depth %d (path: %s)", value, len(c.Path)-1, path)
	case bstview.BelongsLeft:
		return fmt.Sprintf("%d belongs to the left of %d (path: %s)", value, stop, path)
	case bstview.BelongsRight:
		return fmt.Sprintf("%d belongs to the right of %d (path: %s)", value, stop, path)
	default:
		return fmt.Sprintf("%d: %s", value, c)
	}
}
