// Copyright 2026 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

// Package treeprinter renders hierarchies as indented text with box-drawing
// branches:
//
//	50
//	├── 30
//	│   └── 20
//	└── 70
package treeprinter

import (
	"fmt"
	"strings"
)

// Node is a handle to a node in a tree being printed. The zero Node is not
// valid; use New.
type Node struct {
	p   *printer
	idx int
}

type entry struct {
	text     string
	children []int
}

type printer struct {
	entries []entry
}

// New returns an invisible root node. Its children are printed flush left.
func New() Node {
	p := &printer{entries: []entry{{}}}
	return Node{p: p}
}

// Child adds a child with the given text and returns it.
func (n Node) Child(text string) Node {
	idx := len(n.p.entries)
	n.p.entries = append(n.p.entries, entry{text: text})
	n.p.entries[n.idx].children = append(n.p.entries[n.idx].children, idx)
	return Node{p: n.p, idx: idx}
}

// Childf adds a child with formatted text and returns it.
func (n Node) Childf(format string, args ...interface{}) Node {
	return n.Child(fmt.Sprintf(format, args...))
}

// String returns the whole tree that n belongs to, independent of which node
// n is.
func (n Node) String() string {
	var buf strings.Builder
	for _, c := range n.p.entries[0].children {
		buf.WriteString(n.p.entries[c].text)
		buf.WriteByte('\n')
		n.p.render(&buf, c, "")
	}
	return buf.String()
}

func (p *printer) render(buf *strings.Builder, idx int, prefix string) {
	children := p.entries[idx].children
	for i, c := range children {
		branch, indent := "├── ", "│   "
		if i == len(children)-1 {
			branch, indent = "└── ", "    "
		}
		buf.WriteString(prefix)
		buf.WriteString(branch)
		buf.WriteString(p.entries[c].text)
		buf.WriteByte('\n')
		p.render(buf, c, prefix+indent)
	}
}
