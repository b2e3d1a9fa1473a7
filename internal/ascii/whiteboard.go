// Copyright 2026 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

// Package ascii provides a growable character board for drawing text diagrams
// such as trees.
package ascii

import (
	"strings"
	"unicode/utf8"
)

// Board is a grid of runes that grows on demand in both directions as text is
// written to it. Unwritten cells are spaces.
type Board struct {
	rows [][]rune
}

// Make returns a new Board with the given number of blank rows, each with
// room for width runes.
func Make(width, height int) Board {
	b := Board{rows: make([][]rune, height)}
	for i := range b.rows {
		b.rows[i] = make([]rune, 0, width)
	}
	return b
}

// At returns a cursor at the given row and column.
func (b *Board) At(r, c int) Cursor {
	return Cursor{b: b, r: r, c: c}
}

// NewLine returns a cursor at the beginning of a new line below the existing
// content.
func (b *Board) NewLine() Cursor {
	return b.At(len(b.rows), 0)
}

// Lines returns the number of rows on the board.
func (b *Board) Lines() int {
	return len(b.rows)
}

// Width returns the length of the longest row.
func (b *Board) Width() int {
	w := 0
	for _, row := range b.rows {
		w = max(w, len(row))
	}
	return w
}

// Reset clears the board.
func (b *Board) Reset() {
	b.rows = b.rows[:0]
}

// String returns the board contents, one line per row, with trailing spaces
// removed.
func (b *Board) String() string {
	return b.Render("")
}

// Render returns the board contents with every line prefixed by indent.
func (b *Board) Render(indent string) string {
	var buf strings.Builder
	for i, row := range b.rows {
		if i > 0 {
			buf.WriteByte('\n')
		}
		buf.WriteString(indent)
		buf.WriteString(strings.TrimRight(string(row), " "))
	}
	return buf.String()
}

// write puts s at (r, c). Runes that would land in a negative column are
// dropped.
func (b *Board) write(r, c int, s string) {
	if r < 0 {
		return
	}
	for r >= len(b.rows) {
		b.rows = append(b.rows, nil)
	}
	if end := c + utf8.RuneCountInString(s); end > len(b.rows[r]) {
		b.rows[r] = pad(b.rows[r], end)
	}
	row := b.rows[r]
	for _, ch := range s {
		if c >= 0 {
			row[c] = ch
		}
		c++
	}
}

func pad(row []rune, n int) []rune {
	for len(row) < n {
		row = append(row, ' ')
	}
	return row
}

// Cursor is a position on a Board. Cursors are values; moving a cursor returns
// a new one.
type Cursor struct {
	b    *Board
	r, c int
}

// Offset returns a cursor moved by the given number of rows and columns.
func (c Cursor) Offset(dr, dc int) Cursor {
	c.r += dr
	c.c += dc
	return c
}

// Down returns a cursor moved down by n rows.
func (c Cursor) Down(n int) Cursor {
	c.r += n
	return c
}

// Right returns a cursor moved right by n columns.
func (c Cursor) Right(n int) Cursor {
	c.c += n
	return c
}

// Row returns the row of the cursor.
func (c Cursor) Row() int {
	return c.r
}

// Column returns the column of the cursor.
func (c Cursor) Column() int {
	return c.c
}

// WriteString writes s starting at the cursor and returns a cursor just after
// the written text. A newline in s continues on the next row at the column
// where the write started.
func (c Cursor) WriteString(s string) Cursor {
	startCol := c.c
	for {
		line, rest, found := strings.Cut(s, "\n")
		c.b.write(c.r, c.c, line)
		c.c += utf8.RuneCountInString(line)
		if !found {
			return c
		}
		c.r++
		c.c = startCol
		s = rest
	}
}

// Repeat writes ch n times starting at the cursor and returns a cursor just
// after the written runes.
func (c Cursor) Repeat(n int, ch rune) Cursor {
	if n <= 0 {
		return c
	}
	return c.WriteString(strings.Repeat(string(ch), n))
}
