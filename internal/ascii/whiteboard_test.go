// Copyright 2026 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package ascii

import (
	"fmt"
	"testing"

	"github.com/cockroachdb/bstview/internal/strparse"
	"github.com/cockroachdb/crlib/crstrings"
	"github.com/cockroachdb/datadriven"
	"github.com/stretchr/testify/require"
)

func TestASCIIBoardDatadriven(t *testing.T) {
	var board Board
	datadriven.RunTest(t, "testdata/ascii_board", func(t *testing.T, td *datadriven.TestData) string {
		switch td.Cmd {
		case "make":
			var w, h int
			td.ScanArgs(t, "w", &w)
			td.ScanArgs(t, "h", &h)
			board = Make(w, h)
			return fmt.Sprintf("lines=%d", board.Lines())
		case "write":
			for _, line := range crstrings.Lines(td.Input) {
				p := strparse.MakeParser("", line)
				r := p.Int()
				c := p.Int()
				board.At(r, c).WriteString(p.Remaining())
			}
			return board.String()
		default:
			return fmt.Sprintf("unknown command: %s", td.Cmd)
		}
	})
}

func TestASCIIBoard(t *testing.T) {
	board := Make(10, 0)
	end := board.At(0, 0).WriteString("Hello\nworld!")
	require.Equal(t, "Hello\nworld!", board.String())
	require.Equal(t, 1, end.Row())
	require.Equal(t, 6, end.Column())

	board.Reset()
	require.Equal(t, 0, board.Lines())
	cur := board.At(1, 3).WriteString("a\nb\nc")
	require.Equal(t, 3, cur.Row())
	require.Equal(t, 4, cur.Column())
	require.Equal(t, "\n   a\n   b\n   c", board.String())
	require.Equal(t, 4, board.Width())

	board.Reset()
	board.At(0, -2).WriteString("xyz")
	require.Equal(t, "z", board.String())

	board.Reset()
	board.At(0, 1).Repeat(3, '-').WriteString(">")
	board.NewLine().Right(2).WriteString("|")
	require.Equal(t, " --->\n  |", board.String())
	require.Equal(t, ">  --->\n>   |", board.Render("> "))
}
