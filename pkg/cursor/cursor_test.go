//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//   http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//

package cursor

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/timburks/gted/pkg/buffer"
	"github.com/timburks/gted/pkg/types"
)

func text(s string) *buffer.Buffer {
	return buffer.New([]byte(s), 16)
}

// numbered returns n lines of eight bytes each, so line k starts at 8k.
func numbered(n int) *buffer.Buffer {
	var sb strings.Builder
	for i := 0; i < n; i++ {
		fmt.Fprintf(&sb, "line %02d\n", i)
	}
	return text(sb.String())
}

func TestLineHelpers(t *testing.T) {
	b := text("one\ntwo\r\nthree")
	assert.Equal(t, 3, LineLength(b, 0))
	assert.Equal(t, 3, LineLength(b, 4), "a line stops at carriage return")
	assert.Equal(t, 5, LineLength(b, 9))

	assert.Equal(t, 4, NextLine(b, 0))
	assert.Equal(t, 9, NextLine(b, 5))
	assert.Equal(t, -1, NextLine(b, 9))

	assert.Equal(t, -1, PrevLine(b, 0))
	assert.Equal(t, 0, PrevLine(b, 4))
	assert.Equal(t, 4, PrevLine(b, 9))

	assert.Equal(t, 0, LineStart(b, 2))
	assert.Equal(t, 4, LineStart(b, 4))
	assert.Equal(t, 9, LineStart(b, 14))
}

func TestColumn(t *testing.T) {
	b := text("\tab\na\tb")
	assert.Equal(t, 0, Column(b, 0, 0))
	assert.Equal(t, 8, Column(b, 0, 1))
	assert.Equal(t, 9, Column(b, 0, 2))
	assert.Equal(t, 1, Column(b, 4, 1))
	assert.Equal(t, 8, Column(b, 4, 2))
	assert.Equal(t, 9, Column(b, 4, 3))
	assert.Equal(t, 9, Column(b, 4, 30), "stops at the end of the text")
}

func TestMoveToScrolls(t *testing.T) {
	b := numbered(100)
	c := New(types.Size{Rows: 10, Cols: 80})

	c.MoveTo(b, 50*8+3, false)
	assert.Equal(t, 50, c.Line)
	assert.Equal(t, 400, c.Linepos)
	assert.Equal(t, 3, c.Col)
	assert.Equal(t, 3, c.Lastcol)
	assert.Equal(t, 41, c.Topline)
	assert.Equal(t, 41*8, c.Toppos)

	c.MoveTo(b, 20*8, false)
	assert.Equal(t, 20, c.Line)
	assert.Equal(t, 20, c.Topline)
	assert.Equal(t, 160, c.Toppos)

	c.MoveTo(b, 0, false)
	assert.Equal(t, 0, c.Topline)
	assert.Equal(t, 0, c.Pos())
}

func TestMoveToRecenter(t *testing.T) {
	b := numbered(100)
	c := New(types.Size{Rows: 10, Cols: 80})

	c.MoveTo(b, 50*8, true)
	assert.Equal(t, 50, c.Line)
	assert.Equal(t, 45, c.Topline)
	assert.Equal(t, 45*8, c.Toppos)

	// no scroll, no recenter
	c.MoveTo(b, 47*8, true)
	assert.Equal(t, 45, c.Topline)

	c.MoveTo(b, 2*8, true)
	assert.Equal(t, 0, c.Topline)
}

func TestMoveToClamps(t *testing.T) {
	b := text("ab\ncd")
	c := New(types.Size{Rows: 5, Cols: 10})
	c.MoveTo(b, 99, false)
	assert.Equal(t, 5, c.Pos())
	assert.Equal(t, 1, c.Line)
	c.MoveTo(b, -4, false)
	assert.Equal(t, 0, c.Pos())
}

func TestMoveToLastLine(t *testing.T) {
	b := text("hello world")
	c := New(types.Size{Rows: 5, Cols: 80})
	c.MoveTo(b, 5, false)
	assert.Equal(t, 5, c.Pos())
	assert.Equal(t, 5, c.Col)
	assert.Equal(t, 5, c.Lastcol)

	b = text("ab\ncdef")
	c.Reset()
	c.MoveTo(b, 5, false)
	assert.Equal(t, 5, c.Pos())
	assert.Equal(t, 1, c.Line)
	assert.Equal(t, 2, c.Col)
	c.MoveTo(b, 4, false)
	assert.Equal(t, 4, c.Pos())
}

func TestMoveToMargin(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		b := text(rapid.StringMatching(`[ax\t\n]{0,300}`).Draw(t, "text"))
		c := New(types.Size{
			Rows: rapid.IntRange(1, 12).Draw(t, "rows"),
			Cols: rapid.IntRange(1, 40).Draw(t, "cols"),
		})
		moves := rapid.IntRange(1, 20).Draw(t, "moves")
		for i := 0; i < moves; i++ {
			p := rapid.IntRange(0, b.Len()).Draw(t, "p")
			c.MoveTo(b, p, rapid.Bool().Draw(t, "recenter"))

			if c.Pos() != p {
				t.Fatalf("moved to %d, want %d", c.Pos(), p)
			}
			if c.Linepos != LineStart(b, p) {
				t.Fatalf("line starts at %d, want %d", c.Linepos, LineStart(b, p))
			}
			if want := strings.Count(b.String()[:p], "\n"); c.Line != want {
				t.Fatalf("on line %d, want %d", c.Line, want)
			}
			col := Column(b, c.Linepos, c.Col)
			if col < c.Margin || col >= c.Margin+c.Size.Cols {
				t.Fatalf("column %d outside [%d, %d)", col, c.Margin, c.Margin+c.Size.Cols)
			}
			if c.Line < c.Topline || c.Line >= c.Topline+c.Size.Rows {
				t.Fatalf("line %d outside view at %d", c.Line, c.Topline)
			}
			if want := strings.Count(b.String()[:c.Toppos], "\n"); c.Topline != want {
				t.Fatalf("top line %d does not match top offset %d", c.Topline, c.Toppos)
			}
		}
	})
}

func TestAdjustMargin(t *testing.T) {
	b := text(strings.Repeat("x", 100) + "\nshort")
	c := New(types.Size{Rows: 5, Cols: 20})

	c.End(b, false)
	assert.Equal(t, 100, c.Col)
	assert.Equal(t, 84, c.Margin)
	assert.Equal(t, 16, c.VisualColumn(b))

	c.Down(b, false)
	assert.Equal(t, 5, c.Col, "clamped to the shorter line")
	assert.Equal(t, 100, c.Lastcol)
	assert.Equal(t, 4, c.Margin, "scrolls back in steps")

	c.Up(b, false)
	assert.Equal(t, 100, c.Col, "preferred column restored")
	assert.Equal(t, 84, c.Margin)

	c.Home(b, false)
	assert.Equal(t, 0, c.Margin)
}

func TestVerticalMotion(t *testing.T) {
	b := text("abcdef\nab\nabcdef")
	c := New(types.Size{Rows: 5, Cols: 80})
	c.MoveTo(b, 5, false)

	c.Down(b, false)
	assert.Equal(t, 1, c.Line)
	assert.Equal(t, 9, c.Pos())
	c.Down(b, false)
	assert.Equal(t, 15, c.Pos())
	c.Down(b, false)
	assert.Equal(t, 15, c.Pos(), "no line below")

	c.Up(b, false)
	c.Up(b, false)
	assert.Equal(t, 5, c.Pos())
	c.Up(b, false)
	assert.Equal(t, 5, c.Pos(), "no line above")
}

func TestHorizontalMotion(t *testing.T) {
	b := text("ab\ncd")
	c := New(types.Size{Rows: 5, Cols: 80})

	c.Left(b, false)
	assert.Equal(t, 0, c.Pos())
	c.Right(b, false)
	c.Right(b, false)
	assert.Equal(t, 2, c.Pos())
	c.Right(b, false)
	assert.Equal(t, 3, c.Pos())
	assert.Equal(t, 1, c.Line)
	c.Left(b, false)
	assert.Equal(t, 2, c.Pos())
	assert.Equal(t, 0, c.Line)

	c.End(b, false)
	c.Down(b, false)
	c.End(b, false)
	c.Right(b, false)
	assert.Equal(t, 5, c.Pos(), "no byte after the end")
}

func TestWordMotion(t *testing.T) {
	b := text("foo bar\nbaz")
	c := New(types.Size{Rows: 5, Cols: 80})

	c.WordRight(b, false)
	assert.Equal(t, 3, c.Pos())
	c.WordRight(b, false)
	assert.Equal(t, 7, c.Pos())
	c.WordRight(b, false)
	assert.Equal(t, 11, c.Pos())
	assert.Equal(t, 1, c.Line)
	assert.Equal(t, 8, c.Linepos)

	c.WordLeft(b, false)
	assert.Equal(t, 8, c.Pos())
	c.WordLeft(b, false)
	assert.Equal(t, 4, c.Pos())
	assert.Equal(t, 0, c.Line)
	assert.Equal(t, 0, c.Linepos)
	c.WordLeft(b, false)
	assert.Equal(t, 0, c.Pos())
}

func TestWordRightScrolls(t *testing.T) {
	b := text("a\n\n\nb")
	c := New(types.Size{Rows: 2, Cols: 80})
	c.WordRight(b, false)
	c.WordRight(b, false)
	assert.Equal(t, 5, c.Pos())
	assert.Equal(t, 3, c.Line)
	assert.Equal(t, 2, c.Topline)
	assert.Equal(t, 3, c.Toppos)
}

func TestTopBottom(t *testing.T) {
	b := numbered(30)
	c := New(types.Size{Rows: 10, Cols: 80})

	c.Bottom(b, false)
	assert.Equal(t, 30, c.Line)
	assert.Equal(t, 240, c.Pos())
	assert.Equal(t, 21, c.Topline)

	c.Top(b, false)
	assert.Equal(t, 0, c.Pos())
	assert.Equal(t, 0, c.Topline)
	assert.Equal(t, 0, c.Toppos)
}

func TestPaging(t *testing.T) {
	b := numbered(100)
	c := New(types.Size{Rows: 10, Cols: 80})
	c.MoveTo(b, 3, false)

	c.PageDown(b, false)
	assert.Equal(t, 10, c.Line)
	assert.Equal(t, 83, c.Pos())
	assert.Equal(t, 10, c.Topline)
	assert.Equal(t, 80, c.Toppos)

	c.PageDown(b, false)
	c.PageUp(b, false)
	assert.Equal(t, 10, c.Line)
	assert.Equal(t, 10, c.Topline)

	c.PageUp(b, false)
	assert.Equal(t, 0, c.Line)
	assert.Equal(t, 0, c.Topline)
	assert.Equal(t, 3, c.Pos())

	c.MoveTo(b, 5*8, false)
	c.PageUp(b, false)
	assert.Equal(t, 0, c.Pos(), "a partial page goes to the top")
}

func TestSelection(t *testing.T) {
	b := text("hello world")
	c := New(types.Size{Rows: 5, Cols: 80})
	_, _, ok := c.Selection()
	assert.False(t, ok)

	c.Right(b, true)
	c.Right(b, true)
	start, end, ok := c.Selection()
	require.True(t, ok)
	assert.Equal(t, 0, start)
	assert.Equal(t, 2, end)

	c.End(b, true)
	c.WordLeft(b, true)
	start, end, ok = c.Selection()
	require.True(t, ok)
	assert.Equal(t, 0, start)
	assert.Equal(t, 6, end)

	c.Home(b, true)
	_, _, ok = c.Selection()
	assert.False(t, ok, "anchor at the cursor is no selection")
	assert.Equal(t, 0, c.Anchor)

	c.Right(b, false)
	assert.Equal(t, NoAnchor, c.Anchor)
}

func TestSelectionBackwards(t *testing.T) {
	b := text("hello world")
	c := New(types.Size{Rows: 5, Cols: 80})
	c.End(b, false)
	c.WordLeft(b, true)
	start, end, ok := c.Selection()
	require.True(t, ok)
	assert.Equal(t, 6, start)
	assert.Equal(t, 11, end)
}

func TestSelectAll(t *testing.T) {
	b := text("one\ntwo")
	c := New(types.Size{Rows: 5, Cols: 80})
	c.SelectAll(b)
	start, end, ok := c.Selection()
	require.True(t, ok)
	assert.Equal(t, 0, start)
	assert.Equal(t, 7, end)
	assert.Equal(t, 1, c.Line)
}

func TestFit(t *testing.T) {
	b := numbered(40)
	c := New(types.Size{Rows: 20, Cols: 80})
	c.MoveTo(b, 19*8+7, false)
	require.Equal(t, 0, c.Topline)

	c.Size = types.Size{Rows: 5, Cols: 4}
	c.Fit(b)
	assert.Equal(t, 15, c.Topline)
	assert.Equal(t, 15*8, c.Toppos)
	assert.Equal(t, 7, c.Col)
	assert.Equal(t, 4, c.Margin)
}
