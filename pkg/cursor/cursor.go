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

// Package cursor tracks a position in a text by line and column and keeps
// a viewport of lines and columns around it.
//
// There is no line index. Every operation walks the text from a known
// line start, so its cost grows with the number of lines it crosses.
package cursor

import (
	"github.com/timburks/gted/pkg/types"
)

const (
	// TabWidth is the distance between tab stops.
	TabWidth = 8
	// MarginStep is the amount the horizontal scroll changes by.
	MarginStep = 4
	// NoAnchor marks a cursor without a selection.
	NoAnchor = -1
)

// Text is the byte sequence a cursor walks. ByteAt returns a negative
// value past the end, as a buffer.Buffer does.
type Text interface {
	Len() int
	ByteAt(pos int) int
}

// A Cursor is a position within a text and the viewport showing it.
type Cursor struct {
	Linepos int // offset of the first byte of the current line
	Line    int // current line, 0-based
	Col     int // byte offset within the line
	Lastcol int // preferred column for vertical motion
	Margin  int // horizontal scroll, in visual columns
	Toppos  int // offset of the first visible line
	Topline int // first visible line
	Anchor  int // fixed end of the selection, or NoAnchor

	Size types.Size // visible text rows and columns

	Refresh    bool // the whole view needs redrawing
	LineUpdate bool // only the current line needs redrawing
}

// New returns a cursor at the start of a text shown in a viewport of size s.
func New(s types.Size) *Cursor {
	return &Cursor{Anchor: NoAnchor, Size: s, Refresh: true}
}

// Pos returns the offset of the cursor.
func (c *Cursor) Pos() int {
	return c.Linepos + c.Col
}

// Reset moves the cursor to the start of the text and clears the selection.
func (c *Cursor) Reset() {
	*c = Cursor{Anchor: NoAnchor, Size: c.Size, Refresh: true}
}

func (c *Cursor) rows() int {
	return max(c.Size.Rows, 1)
}

func (c *Cursor) cols() int {
	return max(c.Size.Cols, 1)
}

// LineLength returns the number of bytes in the line starting at linepos,
// excluding the line terminator.
func LineLength(t Text, linepos int) int {
	pos := linepos
	for {
		ch := t.ByteAt(pos)
		if ch < 0 || ch == '\n' || ch == '\r' {
			break
		}
		pos++
	}
	return pos - linepos
}

// LineStart returns the offset of the start of the line containing pos.
func LineStart(t Text, pos int) int {
	for pos > 0 && t.ByteAt(pos-1) != '\n' {
		pos--
	}
	return pos
}

// NextLine returns the offset of the line after the one containing pos,
// or -1 if it is the last line.
func NextLine(t Text, pos int) int {
	for {
		ch := t.ByteAt(pos)
		if ch < 0 {
			return -1
		}
		pos++
		if ch == '\n' {
			return pos
		}
	}
}

// PrevLine returns the offset of the line before the one containing pos,
// or -1 if it is the first line.
func PrevLine(t Text, pos int) int {
	if pos == 0 {
		return -1
	}
	for pos > 0 {
		pos--
		if t.ByteAt(pos) == '\n' {
			break
		}
	}
	for pos > 0 {
		pos--
		if t.ByteAt(pos) == '\n' {
			return pos + 1
		}
	}
	return 0
}

// Column returns the visual column of byte col of the line at linepos,
// with tabs expanded to the next multiple of TabWidth.
func Column(t Text, linepos, col int) int {
	c := 0
	for pos := linepos; col > 0; pos, col = pos+1, col-1 {
		ch := t.ByteAt(pos)
		if ch < 0 {
			break
		}
		if ch == '\t' {
			c += TabWidth - c%TabWidth
		} else {
			c++
		}
	}
	return c
}

// MoveTo places the cursor on pos, scrolling the viewport line by line
// as the cursor leaves it. If recenter is set and the view scrolled, the
// current line is brought to the middle of the view. The preferred
// column becomes the new column.
func (c *Cursor) MoveTo(t Text, pos int, recenter bool) {
	pos = min(max(pos, 0), t.Len())
	scrolled := false
	for {
		cur := c.Pos()
		if pos < cur {
			if pos >= c.Linepos {
				c.Col = pos - c.Linepos
				continue
			}
			c.Col = 0
			c.Linepos = PrevLine(t, c.Linepos)
			c.Line--
			if c.Topline > c.Line {
				c.Toppos = c.Linepos
				c.Topline--
				c.Refresh = true
				scrolled = true
			}
		} else if pos > cur {
			next := NextLine(t, c.Linepos)
			if next < 0 {
				c.Col = pos - c.Linepos
				break
			}
			if pos < next {
				c.Col = pos - c.Linepos
				continue
			}
			c.Col = 0
			c.Linepos = next
			c.Line++
			if c.Line >= c.Topline+c.rows() {
				c.Toppos = NextLine(t, c.Toppos)
				c.Topline++
				c.Refresh = true
				scrolled = true
			}
		} else {
			break
		}
	}

	if scrolled && recenter {
		c.center(t)
	}
	c.Lastcol = c.Col
	c.scroll(t)
}

// center walks the viewport until the current line sits half way down.
func (c *Cursor) center(t Text) {
	tl := max(c.Line-c.rows()/2, 0)
	for c.Topline != tl {
		if c.Topline > tl {
			c.Toppos = PrevLine(t, c.Toppos)
			c.Topline--
		} else {
			c.Toppos = NextLine(t, c.Toppos)
			c.Topline++
		}
	}
	c.Refresh = true
}

// Adjust restores the preferred column, clamped to the length of the
// current line, and scrolls horizontally until the cursor is visible.
func (c *Cursor) Adjust(t Text) {
	c.Col = min(c.Lastcol, LineLength(t, c.Linepos))
	c.scroll(t)
}

// scroll moves the margin in steps of MarginStep until the visual column
// lies in [Margin, Margin+cols).
func (c *Cursor) scroll(t Text) {
	col := Column(t, c.Linepos, c.Col)
	for col < c.Margin {
		c.Margin = max(c.Margin-MarginStep, 0)
		c.Refresh = true
	}
	for col-c.Margin >= c.cols() {
		c.Margin = min(c.Margin+MarginStep, col)
		c.Refresh = true
	}
}

// Fit scrolls the view until it shows the cursor, after the view
// has changed size.
func (c *Cursor) Fit(t Text) {
	for c.Line < c.Topline {
		c.Toppos = PrevLine(t, c.Toppos)
		c.Topline--
	}
	for c.Line >= c.Topline+c.rows() {
		c.Toppos = NextLine(t, c.Toppos)
		c.Topline++
	}
	c.scroll(t)
	c.Refresh = true
}

// VisualColumn returns the on-screen column of the cursor within the view.
func (c *Cursor) VisualColumn(t Text) int {
	return Column(t, c.Linepos, c.Col) - c.Margin
}

// Selection returns the selected span [start, end). It reports false when
// there is no anchor or the anchor is at the cursor.
func (c *Cursor) Selection() (start, end int, ok bool) {
	if c.Anchor == NoAnchor {
		return 0, 0, false
	}
	pos := c.Pos()
	switch {
	case pos < c.Anchor:
		return pos, c.Anchor, true
	case pos > c.Anchor:
		return c.Anchor, pos, true
	}
	return 0, 0, false
}

// Select sets or clears the anchor before a motion. With extend set an
// unset anchor is dropped at the cursor; otherwise the anchor is cleared.
func (c *Cursor) Select(extend bool) {
	if extend {
		if c.Anchor == NoAnchor {
			c.Anchor = c.Pos()
		}
		c.Refresh = true
		return
	}
	if c.Anchor != NoAnchor {
		c.Refresh = true
	}
	c.Anchor = NoAnchor
}

// SelectAll anchors the selection at the start of the text and moves
// the cursor to its end.
func (c *Cursor) SelectAll(t Text) {
	c.Anchor = 0
	c.Refresh = true
	c.MoveTo(t, t.Len(), false)
}
