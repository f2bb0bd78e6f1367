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

// Each motion takes the text it moves over and whether it extends the
// selection. Motions past either end of the text do nothing.

// enterBelow accounts for the cursor having moved down one line.
func (c *Cursor) enterBelow(t Text) {
	if c.Line >= c.Topline+c.rows() {
		c.Toppos = NextLine(t, c.Toppos)
		c.Topline++
		c.Refresh = true
	}
}

// enterAbove accounts for the cursor having moved up one line.
func (c *Cursor) enterAbove() {
	if c.Line < c.Topline {
		c.Toppos = c.Linepos
		c.Topline = c.Line
		c.Refresh = true
	}
}

// Up moves to the previous line, keeping the preferred column.
func (c *Cursor) Up(t Text, extend bool) {
	pos := PrevLine(t, c.Linepos)
	if pos < 0 {
		return
	}
	c.Select(extend)
	c.Linepos = pos
	c.Line--
	c.enterAbove()
	c.Adjust(t)
}

// Down moves to the next line, keeping the preferred column.
func (c *Cursor) Down(t Text, extend bool) {
	pos := NextLine(t, c.Linepos)
	if pos < 0 {
		return
	}
	c.Select(extend)
	c.Linepos = pos
	c.Line++
	c.enterBelow(t)
	c.Adjust(t)
}

// Left moves back one byte, wrapping to the end of the previous line.
func (c *Cursor) Left(t Text, extend bool) {
	c.Select(extend)
	if c.Col > 0 {
		c.Col--
	} else {
		pos := PrevLine(t, c.Linepos)
		if pos < 0 {
			return
		}
		c.Col = LineLength(t, pos)
		c.Linepos = pos
		c.Line--
		c.enterAbove()
	}
	c.Lastcol = c.Col
	c.Adjust(t)
}

// Right moves forward one byte, wrapping to the start of the next line.
func (c *Cursor) Right(t Text, extend bool) {
	c.Select(extend)
	if c.Col < LineLength(t, c.Linepos) {
		c.Col++
	} else {
		pos := NextLine(t, c.Linepos)
		if pos < 0 {
			return
		}
		c.Col = 0
		c.Linepos = pos
		c.Line++
		c.enterBelow(t)
	}
	c.Lastcol = c.Col
	c.Adjust(t)
}

// IsWordByte reports whether ch is part of a word: an ASCII letter or digit.
func IsWordByte(ch int) bool {
	return ch >= 'A' && ch <= 'Z' || ch >= 'a' && ch <= 'z' || ch >= '0' && ch <= '9'
}

// WordLeft skips back over any non-word bytes and then the word before them.
func (c *Cursor) WordLeft(t Text, extend bool) {
	c.Select(extend)
	pos := c.Pos()
	inWord := false
	for pos > 0 {
		w := IsWordByte(t.ByteAt(pos - 1))
		if inWord && !w {
			break
		}
		inWord = inWord || w
		pos--
		if pos < c.Linepos {
			c.Linepos = PrevLine(t, c.Linepos)
			c.Line--
			c.Refresh = true
		}
	}
	c.Col = pos - c.Linepos
	c.enterAbove()
	c.Lastcol = c.Col
	c.Adjust(t)
}

// WordRight skips forward over any non-word bytes and then the word after them.
func (c *Cursor) WordRight(t Text, extend bool) {
	c.Select(extend)
	pos := c.Pos()
	end := t.Len()
	next := NextLine(t, c.Linepos)
	inWord := false
	for pos < end {
		w := IsWordByte(t.ByteAt(pos))
		if inWord && !w {
			break
		}
		inWord = inWord || w
		pos++
		if pos == next {
			c.Linepos = next
			next = NextLine(t, next)
			c.Line++
			c.Refresh = true
		}
	}
	c.Col = pos - c.Linepos
	for c.Line >= c.Topline+c.rows() {
		c.Toppos = NextLine(t, c.Toppos)
		c.Topline++
	}
	c.Lastcol = c.Col
	c.Adjust(t)
}

// Home moves to the start of the line.
func (c *Cursor) Home(t Text, extend bool) {
	c.Select(extend)
	c.Col, c.Lastcol = 0, 0
	c.Adjust(t)
}

// End moves to the end of the line.
func (c *Cursor) End(t Text, extend bool) {
	c.Select(extend)
	c.Lastcol = LineLength(t, c.Linepos)
	c.Adjust(t)
}

// Top moves to the start of the text.
func (c *Cursor) Top(t Text, extend bool) {
	c.Select(extend)
	c.Toppos, c.Topline, c.Margin = 0, 0, 0
	c.Linepos, c.Line, c.Col, c.Lastcol = 0, 0, 0, 0
	c.Refresh = true
}

// Bottom moves to the end of the last line.
func (c *Cursor) Bottom(t Text, extend bool) {
	c.Select(extend)
	for {
		pos := NextLine(t, c.Linepos)
		if pos < 0 {
			break
		}
		c.Linepos = pos
		c.Line++
		c.enterBelow(t)
	}
	c.Lastcol = LineLength(t, c.Linepos)
	c.Adjust(t)
}

// PageUp moves up one screenful, scrolling the view with the cursor.
func (c *Cursor) PageUp(t Text, extend bool) {
	c.Select(extend)
	if c.Line < c.rows() {
		c.Linepos, c.Toppos = 0, 0
		c.Line, c.Topline = 0, 0
	} else {
		for i := 0; i < c.rows(); i++ {
			pos := PrevLine(t, c.Linepos)
			if pos < 0 {
				break
			}
			c.Linepos = pos
			c.Line--
			if c.Topline > 0 {
				c.Toppos = PrevLine(t, c.Toppos)
				c.Topline--
			}
		}
	}
	c.Refresh = true
	c.Adjust(t)
}

// PageDown moves down one screenful, scrolling the view with the cursor.
func (c *Cursor) PageDown(t Text, extend bool) {
	c.Select(extend)
	for i := 0; i < c.rows(); i++ {
		pos := NextLine(t, c.Linepos)
		if pos < 0 {
			break
		}
		c.Linepos = pos
		c.Line++
		c.Toppos = NextLine(t, c.Toppos)
		c.Topline++
	}
	c.Refresh = true
	c.Adjust(t)
}
