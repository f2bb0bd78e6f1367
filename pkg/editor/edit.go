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

package editor

import (
	"bytes"
	"io"
	"strings"

	"github.com/timburks/gted/pkg/cursor"
)

// InsertChar replaces the selection, if any, with ch.
func (d *Document) InsertChar(ch byte) {
	d.EraseSelection()
	c := d.Cursor
	d.replace(c.Pos(), 0, []byte{ch})
	c.Col++
	c.Lastcol = c.Col
	c.Adjust(d.Buffer)
	if !c.Refresh {
		c.LineUpdate = true
	}
}

// Newline replaces the selection, if any, with a line break.
func (d *Document) Newline() {
	d.EraseSelection()
	pos := d.Pos()
	d.replace(pos, 0, []byte{'\n'})
	d.Cursor.MoveTo(d.Buffer, pos+1, false)
	d.Cursor.Refresh = true
}

// Backspace erases the selection or the byte before the cursor.
// A line break erased this way takes a preceding carriage return with it.
func (d *Document) Backspace() {
	if d.EraseSelection() {
		return
	}
	c := d.Cursor
	pos := c.Pos()
	if pos == 0 {
		return
	}
	if c.Col == 0 {
		crlf := pos >= 2 && d.Buffer.ByteAt(pos-2) == '\r'
		target := pos - 1
		if crlf {
			target--
		}
		c.MoveTo(d.Buffer, target, false)
		d.replace(pos-1, 1, nil)
		if crlf {
			d.replace(pos-2, 1, nil)
		}
		c.Refresh = true
	} else {
		c.Col--
		d.replace(c.Pos(), 1, nil)
		c.LineUpdate = true
	}
	c.Lastcol = c.Col
	c.Adjust(d.Buffer)
}

// Delete erases the selection or the byte at the cursor. A carriage
// return erased this way takes a following line break with it.
func (d *Document) Delete() {
	if d.EraseSelection() {
		return
	}
	pos := d.Pos()
	ch := d.Buffer.ByteAt(pos)
	if ch < 0 {
		return
	}
	d.replace(pos, 1, nil)
	if ch == '\r' && d.Buffer.ByteAt(pos) == '\n' {
		d.replace(pos, 1, nil)
		ch = '\n'
	}
	if ch == '\n' {
		d.Cursor.Refresh = true
	} else {
		d.Cursor.LineUpdate = true
	}
}

// EraseSelection erases the selected text and reports whether there was any.
// An anchor left at the cursor is dropped.
func (d *Document) EraseSelection() bool {
	start, end, ok := d.Cursor.Selection()
	if !ok {
		d.Cursor.Anchor = cursor.NoAnchor
		return false
	}
	d.Cursor.MoveTo(d.Buffer, start, false)
	d.replace(start, end-start, nil)
	d.Cursor.Anchor = cursor.NoAnchor
	d.Cursor.Refresh = true
	return true
}

// Selected returns a copy of the selected text, or nil.
func (d *Document) Selected() []byte {
	start, end, ok := d.Cursor.Selection()
	if !ok {
		return nil
	}
	return d.Buffer.CopyRange(start, end-start)
}

// SelectAll selects the whole text.
func (d *Document) SelectAll() {
	d.Cursor.SelectAll(d.Buffer)
}

// Copy puts the selected text on the clipboard.
func (d *Document) Copy(cb *Clipboard) {
	if text := d.Selected(); text != nil {
		cb.Set(text)
	}
}

// Cut moves the selected text to the clipboard.
func (d *Document) Cut(cb *Clipboard) {
	d.Copy(cb)
	d.EraseSelection()
}

// Paste replaces the selection, if any, with the clipboard contents
// and leaves the cursor after them.
func (d *Document) Paste(cb *Clipboard) {
	d.EraseSelection()
	text := cb.Get()
	pos := d.Pos()
	d.replace(pos, 0, text)
	d.Cursor.MoveTo(d.Buffer, pos+len(text), false)
	d.Cursor.Refresh = true
}

// Insert inserts text at the cursor and leaves the cursor after it.
func (d *Document) Insert(text []byte) {
	d.EraseSelection()
	pos := d.Pos()
	d.replace(pos, 0, text)
	d.Cursor.MoveTo(d.Buffer, pos+len(text), false)
	d.Cursor.Refresh = true
}

// inserter writes into a document at a moving position.
type inserter struct {
	d   *Document
	pos int
}

func (w *inserter) Write(p []byte) (int, error) {
	w.d.replace(w.pos, 0, p)
	w.pos += len(p)
	return len(p), nil
}

// InsertFrom replaces the selection, if any, with everything read from r,
// leaving the cursor after the inserted text.
func (d *Document) InsertFrom(r io.Reader) (int64, error) {
	d.EraseSelection()
	w := &inserter{d: d, pos: d.Pos()}
	n, err := io.Copy(w, r)
	d.Cursor.MoveTo(d.Buffer, w.pos, false)
	d.Cursor.Refresh = true
	return n, err
}

// Find selects the next occurrence of text at or after the cursor and
// centers it in the view.
func (d *Document) Find(text string) error {
	if text == "" {
		return nil
	}
	pos := d.Pos()
	i := bytes.Index(d.Buffer.CopyRange(pos, d.Buffer.Len()-pos), []byte(text))
	if i < 0 {
		return ErrNoMatch
	}
	d.Cursor.Anchor = pos + i
	d.Cursor.MoveTo(d.Buffer, pos+i+len(text), true)
	d.Cursor.Refresh = true
	return nil
}

// LineOffset returns the offset of the start of line n, counting from 1.
func (d *Document) LineOffset(n int) (int, error) {
	if n <= 0 {
		return 0, ErrNoLine
	}
	pos := 0
	for l := 1; l < n; l++ {
		pos = cursor.NextLine(d.Buffer, pos)
		if pos < 0 {
			return 0, ErrNoLine
		}
	}
	return pos, nil
}

// GotoLine moves to the start of line n, counting from 1, and centers it.
func (d *Document) GotoLine(n int) error {
	d.Cursor.Select(false)
	pos, err := d.LineOffset(n)
	if err != nil {
		return err
	}
	d.Cursor.MoveTo(d.Buffer, pos, true)
	d.Cursor.Refresh = true
	return nil
}

// nameStops are the bytes that end a file name under the cursor.
const nameStops = "!@\"'#%&()[]{}*?+:;\r\n\t "

// WordAt returns the selected text or, without a selection, the file
// name starting at the cursor. A name followed by ":n" also yields line n.
func (d *Document) WordAt() (name string, line int) {
	if text := d.Selected(); text != nil {
		return string(text), 0
	}
	pos := d.Pos()
	var sb strings.Builder
	for {
		ch := d.Buffer.ByteAt(pos)
		if ch < 0 || strings.IndexByte(nameStops, byte(ch)) >= 0 {
			break
		}
		sb.WriteByte(byte(ch))
		pos++
	}
	if d.Buffer.ByteAt(pos) == ':' {
		for pos++; ; pos++ {
			ch := d.Buffer.ByteAt(pos)
			if ch < '0' || ch > '9' {
				break
			}
			line = line*10 + ch - '0'
		}
	}
	return sb.String(), line
}
