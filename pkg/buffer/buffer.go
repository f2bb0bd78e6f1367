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

// Package buffer implements the gap buffer that stores the text of a document.
//
// The text lives in a single byte arena with one unused region, the gap:
//
//	+------------------+------------------+------------------+
//	| text before gap  |        gap       |  text after gap  |
//	+------------------+------------------+------------------+
//	0               gapStart            gapEnd          len(data)
//
// Edits move the gap to the edit point, so runs of local edits only move
// the bytes between consecutive edit points.
package buffer

import (
	"io"
)

// DefaultSlack is the minimum number of bytes the arena grows by.
const DefaultSlack = 32768

// EndOfBuffer is returned by ByteAt for positions past the end of the text.
const EndOfBuffer = -1

// A Recorder is told about every recorded edit before it is applied.
// The erased bytes are a copy taken from the buffer.
type Recorder interface {
	Record(pos int, erased, inserted []byte)
}

// A Buffer is a gap buffer of bytes.
type Buffer struct {
	data     []byte   // arena
	gapStart int      // first byte of the gap
	gapEnd   int      // first byte after the gap
	slack    int      // growth slack
	recorder Recorder // receives recorded edits, may be nil
}

// New creates a buffer holding a copy of text with room for slack more bytes.
// A slack of zero or less selects DefaultSlack.
func New(text []byte, slack int) *Buffer {
	if slack <= 0 {
		slack = DefaultSlack
	}
	b := &Buffer{slack: slack}
	b.data = make([]byte, len(text)+slack)
	copy(b.data, text)
	b.gapStart = len(text)
	b.gapEnd = len(b.data)
	return b
}

// ReadFrom creates a buffer sized for size bytes plus slack and fills it from r.
// It fails if r does not deliver exactly size bytes.
func ReadFrom(r io.Reader, size int, slack int) (*Buffer, error) {
	if slack <= 0 {
		slack = DefaultSlack
	}
	b := &Buffer{slack: slack}
	b.data = make([]byte, size+slack)
	if _, err := io.ReadFull(r, b.data[:size]); err != nil {
		return nil, err
	}
	b.gapStart = size
	b.gapEnd = len(b.data)
	return b, nil
}

// SetRecorder attaches the recorder that receives recorded edits.
func (b *Buffer) SetRecorder(r Recorder) {
	b.recorder = r
}

// Len returns the number of bytes of text.
func (b *Buffer) Len() int {
	return b.gapStart + len(b.data) - b.gapEnd
}

// Cap returns the size of the arena.
func (b *Buffer) Cap() int {
	return len(b.data)
}

// Gap returns the current gap boundaries.
func (b *Buffer) Gap() (start, end int) {
	return b.gapStart, b.gapEnd
}

// index maps a logical position to a physical index in the arena.
func (b *Buffer) index(pos int) int {
	if pos < b.gapStart {
		return pos
	}
	return pos + b.gapEnd - b.gapStart
}

// ByteAt returns the byte at pos or EndOfBuffer.
func (b *Buffer) ByteAt(pos int) int {
	if pos < 0 || pos >= b.Len() {
		return EndOfBuffer
	}
	return int(b.data[b.index(pos)])
}

// CopyRange returns a copy of at most n bytes starting at pos.
// The copy stops at the end of the text.
func (b *Buffer) CopyRange(pos, n int) []byte {
	if pos < 0 {
		pos = 0
	}
	if end := b.Len(); pos+n > end {
		n = end - pos
	}
	if n <= 0 {
		return []byte{}
	}
	out := make([]byte, 0, n)
	if pos < b.gapStart {
		before := min(n, b.gapStart-pos)
		out = append(out, b.data[pos:pos+before]...)
		n -= before
		pos += before
	}
	if n > 0 {
		i := b.index(pos)
		out = append(out, b.data[i:i+n]...)
	}
	return out
}

// Bytes returns a copy of the whole text.
func (b *Buffer) Bytes() []byte {
	return b.CopyRange(0, b.Len())
}

func (b *Buffer) String() string {
	return string(b.Bytes())
}

// WriteTo writes the text before the gap and then the text after it.
func (b *Buffer) WriteTo(w io.Writer) (int64, error) {
	n, err := w.Write(b.data[:b.gapStart])
	total := int64(n)
	if err != nil {
		return total, err
	}
	if n != b.gapStart {
		return total, io.ErrShortWrite
	}
	rest := b.data[b.gapEnd:]
	n, err = w.Write(rest)
	total += int64(n)
	if err != nil {
		return total, err
	}
	if n != len(rest) {
		return total, io.ErrShortWrite
	}
	return total, nil
}

// Replace erases eraseLen bytes at pos and inserts insert in their place.
// The edit is reported to the recorder first.
func (b *Buffer) Replace(pos, eraseLen int, insert []byte) {
	pos, eraseLen = b.clamp(pos, eraseLen)
	if b.recorder != nil {
		b.recorder.Record(pos, b.CopyRange(pos, eraseLen), insert)
	}
	b.splice(pos, eraseLen, insert)
}

// Insert inserts text at pos.
func (b *Buffer) Insert(pos int, text []byte) {
	b.Replace(pos, 0, text)
}

// Erase removes n bytes at pos.
func (b *Buffer) Erase(pos, n int) {
	b.Replace(pos, n, nil)
}

// Splice is Replace without recording. Undo and redo replay through it.
func (b *Buffer) Splice(pos, eraseLen int, insert []byte) {
	pos, eraseLen = b.clamp(pos, eraseLen)
	b.splice(pos, eraseLen, insert)
}

func (b *Buffer) clamp(pos, eraseLen int) (int, int) {
	length := b.Len()
	if pos < 0 {
		pos = 0
	}
	if pos > length {
		pos = length
	}
	if eraseLen < 0 {
		eraseLen = 0
	}
	if pos+eraseLen > length {
		eraseLen = length - pos
	}
	return pos, eraseLen
}

func (b *Buffer) splice(pos, eraseLen int, insert []byte) {
	if len(insert) == 0 && pos <= b.gapStart && pos+eraseLen >= b.gapStart {
		// the erased range touches the gap: widen it
		b.gapEnd += eraseLen - (b.gapStart - pos)
		b.gapStart = pos
		return
	}
	b.moveGap(pos+eraseLen, len(insert)-eraseLen)
	copy(b.data[pos:], insert)
	b.gapStart = pos + len(insert)
}

// moveGap places the gap at pos with at least minFree free bytes.
func (b *Buffer) moveGap(pos, minFree int) {
	if minFree < 0 {
		minFree = 0
	}
	gapSize := b.gapEnd - b.gapStart
	if minFree <= gapSize {
		switch {
		case pos < b.gapStart:
			copy(b.data[pos+gapSize:], b.data[pos:b.gapStart])
		case pos > b.gapStart:
			copy(b.data[b.gapStart:], b.data[b.gapEnd:b.gapEnd+pos-b.gapStart])
		default:
			return
		}
		b.gapStart = pos
		b.gapEnd = pos + gapSize
		return
	}

	if gapSize+b.slack > minFree {
		minFree = gapSize + b.slack
	}
	used := len(b.data) - gapSize
	data := make([]byte, used+minFree)
	gapEnd := pos + minFree
	if pos < b.gapStart {
		copy(data, b.data[:pos])
		copy(data[gapEnd:], b.data[pos:b.gapStart])
		copy(data[gapEnd+b.gapStart-pos:], b.data[b.gapEnd:])
	} else {
		copy(data, b.data[:b.gapStart])
		p := b.index(pos)
		copy(data[b.gapStart:], b.data[b.gapEnd:p])
		copy(data[gapEnd:], b.data[p:])
	}
	b.data = data
	b.gapStart = pos
	b.gapEnd = gapEnd
}
