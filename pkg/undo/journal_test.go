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

package undo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/timburks/gted/pkg/buffer"
)

func setup(text string) (*buffer.Buffer, *Journal) {
	b := buffer.New([]byte(text), 8)
	j := New()
	b.SetRecorder(j)
	return b, j
}

func TestTypingCoalesces(t *testing.T) {
	b, j := setup("hello\nworld")
	for i, c := range []byte("abcde") {
		b.Insert(5+i, []byte{c})
	}
	assert.Equal(t, "helloabcde\nworld", b.String())
	require.Equal(t, 1, j.Len())

	_, ok := j.Undo(b)
	require.True(t, ok)
	assert.Equal(t, "hello\nworld", b.String())
	assert.True(t, j.Empty())
}

func TestHelloWorldUndo(t *testing.T) {
	b, j := setup("hello\nworld")
	b.Insert(5, []byte("X"))
	assert.Equal(t, "helloX\nworld", b.String())
	assert.Equal(t, 12, b.Len())
	pos, ok := j.Undo(b)
	require.True(t, ok)
	assert.Equal(t, 5, pos)
	assert.Equal(t, "hello\nworld", b.String())
	assert.Equal(t, 11, b.Len())
}

func TestBackspaceCoalesces(t *testing.T) {
	b, j := setup("abcdef")
	b.Erase(5, 1)
	b.Erase(4, 1)
	b.Erase(3, 1)
	assert.Equal(t, "abc", b.String())
	require.Equal(t, 1, j.Len())
	r := j.Records()[0]
	assert.Equal(t, 3, r.Pos)
	assert.Equal(t, "def", string(r.Erased))

	j.Undo(b)
	assert.Equal(t, "abcdef", b.String())
}

func TestForwardDeleteCoalesces(t *testing.T) {
	b, j := setup("abcdef")
	b.Erase(1, 1)
	b.Erase(1, 1)
	b.Erase(1, 1)
	assert.Equal(t, "aef", b.String())
	require.Equal(t, 1, j.Len())
	assert.Equal(t, "bcd", string(j.Records()[0].Erased))

	j.Undo(b)
	assert.Equal(t, "abcdef", b.String())
}

func TestNonAdjacentEditsStaySeparate(t *testing.T) {
	b, j := setup("abcdef")
	b.Insert(0, []byte("x"))
	b.Insert(5, []byte("y"))     // not adjacent to the first insert
	b.Erase(0, 1)                // erase after inserts never merges
	b.Insert(0, []byte("zz"))    // multi-byte insert never merges
	b.Replace(0, 1, []byte("q")) // replace never merges
	assert.Equal(t, 5, j.Len())

	for !j.Empty() {
		j.Undo(b)
	}
	assert.Equal(t, "abcdef", b.String())
}

func TestRedo(t *testing.T) {
	b, j := setup("abc")
	b.Insert(3, []byte("d"))
	b.Erase(0, 1)
	require.Equal(t, "bcd", b.String())

	assert.Nil(t, j.Next())
	assert.Equal(t, 0, j.Last().Pos)
	j.Undo(b)
	assert.Equal(t, 3, j.Last().Pos)
	assert.Equal(t, 0, j.Next().Pos)
	j.Undo(b)
	require.Equal(t, "abc", b.String())
	assert.Nil(t, j.Last())
	_, ok := j.Undo(b)
	assert.False(t, ok, "undo past the start is a no-op")

	pos, ok := j.Redo(b)
	require.True(t, ok)
	assert.Equal(t, 3, pos)
	assert.Equal(t, "abcd", b.String())
	j.Redo(b)
	assert.Equal(t, "bcd", b.String())
	_, ok = j.Redo(b)
	assert.False(t, ok, "redo past the end is a no-op")
}

func TestNewEditDiscardsRedoTail(t *testing.T) {
	b, j := setup("abc")
	b.Insert(3, []byte("d"))
	b.Erase(0, 1)
	j.Undo(b)
	require.True(t, j.CanRedo())

	b.Insert(0, []byte("z"))
	assert.False(t, j.CanRedo())
	assert.Equal(t, 2, j.Len())
	assert.Equal(t, "zabcd", b.String())

	j.Undo(b)
	j.Undo(b)
	assert.Equal(t, "abc", b.String())
	assert.True(t, j.Empty())
}

func TestUndoThenTypeStartsFresh(t *testing.T) {
	b, j := setup("")
	b.Insert(0, []byte("a"))
	b.Insert(1, []byte("b"))
	j.Undo(b)
	require.Equal(t, "", b.String())

	// the redo tail is dropped, so the new byte cannot merge into it
	b.Insert(0, []byte("c"))
	assert.Equal(t, 1, j.Len())
	assert.Equal(t, "c", string(j.Records()[0].Inserted))
}

func TestEmptyEditNotRecorded(t *testing.T) {
	b, j := setup("abc")
	b.Insert(1, nil)
	b.Erase(3, 5)
	assert.Equal(t, 0, j.Len())
}

func TestClear(t *testing.T) {
	b, j := setup("abc")
	b.Insert(0, []byte("x"))
	j.Clear()
	assert.True(t, j.Empty())
	assert.Equal(t, 0, j.Len())
	_, ok := j.Undo(b)
	assert.False(t, ok)
	assert.Equal(t, "xabc", b.String())
}

func TestUndoRedoIdempotent(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		b, j := setup(rapid.StringMatching(`[a-z\n]{0,30}`).Draw(t, "initial"))
		edits := rapid.IntRange(1, 30).Draw(t, "edits")
		for i := 0; i < edits; i++ {
			pos := rapid.IntRange(0, b.Len()).Draw(t, "pos")
			erase := rapid.IntRange(0, min(2, b.Len()-pos)).Draw(t, "erase")
			insert := rapid.StringMatching(`[a-z]{0,2}`).Draw(t, "insert")
			b.Replace(pos, erase, []byte(insert))
		}

		if j.Len() == 0 {
			return
		}
		rounds := rapid.IntRange(1, 5).Draw(t, "rounds")
		for i := 0; i < rounds; i++ {
			before := b.String()
			undone := 0
			n := rapid.IntRange(1, j.Len()).Draw(t, "n")
			for k := 0; k < n; k++ {
				if _, ok := j.Undo(b); ok {
					undone++
				}
			}
			for k := 0; k < undone; k++ {
				j.Redo(b)
			}
			if got := b.String(); got != before {
				t.Fatalf("undo/redo changed %q to %q", before, got)
			}
		}
	})
}

func TestUndoAllRestoresOriginal(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		initial := rapid.StringMatching(`[a-z\n]{0,30}`).Draw(t, "initial")
		b, j := setup(initial)
		edits := rapid.IntRange(1, 30).Draw(t, "edits")
		for i := 0; i < edits; i++ {
			pos := rapid.IntRange(0, b.Len()).Draw(t, "pos")
			erase := rapid.IntRange(0, min(3, b.Len()-pos)).Draw(t, "erase")
			insert := rapid.StringMatching(`[a-z]{0,3}`).Draw(t, "insert")
			b.Replace(pos, erase, []byte(insert))
		}
		for !j.Empty() {
			j.Undo(b)
		}
		if got := b.String(); got != initial {
			t.Fatalf("undo all gave %q, want %q", got, initial)
		}
	})
}
