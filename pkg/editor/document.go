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
	"path/filepath"

	"github.com/timburks/gted/pkg/buffer"
	"github.com/timburks/gted/pkg/cursor"
	"github.com/timburks/gted/pkg/types"
	"github.com/timburks/gted/pkg/undo"
)

// A Handle identifies a document within a session. Handles are never reused.
type Handle int

// A Document is one text being edited.
type Document struct {
	Handle  Handle
	Path    string // canonical path, or a placeholder name for new files
	NewFile bool   // no file has been chosen yet
	Dirty   bool   // modified since loaded or saved

	Buffer  *buffer.Buffer
	Journal *undo.Journal
	Cursor  *cursor.Cursor
}

// attach gives a document its text and a fresh journal and cursor.
func (d *Document) attach(b *buffer.Buffer, size types.Size) {
	d.Buffer = b
	d.Journal = undo.New()
	d.Buffer.SetRecorder(d.Journal)
	d.Cursor = cursor.New(size)
}

// Name returns the name shown for the document.
func (d *Document) Name() string {
	return filepath.Base(d.Path)
}

// Pos returns the offset of the cursor.
func (d *Document) Pos() int {
	return d.Cursor.Pos()
}

// Text returns a copy of the document's text.
func (d *Document) Text() []byte {
	return d.Buffer.Bytes()
}

// replace is the single point where documents change their text.
func (d *Document) replace(pos, eraseLen int, insert []byte) {
	if eraseLen == 0 && len(insert) == 0 {
		return
	}
	d.Buffer.Replace(pos, eraseLen, insert)
	d.Dirty = true
}

// Undo reverts the last edit and moves the cursor to it.
func (d *Document) Undo() bool {
	r := d.Journal.Last()
	if r == nil {
		return false
	}
	d.Cursor.Select(false)
	d.Cursor.MoveTo(d.Buffer, r.Pos, false)
	d.Journal.Undo(d.Buffer)
	if d.Journal.Empty() {
		d.Dirty = false
	}
	d.Cursor.Adjust(d.Buffer)
	d.Cursor.Refresh = true
	return true
}

// Redo reapplies the last undone edit and moves the cursor to it.
func (d *Document) Redo() bool {
	r := d.Journal.Next()
	if r == nil {
		return false
	}
	d.Cursor.Select(false)
	d.Cursor.MoveTo(d.Buffer, r.Pos, false)
	d.Journal.Redo(d.Buffer)
	d.Dirty = true
	d.Cursor.Refresh = true
	return true
}
