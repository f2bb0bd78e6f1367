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
	"errors"
	"fmt"
	"io"
	"sync/atomic"

	"github.com/timburks/gted/pkg/buffer"
	"github.com/timburks/gted/pkg/types"
)

// A Session is the state of one run of the editor.
type Session struct {
	Registry  *Registry
	Clipboard *Clipboard
	Search    string // text of the last search

	size     types.Size // size of the text area
	slack    int
	untitled int
	resize   atomic.Bool
}

// NewSession returns a session with no documents. Buffers grow by at
// least slack bytes; a slack of zero selects buffer.DefaultSlack.
func NewSession(size types.Size, slack int, clipboard *Clipboard) *Session {
	if slack <= 0 {
		slack = buffer.DefaultSlack
	}
	if clipboard == nil {
		clipboard = NewClipboard(false)
	}
	return &Session{
		Registry:  NewRegistry(),
		Clipboard: clipboard,
		size:      size,
		slack:     slack,
	}
}

// Current returns the current document.
func (s *Session) Current() *Document {
	return s.Registry.Current()
}

// Size returns the size of the text area.
func (s *Session) Size() types.Size {
	return s.size
}

// NewDocument creates an untitled document after the current one.
func (s *Session) NewDocument() *Document {
	s.untitled++
	d := s.Registry.Create()
	d.Path = fmt.Sprintf("Untitled-%d", s.untitled)
	d.NewFile = true
	d.attach(buffer.New(nil, s.slack), s.size)
	return d
}

// Open makes the document for the file at path current, reading the
// file if it is not open already.
func (s *Session) Open(path string) (*Document, error) {
	if d := s.Registry.FindByPath(path); d != nil {
		s.Registry.Select(d.Handle)
		d.Cursor.Refresh = true
		return d, nil
	}
	d := s.Registry.Create()
	b, err := load(path, s.slack)
	if err != nil {
		s.Registry.Delete(d.Handle)
		return nil, err
	}
	d.Path = Canonical(path)
	d.attach(b, s.size)
	return d, nil
}

// OpenOrCreate opens the file at path, or creates an empty document
// that will be saved there if the file does not exist.
func (s *Session) OpenOrCreate(path string) (*Document, error) {
	d, err := s.Open(path)
	if !errors.Is(err, ErrNotFound) {
		return d, err
	}
	d = s.Registry.Create()
	d.Path = Canonical(path)
	d.attach(buffer.New(nil, s.slack), s.size)
	return d, nil
}

// ReadFrom creates an untitled document holding everything read from r.
func (s *Session) ReadFrom(r io.Reader, name string) (*Document, error) {
	d := s.NewDocument()
	if _, err := d.InsertFrom(r); err != nil {
		s.Close(d)
		return nil, err
	}
	d.Path = name
	d.Dirty = false
	d.Journal.Clear()
	d.Cursor.Top(d.Buffer, false)
	return d, nil
}

// Close removes a document. If it was the last one, an untitled
// document takes its place.
func (s *Session) Close(d *Document) {
	s.Registry.Delete(d.Handle)
	if s.Registry.Current() == nil {
		s.NewDocument()
	}
	s.Current().Cursor.Refresh = true
}

// Next makes the next document current.
func (s *Session) Next() *Document {
	d := s.Registry.Next()
	d.Cursor.Refresh = true
	return d
}

// Prev makes the previous document current.
func (s *Session) Prev() *Document {
	d := s.Registry.Prev()
	d.Cursor.Refresh = true
	return d
}

// DirtyDocuments returns the documents with unsaved changes, starting
// with the current one.
func (s *Session) DirtyDocuments() []*Document {
	var dirty []*Document
	s.Registry.Each(func(d *Document) bool {
		if d.Dirty {
			dirty = append(dirty, d)
		}
		return true
	})
	return dirty
}

// Find searches the current document for text and remembers it for FindNext.
func (s *Session) Find(text string) error {
	s.Search = text
	return s.FindNext()
}

// FindNext repeats the last search from the cursor.
func (s *Session) FindNext() error {
	return s.Current().Find(s.Search)
}

// Jump opens the file named under the cursor of the current document,
// going to the line that follows the name as in "name:line".
func (s *Session) Jump() error {
	name, line := s.Current().WordAt()
	if name == "" {
		return nil
	}
	d, err := s.Open(name)
	if err != nil {
		return err
	}
	if line > 0 {
		return d.GotoLine(line)
	}
	return nil
}

// SetSize changes the size of the text area for every document.
func (s *Session) SetSize(size types.Size) {
	s.size = size
	s.Registry.Each(func(d *Document) bool {
		d.Cursor.Size = size
		d.Cursor.Fit(d.Buffer)
		return true
	})
}

// MarkResize records that the terminal changed size. It is safe to call
// from any goroutine; nothing else is touched.
func (s *Session) MarkResize() {
	s.resize.Store(true)
}

// ResizePending reports whether a resize was marked since the last call.
func (s *Session) ResizePending() bool {
	return s.resize.Swap(false)
}
