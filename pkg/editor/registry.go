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

// A Registry is a ring of documents with one current document.
// Documents are stored by handle; the ring holds handles in ring order.
type Registry struct {
	docs    map[Handle]*Document
	ring    []Handle
	current int // index into ring, -1 when the ring is empty
	last    Handle
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{docs: make(map[Handle]*Document), current: -1}
}

// Len returns the number of documents.
func (r *Registry) Len() int {
	return len(r.ring)
}

// Current returns the current document, or nil if there is none.
func (r *Registry) Current() *Document {
	if r.current < 0 {
		return nil
	}
	return r.docs[r.ring[r.current]]
}

// Get returns the document with handle h, or nil.
func (r *Registry) Get(h Handle) *Document {
	return r.docs[h]
}

// Create adds an empty document after the current one and makes it current.
func (r *Registry) Create() *Document {
	r.last++
	d := &Document{Handle: r.last}
	r.docs[d.Handle] = d
	i := r.current + 1
	r.ring = append(r.ring, 0)
	copy(r.ring[i+1:], r.ring[i:])
	r.ring[i] = d.Handle
	r.current = i
	return d
}

// Delete removes the document with handle h. The document before it
// becomes current; when the last document is removed there is no
// current document until another is created.
func (r *Registry) Delete(h Handle) bool {
	i := r.index(h)
	if i < 0 {
		return false
	}
	delete(r.docs, h)
	r.ring = append(r.ring[:i], r.ring[i+1:]...)
	if len(r.ring) == 0 {
		r.current = -1
		return true
	}
	// the predecessor of i, with wraparound
	r.current = (i - 1 + len(r.ring)) % len(r.ring)
	return true
}

// Select makes the document with handle h current.
func (r *Registry) Select(h Handle) bool {
	i := r.index(h)
	if i < 0 {
		return false
	}
	r.current = i
	return true
}

// Next makes the document after the current one current and returns it.
func (r *Registry) Next() *Document {
	if r.current < 0 {
		return nil
	}
	r.current = (r.current + 1) % len(r.ring)
	return r.Current()
}

// Prev makes the document before the current one current and returns it.
func (r *Registry) Prev() *Document {
	if r.current < 0 {
		return nil
	}
	r.current = (r.current - 1 + len(r.ring)) % len(r.ring)
	return r.Current()
}

// Each calls fn for each document in ring order, starting with the
// current one, until fn returns false.
func (r *Registry) Each(fn func(*Document) bool) {
	n := len(r.ring)
	for k := 0; k < n; k++ {
		if !fn(r.docs[r.ring[(r.current+k)%n]]) {
			return
		}
	}
}

// FindByPath returns the document for the file at path, or nil.
// Paths are compared in canonical form; untitled names match as given.
func (r *Registry) FindByPath(path string) *Document {
	canonical := Canonical(path)
	var found *Document
	r.Each(func(d *Document) bool {
		if d.Path == canonical || d.Path == path {
			found = d
			return false
		}
		return true
	})
	return found
}

func (r *Registry) index(h Handle) int {
	for i, x := range r.ring {
		if x == h {
			return i
		}
	}
	return -1
}
