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

// Package undo records the edits made to a buffer so they can be undone
// and redone. Consecutive single-byte edits are merged into one record,
// so a run of typing or deleting undoes in one step.
package undo

// A Record holds one edit: at Pos, Erased was replaced by Inserted.
type Record struct {
	Pos      int
	Erased   []byte
	Inserted []byte
}

// A Target is the buffer the journal replays into. Splice must not
// record the edit again.
type Target interface {
	Splice(pos, eraseLen int, insert []byte)
}

// A Journal is an ordered list of records with an undo boundary.
// Records up to and including the boundary have been applied; the
// records after it form the redo tail.
type Journal struct {
	records  []*Record
	boundary int // index of the last applied record, -1 when none
}

// New returns an empty journal.
func New() *Journal {
	return &Journal{boundary: -1}
}

// Len returns the number of records, including the redo tail.
func (j *Journal) Len() int {
	return len(j.records)
}

// Empty reports whether there is nothing left to undo.
func (j *Journal) Empty() bool {
	return j.boundary < 0
}

// CanRedo reports whether a record follows the boundary.
func (j *Journal) CanRedo() bool {
	return j.boundary+1 < len(j.records)
}

// Records returns the records; callers must not modify them.
func (j *Journal) Records() []*Record {
	return j.records
}

// Clear drops every record.
func (j *Journal) Clear() {
	j.records = nil
	j.boundary = -1
}

// Record adds an edit to the journal, merging it into the last record
// when it continues a run of single-byte inserts or deletes.
func (j *Journal) Record(pos int, erased, inserted []byte) {
	if len(erased) == 0 && len(inserted) == 0 {
		return
	}
	if j.CanRedo() {
		for i := j.boundary + 1; i < len(j.records); i++ {
			j.records[i] = nil
		}
		j.records = j.records[:j.boundary+1]
	}

	if tail := j.tail(); tail != nil {
		switch {
		case len(erased) == 0 && len(inserted) == 1 && len(tail.Erased) == 0 &&
			pos == tail.Pos+len(tail.Inserted):
			// typing
			tail.Inserted = append(tail.Inserted, inserted[0])
			return
		case len(erased) == 1 && len(inserted) == 0 && len(tail.Inserted) == 0 &&
			pos == tail.Pos:
			// forward delete
			tail.Erased = append(tail.Erased, erased[0])
			return
		case len(erased) == 1 && len(inserted) == 0 && len(tail.Inserted) == 0 &&
			pos == tail.Pos-1:
			// backspace
			tail.Erased = append([]byte{erased[0]}, tail.Erased...)
			tail.Pos--
			return
		}
	}

	j.records = append(j.records, &Record{
		Pos:      pos,
		Erased:   clone(erased),
		Inserted: clone(inserted),
	})
	j.boundary = len(j.records) - 1
}

func (j *Journal) tail() *Record {
	if len(j.records) == 0 {
		return nil
	}
	return j.records[len(j.records)-1]
}

// Last returns the record Undo would revert, or nil.
func (j *Journal) Last() *Record {
	if j.boundary < 0 {
		return nil
	}
	return j.records[j.boundary]
}

// Next returns the record Redo would apply, or nil.
func (j *Journal) Next() *Record {
	if !j.CanRedo() {
		return nil
	}
	return j.records[j.boundary+1]
}

// Undo reverts the record at the boundary and moves the boundary back.
// It returns the position of the reverted edit, or false if there was
// nothing to undo.
func (j *Journal) Undo(t Target) (int, bool) {
	if j.boundary < 0 {
		return 0, false
	}
	r := j.records[j.boundary]
	t.Splice(r.Pos, len(r.Inserted), r.Erased)
	j.boundary--
	return r.Pos, true
}

// Redo reapplies the record after the boundary and moves the boundary
// forward. It returns the position of the edit, or false if there was
// nothing to redo.
func (j *Journal) Redo(t Target) (int, bool) {
	if !j.CanRedo() {
		return 0, false
	}
	j.boundary++
	r := j.records[j.boundary]
	t.Splice(r.Pos, len(r.Erased), r.Inserted)
	return r.Pos, true
}

func clone(b []byte) []byte {
	if len(b) == 0 {
		return nil
	}
	return append([]byte(nil), b...)
}
