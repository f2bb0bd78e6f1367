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
	"io/fs"
	"log"
	"os"
	"path/filepath"

	"github.com/timburks/gted/pkg/buffer"
)

// Canonical resolves symbolic links and relative elements of path.
// A path that does not exist yet is only made absolute.
func Canonical(path string) string {
	resolved, err := filepath.EvalSymlinks(path)
	if err != nil {
		resolved = path
	}
	abs, err := filepath.Abs(resolved)
	if err != nil {
		return path
	}
	return abs
}

// load reads the file at path into a buffer with room for slack more bytes.
func load(path string, slack int) (*buffer.Buffer, error) {
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("open %s: %w", path, ErrNotFound)
	}
	if err != nil {
		return nil, &IOError{Op: "open", Path: path, Err: err}
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return nil, &IOError{Op: "stat", Path: path, Err: err}
	}
	if info.IsDir() {
		return nil, &IOError{Op: "open", Path: path, Err: errors.New("is a directory")}
	}
	b, err := buffer.ReadFrom(f, int(info.Size()), slack)
	if err != nil {
		return nil, &IOError{Op: "read", Path: path, Err: err}
	}
	log.Printf("open: %s (%d bytes)", path, b.Len())
	return b, nil
}

// Save writes the document to its file. The file is truncated and
// rewritten in place, so a failed write can leave it incomplete.
// On success the document is clean and its undo history is dropped.
func (d *Document) Save() error {
	f, err := os.OpenFile(d.Path, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0o644)
	if err != nil {
		return &IOError{Op: "save", Path: d.Path, Err: err}
	}
	n, err := d.Buffer.WriteTo(f)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		log.Printf("save: %s: %v", d.Path, err)
		return &IOError{Op: "save", Path: d.Path, Err: err}
	}
	log.Printf("save: %s (%d bytes)", d.Path, n)
	d.Path = Canonical(d.Path)
	d.Dirty = false
	d.NewFile = false
	d.Journal.Clear()
	return nil
}

// SaveAs names the document path and saves it.
func (d *Document) SaveAs(path string) error {
	old, wasNew := d.Path, d.NewFile
	d.Path = path
	if err := d.Save(); err != nil {
		d.Path, d.NewFile = old, wasNew
		return err
	}
	return nil
}

// Exists reports whether a file exists at path.
func Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
