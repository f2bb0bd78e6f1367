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
)

// Errors returned by editor operations.
var (
	// ErrNotFound indicates a file does not exist.
	ErrNotFound = errors.New("file not found")

	// ErrNoMatch indicates a search found nothing.
	ErrNoMatch = errors.New("no match")

	// ErrNoLine indicates a line number outside the document.
	ErrNoLine = errors.New("no such line")
)

// An IOError records a failed read or write of a document's file.
type IOError struct {
	Op   string
	Path string
	Err  error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *IOError) Unwrap() error {
	return e.Err
}
