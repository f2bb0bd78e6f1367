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
	"log"

	"github.com/atotto/clipboard"
)

// A Clipboard is the single slot shared by every document for copy
// and paste. It can mirror its contents to the system clipboard.
type Clipboard struct {
	data   []byte
	system bool
}

// NewClipboard returns an empty clipboard. If system is set, copies are
// also written to the system clipboard and pastes read from it.
func NewClipboard(system bool) *Clipboard {
	return &Clipboard{system: system}
}

// Set replaces the contents of the clipboard.
func (c *Clipboard) Set(text []byte) {
	c.data = append(c.data[:0], text...)
	if c.system {
		if err := clipboard.WriteAll(string(text)); err != nil {
			log.Printf("clipboard: %v", err)
		}
	}
}

// Get returns the contents of the clipboard.
func (c *Clipboard) Get() []byte {
	if c.system {
		text, err := clipboard.ReadAll()
		if err == nil {
			return []byte(text)
		}
		log.Printf("clipboard: %v", err)
	}
	return c.data
}

// Len returns the size of the local slot.
func (c *Clipboard) Len() int {
	return len(c.data)
}
