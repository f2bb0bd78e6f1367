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

package commander

import (
	"bytes"

	"github.com/timburks/gted/pkg/types"
)

// Prompt reads a line of input on the bottom row, starting with the
// selected text if there is any. It returns false if the user pressed
// Esc or entered nothing.
func (c *Commander) Prompt(msg string) (string, bool) {
	if c.input == nil {
		return "", false
	}
	maxLen := 1 << 12
	if c.display != nil {
		maxLen = max(c.display.Size().Cols-len(msg)-1, 0)
	}
	var line []byte
	if sel := c.session.Current().Selected(); !bytes.ContainsAny(sel, "\r\n") {
		line = append(line, sel[:min(len(sel), maxLen)]...)
	}
	for {
		text := msg + string(line)
		c.show(types.Message{Text: text, Cursor: len(text)})
		k := c.readKey()
		switch {
		case k == types.KeyEsc || k == types.KeyEOF:
			return "", false
		case k == types.KeyEnter:
			return string(line), len(line) > 0
		case k == types.KeyBackspace:
			if len(line) > 0 {
				line = line[:len(line)-1]
			}
		case k.IsPrintable() || k == types.KeyTab:
			if len(line) < maxLen {
				if k == types.KeyTab {
					k = '\t'
				}
				line = append(line, byte(k))
			}
		}
	}
}

// Ask shows a question and reports whether the answer was y.
func (c *Commander) Ask(question string) bool {
	if c.input == nil {
		return false
	}
	c.show(types.Message{Text: question, Cursor: len(question)})
	k := c.readKey()
	return k == 'y' || k == 'Y'
}
