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
	"errors"
	"io"
	"log"

	"github.com/timburks/gted/pkg/editor"
	"github.com/timburks/gted/pkg/keys"
	"github.com/timburks/gted/pkg/types"
)

// A Display draws the session and reports the size of the terminal.
type Display interface {
	Size() types.Size
	Render(s *editor.Session, m types.Message)
	ShowHelp()
}

// The Commander reads keys and runs the commands bound to them.
type Commander struct {
	session  *editor.Session
	display  Display       // nil when running a script
	input    io.ByteReader // nil when running a script
	decoder  keys.Decoder
	bindings map[types.Key]string
	message  string // status message, cleared by the next key
	running  bool
}

// NewCommander returns a commander for a session. Display and input may
// be nil for a commander that only evaluates scripts; its prompts are
// then always cancelled.
func NewCommander(s *editor.Session, d Display, in io.ByteReader) *Commander {
	c := &Commander{
		session:  s,
		display:  d,
		input:    in,
		bindings: defaultBindings(),
	}
	c.definePrimitives()
	return c
}

// Message returns the current status message.
func (c *Commander) Message() string {
	return c.message
}

// IsRunning reports whether the commander is still processing keys.
func (c *Commander) IsRunning() bool {
	return c.running
}

// Bind binds a key to a lisp expression. An empty expression removes the binding.
func (c *Commander) Bind(k types.Key, expr string) {
	if expr == "" {
		delete(c.bindings, k)
		return
	}
	c.bindings[k] = expr
}

// Run processes keys until the user quits or the input ends.
func (c *Commander) Run() {
	c.running = true
	c.resize()
	for c.running {
		if c.session.ResizePending() {
			c.resize()
		}
		c.render()
		k := c.readKey()
		if k == types.KeyEOF {
			log.Printf("input closed")
			return
		}
		c.ProcessKey(k)
	}
}

// ProcessKey runs the command for one key.
func (c *Commander) ProcessKey(k types.Key) {
	c.message = ""
	d := c.session.Current()
	switch {
	case k.IsPrintable():
		d.InsertChar(byte(k))
	case k == types.KeyTab:
		d.InsertChar('\t')
	default:
		if expr, ok := c.bindings[k]; ok {
			if _, err := c.Eval(expr); err != nil {
				c.message = err.Error()
			}
		}
	}
}

// readKey reads bytes until a key is complete. A resize that interrupts
// the read is handled at once.
func (c *Commander) readKey() types.Key {
	if c.input == nil {
		return types.KeyEOF
	}
	for {
		b, err := c.input.ReadByte()
		if errors.Is(err, keys.ErrInterrupted) {
			if c.session.ResizePending() {
				c.resize()
				c.render()
			}
			continue
		}
		if err != nil {
			if !errors.Is(err, io.EOF) {
				log.Printf("input: %v", err)
			}
			c.decoder.Reset()
			return types.KeyEOF
		}
		if k, ok := c.decoder.Step(b); ok {
			return k
		}
	}
}

// resize fits the session to the terminal, leaving the bottom row for status.
func (c *Commander) resize() {
	if c.display == nil {
		return
	}
	size := c.display.Size()
	size.Rows--
	c.session.SetSize(size)
}

func (c *Commander) render() {
	c.show(types.Message{Text: c.message, Cursor: -1})
}

func (c *Commander) show(m types.Message) {
	if c.display != nil {
		c.display.Render(c.session, m)
	}
}
