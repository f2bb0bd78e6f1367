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
	"fmt"
	"log"
	"os/exec"

	"github.com/timburks/gted/pkg/editor"
)

// The commands in this file may ask the user for input. Each one that
// takes an argument skips its prompt when the argument is given.

// report shows err on the status line, or msg if err is nil.
func (c *Commander) report(err error, msg string) {
	if err != nil {
		c.message = err.Error()
		return
	}
	c.message = msg
}

// Open makes the file at path the current document.
func (c *Commander) Open(path string) {
	if path == "" {
		var ok bool
		if path, ok = c.Prompt("Open file: "); !ok {
			return
		}
	}
	_, err := c.session.Open(path)
	if err != nil {
		log.Printf("open: %v", err)
		c.message = fmt.Sprintf("Error opening %s (%v)", path, err)
	}
}

// Save writes the current document. A new document is saved to path,
// or to a name read from the prompt, confirming before it replaces an
// existing file.
func (c *Commander) Save(path string) {
	d := c.session.Current()
	if path == "" && !d.Dirty && !d.NewFile {
		return
	}
	if path == "" && d.NewFile {
		var ok bool
		if path, ok = c.Prompt("Save as: "); !ok {
			return
		}
		if editor.Exists(path) && !c.Ask(fmt.Sprintf("Overwrite %s (y/n)? ", path)) {
			return
		}
	}
	var err error
	if path == "" {
		err = d.Save()
	} else {
		err = d.SaveAs(path)
	}
	c.report(err, fmt.Sprintf("Saved %s", d.Name()))
}

// Close closes the current document, asking first if it has unsaved
// changes and force is not set.
func (c *Commander) Close(force bool) {
	d := c.session.Current()
	if d.Dirty && !force && !c.Ask(fmt.Sprintf("Close %s without saving changes (y/n)? ", d.Name())) {
		return
	}
	c.session.Close(d)
}

// Quit stops the commander once the user agrees to lose every unsaved change.
func (c *Commander) Quit() {
	for _, d := range c.session.DirtyDocuments() {
		if !c.Ask(fmt.Sprintf("Close %s without saving changes (y/n)? ", d.Name())) {
			return
		}
	}
	c.running = false
}

// Pipe runs a shell command and inserts its output at the cursor.
func (c *Commander) Pipe(command string) {
	if command == "" {
		var ok bool
		if command, ok = c.Prompt("Command: "); !ok {
			return
		}
	}
	log.Printf("pipe: %s", command)
	cmd := exec.Command("/bin/sh", "-c", command)
	out, err := cmd.StdoutPipe()
	if err == nil {
		err = cmd.Start()
	}
	if err != nil {
		c.message = fmt.Sprintf("Error running command (%v)", err)
		return
	}
	_, err = c.session.Current().InsertFrom(out)
	if werr := cmd.Wait(); err == nil {
		err = werr
	}
	if err != nil {
		log.Printf("pipe: %v", err)
		c.message = fmt.Sprintf("Command failed (%v)", err)
	}
}

// Find searches for text from the cursor.
func (c *Commander) Find(text string) bool {
	if text == "" {
		var ok bool
		if text, ok = c.Prompt("Find: "); !ok {
			return false
		}
	}
	return c.searched(c.session.Find(text))
}

// FindNext repeats the last search.
func (c *Commander) FindNext() bool {
	return c.searched(c.session.FindNext())
}

func (c *Commander) searched(err error) bool {
	if errors.Is(err, editor.ErrNoMatch) {
		c.message = fmt.Sprintf("Not found: %s", c.session.Search)
		return false
	}
	c.report(err, "")
	return err == nil
}

// GotoLine moves to line n, counting from 1, or to a line read from the
// prompt if n is zero.
func (c *Commander) GotoLine(n int) {
	if n == 0 {
		text, ok := c.Prompt("Goto line: ")
		if !ok {
			return
		}
		if _, err := fmt.Sscan(text, &n); err != nil {
			c.message = fmt.Sprintf("Not a line number: %s", text)
			return
		}
	}
	c.report(c.session.Current().GotoLine(n), "")
}

// Jump opens the file named at the cursor.
func (c *Commander) Jump() {
	if err := c.session.Jump(); err != nil {
		log.Printf("jump: %v", err)
		c.message = err.Error()
	}
}

// Lisp evaluates an expression read from the prompt and shows its value.
func (c *Commander) Lisp() {
	expr, ok := c.Prompt("Lisp: ")
	if !ok {
		return
	}
	value, err := c.Eval(expr)
	c.report(err, value)
}

// Help shows the key summary until a key is pressed.
func (c *Commander) Help() {
	if c.display == nil {
		return
	}
	c.display.ShowHelp()
	c.readKey()
	c.session.Current().Cursor.Refresh = true
}

// Redraw refits the session to the terminal and repaints it.
func (c *Commander) Redraw() {
	c.resize()
	c.session.Current().Cursor.Refresh = true
}
