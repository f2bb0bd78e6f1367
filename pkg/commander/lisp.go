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
	"fmt"
	"log"
	"os"

	"github.com/steelseries/golisp"

	"github.com/timburks/gted/pkg/cursor"
	"github.com/timburks/gted/pkg/editor"
)

type primitive func(args *golisp.Data, env *golisp.SymbolTableFrame) (*golisp.Data, error)

// motions are the cursor motions; each is also defined with a select- prefix
// that extends the selection.
var motions = []struct {
	name string
	move func(*cursor.Cursor, cursor.Text, bool)
}{
	{"up", (*cursor.Cursor).Up},
	{"down", (*cursor.Cursor).Down},
	{"left", (*cursor.Cursor).Left},
	{"right", (*cursor.Cursor).Right},
	{"word-left", (*cursor.Cursor).WordLeft},
	{"word-right", (*cursor.Cursor).WordRight},
	{"home", (*cursor.Cursor).Home},
	{"end", (*cursor.Cursor).End},
	{"top", (*cursor.Cursor).Top},
	{"bottom", (*cursor.Cursor).Bottom},
	{"page-up", (*cursor.Cursor).PageUp},
	{"page-down", (*cursor.Cursor).PageDown},
}

// definePrimitives binds the editor commands to lisp functions that act
// on this commander. The lisp environment is global, so the most recently
// created commander receives them.
func (c *Commander) definePrimitives() {
	for _, m := range motions {
		golisp.MakePrimitiveFunction(m.name, "0", c.motion(m.move, false))
		golisp.MakePrimitiveFunction("select-"+m.name, "0", c.motion(m.move, true))
	}

	edits := map[string]func(d *editor.Document){
		"newline":    (*editor.Document).Newline,
		"backspace":  (*editor.Document).Backspace,
		"delete":     (*editor.Document).Delete,
		"select-all": (*editor.Document).SelectAll,
		"copy":       func(d *editor.Document) { d.Copy(c.session.Clipboard) },
		"cut":        func(d *editor.Document) { d.Cut(c.session.Clipboard) },
		"paste":      func(d *editor.Document) { d.Paste(c.session.Clipboard) },
		"undo":       func(d *editor.Document) { d.Undo() },
		"redo":       func(d *editor.Document) { d.Redo() },
	}
	for name, edit := range edits {
		golisp.MakePrimitiveFunction(name, "0", func(args *golisp.Data, env *golisp.SymbolTableFrame) (*golisp.Data, error) {
			edit(c.session.Current())
			return nil, nil
		})
	}

	commands := map[string]func(){
		"find-next":         func() { c.FindNext() },
		"new":               func() { c.session.NewDocument() },
		"next-document":     func() { c.session.Next() },
		"previous-document": func() { c.session.Prev() },
		"quit":              c.Quit,
		"jump":              c.Jump,
		"lisp":              c.Lisp,
		"help":              c.Help,
		"redraw":            c.Redraw,
	}
	for name, command := range commands {
		golisp.MakePrimitiveFunction(name, "0", func(args *golisp.Data, env *golisp.SymbolTableFrame) (*golisp.Data, error) {
			command()
			return nil, nil
		})
	}

	golisp.MakePrimitiveFunction("insert", "1", c.insertImpl)
	golisp.MakePrimitiveFunction("find", "0|1", c.findImpl)
	golisp.MakePrimitiveFunction("goto-line", "0|1", c.gotoLineImpl)
	golisp.MakePrimitiveFunction("open", "0|1", c.withOptionalString("open", c.Open))
	golisp.MakePrimitiveFunction("save", "0|1", c.withOptionalString("save", c.Save))
	golisp.MakePrimitiveFunction("pipe", "0|1", c.withOptionalString("pipe", c.Pipe))
	golisp.MakePrimitiveFunction("close", "0|1", c.closeImpl)
	golisp.MakePrimitiveFunction("message", "1", c.messageImpl)

	golisp.MakePrimitiveFunction("text", "0", c.textImpl)
	golisp.MakePrimitiveFunction("position", "0", c.positionImpl)
	golisp.MakePrimitiveFunction("line", "0", c.lineImpl)
	golisp.MakePrimitiveFunction("column", "0", c.columnImpl)
	golisp.MakePrimitiveFunction("document-name", "0", c.documentNameImpl)
	golisp.MakePrimitiveFunction("dirty?", "0", c.dirtyImpl)
}

func (c *Commander) motion(move func(*cursor.Cursor, cursor.Text, bool), extend bool) primitive {
	return func(args *golisp.Data, env *golisp.SymbolTableFrame) (*golisp.Data, error) {
		d := c.session.Current()
		move(d.Cursor, d.Buffer, extend)
		return nil, nil
	}
}

func (c *Commander) withOptionalString(name string, command func(string)) primitive {
	return func(args *golisp.Data, env *golisp.SymbolTableFrame) (*golisp.Data, error) {
		s, err := optionalString(name, args)
		if err != nil {
			return nil, err
		}
		command(s)
		return nil, nil
	}
}

func (c *Commander) insertImpl(args *golisp.Data, env *golisp.SymbolTableFrame) (*golisp.Data, error) {
	val := golisp.Car(args)
	if !golisp.StringP(val) {
		return nil, fmt.Errorf("insert requires a string argument")
	}
	c.session.Current().Insert([]byte(golisp.StringValue(val)))
	return nil, nil
}

func (c *Commander) findImpl(args *golisp.Data, env *golisp.SymbolTableFrame) (*golisp.Data, error) {
	s, err := optionalString("find", args)
	if err != nil {
		return nil, err
	}
	return golisp.BooleanWithValue(c.Find(s)), nil
}

func (c *Commander) gotoLineImpl(args *golisp.Data, env *golisp.SymbolTableFrame) (*golisp.Data, error) {
	if golisp.NilP(args) {
		c.GotoLine(0)
		return nil, nil
	}
	val := golisp.Car(args)
	if !golisp.IntegerP(val) {
		return nil, fmt.Errorf("goto-line requires an integer argument")
	}
	if err := c.session.Current().GotoLine(int(golisp.IntegerValue(val))); err != nil {
		return nil, err
	}
	return nil, nil
}

func (c *Commander) closeImpl(args *golisp.Data, env *golisp.SymbolTableFrame) (*golisp.Data, error) {
	c.Close(!golisp.NilP(args))
	return nil, nil
}

func (c *Commander) messageImpl(args *golisp.Data, env *golisp.SymbolTableFrame) (*golisp.Data, error) {
	val := golisp.Car(args)
	if golisp.StringP(val) {
		c.message = golisp.StringValue(val)
	} else {
		c.message = golisp.String(val)
	}
	log.Printf("lisp: %s", c.message)
	return val, nil
}

func (c *Commander) textImpl(args *golisp.Data, env *golisp.SymbolTableFrame) (*golisp.Data, error) {
	return golisp.StringWithValue(string(c.session.Current().Text())), nil
}

func (c *Commander) positionImpl(args *golisp.Data, env *golisp.SymbolTableFrame) (*golisp.Data, error) {
	return golisp.IntegerWithValue(int64(c.session.Current().Pos())), nil
}

func (c *Commander) lineImpl(args *golisp.Data, env *golisp.SymbolTableFrame) (*golisp.Data, error) {
	return golisp.IntegerWithValue(int64(c.session.Current().Cursor.Line + 1)), nil
}

func (c *Commander) columnImpl(args *golisp.Data, env *golisp.SymbolTableFrame) (*golisp.Data, error) {
	d := c.session.Current()
	col := cursor.Column(d.Buffer, d.Cursor.Linepos, d.Cursor.Col)
	return golisp.IntegerWithValue(int64(col + 1)), nil
}

func (c *Commander) documentNameImpl(args *golisp.Data, env *golisp.SymbolTableFrame) (*golisp.Data, error) {
	return golisp.StringWithValue(c.session.Current().Path), nil
}

func (c *Commander) dirtyImpl(args *golisp.Data, env *golisp.SymbolTableFrame) (*golisp.Data, error) {
	return golisp.BooleanWithValue(c.session.Current().Dirty), nil
}

func optionalString(name string, args *golisp.Data) (string, error) {
	if golisp.NilP(args) {
		return "", nil
	}
	val := golisp.Car(args)
	if !golisp.StringP(val) {
		return "", fmt.Errorf("%s requires a string argument", name)
	}
	return golisp.StringValue(val), nil
}

// Eval evaluates a lisp expression and returns its printed value.
func (c *Commander) Eval(expr string) (string, error) {
	value, err := golisp.ParseAndEval(expr)
	if err != nil {
		log.Printf("lisp: %v", err)
		return "", err
	}
	if value == nil {
		return "", nil
	}
	return golisp.String(value), nil
}

// EvalFile evaluates every expression in a script file.
func (c *Commander) EvalFile(path string) (string, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	log.Printf("lisp: running %s", path)
	return c.Eval("(begin\n" + string(src) + "\n)")
}
