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

// Package screen draws gted sessions on the terminal with termbox and
// supplies the raw bytes typed at the terminal.
package screen

import (
	"io"
	"log"

	"github.com/nsf/termbox-go"

	"github.com/timburks/gted/pkg/cursor"
	"github.com/timburks/gted/pkg/editor"
	"github.com/timburks/gted/pkg/keys"
	"github.com/timburks/gted/pkg/types"
)

// A Style is a foreground and background pair.
type Style struct {
	Fg, Bg termbox.Attribute
}

// A Theme styles the text, the selection and the bottom row.
type Theme struct {
	Text     Style
	Selected Style
	Status   Style
}

// Themes for color and monochrome terminals
var (
	ColorTheme = Theme{
		Text:     Style{termbox.ColorWhite | termbox.AttrBold, termbox.ColorBlue},
		Selected: Style{termbox.ColorWhite | termbox.AttrBold, termbox.ColorWhite},
		Status:   Style{termbox.ColorBlack, termbox.ColorWhite},
	}
	MonoTheme = Theme{
		Text:     Style{termbox.ColorDefault, termbox.ColorDefault},
		Selected: Style{termbox.ColorDefault | termbox.AttrReverse | termbox.AttrBold, termbox.ColorDefault},
		Status:   Style{termbox.ColorDefault | termbox.AttrReverse | termbox.AttrBold, termbox.ColorDefault},
	}
)

// input is one delivery from the terminal reader.
type input struct {
	data   []byte
	resize bool
	err    error
}

// The Screen owns the terminal while the editor runs.
type Screen struct {
	theme    Theme
	onResize func()
	events   chan input
	pending  []byte
}

// New opens the terminal. onResize is called from the reader goroutine
// when the terminal changes size.
func New(theme Theme, onResize func()) (*Screen, error) {
	if err := termbox.Init(); err != nil {
		return nil, err
	}
	termbox.SetOutputMode(termbox.Output256)
	s := &Screen{
		theme:    theme,
		onResize: onResize,
		events:   make(chan input, 16),
	}
	go s.poll()
	return s, nil
}

// Close restores the terminal.
func (s *Screen) Close() {
	termbox.Interrupt()
	termbox.Close()
}

func (s *Screen) poll() {
	buf := make([]byte, 256)
	for {
		ev := termbox.PollRawEvent(buf)
		switch ev.Type {
		case termbox.EventRaw:
			s.events <- input{data: append([]byte(nil), buf[:ev.N]...)}
		case termbox.EventResize:
			if s.onResize != nil {
				s.onResize()
			}
			s.events <- input{resize: true}
		case termbox.EventError:
			log.Printf("screen: %v", ev.Err)
			s.events <- input{err: ev.Err}
			return
		case termbox.EventInterrupt:
			close(s.events)
			return
		}
	}
}

// ReadByte returns the next byte typed at the terminal. It returns
// keys.ErrInterrupted when a resize arrives first.
func (s *Screen) ReadByte() (byte, error) {
	for len(s.pending) == 0 {
		in, ok := <-s.events
		switch {
		case !ok:
			return 0, io.EOF
		case in.err != nil:
			return 0, in.err
		case in.resize:
			return 0, keys.ErrInterrupted
		}
		s.pending = in.data
	}
	b := s.pending[0]
	s.pending = s.pending[1:]
	return b, nil
}

// Size returns the size of the terminal. Clearing the back buffer picks
// up a size change.
func (s *Screen) Size() types.Size {
	termbox.Clear(s.theme.Text.Fg, s.theme.Text.Bg)
	cols, rows := termbox.Size()
	return types.Size{Rows: rows, Cols: cols}
}

// Render draws the current document and, on the bottom row, either the
// message or the status line.
func (s *Screen) Render(session *editor.Session, m types.Message) {
	termbox.Clear(s.theme.Text.Fg, s.theme.Text.Bg)
	cols, rows := termbox.Size()
	d := session.Current()
	c := d.Cursor

	start, end, ok := c.Selection()
	if !ok {
		start, end = -1, -1
	}
	pos := c.Toppos
	for row := 0; row < rows-1 && pos >= 0; row++ {
		for x, cell := range Line(d.Buffer, pos, c.Margin, cols, start, end) {
			style := s.theme.Text
			if cell.Selected {
				style = s.theme.Selected
			}
			termbox.SetCell(x, row, rune(cell.Ch), style.Fg, style.Bg)
		}
		pos = cursor.NextLine(d.Buffer, pos)
	}

	if m.Text != "" || m.Cursor >= 0 {
		s.bottom(m.Text, cols, rows)
		termbox.SetCursor(min(m.Cursor, cols-1), rows-1)
	} else {
		line := cursor.Column(d.Buffer, c.Linepos, c.Col)
		s.bottom(Status(d.Path, d.Dirty, c.Line+1, line+1, cols), cols, rows)
		termbox.SetCursor(c.VisualColumn(d.Buffer), c.Line-c.Topline)
	}
	c.Refresh = false
	c.LineUpdate = false
	termbox.Flush()
}

// bottom fills the last row with text in the status style.
func (s *Screen) bottom(text string, cols, rows int) {
	st := s.theme.Status
	for x := 0; x < cols; x++ {
		ch := ' '
		if x < len(text) {
			ch = rune(text[x])
		}
		termbox.SetCell(x, rows-1, ch, st.Fg, st.Bg)
	}
}

var help = []string{
	"Editor Command Summary",
	"======================",
	"",
	"<up>         Move one line up (*)         Ctrl+N  New document",
	"<down>       Move one line down (*)       Ctrl+O  Open file",
	"<left>       Move one character left (*)  Ctrl+S  Save file",
	"<right>      Move one character right (*) Ctrl+W  Close file",
	"<pgup>       Move one page up (*)         Ctrl+Q  Quit",
	"<pgdn>       Move one page down (*)       Ctrl+P  Pipe command",
	"Ctrl+<left>  Move to previous word (*)    Ctrl+A  Select all",
	"Ctrl+<right> Move to next word (*)        Ctrl+C  Copy selection to clipboard",
	"<home>       Move to start of line (*)    Ctrl+X  Cut selection to clipboard",
	"<end>        Move to end of line (*)      Ctrl+V  Paste from clipboard",
	"Ctrl+<home>  Move to start of file (*)    Ctrl+Z  Undo",
	"Ctrl+<end>   Move to end of file (*)      Ctrl+R  Redo",
	"<backspace>  Delete previous character    Ctrl+F  Find text",
	"<delete>     Delete current character     Ctrl+G  Find next",
	"Shift+<tab>  Next document                Ctrl+L  Goto line",
	"Ctrl+<tab>   Previous document            Ctrl+E  Evaluate lisp",
	"Ctrl+T       Move to start of file        F1      Help",
	"Ctrl+B       Move to end of file          F3      Navigate to file",
	"(*) Extends selection if combined         F5      Redraw screen",
	"    with Shift",
	"",
	"Press any key to continue...",
}

// ShowHelp replaces the screen with the key summary.
func (s *Screen) ShowHelp() {
	st := s.theme.Text
	termbox.Clear(st.Fg, st.Bg)
	for y, line := range help {
		for x, ch := range line {
			termbox.SetCell(x, y, ch, st.Fg, st.Bg)
		}
	}
	termbox.SetCursor(len(help[len(help)-1]), len(help)-1)
	termbox.Flush()
}
