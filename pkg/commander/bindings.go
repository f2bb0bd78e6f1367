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
	"github.com/timburks/gted/pkg/types"
)

// defaultBindings maps keys to the lisp expressions they evaluate.
// Printable bytes and Tab insert themselves and are not listed.
func defaultBindings() map[types.Key]string {
	return map[types.Key]string{
		types.KeyUp:     "(up)",
		types.KeyDown:   "(down)",
		types.KeyLeft:   "(left)",
		types.KeyRight:  "(right)",
		types.KeyHome:   "(home)",
		types.KeyEnd:    "(end)",
		types.KeyPgUp:   "(page-up)",
		types.KeyPgDn:   "(page-down)",
		types.Ctrl('t'): "(top)",
		types.Ctrl('b'): "(bottom)",

		types.KeyCtrlLeft:  "(word-left)",
		types.KeyCtrlRight: "(word-right)",
		types.KeyCtrlUp:    "(up)",
		types.KeyCtrlDown:  "(down)",
		types.KeyCtrlHome:  "(top)",
		types.KeyCtrlEnd:   "(bottom)",

		types.KeyShiftUp:    "(select-up)",
		types.KeyShiftDown:  "(select-down)",
		types.KeyShiftLeft:  "(select-left)",
		types.KeyShiftRight: "(select-right)",
		types.KeyShiftHome:  "(select-home)",
		types.KeyShiftEnd:   "(select-end)",
		types.KeyShiftPgUp:  "(select-page-up)",
		types.KeyShiftPgDn:  "(select-page-down)",

		types.KeyShiftCtrlLeft:  "(select-word-left)",
		types.KeyShiftCtrlRight: "(select-word-right)",
		types.KeyShiftCtrlUp:    "(select-up)",
		types.KeyShiftCtrlDown:  "(select-down)",
		types.KeyShiftCtrlHome:  "(select-top)",
		types.KeyShiftCtrlEnd:   "(select-bottom)",

		types.KeyShiftTab: "(next-document)",
		types.KeyCtrlTab:  "(previous-document)",

		types.KeyEnter:     "(newline)",
		types.KeyBackspace: "(backspace)",
		types.KeyDel:       "(delete)",

		types.Ctrl('a'): "(select-all)",
		types.Ctrl('c'): "(copy)",
		types.Ctrl('x'): "(cut)",
		types.Ctrl('v'): "(paste)",
		types.Ctrl('z'): "(undo)",
		types.Ctrl('r'): "(redo)",
		types.Ctrl('f'): "(find)",
		types.Ctrl('g'): "(find-next)",
		types.Ctrl('l'): "(goto-line)",
		types.Ctrl('o'): "(open)",
		types.Ctrl('n'): "(new)",
		types.Ctrl('w'): "(close)",
		types.Ctrl('s'): "(save)",
		types.Ctrl('p'): "(pipe)",
		types.Ctrl('q'): "(quit)",
		types.Ctrl('e'): "(lisp)",

		types.KeyF1:     "(help)",
		types.Ctrl('y'): "(help)",
		types.KeyF3:     "(jump)",
		types.Ctrl('u'): "(jump)",
		types.KeyF5:     "(redraw)",
	}
}
