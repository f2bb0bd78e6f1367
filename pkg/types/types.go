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

// Package types holds the small values shared by the gted packages.
package types

import "fmt"

// A Key is a logical key read from the terminal.
// Values below 0x100 are bytes passed through unchanged.
type Key int

// Named keys
const (
	KeyBackspace Key = 0x101 + iota
	KeyEsc
	KeyIns
	KeyDel
	KeyLeft
	KeyRight
	KeyUp
	KeyDown
	KeyHome
	KeyEnd
	KeyEnter
	KeyTab
	KeyPgUp
	KeyPgDn

	KeyCtrlLeft
	KeyCtrlRight
	KeyCtrlUp
	KeyCtrlDown
	KeyCtrlHome
	KeyCtrlEnd
	KeyCtrlTab

	KeyShiftLeft
	KeyShiftRight
	KeyShiftUp
	KeyShiftDown
	KeyShiftPgUp
	KeyShiftPgDn
	KeyShiftHome
	KeyShiftEnd
	KeyShiftTab

	KeyShiftCtrlLeft
	KeyShiftCtrlRight
	KeyShiftCtrlUp
	KeyShiftCtrlDown
	KeyShiftCtrlHome
	KeyShiftCtrlEnd

	KeyF1
	KeyF3
	KeyF5
)

// Sentinels
const (
	KeyUnknown Key = 0xFFF
	KeyEOF     Key = -1
)

// Ctrl returns the control key produced by holding Ctrl with a letter.
func Ctrl(c byte) Key {
	return Key(c & 0x1f)
}

// IsPrintable reports whether k is a byte that inserts itself.
func (k Key) IsPrintable() bool {
	return k >= ' ' && k <= 0x7e
}

var keyNames = map[Key]string{
	KeyBackspace:      "Backspace",
	KeyEsc:            "Esc",
	KeyIns:            "Ins",
	KeyDel:            "Del",
	KeyLeft:           "Left",
	KeyRight:          "Right",
	KeyUp:             "Up",
	KeyDown:           "Down",
	KeyHome:           "Home",
	KeyEnd:            "End",
	KeyEnter:          "Enter",
	KeyTab:            "Tab",
	KeyPgUp:           "PgUp",
	KeyPgDn:           "PgDn",
	KeyCtrlLeft:       "Ctrl+Left",
	KeyCtrlRight:      "Ctrl+Right",
	KeyCtrlUp:         "Ctrl+Up",
	KeyCtrlDown:       "Ctrl+Down",
	KeyCtrlHome:       "Ctrl+Home",
	KeyCtrlEnd:        "Ctrl+End",
	KeyCtrlTab:        "Ctrl+Tab",
	KeyShiftLeft:      "Shift+Left",
	KeyShiftRight:     "Shift+Right",
	KeyShiftUp:        "Shift+Up",
	KeyShiftDown:      "Shift+Down",
	KeyShiftPgUp:      "Shift+PgUp",
	KeyShiftPgDn:      "Shift+PgDn",
	KeyShiftHome:      "Shift+Home",
	KeyShiftEnd:       "Shift+End",
	KeyShiftTab:       "Shift+Tab",
	KeyShiftCtrlLeft:  "Shift+Ctrl+Left",
	KeyShiftCtrlRight: "Shift+Ctrl+Right",
	KeyShiftCtrlUp:    "Shift+Ctrl+Up",
	KeyShiftCtrlDown:  "Shift+Ctrl+Down",
	KeyShiftCtrlHome:  "Shift+Ctrl+Home",
	KeyShiftCtrlEnd:   "Shift+Ctrl+End",
	KeyF1:             "F1",
	KeyF3:             "F3",
	KeyF5:             "F5",
	KeyUnknown:        "Unknown",
	KeyEOF:            "EOF",
}

func (k Key) String() string {
	if name, ok := keyNames[k]; ok {
		return name
	}
	if k.IsPrintable() {
		return string(rune(k))
	}
	if k >= 0 && k < ' ' {
		return "Ctrl+" + string(rune(k+'@'))
	}
	return fmt.Sprintf("0x%X", int(k))
}

// A Size is a number of rows and columns on the screen.
type Size struct {
	Rows int
	Cols int
}

// A Message is shown on the bottom line instead of the status.
// While prompting, Cursor is the column of the input cursor; otherwise it is -1.
type Message struct {
	Text   string
	Cursor int
}
