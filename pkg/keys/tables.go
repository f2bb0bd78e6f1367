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

package keys

import "github.com/timburks/gted/pkg/types"

// csiVariants maps CSI terminators to their plain, shift, ctrl and
// shift+ctrl keys.
var csiVariants = map[byte][4]types.Key{
	'A': {types.KeyUp, types.KeyShiftUp, types.KeyCtrlUp, types.KeyShiftCtrlUp},
	'B': {types.KeyDown, types.KeyShiftDown, types.KeyCtrlDown, types.KeyShiftCtrlDown},
	'C': {types.KeyRight, types.KeyShiftRight, types.KeyCtrlRight, types.KeyShiftCtrlRight},
	'D': {types.KeyLeft, types.KeyShiftLeft, types.KeyCtrlLeft, types.KeyShiftCtrlLeft},
	'F': {types.KeyEnd, types.KeyShiftEnd, types.KeyCtrlEnd, types.KeyShiftCtrlEnd},
	'H': {types.KeyHome, types.KeyShiftHome, types.KeyCtrlHome, types.KeyShiftCtrlHome},
}

// tildeKeys maps the digit of ESC [ n ~.
var tildeKeys = map[byte]types.Key{
	'2': types.KeyIns,
	'3': types.KeyDel,
	'4': types.KeyEnd,
	'5': types.KeyPgUp,
	'6': types.KeyPgDn,
}

var ss3Keys = map[byte]types.Key{
	'A': types.KeyUp,
	'B': types.KeyDown,
	'C': types.KeyRight,
	'D': types.KeyLeft,
	'F': types.KeyEnd,
	'H': types.KeyHome,
	'P': types.KeyF1,
	'R': types.KeyF3,
	'T': types.KeyF5,
}

// scanKeys maps the byte after a 0x00 or 0xE0 prefix. The high codes are
// the shifted and shift+ctrl variants.
var scanKeys = map[byte]types.Key{
	0x0f: types.KeyShiftTab,
	0x3b: types.KeyF1,
	0x3d: types.KeyF3,
	0x3f: types.KeyF5,
	0x47: types.KeyHome,
	0x48: types.KeyUp,
	0x49: types.KeyPgUp,
	0x4b: types.KeyLeft,
	0x4d: types.KeyRight,
	0x4f: types.KeyEnd,
	0x50: types.KeyDown,
	0x51: types.KeyPgDn,
	0x52: types.KeyIns,
	0x53: types.KeyDel,
	0x73: types.KeyCtrlLeft,
	0x74: types.KeyCtrlRight,
	0x75: types.KeyCtrlEnd,
	0x77: types.KeyCtrlHome,
	0x8d: types.KeyCtrlUp,
	0x91: types.KeyCtrlDown,
	0x94: types.KeyCtrlTab,
	0xb7: types.KeyShiftHome,
	0xb8: types.KeyShiftUp,
	0xb9: types.KeyShiftPgUp,
	0xbb: types.KeyShiftLeft,
	0xbd: types.KeyShiftRight,
	0xbf: types.KeyShiftEnd,
	0xc0: types.KeyShiftDown,
	0xc1: types.KeyShiftPgDn,
	0xd7: types.KeyShiftCtrlHome,
	0xd8: types.KeyShiftCtrlUp,
	0xdb: types.KeyShiftCtrlLeft,
	0xdd: types.KeyShiftCtrlRight,
	0xdf: types.KeyShiftCtrlEnd,
	0xe0: types.KeyShiftCtrlDown,
}
