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

// Package keys turns the raw byte stream of a terminal into logical keys.
// Two escape families are understood: CSI/SS3 sequences beginning with
// ESC [ or ESC O, with an optional xterm modifier clause (ESC [ 1 ; m X),
// and the two-byte scan codes (0x00 or 0xE0 followed by a code) that
// some consoles send. The decoder is a step function: it consumes one
// byte at a time and reports either a finished key or that it needs
// another byte. It never asks for more than five bytes after ESC.
package keys
