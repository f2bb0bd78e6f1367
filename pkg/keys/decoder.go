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

import (
	"errors"
	"io"

	"github.com/timburks/gted/pkg/types"
)

const (
	esc  = 0x1b
	csi  = '['
	ss3  = 'O'
	semi = ';'
)

// ErrInterrupted is returned by a byte source that was woken without
// input, for example by a terminal resize. The decoder keeps its state
// and reads again.
var ErrInterrupted = errors.New("read interrupted")

type state int

const (
	stateStart  state = iota
	stateEsc          // ESC
	stateSS3          // ESC O
	stateCSI          // ESC [
	stateCSIOne       // ESC [ 1
	stateCSISemi      // ESC [ 1 ;
	stateCSIMod       // ESC [ 1 ; m
	stateTilde        // ESC [ n, waiting for ~
	stateScan         // 0x00 or 0xE0
)

// modifier indexes the variant tables: plain, shift, ctrl, shift+ctrl.
type modifier int

const (
	modPlain modifier = iota
	modShift
	modCtrl
	modShiftCtrl
)

// A Decoder assembles keys from bytes. The zero value is ready to use.
type Decoder struct {
	state   state
	mod     modifier
	pending types.Key // key selected by a digit in ESC [ n ~
}

// Reset abandons any partially decoded sequence.
func (d *Decoder) Reset() {
	d.state = stateStart
	d.mod = modPlain
	d.pending = 0
}

// Pending reports whether the decoder is inside an escape sequence.
func (d *Decoder) Pending() bool {
	return d.state != stateStart
}

// Step consumes one byte. It returns the decoded key and true when a key
// is complete, or false when the next byte is needed.
func (d *Decoder) Step(b byte) (types.Key, bool) {
	switch d.state {
	case stateStart:
		return d.start(b)
	case stateEsc:
		switch b {
		case esc:
			return d.done(types.KeyEsc)
		case ss3:
			d.state = stateSS3
			return 0, false
		case csi:
			d.state = stateCSI
			return 0, false
		}
		return d.unknown()
	case stateSS3:
		if k, ok := ss3Keys[b]; ok {
			return d.done(k)
		}
		return d.unknown()
	case stateCSI:
		if b == '1' {
			d.state = stateCSIOne
			return 0, false
		}
		return d.csiFinal(b)
	case stateCSIOne:
		switch b {
		case '~':
			return d.done(types.KeyHome)
		case semi:
			d.state = stateCSISemi
			return 0, false
		}
		return d.unknown()
	case stateCSISemi:
		switch b {
		case '2':
			d.mod = modShift
		case '5':
			d.mod = modCtrl
		case '6':
			d.mod = modShiftCtrl
		default:
			if b < '0' || b > '9' {
				return d.unknown()
			}
			d.mod = modPlain
		}
		d.state = stateCSIMod
		return 0, false
	case stateCSIMod:
		if variants, ok := csiVariants[b]; ok {
			return d.done(variants[d.mod])
		}
		if b == 'Z' {
			return d.done(types.KeyShiftTab)
		}
		return d.unknown()
	case stateTilde:
		if b == '~' {
			return d.done(d.pending)
		}
		return d.unknown()
	case stateScan:
		if k, ok := scanKeys[b]; ok {
			return d.done(k)
		}
		return d.unknown()
	}
	return d.unknown()
}

func (d *Decoder) start(b byte) (types.Key, bool) {
	switch b {
	case 0x08, 0x7f:
		return types.KeyBackspace, true
	case 0x09:
		return types.KeyTab, true
	case 0x0d, 0x0a:
		return types.KeyEnter, true
	case esc:
		d.state = stateEsc
		return 0, false
	case 0x00, 0xe0:
		d.state = stateScan
		return 0, false
	}
	return types.Key(b), true
}

// csiFinal handles the byte after ESC [ when it is not the modifier lead-in.
func (d *Decoder) csiFinal(b byte) (types.Key, bool) {
	if k, ok := tildeKeys[b]; ok {
		d.pending = k
		d.state = stateTilde
		return 0, false
	}
	if variants, ok := csiVariants[b]; ok {
		return d.done(variants[modPlain])
	}
	if b == 'Z' {
		return d.done(types.KeyShiftTab)
	}
	return d.unknown()
}

func (d *Decoder) done(k types.Key) (types.Key, bool) {
	d.Reset()
	return k, true
}

func (d *Decoder) unknown() (types.Key, bool) {
	return d.done(types.KeyUnknown)
}

// Decode reads bytes from r until one key is complete. A read error at the
// start of a key yields KeyEOF; one in the middle of a sequence yields
// KeyUnknown, and the next call reports KeyEOF.
func (d *Decoder) Decode(r io.ByteReader) types.Key {
	d.Reset()
	for {
		b, err := r.ReadByte()
		if errors.Is(err, ErrInterrupted) {
			continue
		}
		if err != nil {
			if d.Pending() {
				d.Reset()
				return types.KeyUnknown
			}
			return types.KeyEOF
		}
		if k, ok := d.Step(b); ok {
			return k
		}
	}
}

// Decode reads one key from r with a fresh Decoder.
func Decode(r io.ByteReader) types.Key {
	var d Decoder
	return d.Decode(r)
}
