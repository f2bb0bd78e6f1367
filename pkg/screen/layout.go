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

package screen

import (
	"fmt"

	"github.com/timburks/gted/pkg/cursor"
)

// A Cell is one column of a laid out line.
type Cell struct {
	Ch       byte
	Selected bool
}

// Line lays out the line that starts at pos in a view cols wide whose
// first column is margin columns into the line. Tabs expand to the next
// multiple of cursor.TabWidth. Cells past the end of the line are blank,
// and they are selected when the line break itself is selected.
func Line(t cursor.Text, pos, margin, cols, selStart, selEnd int) []Cell {
	cells := make([]Cell, cols)
	for i := range cells {
		cells[i].Ch = ' '
	}
	selected := func(p int) bool {
		return p >= selStart && p < selEnd
	}
	col := 0
	maxcol := cols + margin
	put := func(ch byte, p int) {
		if col >= margin && col < maxcol {
			cells[col-margin] = Cell{Ch: ch, Selected: selected(p)}
		}
		col++
	}
	for col < maxcol {
		ch := t.ByteAt(pos)
		if ch < 0 || ch == '\r' || ch == '\n' {
			break
		}
		if ch == '\t' {
			for spaces := cursor.TabWidth - col%cursor.TabWidth; spaces > 0 && col < maxcol; spaces-- {
				put(' ', pos)
			}
		} else {
			put(byte(ch), pos)
		}
		pos++
	}
	if col < maxcol && selected(pos) {
		for i := max(col-margin, 0); i < cols; i++ {
			cells[i].Selected = true
		}
	}
	return cells
}

// Status formats the status line: the document name padded to fill the
// row, a dirty marker, then the line and column counting from 1.
func Status(name string, dirty bool, line, col, cols int) string {
	width := max(cols-19, 0)
	mark := ' '
	if dirty {
		mark = '*'
	}
	return fmt.Sprintf("%-*.*s%c Ln %-6dCol %-4d", width, width, name, mark, line, col)
}
