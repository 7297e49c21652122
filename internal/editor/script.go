package editor

import (
	"io"
	"strings"

	"github.com/mattn/go-runewidth"
)

// wideTail fills the second cell of a double-width character.
const wideTail = rune(0)

// Grid is an in-memory Canvas. Text printed past the right edge or below the
// bottom row is dropped. Double-width characters take two cells.
type Grid struct {
	rows  int
	cols  int
	cells [][]rune
}

// NewGrid returns a blank grid of the given size.
func NewGrid(rows, cols int) *Grid {
	g := &Grid{rows: rows, cols: cols}
	g.Clear()
	return g
}

// Clear blanks every cell.
func (g *Grid) Clear() {
	g.cells = make([][]rune, g.rows)
	for i := range g.cells {
		line := make([]rune, g.cols)
		for j := range line {
			line[j] = ' '
		}
		g.cells[i] = line
	}
}

// Print writes text from (row, col), clipping at the right edge. Wide
// runes take two cells.
func (g *Grid) Print(row, col int, text string) {
	if row < 0 || row >= g.rows {
		return
	}
	for _, r := range text {
		w := runewidth.RuneWidth(r)
		if w < 1 {
			w = 1
		}
		if col+w > g.cols {
			return
		}
		if col >= 0 {
			g.cells[row][col] = r
			if w == 2 {
				g.cells[row][col+1] = wideTail
			}
		}
		col += w
	}
}

// Size returns the grid's rows and columns.
func (g *Grid) Size() (int, int) {
	return g.rows, g.cols
}

// Lines returns each row with trailing blanks removed.
func (g *Grid) Lines() []string {
	out := make([]string, len(g.cells))
	for i, line := range g.cells {
		var b strings.Builder
		for _, r := range line {
			if r != wideTail {
				b.WriteRune(r)
			}
		}
		out[i] = strings.TrimRight(b.String(), " ")
	}
	return out
}

func (g *Grid) String() string {
	return strings.Join(g.Lines(), "\n")
}

// ScriptTerminal replays a fixed list of keys against a Grid. PollEvent
// returns io.EOF once the keys run out. Every presented screen is kept.
type ScriptTerminal struct {
	*Grid
	keys    []Key
	next    int
	screens []string
}

// NewScriptTerminal returns a terminal of the given size that will deliver keys.
func NewScriptTerminal(rows, cols int, keys []Key) *ScriptTerminal {
	return &ScriptTerminal{Grid: NewGrid(rows, cols), keys: keys}
}

// PollEvent returns the next scripted key, or io.EOF once they run out.
func (s *ScriptTerminal) PollEvent() (Key, error) {
	if s.next >= len(s.keys) {
		return Key{}, io.EOF
	}
	k := s.keys[s.next]
	s.next++
	return k, nil
}

// Present records the current grid as a screen.
func (s *ScriptTerminal) Present() error {
	s.screens = append(s.screens, s.Grid.String())
	return nil
}

// Screens returns every presented screen in order.
func (s *ScriptTerminal) Screens() []string {
	return append([]string(nil), s.screens...)
}

// Remaining reports how many keys have not been delivered.
func (s *ScriptTerminal) Remaining() int {
	return len(s.keys) - s.next
}
