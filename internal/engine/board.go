package engine

import "strings"

// Axis is one of the four directions scanned for a winning run.
type Axis struct {
	DRow, DCol int
}

// Axes lists horizontal, vertical, diagonal-down and diagonal-up.
var Axes = [4]Axis{
	{DRow: 0, DCol: 1},
	{DRow: 1, DCol: 0},
	{DRow: 1, DCol: 1},
	{DRow: 1, DCol: -1},
}

// Board is a fixed-size grid of colored cells.
// A cell, once set, stays set until the board is replaced.
type Board struct {
	rows  int
	cols  int
	cells []Color
}

// NewBoard allocates an empty rows×cols board.
func NewBoard(rows, cols int) *Board {
	return &Board{
		rows:  rows,
		cols:  cols,
		cells: make([]Color, rows*cols),
	}
}

// Rows returns the number of rows.
func (b *Board) Rows() int {
	return b.rows
}

// Cols returns the number of columns.
func (b *Board) Cols() int {
	return b.cols
}

// InBounds reports whether (row, col) addresses a cell.
func (b *Board) InBounds(row, col int) bool {
	return row >= 0 && row < b.rows && col >= 0 && col < b.cols
}

// At returns the color at (row, col), or NoColor if empty or out of bounds.
func (b *Board) At(row, col int) Color {
	if !b.InBounds(row, col) {
		return NoColor
	}
	return b.cells[row*b.cols+col]
}

// Empty reports whether (row, col) is inside the board and unoccupied.
func (b *Board) Empty(row, col int) bool {
	return b.InBounds(row, col) && b.cells[row*b.cols+col] == NoColor
}

// place writes c into an empty in-bounds cell. It returns false and leaves
// the board untouched otherwise.
func (b *Board) place(row, col int, c Color) bool {
	if !b.Empty(row, col) || c == NoColor {
		return false
	}
	b.cells[row*b.cols+col] = c
	return true
}

// Full reports whether every cell is occupied.
func (b *Board) Full() bool {
	for _, c := range b.cells {
		if c == NoColor {
			return false
		}
	}
	return true
}

// Filled returns the number of occupied cells.
func (b *Board) Filled() int {
	n := 0
	for _, c := range b.cells {
		if c != NoColor {
			n++
		}
	}
	return n
}

// count walks from (row, col) in direction (dr, dc), excluding the start
// cell, and returns how many consecutive cells hold c.
func (b *Board) count(row, col, dr, dc int, c Color) int {
	n := 0
	r, k := row+dr, col+dc
	for b.InBounds(r, k) && b.cells[r*b.cols+k] == c {
		n++
		r += dr
		k += dc
	}
	return n
}

// RunLength returns the length of the same-color run through (row, col)
// along axis a. An empty cell has run length 0.
func (b *Board) RunLength(row, col int, a Axis) int {
	c := b.At(row, col)
	if c == NoColor {
		return 0
	}
	return 1 + b.count(row, col, a.DRow, a.DCol, c) + b.count(row, col, -a.DRow, -a.DCol, c)
}

// WinsAt reports whether the disc at (row, col) completes a run of at least
// length on any axis. Scanning stops at the first qualifying axis.
func (b *Board) WinsAt(row, col, length int) bool {
	for _, a := range Axes {
		if b.RunLength(row, col, a) >= length {
			return true
		}
	}
	return false
}

// Clone returns an independent copy.
func (b *Board) Clone() *Board {
	return &Board{
		rows:  b.rows,
		cols:  b.cols,
		cells: append([]Color(nil), b.cells...),
	}
}

// Grid returns the cells as a fresh row-major [][]Color.
func (b *Board) Grid() [][]Color {
	grid := make([][]Color, b.rows)
	for r := range grid {
		grid[r] = append([]Color(nil), b.cells[r*b.cols:(r+1)*b.cols]...)
	}
	return grid
}

// String renders the board with the first letter of each color, '.' for
// empty cells. Handy in test failures.
func (b *Board) String() string {
	var sb strings.Builder
	for r := 0; r < b.rows; r++ {
		if r > 0 {
			sb.WriteByte('\n')
		}
		for k := 0; k < b.cols; k++ {
			c := b.cells[r*b.cols+k]
			if c == NoColor {
				sb.WriteByte('.')
				continue
			}
			sb.WriteString(strings.ToUpper(string(c[0])))
		}
	}
	return sb.String()
}
