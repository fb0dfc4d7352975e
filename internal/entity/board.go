package entity

import "strings"

// Size is the length of a board side.
const Size = 3

// WinLines lists every line of three cells as (row, col) pairs, in the order
// they are checked: rows and columns interleaved by index, then both diagonals.
var WinLines = [8][3][2]int{
	{{0, 0}, {0, 1}, {0, 2}},
	{{0, 0}, {1, 0}, {2, 0}},
	{{1, 0}, {1, 1}, {1, 2}},
	{{0, 1}, {1, 1}, {2, 1}},
	{{2, 0}, {2, 1}, {2, 2}},
	{{0, 2}, {1, 2}, {2, 2}},
	{{0, 0}, {1, 1}, {2, 2}},
	{{0, 2}, {1, 1}, {2, 0}},
}

// Board is a row-major 3x3 grid. It is a value type: assigning a Board copies it.
type Board [Size][Size]Mark

// InBounds reports whether row and col address a cell of the board.
func InBounds(row, col int) bool {
	return row >= 0 && row < Size && col >= 0 && col < Size
}

// Count returns the number of non-empty cells.
func (that Board) Count() int {
	count := 0
	for _, row := range that {
		for _, cell := range row {
			if !cell.IsEmpty() {
				count++
			}
		}
	}

	return count
}

// Winner returns the mark of the first aligned line in WinLines order, or MarkNone.
func (that Board) Winner() Mark {
	for _, line := range WinLines {
		a := that[line[0][0]][line[0][1]]
		b := that[line[1][0]][line[1][1]]
		c := that[line[2][0]][line[2][1]]

		if !a.IsEmpty() && a == b && b == c {
			return a
		}
	}

	return MarkNone
}

// IsFull reports whether every cell holds a mark.
func (that Board) IsFull() bool {
	return that.Count() == Size*Size
}

// String renders the board as text:
//
//	 X | O | X
//	-----------
//	   | X |
//	-----------
//	 O |   | O
func (that Board) String() string {
	rows := make([]string, 0, Size)
	for _, row := range that {
		cells := make([]string, 0, Size)
		for _, cell := range row {
			cells = append(cells, cell.String())
		}
		rows = append(rows, " "+strings.Join(cells, " | "))
	}

	return strings.Join(rows, "\n-----------\n")
}
