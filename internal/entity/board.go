package entity

import (
	"strings"
)

type Mark string

const (
	MarkX     Mark = "X"
	MarkO     Mark = "O"
	MarkDraw  Mark = "-"
	MarkEmpty Mark = ""
)

const (
	BoardSide = 3
	BoardSize = BoardSide * BoardSide
)

// WinCombos - rows, then columns, then diagonals. The scan order is part of the contract.
var WinCombos = [8][3]int{
	{0, 1, 2},
	{3, 4, 5},
	{6, 7, 8},
	{0, 3, 6},
	{1, 4, 7},
	{2, 5, 8},
	{0, 4, 8},
	{2, 4, 6},
}

// Board - 3x3 grid, cell (x, y) lives at index y*3+x.
type Board [BoardSize]Mark

// CellIndex - converts column x and row y into a board index.
func CellIndex(x, y int) int {
	return y*BoardSide + x
}

// InBounds - reports whether (x, y) addresses a cell of the board.
func InBounds(x, y int) bool {
	return x >= 0 && x < BoardSide && y >= 0 && y < BoardSide
}

// Get - callers must validate x and y with InBounds first.
func (that *Board) Get(x, y int) Mark {
	return that[CellIndex(x, y)]
}

func (that *Board) Set(x, y int, mark Mark) {
	that[CellIndex(x, y)] = mark
}

// WinningMark - returns the mark of the first fully occupied triple, or MarkEmpty.
func (that *Board) WinningMark() Mark {
	for _, combo := range WinCombos {
		a, b, c := that[combo[0]], that[combo[1]], that[combo[2]]
		if a != MarkEmpty && a == b && b == c {
			return a
		}
	}

	return MarkEmpty
}

// DetermineResult - winning mark, MarkDraw for a full board without a winner, MarkEmpty otherwise.
func (that *Board) DetermineResult() Mark {
	if winner := that.WinningMark(); winner != MarkEmpty {
		return winner
	}

	// the game continues until all the squares are full
	if !that.Full() {
		return MarkEmpty
	}

	return MarkDraw
}

func (that *Board) Full() bool {
	for _, cell := range that {
		if cell == MarkEmpty {
			return false
		}
	}

	return true
}

func (that *Board) EmptyCells() []int {
	cells := make([]int, 0, BoardSize)
	for i, cell := range that {
		if cell == MarkEmpty {
			cells = append(cells, i)
		}
	}

	return cells
}

// Count - number of cells holding mark.
func (that *Board) Count(mark Mark) int {
	n := 0
	for _, cell := range that {
		if cell == mark {
			n++
		}
	}

	return n
}

func (that *Board) String() string {
	cells := make([]string, 0, BoardSize)
	for _, cell := range that {
		cells = append(cells, string(cell))
	}

	return strings.Join(cells, " | ")
}

// Opposite - the other player's mark.
func (m Mark) Opposite() Mark {
	switch m {
	case MarkX:
		return MarkO
	case MarkO:
		return MarkX
	default:
		return MarkEmpty
	}
}
