package mines

import (
	"iter"

	"github.com/sirupsen/logrus"
)

const (
	Rows       = 16
	Columns    = 16
	TotalBombs = 30
)

var Log = logrus.New()

// Board is a fully populated 16x16 grid. Only the visibility and flag state of
// its cells changes after construction.
//
// The per-cell accessors index the grid directly. Coordinates outside
// [0, 16) are a caller bug and panic with an index out of range fault.
type Board struct {
	grid [Rows][Columns]*Cell
}

// NewBoard generates a random board using a freshly seeded generator.
func NewBoard() *Board {
	return NewBoardWithRand(NewRand())
}

// NewBoardWithRand generates a random board drawing bomb positions from r.
func NewBoardWithRand(r Source) *Board {
	b := &Board{}
	// bombs first: the counts depend on their final positions
	b.addBombs(r)
	b.addNumbers()
	return b
}

func (b *Board) addBombs(r Source) {
	var draws, placed int
	for placed < TotalBombs {
		i := r.IntN(Rows * Columns)
		draws++
		x, y := i/Columns, i%Columns
		if b.grid[x][y] != nil {
			continue
		}
		b.grid[x][y] = &Cell{x: x, y: y, value: Bomb}
		placed++
	}
	Log.WithFields(logrus.Fields{
		"bombs":    placed,
		"draws":    draws,
		"rejected": draws - placed,
	}).Debug("placed bombs")
}

func (b *Board) addNumbers() {
	for x := range Rows {
		for y := range Columns {
			if b.grid[x][y] == nil {
				b.grid[x][y] = &Cell{x: x, y: y, value: b.surroundingBombs(x, y)}
			}
		}
	}
}

// NumSurroundingBombs counts the bombs among the up to 8 neighbours of
// (x, y). Positions that are not populated yet do not count.
func (b *Board) NumSurroundingBombs(x, y int) (int, error) {
	if x < 0 || y < 0 || x >= Rows || y >= Columns {
		return 0, invalidArgument("coordinates (%d, %d) out of range", x, y)
	}
	return b.surroundingBombs(x, y), nil
}

func (b *Board) surroundingBombs(x, y int) int {
	count := 0
	for i := x - 1; i <= x+1; i++ {
		for j := y - 1; j <= y+1; j++ {
			if (i == x && j == y) || i < 0 || j < 0 || i >= Rows || j >= Columns {
				continue
			}
			if c := b.grid[i][j]; c != nil && c.value == Bomb {
				count++
			}
		}
	}
	return count
}

func (b *Board) IsBomb(x, y int) bool {
	return b.grid[x][y].value == Bomb
}

func (b *Board) NumOfCell(x, y int) int {
	return b.grid[x][y].value
}

func (b *Board) Visible(x, y int) bool {
	return b.grid[x][y].visible
}

func (b *Board) SetVisible(x, y int, visible bool) {
	b.grid[x][y].SetVisible(visible)
}

func (b *Board) Flagged(x, y int) bool {
	return b.grid[x][y].flagged
}

func (b *Board) SetFlagged(x, y int, flagged bool) {
	b.grid[x][y].SetFlagged(flagged)
}

// Cell returns a copy of the cell at (x, y).
func (b *Board) Cell(x, y int) Cell {
	return *b.grid[x][y]
}

// Cells yields copies of every cell in row-major order.
func (b *Board) Cells() iter.Seq[Cell] {
	return func(yield func(Cell) bool) {
		for x := range Rows {
			for y := range Columns {
				if !yield(*b.grid[x][y]) {
					return
				}
			}
		}
	}
}

// Bombs returns the number of mined cells. It is always [TotalBombs] for a
// generated board; a parsed snapshot may hold any number.
func (b *Board) Bombs() int {
	n := 0
	for c := range b.Cells() {
		if c.IsBomb() {
			n++
		}
	}
	return n
}
