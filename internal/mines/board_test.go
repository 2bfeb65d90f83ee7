package mines

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func recount(b *Board, x, y int) int {
	count := 0
	for dx := -1; dx <= 1; dx++ {
		for dy := -1; dy <= 1; dy++ {
			i, j := x+dx, y+dy
			if (dx != 0 || dy != 0) && 0 <= i && i < Rows && 0 <= j && j < Columns &&
				b.NumOfCell(i, j) == Bomb {
				count++
			}
		}
	}
	return count
}

func TestRandomBoards(t *testing.T) {
	for seed := range uint64(50) {
		b := NewBoardWithRand(rand.New(rand.NewPCG(seed, 2)))

		bombs := 0
		for x := range Rows {
			for y := range Columns {
				c := b.Cell(x, y)
				require.Equal(t, x, c.X())
				require.Equal(t, y, c.Y())
				if b.IsBomb(x, y) {
					bombs++
					continue
				}
				require.GreaterOrEqual(t, b.NumOfCell(x, y), 0)
				require.LessOrEqual(t, b.NumOfCell(x, y), 8)
				require.Equal(t, recount(b, x, y), b.NumOfCell(x, y), "seed %d @ %d:%d", seed, x, y)
			}
		}
		require.Equal(t, TotalBombs, bombs, "seed %d", seed)
		require.Equal(t, TotalBombs, b.Bombs())
	}
}

func TestNewBoard(t *testing.T) {
	b := NewBoard()
	assert.Equal(t, TotalBombs, b.Bombs())
	for c := range b.Cells() {
		assert.False(t, c.Visible())
		assert.False(t, c.Flagged())
	}
}

func TestSeededBoardsRepeat(t *testing.T) {
	a := NewBoardWithRand(rand.New(rand.NewPCG(1, 2)))
	b := NewBoardWithRand(rand.New(rand.NewPCG(1, 2)))
	assert.Equal(t, a.String(), b.String())
}

func TestBombPlacementRejectsDuplicates(t *testing.T) {
	var draws []int
	for i := range TotalBombs {
		draws = append(draws, i, i)
	}
	src := &scriptedSource{draws: draws}

	b := NewBoardWithRand(src)

	assert.Equal(t, 2*TotalBombs-1, src.calls)
	for i := range Rows * Columns {
		assert.Equal(t, i < TotalBombs, b.IsBomb(i/Columns, i%Columns), "index %d", i)
	}
	assert.Equal(t, 2, b.NumOfCell(2, 0))
	assert.Equal(t, 4, b.NumOfCell(1, 14))
	assert.Equal(t, 2, b.NumOfCell(1, 15))
	assert.Equal(t, 0, b.NumOfCell(3, 0))
}

func TestNumSurroundingBombsCorners(t *testing.T) {
	t.Run("top left neighbours", func(t *testing.T) {
		b, err := ParseBoard(snapshotWithBombs([2]int{0, 1}, [2]int{1, 0}, [2]int{1, 1}))
		require.NoError(t, err)
		n, err := b.NumSurroundingBombs(0, 0)
		require.NoError(t, err)
		assert.Equal(t, 3, n)
	})

	t.Run("bottom right neighbours", func(t *testing.T) {
		b, err := ParseBoard(snapshotWithBombs([2]int{14, 14}, [2]int{14, 15}, [2]int{15, 14}))
		require.NoError(t, err)
		n, err := b.NumSurroundingBombs(15, 15)
		require.NoError(t, err)
		assert.Equal(t, 3, n)
	})

	t.Run("corners ignore everything else", func(t *testing.T) {
		var bombs [][2]int
		for x := range Rows {
			for y := range Columns {
				if (x > 1 || y > 1) && (x < 14 || y < 14) {
					bombs = append(bombs, [2]int{x, y})
				}
			}
		}
		b, err := ParseBoard(snapshotWithBombs(bombs...))
		require.NoError(t, err)

		n, err := b.NumSurroundingBombs(0, 0)
		require.NoError(t, err)
		assert.Equal(t, 0, n)

		n, err = b.NumSurroundingBombs(15, 15)
		require.NoError(t, err)
		assert.Equal(t, 0, n)
	})

	t.Run("edge", func(t *testing.T) {
		b, err := ParseBoard(snapshotWithBombs([2]int{0, 4}, [2]int{0, 6}, [2]int{1, 5}, [2]int{2, 5}))
		require.NoError(t, err)
		n, err := b.NumSurroundingBombs(0, 5)
		require.NoError(t, err)
		assert.Equal(t, 3, n)
	})
}

func TestNumSurroundingBombsCountsSelfOut(t *testing.T) {
	b, err := ParseBoard(snapshotWithBombs([2]int{7, 7}))
	require.NoError(t, err)
	n, err := b.NumSurroundingBombs(7, 7)
	require.NoError(t, err)
	assert.Equal(t, 0, n)
}

func TestNumSurroundingBombsOutOfRange(t *testing.T) {
	b := NewBoardWithRand(rand.New(rand.NewPCG(1, 2)))
	for _, p := range [][2]int{{-1, 0}, {0, -1}, {16, 0}, {0, 16}} {
		_, err := b.NumSurroundingBombs(p[0], p[1])
		assert.ErrorIs(t, err, ErrInvalidArgument, "%v", p)
	}
}

func TestNumSurroundingBombsSkipsUnpopulated(t *testing.T) {
	b := &Board{}
	b.grid[0][0] = &Cell{x: 0, y: 0, value: Bomb}
	n, err := b.NumSurroundingBombs(1, 1)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestVisibilityAndFlags(t *testing.T) {
	b := NewBoardWithRand(rand.New(rand.NewPCG(3, 4)))

	b.SetVisible(4, 5, true)
	b.SetFlagged(15, 0, true)

	assert.True(t, b.Visible(4, 5))
	assert.False(t, b.Flagged(4, 5))
	assert.True(t, b.Flagged(15, 0))
	assert.False(t, b.Visible(15, 0))

	// copies do not alias the board's cells
	c := b.Cell(4, 5)
	c.SetVisible(false)
	assert.True(t, b.Visible(4, 5))

	b.SetFlagged(15, 0, false)
	assert.False(t, b.Flagged(15, 0))
}

func TestUncheckedAccessPanics(t *testing.T) {
	b := NewBoardWithRand(rand.New(rand.NewPCG(1, 2)))
	assert.Panics(t, func() { b.IsBomb(16, 0) })
	assert.Panics(t, func() { b.NumOfCell(0, 16) })
	assert.Panics(t, func() { b.Visible(-1, 0) })
	assert.Panics(t, func() { b.SetFlagged(0, -1, true) })
}
