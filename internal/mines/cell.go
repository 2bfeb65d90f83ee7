package mines

import "strconv"

const (
	// Bomb is the value stored in a mined cell; 0 to 8 count mined neighbours.
	Bomb = 9

	maxCoord = 15
)

type Cell struct {
	x, y    int
	value   int
	visible bool
	flagged bool
}

// NewCell creates a hidden, unflagged cell. x and y must be in [0, 15] and
// value in [0, 9], otherwise [ErrInvalidArgument] is returned.
func NewCell(x, y, value int) (*Cell, error) {
	if x < 0 || y < 0 || x > maxCoord || y > maxCoord {
		return nil, invalidArgument("cell coordinates (%d, %d) out of range", x, y)
	}
	if value < 0 || value > Bomb {
		return nil, invalidArgument("cell value %d out of range", value)
	}
	return &Cell{x: x, y: y, value: value}, nil
}

func (c Cell) X() int { return c.x }

func (c Cell) Y() int { return c.y }

func (c Cell) Value() int { return c.value }

func (c Cell) IsBomb() bool { return c.value == Bomb }

func (c Cell) Visible() bool { return c.visible }

func (c Cell) Flagged() bool { return c.flagged }

func (c *Cell) SetVisible(visible bool) {
	c.visible = visible
}

func (c *Cell) SetFlagged(flagged bool) {
	c.flagged = flagged
}

// [Cell] implements [fmt.Stringer]
func (c Cell) String() string {
	return strconv.Itoa(c.value)
}
