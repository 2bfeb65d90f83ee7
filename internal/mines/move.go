package mines

import (
	"fmt"
	"strconv"
	"strings"
)

type MoveType uint8

const (
	Reveal MoveType = iota
	Flag
	Unflag
	lastMoveType
)

var moveTypeNames = [...]string{
	Reveal: "reveal",
	Flag:   "flag",
	Unflag: "unflag",
}

func (t MoveType) String() string {
	if t < lastMoveType {
		return moveTypeNames[t]
	}
	return "MoveType(" + strconv.Itoa(int(t)) + ")"
}

func (t MoveType) Valid() bool {
	return t < lastMoveType
}

// ParseMoveType accepts a move type name in any case or its number.
func ParseMoveType(s string) (MoveType, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for t, name := range moveTypeNames {
		if s == name || s == strconv.Itoa(t) {
			return MoveType(t), nil
		}
	}
	return 0, invalidArgument(
		"move type %q must be one of %s or 0-%d",
		s, strings.Join(moveTypeNames[:], ", "), lastMoveType-1,
	)
}

// Move records one player action. The board never stores moves; they exist
// for the caller's own history.
type Move struct {
	x, y int
	t    MoveType
}

func NewMove(x, y int, t MoveType) (Move, error) {
	if x < 0 || y < 0 || x > maxCoord || y > maxCoord {
		return Move{}, invalidArgument("move coordinates (%d, %d) out of range", x, y)
	}
	if !t.Valid() {
		return Move{}, invalidArgument("move type %d out of range", t)
	}
	return Move{x: x, y: y, t: t}, nil
}

func (m Move) X() int { return m.x }

func (m Move) Y() int { return m.y }

func (m Move) Type() MoveType { return m.t }

func (m Move) String() string {
	return fmt.Sprintf("Move Type: %d on (%d, %d)", int(m.t), m.x, m.y)
}

// ParseMove reads a move back from its [Move.String] form.
func ParseMove(s string) (Move, error) {
	s = strings.TrimSpace(s)
	var x, y, t int
	n, err := fmt.Sscanf(s, "Move Type: %d on (%d, %d)", &t, &x, &y)
	if n != 3 || err != nil {
		return Move{}, invalidArgument("malformed move %q", s)
	}
	if t < 0 || t >= int(lastMoveType) {
		return Move{}, invalidArgument("move type %d out of range", t)
	}
	m, err := NewMove(x, y, MoveType(t))
	if err != nil {
		return Move{}, err
	}
	if m.String() != s {
		return Move{}, invalidArgument("malformed move %q", s)
	}
	return m, nil
}
