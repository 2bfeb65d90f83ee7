package mines

import (
	"iter"
	"slices"
	"strings"
)

// MoveLog is an append-only history of moves with undo of the latest one.
// The zero value is an empty log.
type MoveLog struct {
	moves []Move
}

func (l *MoveLog) Push(m Move) {
	l.moves = append(l.moves, m)
}

// Pop removes and returns the latest move.
func (l *MoveLog) Pop() (Move, bool) {
	if len(l.moves) == 0 {
		return Move{}, false
	}
	m := l.moves[len(l.moves)-1]
	l.moves = l.moves[:len(l.moves)-1]
	return m, true
}

func (l *MoveLog) Last() (Move, bool) {
	if len(l.moves) == 0 {
		return Move{}, false
	}
	return l.moves[len(l.moves)-1], true
}

func (l *MoveLog) Len() int {
	return len(l.moves)
}

func (l *MoveLog) Moves() []Move {
	return slices.Clone(l.moves)
}

func (l *MoveLog) All() iter.Seq2[int, Move] {
	return slices.All(l.moves)
}

func (l *MoveLog) String() string {
	var b strings.Builder
	for _, m := range l.moves {
		b.WriteString(m.String())
		b.WriteByte('\n')
	}
	return b.String()
}
