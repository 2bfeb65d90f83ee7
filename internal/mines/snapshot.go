package mines

import (
	"fmt"
	"io"
	"strconv"
	"strings"
)

// SnapshotLength is the number of digits in the compact snapshot form.
const SnapshotLength = Rows * Columns

var lineBreaks = strings.NewReplacer("\n", "", "\r", "")

// ParseBoard decodes the compact snapshot form: exactly 256 digits, row-major,
// 9 for a bomb. The digits are trusted as they are; neither the counts nor the
// number of bombs are checked. All cells start hidden and unflagged.
//
// A wrong length (including the empty string) fails with
// [ErrInvalidArgument]; a character that is not a digit fails with the
// underlying [strconv.NumError].
func ParseBoard(s string) (*Board, error) {
	if len(s) != SnapshotLength {
		return nil, invalidArgument(
			"snapshot must be %d characters long, got %d", SnapshotLength, len(s),
		)
	}
	b := &Board{}
	for i := range SnapshotLength {
		v, err := strconv.Atoi(s[i : i+1])
		if err != nil {
			return nil, fmt.Errorf("unable to parse cell %d: %w", i, err)
		}
		c, err := NewCell(i/Columns, i%Columns, v)
		if err != nil {
			return nil, err
		}
		b.grid[i/Columns][i%Columns] = c
	}
	return b, nil
}

// ReadBoard reads a snapshot from r. Line breaks are dropped first, so both
// the compact form and the output of [Board.String] are accepted.
func ReadBoard(r io.Reader) (*Board, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("unable to read snapshot: %w", err)
	}
	return ParseBoard(lineBreaks.Replace(string(data)))
}

// String renders the values as 16 newline-terminated lines of 16 digits.
func (b *Board) String() string {
	var sb strings.Builder
	sb.Grow(SnapshotLength + Rows)
	for x := range Rows {
		for y := range Columns {
			sb.WriteByte(byte('0' + b.grid[x][y].value))
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// Snapshot returns the compact 256-digit form accepted by [ParseBoard].
func (b *Board) Snapshot() string {
	return lineBreaks.Replace(b.String())
}

// [Board] implements [encoding.TextMarshaler]
func (b *Board) MarshalText() ([]byte, error) {
	return []byte(b.String()), nil
}

// [Board] implements [encoding.TextUnmarshaler]
func (b *Board) UnmarshalText(text []byte) error {
	parsed, err := ReadBoard(strings.NewReader(string(text)))
	if err != nil {
		return err
	}
	*b = *parsed
	return nil
}
