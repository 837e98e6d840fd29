package chess

import (
	"fmt"
	"strings"
)

const (
	columnValues = "abcdefgh"
	rowValues    = "12345678"
)

// Location is one of the 64 squares, stored as row*8+column.
// Row 0 is rank 1 and column 0 is the a-file.
type Location uint8

// AlgebraicToNum converts "b4" into its (row, column) pair, (3, 1).
func AlgebraicToNum(alg string) (int, int, error) {
	if len(alg) != 2 {
		return 0, 0, fmt.Errorf("%w: %q", ErrInvalidLocation, alg)
	}
	col := strings.IndexByte(columnValues, alg[0])
	row := strings.IndexByte(rowValues, alg[1])
	if row < 0 || col < 0 {
		return 0, 0, fmt.Errorf("%w: %q", ErrInvalidLocation, alg)
	}
	return row, col, nil
}

// NumToAlgebraic is the inverse of AlgebraicToNum.
func NumToAlgebraic(row, col int) (string, error) {
	if !onBoard(row, col) {
		return "", fmt.Errorf("%w: (%d, %d)", ErrInvalidLocation, row, col)
	}
	return string([]byte{columnValues[col], rowValues[row]}), nil
}

// NewLocation reports false when the coordinates fall off the board, so
// offset arithmetic can discard the result before using it.
func NewLocation(row, col int) (Location, bool) {
	if !onBoard(row, col) {
		return 0, false
	}
	return Location(row*8 + col), true
}

// ParseLocation parses algebraic notation.
func ParseLocation(alg string) (Location, error) {
	row, col, err := AlgebraicToNum(alg)
	if err != nil {
		return 0, err
	}
	return Location(row*8 + col), nil
}

// MustLocation panics on bad input; meant for literals.
func MustLocation(alg string) Location {
	loc, err := ParseLocation(alg)
	if err != nil {
		panic(err)
	}
	return loc
}

func (l Location) Row() int {
	return int(l) / 8
}

func (l Location) Col() int {
	return int(l) % 8
}

func (l Location) offset(dRow, dCol int) (Location, bool) {
	return NewLocation(l.Row()+dRow, l.Col()+dCol)
}

func (l Location) String() string {
	if l > 63 {
		return fmt.Sprintf("Location(%d)", uint8(l))
	}
	return string([]byte{columnValues[l.Col()], rowValues[l.Row()]})
}

func (l Location) MarshalText() ([]byte, error) {
	if l > 63 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidLocation, uint8(l))
	}
	return []byte(l.String()), nil
}

func (l *Location) UnmarshalText(text []byte) error {
	loc, err := ParseLocation(string(text))
	if err != nil {
		return err
	}
	*l = loc
	return nil
}

func onBoard(row, col int) bool {
	return row >= 0 && row <= 7 && col >= 0 && col <= 7
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

func sign(x int) int {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	}
	return 0
}
