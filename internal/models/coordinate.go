package models

import (
	"errors"
	"fmt"
	"strings"
)

const (
	// BoardSize is the number of rows and columns of the board.
	BoardSize = 8

	// CellCount is the number of cells on the board.
	CellCount = BoardSize * BoardSize
)

// ErrInvalidCoordinate is returned when a row or column is outside the board.
var ErrInvalidCoordinate = errors.New("invalid coordinate")

// Coordinate identifies a cell by row and column, both in [0,7].
//
// The label of a coordinate is a row letter followed by a column digit:
// row 3, column 3 is "D4" and row 4, column 5 is "E6".
type Coordinate struct {
	Row int
	Col int
}

// Corners lists the four corner cells.
var Corners = [4]Coordinate{
	{Row: 0, Col: 0},
	{Row: 0, Col: BoardSize - 1},
	{Row: BoardSize - 1, Col: 0},
	{Row: BoardSize - 1, Col: BoardSize - 1},
}

// NewCoordinate creates a coordinate and checks that it lies on the board.
func NewCoordinate(row, col int) (Coordinate, error) {
	if !onBoard(row, col) {
		return Coordinate{}, fmt.Errorf("%w: row %d, column %d", ErrInvalidCoordinate, row, col)
	}

	return Coordinate{Row: row, Col: col}, nil
}

// MustCoordinate creates a coordinate and panics if it is not on the board.
func MustCoordinate(row, col int) Coordinate {
	c, err := NewCoordinate(row, col)
	if err != nil {
		panic(err)
	}
	return c
}

// CoordinateFromIndex converts a bit index (0-63) to a coordinate.
func CoordinateFromIndex(index int) (Coordinate, error) {
	if index < 0 || index >= CellCount {
		return Coordinate{}, fmt.Errorf("%w: index %d", ErrInvalidCoordinate, index)
	}

	return Coordinate{Row: index / BoardSize, Col: index % BoardSize}, nil
}

// ParseCoordinate converts a label such as "d3" or "E6" to a coordinate.
func ParseCoordinate(label string) (Coordinate, error) {
	if len(label) != 2 {
		return Coordinate{}, fmt.Errorf("%w: label %q must have 2 characters", ErrInvalidCoordinate, label)
	}

	label = strings.ToUpper(label)

	if !('A' <= label[0] && label[0] <= 'H' && '1' <= label[1] && label[1] <= '8') {
		return Coordinate{}, fmt.Errorf("%w: label %q", ErrInvalidCoordinate, label)
	}

	return Coordinate{
		Row: int(label[0] - 'A'),
		Col: int(label[1] - '1'),
	}, nil
}

// MustParseCoordinate works like ParseCoordinate but panics on invalid labels.
func MustParseCoordinate(label string) Coordinate {
	c, err := ParseCoordinate(label)
	if err != nil {
		panic(err)
	}
	return c
}

// AllCoordinates returns all cells in index order.
func AllCoordinates() []Coordinate {
	coords := make([]Coordinate, 0, CellCount)
	for index := 0; index < CellCount; index++ {
		coords = append(coords, Coordinate{Row: index / BoardSize, Col: index % BoardSize})
	}
	return coords
}

// Index returns the bit index (0-63) of the coordinate.
func (c Coordinate) Index() int {
	return c.Row*BoardSize + c.Col
}

// Valid checks if the coordinate lies on the board.
func (c Coordinate) Valid() bool {
	return onBoard(c.Row, c.Col)
}

// Parity is (row+column) mod 2. Cells with parity 0 are the dark squares of the checkerboard.
func (c Coordinate) Parity() int {
	return (c.Row + c.Col) % 2
}

// IsBlack checks if the cell is a dark checkerboard square.
func (c Coordinate) IsBlack() bool {
	return c.Parity() == 0
}

// IsCorner checks if the coordinate is one of the four corners.
func (c Coordinate) IsCorner() bool {
	return (c.Row == 0 || c.Row == BoardSize-1) && (c.Col == 0 || c.Col == BoardSize-1)
}

// String returns the label of the coordinate.
func (c Coordinate) String() string {
	if !c.Valid() {
		return "??"
	}
	return string([]byte{byte('A' + c.Row), byte('1' + c.Col)})
}

func (c Coordinate) bit() uint64 {
	return uint64(1) << c.Index()
}

func onBoard(row, col int) bool {
	return row >= 0 && row < BoardSize && col >= 0 && col < BoardSize
}
