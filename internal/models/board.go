package models

import (
	"errors"
	"fmt"
	"math/bits"
	"strconv"
)

var (
	// ErrCellNotEmpty is returned when placing a piece on an occupied cell during setup.
	ErrCellNotEmpty = errors.New("cell is not empty")

	// ErrStaleMove is the panic value used when a move is applied to a board it was not generated for.
	ErrStaleMove = errors.New("move was not generated for this board")
)

// Board represents a reversi board with the cell ownership and the active color.
type Board struct {
	black uint64
	white uint64
	turn  Color
}

// NewBoardStart creates a new board with the starting position: D4 and E5 black, D5 and E4 white.
func NewBoardStart() *Board {
	board := NewBoardEmpty()

	setup := []struct {
		label string
		color Color
	}{
		{"D4", Black},
		{"D5", White},
		{"E4", White},
		{"E5", Black},
	}

	for _, piece := range setup {
		if err := board.TryOccupy(MustParseCoordinate(piece.label), piece.color); err != nil {
			panic(fmt.Sprintf("invalid start position: %v", err))
		}
	}

	return board
}

// NewBoardEmpty creates a new board without pieces, with black to move.
func NewBoardEmpty() *Board {
	return &Board{turn: Black}
}

// NewBoardFromString creates a new board from the representation returned by String.
func NewBoardFromString(s string) (*Board, error) {
	if len(s) != 34 {
		return nil, fmt.Errorf("board string must be 34 characters long, got %d", len(s))
	}

	black, err := strconv.ParseUint(s[:16], 16, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid black discs: %w", err)
	}

	white, err := strconv.ParseUint(s[16:32], 16, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid white discs: %w", err)
	}

	if black&white != 0 {
		return nil, errors.New("invalid board: black and white discs cannot overlap")
	}

	var turn Color
	switch s[32:34] {
	case "-b":
		turn = Black
	case "-w":
		turn = White
	default:
		return nil, fmt.Errorf("invalid turn: %s", s[32:34])
	}

	return &Board{black: black, white: white, turn: turn}, nil
}

// Clone returns an independent copy of the board.
func (b *Board) Clone() *Board {
	clone := *b
	return &clone
}

// CellState returns the contents of a cell. Coordinates outside the board are reported as Empty.
func (b *Board) CellState(at Coordinate) CellState {
	if !at.Valid() {
		return Empty
	}

	mask := at.bit()
	switch {
	case b.black&mask != 0:
		return OccupiedBlack
	case b.white&mask != 0:
		return OccupiedWhite
	default:
		return Empty
	}
}

// NumberOfBlackPieces returns the number of black discs.
func (b *Board) NumberOfBlackPieces() int {
	return bits.OnesCount64(b.black)
}

// NumberOfWhitePieces returns the number of white discs.
func (b *Board) NumberOfWhitePieces() int {
	return bits.OnesCount64(b.white)
}

// NumberOfEmptyCells returns the number of cells without a disc.
func (b *Board) NumberOfEmptyCells() int {
	return CellCount - bits.OnesCount64(b.black|b.white)
}

// CountPieces returns the number of discs of the given color.
func (b *Board) CountPieces(color Color) int {
	switch color {
	case Black:
		return b.NumberOfBlackPieces()
	case White:
		return b.NumberOfWhitePieces()
	default:
		return 0
	}
}

// ActiveColor returns the color that moves next.
func (b *Board) ActiveColor() Color {
	return b.turn
}

// SetActiveColor sets the color to move. It is meant for setting up a position.
func (b *Board) SetActiveColor(color Color) error {
	if color != Black && color != White {
		return fmt.Errorf("invalid active color: %s", color)
	}

	b.turn = color
	return nil
}

// PassTurn gives the turn to the opponent without placing a disc.
func (b *Board) PassTurn() {
	b.turn = b.turn.Opponent()
}

// TryOccupy places a disc during setup. It fails if the cell is taken.
func (b *Board) TryOccupy(at Coordinate, color Color) error {
	if !at.Valid() {
		return fmt.Errorf("%w: row %d, column %d", ErrInvalidCoordinate, at.Row, at.Col)
	}

	if b.CellState(at) != Empty {
		return fmt.Errorf("%w: %s", ErrCellNotEmpty, at)
	}

	switch color {
	case Black:
		b.black |= at.bit()
	case White:
		b.white |= at.bit()
	default:
		return fmt.Errorf("cannot occupy %s with color %s", at, color)
	}

	return nil
}

// discs returns the bitsets of the active color and of its opponent.
func (b *Board) discs() (uint64, uint64) {
	if b.turn == White {
		return b.white, b.black
	}
	return b.black, b.white
}

// Moves returns a bitset with all cells where the active color can move.
func (b *Board) Moves() uint64 {
	player, opponent := b.discs()
	return mobility(player, opponent)
}

// HasMoves checks if the active color has a legal move.
func (b *Board) HasMoves() bool {
	return b.Moves() != 0
}

// LegalMoves returns all legal moves of the active color, ordered by cell index.
func (b *Board) LegalMoves() MoveSet {
	player, opponent := b.discs()
	empties := ^(player | opponent)

	moves := make(MoveSet, 0)
	for empties != 0 {
		index := bits.TrailingZeros64(empties)
		empties &= empties - 1

		target := Coordinate{Row: index / BoardSize, Col: index % BoardSize}
		flips := flipped(player, opponent, target)
		if len(flips) == 0 {
			continue
		}

		moves = append(moves, Move{
			target: target,
			color:  b.turn,
			flips:  flips,
			origin: *b,
		})
	}

	return moves
}

// Apply places the disc of a move, flips every captured disc and passes the turn to the opponent.
// The move must have been generated for the current board, otherwise Apply panics.
func (b *Board) Apply(move Move) {
	if move.origin != *b || len(move.flips) == 0 {
		panic(fmt.Errorf("%w: %s on %s", ErrStaleMove, move, b))
	}

	placed := move.target.bit() | maskOf(move.flips)

	if move.color == White {
		b.white |= placed
		b.black &^= placed
	} else {
		b.black |= placed
		b.white &^= placed
	}

	b.turn = b.turn.Opponent()
}

// ASCIIArtLines returns the ascii art lines for the board. Legal moves are marked with a dot.
func (b *Board) ASCIIArtLines() []string {
	moves := b.Moves()
	lines := make([]string, BoardSize+2)

	lines[0] = "+-1-2-3-4-5-6-7-8-+"
	for row := 0; row < BoardSize; row++ {
		line := fmt.Sprintf("%c ", 'A'+row)

		for col := 0; col < BoardSize; col++ {
			mask := Coordinate{Row: row, Col: col}.bit()

			switch {
			case b.white&mask != 0:
				line += "○ "
			case b.black&mask != 0:
				line += "● "
			case moves&mask != 0:
				line += "· "
			default:
				line += "  "
			}
		}

		lines[row+1] = line + "|"
	}

	lines[BoardSize+1] = "+-----------------+"

	return lines
}

// String returns the black and white bitsets in hex followed by "-b" or "-w" for the active color.
func (b *Board) String() string {
	turnString := "-b"
	if b.turn == White {
		turnString = "-w"
	}

	return fmt.Sprintf("%016x%016x%s", b.black, b.white, turnString)
}
