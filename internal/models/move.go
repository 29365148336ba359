package models

import (
	"fmt"
	"strings"
)

// Move is a legal move as produced by Board.LegalMoves. Moves are only valid for the board they were generated on.
type Move struct {
	target Coordinate
	color  Color
	flips  []Coordinate

	// origin is the board the move was generated for
	origin Board
}

// Target returns the cell where the disc is placed.
func (m Move) Target() Coordinate {
	return m.target
}

// Color returns the color of the player making the move.
func (m Move) Color() Color {
	return m.color
}

// Flips returns a copy of the cells captured by the move.
func (m Move) Flips() []Coordinate {
	flips := make([]Coordinate, len(m.flips))
	copy(flips, m.flips)
	return flips
}

// FlipCount returns the number of captured discs.
func (m Move) FlipCount() int {
	return len(m.flips)
}

// String returns the target label and the captured cells, e.g. "C5 (black) x D5".
func (m Move) String() string {
	labels := make([]string, len(m.flips))
	for i, flip := range m.flips {
		labels[i] = flip.String()
	}

	return fmt.Sprintf("%s (%s) x %s", m.target, m.color, strings.Join(labels, ","))
}

// MoveSet is the set of legal moves for one board. It does not change when the board does.
type MoveSet []Move

// Find returns the move targeting the given cell.
func (s MoveSet) Find(at Coordinate) (Move, bool) {
	for _, move := range s {
		if move.target == at {
			return move, true
		}
	}
	return Move{}, false
}

// IsLegal checks if the set contains a move targeting the given cell.
func (s MoveSet) IsLegal(at Coordinate) bool {
	_, ok := s.Find(at)
	return ok
}

// Targets returns the target cells in set order.
func (s MoveSet) Targets() []Coordinate {
	targets := make([]Coordinate, len(s))
	for i, move := range s {
		targets[i] = move.target
	}
	return targets
}

// Mask returns a bitset of the target cells.
func (s MoveSet) Mask() uint64 {
	return maskOf(s.Targets())
}

// IsLegal checks if a player-chosen cell is among previously computed legal moves. It does not recompute moves.
func IsLegal(at Coordinate, moves MoveSet) bool {
	return moves.IsLegal(at)
}
