package models

import "fmt"

// Color identifies a player.
type Color int

const (
	// NoColor is used where no player applies, such as the winner of a drawn game.
	NoColor Color = iota
	Black
	White
)

// Opponent returns the other player. NoColor has no opponent.
func (c Color) Opponent() Color {
	switch c {
	case Black:
		return White
	case White:
		return Black
	default:
		return NoColor
	}
}

// String returns the lowercase name of the color.
func (c Color) String() string {
	switch c {
	case Black:
		return "black"
	case White:
		return "white"
	default:
		return "none"
	}
}

// ParseColor converts "black"/"b" or "white"/"w" to a Color.
func ParseColor(s string) (Color, error) {
	switch s {
	case "black", "b", "BLACK", "Black":
		return Black, nil
	case "white", "w", "WHITE", "White":
		return White, nil
	default:
		return NoColor, fmt.Errorf("invalid color: %q", s)
	}
}

// CellState describes the contents of a single cell.
type CellState int

const (
	Empty CellState = iota
	OccupiedBlack
	OccupiedWhite
)

// Owner returns the color occupying the cell, or NoColor for an empty cell.
func (s CellState) Owner() Color {
	switch s {
	case OccupiedBlack:
		return Black
	case OccupiedWhite:
		return White
	default:
		return NoColor
	}
}

// String returns a short description of the cell state.
func (s CellState) String() string {
	switch s {
	case OccupiedBlack:
		return "black"
	case OccupiedWhite:
		return "white"
	default:
		return "empty"
	}
}
