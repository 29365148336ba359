package ai

import (
	"errors"

	"github.com/lk16/reversi/internal/models"
)

// ErrNoMoves is returned when a selector is asked to pick from an empty move set.
var ErrNoMoves = errors.New("no moves to select from")

// Selector picks one move from a set of legal moves.
type Selector interface {
	SelectMove(moves models.MoveSet, board *models.Board) (models.Move, error)
}

// Tier scores a move. Higher scores are better.
type Tier func(move models.Move, board *models.Board) int

// CornerTier prefers moves on a corner, since corner discs can never be flipped back.
func CornerTier(move models.Move, _ *models.Board) int {
	if move.Target().IsCorner() {
		return 1
	}
	return 0
}

// CaptureTier prefers moves that flip more discs.
func CaptureTier(move models.Move, _ *models.Board) int {
	return move.FlipCount()
}

// TieredSelector keeps the best scoring moves for each tier in turn and picks the first remaining move.
// It only looks at the position right after the move and keeps no state between calls.
type TieredSelector struct {
	tiers []Tier
}

// NewTieredSelector creates a selector from tiers ordered by priority.
func NewTieredSelector(tiers ...Tier) *TieredSelector {
	return &TieredSelector{tiers: tiers}
}

// NewCornerAndGreedySelector creates a selector that prefers corners and then the largest capture.
func NewCornerAndGreedySelector() *TieredSelector {
	return NewTieredSelector(CornerTier, CaptureTier)
}

// SelectMove returns the best move. Ties are broken by the order of moves.
func (s *TieredSelector) SelectMove(moves models.MoveSet, board *models.Board) (models.Move, error) {
	if len(moves) == 0 {
		return models.Move{}, ErrNoMoves
	}

	candidates := moves
	for _, tier := range s.tiers {
		candidates = best(candidates, board, tier)
	}

	return candidates[0], nil
}

// best returns the moves with the highest score, in their original order.
func best(moves models.MoveSet, board *models.Board, tier Tier) models.MoveSet {
	var (
		result    models.MoveSet
		bestScore int
	)

	for i, move := range moves {
		score := tier(move, board)

		switch {
		case i == 0 || score > bestScore:
			bestScore = score
			result = models.MoveSet{move}
		case score == bestScore:
			result = append(result, move)
		}
	}

	return result
}
