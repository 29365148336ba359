package game

import (
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"strings"

	"github.com/google/uuid"

	"github.com/lk16/reversi/internal/ai"
	"github.com/lk16/reversi/internal/models"
)

// PassLabel marks a forced pass in a transcript.
const PassLabel = "--"

var (
	// ErrIllegalMove is returned when a chosen cell is not a legal move. The game is left unchanged.
	ErrIllegalMove = errors.New("illegal move")

	// ErrGameOver is returned when a move is attempted after the game ended.
	ErrGameOver = errors.New("game is over")
)

// State is the state of the turn controller.
type State int

const (
	AwaitingMove State = iota
	GameOver
)

// String returns a short description of the state.
func (s State) String() string {
	if s == GameOver {
		return "game over"
	}
	return "awaiting move"
}

// GameOverReason explains why a game ended.
type GameOverReason int

const (
	NotOver GameOverReason = iota
	BoardFull
	NoMovesForEitherPlayer
)

// String returns a short description of the reason.
func (r GameOverReason) String() string {
	switch r {
	case BoardFull:
		return "board full"
	case NoMovesForEitherPlayer:
		return "no moves for either player"
	default:
		return "not over"
	}
}

// Game is a reversi game in progress. It owns the board, keeps the legal moves of the active
// color up to date and handles passes and the end of the game.
type Game struct {
	// id identifies the game in logs
	id uuid.UUID

	// board is the current board
	board *models.Board

	// moves are the legal moves for the active color on board
	moves models.MoveSet

	// state is AwaitingMove until the game ends
	state State

	// reason is set when state is GameOver
	reason GameOverReason

	// lastPass is the color that was forced to pass at the start of the current turn, if any
	lastPass models.Color

	// transcript holds the labels of all moves and passes
	transcript []string

	logger *slog.Logger
}

// NewGame creates a new game from the starting position.
func NewGame() *Game {
	return NewGameWithStart(models.NewBoardStart())
}

// NewGameWithStart creates a new game with a custom start board. The board is copied.
func NewGameWithStart(start *models.Board) *Game {
	id := uuid.New()

	g := &Game{
		id:         id,
		board:      start.Clone(),
		transcript: make([]string, 0),
		logger:     slog.Default().With("game", id.String()),
	}

	g.BeginTurn()
	return g
}

// NewGameFromMoves creates a new game and plays the given move labels.
// Pass labels are skipped since passes are made automatically.
func NewGameFromMoves(labels []string) (*Game, error) {
	g := NewGame()

	for _, label := range labels {
		if isPassLabel(label) {
			continue
		}

		at, err := models.ParseCoordinate(label)
		if err != nil {
			return nil, fmt.Errorf("failed to parse move %s: %w", label, err)
		}

		if _, err := g.Play(at); err != nil {
			return nil, fmt.Errorf("failed to push move %s: %w", label, err)
		}
	}

	return g, nil
}

func isPassLabel(label string) bool {
	switch strings.ToLower(label) {
	case PassLabel, "ps", "pa":
		return true
	default:
		return false
	}
}

// BeginTurn recomputes the legal moves and passes or ends the game when needed.
// It is called after every move, calling it again has no effect.
// LastPass is only cleared when a move is applied.
func (g *Game) BeginTurn() State {
	if g.state == GameOver {
		return g.state
	}

	g.moves = g.board.LegalMoves()

	if g.board.NumberOfEmptyCells() == 0 {
		g.end(BoardFull)
		return g.state
	}

	if len(g.moves) != 0 {
		return g.state
	}

	passer := g.board.ActiveColor()
	g.board.PassTurn()
	g.moves = g.board.LegalMoves()

	if len(g.moves) == 0 {
		g.end(NoMovesForEitherPlayer)
		return g.state
	}

	g.lastPass = passer
	g.transcript = append(g.transcript, PassLabel)
	g.logger.Debug("Forced pass", "color", passer)

	return g.state
}

func (g *Game) end(reason GameOverReason) {
	g.state = GameOver
	g.reason = reason

	outcome := g.Outcome()
	g.logger.Info("Game over",
		"reason", reason,
		"black", outcome.Black,
		"white", outcome.White,
		"winner", outcome.Winner,
	)
}

// Play makes the move on the given cell for the active color.
// ErrIllegalMove is returned without changing anything when the cell is not a legal move.
func (g *Game) Play(at models.Coordinate) (models.Move, error) {
	if g.state == GameOver {
		return models.Move{}, ErrGameOver
	}

	move, ok := g.moves.Find(at)
	if !ok {
		return models.Move{}, fmt.Errorf("%w: %s", ErrIllegalMove, at)
	}

	g.apply(move)
	return move, nil
}

// SelectAndApply lets the selector pick a move for the active color and plays it.
func (g *Game) SelectAndApply(selector ai.Selector) (models.Move, error) {
	if g.state == GameOver {
		return models.Move{}, ErrGameOver
	}

	move, err := selector.SelectMove(g.LegalMoves(), g.board.Clone())
	if err != nil {
		return models.Move{}, fmt.Errorf("failed to select move: %w", err)
	}

	g.apply(move)
	return move, nil
}

func (g *Game) apply(move models.Move) {
	g.board.Apply(move)
	g.lastPass = models.NoColor
	g.transcript = append(g.transcript, move.Target().String())

	g.logger.Debug("Applied move",
		"color", move.Color(),
		"move", move.Target().String(),
		"flips", move.FlipCount(),
	)

	g.BeginTurn()
}

// ID returns the unique id of the game.
func (g *Game) ID() uuid.UUID {
	return g.id
}

// Board returns a copy of the current board.
func (g *Game) Board() *models.Board {
	return g.board.Clone()
}

// CellState returns the contents of a cell.
func (g *Game) CellState(at models.Coordinate) models.CellState {
	return g.board.CellState(at)
}

// ActiveColor returns the color that moves next.
func (g *Game) ActiveColor() models.Color {
	return g.board.ActiveColor()
}

// LegalMoves returns the legal moves of the active color. It is empty when the game is over.
func (g *Game) LegalMoves() models.MoveSet {
	if g.state == GameOver {
		return models.MoveSet{}
	}
	return slices.Clone(g.moves)
}

// IsLegal checks if the active color can move on the given cell.
func (g *Game) IsLegal(at models.Coordinate) bool {
	return g.state != GameOver && models.IsLegal(at, g.moves)
}

// State returns the controller state.
func (g *Game) State() State {
	return g.state
}

// IsOver checks if the game has ended.
func (g *Game) IsOver() bool {
	return g.state == GameOver
}

// Reason returns why the game ended, or NotOver.
func (g *Game) Reason() GameOverReason {
	return g.reason
}

// LastPass returns the color that had to pass at the start of the current turn, or NoColor.
func (g *Game) LastPass() models.Color {
	return g.lastPass
}

// Transcript returns the labels of all moves played so far, with PassLabel for forced passes.
func (g *Game) Transcript() []string {
	return slices.Clone(g.transcript)
}

// Outcome returns the score and the color with more discs.
func (g *Game) Outcome() Outcome {
	outcome := Outcome{
		Black:  g.board.NumberOfBlackPieces(),
		White:  g.board.NumberOfWhitePieces(),
		Reason: g.reason,
	}

	switch {
	case outcome.Black > outcome.White:
		outcome.Winner = models.Black
	case outcome.White > outcome.Black:
		outcome.Winner = models.White
	default:
		outcome.Winner = models.NoColor
	}

	return outcome
}

// Outcome is the disc count of both players and the resulting winner.
type Outcome struct {
	Black  int
	White  int
	Winner models.Color
	Reason GameOverReason
}

// IsDraw checks if both players have the same number of discs.
func (o Outcome) IsDraw() bool {
	return o.Winner == models.NoColor
}

// String returns a result such as "black wins 40-24" or "draw 32-32". The black count comes first.
func (o Outcome) String() string {
	if o.IsDraw() {
		return fmt.Sprintf("draw %d-%d", o.Black, o.White)
	}
	return fmt.Sprintf("%s wins %d-%d", o.Winner, o.Black, o.White)
}
