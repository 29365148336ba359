package game

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/lk16/reversi/internal/ai"
	"github.com/lk16/reversi/internal/models"
)

func mustBoard(t *testing.T, s string) *models.Board {
	t.Helper()

	board, err := models.NewBoardFromString(s)
	require.NoError(t, err)
	return board
}

func setupBoard(t *testing.T, turn models.Color, black, white []string) *models.Board {
	t.Helper()

	board := models.NewBoardEmpty()
	for _, label := range black {
		require.NoError(t, board.TryOccupy(models.MustParseCoordinate(label), models.Black))
	}
	for _, label := range white {
		require.NoError(t, board.TryOccupy(models.MustParseCoordinate(label), models.White))
	}
	require.NoError(t, board.SetActiveColor(turn))
	return board
}

func TestNewGame(t *testing.T) {
	g := NewGame()

	require.NotEqual(t, NewGame().ID(), g.ID())
	require.Equal(t, AwaitingMove, g.State())
	require.False(t, g.IsOver())
	require.Equal(t, NotOver, g.Reason())
	require.Equal(t, models.Black, g.ActiveColor())
	require.Equal(t, models.NoColor, g.LastPass())
	require.Len(t, g.LegalMoves(), 4)
	require.Empty(t, g.Transcript())
	require.Equal(t, models.OccupiedBlack, g.CellState(models.MustParseCoordinate("D4")))
	require.Equal(t, Outcome{Black: 2, White: 2, Winner: models.NoColor, Reason: NotOver}, g.Outcome())
}

func TestNewGameWithStart_CopiesBoard(t *testing.T) {
	start := models.NewBoardStart()
	g := NewGameWithStart(start)

	_, err := g.Play(models.MustParseCoordinate("C5"))
	require.NoError(t, err)

	require.Equal(t, models.NewBoardStart(), start)
}

func TestGame_Play(t *testing.T) {
	g := NewGame()

	move, err := g.Play(models.MustParseCoordinate("C5"))
	require.NoError(t, err)
	require.Equal(t, models.Black, move.Color())
	require.Equal(t, []models.Coordinate{models.MustParseCoordinate("D5")}, move.Flips())

	require.Equal(t, models.White, g.ActiveColor())
	require.Equal(t, []string{"C5"}, g.Transcript())
	require.Equal(t, 4, g.Outcome().Black)
	require.Equal(t, 1, g.Outcome().White)
	require.True(t, g.IsLegal(models.MustParseCoordinate("C4")))
	require.False(t, g.IsLegal(models.MustParseCoordinate("C5")))
}

func TestGame_Play_Illegal(t *testing.T) {
	tests := []struct {
		name string
		at   models.Coordinate
	}{
		{name: "empty cell without captures", at: models.MustParseCoordinate("A1")},
		{name: "occupied cell", at: models.MustParseCoordinate("D4")},
		{name: "off board", at: models.Coordinate{Row: 9, Col: 9}},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			g := NewGame()
			before := g.Board()

			_, err := g.Play(test.at)
			require.ErrorIs(t, err, ErrIllegalMove)

			require.Equal(t, before, g.Board())
			require.Equal(t, models.Black, g.ActiveColor())
			require.Empty(t, g.Transcript())
			require.Len(t, g.LegalMoves(), 4)
		})
	}
}

func TestGame_PassAndNoMoves(t *testing.T) {
	// Black cannot capture the white corner, white can capture A2 by playing A3.
	start := setupBoard(t, models.Black, []string{"A2"}, []string{"A1"})
	g := NewGameWithStart(start)

	require.Equal(t, AwaitingMove, g.State())
	require.Equal(t, models.White, g.ActiveColor())
	require.Equal(t, models.Black, g.LastPass())
	require.Equal(t, []string{PassLabel}, g.Transcript())
	require.Equal(t, []models.Coordinate{models.MustParseCoordinate("A3")}, g.LegalMoves().Targets())

	_, err := g.Play(models.MustParseCoordinate("A3"))
	require.NoError(t, err)

	require.Equal(t, GameOver, g.State())
	require.Equal(t, NoMovesForEitherPlayer, g.Reason())
	require.Equal(t, []string{PassLabel, "A3"}, g.Transcript())
	require.Empty(t, g.LegalMoves())

	outcome := g.Outcome()
	require.Equal(t, models.White, outcome.Winner)
	require.Equal(t, "white wins 0-3", outcome.String())
}

func TestGame_BoardFull(t *testing.T) {
	tests := []struct {
		name   string
		board  string
		winner models.Color
		result string
	}{
		{
			name:   "draw",
			board:  "ffffffff0000000000000000ffffffff-b",
			winner: models.NoColor,
			result: "draw 32-32",
		},
		{
			name:   "black wins",
			board:  "fffffffffffffff0000000000000000f-w",
			winner: models.Black,
			result: "black wins 60-4",
		},
		{
			name:   "white wins",
			board:  "0000000000000001fffffffffffffffe-b",
			winner: models.White,
			result: "white wins 1-63",
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			g := NewGameWithStart(mustBoard(t, test.board))

			require.Equal(t, GameOver, g.State())
			require.Equal(t, BoardFull, g.Reason())
			require.Equal(t, test.winner, g.Outcome().Winner)
			require.Equal(t, test.result, g.Outcome().String())
			require.Empty(t, g.Transcript())
		})
	}
}

func TestGame_NoMovesWithEmptyCells(t *testing.T) {
	g := NewGameWithStart(setupBoard(t, models.Black, []string{"A1"}, []string{"H8"}))

	require.Equal(t, GameOver, g.State())
	require.Equal(t, NoMovesForEitherPlayer, g.Reason())
	require.True(t, g.Outcome().IsDraw())
	require.Equal(t, models.NoColor, g.LastPass())
	require.Empty(t, g.Transcript())
}

func TestGame_AfterGameOver(t *testing.T) {
	g := NewGameWithStart(setupBoard(t, models.Black, []string{"A1"}, []string{"H8"}))
	before := g.Board()

	_, err := g.Play(models.MustParseCoordinate("B2"))
	require.ErrorIs(t, err, ErrGameOver)

	_, err = g.SelectAndApply(ai.NewCornerAndGreedySelector())
	require.ErrorIs(t, err, ErrGameOver)

	require.Equal(t, GameOver, g.BeginTurn())
	require.Equal(t, before, g.Board())
	require.False(t, g.IsLegal(models.MustParseCoordinate("B2")))
}

func TestGame_BeginTurn_Idempotent(t *testing.T) {
	g := NewGame()
	moves := g.LegalMoves()

	require.Equal(t, AwaitingMove, g.BeginTurn())
	require.Equal(t, AwaitingMove, g.BeginTurn())
	require.Equal(t, moves, g.LegalMoves())
	require.Equal(t, models.Black, g.ActiveColor())
}

func TestGame_BeginTurn_KeepsPass(t *testing.T) {
	start := setupBoard(t, models.Black, []string{"A2"}, []string{"A1"})
	g := NewGameWithStart(start)
	require.Equal(t, models.Black, g.LastPass())

	require.Equal(t, AwaitingMove, g.BeginTurn())
	require.Equal(t, models.Black, g.LastPass())
	require.Equal(t, models.White, g.ActiveColor())
	require.Equal(t, []string{PassLabel}, g.Transcript())
}

func TestGame_SelectAndApply(t *testing.T) {
	g := NewGame()

	move, err := g.SelectAndApply(ai.NewCornerAndGreedySelector())
	require.NoError(t, err)
	require.Equal(t, "C5", move.Target().String())

	move, err = g.SelectAndApply(ai.NewCornerAndGreedySelector())
	require.NoError(t, err)
	require.Equal(t, "C4", move.Target().String())
	require.Equal(t, []string{"C5", "C4"}, g.Transcript())
}

// foreignSelector returns a move generated for a different board.
type foreignSelector struct{}

func (foreignSelector) SelectMove(_ models.MoveSet, _ *models.Board) (models.Move, error) {
	board := models.NewBoardStart()
	board.PassTurn()
	return board.LegalMoves()[0], nil
}

func TestGame_SelectAndApply_StaleMove(t *testing.T) {
	g := NewGame()

	require.Panics(t, func() {
		_, _ = g.SelectAndApply(foreignSelector{})
	})
}

func TestGame_SelfPlay(t *testing.T) {
	selector := ai.NewCornerAndGreedySelector()
	g := NewGame()

	for !g.IsOver() {
		mover := g.ActiveColor()
		before := g.Board()

		move, err := g.SelectAndApply(selector)
		require.NoError(t, err)
		require.NotEmpty(t, move.Flips())

		board := g.Board()
		require.Equal(t, models.CellCount,
			board.NumberOfBlackPieces()+board.NumberOfWhitePieces()+board.NumberOfEmptyCells())
		require.Equal(t, before.CountPieces(mover)+1+move.FlipCount(), board.CountPieces(mover))

		if g.IsOver() {
			break
		}

		if g.ActiveColor() == mover {
			require.Equal(t, mover.Opponent(), g.LastPass())

			opponent := g.Board()
			opponent.PassTurn()
			require.False(t, opponent.HasMoves())
		} else {
			require.Equal(t, mover.Opponent(), g.ActiveColor())
			require.Equal(t, models.NoColor, g.LastPass())
		}
	}

	outcome := g.Outcome()
	require.Contains(t, []GameOverReason{BoardFull, NoMovesForEitherPlayer}, outcome.Reason)
	require.LessOrEqual(t, outcome.Black+outcome.White, models.CellCount)

	replay := NewGame()
	for !replay.IsOver() {
		_, err := replay.SelectAndApply(selector)
		require.NoError(t, err)
	}
	require.Equal(t, g.Transcript(), replay.Transcript())
	require.Equal(t, g.Board(), replay.Board())
}

func TestNewGameFromMoves(t *testing.T) {
	tests := []struct {
		name           string
		moves          []string
		wantTranscript []string
		wantErr        error
	}{
		{
			name:           "no moves",
			moves:          []string{},
			wantTranscript: []string{},
		},
		{
			name:           "two moves",
			moves:          []string{"c5", "C4"},
			wantTranscript: []string{"C5", "C4"},
		},
		{
			name:           "pass labels are skipped",
			moves:          []string{"C5", "--", "C4", "ps"},
			wantTranscript: []string{"C5", "C4"},
		},
		{
			name:    "illegal move",
			moves:   []string{"C5", "A1"},
			wantErr: ErrIllegalMove,
		},
		{
			name:    "invalid label",
			moves:   []string{"Z9"},
			wantErr: models.ErrInvalidCoordinate,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			g, err := NewGameFromMoves(test.moves)
			if test.wantErr != nil {
				require.ErrorIs(t, err, test.wantErr)
				require.Nil(t, g)
				return
			}

			require.NoError(t, err)
			require.Equal(t, test.wantTranscript, g.Transcript())
		})
	}
}

func TestNewGameFromMoves_ReplaysSelfPlay(t *testing.T) {
	selector := ai.NewCornerAndGreedySelector()
	g := NewGame()
	for !g.IsOver() {
		_, err := g.SelectAndApply(selector)
		require.NoError(t, err)
	}

	replay, err := NewGameFromMoves(g.Transcript())
	require.NoError(t, err)
	require.Equal(t, g.Transcript(), replay.Transcript())
	require.Equal(t, g.Outcome(), replay.Outcome())
	require.True(t, replay.IsOver())
}

func TestOutcome_String(t *testing.T) {
	require.Equal(t, "black wins 40-24", Outcome{Black: 40, White: 24, Winner: models.Black}.String())
	require.Equal(t, "white wins 10-54", Outcome{Black: 10, White: 54, Winner: models.White}.String())
	require.Equal(t, "draw 32-32", Outcome{Black: 32, White: 32}.String())
}

func TestStrings(t *testing.T) {
	require.Equal(t, "awaiting move", AwaitingMove.String())
	require.Equal(t, "game over", GameOver.String())
	require.Equal(t, "board full", BoardFull.String())
	require.Equal(t, "no moves for either player", NoMovesForEitherPlayer.String())
	require.Equal(t, "not over", NotOver.String())
}
