package match

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/lk16/reversi/internal/game"
	"github.com/lk16/reversi/internal/models"
)

// Config describes a match between two players.
type Config struct {
	// Black and White are the players for each color
	Black Player
	White Player

	// Out receives the board, passes and the result
	Out io.Writer
}

// player returns the player for a color.
func (c *Config) player(color models.Color) Player {
	if color == models.White {
		return c.White
	}
	return c.Black
}

// Run lets the players move in turn until the game is over.
// Passes are made by the game, Run only reports them.
func Run(ctx context.Context, cfg *Config, g *game.Game) (game.Outcome, error) {
	slog.Info("Starting game",
		"game", g.ID().String(),
		"black", cfg.Black.Name(),
		"white", cfg.White.Name(),
	)

	for !g.IsOver() {
		if passer := g.LastPass(); passer != models.NoColor {
			fmt.Fprintf(cfg.Out, "%s (%s) has no moves and passes\n", cfg.player(passer).Name(), passer)
		}

		if err := cfg.player(g.ActiveColor()).Play(ctx, g); err != nil {
			return g.Outcome(), fmt.Errorf("failed to play move: %w", err)
		}
	}

	printBoard(cfg.Out, g)

	outcome := g.Outcome()
	fmt.Fprintf(cfg.Out, "Game over (%s): %s\n", outcome.Reason, outcome)

	return outcome, nil
}

// printBoard writes the board and the disc count.
func printBoard(out io.Writer, g *game.Game) {
	board := g.Board()

	for _, line := range board.ASCIIArtLines() {
		fmt.Fprintln(out, line)
	}

	fmt.Fprintf(out, "black: %d  white: %d\n", board.NumberOfBlackPieces(), board.NumberOfWhitePieces())
}
