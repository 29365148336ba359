package match

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/briandowns/spinner"

	"github.com/lk16/reversi/internal/ai"
	"github.com/lk16/reversi/internal/game"
	"github.com/lk16/reversi/internal/models"
)

// spinnerCharSet is the spinner.CharSets index shown while the AI waits.
const spinnerCharSet = 14

// ErrQuit is returned when a human player stops the game.
var ErrQuit = errors.New("player quit")

// Player makes exactly one move for the active color of a game.
type Player interface {
	Name() string
	Play(ctx context.Context, g *game.Game) error
}

// HumanPlayer reads move labels from text input, one per line.
// Lines that are not a legal move are ignored and the player is asked again.
type HumanPlayer struct {
	name    string
	scanner *bufio.Scanner
	out     io.Writer
}

// NewHumanPlayer creates a human player. Players sharing an input must share the scanner.
func NewHumanPlayer(name string, scanner *bufio.Scanner, out io.Writer) *HumanPlayer {
	return &HumanPlayer{
		name:    name,
		scanner: scanner,
		out:     out,
	}
}

// Name returns the name of the player.
func (h *HumanPlayer) Name() string {
	return h.name
}

// Play prompts until a legal move is entered. Entering "quit" or closing the input returns ErrQuit.
func (h *HumanPlayer) Play(ctx context.Context, g *game.Game) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		printBoard(h.out, g)
		fmt.Fprintf(h.out, "%s (%s) to move: ", h.name, g.ActiveColor())

		if !h.scanner.Scan() {
			if err := h.scanner.Err(); err != nil {
				return fmt.Errorf("failed to read move: %w", err)
			}
			return ErrQuit
		}

		input := strings.TrimSpace(h.scanner.Text())

		switch strings.ToLower(input) {
		case "":
			continue
		case "q", "quit", "exit":
			return ErrQuit
		}

		at, err := models.ParseCoordinate(input)
		if err != nil {
			fmt.Fprintf(h.out, "Cannot read %q, enter a cell such as %s\n", input, hint(g))
			continue
		}

		_, err = g.Play(at)
		if errors.Is(err, game.ErrIllegalMove) {
			continue
		}
		return err
	}
}

// hint returns the first legal move label, used as an example in messages.
func hint(g *game.Game) string {
	moves := g.LegalMoves()
	if len(moves) == 0 {
		return "D3"
	}
	return moves[0].Target().String()
}

// AIPlayer waits for a fixed delay and then plays the move picked by a selector.
type AIPlayer struct {
	name     string
	selector ai.Selector
	delay    time.Duration
	out      io.Writer
}

// NewAIPlayer creates an AI player.
func NewAIPlayer(name string, selector ai.Selector, delay time.Duration, out io.Writer) *AIPlayer {
	return &AIPlayer{
		name:     name,
		selector: selector,
		delay:    delay,
		out:      out,
	}
}

// Name returns the name of the player.
func (a *AIPlayer) Name() string {
	return a.name
}

// Play waits for the delay and plays one move. The wait stops when ctx is done.
func (a *AIPlayer) Play(ctx context.Context, g *game.Game) error {
	if err := a.wait(ctx, g.ActiveColor()); err != nil {
		return err
	}

	move, err := g.SelectAndApply(a.selector)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "%s (%s) plays %s\n", a.name, move.Color(), move.Target())
	return nil
}

func (a *AIPlayer) wait(ctx context.Context, color models.Color) error {
	if a.delay <= 0 {
		return ctx.Err()
	}

	s := spinner.New(spinner.CharSets[spinnerCharSet], 100*time.Millisecond, spinner.WithWriter(a.out))
	s.Suffix = fmt.Sprintf(" %s (%s) is thinking", a.name, color)
	s.Start()
	defer s.Stop()

	timer := time.NewTimer(a.delay)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
