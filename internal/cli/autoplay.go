package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/lk16/reversi/internal/ai"
	"github.com/lk16/reversi/internal/game"
	"github.com/lk16/reversi/internal/match"
)

// Autoplay returns the reversi autoplay command.
func Autoplay() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "autoplay",
		Short: "Let the AI play against itself and print the transcript",
		Args:  cobra.NoArgs,

		RunE: func(cmd *cobra.Command, _ []string) error {
			delay, _ := cmd.Flags().GetDuration("delay")
			if delay < 0 {
				return fmt.Errorf("invalid AI delay: %s", delay)
			}

			out := cmd.OutOrStdout()
			selector := ai.NewCornerAndGreedySelector()

			cfg := &match.Config{
				Black: match.NewAIPlayer("AI 1", selector, delay, out),
				White: match.NewAIPlayer("AI 2", selector, delay, out),
				Out:   out,
			}

			g := game.NewGame()
			if _, err := match.Run(cmd.Context(), cfg, g); err != nil {
				return err
			}

			fmt.Fprintf(out, "Transcript: %s\n", strings.Join(g.Transcript(), " "))
			return nil
		},
	}

	cmd.Flags().Duration("delay", 0, "Pause before each AI move")

	return cmd
}
