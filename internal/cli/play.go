package cli

import (
	"bufio"
	"errors"
	"fmt"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"

	"github.com/lk16/reversi/internal/ai"
	"github.com/lk16/reversi/internal/config"
	"github.com/lk16/reversi/internal/game"
	"github.com/lk16/reversi/internal/match"
	"github.com/lk16/reversi/internal/models"
)

// Play returns the reversi play command.
func Play() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "play",
		Short: "Play a game against the AI or another human",
		Args:  cobra.NoArgs,
		Long: heredoc.Doc(`play starts a game on the terminal. Enter moves as a row
			letter followed by a column digit, for example C5. Cells
			where a move is possible are marked with a dot. Enter
			quit to stop.

			By default the second player is the AI, which prefers
			corners and otherwise captures as many discs as it can.
			The AI waits before each move, see --delay.

			Defaults are read from REVERSI_OPPONENT_AI, REVERSI_AI_DELAY
			and REVERSI_HUMAN_COLOR.`),

		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.LoadPlayConfig()
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}

			if err := applyPlayFlags(cmd, cfg); err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			scanner := bufio.NewScanner(cmd.InOrStdin())

			human := cfg.Human()
			matchCfg := &match.Config{Out: out}

			var opponent match.Player
			if cfg.OpponentAI {
				opponent = match.NewAIPlayer("AI", ai.NewCornerAndGreedySelector(), cfg.AIDelay, out)
			} else {
				opponent = match.NewHumanPlayer("Player 2", scanner, out)
			}

			if human == models.White {
				matchCfg.Black = opponent
				matchCfg.White = match.NewHumanPlayer("You", scanner, out)
			} else {
				matchCfg.Black = match.NewHumanPlayer("You", scanner, out)
				matchCfg.White = opponent
			}

			_, err = match.Run(cmd.Context(), matchCfg, game.NewGame())
			if errors.Is(err, match.ErrQuit) {
				return nil
			}
			return err
		},
	}

	cmd.Flags().String("color", "", "Color of the human player: black or white")
	cmd.Flags().Duration("delay", 0, "Pause before each AI move")
	cmd.Flags().Bool("opponent-ai", true, "Play against the AI")

	return cmd
}

// applyPlayFlags overrides environment settings with flags given on the command line.
func applyPlayFlags(cmd *cobra.Command, cfg *config.PlayConfig) error {
	flags := cmd.Flags()

	if flags.Changed("color") {
		cfg.HumanColor, _ = flags.GetString("color")
	}

	if flags.Changed("delay") {
		cfg.AIDelay, _ = flags.GetDuration("delay")
	}

	if flags.Changed("opponent-ai") {
		cfg.OpponentAI, _ = flags.GetBool("opponent-ai")
	}

	return cfg.Validate()
}
