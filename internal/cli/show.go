package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"

	"github.com/lk16/reversi/internal/game"
	"github.com/lk16/reversi/internal/models"
	"github.com/lk16/reversi/internal/render"
)

// Show returns the reversi show command.
func Show() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Print a board as text or as an SVG image",
		Args:  cobra.NoArgs,
		Long: heredoc.Doc(`show prints the board after the given moves, or the board
			given in the debug notation of --board. Without either the
			starting position is shown.

			Moves are labels such as C5 separated by spaces or commas.
			Passes may be written as -- and are otherwise inferred.`),

		RunE: func(cmd *cobra.Command, _ []string) error {
			boardString, _ := cmd.Flags().GetString("board")
			moveList, _ := cmd.Flags().GetString("moves")
			asSVG, _ := cmd.Flags().GetBool("svg")

			if boardString != "" && moveList != "" {
				return errors.New("--board and --moves cannot be combined")
			}

			board, err := loadBoard(boardString, moveList)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()

			if asSVG {
				render.SVG(out, board, board.LegalMoves())
				return nil
			}

			for _, line := range board.ASCIIArtLines() {
				fmt.Fprintln(out, line)
			}
			fmt.Fprintf(out, "%s to move, black: %d  white: %d\n",
				board.ActiveColor(), board.NumberOfBlackPieces(), board.NumberOfWhitePieces())
			fmt.Fprintf(out, "board: %s\n", board)
			return nil
		},
	}

	cmd.Flags().String("board", "", "Board in debug notation, as printed by this command")
	cmd.Flags().String("moves", "", "Moves to play from the starting position")
	cmd.Flags().Bool("svg", false, "Print an SVG image instead of text")

	return cmd
}

func loadBoard(boardString, moveList string) (*models.Board, error) {
	if boardString != "" {
		board, err := models.NewBoardFromString(boardString)
		if err != nil {
			return nil, fmt.Errorf("failed to create board: %w", err)
		}
		return board, nil
	}

	labels := strings.FieldsFunc(moveList, func(r rune) bool {
		return r == ' ' || r == ','
	})

	g, err := game.NewGameFromMoves(labels)
	if err != nil {
		return nil, err
	}

	return g.Board(), nil
}
