package render

import (
	"fmt"
	"io"
	"strconv"

	svg "github.com/ajstarks/svgo"

	"github.com/lk16/reversi/internal/models"
)

const (
	// CellSize is the width and height of a cell in pixels.
	CellSize = 60

	// Margin leaves room for the row and column labels.
	Margin = 30

	// Size is the width and height of the image.
	Size = 2*Margin + models.BoardSize*CellSize

	pieceRadius = CellSize * 2 / 5
)

// Colors used in the image.
const (
	DarkCellColor  = "#2e7d32"
	LightCellColor = "#43a047"
	HighlightColor = "#f9a825"
	BlackColor     = "#111111"
	WhiteColor     = "#f5f5f5"
	LabelColor     = "#333333"
)

// SVG draws the board as an SVG image. Cells are tinted by parity and cells of the given moves are highlighted.
func SVG(w io.Writer, board *models.Board, moves models.MoveSet) {
	highlighted := make(map[models.Coordinate]bool, len(moves))
	for _, target := range moves.Targets() {
		highlighted[target] = true
	}

	canvas := svg.New(w)
	canvas.Start(Size, Size)
	canvas.Rect(0, 0, Size, Size, "fill:#ffffff")

	labelStyle := fmt.Sprintf("font-family:sans-serif;font-size:%dpx;text-anchor:middle;fill:%s", Margin/2, LabelColor)
	for i := 0; i < models.BoardSize; i++ {
		center := Margin + i*CellSize + CellSize/2
		canvas.Text(center, Margin*2/3, strconv.Itoa(i+1), labelStyle)
		canvas.Text(Margin/2, center+Margin/6, string(rune('A'+i)), labelStyle)
	}

	for _, c := range models.AllCoordinates() {
		x := Margin + c.Col*CellSize
		y := Margin + c.Row*CellSize

		canvas.Rect(x, y, CellSize, CellSize, "fill:"+cellColor(c, highlighted[c]), `id="`+c.String()+`"`)

		switch board.CellState(c) {
		case models.OccupiedBlack:
			canvas.Circle(x+CellSize/2, y+CellSize/2, pieceRadius, "fill:"+BlackColor)
		case models.OccupiedWhite:
			canvas.Circle(x+CellSize/2, y+CellSize/2, pieceRadius, "fill:"+WhiteColor+";stroke:"+BlackColor)
		case models.Empty:
		}
	}

	canvas.End()
}

func cellColor(c models.Coordinate, highlighted bool) string {
	switch {
	case highlighted:
		return HighlightColor
	case c.IsBlack():
		return DarkCellColor
	default:
		return LightCellColor
	}
}
