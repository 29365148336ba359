package render

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/lk16/reversi/internal/models"
)

func TestSVG_Start(t *testing.T) {
	board := models.NewBoardStart()

	var buf bytes.Buffer
	SVG(&buf, board, board.LegalMoves())
	out := buf.String()

	require.Contains(t, out, "<svg")
	require.Contains(t, out, "</svg>")
	require.Equal(t, models.CellCount+1, strings.Count(out, "<rect"))
	require.Equal(t, 4, strings.Count(out, "<circle"))
	require.Equal(t, 2, strings.Count(out, "fill:"+WhiteColor))
	require.Equal(t, 4, strings.Count(out, "fill:"+HighlightColor))
	require.Equal(t, 28, strings.Count(out, "fill:"+DarkCellColor))
	require.Equal(t, 32, strings.Count(out, "fill:"+LightCellColor))
	require.Contains(t, out, `id="H8"`)
}

func TestSVG_NoHighlight(t *testing.T) {
	var buf bytes.Buffer
	SVG(&buf, models.NewBoardEmpty(), nil)
	out := buf.String()

	require.NotContains(t, out, "<circle")
	require.NotContains(t, out, HighlightColor)
	require.Equal(t, 32, strings.Count(out, "fill:"+DarkCellColor))
	require.Equal(t, 32, strings.Count(out, "fill:"+LightCellColor))
}

func TestCellColor(t *testing.T) {
	require.Equal(t, DarkCellColor, cellColor(models.MustParseCoordinate("A1"), false))
	require.Equal(t, LightCellColor, cellColor(models.MustParseCoordinate("A2"), false))
	require.Equal(t, HighlightColor, cellColor(models.MustParseCoordinate("A2"), true))
}
