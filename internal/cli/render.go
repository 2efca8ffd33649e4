package cli

import (
	"fmt"
	"slices"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/mcoot/blockhive/internal/api/response"
	"github.com/mcoot/blockhive/internal/model"
)

const (
	glyphEmpty    = "·"
	glyphFilled   = "⬢"
	glyphPreview  = "⬡"
	glyphInvalid  = "✕"
	glyphClearing = "✦"
)

var (
	emptyStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	invalidStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#ef4444")).Bold(true)
	clearingStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#FFFFFF")).Bold(true)
)

// colorStyle maps a piece colour to a terminal style
func colorStyle(c string) lipgloss.Style {
	switch c {
	case "gold":
		return lipgloss.NewStyle().Foreground(lipgloss.Color("#FFD700"))
	case "":
		return emptyStyle
	default:
		return lipgloss.NewStyle().Foreground(lipgloss.Color(c))
	}
}

// RenderBoard draws the board as offset rows, top row first. Each row is
// indented by its distance from the middle so neighbouring hexes line up.
func RenderBoard(g response.GameState) string {
	radius := g.BoardRadius
	clearing := make(map[string]bool, len(g.ClearingCells))
	for _, key := range g.ClearingCells {
		clearing[key] = true
	}

	var b strings.Builder
	for r := -radius; r <= radius; r++ {
		b.WriteString(strings.Repeat(" ", abs(r)))
		qMin := max(-radius, -radius-r)
		qMax := min(radius, radius-r)

		cells := make([]string, 0, qMax-qMin+1)
		for q := qMin; q <= qMax; q++ {
			key := model.Coord{Q: q, R: r}.Key()
			cells = append(cells, renderCell(g, key, clearing[key]))
		}
		b.WriteString(strings.Join(cells, " "))
		b.WriteString("\n")
	}
	return b.String()
}

func renderCell(g response.GameState, key string, clearing bool) string {
	if color, ok := g.Preview[key]; ok {
		if color == string(model.InvalidTint) {
			return invalidStyle.Render(glyphInvalid)
		}
		return colorStyle(color).Render(glyphPreview)
	}
	if clearing {
		return clearingStyle.Render(glyphClearing)
	}
	color := g.Board[key]
	if color == string(model.Empty) {
		return emptyStyle.Render(glyphEmpty)
	}
	return colorStyle(color).Render(glyphFilled)
}

// RenderPiece draws a piece's cells on one line, sorted by row then column
func RenderPiece(p *response.Piece) string {
	cells := slices.Clone(p.Shape)
	slices.SortFunc(cells, func(a, b model.Coord) int {
		if a.R != b.R {
			return a.R - b.R
		}
		return a.Q - b.Q
	})

	keys := make([]string, len(cells))
	for i, c := range cells {
		keys[i] = fmt.Sprintf("%d,%d", c.Q, c.R)
	}
	return colorStyle(p.Color).Render(glyphFilled) + " [" + strings.Join(keys, " ") + "]"
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
