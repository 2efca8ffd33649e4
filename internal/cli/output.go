package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/dustin/go-humanize"

	"github.com/mcoot/blockhive/internal/api/response"
)

// Output handles formatting output based on the configured format
type Output struct {
	format string
	w      io.Writer
}

// NewOutput creates a new Output formatter writing to w
func NewOutput(format string, w io.Writer) *Output {
	return &Output{format: format, w: w}
}

// Print outputs data in the configured format
func (o *Output) Print(data any) {
	if o.format == "json" {
		o.printJSON(data)
	} else {
		o.printText(data)
	}
}

// PrintError outputs an error
func (o *Output) PrintError(err error) {
	if o.format == "json" {
		errData := map[string]any{
			"error": map[string]string{
				"message": err.Error(),
			},
		}
		data, _ := json.Marshal(errData)
		fmt.Fprintln(os.Stderr, string(data))
	} else {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
	}
}

// PrintMessage outputs a simple message
func (o *Output) PrintMessage(msg string) {
	if o.format == "json" {
		data, _ := json.Marshal(map[string]string{"message": msg})
		fmt.Fprintln(o.w, string(data))
	} else {
		fmt.Fprintln(o.w, msg)
	}
}

func (o *Output) printJSON(data any) {
	enc := json.NewEncoder(o.w)
	enc.SetIndent("", "  ")
	_ = enc.Encode(data)
}

func (o *Output) printText(data any) {
	switch v := data.(type) {
	case response.GameState:
		o.printGameState(v)
	case response.DropResponse:
		o.printDropResponse(v)
	case response.Hints:
		o.printHints(v)
	case []response.Difficulty:
		o.printDifficulties(v)
	case response.Location:
		o.printLocation(v)
	case response.Health:
		fmt.Fprintf(o.w, "Status: %s\n", v.Status)
	default:
		// Fallback to JSON for unknown types
		o.printJSON(data)
	}
}

func (o *Output) printGameState(g response.GameState) {
	fmt.Fprintf(o.w, "Game: %s (%s)\n", g.GameID, g.Difficulty)
	fmt.Fprintf(o.w, "State: %s\n", g.State)
	fmt.Fprintf(o.w, "Score: %s  Best: %s\n", humanize.Comma(int64(g.Score)), humanize.Comma(int64(g.HighScore)))
	fmt.Fprintln(o.w)
	fmt.Fprint(o.w, RenderBoard(g))
	fmt.Fprintln(o.w)

	fmt.Fprintln(o.w, "Tray:")
	for i, p := range g.Tray {
		if p == nil {
			fmt.Fprintf(o.w, "  [%d] -\n", i+1)
			continue
		}
		held := ""
		if g.Drag != nil && g.Drag.PieceID == p.ID {
			held = " (held)"
		}
		fmt.Fprintf(o.w, "  [%d] #%d %s %s%s\n", i+1, p.ID, p.Name, RenderPiece(p), held)
	}

	if g.GameOver {
		fmt.Fprintln(o.w, "\nGame over! Run `blockhive game restart` to play again.")
	}
}

func (o *Output) printDropResponse(d response.DropResponse) {
	if d.Outcome.Accepted {
		fmt.Fprintf(o.w, "Placed at %d,%d for %d points\n", d.Outcome.Anchor.Q, d.Outcome.Anchor.R, d.Outcome.PointsAwarded)
		if d.Outcome.PendingClear {
			fmt.Fprintln(o.w, "Lines complete!")
		}
	} else {
		fmt.Fprintf(o.w, "Drop ignored: %s\n", strings.ReplaceAll(d.Outcome.Reason, "_", " "))
	}
	fmt.Fprintln(o.w)
	o.printGameState(d.Game)
}

func (o *Output) printHints(h response.Hints) {
	if len(h.Moves) == 0 {
		fmt.Fprintln(o.w, "Tray is empty")
		return
	}
	for _, m := range h.Moves {
		if len(m.Anchors) == 0 {
			fmt.Fprintf(o.w, "#%d: no room\n", m.PieceID)
			continue
		}
		keys := make([]string, len(m.Anchors))
		for i, a := range m.Anchors {
			keys[i] = fmt.Sprintf("%d,%d", a.Q, a.R)
		}
		fmt.Fprintf(o.w, "#%d: %s\n", m.PieceID, strings.Join(keys, "  "))
	}
}

func (o *Output) printDifficulties(levels []response.Difficulty) {
	for _, d := range levels {
		fmt.Fprintf(o.w, "%-7s radius %d, %d cells: %s\n", d.Name, d.BoardRadius, d.CellCount, strings.Join(d.Shapes, ", "))
	}
}

func (o *Output) printLocation(l response.Location) {
	where := "on the board"
	if !l.InBounds {
		where = "off the board"
	}
	fmt.Fprintf(o.w, "Cell %s (%s)\n", l.Key, where)
}
