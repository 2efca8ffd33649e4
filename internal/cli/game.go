package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/mcoot/blockhive/internal/api/request"
	"github.com/mcoot/blockhive/internal/api/response"
	"github.com/mcoot/blockhive/internal/model"
)

func newGameCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "game",
		Short: "Game commands",
	}

	cmd.AddCommand(newGameShowCmd())
	cmd.AddCommand(newGameDragCmd())
	cmd.AddCommand(newGameHoverCmd())
	cmd.AddCommand(newGameDropCmd())
	cmd.AddCommand(newGamePlaceCmd())
	cmd.AddCommand(newGameReleaseCmd())
	cmd.AddCommand(newGameRestartCmd())
	cmd.AddCommand(newGameDifficultyCmd())
	cmd.AddCommand(newGameHintsCmd())

	return cmd
}

func newGameShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show the board, tray and score",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var result response.GameState

			if err := client.Get("/api/v1/game", &result); err != nil {
				return err
			}

			NewOutput(cfg.Output, cmd.OutOrStdout()).Print(result)
			return nil
		},
	}
}

func newGameDragCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "drag <piece> [offset-q offset-r]",
		Short: "Pick up a tray piece, optionally pinning one of its cells",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 && len(args) != 3 {
				return fmt.Errorf("expected <piece> or <piece> <offset-q> <offset-r>")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			pieceID, err := parseInt("piece", args[0])
			if err != nil {
				return err
			}

			req := request.DragRequest{PieceID: pieceID}
			if len(args) == 3 {
				offset, err := parseCoord(args[1], args[2])
				if err != nil {
					return err
				}
				req.Offset = &offset
			}

			var result response.GameState
			if err := client.Post("/api/v1/game/drag", req, &result); err != nil {
				return err
			}

			NewOutput(cfg.Output, cmd.OutOrStdout()).Print(result)
			return nil
		},
	}
}

func newGameHoverCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "hover [q r]",
		Short: "Preview the held piece at a cell; no arguments leaves the board",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 0 && len(args) != 2 {
				return fmt.Errorf("expected no arguments or <q> <r>")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			var req request.TargetRequest
			if len(args) == 2 {
				coord, err := parseCoord(args[0], args[1])
				if err != nil {
					return err
				}
				req.Coord = &coord
			}

			var result response.GameState
			if err := client.Post("/api/v1/game/hover", req, &result); err != nil {
				return err
			}

			NewOutput(cfg.Output, cmd.OutOrStdout()).Print(result)
			return nil
		},
	}
}

func newGameDropCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "drop <q> <r>",
		Short: "Drop the held piece with its pinned cell on (q, r)",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			coord, err := parseCoord(args[0], args[1])
			if err != nil {
				return err
			}

			var result response.DropResponse
			if err := client.Post("/api/v1/game/drop", request.TargetRequest{Coord: &coord}, &result); err != nil {
				return err
			}

			NewOutput(cfg.Output, cmd.OutOrStdout()).Print(result)
			return nil
		},
	}
}

func newGamePlaceCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "place <piece> <q> <r>",
		Short: "Drag and drop a piece with its origin cell on (q, r)",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			pieceID, err := parseInt("piece", args[0])
			if err != nil {
				return err
			}
			coord, err := parseCoord(args[1], args[2])
			if err != nil {
				return err
			}

			req := request.PlaceRequest{
				DragRequest:   request.DragRequest{PieceID: pieceID},
				TargetRequest: request.TargetRequest{Coord: &coord},
			}

			var result response.DropResponse
			if err := client.Post("/api/v1/game/place", req, &result); err != nil {
				return err
			}

			NewOutput(cfg.Output, cmd.OutOrStdout()).Print(result)
			return nil
		},
	}
}

func newGameReleaseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "release",
		Short: "Put the held piece back in the tray",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var result response.GameState

			if err := client.Delete("/api/v1/game/drag", &result); err != nil {
				return err
			}

			NewOutput(cfg.Output, cmd.OutOrStdout()).Print(result)
			return nil
		},
	}
}

func newGameRestartCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "restart",
		Short: "Start a new game at the current difficulty",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var result response.GameState

			if err := client.Post("/api/v1/game/restart", nil, &result); err != nil {
				return err
			}

			NewOutput(cfg.Output, cmd.OutOrStdout()).Print(result)
			return nil
		},
	}
}

func newGameDifficultyCmd() *cobra.Command {
	return &cobra.Command{
		Use:       "difficulty <easy|medium|hard>",
		Short:     "Switch difficulty and start a new game",
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{"easy", "medium", "hard"},
		RunE: func(cmd *cobra.Command, args []string) error {
			var result response.GameState

			req := request.DifficultyRequest{Difficulty: args[0]}
			if err := client.Put("/api/v1/game/difficulty", req, &result); err != nil {
				return err
			}

			NewOutput(cfg.Output, cmd.OutOrStdout()).Print(result)
			return nil
		},
	}
}

func newGameHintsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "hints",
		Short: "List where each tray piece fits",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var result response.Hints

			if err := client.Get("/api/v1/game/hints", &result); err != nil {
				return err
			}

			NewOutput(cfg.Output, cmd.OutOrStdout()).Print(result)
			return nil
		},
	}
}

func newLocateCmd() *cobra.Command {
	var hexSize float64

	cmd := &cobra.Command{
		Use:   "locate <x> <y>",
		Short: "Find the cell under a board-local pixel point",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			x, err := strconv.ParseFloat(args[0], 64)
			if err != nil {
				return fmt.Errorf("invalid x %q", args[0])
			}
			y, err := strconv.ParseFloat(args[1], 64)
			if err != nil {
				return fmt.Errorf("invalid y %q", args[1])
			}

			var result response.Location
			req := request.LocateRequest{X: x, Y: y, HexSize: hexSize}
			if err := client.Post("/api/v1/board/locate", req, &result); err != nil {
				return err
			}

			NewOutput(cfg.Output, cmd.OutOrStdout()).Print(result)
			return nil
		},
	}

	cmd.Flags().Float64Var(&hexSize, "hex-size", model.DefaultHexSize, "Hex radius in pixels")

	return cmd
}

func newDifficultiesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "difficulties",
		Short: "List the difficulty levels",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var result []response.Difficulty

			if err := client.Get("/api/v1/difficulties", &result); err != nil {
				return err
			}

			NewOutput(cfg.Output, cmd.OutOrStdout()).Print(result)
			return nil
		},
	}
}

func parseInt(name, s string) (int, error) {
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q", name, s)
	}
	return v, nil
}

func parseCoord(q, r string) (model.Coord, error) {
	qv, err := parseInt("q", q)
	if err != nil {
		return model.Coord{}, err
	}
	rv, err := parseInt("r", r)
	if err != nil {
		return model.Coord{}, err
	}
	return model.Coord{Q: qv, R: rv}, nil
}
