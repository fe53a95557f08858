// Command sokoban solves and replays single Sokoban levels from the
// command line, the CLI front end sitting beside the sokoban library the
// way examples/sokoban/main.go once sat beside the teacher's solve package.
package main

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/bertbaron/sokoban"
	"github.com/bertbaron/sokoban/internal/render"
)

func main() {
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	zerolog.TimeFieldFormat = time.RFC3339

	if err := newRootCmd().Execute(); err != nil {
		log.Error().Err(err).Msg("sokoban: command failed")
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "sokoban",
		Short: "Solve and replay Sokoban levels",
	}
	root.AddCommand(newSolveCmd())
	root.AddCommand(newReplayCmd())
	return root
}

func newSolveCmd() *cobra.Command {
	var interleaved bool

	cmd := &cobra.Command{
		Use:   "solve <file>",
		Short: "Solve a single level and print the move string",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rows, err := readLevel(args[0])
			if err != nil {
				return err
			}

			start := time.Now()
			sol, ok, err := sokoban.Solve(rows, sokoban.Options{Interleaved: interleaved})
			if err != nil {
				return fmt.Errorf("sokoban: solve: %w", err)
			}
			elapsed := time.Since(start)

			logger := log.Info().
				Str("file", args[0]).
				Bool("solved", ok).
				Int("visited", sol.Visited).
				Int("expanded", sol.Expanded).
				Dur("elapsed", elapsed)

			if !ok {
				logger.Msg("no solution")
				fmt.Println("no solution")
				return nil
			}

			logger.Int("pushes", sol.Pushes).Msg("solved")
			fmt.Println(sol.Moves)
			return nil
		},
	}
	cmd.Flags().BoolVar(&interleaved, "interleaved", false, "include player-walk moves, not just pushes")
	return cmd
}

func newReplayCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "replay <file> <moves>",
		Short: "Replay a move string against a level, printing the board after each push",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			rows, err := readLevel(args[0])
			if err != nil {
				return err
			}
			moves := args[1]

			puzzle, err := sokoban.NewPuzzle(rows)
			if err != nil {
				return fmt.Errorf("sokoban: replay: %w", err)
			}
			fmt.Print(render.Board(puzzle.Grid(), puzzle.Boxes(), puzzle.Player(), puzzle.Goals()))

			steps, solved, err := sokoban.ReplaySteps(rows, moves)
			if err != nil {
				return fmt.Errorf("sokoban: replay: %w", err)
			}
			for _, step := range steps {
				if !step.Pushed {
					continue
				}
				fmt.Println()
				fmt.Print(render.Board(puzzle.Grid(), step.Boxes, step.Player, puzzle.Goals()))
			}

			log.Info().Str("file", args[0]).Bool("solved", solved).Msg("replay finished")
			return nil
		},
	}
	return cmd
}

func readLevel(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("sokoban: read %s: %w", path, err)
	}
	text := strings.TrimRight(string(data), "\n")
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	return lines, nil
}
