// Command sokobench iterates a YAML level pack and reports how many
// levels solve within a time budget, the batch-run counterpart of the
// commented-out level-file loop in original_source/src/main.rs (solved vs.
// missed, percentage), rebuilt atop this module's own level-pack format.
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/bertbaron/sokoban"
	"github.com/bertbaron/sokoban/internal/levelpack"
)

func main() {
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	zerolog.TimeFieldFormat = time.RFC3339

	if err := newRootCmd().Execute(); err != nil {
		log.Error().Err(err).Msg("sokobench: run failed")
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var packPath string
	var timeout time.Duration

	cmd := &cobra.Command{
		Use:   "sokobench",
		Short: "Iterate a YAML level pack and report solved/missed levels",
		RunE: func(cmd *cobra.Command, args []string) error {
			if packPath == "" {
				return fmt.Errorf("sokobench: --pack is required")
			}
			return run(packPath, timeout)
		},
	}
	cmd.Flags().StringVar(&packPath, "pack", "", "path to a YAML level pack manifest")
	cmd.Flags().DurationVar(&timeout, "timeout", 30*time.Second, "per-level solve budget")
	return cmd
}

func run(packPath string, timeout time.Duration) error {
	runID := uuid.New()
	pack, err := levelpack.Load(packPath)
	if err != nil {
		return err
	}

	log.Info().
		Str("run_id", runID.String()).
		Str("pack", pack.Name).
		Int("levels", len(pack.Levels)).
		Msg("sokobench: starting run")

	found, missed := 0, 0
	for i, lvl := range pack.Levels {
		result, err := solveWithin(lvl, timeout)
		entry := log.Info().
			Str("run_id", runID.String()).
			Int("index", i).
			Str("level", lvl.Name)

		switch {
		case err != nil:
			missed++
			entry.Err(err).Msg("level rejected")
		case !result.ok:
			missed++
			entry.Dur("elapsed", result.elapsed).Msg("no solution")
		default:
			found++
			entry.Dur("elapsed", result.elapsed).Int("pushes", result.sol.Pushes).Msg("solved")
		}
	}

	total := found + missed
	percent := 0.0
	if total > 0 {
		percent = float64(found) / float64(total) * 100
	}
	log.Info().
		Str("run_id", runID.String()).
		Int("found", found).
		Int("missed", missed).
		Float64("percent", percent).
		Msg("sokobench: run complete")

	fmt.Printf("Found: %d, Missed: %d -> %.0f%%\n", found, missed, percent)
	return nil
}

type benchResult struct {
	ok      bool
	sol     sokoban.Solution
	elapsed time.Duration
}

// solveWithin runs a single level's solve on its own goroutine and gives up
// after timeout, so one pathological level can't stall the whole pack run.
func solveWithin(lvl levelpack.Level, timeout time.Duration) (benchResult, error) {
	type outcome struct {
		sol sokoban.Solution
		ok  bool
		err error
	}
	done := make(chan outcome, 1)
	start := time.Now()

	go func() {
		sol, ok, err := sokoban.Solve(lvl.Rows, sokoban.Options{})
		done <- outcome{sol: sol, ok: ok, err: err}
	}()

	select {
	case o := <-done:
		return benchResult{ok: o.ok, sol: o.sol, elapsed: time.Since(start)}, o.err
	case <-time.After(timeout):
		return benchResult{ok: false, elapsed: time.Since(start)}, fmt.Errorf("sokobench: level %q exceeded %s", lvl.Name, timeout)
	}
}
