package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"gamearena/engine"
	"gamearena/experiments"
	"gamearena/experiments/metrics"
)

func benchCmd() *cobra.Command {
	var (
		gameName string
		contests int
		budget   time.Duration
		depths   []int
		seed     uint64
	)

	cmd := &cobra.Command{
		Use:   "bench",
		Short: "Benchmark minimax depths against a random baseline",
		RunE: func(cmd *cobra.Command, args []string) error {
			entry, err := lookupGame(gameName)
			if err != nil {
				return err
			}
			if len(depths) == 0 {
				return fmt.Errorf("at least one depth is required")
			}

			baseline := metrics.AgentConfig{ID: 0, Kind: "random", Seed: seed}
			configs := []metrics.AgentConfig{baseline}
			matchups := [][2]metrics.AgentConfig{}
			for i, depth := range depths {
				config := metrics.AgentConfig{
					ID:        i + 1,
					Kind:      "minimax",
					Depth:     depth,
					TableSize: 1 << 16,
				}
				configs = append(configs, config)
				matchups = append(matchups, [2]metrics.AgentConfig{config, baseline})
			}

			experiment := &experiments.Experiment{
				Name:     fmt.Sprintf("%s_depth", gameName),
				Game:     entry.game,
				Evaluate: entry.evaluate,
				Configs:  configs,
				Matchups: matchups,
				Contests: contests,
				Engine: engine.Config{
					MoveBudget:  budget,
					OnViolation: engine.Forfeit,
				},
			}
			return experiment.Run(cmd.Context())
		},
	}

	cmd.Flags().StringVar(&gameName, "game", "connect4", "game to benchmark on")
	cmd.Flags().IntVar(&contests, "contests", 10, "contests per matchup")
	cmd.Flags().DurationVar(&budget, "budget", time.Second, "per-move time budget")
	cmd.Flags().IntSliceVar(&depths, "depths", []int{2, 4, 6}, "minimax depths to benchmark")
	cmd.Flags().Uint64Var(&seed, "seed", 1, "baseline agent seed")
	return cmd
}
