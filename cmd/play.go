package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"gamearena/engine"
	"gamearena/game"
)

// contestFile is the YAML form of a contest configuration.
type contestFile struct {
	MoveBudget  string `yaml:"move_budget"`
	Tolerance   string `yaml:"tolerance"`
	OnViolation string `yaml:"on_violation"`
	MaxMoves    int    `yaml:"max_moves"`
}

func loadContestConfig(path string) (engine.Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return engine.Config{}, fmt.Errorf("failed to read config file: %w", err)
	}

	var file contestFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return engine.Config{}, fmt.Errorf("failed to parse config file: %w", err)
	}

	var config engine.Config
	if file.MoveBudget != "" {
		config.MoveBudget, err = time.ParseDuration(file.MoveBudget)
		if err != nil {
			return engine.Config{}, fmt.Errorf("invalid move_budget: %w", err)
		}
	}
	if file.Tolerance != "" {
		config.Tolerance, err = time.ParseDuration(file.Tolerance)
		if err != nil {
			return engine.Config{}, fmt.Errorf("invalid tolerance: %w", err)
		}
	}
	if file.OnViolation != "" {
		config.OnViolation, err = engine.ParseViolation(file.OnViolation)
		if err != nil {
			return engine.Config{}, err
		}
	}
	config.MaxMoves = file.MaxMoves
	return config, nil
}

func playCmd() *cobra.Command {
	var (
		gameName    string
		whiteSpec   string
		blackSpec   string
		budget      time.Duration
		onViolation string
		configPath  string
		savePath    string
	)

	cmd := &cobra.Command{
		Use:   "play",
		Short: "Play one contest between two agents",
		RunE: func(cmd *cobra.Command, args []string) error {
			entry, err := lookupGame(gameName)
			if err != nil {
				return err
			}

			var config engine.Config
			if configPath != "" {
				config, err = loadContestConfig(configPath)
				if err != nil {
					return err
				}
			}
			if configPath == "" || cmd.Flags().Changed("budget") {
				config.MoveBudget = budget
			}
			if cmd.Flags().Changed("on-violation") || config.OnViolation == 0 {
				config.OnViolation, err = engine.ParseViolation(onViolation)
				if err != nil {
					return err
				}
			}

			white, err := buildAgent(whiteSpec, entry)
			if err != nil {
				return fmt.Errorf("white: %w", err)
			}
			black, err := buildAgent(blackSpec, entry)
			if err != nil {
				return fmt.Errorf("black: %w", err)
			}

			history, result, err := engine.Play(cmd.Context(), entry.game, white, black, config)
			if err != nil {
				return err
			}

			if result.Draw() {
				fmt.Printf("Draw after %d moves\n", history.Len())
			} else {
				fmt.Printf("%s wins after %d moves", result.Winner, history.Len())
				if result.Forfeited {
					fmt.Printf(" (by forfeit)")
				}
				fmt.Println()
			}
			fmt.Printf("Utility: white %+.0f, black %+.0f\n",
				result.Utility(game.White), result.Utility(game.Black))

			if savePath != "" {
				f, err := os.Create(savePath)
				if err != nil {
					return fmt.Errorf("failed to create history file: %w", err)
				}
				defer f.Close()
				if err := history.Save(f, entry.game); err != nil {
					return err
				}
				fmt.Printf("History saved to %s\n", savePath)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&gameName, "game", "tictactoe", "game to play")
	cmd.Flags().StringVar(&whiteSpec, "white", "minimax", "white agent spec (minimax[:depth], random[:seed], first)")
	cmd.Flags().StringVar(&blackSpec, "black", "minimax", "black agent spec")
	cmd.Flags().DurationVar(&budget, "budget", time.Second, "per-move time budget (0 = unlimited)")
	cmd.Flags().StringVar(&onViolation, "on-violation", "forfeit", "violation policy: forfeit or abort")
	cmd.Flags().StringVar(&configPath, "config", "", "contest config YAML file")
	cmd.Flags().StringVar(&savePath, "save", "", "write the contest history to a JSON file")
	return cmd
}
