package cmd

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"gamearena/agent"
	"gamearena/engine"
	"gamearena/game"
	"gamearena/games/connect4"
	"gamearena/games/counting"
	"gamearena/games/tictactoe"
	"gamearena/searcher"
)

type gameEntry struct {
	game     game.Game
	evaluate game.Evaluate
	parse    engine.MoveParser
}

var gamesByName = map[string]gameEntry{
	"tictactoe": {tictactoe.Game{}, tictactoe.Evaluate, tictactoe.ParseMove},
	"counting":  {counting.Game{}, counting.Evaluate, counting.ParseMove},
	"connect4":  {connect4.Game{}, connect4.Evaluate, connect4.ParseMove},
}

func lookupGame(name string) (gameEntry, error) {
	entry, ok := gamesByName[name]
	if !ok {
		names := make([]string, 0, len(gamesByName))
		for n := range gamesByName {
			names = append(names, n)
		}
		return gameEntry{}, fmt.Errorf("unknown game %q (available: %s)", name, strings.Join(names, ", "))
	}
	return entry, nil
}

// buildAgent parses an agent spec of the form "kind" or "kind:arg":
// minimax[:depth], random[:seed], first.
func buildAgent(spec string, entry gameEntry) (agent.Agent, error) {
	kind, arg, _ := strings.Cut(spec, ":")
	switch kind {
	case "minimax":
		depth := searcher.DefaultDepth
		if arg != "" {
			var err error
			depth, err = strconv.Atoi(arg)
			if err != nil || depth <= 0 {
				return nil, fmt.Errorf("invalid minimax depth %q", arg)
			}
		}
		return searcher.NewMinimax(
			searcher.WithDepth(depth),
			searcher.WithEvaluationFn(entry.evaluate),
			searcher.WithTableSize(1<<16),
		), nil
	case "random":
		seed := uint64(time.Now().UnixNano())
		if arg != "" {
			var err error
			seed, err = strconv.ParseUint(arg, 10, 64)
			if err != nil {
				return nil, fmt.Errorf("invalid random seed %q", arg)
			}
		}
		return agent.NewRandom(seed), nil
	case "first":
		return agent.First{}, nil
	default:
		return nil, fmt.Errorf("unknown agent kind %q", kind)
	}
}
