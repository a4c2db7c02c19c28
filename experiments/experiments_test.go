package experiments

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"gamearena/engine"
	"gamearena/experiments/metrics"
	"gamearena/games/counting"
)

// chdirTemp moves the working directory into a fresh temp dir so result
// files land there, restoring the original directory on cleanup.
func chdirTemp(t *testing.T) string {
	t.Helper()
	orig, err := os.Getwd()
	require.NoError(t, err, "should read working directory")
	dir := t.TempDir()
	require.NoError(t, os.Chdir(dir), "should enter temp directory")
	t.Cleanup(func() { _ = os.Chdir(orig) })
	return dir
}

func TestRunWritesResults(t *testing.T) {
	dir := chdirTemp(t)

	configs := []metrics.AgentConfig{
		{ID: 0, Kind: "minimax", Depth: 4},
		{ID: 1, Kind: "first"},
	}
	x := &Experiment{
		Name:     "smoke",
		Game:     counting.Game{},
		Evaluate: counting.Evaluate,
		Configs:  configs,
		Matchups: [][2]metrics.AgentConfig{{configs[0], configs[1]}, {configs[1], configs[0]}},
		Contests: 2,
		Engine:   engine.Config{OnViolation: engine.Forfeit},
	}

	require.NoError(t, x.Run(context.Background()), "the experiment should run to completion")

	runs, err := filepath.Glob(filepath.Join(dir, "results", "smoke", "*"))
	require.NoError(t, err, "should list result directories")
	require.Len(t, runs, 1, "one timestamped directory per run")

	for _, name := range []string{"agent_configs.csv", "contest_records.csv", "move_records.csv"} {
		data, err := os.ReadFile(filepath.Join(runs[0], name))
		require.NoError(t, err, "%s should be written", name)
		require.NotEmpty(t, data, "%s should not be empty", name)
	}
}

func TestRunRejectsUnknownAgentKind(t *testing.T) {
	chdirTemp(t)

	bogus := metrics.AgentConfig{ID: 0, Kind: "oracle"}
	x := &Experiment{
		Name:     "bogus",
		Game:     counting.Game{},
		Matchups: [][2]metrics.AgentConfig{{bogus, bogus}},
		Contests: 1,
		Engine:   engine.Config{OnViolation: engine.Forfeit},
	}

	require.Error(t, x.Run(context.Background()), "an unknown agent kind must fail the run")
}
