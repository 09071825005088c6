package experiments

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/ncugit-sec/Game-2584/agent"
	"github.com/ncugit-sec/Game-2584/arena"
)

// Compare pits the TD learner against the non-learning baselines and plots
// the average-score curves per run.
func Compare(ctx context.Context, alpha float64, seed string) error {
	envArgs := "name=random role=environment"
	if seed != "" {
		envArgs += " seed=" + seed
	}
	envOpts, err := agent.ParseOptions(envArgs)
	if err != nil {
		return fmt.Errorf("environment options: %w", err)
	}
	env := func() (agent.Agent, error) { return agent.New(envOpts) }

	players := []string{
		fmt.Sprintf("name=TD role=player init=true alpha=%v", alpha),
		"name=greedy_score role=player",
		"name=greedy_pos role=player",
		"name=dummy role=player",
	}

	c := arena.NewComparison(&arena.ComparisonConfig{
		Runs:       runs,
		Episodes:   episodes,
		Block:      block,
		RecordPath: saveDir,
	})
	c.AddAnalysis("scores", arena.NewScoreAnalyzer(block), arena.ScorePlotter(saveDir))

	for _, args := range players {
		opts, err := agent.ParseOptions(args)
		if err != nil {
			return fmt.Errorf("player options: %w", err)
		}
		c.AddExperiment(arena.NewExperiment(
			opts.Kind.String(),
			func() (agent.Agent, error) { return agent.New(opts) },
			env,
		))
	}

	return c.Run(ctx)
}

func CompareCommand() *cobra.Command {
	var alpha float64
	var seed string

	cmd := &cobra.Command{
		Use:   "compare",
		Short: "Compare the TD learner against the greedy and random baselines",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
			defer cancel()
			return Compare(ctx, alpha, seed)
		},
	}
	cmd.PersistentFlags().Float64Var(&alpha, "alpha", 0.005, "TD learning rate")
	cmd.PersistentFlags().StringVar(&seed, "seed", "", "Environment RNG seed")
	return cmd
}
