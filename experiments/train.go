package experiments

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/spf13/cobra"

	"github.com/ncugit-sec/Game-2584/agent"
	"github.com/ncugit-sec/Game-2584/arena"
	"github.com/ncugit-sec/Game-2584/monitor"
)

// Train runs TD self-play training against the random tile environment.
func Train(ctx context.Context, playerArgs, envArgs, monitorAddr string) error {
	playerOpts, err := agent.ParseOptions(playerArgs)
	if err != nil {
		return fmt.Errorf("player options: %w", err)
	}
	envOpts, err := agent.ParseOptions(envArgs)
	if err != nil {
		return fmt.Errorf("environment options: %w", err)
	}

	config := &arena.ComparisonConfig{
		Runs:       runs,
		Episodes:   episodes,
		Block:      block,
		RecordPath: saveDir,
	}

	if monitorAddr != "" {
		m := monitor.New(monitorAddr)
		m.Start()
		defer func() {
			shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Second)
			defer cancel()
			m.Stop(shutdownCtx)
		}()
		config.Progress = func(name string, stat *arena.Statistic) {
			m.Update(monitor.Snapshot{
				Experiment: name,
				Episodes:   stat.Episodes(),
				AvgScore:   stat.AvgScore(),
				MaxScore:   stat.MaxScore(),
			})
		}
	}

	c := arena.NewComparison(config)
	c.AddAnalysis("scores", arena.NewScoreAnalyzer(block), arena.ScorePlotter(saveDir))
	c.AddExperiment(arena.NewExperiment(
		"TD",
		func() (agent.Agent, error) { return agent.New(playerOpts) },
		func() (agent.Agent, error) { return agent.New(envOpts) },
	))

	return c.Run(ctx)
}

func TrainCommand() *cobra.Command {
	var alpha float64
	var seed string
	var load string
	var save string
	var monitorAddr string

	cmd := &cobra.Command{
		Use:   "train",
		Short: "Train a TD n-tuple player with self-play",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
			defer cancel()

			playerArgs := fmt.Sprintf("name=TD role=player init=true alpha=%v", alpha)
			if load != "" {
				playerArgs += " load=" + load
			}
			if save != "" {
				playerArgs += " save=" + save
			}
			envArgs := "name=random role=environment"
			if seed != "" {
				envArgs += " seed=" + seed
			}
			return Train(ctx, playerArgs, envArgs, monitorAddr)
		},
	}
	cmd.PersistentFlags().Float64Var(&alpha, "alpha", 0.005, "Learning rate")
	cmd.PersistentFlags().StringVar(&seed, "seed", "", "Environment RNG seed")
	cmd.PersistentFlags().StringVar(&load, "load", "", "Weight file to resume from")
	cmd.PersistentFlags().StringVar(&save, "weights", "", "Weight file to write on completion")
	cmd.PersistentFlags().StringVar(&monitorAddr, "monitor", "", "Address for the live stats endpoint, e.g. localhost:8080")
	return cmd
}
