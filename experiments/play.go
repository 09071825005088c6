package experiments

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path"

	"github.com/spf13/cobra"

	"github.com/ncugit-sec/Game-2584/agent"
	"github.com/ncugit-sec/Game-2584/arena"
	"github.com/ncugit-sec/Game-2584/util"
)

// Play evaluates a frozen player: learning rate 0, weights read from file.
func Play(ctx context.Context, load, seed string) error {
	playerArgs := "name=TD role=player alpha=0 load=" + load
	playerOpts, err := agent.ParseOptions(playerArgs)
	if err != nil {
		return fmt.Errorf("player options: %w", err)
	}
	player, err := agent.New(playerOpts)
	if err != nil {
		return err
	}
	defer player.Close()

	envArgs := "name=random role=environment"
	if seed != "" {
		envArgs += " seed=" + seed
	}
	envOpts, err := agent.ParseOptions(envArgs)
	if err != nil {
		return fmt.Errorf("environment options: %w", err)
	}
	env, err := agent.New(envOpts)
	if err != nil {
		return err
	}
	defer env.Close()

	stat := arena.NewStatistic(block)
	for episode := 1; episode <= episodes; episode++ {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}
		res := arena.RunEpisode(player, env)
		stat.Record(res)
		fmt.Printf("episode %d\tscore = %d, max tile = %d, moves = %d\n",
			episode, res.Score, 1<<res.MaxRank, res.Moves)
	}
	fmt.Println(stat.Summary())

	if saveDir != "" {
		os.MkdirAll(saveDir, 0777)
		return util.WriteToFile(path.Join(saveDir, "play_summary.txt"), stat.Summary())
	}
	return nil
}

func PlayCommand() *cobra.Command {
	var load string
	var seed string

	cmd := &cobra.Command{
		Use:   "play",
		Short: "Evaluate a trained player without learning",
		RunE: func(cmd *cobra.Command, args []string) error {
			if load == "" {
				return fmt.Errorf("a weight file is required, pass --load")
			}
			ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
			defer cancel()
			return Play(ctx, load, seed)
		},
	}
	cmd.PersistentFlags().StringVar(&load, "load", "", "Weight file to evaluate")
	cmd.PersistentFlags().StringVar(&seed, "seed", "", "Environment RNG seed")
	return cmd
}
