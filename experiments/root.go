package experiments

import "github.com/spf13/cobra"

var (
	episodes int
	block    int
	saveDir  string
	runs     int
)

func GetRootCommand() *cobra.Command {
	rootCommand := &cobra.Command{
		Use:   "game2584",
		Short: "Train and evaluate n-tuple TD agents for the 4x4 merge puzzle",
	}
	rootCommand.PersistentFlags().IntVarP(&episodes, "episodes", "e", 100000, "Number of episodes to run")
	rootCommand.PersistentFlags().IntVar(&block, "block", 1000, "Statistic block size")
	rootCommand.PersistentFlags().StringVarP(&saveDir, "save-dir", "s", "results", "Save the result data in the specified folder")
	rootCommand.PersistentFlags().IntVar(&runs, "runs", 1, "Number of experiment runs")
	// adding the subcommands here
	rootCommand.AddCommand(TrainCommand())
	rootCommand.AddCommand(PlayCommand())
	rootCommand.AddCommand(CompareCommand())
	return rootCommand
}
