package main

import (
	"fmt"
	"os"

	"github.com/ncugit-sec/Game-2584/experiments"
)

// main entry point to training, evaluation and comparison runs
func main() {
	// rootCommand defines a command line argument parser (some arguments and a subcommand to run)
	rootCommand := experiments.GetRootCommand()
	if err := rootCommand.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
