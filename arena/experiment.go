package arena

import (
	"context"
	"fmt"
	"os"
	"path"
	"strconv"

	"github.com/ncugit-sec/Game-2584/agent"
	"github.com/ncugit-sec/Game-2584/util"
)

// Experiment names a player/environment pairing. Constructors are invoked
// once per run so every run starts from fresh agent state.
type Experiment struct {
	Name   string
	Player func() (agent.Agent, error)
	Env    func() (agent.Agent, error)
}

// NewExperiment creates a new experiment instance.
func NewExperiment(name string, player, env func() (agent.Agent, error)) *Experiment {
	return &Experiment{Name: name, Player: player, Env: env}
}

// ProgressFunc observes the live statistic after every recorded episode.
type ProgressFunc func(name string, stat *Statistic)

// ComparisonConfig contains the configuration for the comparison.
type ComparisonConfig struct {
	Runs     int // number of runs
	Episodes int // number of episodes per experiment per run
	Block    int // statistic block size

	RecordPath string // path to store summaries and plots

	Progress ProgressFunc // optional live observer
}

// Comparison runs the experiments for a number of runs and episodes,
// feeding every episode result to the analyzers and every run's datasets
// to the comparators.
type Comparison struct {
	Experiments []*Experiment
	analyzers   map[string]Analyzer
	comparators map[string]Comparator
	cConfig     *ComparisonConfig
}

// NewComparison creates a comparison instance.
func NewComparison(config *ComparisonConfig) *Comparison {
	if config.Block <= 0 {
		config.Block = 1000
	}
	if config.RecordPath != "" {
		os.MkdirAll(config.RecordPath, 0777)
	}
	return &Comparison{
		Experiments: make([]*Experiment, 0),
		analyzers:   make(map[string]Analyzer),
		comparators: make(map[string]Comparator),
		cConfig:     config,
	}
}

// AddAnalysis adds an analyzer and comparator to the comparison.
func (c *Comparison) AddAnalysis(name string, analyzer Analyzer, comparator Comparator) {
	c.analyzers[name] = analyzer
	c.comparators[name] = comparator
}

// AddExperiment adds an experiment to compare.
func (c *Comparison) AddExperiment(e *Experiment) {
	c.Experiments = append(c.Experiments, e)
}

// Run the comparison. The context cancels between episodes.
func (c *Comparison) Run(ctx context.Context) error {
	for run := 0; run < c.cConfig.Runs; run++ {
		fmt.Printf("Run %d\n", run+1)
		datasets := make(map[string][]DataSet)
		for name := range c.analyzers {
			datasets[name] = make([]DataSet, len(c.Experiments))
		}

		names := make([]string, len(c.Experiments))
		for i, e := range c.Experiments {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}
			if err := c.runExperiment(ctx, run, e); err != nil {
				return fmt.Errorf("experiment %s: %w", e.Name, err)
			}
			for name, a := range c.analyzers {
				datasets[name][i] = a.DataSet()
				a.Reset()
			}
			names[i] = e.Name
		}
		for name, comp := range c.comparators {
			comp(run, names, datasets[name])
		}
	}
	return nil
}

// runExperiment plays the configured number of episodes for one experiment
// and streams the results to the statistic and the analyzers.
func (c *Comparison) runExperiment(ctx context.Context, run int, e *Experiment) error {
	player, err := e.Player()
	if err != nil {
		return err
	}
	env, err := e.Env()
	if err != nil {
		player.Close()
		return err
	}

	stat := NewStatistic(c.cConfig.Block)
	for episode := 1; episode <= c.cConfig.Episodes; episode++ {
		select {
		case <-ctx.Done():
			player.Close()
			env.Close()
			return ctx.Err()
		default:
		}

		res := RunEpisode(player, env)
		stat.Record(res)
		for _, a := range c.analyzers {
			a.Analyze(run, episode, e.Name, res)
		}
		if c.cConfig.Progress != nil {
			c.cConfig.Progress(e.Name, stat)
		}

		fmt.Printf("\rExp:%s, Eps:%d/%d, Avg:%.0f, Max:%d",
			e.Name, episode, c.cConfig.Episodes, stat.AvgScore(), stat.MaxScore())
		if stat.EndOfBlock() {
			fmt.Println("")
			fmt.Println(stat.Summary())
			c.recordSummary(run, e.Name, stat)
		}
	}
	fmt.Println("")

	if err := player.Close(); err != nil {
		env.Close()
		return err
	}
	return env.Close()
}

func (c *Comparison) recordSummary(run int, name string, stat *Statistic) {
	if c.cConfig.RecordPath == "" {
		return
	}
	summaryFile := path.Join(c.cConfig.RecordPath, name+"_"+strconv.Itoa(run)+".txt")
	util.AppendToFile(summaryFile, stat.Summary())
}
