package arena

import (
	"fmt"
	"os"
	"path"
	"strconv"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
)

// Generic dataset that contains information after processing the results
type DataSet interface{}

// Analyzer compresses the stream of episode results to a DataSet
type Analyzer interface {
	// Run, episode number, experiment, result
	Analyze(int, int, string, Result)
	// Resulting dataset
	DataSet() DataSet
	// Reset the analyzer
	Reset()
}

// Comparator differentiates between different datasets with associated names
// run, experiment names, datasets
type Comparator func(int, []string, []DataSet)

func NoopComparator() Comparator {
	return func(i int, s []string, ds []DataSet) {}
}

// ScoreAnalyzer reduces the results to the average score per block of
// episodes.
type ScoreAnalyzer struct {
	stat *Statistic
}

var _ Analyzer = &ScoreAnalyzer{}

func NewScoreAnalyzer(block int) *ScoreAnalyzer {
	return &ScoreAnalyzer{stat: NewStatistic(block)}
}

func (s *ScoreAnalyzer) Analyze(run, episode int, name string, r Result) {
	s.stat.Record(r)
}

func (s *ScoreAnalyzer) DataSet() DataSet {
	averages := s.stat.BlockAverages()
	if len(s.stat.scores) > 0 {
		averages = append(averages, s.stat.AvgScore())
	}
	return averages
}

func (s *ScoreAnalyzer) Reset() {
	s.stat = NewStatistic(s.stat.block)
}

// ScorePlotter draws one average-score curve per experiment into a PNG
// under plotPath.
func ScorePlotter(plotPath string) Comparator {
	if _, err := os.Stat(plotPath); err != nil {
		os.MkdirAll(plotPath, os.ModePerm)
	}
	return func(run int, names []string, ds []DataSet) {
		p := plot.New()
		p.Title.Text = "Training comparison"
		p.X.Label.Text = "Block"
		p.Y.Label.Text = "Average score"
		for i := 0; i < len(names); i++ {
			averages := ds[i].([]float64)
			points := make(plotter.XYs, len(averages))
			for j, v := range averages {
				points[j] = plotter.XY{
					X: float64(j),
					Y: v,
				}
			}
			line, err := plotter.NewLine(points)
			if err != nil {
				continue
			}
			line.Color = plotutil.Color(i)
			p.Add(line)
			p.Legend.Add(names[i], line)
			if len(averages) > 0 {
				fmt.Printf("Final block average: %.0f for experiment: %s\n", averages[len(averages)-1], names[i])
			}
		}
		p.Save(8*vg.Inch, 8*vg.Inch, path.Join(plotPath, strconv.Itoa(run)+"_scores.png"))
	}
}
