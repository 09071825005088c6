package arena

import (
	"fmt"
	"sort"
	"strings"

	"gonum.org/v1/gonum/stat"
)

// Statistic accumulates episode results in blocks of a fixed size and keeps
// the average score of every completed block, the raw material of the
// score-curve analyzers.
type Statistic struct {
	block int

	scores    []float64
	maxScore  int
	rankCount map[int]int

	episodes      int
	blockAverages []float64
}

func NewStatistic(block int) *Statistic {
	return &Statistic{
		block:     block,
		scores:    make([]float64, 0, block),
		rankCount: make(map[int]int),
	}
}

// Record adds one episode result; the block counters roll over when the
// block fills up.
func (s *Statistic) Record(r Result) {
	if len(s.scores) == s.block {
		s.rollBlock()
	}
	s.episodes++
	s.scores = append(s.scores, float64(r.Score))
	if r.Score > s.maxScore {
		s.maxScore = r.Score
	}
	s.rankCount[r.MaxRank]++
}

func (s *Statistic) rollBlock() {
	s.blockAverages = append(s.blockAverages, stat.Mean(s.scores, nil))
	s.scores = s.scores[:0]
	s.maxScore = 0
	s.rankCount = make(map[int]int)
}

// Episodes is the number of results recorded so far.
func (s *Statistic) Episodes() int { return s.episodes }

// EndOfBlock reports whether the current block just completed.
func (s *Statistic) EndOfBlock() bool { return len(s.scores) == s.block }

// AvgScore is the mean score of the episodes in the current block.
func (s *Statistic) AvgScore() float64 {
	if len(s.scores) == 0 {
		return 0
	}
	return stat.Mean(s.scores, nil)
}

// MaxScore is the best score seen in the current block.
func (s *Statistic) MaxScore() int { return s.maxScore }

// BlockAverages returns the average score of every completed block.
func (s *Statistic) BlockAverages() []float64 {
	out := make([]float64, len(s.blockAverages))
	copy(out, s.blockAverages)
	return out
}

// Summary renders the current block in the style of the classic statistic
// printout: episode count, average and max score, and the share of
// episodes that reached each of the top tile values.
func (s *Statistic) Summary() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%d\tavg = %.0f, max = %d", s.episodes, s.AvgScore(), s.maxScore)
	if len(s.scores) == 0 {
		return sb.String()
	}

	ranks := make([]int, 0, len(s.rankCount))
	for rank := range s.rankCount {
		ranks = append(ranks, rank)
	}
	sort.Ints(ranks)

	// share of episodes reaching at least each rank
	reached := 0
	for i := len(ranks) - 1; i >= 0; i-- {
		rank := ranks[i]
		reached += s.rankCount[rank]
		fmt.Fprintf(&sb, "\n\t%d\t%.1f%%", 1<<rank, float64(reached)*100/float64(len(s.scores)))
	}
	return sb.String()
}
