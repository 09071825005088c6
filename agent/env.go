package agent

import (
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/sampleuv"

	"github.com/ncugit-sec/Game-2584/game"
)

// tileWeights is the spawn distribution: rank 1 with probability 0.9,
// rank 2 with probability 0.1.
var tileWeights = []float64{0.9, 0.1}

// Env is the environment agent: after each player move it places a new
// tile on a uniformly random empty cell.
type Env struct {
	role string
	rng  *rand.Rand
	src  rand.Source
}

var _ Agent = &Env{}

func NewRandomEnv(opts Options) *Env {
	src := newSource(opts)
	return &Env{role: opts.Role, rng: rand.New(src), src: src}
}

func (e *Env) Name() string  { return RandomEnv.String() }
func (e *Env) Role() string  { return e.role }
func (e *Env) OpenEpisode()  {}
func (e *Env) CloseEpisode() {}
func (e *Env) Close() error  { return nil }

// TakeAction places a new tile on a random empty cell of the afterstate,
// ok is false on a full board.
func (e *Env) TakeAction(after game.Board) (game.Action, bool) {
	space := make([]int, 16)
	for i := range space {
		space[i] = i
	}
	e.rng.Shuffle(len(space), func(i, j int) {
		space[i], space[j] = space[j], space[i]
	})

	for _, pos := range space {
		if after.Cell(pos) != 0 {
			continue
		}
		rank := 1
		if i, ok := sampleuv.NewWeighted(tileWeights, e.src).Take(); ok {
			rank = i + 1
		}
		return game.PlaceAction(pos, rank), true
	}
	return game.Action{}, false
}
