package agent

import (
	"golang.org/x/exp/rand"

	"github.com/ncugit-sec/Game-2584/game"
)

// The baseline players share the player's terminal signalling but none of
// its learning machinery: each is a one-step comparison over the four
// simulated slides.

// DummyPlayer slides in a uniformly random legal direction.
type DummyPlayer struct {
	role string
	rng  *rand.Rand
}

var _ Agent = &DummyPlayer{}

func NewDummyPlayer(opts Options) *DummyPlayer {
	return &DummyPlayer{role: opts.Role, rng: newRand(opts)}
}

func (d *DummyPlayer) Name() string  { return Dummy.String() }
func (d *DummyPlayer) Role() string  { return d.role }
func (d *DummyPlayer) OpenEpisode()  {}
func (d *DummyPlayer) CloseEpisode() {}
func (d *DummyPlayer) Close() error  { return nil }

func (d *DummyPlayer) TakeAction(before game.Board) (game.Action, bool) {
	dirs := []int{game.Up, game.Right, game.Down, game.Left}
	d.rng.Shuffle(len(dirs), func(i, j int) {
		dirs[i], dirs[j] = dirs[j], dirs[i]
	})
	for _, dir := range dirs {
		after := before
		if after.Slide(dir) != game.Illegal {
			return game.SlideAction(dir), true
		}
	}
	return game.Action{}, false
}

// GreedyScorePlayer slides in the direction with the highest immediate
// merge reward, first direction winning ties.
type GreedyScorePlayer struct {
	role string
}

var _ Agent = &GreedyScorePlayer{}

func NewGreedyScorePlayer(opts Options) *GreedyScorePlayer {
	return &GreedyScorePlayer{role: opts.Role}
}

func (g *GreedyScorePlayer) Name() string  { return GreedyScore.String() }
func (g *GreedyScorePlayer) Role() string  { return g.role }
func (g *GreedyScorePlayer) OpenEpisode()  {}
func (g *GreedyScorePlayer) CloseEpisode() {}
func (g *GreedyScorePlayer) Close() error  { return nil }

func (g *GreedyScorePlayer) TakeAction(before game.Board) (game.Action, bool) {
	bestDir := -1
	bestReward := -1
	for dir := 0; dir < 4; dir++ {
		after := before
		reward := after.Slide(dir)
		if reward > bestReward {
			bestDir = dir
			bestReward = reward
		}
	}
	if bestReward == game.Illegal {
		return game.Action{}, false
	}
	return game.SlideAction(bestDir), true
}

// GreedyPosPlayer slides for the highest immediate reward, breaking reward
// ties by the fewest empty cells left on the afterstate.
type GreedyPosPlayer struct {
	role string
}

var _ Agent = &GreedyPosPlayer{}

func NewGreedyPosPlayer(opts Options) *GreedyPosPlayer {
	return &GreedyPosPlayer{role: opts.Role}
}

func (g *GreedyPosPlayer) Name() string  { return GreedyPos.String() }
func (g *GreedyPosPlayer) Role() string  { return g.role }
func (g *GreedyPosPlayer) OpenEpisode()  {}
func (g *GreedyPosPlayer) CloseEpisode() {}
func (g *GreedyPosPlayer) Close() error  { return nil }

func (g *GreedyPosPlayer) TakeAction(before game.Board) (game.Action, bool) {
	bestDir := -1
	bestReward := -1
	bestSpace := 17
	for dir := 0; dir < 4; dir++ {
		after := before
		reward := after.Slide(dir)
		if reward == game.Illegal {
			continue
		}
		space := after.SpaceLeft()
		if reward > bestReward || (reward == bestReward && space < bestSpace) {
			bestDir = dir
			bestReward = reward
			bestSpace = space
		}
	}
	if bestDir < 0 {
		return game.Action{}, false
	}
	return game.SlideAction(bestDir), true
}
