package agent

import (
	"fmt"
	"math"

	"github.com/ncugit-sec/Game-2584/game"
	"github.com/ncugit-sec/Game-2584/ntuple"
)

// step is one trajectory entry: the reward of the chosen slide and the
// afterstate it produced, before any new tile was spawned.
type step struct {
	reward int
	after  game.Board
}

// Player is the TD(0) learning agent. It selects slides by one-step
// lookahead over afterstates with its n-tuple network, records the episode
// trajectory, and updates the network backward through the trajectory when
// the episode closes. A Player owns its network and history exclusively.
type Player struct {
	role     string
	alpha    float64
	net      *ntuple.Network
	history  []step
	savePath string
}

var _ Agent = &Player{}

// NewPlayer builds a TD player. Weights start zeroed; a configured load
// path replaces them, and a failed load or a later failed save is returned
// as an error rather than continuing with partial weight state.
func NewPlayer(opts Options) (*Player, error) {
	p := &Player{
		role:     opts.Role,
		alpha:    opts.Alpha,
		net:      ntuple.NewNetwork(),
		history:  make([]step, 0),
		savePath: opts.SavePath,
	}
	if opts.LoadPath != "" {
		if err := p.net.Load(opts.LoadPath); err != nil {
			return nil, fmt.Errorf("loading player weights: %w", err)
		}
	}
	return p, nil
}

func (p *Player) Name() string { return TD.String() }
func (p *Player) Role() string { return p.role }

// Network exposes the player's value function, for evaluation and tests.
func (p *Player) Network() *ntuple.Network { return p.net }

// OpenEpisode discards the previous trajectory.
func (p *Player) OpenEpisode() {
	p.history = p.history[:0]
}

// CloseEpisode runs the backward TD(0) pass over the episode trajectory.
// The terminal afterstate is pulled toward 0, then each earlier afterstate
// toward the next step's reward plus the already-updated estimate of the
// next afterstate. Later adjustments feeding earlier targets within the
// same pass is the intended online update. The trajectory stays readable
// until the next OpenEpisode.
func (p *Player) CloseEpisode() {
	if len(p.history) == 0 || p.alpha == 0 {
		return
	}
	last := p.history[len(p.history)-1]
	p.net.Adjust(last.after, 0, p.alpha)
	for i := len(p.history) - 2; i >= 0; i-- {
		next := p.history[i+1]
		target := float64(next.reward) + p.net.Estimate(next.after)
		p.net.Adjust(p.history[i].after, target, p.alpha)
	}
}

// TakeAction evaluates the four directions on private copies of the board
// and picks the one maximizing reward + estimated afterstate value. The
// comparison is strict, so the first direction in {up, right, down, left}
// wins ties. The chosen (reward, afterstate) pair is appended to the
// trajectory; ok is false when no direction is legal.
func (p *Player) TakeAction(before game.Board) (game.Action, bool) {
	bestDir := -1
	bestReward := -1
	bestValue := math.Inf(-1)
	var bestAfter game.Board

	for dir := 0; dir < 4; dir++ {
		after := before
		reward := after.Slide(dir)
		if reward == game.Illegal {
			continue
		}
		value := p.net.Estimate(after)
		if float64(reward)+value > float64(bestReward)+bestValue {
			bestDir = dir
			bestReward = reward
			bestValue = value
			bestAfter = after
		}
	}

	if bestDir < 0 {
		return game.Action{}, false
	}
	p.history = append(p.history, step{reward: bestReward, after: bestAfter})
	return game.SlideAction(bestDir), true
}

// Close writes the weights back when a save path was configured.
func (p *Player) Close() error {
	if p.savePath == "" {
		return nil
	}
	if err := p.net.Save(p.savePath); err != nil {
		return fmt.Errorf("saving player weights: %w", err)
	}
	return nil
}
