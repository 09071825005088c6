package arena

import (
	"github.com/ncugit-sec/Game-2584/agent"
	"github.com/ncugit-sec/Game-2584/game"
)

// Result summarizes one episode.
type Result struct {
	Score   int // sum of slide rewards
	MaxRank int // highest tile rank reached
	Moves   int // player moves accepted
}

// RunEpisode plays one full episode: the environment seeds the board with
// two tiles, then player slides and environment placements alternate until
// the player has no legal move. Both agents see OpenEpisode before the
// first action and CloseEpisode after the last, which is where the TD
// player learns.
func RunEpisode(player, env agent.Agent) Result {
	var b game.Board
	player.OpenEpisode()
	env.OpenEpisode()

	for i := 0; i < 2; i++ {
		if a, ok := env.TakeAction(b); ok {
			a.Apply(&b)
		}
	}

	res := Result{}
	for {
		a, ok := player.TakeAction(b)
		if !ok {
			break
		}
		reward := a.Apply(&b)
		if reward == game.Illegal {
			break
		}
		res.Score += reward
		res.Moves++

		if place, ok := env.TakeAction(b); ok {
			place.Apply(&b)
		}
	}

	player.CloseEpisode()
	env.CloseEpisode()
	res.MaxRank = b.MaxRank()
	return res
}
