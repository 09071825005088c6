package agent

import (
	"math"
	"path"
	"testing"

	"github.com/ncugit-sec/Game-2584/game"
	"github.com/ncugit-sec/Game-2584/ntuple"
)

func newTestPlayer(t *testing.T, alpha float64) *Player {
	t.Helper()
	p, err := NewPlayer(Options{Kind: TD, Role: "player", Alpha: alpha})
	if err != nil {
		t.Fatalf("building player: %v", err)
	}
	return p
}

// fullBoard has no legal slide in any direction.
var fullBoard = game.Board{
	1, 2, 1, 2,
	2, 1, 2, 1,
	1, 2, 1, 2,
	2, 1, 2, 1,
}

func uniformBoard(rank int) game.Board {
	var b game.Board
	for i := range b {
		b[i] = rank
	}
	return b
}

func TestTakeActionTieBreak(t *testing.T) {
	p := newTestPlayer(t, 0.005)
	// up and down both merge for reward 4; with zero weights the scores tie
	// and the earlier direction in {up, right, down, left} must win.
	b := game.Board{
		1, 0, 0, 0,
		1, 0, 0, 0,
		0, 0, 0, 0,
		0, 0, 0, 0,
	}
	a, ok := p.TakeAction(b)
	if !ok {
		t.Fatalf("expected a legal action")
	}
	if a != game.SlideAction(game.Up) {
		t.Errorf("expected slide up, got %v", a)
	}
}

func TestTakeActionAppendsHistory(t *testing.T) {
	p := newTestPlayer(t, 0.005)
	b := game.Board{
		1, 0, 0, 0,
		1, 0, 0, 0,
		0, 0, 0, 0,
		0, 0, 0, 0,
	}
	if _, ok := p.TakeAction(b); !ok {
		t.Fatalf("expected a legal action")
	}
	if len(p.history) != 1 {
		t.Fatalf("expected one history entry, got %d", len(p.history))
	}

	after := b
	reward := after.Slide(game.Up)
	if p.history[0].reward != reward || p.history[0].after != after {
		t.Errorf("history holds %+v, expected reward %d and the simulated afterstate", p.history[0], reward)
	}
	if b.Cell(0) != 1 {
		t.Errorf("TakeAction mutated the caller's board")
	}
}

func TestTakeActionTerminal(t *testing.T) {
	p := newTestPlayer(t, 0.005)
	if _, ok := p.TakeAction(fullBoard); ok {
		t.Errorf("expected no action on a dead board")
	}
	if len(p.history) != 0 {
		t.Errorf("a pass must not be recorded in the history")
	}
}

func TestOpenEpisodeClearsHistory(t *testing.T) {
	p := newTestPlayer(t, 0.005)
	p.history = append(p.history, step{reward: 1, after: uniformBoard(1)})
	p.OpenEpisode()
	if len(p.history) != 0 {
		t.Errorf("open_episode must clear the history")
	}
}

func TestCloseEpisodeNoopOnEmptyHistory(t *testing.T) {
	p := newTestPlayer(t, 0.005)
	b := uniformBoard(2)
	p.CloseEpisode()
	if p.net.Estimate(b) != 0 {
		t.Errorf("an empty episode must not move any weight")
	}
}

func TestCloseEpisodeNoopWithZeroAlpha(t *testing.T) {
	p := newTestPlayer(t, 0)
	p.history = append(p.history,
		step{reward: 4, after: uniformBoard(1)},
		step{reward: 8, after: uniformBoard(2)},
	)
	p.CloseEpisode()
	if p.net.Estimate(uniformBoard(1)) != 0 || p.net.Estimate(uniformBoard(2)) != 0 {
		t.Errorf("evaluation mode must not move any weight")
	}
	if len(p.history) != 2 {
		t.Errorf("close_episode must leave the history readable")
	}
}

func TestCloseEpisodeBackwardOrder(t *testing.T) {
	alpha := 0.1
	p := newTestPlayer(t, alpha)

	// three afterstates with disjoint features in every tuple
	a1 := uniformBoard(1)
	a2 := uniformBoard(2)
	a3 := uniformBoard(3)

	// seed the terminal afterstate's 17 weights with 1.0 so the terminal
	// error is nonzero
	for tuple := 0; tuple < ntuple.IndexCount; tuple++ {
		p.net.Table(tuple)[ntuple.Feature(a3, tuple)] = 1
	}

	p.history = append(p.history,
		step{reward: 5, after: a1},
		step{reward: 7, after: a2},
		step{reward: 9, after: a3},
	)
	p.CloseEpisode()

	k := float64(ntuple.IndexCount)
	// terminal step first: each of a3's weights moves by alpha*(0 - k)
	wantA3 := k * (1 + alpha*(0-k))
	// then a2 toward r3 + the already-updated estimate of a3
	wantA2 := k * alpha * (9 + wantA3)
	// then a1 toward r2 + the already-updated estimate of a2
	wantA1 := k * alpha * (7 + wantA2)

	if got := p.net.Estimate(a3); math.Abs(got-wantA3) > 1e-9 {
		t.Errorf("estimate(a3) = %v, expected %v", got, wantA3)
	}
	if got := p.net.Estimate(a2); math.Abs(got-wantA2) > 1e-9 {
		t.Errorf("estimate(a2) = %v, expected %v (the target must use the post-update estimate)", got, wantA2)
	}
	if got := p.net.Estimate(a1); math.Abs(got-wantA1) > 1e-9 {
		t.Errorf("estimate(a1) = %v, expected %v", got, wantA1)
	}
	if len(p.history) != 3 {
		t.Errorf("close_episode must leave the history readable")
	}
}

func TestPlayerSaveLoadRoundTrip(t *testing.T) {
	file := path.Join(t.TempDir(), "weights.bin")

	trained, err := NewPlayer(Options{Kind: TD, Role: "player", Alpha: 0.1, SavePath: file})
	if err != nil {
		t.Fatalf("building player: %v", err)
	}
	b := uniformBoard(1)
	trained.net.Adjust(b, 100, 0.1)
	if err := trained.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}

	loaded, err := NewPlayer(Options{Kind: TD, Role: "player", Alpha: 0, LoadPath: file})
	if err != nil {
		t.Fatalf("loading player: %v", err)
	}
	if loaded.net.Estimate(b) != trained.net.Estimate(b) {
		t.Errorf("estimates diverged across a save/load round trip")
	}
}

func TestPlayerLoadFailure(t *testing.T) {
	_, err := NewPlayer(Options{Kind: TD, Role: "player", LoadPath: path.Join(t.TempDir(), "missing.bin")})
	if err == nil {
		t.Errorf("a missing weight file must fail construction")
	}
}
