package game

import "fmt"

type actionKind int

const (
	actionNone actionKind = iota
	actionSlide
	actionPlace
)

// Action is an immutable command on a board: either a slide in one of the
// four directions or the placement of a new tile. The zero Action is the
// no-op returned alongside ok == false when an agent cannot act.
type Action struct {
	kind actionKind
	dir  int
	pos  int
	rank int
}

// SlideAction builds a slide command for direction dir.
func SlideAction(dir int) Action {
	return Action{kind: actionSlide, dir: dir}
}

// PlaceAction builds a command placing a rank tile at position 0-15.
func PlaceAction(pos, rank int) Action {
	return Action{kind: actionPlace, pos: pos, rank: rank}
}

// Apply executes the command on the board and returns the reward, or
// Illegal when the command changes nothing (slide that moves no tile,
// placement on an occupied cell, or the zero Action).
func (a Action) Apply(b *Board) int {
	switch a.kind {
	case actionSlide:
		return b.Slide(a.dir)
	case actionPlace:
		if b[a.pos] != 0 {
			return Illegal
		}
		b[a.pos] = a.rank
		return 0
	}
	return Illegal
}

func (a Action) String() string {
	switch a.kind {
	case actionSlide:
		return fmt.Sprintf("slide(%s)", [4]string{"up", "right", "down", "left"}[a.dir])
	case actionPlace:
		return fmt.Sprintf("place(%d, %d)", a.pos, a.rank)
	}
	return "none"
}
