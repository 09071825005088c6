package game

import (
	"fmt"
	"strings"
)

// Direction opcodes. The fixed iteration order {Up, Right, Down, Left}
// determines tie-breaking in every player that scans directions.
const (
	Up = iota
	Right
	Down
	Left
)

// Illegal is returned by Slide and Apply when the command changes nothing.
const Illegal = -1

// Board is a 4x4 grid of tile ranks in row-major order.
// A rank r cell displays the value 2^r, rank 0 is an empty cell.
// Board is a value type: assignment copies the grid, so simulating a
// move on a copy never touches the original.
type Board [16]int

// Cell returns the rank at position 0-15.
func (b Board) Cell(pos int) int {
	return b[pos]
}

// SpaceLeft counts the empty cells.
func (b Board) SpaceLeft() int {
	count := 0
	for _, r := range b {
		if r == 0 {
			count++
		}
	}
	return count
}

// MaxRank returns the highest tile rank on the board.
func (b Board) MaxRank() int {
	best := 0
	for _, r := range b {
		if r > best {
			best = r
		}
	}
	return best
}

// Slide moves every tile in the given direction, merging equal neighbours.
// Two rank r tiles merge into one rank r+1 tile and contribute 2^(r+1) to
// the returned reward; a tile merges at most once per slide. Returns
// Illegal if the board does not change.
func (b *Board) Slide(dir int) int {
	switch dir {
	case Up:
		return b.slideUp()
	case Right:
		return b.slideRight()
	case Down:
		return b.slideDown()
	case Left:
		return b.slideLeft()
	}
	return Illegal
}

func (b *Board) slideLeft() int {
	reward := 0
	moved := false
	for r := 0; r < 4; r++ {
		row := b[r*4 : r*4+4]
		var out [4]int
		top, hold := 0, 0
		for _, tile := range row {
			if tile == 0 {
				continue
			}
			if hold != 0 {
				if tile == hold {
					out[top] = hold + 1
					reward += 1 << (hold + 1)
					top++
					hold = 0
				} else {
					out[top] = hold
					top++
					hold = tile
				}
			} else {
				hold = tile
			}
		}
		if hold != 0 {
			out[top] = hold
		}
		for c := 0; c < 4; c++ {
			if row[c] != out[c] {
				moved = true
			}
			row[c] = out[c]
		}
	}
	if !moved {
		return Illegal
	}
	return reward
}

func (b *Board) slideRight() int {
	b.reflect()
	reward := b.slideLeft()
	b.reflect()
	return reward
}

func (b *Board) slideUp() int {
	b.transpose()
	reward := b.slideLeft()
	b.transpose()
	return reward
}

func (b *Board) slideDown() int {
	b.transpose()
	reward := b.slideRight()
	b.transpose()
	return reward
}

// reflect mirrors each row horizontally.
func (b *Board) reflect() {
	for r := 0; r < 4; r++ {
		b[r*4], b[r*4+3] = b[r*4+3], b[r*4]
		b[r*4+1], b[r*4+2] = b[r*4+2], b[r*4+1]
	}
}

// transpose swaps rows and columns.
func (b *Board) transpose() {
	for r := 0; r < 4; r++ {
		for c := r + 1; c < 4; c++ {
			b[r*4+c], b[c*4+r] = b[c*4+r], b[r*4+c]
		}
	}
}

func (b Board) String() string {
	var sb strings.Builder
	sb.WriteString("+------------------------+\n")
	for r := 0; r < 4; r++ {
		sb.WriteString("|")
		for c := 0; c < 4; c++ {
			value := 0
			if rank := b[r*4+c]; rank > 0 {
				value = 1 << rank
			}
			fmt.Fprintf(&sb, "%6d", value)
		}
		sb.WriteString("|\n")
	}
	sb.WriteString("+------------------------+")
	return sb.String()
}
