package ntuple

import (
	"github.com/ncugit-sec/Game-2584/game"
)

// Network topology constants. The 17 fixed 4-cell tuples define a linear
// value function over lookup tables of base-MaxIndex feature indices.
const (
	IndexCount = 17
	TupleSize  = 4
	MaxIndex   = 25

	// TableLen is MaxIndex^TupleSize, the number of weights per tuple.
	TableLen = MaxIndex * MaxIndex * MaxIndex * MaxIndex
)

// tuples lists the board positions covered by each tuple: the four rows,
// the four columns and nine 2x2-ish blocks.
var tuples = [IndexCount][TupleSize]int{
	{0, 1, 2, 3}, {4, 5, 6, 7}, {8, 9, 10, 11}, {12, 13, 14, 15},
	{0, 4, 8, 12}, {1, 5, 9, 13}, {2, 6, 10, 14}, {3, 7, 11, 15},
	{0, 1, 4, 5}, {1, 2, 5, 6}, {2, 3, 6, 7},
	{4, 5, 8, 9}, {4, 5, 9, 10}, {4, 5, 10, 11},
	{8, 9, 12, 13}, {9, 10, 13, 14}, {10, 11, 14, 15},
}

// Feature maps the board to tuple t's table index: the four cell ranks,
// each clamped to MaxIndex-1, read as digits of a base-MaxIndex number,
// most significant first. Ranks beyond the representable range are
// deliberately lossy, not an error.
func Feature(b game.Board, t int) int {
	index := 0
	for _, pos := range tuples[t] {
		rank := b.Cell(pos)
		if rank >= MaxIndex {
			rank = MaxIndex - 1
		}
		index = index*MaxIndex + rank
	}
	return index
}

// Network is an n-tuple value function approximator: one weight table per
// tuple, the estimate of a board is the sum of the looked-up weights.
// A Network is owned exclusively by a single agent and is not safe for
// concurrent use.
type Network struct {
	tables [IndexCount][]float64
}

// NewNetwork allocates a zero-initialized network.
func NewNetwork() *Network {
	n := &Network{}
	for i := range n.tables {
		n.tables[i] = make([]float64, TableLen)
	}
	return n
}

// Estimate returns the network's value for the board: the sum over all
// tuples of the weight selected by that tuple's feature index.
func (n *Network) Estimate(b game.Board) float64 {
	value := 0.0
	for t := 0; t < IndexCount; t++ {
		value += n.tables[t][Feature(b, t)]
	}
	return value
}

// Adjust moves the board's value toward target with learning rate alpha.
// One scalar error target - Estimate(b) is shared by all tuples: every
// touched weight moves by alpha * error.
func (n *Network) Adjust(b game.Board, target, alpha float64) {
	adjust := alpha * (target - n.Estimate(b))
	for t := 0; t < IndexCount; t++ {
		n.tables[t][Feature(b, t)] += adjust
	}
}

// Table exposes tuple t's weight table. Mutating it bypasses the learning
// rule; intended for inspection and persistence.
func (n *Network) Table(t int) []float64 {
	return n.tables[t]
}
