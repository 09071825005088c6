package ntuple

import (
	"bytes"
	"encoding/binary"
	"math"
	"os"
	"path"
	"testing"

	"github.com/ncugit-sec/Game-2584/game"
)

func TestFeatureDeterministic(t *testing.T) {
	b := game.Board{
		1, 2, 3, 4,
		0, 5, 0, 6,
		7, 0, 8, 0,
		9, 10, 11, 12,
	}
	for tuple := 0; tuple < IndexCount; tuple++ {
		first := Feature(b, tuple)
		for i := 0; i < 10; i++ {
			if Feature(b, tuple) != first {
				t.Fatalf("tuple %d: feature changed between calls", tuple)
			}
		}
	}
}

func TestFeatureBase25Digits(t *testing.T) {
	b := game.Board{3, 0, 7, 24}
	// tuple 0 covers positions 0-3, most significant digit first
	want := ((3*MaxIndex+0)*MaxIndex+7)*MaxIndex + 24
	if got := Feature(b, 0); got != want {
		t.Errorf("expected feature %d, got %d", want, got)
	}
}

func TestFeatureClamping(t *testing.T) {
	high := game.Board{30, 1, 2, 3}
	clamped := game.Board{MaxIndex - 1, 1, 2, 3}
	for tuple := 0; tuple < IndexCount; tuple++ {
		if Feature(high, tuple) != Feature(clamped, tuple) {
			t.Errorf("tuple %d: rank 30 was not clamped to %d", tuple, MaxIndex-1)
		}
	}
	if Feature(high, 0) >= TableLen {
		t.Errorf("clamped feature exceeds the table length")
	}
}

func TestEstimateIsSumOverTuples(t *testing.T) {
	b := game.Board{
		0, 1, 2, 3,
		3, 2, 1, 0,
		1, 1, 2, 2,
		0, 3, 0, 3,
	}
	n := NewNetwork()
	for tuple := 0; tuple < IndexCount; tuple++ {
		n.Table(tuple)[Feature(b, tuple)] = float64(tuple + 1)
	}

	want := 0.0
	for tuple := 0; tuple < IndexCount; tuple++ {
		want += n.Table(tuple)[Feature(b, tuple)]
	}
	if got := n.Estimate(b); got != want {
		t.Errorf("estimate %v is not the sum of the table entries %v", got, want)
	}
	if want != float64(IndexCount*(IndexCount+1)/2) {
		t.Errorf("table setup is wrong")
	}
}

func TestAdjustSharesOneError(t *testing.T) {
	b := game.Board{
		1, 1, 1, 1,
		1, 1, 1, 1,
		1, 1, 1, 1,
		1, 1, 1, 1,
	}
	n := NewNetwork()
	for tuple := 0; tuple < IndexCount; tuple++ {
		n.Table(tuple)[Feature(b, tuple)] = 1
	}

	alpha := 0.5
	target := 34.0
	adjust := alpha * (target - n.Estimate(b)) // one scalar for all tuples
	n.Adjust(b, target, alpha)

	for tuple := 0; tuple < IndexCount; tuple++ {
		got := n.Table(tuple)[Feature(b, tuple)]
		if math.Abs(got-(1+adjust)) > 1e-12 {
			t.Errorf("tuple %d: weight %v, expected %v", tuple, got, 1+adjust)
		}
	}
}

func TestAdjustTouchesOnlyOwnFeatures(t *testing.T) {
	// Uniform boards of different ranks share no feature index in any
	// tuple, so adjusting one must leave the other's estimate at zero.
	var b, other game.Board
	for i := range b {
		b[i] = 2
		other[i] = 3
	}

	n := NewNetwork()
	n.Adjust(b, 1, 0.1)

	if n.Estimate(b) == 0 {
		t.Errorf("adjusting a board left its own estimate unchanged")
	}
	if n.Estimate(other) != 0 {
		t.Errorf("adjusting one board changed a disjoint board's estimate")
	}
}

func TestPersistRoundTrip(t *testing.T) {
	b := game.Board{
		1, 2, 0, 0,
		0, 3, 1, 0,
		0, 0, 2, 1,
		1, 0, 0, 4,
	}
	n := NewNetwork()
	n.Adjust(b, 10, 0.1)
	n.Adjust(b, 5, 0.1)

	file := path.Join(t.TempDir(), "weights.bin")
	if err := n.Save(file); err != nil {
		t.Fatalf("save: %v", err)
	}

	loaded := NewNetwork()
	if err := loaded.Load(file); err != nil {
		t.Fatalf("load: %v", err)
	}
	if loaded.Estimate(b) != n.Estimate(b) {
		t.Errorf("estimate changed across a save/load round trip: %v != %v",
			loaded.Estimate(b), n.Estimate(b))
	}
}

func TestLoadRejectsWrongTupleCount(t *testing.T) {
	var buf bytes.Buffer
	binary.Write(&buf, binary.LittleEndian, uint32(5))

	n := NewNetwork()
	if err := n.ReadFrom(&buf); err == nil {
		t.Errorf("expected an error for a 5-table weight stream")
	}
}

func TestLoadMissingFile(t *testing.T) {
	missing := path.Join(t.TempDir(), "missing.bin")
	n := NewNetwork()
	if err := n.Load(missing); err == nil {
		t.Errorf("expected an error for a missing weight file")
	}
	if _, err := os.Stat(missing); err == nil {
		t.Errorf("load should not create the file")
	}
}
