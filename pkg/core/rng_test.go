package core

import "testing"

type fixed float64

func (f fixed) Float64() float64 { return float64(f) }

func TestRNGDeterministic(t *testing.T) {
	a := NewRNG(7)
	b := NewRNG(7)
	for i := 0; i < 32; i++ {
		if x, y := a.Float64(), b.Float64(); x != y {
			t.Fatalf("draw %d differs: %f vs %f", i, x, y)
		}
	}
}

func TestRangeBounds(t *testing.T) {
	rng := NewRNG(3)
	for i := 0; i < 1000; i++ {
		v := Range(rng, 1, 3)
		if v < 1 || v >= 3 {
			t.Fatalf("Range produced %f outside [1,3)", v)
		}
	}
	if got := Range(fixed(0.5), 2, 2); got != 2 {
		t.Fatalf("degenerate range should return lo, got %f", got)
	}
	if got := Range(fixed(0.5), 0, 10); got != 5 {
		t.Fatalf("expected midpoint 5, got %f", got)
	}
}

func TestChance(t *testing.T) {
	if !Chance(fixed(0.49), 0.5) {
		t.Fatal("0.49 < 0.5 should succeed")
	}
	if Chance(fixed(0.5), 0.5) {
		t.Fatal("0.5 < 0.5 should fail")
	}
}
