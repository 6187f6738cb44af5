package core

import (
	"testing"
	"time"
)

func TestRectOverlaps(t *testing.T) {
	a := Rect{X: 0, Y: 0, W: 10, H: 10}
	cases := []struct {
		name string
		b    Rect
		want bool
	}{
		{"inside", Rect{X: 2, Y: 2, W: 2, H: 2}, true},
		{"partial", Rect{X: 5, Y: 5, W: 10, H: 10}, true},
		{"touching right edge", Rect{X: 10, Y: 0, W: 5, H: 5}, false},
		{"touching bottom edge", Rect{X: 0, Y: 10, W: 5, H: 5}, false},
		{"left of", Rect{X: -6, Y: 0, W: 5, H: 5}, false},
		{"above", Rect{X: 0, Y: -20, W: 5, H: 5}, false},
	}
	for _, tc := range cases {
		if got := a.Overlaps(tc.b); got != tc.want {
			t.Fatalf("%s: Overlaps=%v, expected %v", tc.name, got, tc.want)
		}
		if got := tc.b.Overlaps(a); got != tc.want {
			t.Fatalf("%s: overlap is not symmetric", tc.name)
		}
	}
}

func TestClamp(t *testing.T) {
	if got := Clamp(-3, 0, 10); got != 0 {
		t.Fatalf("expected 0, got %f", got)
	}
	if got := Clamp(12, 0, 10); got != 10 {
		t.Fatalf("expected 10, got %f", got)
	}
	if got := Clamp(5, 0, -1); got != 0 {
		t.Fatalf("inverted bounds should yield lo, got %f", got)
	}
}

func TestByteGridFillRectClips(t *testing.T) {
	g := NewByteGrid(4, 3)
	g.FillRect(Rect{X: -1, Y: 1.5, W: 2.2, H: 5}, 7)

	for y := 0; y < g.H; y++ {
		for x := 0; x < g.W; x++ {
			want := uint8(0)
			if x <= 1 && y >= 1 {
				want = 7
			}
			if got := g.At(x, y); got != want {
				t.Fatalf("cell (%d,%d)=%d, expected %d", x, y, got, want)
			}
		}
	}
	if g.At(-1, 0) != 0 || g.At(4, 0) != 0 {
		t.Fatal("out of range reads must return 0")
	}

	g.Clear()
	for i, c := range g.Cells() {
		if c != 0 {
			t.Fatalf("cell %d not cleared", i)
		}
	}
}

func TestFixedStepDue(t *testing.T) {
	clock := time.Unix(0, 0)
	fs := NewFixedStep(10)
	fs.now = func() time.Time { return clock }

	if got := fs.Due(); got != 1 {
		t.Fatalf("first call should owe the primed tick, got %d", got)
	}
	clock = clock.Add(50 * time.Millisecond)
	if got := fs.Due(); got != 0 {
		t.Fatalf("half a step should owe nothing, got %d", got)
	}
	clock = clock.Add(260 * time.Millisecond)
	if got := fs.Due(); got != 3 {
		t.Fatalf("expected 3 ticks after 310ms, got %d", got)
	}
	clock = clock.Add(10 * time.Second)
	if got := fs.Due(); got != maxCatchUp {
		t.Fatalf("stall should be capped at %d, got %d", maxCatchUp, got)
	}
	if fs.Interval() != 100*time.Millisecond {
		t.Fatalf("unexpected interval %s", fs.Interval())
	}
}

func TestParameterSnapshotLookup(t *testing.T) {
	snap := ParameterSnapshot{Groups: []ParameterGroup{
		{Name: "a", Params: []Parameter{{Key: "score", Value: "10"}}},
		{Name: "b", Params: []Parameter{{Key: "lives", Value: "2"}}},
	}}
	p, ok := snap.Lookup("lives")
	if !ok || p.Value != "2" {
		t.Fatalf("lookup lives returned %+v, %v", p, ok)
	}
	if _, ok := snap.Lookup("missing"); ok {
		t.Fatal("missing key should not be found")
	}
}
