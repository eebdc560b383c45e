package main

import (
	"math/rand/v2"
	"testing"

	"github.com/gogpu/ink"
	"github.com/gogpu/ink/config"
)

func TestRandomElementsStayInside(t *testing.T) {
	area := ink.NewBox(ink.V2(40, 40), ink.V2(760, 560))
	rng := rand.New(rand.NewPCG(1, 1))
	for range 200 {
		elems := randomElements(area, rng)
		if len(elems) < 2 {
			t.Fatalf("got %d elements, want at least 2", len(elems))
		}
		for _, e := range elems {
			if !area.Contains(e.Pos()) {
				t.Fatalf("element %v outside %v", e.Pos(), area)
			}
			if p := e.Pressure(); p < 0.2 || p > 1 {
				t.Fatalf("pressure %v out of range", p)
			}
		}
	}
}

func TestRandomStrokes(t *testing.T) {
	canvas := ink.NewBox(ink.V2(0, 0), ink.V2(800, 600))
	strokes, err := randomStrokes(config.Default(), canvas, 10, rand.New(rand.NewPCG(7, 7)))
	if err != nil {
		t.Fatal(err)
	}
	if len(strokes) != 10 {
		t.Fatalf("got %d strokes, want 10", len(strokes))
	}
	for i := range strokes {
		if _, ok := strokes[i].GenerateBounds(); !ok {
			t.Errorf("stroke %d (%v) has no bounds", i, strokes[i].Kind())
		}
	}
}
