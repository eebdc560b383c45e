package stroketest

import (
	"reflect"
	"testing"

	"github.com/gogpu/ink"
)

func TestValidationData(t *testing.T) {
	bounds := ink.NewBox(ink.V2(-10, 5), ink.V2(30, 25))

	counts := map[int]bool{}
	for seed := range uint64(1000) {
		elems := ValidationData(bounds, NewRand(seed))
		if len(elems) > MaxValidationElements {
			t.Fatalf("seed %d: %d elements, want at most %d", seed, len(elems), MaxValidationElements)
		}
		counts[len(elems)] = true
		for i, e := range elems {
			if !bounds.Contains(e.Pos()) {
				t.Errorf("seed %d: element %d at %v outside %v", seed, i, e.Pos(), bounds)
			}
			if p := e.Pressure(); p < 0 || p > 1 {
				t.Errorf("seed %d: element %d pressure %v out of range", seed, i, p)
			}
		}
	}
	if !counts[0] || !counts[MaxValidationElements] {
		t.Errorf("1000 seeds should cover both 0 and %d elements, got %v", MaxValidationElements, counts)
	}
}

func TestValidationDataDeterministic(t *testing.T) {
	bounds := ink.NewBox(ink.V2(0, 0), ink.V2(100, 100))
	a := ValidationData(bounds, NewRand(42))
	b := ValidationData(bounds, NewRand(42))
	if !reflect.DeepEqual(a, b) {
		t.Error("equal seeds should give equal data")
	}
}
