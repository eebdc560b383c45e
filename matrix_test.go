package ink

import (
	"math"
	"testing"
)

func TestMatrixMultiplyOrder(t *testing.T) {
	// Scale first, then translate.
	m := Translate(10, 20).Multiply(Scale(2, 3))
	got := m.TransformPoint(V2(1, 1))
	if !got.Approx(V2(12, 23), epsilon) {
		t.Errorf("TransformPoint = %v, want (12, 23)", got)
	}
}

func TestMatrixTransformBoxNormalizes(t *testing.T) {
	b := Box{V2(0, 0), V2(2, 2)}
	got := Scale(-1, 1).TransformBox(b)
	want := Box{V2(-2, 0), V2(0, 2)}
	if !got.ApproxEqual(want, epsilon) {
		t.Errorf("TransformBox = %v, want %v", got, want)
	}
	if math.Signbit(got.Width()) {
		t.Error("TransformBox produced negative width")
	}
}
