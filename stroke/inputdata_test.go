package stroke

import (
	"math"
	"testing"

	"github.com/gogpu/ink"
)

func TestNewInputDataClampsPressure(t *testing.T) {
	tests := []struct {
		name     string
		pressure float64
		want     float64
	}{
		{"below range", -0.3, 0},
		{"above range", 1.7, 1},
		{"in range", 0.5, 0.5},
		{"zero", 0, 0},
		{"one", 1, 1},
		{"NaN", math.NaN(), PressureDefault},
		{"+Inf", math.Inf(1), 1},
		{"-Inf", math.Inf(-1), 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := NewInputData(ink.V2(1, 2), tt.pressure)
			if d.Pressure() != tt.want {
				t.Errorf("Pressure() = %v, want %v", d.Pressure(), tt.want)
			}
			if d.Pos() != ink.V2(1, 2) {
				t.Errorf("Pos() = %v, want (1, 2)", d.Pos())
			}

			var e InputData
			e.SetPressure(tt.pressure)
			if e.Pressure() != tt.want {
				t.Errorf("SetPressure(%v) stored %v, want %v", tt.pressure, e.Pressure(), tt.want)
			}
		})
	}
}

func TestElement(t *testing.T) {
	e := NewElement(NewInputData(ink.V2(3, 4), 0.25))
	if e.Pos() != ink.V2(3, 4) || e.Pressure() != 0.25 {
		t.Errorf("element = %v / %v", e.Pos(), e.Pressure())
	}
	e.SetPos(ink.V2(5, 6))
	if e.Pos() != ink.V2(5, 6) {
		t.Errorf("SetPos: Pos() = %v", e.Pos())
	}
}

func TestPressureCurve(t *testing.T) {
	tests := []struct {
		curve PressureCurve
		p     float64
		want  float64
	}{
		{PressureLinear, 0.25, 0.25},
		{PressureSqrt, 0.25, 0.5},
		{PressureCbrt, 0.125, 0.5},
		{PressureConst, 0.1, 1},
		{PressureLinear, 2, 1},
		{PressureSqrt, -1, 0},
	}
	for _, tt := range tests {
		t.Run(tt.curve.String(), func(t *testing.T) {
			if got := tt.curve.Apply(tt.p); math.Abs(got-tt.want) > 1e-12 {
				t.Errorf("Apply(%v) = %v, want %v", tt.p, got, tt.want)
			}
		})
	}
}

func TestParsePressureCurve(t *testing.T) {
	for _, c := range []PressureCurve{PressureLinear, PressureSqrt, PressureCbrt, PressureConst} {
		got, err := ParsePressureCurve(c.String())
		if err != nil || got != c {
			t.Errorf("ParsePressureCurve(%q) = %v, %v", c.String(), got, err)
		}
	}
	if got, err := ParsePressureCurve("SQRT"); err != nil || got != PressureSqrt {
		t.Errorf("ParsePressureCurve is case insensitive, got %v, %v", got, err)
	}
	if _, err := ParsePressureCurve("cubic"); err == nil {
		t.Error("ParsePressureCurve(cubic) should fail")
	}
	if s := PressureCurve(9).String(); s != "PressureCurve(9)" {
		t.Errorf("String() = %q", s)
	}
}

func TestFitElementsDegenerateAxis(t *testing.T) {
	// A horizontal stroke has no height; that axis keeps its scale.
	elems := []Element{
		NewElement(NewInputData(ink.V2(0, 5), 0.5)),
		NewElement(NewInputData(ink.V2(10, 5), 0.5)),
	}
	fitElements(elems, ink.NewBox(ink.V2(100, 200), ink.V2(120, 240)))

	for _, e := range elems {
		p := e.Pos()
		if math.IsNaN(p.X) || math.IsNaN(p.Y) || math.IsInf(p.X, 0) || math.IsInf(p.Y, 0) {
			t.Fatalf("non-finite position %v", p)
		}
	}
	if elems[0].Pos() != ink.V2(100, 200) || elems[1].Pos() != ink.V2(120, 200) {
		t.Errorf("positions = %v, %v; want (100, 200), (120, 200)", elems[0].Pos(), elems[1].Pos())
	}
}

func TestResizeTargetLoosensInside(t *testing.T) {
	targets := []ink.Box{
		ink.NewBox(ink.V2(0, 0), ink.V2(100, 50)),
		ink.NewBox(ink.V2(-37, 11), ink.V2(64, 28)),
		ink.NewBox(ink.V2(1e6, -1e6), ink.V2(1e6+50, -1e6+30)),
	}
	for _, target := range targets {
		for _, margin := range []float64{0.05, 0.35, 0.65, 1.1, 1.65, 3.885} {
			inner := resizeTarget(target, margin)
			if !target.ContainsBox(inner.Loosen(margin)) {
				t.Errorf("resizeTarget(%v, %v) = %v loosens outside the target", target, margin, inner)
			}
			if got := inner.Loosen(margin).Ceil(); got != target {
				t.Errorf("resizeTarget(%v, %v) loosened and ceiled = %v", target, margin, got)
			}
		}
	}
}
