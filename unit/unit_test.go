package unit

import (
	"errors"
	"math"
	"testing"

	"golang.org/x/text/language"
)

func approx(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestConvert(t *testing.T) {
	tests := []struct {
		name    string
		value   float64
		from    Unit
		fromDPI float64
		to      Unit
		toDPI   float64
		want    float64
	}{
		{"inch to px", 1, In, 96, Px, 96, 96},
		{"px to mm", 96, Px, 96, Mm, 96, 25.4},
		{"cm to mm", 2, Cm, 96, Mm, 96, 20},
		{"pt to px", 72, Pt, 96, Px, 96, 96},
		{"px across dpi", 96, Px, 96, Px, 192, 192},
		{"mm ignores dpi", 10, Mm, 96, Mm, 300, 10},
		{"zero dpi falls back", 1, In, 0, Px, 0, DefaultDPI},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Convert(tt.value, tt.from, tt.fromDPI, tt.to, tt.toDPI)
			if !approx(got, tt.want) {
				t.Errorf("Convert = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestParse(t *testing.T) {
	for _, u := range []Unit{Px, Mm, Cm, In, Pt} {
		got, err := Parse(u.String())
		if err != nil || got != u {
			t.Errorf("Parse(%q) = %v, %v", u.String(), got, err)
		}
	}
	if got, err := Parse(""); err != nil || got != Px {
		t.Errorf("Parse(\"\") = %v, %v, want px", got, err)
	}
	if _, err := Parse("em"); !errors.Is(err, ErrUnknownUnit) {
		t.Errorf("Parse(em) error = %v, want ErrUnknownUnit", err)
	}
}

func TestParseLength(t *testing.T) {
	tests := []struct {
		in    string
		value float64
		unit  Unit
	}{
		{"12", 12, Px},
		{"12.5px", 12.5, Px},
		{" 3cm ", 3, Cm},
		{"-4.25mm", -4.25, Mm},
		{"1e2", 100, Px},
		{"10pt", 10, Pt},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			v, u, err := ParseLength(tt.in)
			if err != nil {
				t.Fatalf("ParseLength(%q) error: %v", tt.in, err)
			}
			if !approx(v, tt.value) || u != tt.unit {
				t.Errorf("ParseLength(%q) = %v %v, want %v %v", tt.in, v, u, tt.value, tt.unit)
			}
		})
	}
}

func TestParseLengthErrors(t *testing.T) {
	if _, _, err := ParseLength(""); !errors.Is(err, ErrInvalidLength) {
		t.Errorf("empty: error = %v", err)
	}
	if _, _, err := ParseLength("px"); !errors.Is(err, ErrInvalidLength) {
		t.Errorf("no number: error = %v", err)
	}
	if _, _, err := ParseLength("50%"); !errors.Is(err, ErrUnknownUnit) {
		t.Errorf("percent: error = %v", err)
	}
}

func TestParseLengthPx(t *testing.T) {
	got, err := ParseLengthPx("1in", 300)
	if err != nil {
		t.Fatal(err)
	}
	if !approx(got, 300) {
		t.Errorf("ParseLengthPx(1in, 300) = %v", got)
	}
}

func TestEntry(t *testing.T) {
	e := NewEntry()
	if e.Value() != 1 || e.Unit() != Px || e.DPI() != DefaultDPI {
		t.Fatalf("NewEntry() = %+v", e)
	}

	e.SetValue(25.4)
	e.SetUnit(Mm)
	if got := e.ValueInPx(); got != 96 {
		t.Errorf("ValueInPx() = %d, want 96", got)
	}

	// Physical units survive a DPI change unchanged.
	e.SetDPI(300)
	if !approx(e.Value(), 25.4) {
		t.Errorf("mm value after SetDPI = %v, want 25.4", e.Value())
	}
	if got := e.ValueInPx(); got != 300 {
		t.Errorf("ValueInPx() at 300dpi = %d, want 300", got)
	}

	e.ConvertTo(Cm)
	if !approx(e.Value(), 2.54) || e.Unit() != Cm {
		t.Errorf("ConvertTo(cm) = %v %v", e.Value(), e.Unit())
	}

	// Pixel values are rescaled by a DPI change.
	px := NewEntry()
	px.SetValue(100)
	px.SetDPI(192)
	if !approx(px.Value(), 200) {
		t.Errorf("px value after SetDPI(192) = %v, want 200", px.Value())
	}
	px.SetDPI(-1)
	if px.DPI() != 192 {
		t.Errorf("SetDPI(-1) changed dpi to %v", px.DPI())
	}
}

func TestEntryFormat(t *testing.T) {
	e := NewEntry()
	e.SetValue(1234.5)
	e.SetUnit(Mm)
	if got := e.Format(language.English); got != "1,234.50 mm" {
		t.Errorf("Format(en) = %q", got)
	}
	if got := e.Format(language.German); got != "1.234,50 mm" {
		t.Errorf("Format(de) = %q", got)
	}
}
