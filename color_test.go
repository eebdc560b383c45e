package ink

import (
	"errors"
	"image/color"
	"testing"
)

func TestParseHex(t *testing.T) {
	tests := []struct {
		in   string
		want Color
	}{
		{"#000", Black},
		{"fff", White},
		{"#ff000080", Color{R: 1, A: 128.0 / 255}},
		{"#00ff00", RGB(0, 1, 0)},
		{"f008", Color{R: 1, A: 136.0 / 255}},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseHex(tt.in)
			if err != nil {
				t.Fatalf("ParseHex(%q) error: %v", tt.in, err)
			}
			if got != tt.want {
				t.Errorf("ParseHex(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestParseHexInvalid(t *testing.T) {
	for _, in := range []string{"", "#12", "zzzzzz", "#1234567", "+ff"} {
		if _, err := ParseHex(in); !errors.Is(err, ErrInvalidColor) {
			t.Errorf("ParseHex(%q) error = %v, want ErrInvalidColor", in, err)
		}
	}
	if Hex("nope") != Black {
		t.Error("Hex on malformed input should return black")
	}
}

func TestColorSVG(t *testing.T) {
	c := RGBA(1, 0.5, 0, 0.25)
	if got := c.SVG(); got != "rgb(255,128,0)" {
		t.Errorf("SVG() = %q", got)
	}
	if got := c.Opacity(); got != 0.25 {
		t.Errorf("Opacity() = %v", got)
	}
	if got := c.Hex(); got != "#ff800040" {
		t.Errorf("Hex() = %q", got)
	}
}

func TestColorStdRoundTrip(t *testing.T) {
	n := color.NRGBA{R: 10, G: 20, B: 30, A: 200}
	got := FromStd(n).Std()
	if got != n {
		t.Errorf("round trip = %v, want %v", got, n)
	}
}

func TestHSL(t *testing.T) {
	if got := HSL(0, 1, 0.5); got != RGB(1, 0, 0) {
		t.Errorf("HSL(0, 1, 0.5) = %v, want red", got)
	}
	if got := HSL(0, 0, 1); got != White {
		t.Errorf("HSL(0, 0, 1) = %v, want white", got)
	}
}
