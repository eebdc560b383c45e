package svgdoc

import (
	"errors"
	"math"
	"testing"

	"github.com/gogpu/ink"
)

const sample = `<?xml version="1.0"?>
<!DOCTYPE svg>
<!-- leading comment -->
<svg xmlns="http://www.w3.org/2000/svg" xmlns:xlink="http://www.w3.org/1999/xlink" width="2in" height="96" viewBox="0 0 20 10">
  <rect x="1" y="1" width="3" height="3"/>
  <g><circle cx="5" cy="5" r="2"></circle></g>
  <image xlink:href="data:image/png;base64,AAAA" width="1" height="1"/>
</svg>
trailing`

func TestParse(t *testing.T) {
	root, err := Parse([]byte(sample))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if root.Name != "svg" {
		t.Fatalf("root = %q, want svg", root.Name)
	}
	if len(root.Children) != 3 {
		t.Fatalf("children = %d, want 3", len(root.Children))
	}

	names := []string{"rect", "g", "image"}
	for i, c := range root.Children {
		if c.Name != names[i] {
			t.Errorf("child %d = %q, want %q", i, c.Name, names[i])
		}
	}

	if got := string(root.Children[0].Raw); got != `<rect x="1" y="1" width="3" height="3"/>` {
		t.Errorf("rect raw = %q", got)
	}
	if got := string(root.Children[1].Raw); got != `<g><circle cx="5" cy="5" r="2"></circle></g>` {
		t.Errorf("g raw = %q", got)
	}
	if len(root.Children[1].Children) != 1 || root.Children[1].Children[0].Name != "circle" {
		t.Error("nested circle not scanned")
	}

	raw := string(root.Raw)
	if raw[:4] != "<svg" || raw[len(raw)-6:] != "</svg>" {
		t.Errorf("root raw does not span the root element: %q", raw)
	}
}

func TestParseErrors(t *testing.T) {
	tests := []string{
		"",
		"just text",
		"<svg><g></svg>",
		"<svg>",
		"<svg x='1' <",
	}
	for _, in := range tests {
		if _, err := Parse([]byte(in)); !errors.Is(err, ErrMalformed) {
			t.Errorf("Parse(%q) error = %v, want ErrMalformed", in, err)
		}
	}
}

func TestAttrAndHref(t *testing.T) {
	root, err := Parse([]byte(sample))
	if err != nil {
		t.Fatal(err)
	}
	img := root.Children[2]
	href, ok := img.Href()
	if !ok || href != "data:image/png;base64,AAAA" {
		t.Errorf("Href() = %q, %v", href, ok)
	}
	if _, ok := img.Attr("href"); ok {
		t.Error("unprefixed href should not match xlink:href")
	}
	if v, ok := root.Attr("xmlns:xlink"); !ok || v != "http://www.w3.org/1999/xlink" {
		t.Errorf("Attr(xmlns:xlink) = %q, %v", v, ok)
	}
}

func TestSize(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		want ink.Vec2
		ok   bool
	}{
		{"width and height", `<svg width="2in" height="96"/>`, ink.V2(192, 96), true},
		{"viewBox only", `<svg viewBox="0,0 40 30"/>`, ink.V2(40, 30), true},
		{"width completes from viewBox", `<svg width="80" viewBox="0 0 40 30"/>`, ink.V2(80, 60), true},
		{"height completes from viewBox", `<svg height="15" viewBox="0 0 40 30"/>`, ink.V2(20, 15), true},
		{"nothing", `<svg/>`, ink.Vec2{}, false},
		{"zero size", `<svg width="0" height="10"/>`, ink.Vec2{}, false},
		{"percentage falls back to viewBox", `<svg width="100%" height="100%" viewBox="0 0 40 30"/>`, ink.V2(40, 30), true},
		{"percentage without viewBox", `<svg width="50%" height="10"/>`, ink.Vec2{}, false},
		{"bad viewBox ignored", `<svg viewBox="0 0 -1 2"/>`, ink.Vec2{}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			root, err := Parse([]byte(tt.doc))
			if err != nil {
				t.Fatal(err)
			}
			got, ok := root.Size(96)
			if ok != tt.ok {
				t.Fatalf("ok = %v, want %v", ok, tt.ok)
			}
			if math.Abs(got.X-tt.want.X) > 1e-9 || math.Abs(got.Y-tt.want.Y) > 1e-9 {
				t.Errorf("Size = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestLength(t *testing.T) {
	root, err := Parse([]byte(`<svg width="1cm" height="50%"/>`))
	if err != nil {
		t.Fatal(err)
	}
	v, ok, err := root.Length("width", 254)
	if err != nil || !ok || math.Abs(v-100) > 1e-9 {
		t.Errorf("Length(width) = %v, %v, %v; want 100px", v, ok, err)
	}
	if _, ok, err := root.Length("height", 96); !ok || err == nil {
		t.Errorf("Length(height) should report the unparseable percentage, got ok=%v err=%v", ok, err)
	}
	if _, ok, err := root.Length("x", 96); ok || err != nil {
		t.Errorf("Length(x) = %v, %v; want absent", ok, err)
	}
}
