package stroke_test

import (
	"bytes"
	"errors"
	"image"
	"image/jpeg"
	"strings"
	"testing"

	"github.com/gogpu/ink"
	"github.com/gogpu/ink/stroke"
)

func TestImport(t *testing.T) {
	var jpg bytes.Buffer
	if err := jpeg.Encode(&jpg, image.NewRGBA(image.Rect(0, 0, 8, 6)), nil); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name     string
		data     []byte
		wantKind stroke.Kind
		wantRect ink.Box
	}{
		{"png", redPNG(t, 4, 3), stroke.KindBitmapImage, box(10, 20, 14, 23)},
		{"jpeg", jpg.Bytes(), stroke.KindBitmapImage, box(10, 20, 18, 26)},
		{"svg", []byte(testSVG), stroke.KindVectorImage, box(10, 20, 30, 30)},
		{
			"svg in mm",
			[]byte(`<svg xmlns="http://www.w3.org/2000/svg" width="25.4mm" height="1in"/>`),
			stroke.KindVectorImage, box(10, 20, 106, 116),
		},
		{
			"svg viewBox only",
			[]byte(`<svg viewBox="5 5 40 30"><circle cx="10" cy="10" r="5"/></svg>`),
			stroke.KindVectorImage, box(10, 20, 50, 50),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := stroke.Import(tt.data, ink.V2(10, 20))
			if err != nil {
				t.Fatalf("Import() error = %v", err)
			}
			if s.Kind() != tt.wantKind {
				t.Errorf("Kind() = %v, want %v", s.Kind(), tt.wantKind)
			}
			frags, err := s.GenerateFragments(ink.Vec2{})
			if err != nil || len(frags) != 1 {
				t.Fatalf("GenerateFragments() = %d fragments, %v", len(frags), err)
			}
			if !frags[0].Bounds.ApproxEqual(tt.wantRect, 1e-9) {
				t.Errorf("fragment bounds = %v, want %v", frags[0].Bounds, tt.wantRect)
			}
			if s.Bounds() != tt.wantRect.Ceil() {
				t.Errorf("Bounds() = %v, want %v", s.Bounds(), tt.wantRect.Ceil())
			}
		})
	}
}

func TestImportErrors(t *testing.T) {
	tests := []struct {
		name        string
		data        []byte
		wantUnknown bool
	}{
		{"empty", nil, true},
		{"text", []byte("hello, world"), true},
		{"pdf", []byte("%PDF-1.4\n%\xe2\xe3\xcf\xd3\n"), true},
		{"truncated png", redPNG(t, 4, 4)[:40], false},
		{"html root", []byte(`<html><body/></html>`), false},
		{"malformed svg", []byte(`<svg width="10" height="10"><rect></svg>`), false},
		{"svg without size", []byte(`<svg xmlns="http://www.w3.org/2000/svg"><rect/></svg>`), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := stroke.Import(tt.data, ink.Vec2{})
			var uce *stroke.UnsupportedContentError
			if !errors.As(err, &uce) {
				t.Fatalf("error = %v, want *UnsupportedContentError", err)
			}
			if got := errors.Is(err, stroke.ErrUnknownFormat); got != tt.wantUnknown {
				t.Errorf("errors.Is(ErrUnknownFormat) = %v, want %v (%v)", got, tt.wantUnknown, err)
			}
			if !strings.HasPrefix(err.Error(), "stroke: unsupported ") {
				t.Errorf("Error() = %q", err.Error())
			}
		})
	}
}

func TestImportBitmapImageRejectsVector(t *testing.T) {
	_, err := stroke.ImportBitmapImage([]byte(testSVG), ink.Vec2{})
	if !errors.Is(err, stroke.ErrUnknownFormat) {
		t.Errorf("error = %v, want ErrUnknownFormat", err)
	}
}

func TestBitmapImageFragment(t *testing.T) {
	data := redPNG(t, 2, 2)
	b, err := stroke.ImportBitmapImage(data, ink.V2(1, 1))
	if err != nil {
		t.Fatal(err)
	}
	if b.PixelSize() != ink.V2(2, 2) {
		t.Errorf("PixelSize() = %v", b.PixelSize())
	}
	frags, _ := b.GenerateFragments(ink.V2(1, 0))
	for _, want := range []string{`<image x="2" y="1" width="2" height="2"`, `xlink:href="data:image/png;base64,`} {
		if !strings.Contains(frags[0].Data, want) {
			t.Errorf("fragment lacks %q: %s", want, frags[0].Data)
		}
	}
}

func TestVectorImageFragment(t *testing.T) {
	doc := `<svg xmlns="http://www.w3.org/2000/svg" xmlns:foo="urn:foo" width="10" height="10" fill="red" foo:bar="1"><rect width="5" height="5"/></svg>`
	v, err := stroke.ImportVectorImage([]byte(doc), ink.Vec2{})
	if err != nil {
		t.Fatal(err)
	}
	if v.IntrinsicSize() != ink.V2(10, 10) {
		t.Errorf("IntrinsicSize() = %v", v.IntrinsicSize())
	}
	frags, _ := v.GenerateFragments(ink.V2(1, 2))
	want := `<svg x="1" y="2" width="10" height="10" viewBox="0 0 10 10" preserveAspectRatio="none" xmlns:foo="urn:foo">` +
		`<g fill="red" foo:bar="1"><rect width="5" height="5"/></g></svg>`
	if frags[0].Data != want {
		t.Errorf("fragment =\n%s\nwant\n%s", frags[0].Data, want)
	}
}
