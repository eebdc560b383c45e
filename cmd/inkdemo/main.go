// Command inkdemo renders random strokes of every kind into a PNG.
package main

import (
	"flag"
	"log"
	"log/slog"
	"math/rand/v2"
	"os"

	"golang.org/x/text/language"

	"github.com/gogpu/ink"
	"github.com/gogpu/ink/compose"
	"github.com/gogpu/ink/config"
	"github.com/gogpu/ink/render"
	"github.com/gogpu/ink/stroke"
)

func main() {
	var (
		width    = flag.Int("width", 800, "canvas width")
		height   = flag.Int("height", 600, "canvas height")
		output   = flag.String("output", "demo.png", "output file")
		seed     = flag.Uint64("seed", 1, "random seed")
		count    = flag.Int("strokes", 12, "number of random strokes")
		settings = flag.String("config", "", "settings file (.toml, .yaml)")
		embed    = flag.String("import", "", "image file (PNG, JPEG, GIF, BMP, TIFF, WebP or SVG) to place on the canvas")
		verbose  = flag.Bool("v", false, "debug logging")
	)
	flag.Parse()

	if *verbose {
		ink.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}

	cfg := config.Default()
	if *settings != "" {
		var err error
		if cfg, err = config.Load(*settings); err != nil {
			log.Fatalf("Failed to load settings: %v", err)
		}
	}

	canvas := ink.BoxFromSize(ink.Vec2{}, ink.V2(float64(*width), float64(*height)))
	strokes, err := randomStrokes(cfg, canvas, *count, rand.New(rand.NewPCG(*seed, *seed)))
	if err != nil {
		log.Fatalf("Failed to create strokes: %v", err)
	}

	if *embed != "" {
		data, err := os.ReadFile(*embed)
		if err != nil {
			log.Fatalf("Failed to read %s: %v", *embed, err)
		}
		s, err := stroke.Import(data, canvas.Center())
		if err != nil {
			log.Fatalf("Failed to import %s: %v", *embed, err)
		}
		strokes = append(strokes, s)
	}

	r, err := cfg.NewRenderer()
	if err != nil {
		log.Fatalf("Failed to create renderer: %v", err)
	}

	img, err := renderCanvas(r, cfg.Renderer.Zoom, canvas, strokes)
	if err != nil {
		log.Fatalf("Failed to render: %v", err)
	}
	if err := img.SavePNG(*output); err != nil {
		log.Fatalf("Failed to save: %v", err)
	}

	w, _ := cfg.Length(canvas.Width())
	h, _ := cfg.Length(canvas.Height())
	log.Printf("Demo saved to %s (%dx%d px, canvas %s x %s)\n",
		*output, img.Width(), img.Height(), w.Format(language.English), h.Format(language.English))
}

// randomStrokes creates count strokes cycling through the drawn kinds.
func randomStrokes(cfg config.Settings, canvas ink.Box, count int, rng *rand.Rand) ([]stroke.Stroke, error) {
	marker, err := cfg.MarkerStyle()
	if err != nil {
		return nil, err
	}
	brush, err := cfg.BrushStyle()
	if err != nil {
		return nil, err
	}
	shape, err := cfg.ShapeStyle()
	if err != nil {
		return nil, err
	}

	area := canvas.Tighten(40)
	strokes := make([]stroke.Stroke, 0, count)
	for i := range count {
		hue := float64(i) * 360 / float64(max(count, 1))
		color := ink.HSL(hue, 0.7, 0.45)

		switch i % 5 {
		case 0, 3:
			st := marker
			st.Color = color
			elems := randomElements(area, rng)
			strokes = append(strokes, stroke.FromMarkerStroke(stroke.NewMarkerStrokeFromElements(elems, st)))
		case 1, 4:
			st := brush
			st.Color = color
			elems := randomElements(area, rng)
			strokes = append(strokes, stroke.FromBrushStroke(stroke.NewBrushStrokeFromElements(elems, st)))
		default:
			st := shape
			st.Color = color
			a := randomPoint(area, rng)
			b := randomPoint(area, rng)
			sh := []stroke.Shape{
				stroke.Line(a, b),
				stroke.Rectangle(ink.NewBox(a, b)),
				stroke.Ellipse(a, ink.V2(20+rng.Float64()*60, 20+rng.Float64()*60)),
			}[rng.IntN(3)]
			strokes = append(strokes, stroke.FromShapeStroke(stroke.NewShapeStroke(sh, st)))
		}
	}
	return strokes, nil
}

// randomElements returns a short random walk inside b with varying pressure.
func randomElements(b ink.Box, rng *rand.Rand) []stroke.Element {
	n := 2 + rng.IntN(30)
	elems := make([]stroke.Element, 0, n)
	p := randomPoint(b, rng)
	for range n {
		elems = append(elems, stroke.NewElement(stroke.NewInputData(p, 0.2+0.8*rng.Float64())))
		step := ink.V2(rng.Float64()-0.5, rng.Float64()-0.5).Mul(60)
		p = p.Add(step).Max(b.Min).Min(b.Max)
	}
	return elems
}

func randomPoint(b ink.Box, rng *rand.Rand) ink.Vec2 {
	return ink.V2(b.Min.X+rng.Float64()*b.Width(), b.Min.Y+rng.Float64()*b.Height())
}

// renderCanvas draws a white background and every stroke in one backend call.
func renderCanvas(b render.Backend, zoom float64, canvas ink.Box, strokes []stroke.Stroke) (*render.Image, error) {
	bg := "<rect" + ` x="` + compose.Num(canvas.Min.X) + `" y="` + compose.Num(canvas.Min.Y) +
		`" width="` + compose.Num(canvas.Width()) + `" height="` + compose.Num(canvas.Height()) + `" fill="#ffffff"/>`
	frags := []render.Fragment{{Data: bg, Bounds: canvas}}

	for i := range strokes {
		sf, err := strokes[i].GenerateFragments(ink.Vec2{})
		if err != nil {
			return nil, err
		}
		frags = append(frags, sf...)
		ink.Logger().Debug("inkdemo: stroke", "kind", strokes[i].Kind(), "bounds", strokes[i].Bounds(), "fragments", len(sf))
	}
	if all, ok := stroke.BoundsOf(strokes); ok && !canvas.ContainsBox(all) {
		ink.Logger().Info("inkdemo: strokes extend beyond the canvas", "bounds", all)
	}
	return b.GenerateImage(zoom, frags, canvas)
}
