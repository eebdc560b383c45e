// Package config loads application settings for strokes and rendering from
// TOML or YAML files.
//
// Example settings.toml:
//
//	dpi = 96
//
//	[marker]
//	width = 2
//	color = "#000000"
//
//	[brush]
//	width = 6
//	color = "#1a1a1aff"
//	pressure_curve = "sqrt"
//
//	[renderer]
//	backend = "software"
//	cache_capacity = 64
package config

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/gogpu/ink"
	"github.com/gogpu/ink/render"
	"github.com/gogpu/ink/stroke"
	"github.com/gogpu/ink/unit"
)

// ErrUnknownFormat is returned by Load for unsupported file extensions.
var ErrUnknownFormat = errors.New("config: unknown settings format")

// Decoder decodes a settings document.
type Decoder interface {
	Decode(v any) error
}

// DecoderFunc creates a Decoder reading from r.
type DecoderFunc func(r io.Reader) Decoder

// Decoders for the supported formats.
var (
	TOML DecoderFunc = func(r io.Reader) Decoder {
		return toml.NewDecoder(r).DisallowUnknownFields()
	}
	YAML DecoderFunc = func(r io.Reader) Decoder {
		d := yaml.NewDecoder(r)
		d.KnownFields(true)
		return d
	}
)

// DecoderFor returns the decoder for a file name by its extension.
func DecoderFor(filename string) (DecoderFunc, error) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".toml":
		return TOML, nil
	case ".yaml", ".yml":
		return YAML, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, filename)
	}
}

// StrokeSettings holds the style of one stroke kind. Colors are hex strings
// as accepted by ink.ParseHex.
type StrokeSettings struct {
	Width         float64 `toml:"width" yaml:"width"`
	Color         string  `toml:"color" yaml:"color"`
	Fill          string  `toml:"fill,omitempty" yaml:"fill,omitempty"`
	PressureCurve string  `toml:"pressure_curve,omitempty" yaml:"pressure_curve,omitempty"`
}

// RendererSettings configures the renderer.
type RendererSettings struct {
	Backend       string  `toml:"backend" yaml:"backend"`
	CacheCapacity int     `toml:"cache_capacity" yaml:"cache_capacity"`
	Zoom          float64 `toml:"zoom" yaml:"zoom"`
}

// Settings are the application defaults.
type Settings struct {
	// DPI resolves physical units.
	DPI float64 `toml:"dpi" yaml:"dpi"`
	// Unit is the unit lengths are displayed in.
	Unit     string           `toml:"unit" yaml:"unit"`
	Marker   StrokeSettings   `toml:"marker" yaml:"marker"`
	Brush    StrokeSettings   `toml:"brush" yaml:"brush"`
	Shape    StrokeSettings   `toml:"shape" yaml:"shape"`
	Renderer RendererSettings `toml:"renderer" yaml:"renderer"`
}

// Default returns the built-in settings.
func Default() Settings {
	m, b, s := stroke.DefaultMarkerStyle(), stroke.DefaultBrushStyle(), stroke.DefaultShapeStyle()
	return Settings{
		DPI:  unit.DefaultDPI,
		Unit: unit.Px.String(),
		Marker: StrokeSettings{
			Width: m.Width,
			Color: m.Color.Hex(),
		},
		Brush: StrokeSettings{
			Width:         b.Width,
			Color:         b.Color.Hex(),
			PressureCurve: b.PressureCurve.String(),
		},
		Shape: StrokeSettings{
			Width: s.Width,
			Color: s.Color.Hex(),
			Fill:  s.Fill.Hex(),
		},
		Renderer: RendererSettings{
			Backend:       render.SoftwareName,
			CacheCapacity: render.DefaultCacheCapacity,
			Zoom:          1,
		},
	}
}

// Load reads settings from a file, choosing the format by extension.
// Fields missing from the file keep their Default values. The result is
// validated.
func Load(filename string) (Settings, error) {
	dec, err := DecoderFor(filename)
	if err != nil {
		return Settings{}, err
	}
	f, err := os.Open(filename) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return Settings{}, err
	}
	defer f.Close()

	s, err := Read(bufio.NewReader(f), dec)
	if err != nil {
		return Settings{}, fmt.Errorf("config: %s: %w", filename, err)
	}
	ink.Logger().Debug("config: settings loaded", "file", filename)
	return s, nil
}

// Read decodes and validates settings from r.
func Read(r io.Reader, dec DecoderFunc) (Settings, error) {
	s := Default()
	if err := dec(r).Decode(&s); err != nil && !errors.Is(err, io.EOF) {
		return Settings{}, err
	}
	if err := s.Validate(); err != nil {
		return Settings{}, err
	}
	return s, nil
}

// Validate reports the first invalid setting.
func (s Settings) Validate() error {
	if !(s.DPI > 0) {
		return fmt.Errorf("config: dpi must be positive, got %v", s.DPI)
	}
	if _, err := unit.Parse(s.Unit); err != nil {
		return fmt.Errorf("config: unit: %w", err)
	}
	if _, err := s.MarkerStyle(); err != nil {
		return err
	}
	if _, err := s.BrushStyle(); err != nil {
		return err
	}
	if _, err := s.ShapeStyle(); err != nil {
		return err
	}
	if s.Renderer.CacheCapacity < 0 {
		return fmt.Errorf("config: renderer.cache_capacity must not be negative, got %d", s.Renderer.CacheCapacity)
	}
	if !(s.Renderer.Zoom > 0) {
		return fmt.Errorf("config: renderer.zoom must be positive, got %v", s.Renderer.Zoom)
	}
	return nil
}

func (ss StrokeSettings) width(section string) (float64, error) {
	if !(ss.Width > 0) {
		return 0, fmt.Errorf("config: %s.width must be positive, got %v", section, ss.Width)
	}
	return ss.Width, nil
}

func parseColor(section, field, hex string) (ink.Color, error) {
	c, err := ink.ParseHex(hex)
	if err != nil {
		return ink.Color{}, fmt.Errorf("config: %s.%s: %w", section, field, err)
	}
	return c, nil
}

// MarkerStyle converts the marker section.
func (s Settings) MarkerStyle() (stroke.MarkerStyle, error) {
	w, err := s.Marker.width("marker")
	if err != nil {
		return stroke.MarkerStyle{}, err
	}
	c, err := parseColor("marker", "color", s.Marker.Color)
	if err != nil {
		return stroke.MarkerStyle{}, err
	}
	return stroke.MarkerStyle{Width: w, Color: c}, nil
}

// BrushStyle converts the brush section.
func (s Settings) BrushStyle() (stroke.BrushStyle, error) {
	w, err := s.Brush.width("brush")
	if err != nil {
		return stroke.BrushStyle{}, err
	}
	c, err := parseColor("brush", "color", s.Brush.Color)
	if err != nil {
		return stroke.BrushStyle{}, err
	}
	curve := stroke.PressureLinear
	if s.Brush.PressureCurve != "" {
		curve, err = stroke.ParsePressureCurve(s.Brush.PressureCurve)
		if err != nil {
			return stroke.BrushStyle{}, fmt.Errorf("config: brush.pressure_curve: %w", err)
		}
	}
	return stroke.BrushStyle{Width: w, Color: c, PressureCurve: curve}, nil
}

// ShapeStyle converts the shape section. An empty fill means no fill.
func (s Settings) ShapeStyle() (stroke.ShapeStyle, error) {
	w, err := s.Shape.width("shape")
	if err != nil {
		return stroke.ShapeStyle{}, err
	}
	c, err := parseColor("shape", "color", s.Shape.Color)
	if err != nil {
		return stroke.ShapeStyle{}, err
	}
	fill := ink.Transparent
	if s.Shape.Fill != "" {
		if fill, err = parseColor("shape", "fill", s.Shape.Fill); err != nil {
			return stroke.ShapeStyle{}, err
		}
	}
	return stroke.ShapeStyle{Width: w, Color: c, Fill: fill}, nil
}

// Length returns an entry holding px pixels, expressed in the display unit
// at the configured DPI.
func (s Settings) Length(px float64) (*unit.Entry, error) {
	u, err := unit.Parse(s.Unit)
	if err != nil {
		return nil, fmt.Errorf("config: unit: %w", err)
	}
	e := unit.NewEntry()
	e.SetDPI(s.DPI)
	e.SetValue(px)
	e.ConvertTo(u)
	return e, nil
}

// RendererOptions converts the renderer section into render options.
func (s Settings) RendererOptions() []render.Option {
	opts := []render.Option{render.WithCacheCapacity(s.Renderer.CacheCapacity)}
	if s.Renderer.Backend != "" {
		opts = append(opts, render.WithBackendName(s.Renderer.Backend))
	}
	return opts
}

// NewRenderer creates the renderer described by the settings.
func (s Settings) NewRenderer() (*render.Renderer, error) {
	return render.NewRenderer(s.RendererOptions()...)
}
