package unit

import (
	"math"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Entry is a length as entered by a user: a value, the unit it was typed in
// and the resolution used to relate it to pixels.
//
// Changing the DPI keeps the physical length and rescales the value;
// changing the unit with SetUnit reinterprets the value, while ConvertTo
// keeps the length and converts the value.
type Entry struct {
	value float64
	unit  Unit
	dpi   float64
}

// NewEntry returns an entry of 1px at DefaultDPI.
func NewEntry() *Entry {
	return &Entry{value: 1, unit: Px, dpi: DefaultDPI}
}

func (e *Entry) Value() float64 { return e.value }

func (e *Entry) SetValue(v float64) { e.value = v }

func (e *Entry) Unit() Unit { return e.unit }

// SetUnit replaces the unit without converting the value.
func (e *Entry) SetUnit(u Unit) { e.unit = u }

func (e *Entry) DPI() float64 { return e.dpi }

// SetDPI changes the resolution, converting the value so that the measured
// length stays the same. Non-positive values are ignored.
func (e *Entry) SetDPI(dpi float64) {
	if dpi <= 0 || dpi == e.dpi {
		return
	}
	e.value = Convert(e.value, e.unit, e.dpi, e.unit, dpi)
	e.dpi = dpi
}

// ValueInPx returns the entry converted to whole pixels.
func (e *Entry) ValueInPx() int {
	return int(math.Round(ToPx(e.value, e.unit, e.dpi)))
}

// ConvertTo switches to unit u, converting the value to keep the length.
func (e *Entry) ConvertTo(u Unit) {
	e.value = Convert(e.value, e.unit, e.dpi, u, e.dpi)
	e.unit = u
}

// Format renders the entry for display in the given language, e.g.
// "1,234.50 mm" for English or "1.234,50 mm" for German.
func (e *Entry) Format(tag language.Tag) string {
	p := message.NewPrinter(tag)
	return p.Sprintf("%.2f %s", e.value, e.unit.String())
}
