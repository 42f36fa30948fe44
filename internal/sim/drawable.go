package sim

import (
	"github.com/danmichaelo/statusindicator/internal/model"
)

// Triangle is one recorded triangle primitive
type Triangle struct {
	P1, P2, P3 model.Vec3
	Color      model.Color
}

// Text is one recorded text primitive
type Text struct {
	Pos   model.Vec3
	Value string
	Size  float64
	Color model.Color
}

// Drawable records primitives instead of rendering them
type Drawable struct {
	triangles []Triangle
	texts     []Text
	color     model.Color
}

// Clear removes all recorded primitives
func (d *Drawable) Clear() {
	d.triangles = nil
	d.texts = nil
}

// SetColor sets the color applied to subsequent primitives
func (d *Drawable) SetColor(c model.Color) {
	d.color = c
}

// AddTriangle records one triangle in the current color
func (d *Drawable) AddTriangle(p1, p2, p3 model.Vec3) {
	d.triangles = append(d.triangles, Triangle{P1: p1, P2: p2, P3: p3, Color: d.color})
}

// AddText records one text primitive in the current color
func (d *Drawable) AddText(pos model.Vec3, text string, size float64) {
	d.texts = append(d.texts, Text{Pos: pos, Value: text, Size: size, Color: d.color})
}

// Triangles returns the recorded triangles in emission order
func (d *Drawable) Triangles() []Triangle { return d.triangles }

// Texts returns the recorded text primitives in emission order
func (d *Drawable) Texts() []Text { return d.texts }
