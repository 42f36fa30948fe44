package ui

import (
	"github.com/danmichaelo/statusindicator/internal/model"
)

// triangle is one filled triangle in display space
type triangle struct {
	p1, p2, p3 model.Vec3
	color      model.Color
}

// textPrim is one text primitive in display space
type textPrim struct {
	pos   model.Vec3
	value string
	size  float64
	color model.Color
}

// Drawable is a display-space primitive list layered over the viewport.
// It implements host.Drawable; every mutation marks the owning viewport for
// repaint.
type Drawable struct {
	id        string
	viewport  *Viewport
	color     model.Color
	triangles []triangle
	texts     []textPrim
}

// ID returns the registry identity of this drawable
func (d *Drawable) ID() string {
	return d.id
}

// Clear removes every primitive from this drawable
func (d *Drawable) Clear() {
	d.triangles = nil
	d.texts = nil
	d.viewport.Refresh()
}

// SetColor sets the color applied to subsequent primitives
func (d *Drawable) SetColor(c model.Color) {
	d.color = c
}

// AddTriangle adds one filled triangle in the current color
func (d *Drawable) AddTriangle(p1, p2, p3 model.Vec3) {
	d.triangles = append(d.triangles, triangle{p1: p1, p2: p2, p3: p3, color: d.color})
	d.viewport.Refresh()
}

// AddText adds a text primitive anchored at pos in the current color
func (d *Drawable) AddText(pos model.Vec3, text string, size float64) {
	d.texts = append(d.texts, textPrim{pos: pos, value: text, size: size, color: d.color})
	d.viewport.Refresh()
}
