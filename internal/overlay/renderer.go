package overlay

import (
	"github.com/danmichaelo/statusindicator/internal/host"
	"github.com/danmichaelo/statusindicator/internal/model"
)

// Layer colors of the progress bar
var (
	ColorGray   = model.Color{R: 0.5, G: 0.5, B: 0.5}
	ColorWhite  = model.Color{R: 1, G: 1, B: 1}
	ColorSilver = model.Color{R: 0.75, G: 0.75, B: 0.75}
)

// Relative text sizes passed to the drawable
const (
	TimeTextSize   = 1.0
	HeaderTextSize = 1.2
)

// paint emits the overlay primitives for one redraw: three rectangle layers
// (two triangles each) back to front, the time label, and the header text if
// one is configured. The drawable is expected to be cleared already.
func paint(d host.Drawable, lay Layout, st model.RenderState, header string) {
	fillRect(d, ColorGray, lay.Outer)
	fillRect(d, ColorWhite, lay.Inner)
	fillRect(d, ColorSilver, lay.Fill)

	d.SetColor(st.Foreground.Color())
	d.AddText(lay.TimeAnchor, st.TimeLabel, TimeTextSize)
	if header != "" {
		d.AddText(lay.HeaderAnchor, header, HeaderTextSize)
	}
}

// fillRect emits a filled rectangle as a pair of triangles at the rect depth
func fillRect(d host.Drawable, c model.Color, r Rect) {
	bl := model.Vec3{X: r.Left, Y: r.Bottom, Z: r.Z}
	br := model.Vec3{X: r.Right, Y: r.Bottom, Z: r.Z}
	tr := model.Vec3{X: r.Right, Y: r.Top, Z: r.Z}
	tl := model.Vec3{X: r.Left, Y: r.Top, Z: r.Z}

	d.SetColor(c)
	d.AddTriangle(bl, br, tr)
	d.AddTriangle(bl, tr, tl)
}
