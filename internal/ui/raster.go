package ui

import (
	"image"
	"image/color"
	"image/draw"

	"github.com/danmichaelo/statusindicator/internal/model"
)

// displayToPixel builds the projection from display space (x in [-dw,dw],
// y in [-dh,dh], y up) to image pixels (y down)
func displayToPixel(dw, dh float64, w, h int) func(model.Vec3) (float64, float64) {
	return func(p model.Vec3) (float64, float64) {
		x := (p.X/dw + 1) / 2 * float64(w)
		y := (1 - p.Y/dh) / 2 * float64(h)
		return x, y
	}
}

// toRGBA converts a normalized color to 8-bit RGBA
func toRGBA(c model.Color) color.RGBA {
	return color.RGBA{
		R: uint8(clamp01(c.R)*255 + 0.5),
		G: uint8(clamp01(c.G)*255 + 0.5),
		B: uint8(clamp01(c.B)*255 + 0.5),
		A: 255,
	}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// fillBackground paints the whole image in the viewport background color
func fillBackground(img *image.RGBA, c model.Color) {
	draw.Draw(img, img.Bounds(), image.NewUniform(toRGBA(c)), image.Point{}, draw.Src)
}

// rasterTriangle fills one triangle using pixel-center edge tests. Both
// windings are accepted; degenerate triangles cover no pixel centers and
// fall out naturally.
func rasterTriangle(img *image.RGBA, t triangle, project func(model.Vec3) (float64, float64)) {
	x1, y1 := project(t.p1)
	x2, y2 := project(t.p2)
	x3, y3 := project(t.p3)

	area := (x2-x1)*(y3-y1) - (y2-y1)*(x3-x1)
	if area == 0 {
		return
	}

	minX := int(min3(x1, x2, x3))
	maxX := int(max3(x1, x2, x3)) + 1
	minY := int(min3(y1, y2, y3))
	maxY := int(max3(y1, y2, y3)) + 1

	b := img.Bounds()
	if minX < b.Min.X {
		minX = b.Min.X
	}
	if minY < b.Min.Y {
		minY = b.Min.Y
	}
	if maxX > b.Max.X {
		maxX = b.Max.X
	}
	if maxY > b.Max.Y {
		maxY = b.Max.Y
	}

	col := toRGBA(t.color)
	for y := minY; y < maxY; y++ {
		py := float64(y) + 0.5
		for x := minX; x < maxX; x++ {
			px := float64(x) + 0.5
			e1 := (x2-x1)*(py-y1) - (y2-y1)*(px-x1)
			e2 := (x3-x2)*(py-y2) - (y3-y2)*(px-x2)
			e3 := (x1-x3)*(py-y3) - (y1-y3)*(px-x3)
			if area > 0 {
				if e1 >= 0 && e2 >= 0 && e3 >= 0 {
					img.SetRGBA(x, y, col)
				}
			} else {
				if e1 <= 0 && e2 <= 0 && e3 <= 0 {
					img.SetRGBA(x, y, col)
				}
			}
		}
	}
}

func min3(a, b, c float64) float64 {
	m := a
	if b < m {
		m = b
	}
	if c < m {
		m = c
	}
	return m
}

func max3(a, b, c float64) float64 {
	m := a
	if b > m {
		m = b
	}
	if c > m {
		m = c
	}
	return m
}
