package ui

import (
	"image"
	"testing"

	"github.com/danmichaelo/statusindicator/internal/model"
)

func TestDisplayToPixel_Center(t *testing.T) {
	project := displayToPixel(200, 150, 800, 600)

	x, y := project(model.Vec3{})
	if x != 400 || y != 300 {
		t.Errorf("origin projected to (%v, %v), expected (400, 300)", x, y)
	}

	x, y = project(model.Vec3{X: -200, Y: 150})
	if x != 0 || y != 0 {
		t.Errorf("top-left projected to (%v, %v), expected (0, 0)", x, y)
	}

	x, y = project(model.Vec3{X: 200, Y: -150})
	if x != 800 || y != 600 {
		t.Errorf("bottom-right projected to (%v, %v), expected (800, 600)", x, y)
	}
}

func TestToRGBA(t *testing.T) {
	tests := []struct {
		in      model.Color
		r, g, b uint8
	}{
		{model.Color{}, 0, 0, 0},
		{model.Color{R: 1, G: 1, B: 1}, 255, 255, 255},
		{model.Color{R: 0.5, G: 0.5, B: 0.5}, 128, 128, 128},
		{model.Color{R: 2, G: -1, B: 0.75}, 255, 0, 191},
	}

	for _, test := range tests {
		got := toRGBA(test.in)
		if got.R != test.r || got.G != test.g || got.B != test.b || got.A != 255 {
			t.Errorf("toRGBA(%+v) = %+v", test.in, got)
		}
	}
}

func TestRasterTriangle_FillsBothWindings(t *testing.T) {
	identity := func(p model.Vec3) (float64, float64) { return p.X, p.Y }
	white := model.Color{R: 1, G: 1, B: 1}

	windings := [][3]model.Vec3{
		{{X: 0, Y: 0}, {X: 8, Y: 0}, {X: 0, Y: 8}},
		{{X: 0, Y: 0}, {X: 0, Y: 8}, {X: 8, Y: 0}},
	}

	for i, verts := range windings {
		img := image.NewRGBA(image.Rect(0, 0, 8, 8))
		rasterTriangle(img, triangle{p1: verts[0], p2: verts[1], p3: verts[2], color: white}, identity)

		if img.RGBAAt(1, 1).R != 255 {
			t.Errorf("winding %d: pixel (1,1) inside triangle not filled", i)
		}
		if img.RGBAAt(7, 7).R != 0 {
			t.Errorf("winding %d: pixel (7,7) outside triangle filled", i)
		}
	}
}

func TestRasterTriangle_DegenerateIsNoop(t *testing.T) {
	identity := func(p model.Vec3) (float64, float64) { return p.X, p.Y }
	img := image.NewRGBA(image.Rect(0, 0, 4, 4))

	// All three vertices collinear
	rasterTriangle(img, triangle{
		p1:    model.Vec3{X: 0, Y: 0},
		p2:    model.Vec3{X: 2, Y: 2},
		p3:    model.Vec3{X: 4, Y: 4},
		color: model.Color{R: 1},
	}, identity)

	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			if img.RGBAAt(x, y).R != 0 {
				t.Fatalf("degenerate triangle filled pixel (%d,%d)", x, y)
			}
		}
	}
}

func TestRasterTriangle_ClipsToImage(t *testing.T) {
	identity := func(p model.Vec3) (float64, float64) { return p.X, p.Y }
	img := image.NewRGBA(image.Rect(0, 0, 4, 4))

	// Triangle far larger than the image; must not panic and must fill all
	rasterTriangle(img, triangle{
		p1:    model.Vec3{X: -100, Y: -100},
		p2:    model.Vec3{X: 100, Y: -100},
		p3:    model.Vec3{X: 0, Y: 100},
		color: model.Color{R: 1, G: 1, B: 1},
	}, identity)

	if img.RGBAAt(2, 2).R != 255 {
		t.Error("clipped triangle did not fill interior pixel")
	}
}
