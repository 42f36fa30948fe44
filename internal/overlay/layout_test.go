package overlay

import (
	"math"
	"testing"

	"github.com/danmichaelo/statusindicator/internal/model"
)

func metrics(w, h int, scale float64) model.ViewportMetrics {
	return model.ViewportMetrics{
		PixelWidth:  w,
		PixelHeight: h,
		ScaleFactor: scale,
		NearClip:    0.5,
		Projection:  model.ProjectionPerspective,
	}
}

func TestCompute_AspectRatioPreserved(t *testing.T) {
	tests := []struct {
		w, h  int
		scale float64
	}{
		{800, 600, 1.0},
		{1920, 1080, 2.0},
		{640, 480, 0.5},
		{333, 777, 1.7},
		{2, 2, 1.0},
	}

	for _, test := range tests {
		lay := Compute(metrics(test.w, test.h, test.scale), 0.5)
		got := lay.DisplayWidth / lay.DisplayHeight
		want := float64(test.w) / float64(test.h)
		if math.Abs(got-want) > 1e-9 {
			t.Errorf("Compute(%dx%d, scale=%v): aspect = %v, expected %v",
				test.w, test.h, test.scale, got, want)
		}
	}
}

func TestCompute_DisplayExtent(t *testing.T) {
	lay := Compute(metrics(800, 600, 1.0), 0)

	if lay.DisplayHeight != 150 {
		t.Errorf("DisplayHeight = %v, expected 150", lay.DisplayHeight)
	}
	if lay.DisplayWidth != 200 {
		t.Errorf("DisplayWidth = %v, expected 200", lay.DisplayWidth)
	}
}

func TestCompute_FillEndpointsAndMonotonicity(t *testing.T) {
	m := metrics(800, 600, 1.0)

	zero := Compute(m, 0)
	if zero.Fill.Width() != 0 {
		t.Errorf("fill width at percentage=0 is %v, expected 0", zero.Fill.Width())
	}

	full := Compute(m, 1)
	if math.Abs(full.Fill.Width()-full.Inner.Width()) > 1e-9 {
		t.Errorf("fill width at percentage=1 is %v, expected inner width %v",
			full.Fill.Width(), full.Inner.Width())
	}

	prev := -1.0
	for pct := 0.0; pct <= 1.0; pct += 0.05 {
		w := Compute(m, pct).Fill.Width()
		if w < prev {
			t.Fatalf("fill width decreased: %v at percentage=%v, previous %v", w, pct, prev)
		}
		prev = w
	}
}

func TestCompute_InnerStrictlyInsideOuter(t *testing.T) {
	tests := []struct {
		w, h int
	}{
		{2, 2},
		{3, 5},
		{800, 600},
		{4096, 2160},
	}

	for _, test := range tests {
		lay := Compute(metrics(test.w, test.h, 1.0), 0.5)
		in, out := lay.Inner, lay.Outer
		if !(in.Left > out.Left && in.Right < out.Right && in.Bottom > out.Bottom && in.Top < out.Top) {
			t.Errorf("Compute(%dx%d): inner %+v not strictly inside outer %+v",
				test.w, test.h, in, out)
		}
	}
}

func TestCompute_DepthOrdering(t *testing.T) {
	lay := Compute(metrics(800, 600, 1.0), 0.5)

	if !(lay.Outer.Z > lay.Inner.Z && lay.Inner.Z > lay.Fill.Z) {
		t.Errorf("depth ordering violated: outer=%v inner=%v fill=%v",
			lay.Outer.Z, lay.Inner.Z, lay.Fill.Z)
	}
	if got := lay.Outer.Z - lay.Fill.Z; math.Abs(got-2*lay.PixelWidthUnit) > 1e-12 {
		t.Errorf("outer-to-fill depth separation = %v, expected %v", got, 2*lay.PixelWidthUnit)
	}
}

func TestCompute_FrontDepth(t *testing.T) {
	m := metrics(800, 600, 2.0)

	if lay := Compute(m, 0); lay.Front != 0 {
		t.Errorf("perspective front = %v, expected 0", lay.Front)
	}

	m.Projection = model.ProjectionOrthographic
	lay := Compute(m, 0)
	want := (2 - m.NearClip - ClipMargin) / m.ScaleFactor
	if math.Abs(lay.Front-want) > 1e-12 {
		t.Errorf("orthographic front = %v, expected %v", lay.Front, want)
	}
}

func TestCompute_PixelUnits(t *testing.T) {
	lay := Compute(metrics(800, 600, 1.0), 0)

	// 2*displayWidth / pixelWidth and 2*displayHeight / pixelHeight
	if math.Abs(lay.PixelWidthUnit-0.5) > 1e-12 {
		t.Errorf("PixelWidthUnit = %v, expected 0.5", lay.PixelWidthUnit)
	}
	if math.Abs(lay.PixelHeightUnit-0.5) > 1e-12 {
		t.Errorf("PixelHeightUnit = %v, expected 0.5", lay.PixelHeightUnit)
	}
}
