package ui

import (
	"fmt"
	"image"
	"sort"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/widget"
	"github.com/google/uuid"

	"github.com/danmichaelo/statusindicator/internal/host"
	"github.com/danmichaelo/statusindicator/internal/model"
	"github.com/danmichaelo/statusindicator/internal/overlay"
)

// Viewport is the widget standing in for the host's 3D view. It owns the
// drawable registry and renders every overlay primitive with a software
// raster, plus text primitives as canvas objects.
type Viewport struct {
	widget.BaseWidget

	background model.Color
	scale      float64
	nearClip   float64
	projection model.Projection

	drawables map[string]*Drawable
	order     []string // creation order, stable tiebreak for equal depths
}

// NewViewport creates an empty viewport with default zoom and projection
func NewViewport() *Viewport {
	v := &Viewport{
		scale:      DefaultScaleFactor,
		nearClip:   DefaultNearClip,
		projection: model.ProjectionPerspective,
		drawables:  make(map[string]*Drawable),
	}
	v.ExtendBaseWidget(v)
	return v
}

// Metrics reports the viewport state the overlay engine consumes. Recomputed
// from the live widget size on every call.
func (v *Viewport) Metrics() model.ViewportMetrics {
	size := v.Size()
	w, h := int(size.Width), int(size.Height)
	if w < 1 {
		w = int(ViewportMinWidth)
	}
	if h < 1 {
		h = int(ViewportMinHeight)
	}
	return model.ViewportMetrics{
		PixelWidth:  w,
		PixelHeight: h,
		ScaleFactor: v.scale,
		NearClip:    v.nearClip,
		Projection:  v.projection,
	}
}

// Background returns the current background color
func (v *Viewport) Background() model.Color {
	return v.background
}

// SetBackground changes the background color
func (v *Viewport) SetBackground(c model.Color) {
	v.background = c
	v.Refresh()
}

// SetScaleFactor changes the zoom, clamped to the supported range
func (v *Viewport) SetScaleFactor(s float64) {
	if s < MinScaleFactor {
		s = MinScaleFactor
	}
	if s > MaxScaleFactor {
		s = MaxScaleFactor
	}
	v.scale = s
	v.Refresh()
}

// SetProjection switches the camera projection mode
func (v *Viewport) SetProjection(p model.Projection) {
	v.projection = p
	v.Refresh()
}

// CreateDrawable registers a new empty drawable layered over the viewport
func (v *Viewport) CreateDrawable() (host.Drawable, error) {
	id, err := uuid.NewV7()
	if err != nil {
		return nil, fmt.Errorf("drawable id: %w", err)
	}
	d := &Drawable{id: id.String(), viewport: v}
	v.drawables[d.id] = d
	v.order = append(v.order, d.id)
	v.Refresh()
	return d, nil
}

// DestroyDrawable removes a drawable created by this viewport
func (v *Viewport) DestroyDrawable(d host.Drawable) error {
	owned, ok := d.(*Drawable)
	if !ok {
		return fmt.Errorf("foreign drawable %T", d)
	}
	if _, exists := v.drawables[owned.id]; !exists {
		return fmt.Errorf("drawable %s already destroyed", owned.id)
	}
	delete(v.drawables, owned.id)
	for i, id := range v.order {
		if id == owned.id {
			v.order = append(v.order[:i], v.order[i+1:]...)
			break
		}
	}
	v.Refresh()
	return nil
}

// displayExtent returns the display-space half extents matching what the
// overlay engine computes for the current metrics
func (v *Viewport) displayExtent() (width, height float64) {
	m := v.Metrics()
	height = overlay.VerticalFootprint * float64(m.PixelHeight) / m.ScaleFactor
	width = height * float64(m.PixelWidth) / float64(m.PixelHeight)
	return width, height
}

// sortedTriangles returns all triangles of all drawables, farthest depth
// first, creation order breaking ties
func (v *Viewport) sortedTriangles() []triangle {
	var tris []triangle
	for _, id := range v.order {
		tris = append(tris, v.drawables[id].triangles...)
	}
	sort.SliceStable(tris, func(i, j int) bool {
		return tris[i].p1.Z > tris[j].p1.Z
	})
	return tris
}

// allTexts returns all text primitives in creation/emission order
func (v *Viewport) allTexts() []textPrim {
	var texts []textPrim
	for _, id := range v.order {
		texts = append(texts, v.drawables[id].texts...)
	}
	return texts
}

// CreateRenderer implements fyne.Widget
func (v *Viewport) CreateRenderer() fyne.WidgetRenderer {
	r := &viewportRenderer{viewport: v}
	r.raster = canvas.NewRaster(r.draw)
	return r
}

type viewportRenderer struct {
	viewport *Viewport
	raster   *canvas.Raster
	texts    []*canvas.Text
}

// draw rasterizes the background and all triangles into an RGBA image.
// w and h are device pixels; the display-space transform depends only on the
// aspect ratio, so device scale cancels out.
func (r *viewportRenderer) draw(w, h int) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	fillBackground(img, r.viewport.background)

	dw, dh := r.viewport.displayExtent()
	project := displayToPixel(dw, dh, w, h)
	for _, t := range r.viewport.sortedTriangles() {
		rasterTriangle(img, t, project)
	}
	return img
}

func (r *viewportRenderer) MinSize() fyne.Size {
	return fyne.NewSize(ViewportMinWidth, ViewportMinHeight)
}

func (r *viewportRenderer) Layout(size fyne.Size) {
	r.raster.Resize(size)
	r.layoutTexts(size)
}

func (r *viewportRenderer) layoutTexts(size fyne.Size) {
	dw, dh := r.viewport.displayExtent()
	prims := r.viewport.allTexts()
	for i, obj := range r.texts {
		if i >= len(prims) {
			break
		}
		p := prims[i]
		x := float32((p.pos.X/dw + 1) / 2 * float64(size.Width))
		y := float32((1 - p.pos.Y/dh) / 2 * float64(size.Height))
		// The anchor is the text baseline corner; lift by the text height.
		obj.Move(fyne.NewPos(x, y-obj.MinSize().Height))
	}
}

func (r *viewportRenderer) Refresh() {
	prims := r.viewport.allTexts()
	r.texts = r.texts[:0]
	for _, p := range prims {
		t := canvas.NewText(p.value, toRGBA(p.color))
		t.TextSize = BaseTextSize * float32(p.size)
		r.texts = append(r.texts, t)
	}
	r.layoutTexts(r.viewport.Size())
	r.raster.Refresh()
	canvas.Refresh(r.viewport)
}

func (r *viewportRenderer) Objects() []fyne.CanvasObject {
	objs := make([]fyne.CanvasObject, 0, len(r.texts)+1)
	objs = append(objs, r.raster)
	for _, t := range r.texts {
		objs = append(objs, t)
	}
	return objs
}

func (r *viewportRenderer) Destroy() {}
