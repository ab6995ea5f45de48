// Package render draws the two 3D views of the tool with fyne: the array
// geometry colored by element phase, and the beampattern surface deformed
// by the directivity field. Rendering is plain software rasterization into
// a canvas image; dragging rotates the camera, scrolling zooms, and views
// can be linked so that rotating one rotates the other.
package render

import (
	"image"
	"sync"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/widget"
)

const (
	rotationScale = 0.5
	zoomStep      = 1.1
	fillFraction  = 0.35 // of the smaller image dimension, at zoom 1
)

// Linkable is a view whose camera rotation can be driven by another view.
type Linkable interface {
	syncCamera(rot mat3)
}

// view3d carries the camera, image surface and input handling shared by
// the concrete views.
type view3d struct {
	widget.BaseWidget

	mu    sync.Mutex
	cam   Camera
	img   *canvas.Image
	size  fyne.Size
	links []Linkable
	paint func(img *image.RGBA)
}

func (v *view3d) init(paint func(img *image.RGBA)) {
	v.cam = NewCamera()
	v.paint = paint
	v.size = fyne.NewSize(500, 500)
	v.img = canvas.NewImageFromImage(image.NewRGBA(image.Rect(0, 0, 1, 1)))
	v.img.FillMode = canvas.ImageFillStretch
	v.img.ScaleMode = canvas.ImageScaleFastest
}

// LinkCamera registers o to follow this view's rotation. Rotation only is
// shared; each view keeps its own zoom.
func (v *view3d) LinkCamera(o Linkable) {
	v.links = append(v.links, o)
}

func (v *view3d) syncCamera(rot mat3) {
	v.mu.Lock()
	v.cam.rot = rot
	v.mu.Unlock()
	v.redraw()
}

func (v *view3d) redraw() {
	v.mu.Lock()
	w := int(v.size.Width)
	h := int(v.size.Height)
	if w < 2 || h < 2 {
		w, h = 200, 200
	}
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	v.paint(img)
	v.img.Image = img
	v.mu.Unlock()
	v.img.Refresh()
}

// project maps a camera-space point onto pixel coordinates.
func (v *view3d) project(p [3]float64, w, h int) (int, int) {
	base := fillFraction * float64(min(w, h)) * v.cam.zoom
	x := float64(w)/2 + p[0]*base
	y := float64(h)/2 - p[1]*base
	return int(x), int(y)
}

func (v *view3d) Dragged(ev *fyne.DragEvent) {
	v.mu.Lock()
	v.cam.Rotate(-float64(ev.Dragged.DY)*rotationScale, float64(ev.Dragged.DX)*rotationScale, 0)
	rot := v.cam.rot
	links := v.links
	v.mu.Unlock()
	v.redraw()
	for _, l := range links {
		l.syncCamera(rot)
	}
}

func (v *view3d) DragEnd() {}

func (v *view3d) Scrolled(ev *fyne.ScrollEvent) {
	v.mu.Lock()
	if ev.Scrolled.DY > 0 {
		v.cam.Zoom(zoomStep)
	} else {
		v.cam.Zoom(1 / zoomStep)
	}
	v.mu.Unlock()
	v.redraw()
}

func (v *view3d) CreateRenderer() fyne.WidgetRenderer {
	return &viewRenderer{v}
}

type viewRenderer struct {
	*view3d
}

func (r *viewRenderer) Layout(size fyne.Size) {
	if size == r.size {
		return
	}
	r.mu.Lock()
	r.size = size
	r.mu.Unlock()
	r.img.Resize(size)
	r.redraw()
}

func (r *viewRenderer) MinSize() fyne.Size           { return fyne.NewSize(200, 200) }
func (r *viewRenderer) Refresh()                     { r.redraw() }
func (r *viewRenderer) Destroy()                     {}
func (r *viewRenderer) Objects() []fyne.CanvasObject { return []fyne.CanvasObject{r.img} }

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
