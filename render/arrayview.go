package render

import (
	"fmt"
	"image"
	"image/color"
	"math"
	"sort"

	"fyne.io/fyne/v2"
	"github.com/wiless/vlib"
)

// ArrayView renders the element positions as a depth-sorted scatter, each
// point colored by its weight phase through the cyclic phase colormap.
type ArrayView struct {
	view3d

	positions [][3]float64 // scaled into the unit cube
	phases    []float64
	cmap      Colormap
	pointSize int
}

var _ fyne.Widget = (*ArrayView)(nil)
var _ fyne.Draggable = (*ArrayView)(nil)

// NewArrayView creates the geometry view from element positions and their
// weight phases (radians, one per element).
func NewArrayView(positions []vlib.Location3D, phases []float64) (*ArrayView, error) {
	if len(positions) != len(phases) {
		return nil, fmt.Errorf("render: %d positions for %d phases", len(positions), len(phases))
	}
	a := &ArrayView{
		positions: normalizePositions(positions),
		phases:    append([]float64(nil), phases...),
		cmap:      PhaseColormap(),
		pointSize: 4,
	}
	a.init(a.paintArray)
	a.ExtendBaseWidget(a)
	return a, nil
}

// SetPhases recolors the scatter for a new weight vector, as after a
// steering update.
func (a *ArrayView) SetPhases(phases []float64) error {
	a.mu.Lock()
	if len(phases) != len(a.positions) {
		a.mu.Unlock()
		return fmt.Errorf("render: %d phases for %d positions", len(phases), len(a.positions))
	}
	copy(a.phases, phases)
	a.mu.Unlock()
	a.redraw()
	return nil
}

func (a *ArrayView) paintArray(img *image.RGBA) {
	w := img.Bounds().Dx()
	h := img.Bounds().Dy()

	a.paintAxes(img, w, h)

	order := make([]int, len(a.positions))
	pts := make([][3]float64, len(a.positions))
	for i, p := range a.positions {
		pts[i] = a.cam.Apply(p)
		order[i] = i
	}
	// far points first
	sort.Slice(order, func(i, j int) bool { return pts[order[i]][2] < pts[order[j]][2] })

	for _, i := range order {
		x, y := a.project(pts[i], w, h)
		// phase in (-pi, pi] maps to (0.25, 0.75] on the cyclic map
		t := a.phases[i]/(2*math.Pi) + 0.5
		a.drawPoint(img, x, y, a.cmap.At(t))
	}
}

func (a *ArrayView) paintAxes(img *image.RGBA, w, h int) {
	grey := color.RGBA{90, 90, 90, 255}
	origin := a.cam.Apply([3]float64{0, 0, 0})
	ox, oy := a.project(origin, w, h)
	for _, axis := range [][3]float64{{1.2, 0, 0}, {0, 1.2, 0}, {0, 0, 1.2}} {
		tip := a.cam.Apply(axis)
		tx, ty := a.project(tip, w, h)
		drawLine(img, ox, oy, tx, ty, grey, grey)
	}
}

func (a *ArrayView) drawPoint(img *image.RGBA, x, y int, c color.RGBA) {
	fillCircle(img, x, y, a.pointSize, c)
}

// normalizePositions scales positions so the widest coordinate spans
// [-1, 1], keeping the aspect ratio.
func normalizePositions(positions []vlib.Location3D) [][3]float64 {
	extent := 0.0
	for _, p := range positions {
		for _, c := range []float64{p.X, p.Y, p.Z} {
			if v := math.Abs(c); v > extent {
				extent = v
			}
		}
	}
	if extent == 0 {
		extent = 1
	}
	out := make([][3]float64, len(positions))
	for i, p := range positions {
		out[i] = [3]float64{p.X / extent, p.Y / extent, p.Z / extent}
	}
	return out
}
