package render

import (
	"fmt"
	"image"
	"math"

	"fyne.io/fyne/v2"
)

// PatternView renders a directivity field as a deformed sphere: each mesh
// vertex sits at radius = field value, wireframe edges are depth-sorted
// and colored through the beam colormap.
type PatternView struct {
	view3d

	vertices [][3]float64 // unit sphere
	edges    [][2]int
	values   []float64
	cmap     Colormap
}

var _ fyne.Widget = (*PatternView)(nil)
var _ fyne.Draggable = (*PatternView)(nil)

// Mesh3D is the geometry contract the view needs: unit-sphere vertices and
// triangle faces indexing them. sphere.Mesh satisfies it structurally via
// NewPatternView's arguments.
type Mesh3D struct {
	Vertices [][3]float64
	Faces    [][3]int
}

// NewPatternView creates the beampattern view for a sphere mesh and an
// initial per-vertex field in [0, 1].
func NewPatternView(mesh Mesh3D, values []float64) (*PatternView, error) {
	if len(values) != len(mesh.Vertices) {
		return nil, fmt.Errorf("render: %d field values for %d mesh vertices",
			len(values), len(mesh.Vertices))
	}
	p := &PatternView{
		vertices: mesh.Vertices,
		edges:    meshEdges(mesh.Faces),
		values:   append([]float64(nil), values...),
		cmap:     BeamColormap(),
	}
	p.init(p.paintPattern)
	p.ExtendBaseWidget(p)
	return p, nil
}

// SetValues replaces the rendered field. Idempotent: the same call works
// for the first and every subsequent frame.
func (p *PatternView) SetValues(values []float64) error {
	p.mu.Lock()
	if len(values) != len(p.vertices) {
		p.mu.Unlock()
		return fmt.Errorf("render: %d field values for %d mesh vertices",
			len(values), len(p.vertices))
	}
	copy(p.values, values)
	p.mu.Unlock()
	p.redraw()
	return nil
}

func (p *PatternView) paintPattern(img *image.RGBA) {
	w := img.Bounds().Dx()
	h := img.Bounds().Dy()

	pts := make([][3]float64, len(p.vertices))
	minZ, maxZ := math.Inf(1), math.Inf(-1)
	for i, vtx := range p.vertices {
		r := p.values[i]
		pts[i] = p.cam.Apply([3]float64{vtx[0] * r, vtx[1] * r, vtx[2] * r})
		if pts[i][2] < minZ {
			minZ = pts[i][2]
		}
		if pts[i][2] > maxZ {
			maxZ = pts[i][2]
		}
	}
	zrange := maxZ - minZ
	if zrange == 0 {
		zrange = 1
	}

	segs := make([]segment, 0, len(p.edges))
	for _, e := range p.edges {
		a, b := pts[e[0]], pts[e[1]]
		x0, y0 := p.project(a, w, h)
		x1, y1 := p.project(b, w, h)
		if x0 == x1 && y0 == y1 {
			continue
		}
		// closer edges drawn later and brighter
		d0 := 0.55 + 0.45*(a[2]-minZ)/zrange
		d1 := 0.55 + 0.45*(b[2]-minZ)/zrange
		segs = append(segs, segment{
			x0: x0, y0: y0, x1: x1, y1: y1,
			c0:    scaled(p.cmap.At(p.values[e[0]]), d0),
			c1:    scaled(p.cmap.At(p.values[e[1]]), d1),
			depth: (a[2] + b[2]) / 2,
		})
	}
	drawSegments(img, segs)
}

// meshEdges collects the unique undirected edges of a triangle list.
func meshEdges(faces [][3]int) [][2]int {
	seen := make(map[[2]int]struct{}, 3*len(faces))
	edges := make([][2]int, 0, 3*len(faces)/2)
	add := func(a, b int) {
		if a > b {
			a, b = b, a
		}
		key := [2]int{a, b}
		if _, ok := seen[key]; ok {
			return
		}
		seen[key] = struct{}{}
		edges = append(edges, key)
	}
	for _, f := range faces {
		add(f[0], f[1])
		add(f[1], f[2])
		add(f[2], f[0])
	}
	return edges
}
