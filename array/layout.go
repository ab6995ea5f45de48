package array

import (
	"math"

	"github.com/wiless/vlib"
	"gonum.org/v1/gonum/floats"
)

// LinearAlongX drops n elements on the +x axis spaced by the given
// distance, first element at the origin.
func LinearAlongX(n int, spacing float64) []vlib.Location3D {
	result := make([]vlib.Location3D, n)
	for i := range result {
		result[i].X = float64(i) * spacing
	}
	return result
}

// PlanarXY drops an nx-by-ny uniform rectangular array in the z=0 plane,
// centered on the origin.
func PlanarXY(nx, ny int, spacing float64) []vlib.Location3D {
	xs := axisSpan(nx, spacing)
	ys := axisSpan(ny, spacing)
	result := make([]vlib.Location3D, 0, nx*ny)
	for _, x := range xs {
		for _, y := range ys {
			result = append(result, vlib.Location3D{X: x, Y: y, Z: 0})
		}
	}
	return result
}

func axisSpan(n int, spacing float64) []float64 {
	if n < 2 {
		return []float64{0}
	}
	s := make([]float64, n)
	half := float64(n-1) * spacing / 2
	floats.Span(s, -half, half)
	return s
}

// Circular drops n elements on a circle of the given radius in the z=0
// plane, centered on the origin.
func Circular(n int, radius float64) []vlib.Location3D {
	result := make([]vlib.Location3D, n)
	delTheta := 2 * math.Pi / float64(n)
	for i := range result {
		angle := float64(i) * delTheta
		result[i].X = radius * math.Cos(angle)
		result[i].Y = radius * math.Sin(angle)
	}
	return result
}

// Center shifts positions so their centroid sits at the origin.
func Center(pos []vlib.Location3D) []vlib.Location3D {
	if len(pos) == 0 {
		return pos
	}
	var cx, cy, cz float64
	for _, p := range pos {
		cx += p.X
		cy += p.Y
		cz += p.Z
	}
	n := float64(len(pos))
	cx, cy, cz = cx/n, cy/n, cz/n
	result := make([]vlib.Location3D, len(pos))
	for i, p := range pos {
		result[i] = vlib.Location3D{X: p.X - cx, Y: p.Y - cy, Z: p.Z - cz}
	}
	return result
}
