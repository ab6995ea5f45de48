package render

import (
	"image/color"
	"math"
)

// Colormap maps a value in [0, 1] onto a color by piecewise-linear
// interpolation between its stops. Out-of-range values are clamped, NaN
// maps to gray.
type Colormap struct {
	stops []color.RGBA
}

// BeamColormap is the rainbow-style map used for the beampattern surface.
func BeamColormap() Colormap {
	return Colormap{stops: []color.RGBA{
		{12, 7, 134, 255},
		{0, 120, 255, 255},
		{0, 200, 180, 255},
		{255, 255, 0, 255},
		{255, 60, 0, 255},
		{160, 0, 0, 255},
	}}
}

// PhaseColormap is cyclic (first and last stop coincide) so that phases 0
// and 2*pi render identically.
func PhaseColormap() Colormap {
	return Colormap{stops: []color.RGBA{
		{0, 90, 200, 255},
		{200, 60, 200, 255},
		{255, 160, 0, 255},
		{0, 170, 80, 255},
		{0, 90, 200, 255},
	}}
}

// At returns the color for t in [0, 1].
func (c Colormap) At(t float64) color.RGBA {
	if math.IsNaN(t) {
		return color.RGBA{128, 128, 128, 255}
	}
	if t <= 0 {
		return c.stops[0]
	}
	if t >= 1 {
		return c.stops[len(c.stops)-1]
	}
	seg := t * float64(len(c.stops)-1)
	i := int(seg)
	return lerpRGBA(c.stops[i], c.stops[i+1], seg-float64(i))
}

func lerpRGBA(a, b color.RGBA, t float64) color.RGBA {
	return color.RGBA{
		R: uint8(float64(a.R) + t*(float64(b.R)-float64(a.R))),
		G: uint8(float64(a.G) + t*(float64(b.G)-float64(a.G))),
		B: uint8(float64(a.B) + t*(float64(b.B)-float64(a.B))),
		A: 255,
	}
}

// scaled darkens a color by factor in [0, 1], used for depth shading.
func scaled(c color.RGBA, factor float64) color.RGBA {
	return color.RGBA{
		R: uint8(float64(c.R) * factor),
		G: uint8(float64(c.G) * factor),
		B: uint8(float64(c.B) * factor),
		A: c.A,
	}
}
