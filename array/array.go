// Package array models a 3D phased sensor array: element positions, a
// carrier wavelength and one complex weight (amplitude + phase) per
// element.
package array

import (
	"errors"
	"fmt"
	"math"
	"math/cmplx"

	"github.com/wiless/vlib"

	"github.com/tiiuae/3d-phased-array-plotter/sphere"
)

var (
	// ErrInvalidWavelength is returned for a wavelength <= 0.
	ErrInvalidWavelength = errors.New("array: wavelength must be strictly positive")
	// ErrIndexOutOfRange is returned when a weight update names a
	// nonexistent element.
	ErrIndexOutOfRange = errors.New("array: element index out of range")
	// ErrMismatchedElementCount is returned when position and weight
	// sequences diverge in length.
	ErrMismatchedElementCount = errors.New("array: positions and weights differ in length")
)

func loc3D(x, y, z float64) vlib.Location3D {
	return vlib.Location3D{X: x, Y: y, Z: z}
}

// Model holds the element geometry and weights. Positions and weights are
// kept as parallel sequences in insertion order; the order carries no
// meaning for the array factor but decides per-element colors in the
// renderer.
//
// A Model is not safe for concurrent mutation; callers must mutate only
// between evaluation passes.
type Model struct {
	positions []vlib.Location3D
	weights   vlib.VectorC
	lambda    float64
}

// New creates an empty model for the given carrier wavelength.
func New(lambda float64) (*Model, error) {
	m := &Model{}
	if err := m.SetWavelength(lambda); err != nil {
		return nil, err
	}
	return m, nil
}

// SetWavelength replaces the carrier wavelength.
func (m *Model) SetWavelength(lambda float64) error {
	if lambda <= 0 {
		return fmt.Errorf("%w: %v", ErrInvalidWavelength, lambda)
	}
	m.lambda = lambda
	return nil
}

// Wavelength returns the carrier wavelength.
func (m *Model) Wavelength() float64 { return m.lambda }

// WaveNumber returns k = 2*pi/lambda.
func (m *Model) WaveNumber() float64 { return 2 * math.Pi / m.lambda }

// Len returns the element count.
func (m *Model) Len() int { return len(m.positions) }

// AddElement appends one element. Collocated elements are legal and sum
// coherently.
func (m *Model) AddElement(pos vlib.Location3D, weight complex128) {
	m.positions = append(m.positions, pos)
	m.weights = append(m.weights, weight)
}

// AddElements appends a batch of positions with unit weights.
func (m *Model) AddElements(pos []vlib.Location3D) {
	for _, p := range pos {
		m.AddElement(p, 1)
	}
}

// SetWeight replaces element i's weight with amplitude*exp(j*phase).
func (m *Model) SetWeight(i int, amplitude, phase float64) error {
	if i < 0 || i >= len(m.weights) {
		return fmt.Errorf("%w: %d of %d", ErrIndexOutOfRange, i, len(m.weights))
	}
	m.weights[i] = cmplx.Rect(amplitude, phase)
	return nil
}

// Position returns element i's location.
func (m *Model) Position(i int) vlib.Location3D { return m.positions[i] }

// Positions returns the position sequence. The slice is the model's own
// storage; treat it as read-only.
func (m *Model) Positions() []vlib.Location3D { return m.positions }

// Weights returns the weight sequence. The slice is the model's own
// storage; treat it as read-only.
func (m *Model) Weights() vlib.VectorC { return m.weights }

// Phases returns every element's weight phase in radians.
func (m *Model) Phases() vlib.VectorF {
	result := vlib.NewVectorF(len(m.weights))
	for i, w := range m.weights {
		result[i] = cmplx.Phase(w)
	}
	return result
}

// Check verifies the position/weight sequences are still in sync. The
// mutation API keeps them so; this guards direct struct misuse.
func (m *Model) Check() error {
	if len(m.positions) != m.weights.Size() {
		return fmt.Errorf("%w: %d positions, %d weights",
			ErrMismatchedElementCount, len(m.positions), m.weights.Size())
	}
	return nil
}

// Steer phase-aligns every element towards (theta0, phi0): each weight's
// phase becomes -k*(pos . u(theta0, phi0)) while its amplitude is kept.
func (m *Model) Steer(theta0, phi0 float64) {
	ux, uy, uz := sphere.Direction{Theta: theta0, Phi: phi0}.Unit()
	k := m.WaveNumber()
	for i, p := range m.positions {
		phase := -k * (p.X*ux + p.Y*uy + p.Z*uz)
		m.weights[i] = cmplx.Rect(cmplx.Abs(m.weights[i]), phase)
	}
}
