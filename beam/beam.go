// Package beam evaluates the far-field beampattern of a phased array: the
// array factor, its magnitude, and normalized full-sphere fields ready for
// rendering. Every function here is pure; the model is only read, never
// held onto.
package beam

import (
	"fmt"
	"math"
	"math/cmplx"

	log "github.com/sirupsen/logrus"
	"github.com/wiless/vlib"
	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/floats"

	"github.com/tiiuae/3d-phased-array-plotter/array"
	"github.com/tiiuae/3d-phased-array-plotter/sphere"
)

// Scale selects the value transform applied to a normalized field.
type Scale int

const (
	// Linear leaves the normalized magnitude in [0, 1].
	Linear Scale = iota
	// Decibel maps 20*log10 of the normalized magnitude from
	// [floor, 0] dB onto [0, 1], clamping below the floor.
	Decibel
)

func (s Scale) String() string {
	switch s {
	case Linear:
		return "linear"
	case Decibel:
		return "decibel"
	default:
		return "unknown-scale"
	}
}

// DefaultFloorDb is the clamp floor used by EvaluateField for the Decibel
// scale.
const DefaultFloorDb = -40.0

// ArrayFactor coherently sums the phase-shifted element contributions
// towards d:
//
//	AF = sum_i w_i * exp(j*k*(pos_i . u(d))), k = 2*pi/lambda
func ArrayFactor(m *array.Model, d sphere.Direction) complex128 {
	ux, uy, uz := d.Unit()
	k := m.WaveNumber()
	weights := m.Weights()
	var af complex128
	for i, p := range m.Positions() {
		phase := k * (p.X*ux + p.Y*uy + p.Z*uz)
		af += weights[i] * cmplx.Exp(complex(0, phase))
	}
	return af
}

// Directivity is |AF| towards d. Elements are isotropic, so no
// element-intrinsic pattern is multiplied in.
func Directivity(m *array.Model, d sphere.Direction) float64 {
	return cmplx.Abs(ArrayFactor(m, d))
}

// Field is a normalized directivity map over a grid. Values follow the
// grid's row-major order and always lie in [0, 1], whatever the scale.
type Field struct {
	Grid    *sphere.Grid
	Values  vlib.VectorF
	Scale   Scale
	FloorDb float64 // clamp floor, meaningful for the Decibel scale
	Peak    float64 // raw |AF| maximum found during this evaluation
	PeakIdx int     // grid index of the maximum
}

// PeakDirection returns the direction of the field maximum.
func (f *Field) PeakDirection() sphere.Direction {
	return f.Grid.Directions[f.PeakIdx]
}

// EvaluateField computes the directivity for every direction in grid and
// normalizes by the maximum found. With an all-zero field the values stay
// zero rather than going NaN. Decibel output uses DefaultFloorDb.
func EvaluateField(m *array.Model, grid *sphere.Grid, scale Scale) (*Field, error) {
	return EvaluateFieldFloor(m, grid, scale, DefaultFloorDb)
}

// EvaluateFieldFloor is EvaluateField with an explicit dB clamp floor.
//
// Rows of the grid are evaluated in parallel; the model must not be
// mutated until the call returns.
func EvaluateFieldFloor(m *array.Model, grid *sphere.Grid, scale Scale, floorDb float64) (*Field, error) {
	if err := m.Check(); err != nil {
		return nil, err
	}
	if floorDb >= 0 {
		return nil, fmt.Errorf("beam: dB floor must be negative, got %v", floorDb)
	}
	if scale != Linear && scale != Decibel {
		return nil, fmt.Errorf("beam: unknown scale %d", scale)
	}

	values := vlib.NewVectorF(grid.Len())
	var g errgroup.Group
	for r := 0; r < grid.NTheta; r++ {
		r := r
		g.Go(func() error {
			base := r * grid.NPhi
			for j := 0; j < grid.NPhi; j++ {
				values[base+j] = Directivity(m, grid.Directions[base+j])
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	f := &Field{
		Grid:    grid,
		Values:  values,
		Scale:   scale,
		FloorDb: floorDb,
		PeakIdx: floats.MaxIdx(values),
	}
	f.Peak = values[f.PeakIdx]
	if f.Peak == 0 {
		// zero-weight array: leave the field at zero
		log.Debug("beam: all-zero field, skipping normalization")
		return f, nil
	}

	if scale == Linear {
		floats.Scale(1/f.Peak, values)
		return f, nil
	}
	for i, v := range values {
		db := 20 * math.Log10(v/f.Peak) // -Inf for v == 0, clamped below
		if db < floorDb {
			db = floorDb
		}
		values[i] = (db - floorDb) / -floorDb
	}
	return f, nil
}
