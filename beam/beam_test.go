package beam_test

import (
	"math"
	"math/cmplx"
	"testing"

	"github.com/wiless/vlib"

	"github.com/tiiuae/3d-phased-array-plotter/array"
	"github.com/tiiuae/3d-phased-array-plotter/beam"
	"github.com/tiiuae/3d-phased-array-plotter/sphere"
)

func vlibLoc(x, y, z float64) vlib.Location3D {
	return vlib.Location3D{X: x, Y: y, Z: z}
}

func testModel(t *testing.T, lambda float64) *array.Model {
	t.Helper()
	m, err := array.New(lambda)
	if err != nil {
		t.Fatal(err)
	}
	return m
}

func TestDirectivityNonNegative(t *testing.T) {
	m := testModel(t, 0.5)
	m.AddElements(array.PlanarXY(4, 4, 0.25))
	m.Steer(math.Pi/3, math.Pi/5)

	grid, _ := sphere.NewGrid(17, 32)
	for _, d := range grid.Directions {
		if v := beam.Directivity(m, d); v < 0 || math.IsNaN(v) {
			t.Fatalf("directivity(%v,%v) = %v", d.Theta, d.Phi, v)
		}
	}
}

func TestSingleElementIsotropic(t *testing.T) {
	m := testModel(t, 1)
	m.AddElement(vlibLoc(0.3, -0.2, 0.7), complex(2, 0))

	grid, _ := sphere.NewGrid(9, 16)
	for _, d := range grid.Directions {
		if v := beam.Directivity(m, d); math.Abs(v-2) > 1e-12 {
			t.Fatalf("single element directivity = %v, want 2", v)
		}
	}
}

func TestArrayFactorCommutative(t *testing.T) {
	lambda := 0.5
	pos := array.PlanarXY(3, 3, 0.3)

	fwd := testModel(t, lambda)
	rev := testModel(t, lambda)
	for i := range pos {
		fwd.AddElement(pos[i], cmplx.Rect(1, float64(i)*0.7))
		rev.AddElement(pos[len(pos)-1-i], cmplx.Rect(1, float64(len(pos)-1-i)*0.7))
	}

	for _, d := range []sphere.Direction{
		{Theta: 0.1, Phi: 0.2},
		{Theta: math.Pi / 2, Phi: 1.0},
		{Theta: 2.8, Phi: 5.5},
	} {
		a := beam.ArrayFactor(fwd, d)
		b := beam.ArrayFactor(rev, d)
		if cmplx.Abs(a-b) > 1e-10 {
			t.Errorf("reordered AF differ at %v: %v vs %v", d, a, b)
		}
	}
}

func TestEvaluateFieldRange(t *testing.T) {
	m := testModel(t, 0.5)
	m.AddElements(array.PlanarXY(5, 5, 0.25))
	m.Steer(math.Pi/4, -math.Pi/4)
	grid, _ := sphere.NewGrid(21, 40)

	for _, scale := range []beam.Scale{beam.Linear, beam.Decibel} {
		f, err := beam.EvaluateField(m, grid, scale)
		if err != nil {
			t.Fatal(err)
		}
		for i, v := range f.Values {
			if v < 0 || v > 1 || math.IsNaN(v) {
				t.Fatalf("%v field value[%d] = %v", scale, i, v)
			}
		}
		if f.Values[f.PeakIdx] != 1 {
			t.Errorf("%v peak value = %v, want 1", scale, f.Values[f.PeakIdx])
		}
	}
}

func TestSteeredLinearArrayPeak(t *testing.T) {
	const lambda = 0.5
	m := testModel(t, lambda)
	m.AddElements(array.LinearAlongX(4, lambda/2))
	m.Steer(math.Pi/2, 0)

	// odd theta count puts pi/2 exactly on the grid; phi row starts at 0
	grid, err := sphere.NewGrid(41, 72)
	if err != nil {
		t.Fatal(err)
	}
	f, err := beam.EvaluateField(m, grid, beam.Linear)
	if err != nil {
		t.Fatal(err)
	}

	peak := f.PeakDirection()
	dTheta := math.Pi / 40
	dPhi := 2 * math.Pi / 72
	phiErr := math.Abs(math.Remainder(peak.Phi, 2*math.Pi))
	if math.Abs(peak.Theta-math.Pi/2) > dTheta+1e-9 || phiErr > dPhi+1e-9 {
		t.Errorf("peak at (%v,%v), want within one cell of (pi/2, 0)", peak.Theta, peak.Phi)
	}
	if math.Abs(f.Peak-4) > 1e-9 {
		t.Errorf("raw peak = %v, want 4 (coherent 4-element sum)", f.Peak)
	}
}

func TestZeroWeightField(t *testing.T) {
	m := testModel(t, 1)
	m.AddElements(array.LinearAlongX(3, 0.5))
	for i := 0; i < m.Len(); i++ {
		if err := m.SetWeight(i, 0, 0); err != nil {
			t.Fatal(err)
		}
	}
	grid, _ := sphere.NewGrid(5, 8)
	for _, scale := range []beam.Scale{beam.Linear, beam.Decibel} {
		f, err := beam.EvaluateField(m, grid, scale)
		if err != nil {
			t.Fatalf("%v scale: %v", scale, err)
		}
		for _, v := range f.Values {
			if v != 0 {
				t.Fatalf("%v scale: zero-weight field has value %v", scale, v)
			}
		}
	}
}

func TestDecibelFloorClamp(t *testing.T) {
	m := testModel(t, 0.5)
	m.AddElements(array.LinearAlongX(8, 0.25))
	m.Steer(math.Pi/2, 0)
	grid, _ := sphere.NewGrid(41, 72)

	shallow, err := beam.EvaluateFieldFloor(m, grid, beam.Decibel, -10)
	if err != nil {
		t.Fatal(err)
	}
	var clamped int
	for _, v := range shallow.Values {
		if v == 0 {
			clamped++
		}
	}
	if clamped == 0 {
		t.Error("expected sidelobe nulls clamped to the -10 dB floor")
	}

	if _, err := beam.EvaluateFieldFloor(m, grid, beam.Decibel, 5); err == nil {
		t.Error("positive floor accepted")
	}
}
