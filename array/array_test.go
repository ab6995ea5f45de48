package array_test

import (
	"errors"
	"math"
	"math/cmplx"
	"testing"

	"github.com/wiless/vlib"

	"github.com/tiiuae/3d-phased-array-plotter/array"
)

func TestNewInvalidWavelength(t *testing.T) {
	for _, lambda := range []float64{0, -1} {
		if _, err := array.New(lambda); !errors.Is(err, array.ErrInvalidWavelength) {
			t.Errorf("New(%v) err = %v, want ErrInvalidWavelength", lambda, err)
		}
	}
	m, err := array.New(0.5)
	if err != nil {
		t.Fatal(err)
	}
	if err := m.SetWavelength(0); !errors.Is(err, array.ErrInvalidWavelength) {
		t.Errorf("SetWavelength(0) err = %v, want ErrInvalidWavelength", err)
	}
	if err := m.SetWavelength(-1); !errors.Is(err, array.ErrInvalidWavelength) {
		t.Errorf("SetWavelength(-1) err = %v, want ErrInvalidWavelength", err)
	}
	if m.Wavelength() != 0.5 {
		t.Errorf("rejected wavelength clobbered the model: %v", m.Wavelength())
	}
}

func TestSetWeight(t *testing.T) {
	m, _ := array.New(1)
	m.AddElement(vlib.Location3D{}, 1)
	if err := m.SetWeight(0, 2, math.Pi/2); err != nil {
		t.Fatal(err)
	}
	w := m.Weights()[0]
	if math.Abs(cmplx.Abs(w)-2) > 1e-12 || math.Abs(cmplx.Phase(w)-math.Pi/2) > 1e-12 {
		t.Errorf("weight = %v, want 2*exp(j*pi/2)", w)
	}
	for _, idx := range []int{-1, 1} {
		if err := m.SetWeight(idx, 1, 0); !errors.Is(err, array.ErrIndexOutOfRange) {
			t.Errorf("SetWeight(%d) err = %v, want ErrIndexOutOfRange", idx, err)
		}
	}
}

func TestSteerPhases(t *testing.T) {
	const lambda = 0.5
	m, _ := array.New(lambda)
	m.AddElements(array.LinearAlongX(4, lambda/2))
	m.Steer(math.Pi/2, 0)

	k := 2 * math.Pi / lambda
	for i, p := range m.Positions() {
		// u(pi/2, 0) = +x, so the phase is -k*x
		want := math.Remainder(-k*p.X, 2*math.Pi)
		got := cmplx.Phase(m.Weights()[i])
		if math.Abs(math.Remainder(got-want, 2*math.Pi)) > 1e-9 {
			t.Errorf("element %d phase = %v, want %v", i, got, want)
		}
		if math.Abs(cmplx.Abs(m.Weights()[i])-1) > 1e-12 {
			t.Errorf("element %d amplitude changed by Steer", i)
		}
	}
}

func TestLayouts(t *testing.T) {
	lin := array.LinearAlongX(4, 0.25)
	if lin[0].X != 0 || math.Abs(lin[3].X-0.75) > 1e-12 {
		t.Errorf("linear layout = %v", lin)
	}

	plan := array.PlanarXY(3, 3, 0.5)
	if len(plan) != 9 {
		t.Fatalf("planar count = %d", len(plan))
	}
	var cx, cy float64
	for _, p := range plan {
		cx += p.X
		cy += p.Y
		if p.Z != 0 {
			t.Errorf("planar element off the z=0 plane: %v", p)
		}
	}
	if math.Abs(cx) > 1e-12 || math.Abs(cy) > 1e-12 {
		t.Errorf("planar layout not centered: (%v,%v)", cx, cy)
	}

	circ := array.Circular(8, 2)
	for _, p := range circ {
		r := math.Hypot(p.X, p.Y)
		if math.Abs(r-2) > 1e-12 {
			t.Errorf("circular element radius = %v", r)
		}
	}

	cent := array.Center(array.LinearAlongX(2, 1))
	if math.Abs(cent[0].X+0.5) > 1e-12 || math.Abs(cent[1].X-0.5) > 1e-12 {
		t.Errorf("centered linear = %v", cent)
	}
}

func TestSettingsBuild(t *testing.T) {
	var s array.Settings
	s.SetDefault()
	s.NX, s.NY = 2, 2
	m, err := s.Build()
	if err != nil {
		t.Fatal(err)
	}
	if m.Len() != 4 {
		t.Errorf("built %d elements, want 4", m.Len())
	}
	if err := m.Check(); err != nil {
		t.Errorf("Check() = %v", err)
	}

	s.Phases = []float64{0, 1}
	if _, err := s.Build(); !errors.Is(err, array.ErrMismatchedElementCount) {
		t.Errorf("short phase list err = %v, want ErrMismatchedElementCount", err)
	}
}

func TestFromMap(t *testing.T) {
	m, err := array.FromMap(map[string]interface{}{
		"wavelength": 0.25,
		"nx":         3,
		"ny":         1,
		"spacingwl":  0.5,
	})
	if err != nil {
		t.Fatal(err)
	}
	if m.Len() != 3 || m.Wavelength() != 0.25 {
		t.Errorf("FromMap built %d elements, lambda %v", m.Len(), m.Wavelength())
	}
}

func TestFromMapBadGrid(t *testing.T) {
	for _, tc := range [][2]int{{-3, 9}, {0, 9}, {9, 0}} {
		_, err := array.FromMap(map[string]interface{}{
			"wavelength": 0.5,
			"nx":         tc[0],
			"ny":         tc[1],
			"spacingwl":  0.25,
		})
		if err == nil {
			t.Errorf("FromMap accepted a %dx%d grid", tc[0], tc[1])
		}
	}
}
