package render

import (
	"math"
	"testing"
)

func TestCameraRotationOrthonormal(t *testing.T) {
	cam := NewCamera()
	cam.Rotate(33, -72, 15)
	r := cam.rot
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			var dot float64
			for k := 0; k < 3; k++ {
				dot += r[k][i] * r[k][j]
			}
			want := 0.0
			if i == j {
				want = 1.0
			}
			if math.Abs(dot-want) > 1e-12 {
				t.Fatalf("column dot (%d,%d) = %v, want %v", i, j, dot, want)
			}
		}
	}
}

func TestColormapRange(t *testing.T) {
	cm := BeamColormap()
	for _, v := range []float64{-1, 0, 0.3, 0.999, 1, 2, math.NaN()} {
		c := cm.At(v)
		if c.A != 255 {
			t.Errorf("At(%v) alpha = %d", v, c.A)
		}
	}
	if cm.At(-5) != cm.At(0) || cm.At(5) != cm.At(1) {
		t.Error("out-of-range values not clamped to the end stops")
	}
}

func TestPhaseColormapCyclic(t *testing.T) {
	cm := PhaseColormap()
	if cm.At(0) != cm.At(1) {
		t.Errorf("phase map ends differ: %v vs %v", cm.At(0), cm.At(1))
	}
}

func TestMeshEdgesUnique(t *testing.T) {
	faces := [][3]int{{0, 1, 2}, {0, 2, 3}}
	edges := meshEdges(faces)
	if len(edges) != 5 {
		t.Errorf("got %d edges, want 5 (shared edge deduplicated)", len(edges))
	}
	seen := map[[2]int]bool{}
	for _, e := range edges {
		if e[0] >= e[1] {
			t.Errorf("edge %v not ordered", e)
		}
		if seen[e] {
			t.Errorf("duplicate edge %v", e)
		}
		seen[e] = true
	}
}
