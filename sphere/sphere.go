// Package sphere holds the spherical direction conventions shared by the
// array model, the beampattern engine and the renderer.
//
// A Direction is expressed in the polar/azimuthal convention used by the
// array-factor formula: theta is measured from the +z broadside axis in
// [0, pi], phi rotates around z in [0, 2*pi). The alternative
// azimuth/elevation convention (azimuth swung in the x-z plane from +z
// towards +x, elevation raised from that plane towards +y) is what steering
// scripts usually speak; AzElToThetaPhi and ThetaPhiToAzEl convert between
// the two.
package sphere

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidResolution is returned when a grid or mesh is requested with
// fewer than two samples on either angular axis.
var ErrInvalidResolution = errors.New("sphere: grid resolution must be at least 2 per axis")

// Direction is a point on the unit sphere.
type Direction struct {
	Theta float64 // polar angle from +z, radians
	Phi   float64 // azimuthal angle around z, radians
}

// Unit returns the cartesian unit vector of d.
func (d Direction) Unit() (x, y, z float64) {
	st := math.Sin(d.Theta)
	x = st * math.Cos(d.Phi)
	y = st * math.Sin(d.Phi)
	z = math.Cos(d.Theta)
	return x, y, z
}

// AzElToThetaPhi converts an (azimuth, elevation) pair in radians to the
// (theta, phi) convention above. At the poles (theta 0 or pi) the azimuth is
// degenerate and phi is whatever atan2 settles on; that is expected, not an
// error.
func AzElToThetaPhi(az, el float64) (theta, phi float64) {
	theta = math.Acos(math.Cos(el) * math.Cos(az))
	phi = math.Atan2(math.Tan(el), math.Sin(az))
	return theta, phi
}

// ThetaPhiToAzEl is the inverse of AzElToThetaPhi away from the poles.
func ThetaPhiToAzEl(theta, phi float64) (az, el float64) {
	x, y, z := Direction{Theta: theta, Phi: phi}.Unit()
	az = math.Atan2(x, z)
	el = math.Asin(y)
	return az, el
}

// Grid is an ordered full-sphere sampling, row-major with NTheta rows of
// NPhi directions each. Theta spans [0, pi] inclusive, phi spans [0, 2*pi)
// with the wrap-around column omitted. Spacing is uniform in angle, so the
// poles are oversampled.
type Grid struct {
	NTheta, NPhi int
	Directions   []Direction
}

// NewGrid samples the sphere with nTheta-by-nPhi directions. Both
// resolutions must be at least 2.
func NewGrid(nTheta, nPhi int) (*Grid, error) {
	if nTheta < 2 || nPhi < 2 {
		return nil, fmt.Errorf("%w: got %dx%d", ErrInvalidResolution, nTheta, nPhi)
	}
	g := &Grid{
		NTheta:     nTheta,
		NPhi:       nPhi,
		Directions: make([]Direction, nTheta*nPhi),
	}
	dTheta := math.Pi / float64(nTheta-1)
	dPhi := 2 * math.Pi / float64(nPhi)
	for i := 0; i < nTheta; i++ {
		theta := float64(i) * dTheta
		for j := 0; j < nPhi; j++ {
			g.Directions[i*nPhi+j] = Direction{Theta: theta, Phi: float64(j) * dPhi}
		}
	}
	return g, nil
}

// Len returns the number of directions in the grid.
func (g *Grid) Len() int { return len(g.Directions) }

// At returns the direction at row i, column j.
func (g *Grid) At(i, j int) Direction { return g.Directions[i*g.NPhi+j] }
