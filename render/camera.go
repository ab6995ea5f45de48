package render

import "math"

type mat3 [3][3]float64

func identity() mat3 {
	return mat3{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}
}

func (m mat3) mul(o mat3) mat3 {
	var r mat3
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			for k := 0; k < 3; k++ {
				r[i][j] += m[i][k] * o[k][j]
			}
		}
	}
	return r
}

func (m mat3) apply(v [3]float64) [3]float64 {
	var r [3]float64
	for i := 0; i < 3; i++ {
		r[i] = m[i][0]*v[0] + m[i][1]*v[1] + m[i][2]*v[2]
	}
	return r
}

func rotX(deg float64) mat3 {
	s, c := math.Sincos(deg * math.Pi / 180)
	return mat3{{1, 0, 0}, {0, c, -s}, {0, s, c}}
}

func rotY(deg float64) mat3 {
	s, c := math.Sincos(deg * math.Pi / 180)
	return mat3{{c, 0, s}, {0, 1, 0}, {-s, 0, c}}
}

func rotZ(deg float64) mat3 {
	s, c := math.Sincos(deg * math.Pi / 180)
	return mat3{{c, -s, 0}, {s, c, 0}, {0, 0, 1}}
}

// Camera is an orthographic camera shared by the two views: a rotation
// around the scene origin plus a zoom factor.
type Camera struct {
	rot  mat3
	zoom float64
}

// NewCamera returns a camera with the default oblique viewing angle.
func NewCamera() Camera {
	return Camera{rot: rotX(-60).mul(rotZ(-45)), zoom: 1}
}

// Rotate applies a camera-relative rotation, angles in degrees.
func (c *Camera) Rotate(pitch, yaw, roll float64) {
	delta := rotX(pitch).mul(rotY(yaw)).mul(rotZ(roll))
	c.rot = delta.mul(c.rot)
}

// Zoom scales the view by factor (>1 zooms in).
func (c *Camera) Zoom(factor float64) {
	c.zoom *= factor
	if c.zoom < 0.05 {
		c.zoom = 0.05
	}
}

// Apply rotates a world-space point into camera space.
func (c *Camera) Apply(v [3]float64) [3]float64 {
	return c.rot.apply(v)
}
