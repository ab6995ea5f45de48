package sphere

// Mesh is a UV sphere built on top of a Grid: one vertex per grid
// direction plus triangle faces stitching neighbouring rows together,
// wrapping around in phi. Vertex order matches Grid.Directions, so a field
// evaluated on Grid maps one-to-one onto the mesh vertices.
type Mesh struct {
	Grid     *Grid
	Vertices [][3]float64
	Faces    [][3]int
}

// NewMesh builds a unit-radius UV sphere mesh with nTheta rings and nPhi
// segments. Resolution rules are the same as NewGrid.
func NewMesh(nTheta, nPhi int) (*Mesh, error) {
	grid, err := NewGrid(nTheta, nPhi)
	if err != nil {
		return nil, err
	}
	m := &Mesh{
		Grid:     grid,
		Vertices: make([][3]float64, grid.Len()),
		Faces:    make([][3]int, 0, 2*(nTheta-1)*nPhi),
	}
	for i, d := range grid.Directions {
		x, y, z := d.Unit()
		m.Vertices[i] = [3]float64{x, y, z}
	}
	for i := 0; i < nTheta-1; i++ {
		for j := 0; j < nPhi; j++ {
			jn := (j + 1) % nPhi
			a := i*nPhi + j
			b := (i+1)*nPhi + j
			c := (i+1)*nPhi + jn
			d := i*nPhi + jn
			m.Faces = append(m.Faces, [3]int{a, b, c}, [3]int{a, c, d})
		}
	}
	return m, nil
}
