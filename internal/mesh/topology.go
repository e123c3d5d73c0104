package mesh

// Topology is the triangle connectivity shared by every species in a set.
// It is supplied and owned by the caller; the morph core only reads it for
// normals recomputation and preview rendering. Index validity beyond bounds
// checks is the caller's responsibility (topology contract).
type Topology struct {
	Tris [][3]int
}

// Valid reports whether triangle t indexes within a buffer of n vertices.
func (topo Topology) Valid(t [3]int, n int) bool {
	return t[0] >= 0 && t[0] < n &&
		t[1] >= 0 && t[1] < n &&
		t[2] >= 0 && t[2] < n
}
