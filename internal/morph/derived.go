package morph

import (
	"mesh-morpher/internal/mathutil"
	"mesh-morpher/internal/mesh"
)

// RecalcNormals recomputes area-weighted per-vertex normals from the
// blended positions and the shared triangle topology, writing into dst
// (len(dst) == len(verts)). Degenerate and out-of-bounds triangles are
// skipped. Purely derived data — never feeds back into blending.
func RecalcNormals(dst, verts []mathutil.Vec3, topo mesh.Topology) {
	for i := range dst {
		dst[i] = mathutil.Vec3{}
	}
	n := len(verts)
	for _, t := range topo.Tris {
		if !topo.Valid(t, n) {
			continue
		}
		a, b, c := verts[t[0]], verts[t[1]], verts[t[2]]
		// Cross product length is 2× triangle area, so accumulating the
		// raw cross weights each face by its area.
		face := b.Sub(a).Cross(c.Sub(a))
		dst[t[0]] = dst[t[0]].Add(face)
		dst[t[1]] = dst[t[1]].Add(face)
		dst[t[2]] = dst[t[2]].Add(face)
	}
	for i := range dst {
		dst[i] = dst[i].Normalize()
	}
}

// RecalcBounds returns the minimal axis-aligned bounding box containing
// all vertices. Empty input yields an empty box.
func RecalcBounds(verts []mathutil.Vec3) mathutil.Box3 {
	box := mathutil.EmptyBox3()
	for _, v := range verts {
		box = box.ExpandByPoint(v)
	}
	return box
}
