// Package raster renders the blended working buffer to an image with a
// flat-shaded software rasterizer, for preview snapshots of a morph.
package raster

import (
	"image"

	"mesh-morpher/internal/mathutil"
	"mesh-morpher/internal/mesh"
)

// Settings controls one preview render.
type Settings struct {
	Size        int // output edge length in pixels (square)
	Supersample int // internal oversampling factor, >= 1
	Camera      Camera
}

// RenderMesh rasterizes verts with the shared topology into an NRGBA image
// of edge length Size*Supersample. The caller downsamples. Triangles with
// out-of-range indices are skipped, mirroring the blend engine's tolerance
// of malformed input.
func RenderMesh(verts []mathutil.Vec3, topo mesh.Topology, s Settings) *image.NRGBA {
	super := s.Supersample
	if super < 1 {
		super = 1
	}
	renderSize := s.Size * super

	if len(verts) == 0 || len(topo.Tris) == 0 {
		return image.NewNRGBA(image.Rect(0, 0, renderSize, renderSize))
	}

	margin := 16 * super
	px, py, pz := Project(verts, s.Camera.Matrix(), renderSize, margin)

	fb := NewFrameBuffer(renderSize, renderSize)
	lc := DefaultLightConfig()

	// Neutral bone-like base color, linear space.
	const baseR, baseG, baseB = 0.55, 0.52, 0.48

	n := len(verts)
	for _, tri := range topo.Tris {
		if !topo.Valid(tri, n) {
			continue
		}
		FillTriangle(fb, px, py, pz, tri, baseR, baseG, baseB, &lc)
	}

	return fb.Image()
}
