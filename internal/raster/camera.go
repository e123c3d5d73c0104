package raster

import (
	"mesh-morpher/internal/mathutil"
)

// Camera is a turntable view: yaw around Y, then pitch around X, both in
// degrees. Orthographic projection — the preview frames the whole mesh,
// perspective adds nothing at this scale.
type Camera struct {
	Yaw   float64
	Pitch float64
}

// Matrix builds the 3×3 view rotation.
func (c Camera) Matrix() mathutil.Mat3 {
	return mathutil.Mat3Mul(
		mathutil.RotX(mathutil.Deg2Rad(c.Pitch)),
		mathutil.RotY(mathutil.Deg2Rad(c.Yaw)),
	)
}

// Project transforms verts by the view matrix and maps them into screen
// space, centered and scaled so the mesh fills the frame minus margin.
// Returns flat px/py/pz slices for the rasterizer hot path; pz grows
// toward the camera.
func Project(verts []mathutil.Vec3, view mathutil.Mat3, size, margin int) (px, py, pz []float64) {
	px = make([]float64, len(verts))
	py = make([]float64, len(verts))
	pz = make([]float64, len(verts))

	box := mathutil.EmptyBox3()
	for i, v := range verts {
		tv := view.MulVec3(v)
		px[i], py[i], pz[i] = tv[0], tv[1], tv[2]
		box = box.ExpandByPoint(tv)
	}
	if box.IsEmpty() {
		return px, py, pz
	}

	center := box.Center()
	scale := float64(size-2*margin) / box.MaxSpan()
	half := float64(size) / 2

	for i := range px {
		px[i] = (px[i]-center[0])*scale + half
		// Screen Y grows downward.
		py[i] = half - (py[i]-center[1])*scale
		pz[i] = (pz[i] - center[2]) * scale
	}
	return px, py, pz
}
