package objfile

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mesh-morpher/internal/mathutil"
)

const sampleOBJ = `
# comment
v 0 0 0
v 1 0 0
v 1 1 0
v 0 1 0
f 1 2 3 4
f 1/5/2 2//3 3
f -4 -3 -2
`

func TestParse(t *testing.T) {
	verts, tris, err := Parse(strings.NewReader(sampleOBJ))
	require.NoError(t, err)

	assert.Len(t, verts, 4)
	assert.Equal(t, mathutil.Vec3{1, 1, 0}, verts[2])

	// Quad fans into two triangles; slash forms and negative indices
	// resolve to the same corners.
	require.Len(t, tris, 4)
	assert.Equal(t, [3]int{0, 1, 2}, tris[0])
	assert.Equal(t, [3]int{0, 2, 3}, tris[1])
	assert.Equal(t, [3]int{0, 1, 2}, tris[2])
	assert.Equal(t, [3]int{0, 1, 2}, tris[3])
}

func TestParseBadFaceIndex(t *testing.T) {
	_, _, err := Parse(strings.NewReader("v 0 0 0\nf 1 2 3\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "out of range")
}

func TestWriteRoundTrip(t *testing.T) {
	verts := []mathutil.Vec3{{0, 0, 0}, {1, 0, 0}, {0, 1, 0}}
	normals := []mathutil.Vec3{{0, 0, 1}, {0, 0, 1}, {0, 0, 1}}
	tris := [][3]int{{0, 1, 2}}

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, verts, normals, tris))
	assert.Contains(t, buf.String(), "vn 0 0 1")
	assert.Contains(t, buf.String(), "f 1//1 2//2 3//3")

	gotVerts, gotTris, err := Parse(&buf)
	require.NoError(t, err)
	assert.Equal(t, verts, gotVerts)
	assert.Equal(t, tris, gotTris)
}
