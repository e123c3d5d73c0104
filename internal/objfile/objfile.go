// Package objfile reads and writes the minimal Wavefront OBJ subset the
// cmd tools need: vertex positions and triangulated faces. The morph core
// itself never touches files; species buffers arrive through this package
// only on the host side.
package objfile

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"mesh-morpher/internal/mathutil"
)

// Load reads an OBJ file and returns its vertices and triangles. Faces
// with more than three corners are triangulated as a fan. Normals, UVs,
// materials and groups are ignored.
func Load(path string) ([]mathutil.Vec3, [][3]int, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("objfile: open %s: %w", path, err)
	}
	defer f.Close()

	verts, tris, err := Parse(f)
	if err != nil {
		return nil, nil, fmt.Errorf("objfile: parse %s: %w", path, err)
	}
	return verts, tris, nil
}

// Parse reads OBJ data from r. See Load for the supported subset.
func Parse(r io.Reader) ([]mathutil.Vec3, [][3]int, error) {
	var verts []mathutil.Vec3
	var tris [][3]int

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 64*1024), 1024*1024)
	line := 0
	for sc.Scan() {
		line++
		fields := strings.Fields(sc.Text())
		if len(fields) == 0 {
			continue
		}
		switch fields[0] {
		case "v":
			if len(fields) < 4 {
				return nil, nil, fmt.Errorf("line %d: vertex needs 3 coordinates", line)
			}
			var v mathutil.Vec3
			for k := 0; k < 3; k++ {
				f, err := strconv.ParseFloat(fields[k+1], 64)
				if err != nil {
					return nil, nil, fmt.Errorf("line %d: bad coordinate %q", line, fields[k+1])
				}
				v[k] = f
			}
			verts = append(verts, v)
		case "f":
			if len(fields) < 4 {
				return nil, nil, fmt.Errorf("line %d: face needs at least 3 indices", line)
			}
			idx := make([]int, 0, len(fields)-1)
			for _, tok := range fields[1:] {
				i, err := faceIndex(tok, len(verts))
				if err != nil {
					return nil, nil, fmt.Errorf("line %d: %w", line, err)
				}
				idx = append(idx, i)
			}
			// Fan triangulation for quads and n-gons.
			for k := 1; k+1 < len(idx); k++ {
				tris = append(tris, [3]int{idx[0], idx[k], idx[k+1]})
			}
		}
	}
	if err := sc.Err(); err != nil {
		return nil, nil, err
	}
	return verts, tris, nil
}

// faceIndex resolves one face token ("7", "7/1", "7//3", "-1") to a
// zero-based vertex index.
func faceIndex(tok string, nVerts int) (int, error) {
	if slash := strings.IndexByte(tok, '/'); slash >= 0 {
		tok = tok[:slash]
	}
	i, err := strconv.Atoi(tok)
	if err != nil {
		return 0, fmt.Errorf("bad face index %q", tok)
	}
	if i < 0 {
		i += nVerts // OBJ negative indices count back from the end
	} else {
		i-- // OBJ indices are 1-based
	}
	if i < 0 || i >= nVerts {
		return 0, fmt.Errorf("face index %q out of range", tok)
	}
	return i, nil
}

// Write emits verts, optional per-vertex normals, and tris as OBJ. When
// normals is non-empty the faces reference them (v//vn form).
func Write(w io.Writer, verts, normals []mathutil.Vec3, tris [][3]int) error {
	bw := bufio.NewWriter(w)
	for _, v := range verts {
		fmt.Fprintf(bw, "v %g %g %g\n", v[0], v[1], v[2])
	}
	withNormals := len(normals) == len(verts) && len(verts) > 0
	if withNormals {
		for _, n := range normals {
			fmt.Fprintf(bw, "vn %g %g %g\n", n[0], n[1], n[2])
		}
	}
	for _, t := range tris {
		if withNormals {
			fmt.Fprintf(bw, "f %d//%d %d//%d %d//%d\n",
				t[0]+1, t[0]+1, t[1]+1, t[1]+1, t[2]+1, t[2]+1)
		} else {
			fmt.Fprintf(bw, "f %d %d %d\n", t[0]+1, t[1]+1, t[2]+1)
		}
	}
	return bw.Flush()
}
