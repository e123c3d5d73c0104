// inspectobj prints vertex/triangle counts and bounds of OBJ files, for
// checking that species meshes honor the topology contract before feeding
// them to a morph.
package main

import (
	"flag"
	"fmt"
	"os"

	"mesh-morpher/internal/morph"
	"mesh-morpher/internal/objfile"
)

func main() {
	flag.Parse()
	if flag.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "usage: inspectobj <file.obj> [more.obj ...]")
		os.Exit(1)
	}

	refCount := -1
	exit := 0
	for _, path := range flag.Args() {
		verts, tris, err := objfile.Load(path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%s: %v\n", path, err)
			exit = 1
			continue
		}

		b := morph.RecalcBounds(verts)
		fmt.Printf("%s: %d vertices, %d triangles", path, len(verts), len(tris))
		if !b.IsEmpty() {
			s := b.Size()
			fmt.Printf(", size %.3f x %.3f x %.3f", s[0], s[1], s[2])
		}

		// Flag vertex-count drift across the files on one command line.
		if refCount < 0 {
			refCount = len(verts)
		} else if len(verts) != refCount {
			fmt.Printf("  [MISMATCH: reference is %d]", refCount)
			exit = 1
		}
		fmt.Println()
	}
	os.Exit(exit)
}
