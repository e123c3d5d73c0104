// blendobj blends the species meshes from a manifest and writes the
// resulting vertex buffer as an OBJ file.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"mesh-morpher/internal/config"
	"mesh-morpher/internal/mesh"
	"mesh-morpher/internal/morph"
	"mesh-morpher/internal/objfile"
)

func main() {
	manifest := flag.String("manifest", "", "Path to morph manifest YAML (required)")
	output := flag.String("output", "-", "Output OBJ path, - for stdout")
	weightsCSV := flag.String("weights", "", "Comma-separated weights overriding the manifest")

	flag.Parse()

	if *manifest == "" {
		fmt.Fprintln(os.Stderr, "Error: -manifest is required")
		os.Exit(1)
	}

	cfg, err := config.Load(*manifest)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading manifest: %v\n", err)
		os.Exit(1)
	}
	cfg.Resolve(config.Flags{})

	set, topo, err := loadSpecies(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	weights := make([]float64, set.Len())
	copy(weights, cfg.Weights)
	if *weightsCSV != "" {
		parts := strings.Split(*weightsCSV, ",")
		if len(parts) > set.Len() {
			fmt.Fprintf(os.Stderr, "Error: %d weights for %d species\n", len(parts), set.Len())
			os.Exit(1)
		}
		for i, p := range parts {
			v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error: bad weight %q\n", p)
				os.Exit(1)
			}
			weights[i] = v
		}
	}

	session := morph.NewSession(set, topo, morph.Options{
		NormalizeWeights: cfg.NormalizeWeights,
		RecalcNormals:    cfg.RecalculateNormals,
		Workers:          cfg.Workers,
	})
	for _, d := range session.SetWeights(weights, true) {
		fmt.Fprintf(os.Stderr, "warning: %s\n", d)
	}

	var w io.Writer = os.Stdout
	if *output != "-" {
		f, err := os.Create(*output)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		w = f
	}

	if err := objfile.Write(w, session.Buffer(), session.Normals(), topo.Tris); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing OBJ: %v\n", err)
		os.Exit(1)
	}

	b := session.Bounds()
	fmt.Fprintf(os.Stderr, "blended %d species, %d vertices, bounds min(%.3f %.3f %.3f) max(%.3f %.3f %.3f)\n",
		set.Len(), session.ReferenceCount(),
		b.Min[0], b.Min[1], b.Min[2], b.Max[0], b.Max[1], b.Max[2])
}

// loadSpecies reads every referenced OBJ into an ordered species set. The
// first species with geometry supplies the shared triangle topology.
func loadSpecies(cfg config.Config) (*mesh.Set, mesh.Topology, error) {
	if len(cfg.Species) == 0 {
		return nil, mesh.Topology{}, fmt.Errorf("manifest lists no species")
	}

	set := mesh.NewSet()
	var topo mesh.Topology
	for _, ref := range cfg.Species {
		if ref.Mesh == "" {
			set.Append(ref.Label, nil)
			continue
		}
		verts, tris, err := objfile.Load(ref.Mesh)
		if err != nil {
			return nil, mesh.Topology{}, err
		}
		if topo.Tris == nil {
			topo.Tris = tris
		}
		set.Append(ref.Label, verts)
	}
	return set, topo, nil
}
