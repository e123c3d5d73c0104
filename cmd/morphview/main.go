// morphview renders a blended species mesh to a WebP preview image, or a
// whole weight sweep with -sweep.
package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"mesh-morpher/internal/batch"
	"mesh-morpher/internal/config"
	"mesh-morpher/internal/mesh"
	"mesh-morpher/internal/morph"
	"mesh-morpher/internal/objfile"
	"mesh-morpher/internal/postprocess"
	"mesh-morpher/internal/raster"

	"github.com/HugoSmits86/nativewebp"
)

func main() {
	manifest := flag.String("manifest", "", "Path to morph manifest YAML (required)")
	output := flag.String("output", "", "Output path (default: morph.webp, or directory for sweeps)")
	quality := flag.Int("quality", 0, "WebP quality 1-100 (default: 90)")
	size := flag.Int("size", 0, "Render size in pixels (default: 512)")
	yaw := flag.Float64("yaw", 0, "Camera yaw in degrees")
	pitch := flag.Float64("pitch", 0, "Camera pitch in degrees")
	workers := flag.Int("workers", 0, "Worker goroutines for sweeps (default: NumCPU)")
	sweep := flag.Int("sweep", 0, "Render N interpolated frames instead of one image")
	sweepTo := flag.String("sweep-to", "", "Comma-separated target weights for -sweep")

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
	cfg.Resolve(config.Flags{
		Output:      *output,
		Quality:     *quality,
		Workers:     *workers,
		RenderSize:  *size,
		CameraYaw:   *yaw,
		CameraPitch: *pitch,
	})

	set, topo, err := loadSpecies(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	opts := morph.Options{
		NormalizeWeights: cfg.NormalizeWeights,
		RecalcNormals:    cfg.RecalculateNormals,
		Workers:          cfg.Workers,
	}
	render := raster.Settings{
		Size:        cfg.RenderSize,
		Supersample: cfg.Supersample,
		Camera:      raster.Camera{Yaw: cfg.CameraYaw, Pitch: cfg.CameraPitch},
	}

	if *sweep > 0 {
		runSweep(cfg, set, topo, opts, render, *sweep, *sweepTo)
		return
	}

	session := morph.NewSession(set, topo, opts)
	weights := make([]float64, set.Len())
	copy(weights, cfg.Weights)
	diags := session.SetWeights(weights, true)
	reportDiags(diags)

	img := raster.RenderMesh(session.Buffer(), topo, render)
	if cfg.Supersample > 1 {
		img = postprocess.Downsample(img, cfg.RenderSize)
	}

	f, err := os.Create(cfg.OutputPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer f.Close()

	if err := nativewebp.Encode(f, img, nil); err != nil {
		fmt.Fprintf(os.Stderr, "Error encoding WebP: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Wrote %s (%d vertices, %d species)\n", cfg.OutputPath, session.ReferenceCount(), set.Len())
}

func runSweep(cfg config.Config, set *mesh.Set, topo mesh.Topology, opts morph.Options, render raster.Settings, steps int, sweepTo string) {
	from := make([]float64, set.Len())
	copy(from, cfg.Weights)

	to, err := parseWeights(sweepTo, set.Len())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: -sweep-to: %v\n", err)
		os.Exit(1)
	}

	outDir := cfg.OutputPath
	if strings.HasSuffix(outDir, ".webp") {
		outDir = strings.TrimSuffix(outDir, ".webp")
	}

	results := batch.Sweep(batch.Config{
		Set:       set,
		Topo:      topo,
		Opts:      opts,
		Render:    render,
		OutputDir: outDir,
		Workers:   cfg.Workers,
	}, from, to, steps)

	failed := 0
	for _, r := range results {
		reportDiags(r.Diags)
		if !r.Success {
			failed++
			fmt.Fprintf(os.Stderr, "frame %d: %s\n", r.Frame, r.Error)
		}
	}
	if err := batch.WriteManifest(outDir, results); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing sweep manifest: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Wrote %d/%d frames to %s\n", len(results)-failed, len(results), outDir)
	if failed > 0 {
		os.Exit(1)
	}
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

func parseWeights(csv string, n int) ([]float64, error) {
	out := make([]float64, n)
	if csv == "" {
		return out, nil
	}
	parts := strings.Split(csv, ",")
	if len(parts) > n {
		return nil, fmt.Errorf("%d weights for %d species", len(parts), n)
	}
	for i, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return nil, fmt.Errorf("bad weight %q", p)
		}
		out[i] = v
	}
	return out, nil
}

func reportDiags(diags []morph.Diagnostic) {
	for _, d := range diags {
		fmt.Fprintf(os.Stderr, "warning: %s\n", d)
	}
}
