// Package batch renders weight sweeps: a sequence of morph frames
// interpolating between two weight vectors, rasterized in parallel and
// written as WebP files.
package batch

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"
	"time"

	"mesh-morpher/internal/mesh"
	"mesh-morpher/internal/morph"
	"mesh-morpher/internal/postprocess"
	"mesh-morpher/internal/raster"

	"github.com/HugoSmits86/nativewebp"
)

// Config holds all shared resources for a sweep run.
type Config struct {
	Set       *mesh.Set
	Topo      mesh.Topology
	Opts      morph.Options
	Render    raster.Settings
	OutputDir string
	Workers   int
}

// Result holds the outcome of rendering one frame.
type Result struct {
	Frame   int
	Path    string
	Success bool
	Error   string
	Diags   []morph.Diagnostic
}

// Sweep renders steps frames interpolating the weight vector linearly from
// one end to the other. Each frame gets its own session, so frames are as
// deterministic as single blends and safe to render concurrently.
func Sweep(cfg Config, from, to []float64, steps int) []Result {
	if steps < 2 {
		steps = 2
	}
	results := make([]Result, steps)
	var done atomic.Int64

	start := time.Now()

	// Progress reporter
	stop := make(chan struct{})
	go func() {
		ticker := time.NewTicker(2 * time.Second)
		defer ticker.Stop()
		for {
			select {
			case <-stop:
				return
			case <-ticker.C:
				d := done.Load()
				if d > 0 {
					rate := float64(d) / time.Since(start).Seconds()
					fmt.Printf("  [%d/%d] %.1f frames/sec\n", d, steps, rate)
				}
			}
		}
	}()

	workers := cfg.Workers
	if workers <= 0 {
		workers = 1
	}

	frameChan := make(chan int, workers*2)
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range frameChan {
				results[idx] = renderFrame(cfg, from, to, idx, steps)
				done.Add(1)
			}
		}()
	}

	for i := 0; i < steps; i++ {
		frameChan <- i
	}
	close(frameChan)

	wg.Wait()
	close(stop)

	return results
}

func renderFrame(cfg Config, from, to []float64, idx, steps int) Result {
	t := float64(idx) / float64(steps-1)
	weights := make([]float64, len(from))
	for i := range weights {
		weights[i] = from[i]*(1-t) + to[i]*t
	}

	session := morph.NewSession(cfg.Set, cfg.Topo, cfg.Opts)
	diags := session.SetWeights(weights, true)

	img := raster.RenderMesh(session.Buffer(), cfg.Topo, cfg.Render)
	if cfg.Render.Supersample > 1 {
		img = postprocess.Downsample(img, cfg.Render.Size)
	}

	outPath := filepath.Join(cfg.OutputDir, fmt.Sprintf("frame_%03d.webp", idx))
	if err := os.MkdirAll(filepath.Dir(outPath), 0755); err != nil {
		return Result{Frame: idx, Path: outPath, Error: err.Error(), Diags: diags}
	}

	f, err := os.Create(outPath)
	if err != nil {
		return Result{Frame: idx, Path: outPath, Error: err.Error(), Diags: diags}
	}
	defer f.Close()

	if err := nativewebp.Encode(f, img, nil); err != nil {
		return Result{Frame: idx, Path: outPath, Error: fmt.Sprintf("WebP encode: %v", err), Diags: diags}
	}

	return Result{Frame: idx, Path: outPath, Success: true, Diags: diags}
}
