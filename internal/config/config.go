// Package config loads the morph manifest: the ordered species list plus
// blend and preview settings for the cmd tools.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"gopkg.in/yaml.v3"
)

// SpeciesRef names one species and the OBJ file carrying its vertex buffer.
// Manifest order is blend order; Mesh may be empty for a placeholder slot.
type SpeciesRef struct {
	Label string `yaml:"label"`
	Mesh  string `yaml:"mesh"`
}

// Config holds all manifest settings.
type Config struct {
	// Species, in blend order.
	Species []SpeciesRef `yaml:"species"`

	// Initial per-species weights; shorter lists are zero-padded.
	Weights []float64 `yaml:"weights"`

	// Blend behavior
	NormalizeWeights   bool `yaml:"normalize_weights"`
	RecalculateNormals bool `yaml:"recalculate_normals"`
	Workers            int  `yaml:"workers"`

	// Preview settings
	RenderSize  int     `yaml:"render_size"`
	Supersample int     `yaml:"supersample"`
	WebPQuality int     `yaml:"webp_quality"`
	CameraYaw   float64 `yaml:"camera_yaw"`   // degrees
	CameraPitch float64 `yaml:"camera_pitch"` // degrees

	OutputPath string `yaml:"output"`
}

// Load reads a YAML manifest and returns Config. Fields not set in the
// file keep their zero values; Resolve fills in defaults.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
	}

	// Relative mesh paths resolve against the manifest's directory.
	base := filepath.Dir(path)
	for i, sp := range cfg.Species {
		if sp.Mesh != "" && !filepath.IsAbs(sp.Mesh) {
			cfg.Species[i].Mesh = filepath.Join(base, sp.Mesh)
		}
	}

	return cfg, nil
}

// Flags holds CLI flag values that override manifest settings.
type Flags struct {
	Output      string
	Quality     int
	Workers     int
	RenderSize  int
	CameraYaw   float64
	CameraPitch float64
}

// Resolve fills in any empty fields with defaults. CLI flags take
// priority when non-zero/non-empty.
func (c *Config) Resolve(flags Flags) {
	if flags.Output != "" {
		c.OutputPath = flags.Output
	}
	if flags.Quality > 0 {
		c.WebPQuality = flags.Quality
	}
	if flags.Workers > 0 {
		c.Workers = flags.Workers
	}
	if flags.RenderSize > 0 {
		c.RenderSize = flags.RenderSize
	}
	if flags.CameraYaw != 0 {
		c.CameraYaw = flags.CameraYaw
	}
	if flags.CameraPitch != 0 {
		c.CameraPitch = flags.CameraPitch
	}

	if c.RenderSize <= 0 {
		c.RenderSize = 512
	}
	if c.Supersample <= 0 {
		c.Supersample = 2
	}
	if c.WebPQuality <= 0 {
		c.WebPQuality = 90
	}
	if c.Workers <= 0 {
		c.Workers = runtime.NumCPU()
	}
	if c.OutputPath == "" {
		c.OutputPath = "morph.webp"
	}
}
