package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleManifest = `
species:
  - label: human
    mesh: meshes/human.obj
  - label: macaque
    mesh: /abs/macaque.obj
  - label: pending
weights: [0.5, 0.5]
normalize_weights: true
recalculate_normals: true
camera_yaw: 30
`

func TestLoadResolvesRelativeMeshPaths(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "morph.yaml")
	require.NoError(t, os.WriteFile(path, []byte(sampleManifest), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)

	require.Len(t, cfg.Species, 3)
	assert.Equal(t, filepath.Join(dir, "meshes", "human.obj"), cfg.Species[0].Mesh)
	assert.Equal(t, "/abs/macaque.obj", cfg.Species[1].Mesh, "absolute paths kept as-is")
	assert.Equal(t, "", cfg.Species[2].Mesh, "placeholder slot")
	assert.Equal(t, []float64{0.5, 0.5}, cfg.Weights)
	assert.True(t, cfg.NormalizeWeights)
	assert.True(t, cfg.RecalculateNormals)
}

func TestLoadBadYAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "broken.yaml")
	require.NoError(t, os.WriteFile(path, []byte("species: [label: {"), 0644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestResolveDefaultsAndFlagPriority(t *testing.T) {
	var cfg Config
	cfg.WebPQuality = 70
	cfg.Resolve(Flags{Quality: 95, CameraYaw: 15})

	assert.Equal(t, 95, cfg.WebPQuality, "flag overrides manifest")
	assert.Equal(t, 512, cfg.RenderSize)
	assert.Equal(t, 2, cfg.Supersample)
	assert.Equal(t, 15.0, cfg.CameraYaw)
	assert.Greater(t, cfg.Workers, 0)
	assert.Equal(t, "morph.webp", cfg.OutputPath)
}
