package batch

import (
	"encoding/json"
	"os"
	"path/filepath"
)

// ManifestEntry represents one frame in the sweep index.
type ManifestEntry struct {
	Frame int     `json:"frame"`
	T     float64 `json:"t"`
	Image string  `json:"image"`
	Error string  `json:"error,omitempty"`
}

// WriteManifest writes sweep.json next to the rendered frames so a host
// viewer can play them back without globbing the directory.
func WriteManifest(dir string, results []Result) error {
	entries := make([]ManifestEntry, len(results))
	steps := len(results)
	for i, r := range results {
		t := 0.0
		if steps > 1 {
			t = float64(i) / float64(steps-1)
		}
		entries[i] = ManifestEntry{
			Frame: r.Frame,
			T:     t,
			Image: filepath.Base(r.Path),
			Error: r.Error,
		}
	}

	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(dir, "sweep.json"), data, 0644)
}
