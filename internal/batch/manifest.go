package batch

import (
	"encoding/json"
	"os"
)

// Manifest describes one run's output directory.
type Manifest struct {
	RunID  string          `json:"run_id"`
	Format Format          `json:"format"`
	Width  int             `json:"width"`
	Height int             `json:"height"`
	Frames []ManifestEntry `json:"frames"`
}

// ManifestEntry represents one written frame.
type ManifestEntry struct {
	Index int    `json:"index"`
	File  string `json:"file"`
}

// NewManifest lists the successful results in frame order.
func NewManifest(runID string, cfg Config, results []Result) Manifest {
	m := Manifest{
		RunID:  runID,
		Format: cfg.Format,
		Width:  cfg.Width,
		Height: cfg.Height,
		Frames: make([]ManifestEntry, 0, len(results)),
	}
	for _, r := range results {
		if r.Success {
			m.Frames = append(m.Frames, ManifestEntry{Index: r.Index, File: r.File})
		}
	}
	return m
}

// WriteManifest writes m as indented JSON.
func WriteManifest(path string, m Manifest) error {
	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
