package capture

import (
	"encoding/json"
	"fmt"
	"os"
)

// Cell is one grid cell visited by the cube.
type Cell struct {
	X int `json:"x"`
	Z int `json:"z"`
}

// Manifest describes a recorded move sequence.
type Manifest struct {
	FPS    int      `json:"fps"`
	Script string   `json:"script"`
	Frames []string `json:"frames"`
	Path   []Cell   `json:"path"`
}

// WriteManifest writes manifest.json describing the recording.
func WriteManifest(path string, m Manifest) error {
	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return fmt.Errorf("manifest: marshal: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("manifest: write %s: %w", path, err)
	}
	return nil
}
