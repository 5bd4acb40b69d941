package batch

import (
	"encoding/json"
	"os"
	"path/filepath"
)

// ManifestEntry represents one rendered scene in the output manifest.
type ManifestEntry struct {
	Scene  string `json:"scene"`
	Image  string `json:"image,omitempty"`
	Width  int    `json:"width,omitempty"`
	Height int    `json:"height,omitempty"`
	Error  string `json:"error,omitempty"`
}

// WriteManifest writes the results as indented JSON. Image paths are made
// relative to the manifest's directory.
func WriteManifest(path string, results []Result) error {
	dir := filepath.Dir(path)
	entries := make([]ManifestEntry, len(results))
	for i, r := range results {
		e := ManifestEntry{Scene: r.Scene, Error: r.Error}
		if r.Success {
			e.Image = r.Path
			if rel, err := filepath.Rel(dir, r.Path); err == nil {
				e.Image = filepath.ToSlash(rel)
			}
			e.Width, e.Height = r.Width, r.Height
		}
		entries[i] = e
	}

	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
