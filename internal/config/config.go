package config

import (
	"encoding/json"
	"os"
	"path/filepath"
)

// ConfigPath is the path to the planner config file, relative to the process working directory.
const ConfigPath = "config/planner.json"

// Prefs holds planner preferences (window size, capture device, output
// directories). Persisted across runs. Saved layouts are separate and
// handled by the layout package.
type Prefs struct {
	WindowWidth  int    `json:"window_width"`
	WindowHeight int    `json:"window_height"`
	TargetFPS    int    `json:"target_fps"`
	CameraDevice int    `json:"camera_device"`
	LayoutsDir   string `json:"layouts_dir"`
	MarkersDir   string `json:"markers_dir"`
	CatalogPath  string `json:"catalog_path,omitempty"`
}

// Default returns default planner preferences.
func Default() Prefs {
	return Prefs{
		WindowWidth:  1600,
		WindowHeight: 900,
		TargetFPS:    60,
		CameraDevice: 0,
		LayoutsDir:   "layouts",
		MarkersDir:   "markers",
		CatalogPath:  "assets/furniture.yaml",
	}
}

// Load reads preferences from config/planner.json. If the file is missing
// or invalid, returns Default() and does not create a file.
func Load() (Prefs, error) {
	data, err := os.ReadFile(ConfigPath)
	if err != nil {
		return Default(), nil
	}
	var p Prefs
	if err := json.Unmarshal(data, &p); err != nil {
		return Default(), nil
	}
	return p, nil
}

// Save writes preferences to config/planner.json, creating the config
// directory if needed.
func Save(p Prefs) error {
	dir := filepath.Dir(ConfigPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(p, "", "\t")
	if err != nil {
		return err
	}
	return os.WriteFile(ConfigPath, data, 0644)
}
