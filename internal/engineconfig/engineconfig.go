package engineconfig

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ConfigPath is the path to the preferences file, relative to the process working directory.
const ConfigPath = "config/background.yaml"

// Prefs holds window and debug-overlay preferences. The pattern itself is fixed and has no settings here.
type Prefs struct {
	Title        string `yaml:"title"`
	Fullscreen   bool   `yaml:"fullscreen"`
	Width        int    `yaml:"width"`  // windowed size; ignored when fullscreen
	Height       int    `yaml:"height"` // windowed size; ignored when fullscreen
	VSync        bool   `yaml:"vsync"`
	ShowFPS      bool   `yaml:"show_fps"`
	ShowMemAlloc bool   `yaml:"show_memalloc"`
	ShowUniforms bool   `yaml:"show_uniforms"`
}

// Default returns default preferences (fullscreen, vsync on, overlays off).
func Default() Prefs {
	return Prefs{
		Title:      "background",
		Fullscreen: true,
		Width:      1280,
		Height:     720,
		VSync:      true,
	}
}

// Load reads preferences from path. A missing file yields Default() and no error.
// An unreadable or invalid file yields Default() and the error, so the caller can log it.
// Keys absent from the file keep their default values.
func Load(path string) (Prefs, error) {
	p := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return p, nil
		}
		return p, err
	}
	if err := yaml.Unmarshal(data, &p); err != nil {
		return Default(), fmt.Errorf("engineconfig: %s: %w", path, err)
	}
	if p.Width <= 0 || p.Height <= 0 {
		d := Default()
		p.Width, p.Height = d.Width, d.Height
	}
	return p, nil
}

// Save writes preferences to path, creating the directory if needed.
func Save(path string, p Prefs) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	data, err := yaml.Marshal(p)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
