package theme

import (
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// LoadPalette reads a palette definition from YAML. Missing fields keep
// the default palette's colours so a file may override only some of them.
func LoadPalette(r io.Reader) (Palette, error) {
	base := palettes["default"]
	var loaded Palette
	dec := yaml.NewDecoder(r)
	if err := dec.Decode(&loaded); err != nil {
		return Palette{}, fmt.Errorf("decode palette: %w", err)
	}
	merged := base
	if strings.TrimSpace(loaded.Name) != "" {
		merged.Name = loaded.Name
	}
	if strings.TrimSpace(loaded.Accent) != "" {
		merged.Accent = loaded.Accent
	}
	if strings.TrimSpace(loaded.Success) != "" {
		merged.Success = loaded.Success
	}
	if strings.TrimSpace(loaded.Warn) != "" {
		merged.Warn = loaded.Warn
	}
	if strings.TrimSpace(loaded.Error) != "" {
		merged.Error = loaded.Error
	}
	if strings.TrimSpace(loaded.Muted) != "" {
		merged.Muted = loaded.Muted
	}
	return merged, nil
}

// LoadPaletteFile reads a palette definition from a YAML file.
func LoadPaletteFile(path string) (Palette, error) {
	file, err := os.Open(path)
	if err != nil {
		return Palette{}, fmt.Errorf("open palette file: %w", err)
	}
	defer file.Close()
	return LoadPalette(file)
}
