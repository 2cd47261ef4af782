package display

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/alde/aspectratio/pkg/aspect"
)

// Preset is a named screen with its native resolution
type Preset struct {
	Name         string
	Manufacturer string
	Model        string
	Width        int // Native width in pixels
	Height       int // Native height in pixels
	DPI          int // Pixels per inch, 0 when it varies by panel size
}

// Available display presets
var presets = map[string]Preset{
	"hd": {
		Name:         "HD",
		Manufacturer: "Generic",
		Model:        "720p",
		Width:        1280,
		Height:       720,
	},
	"fhd": {
		Name:         "Full HD",
		Manufacturer: "Generic",
		Model:        "1080p",
		Width:        1920,
		Height:       1080,
	},
	"qhd": {
		Name:         "Quad HD",
		Manufacturer: "Generic",
		Model:        "1440p",
		Width:        2560,
		Height:       1440,
	},
	"uhd": {
		Name:         "4K UHD",
		Manufacturer: "Generic",
		Model:        "2160p",
		Width:        3840,
		Height:       2160,
	},
	"dci-4k": {
		Name:         "DCI 4K",
		Manufacturer: "Digital Cinema Initiatives",
		Model:        "DCI 4K",
		Width:        4096,
		Height:       2160,
	},
	"uwqhd": {
		Name:         "Ultrawide QHD",
		Manufacturer: "Generic",
		Model:        "3440x1440",
		Width:        3440,
		Height:       1440,
	},
	"xga": {
		Name:         "XGA",
		Manufacturer: "Generic",
		Model:        "1024x768",
		Width:        1024,
		Height:       768,
	},
	"iphone-15": {
		Name:         "iPhone 15",
		Manufacturer: "Apple",
		Model:        "iPhone 15",
		Width:        1179,
		Height:       2556,
		DPI:          460,
	},
	"kobo": {
		Name:         "Kobo Libra Colour",
		Manufacturer: "Kobo",
		Model:        "Libra Colour",
		Width:        1264,
		Height:       1680,
		DPI:          300,
	},
	"kindle": {
		Name:         "Kindle Paperwhite",
		Manufacturer: "Amazon",
		Model:        "Paperwhite",
		Width:        1236,
		Height:       1648,
		DPI:          300,
	},
}

// GetPreset returns a display preset by name
func GetPreset(name string) (Preset, error) {
	normalizedName := strings.ToLower(strings.TrimSpace(name))

	if preset, exists := presets[normalizedName]; exists {
		return preset, nil
	}

	return Preset{}, fmt.Errorf("unknown display preset '%s'. Available presets: %v", name, Names())
}

// ListPresets returns all available display presets keyed by name
func ListPresets() map[string]Preset {
	out := make(map[string]Preset, len(presets))
	for k, v := range presets {
		out[k] = v
	}
	return out
}

// Names returns the preset names in sorted order
func Names() []string {
	names := make([]string, 0, len(presets))
	for key := range presets {
		names = append(names, key)
	}
	sort.Strings(names)
	return names
}

// Options returns ratio options for the preset's native resolution
func (p Preset) Options() aspect.Options {
	return aspect.Options{
		Width:  aspect.Literal(p.Width),
		Height: aspect.Literal(p.Height),
	}
}

// DiagonalInches returns the physical diagonal, or 0 when DPI is unknown
func (p Preset) DiagonalInches() float64 {
	if p.DPI <= 0 {
		return 0
	}
	diagonalPixels := math.Hypot(float64(p.Width), float64(p.Height))
	return diagonalPixels / float64(p.DPI)
}
