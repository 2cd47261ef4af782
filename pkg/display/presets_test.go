package display

import (
	"math"
	"sort"
	"strings"
	"testing"

	"github.com/alde/aspectratio/pkg/aspect"
)

func TestGetPreset(t *testing.T) {
	preset, err := GetPreset("  FHD ")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if preset.Width != 1920 || preset.Height != 1080 {
		t.Errorf("Expected 1920x1080, got %dx%d", preset.Width, preset.Height)
	}
}

func TestGetPresetUnknown(t *testing.T) {
	_, err := GetPreset("betamax")
	if err == nil {
		t.Fatal("Expected error for unknown preset")
	}

	if !strings.Contains(err.Error(), "fhd") {
		t.Errorf("Expected error to list available presets, got: %v", err)
	}
}

func TestNamesSorted(t *testing.T) {
	names := Names()

	if len(names) != len(ListPresets()) {
		t.Errorf("Expected %d names, got %d", len(ListPresets()), len(names))
	}
	if !sort.StringsAreSorted(names) {
		t.Errorf("Expected sorted names, got %v", names)
	}
}

func TestListPresetsIsCopy(t *testing.T) {
	listed := ListPresets()
	delete(listed, "fhd")

	if _, err := GetPreset("fhd"); err != nil {
		t.Errorf("Deleting from the listed map should not affect presets: %v", err)
	}
}

func TestPresetRatios(t *testing.T) {
	tests := []struct {
		name        string
		proportion  string
		orientation aspect.Orientation
	}{
		{"hd", "16:9", aspect.Landscape},
		{"fhd", "16:9", aspect.Landscape},
		{"uhd", "16:9", aspect.Landscape},
		{"dci-4k", "256:135", aspect.Landscape},
		{"uwqhd", "43:18", aspect.Landscape},
		{"xga", "4:3", aspect.Landscape},
		{"kobo", "79:105", aspect.Portrait},
		{"kindle", "3:4", aspect.Portrait},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			preset, err := GetPreset(tt.name)
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}

			res, err := aspect.Ratio(preset.Options())
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}

			if res.ProportionText != tt.proportion {
				t.Errorf("Expected %s, got %s", tt.proportion, res.ProportionText)
			}
			if res.Orientation != tt.orientation {
				t.Errorf("Expected %s, got %s", tt.orientation, res.Orientation)
			}
		})
	}
}

func TestDiagonalInches(t *testing.T) {
	kindle, _ := GetPreset("kindle")

	// 1236x1648 at 300 DPI is a 6.8" panel
	if got := kindle.DiagonalInches(); math.Abs(got-6.867) > 0.01 {
		t.Errorf("Expected ~6.87 inches, got %.3f", got)
	}

	fhd, _ := GetPreset("fhd")
	if got := fhd.DiagonalInches(); got != 0 {
		t.Errorf("Expected 0 for unknown DPI, got %v", got)
	}
}
