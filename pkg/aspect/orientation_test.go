package aspect

import (
	"math"
	"testing"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name  string
		ratio float64
		want  Orientation
	}{
		{"square", 1, Square},
		{"widescreen", 16.0 / 9.0, Landscape},
		{"ultrawide", 21.0 / 9.0, Landscape},
		{"phone", 9.0 / 16.0, Portrait},
		{"negative square", -1, Square},
		{"negative landscape", -16.0 / 9.0, Landscape},
		{"negative portrait", -0.5, Portrait},
		{"zero width", 0, Portrait},
		{"nan", math.NaN(), Unknown},
		{"positive infinity", math.Inf(1), Unknown},
		{"negative infinity", math.Inf(-1), Unknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Classify(tt.ratio); got != tt.want {
				t.Errorf("Classify(%v) = %s, expected %s", tt.ratio, got, tt.want)
			}
		})
	}
}

func TestOrientationString(t *testing.T) {
	if Landscape.String() != "LANDSCAPE" {
		t.Errorf("Expected LANDSCAPE, got %s", Landscape.String())
	}
}
