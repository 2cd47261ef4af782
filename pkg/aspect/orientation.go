package aspect

import "math"

// Orientation is the coarse shape of a dimension pair.
type Orientation string

const (
	Square    Orientation = "SQUARE"
	Landscape Orientation = "LANDSCAPE"
	Portrait  Orientation = "PORTRAIT"
	Unknown   Orientation = "UNKNOWN"
)

func (o Orientation) String() string {
	return string(o)
}

// Classify maps a width/height ratio to an Orientation. The sign of the
// ratio is ignored. NaN and infinite ratios are Unknown.
func Classify(ratio float64) Orientation {
	magnitude := math.Abs(ratio)

	switch {
	case math.IsNaN(magnitude), math.IsInf(magnitude, 0):
		return Unknown
	case magnitude == 1:
		return Square
	case magnitude > 1:
		return Landscape
	default:
		return Portrait
	}
}
