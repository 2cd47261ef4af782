// Package aspect computes aspect-ratio metadata for a pair of dimensions.
//
// Dimensions come either from explicit values (literal numbers or producer
// functions) or from a resolution string such as "1920x1080". From them the
// package derives the decimal ratio, the simplified proportion ("16:9"),
// pixel and megapixel counts with unit suffixes, and an orientation label.
//
// Basic usage:
//
//	res, err := aspect.Ratio(aspect.Options{Resolution: "1920x1080"})
//	if err != nil {
//		log.Fatal(err)
//	}
//	fmt.Println(res.ProportionText, res.Orientation) // 16:9 LANDSCAPE
//
// Every function is pure. There is no package-level mutable state, so calls
// may run concurrently without coordination.
package aspect

import "regexp"

const (
	// DefaultDelimiter separates the two terms of a proportion string.
	DefaultDelimiter = ":"

	// SquareProportion is the proportion text of any square pair.
	SquareProportion = "1:1"

	// DefaultDigits is the number of fractional digits in Result.AspectRatio.
	DefaultDigits = 5

	// MaxDimension is the largest supported side length. It matches the
	// largest value an 8-digit resolution component can hold.
	MaxDimension = 99_999_999

	// MegapixelsSuffix is the fixed unit of Result.Megapixels.
	MegapixelsSuffix = "MP"
)

// PixelSuffixes is the magnitude-suffix table, one entry per factor of 1000.
var PixelSuffixes = [...]string{"P", "KP", "MP", "GP", "TP"}

var (
	// ResolutionPattern matches a "WxH" resolution string with 1-8 digits per side.
	ResolutionPattern = regexp.MustCompile(`(?i)^(?P<width>\d{1,8})x(?P<height>\d{1,8})$`)

	// ProportionPattern matches a "W:H" proportion string with 1-3 digits per side.
	ProportionPattern = regexp.MustCompile(`^(?P<width>\d{1,3}):(?P<height>\d{1,3})$`)
)
