package aspect

import (
	"fmt"
	"strconv"

	"github.com/dustin/go-humanize"
)

// Metrics holds pixel counts with their display units.
type Metrics struct {
	Pixels           int64
	Suffix           string // magnitude suffix from PixelSuffixes
	UnitText         string // e.g. "2,073,600 MP"
	Megapixels       float64
	MegapixelsUnit   string // e.g. "2.1 MP"
	MegapixelsSuffix string
}

// PixelMetrics computes the magnitude suffix and megapixel figures for a
// pixel count.
//
// The suffix comes from dividing by 1000 until the value drops below 1000,
// clamped to the last entry of PixelSuffixes. UnitText shows the original
// count with thousands separators, not the reduced amount.
func PixelMetrics(pixels int64) Metrics {
	suffix := pixelSuffix(pixels)
	megapixels := roundTenths(float64(pixels) / 1_000_000)

	return Metrics{
		Pixels:           pixels,
		Suffix:           suffix,
		UnitText:         fmt.Sprintf("%s %s", humanize.Comma(pixels), suffix),
		Megapixels:       megapixels,
		MegapixelsUnit:   fmt.Sprintf("%s %s", strconv.FormatFloat(megapixels, 'f', -1, 64), MegapixelsSuffix),
		MegapixelsSuffix: MegapixelsSuffix,
	}
}

func pixelSuffix(pixels int64) string {
	amount := float64(pixels)
	tier := 0
	for amount >= 1000 {
		amount /= 1000
		tier++
	}
	if tier >= len(PixelSuffixes) {
		tier = len(PixelSuffixes) - 1
	}
	return PixelSuffixes[tier]
}

// roundTenths rounds through the decimal rendering so the result matches
// what a one-digit fixed-point display shows.
func roundTenths(v float64) float64 {
	r, _ := strconv.ParseFloat(strconv.FormatFloat(v, 'f', 1, 64), 64)
	return r
}

// formatPixels renders "{n}px".
func formatPixels(pixels int64) string {
	return strconv.FormatInt(pixels, 10) + "px"
}
