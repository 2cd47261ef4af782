package aspect

import "strconv"

// Options configures Ratio. Zero-valued fields are unset and take the value
// from DefaultOptions when merged.
type Options struct {
	Width      Dimension
	Height     Dimension
	Resolution string // "WxH"; takes precedence over Width and Height

	ProportionDelimiter string
	Algorithm           Algorithm
	SortOrder           SortOrder
	SortDimensions      bool
	Digits              int // fractional digits of Result.AspectRatio
}

// DefaultOptions returns the documented defaults.
func DefaultOptions() Options {
	return Options{
		ProportionDelimiter: DefaultDelimiter,
		Algorithm:           AlgorithmIterative,
		SortOrder:           SortDescending,
		SortDimensions:      false,
		Digits:              DefaultDigits,
	}
}

// Merge returns o with every set field of override applied on top.
func (o Options) Merge(override Options) Options {
	merged := o
	if override.Width.isSet() {
		merged.Width = override.Width
	}
	if override.Height.isSet() {
		merged.Height = override.Height
	}
	if override.Resolution != "" {
		merged.Resolution = override.Resolution
	}
	if override.ProportionDelimiter != "" {
		merged.ProportionDelimiter = override.ProportionDelimiter
	}
	if override.Algorithm != "" {
		merged.Algorithm = ParseAlgorithm(string(override.Algorithm))
	}
	if override.SortOrder != "" {
		merged.SortOrder = ParseSortOrder(string(override.SortOrder))
	}
	if override.SortDimensions {
		merged.SortDimensions = true
	}
	if override.Digits > 0 {
		merged.Digits = override.Digits
	}
	return merged
}

// Result is the aspect-ratio metadata of one dimension pair.
type Result struct {
	Width            int         `json:"width" toml:"width"`
	Height           int         `json:"height" toml:"height"`
	Ratio            float64     `json:"ratio" toml:"ratio"`
	AspectRatio      string      `json:"aspect_ratio" toml:"aspect_ratio"`
	Area             int64       `json:"area" toml:"area"`
	Pixels           int64       `json:"pixels" toml:"pixels"`
	PixelsText       string      `json:"pixels_text" toml:"pixels_text"`
	PixelsUnit       string      `json:"pixels_unit" toml:"pixels_unit"`
	PixelsSuffix     string      `json:"pixels_suffix" toml:"pixels_suffix"`
	Megapixels       float64     `json:"megapixels" toml:"megapixels"`
	MegapixelsUnit   string      `json:"megapixels_unit" toml:"megapixels_unit"`
	MegapixelsSuffix string      `json:"megapixels_suffix" toml:"megapixels_suffix"`
	ProportionText   string      `json:"proportion_text" toml:"proportion_text"`
	ProportionAmount int         `json:"proportion_amount" toml:"proportion_amount"`
	Resolution       string      `json:"resolution" toml:"resolution"`
	Orientation      Orientation `json:"orientation" toml:"orientation"`
}

// Ratio computes the full aspect-ratio metadata for the dimensions in opts.
//
// It returns a *ParseError when opts.Resolution does not match
// ResolutionPattern, a *RangeError when a side exceeds MaxDimension, and a
// *ComputationError when both sides are zero.
func Ratio(opts Options) (Result, error) {
	opts = DefaultOptions().Merge(opts)

	width, height, err := ResolveDimensions(opts)
	if err != nil {
		return Result{}, err
	}
	if outOfRange(width) || outOfRange(height) {
		return Result{}, &RangeError{Width: width, Height: height}
	}

	proportion, err := Simplify(width, height, opts.ProportionDelimiter, opts.Algorithm)
	if err != nil {
		return Result{}, err
	}

	pixels := int64(width) * int64(height)
	metrics := PixelMetrics(pixels)
	ratio := float64(width) / float64(height)

	return Result{
		Width:            width,
		Height:           height,
		Ratio:            ratio,
		AspectRatio:      strconv.FormatFloat(ratio, 'f', opts.Digits, 64),
		Area:             pixels,
		Pixels:           pixels,
		PixelsText:       formatPixels(pixels),
		PixelsUnit:       metrics.UnitText,
		PixelsSuffix:     metrics.Suffix,
		Megapixels:       metrics.Megapixels,
		MegapixelsUnit:   metrics.MegapixelsUnit,
		MegapixelsSuffix: metrics.MegapixelsSuffix,
		ProportionText:   proportion.Text,
		ProportionAmount: proportion.Divisor,
		Resolution:       FormatResolution(width, height),
		Orientation:      Classify(ratio),
	}, nil
}

func outOfRange(n int) bool {
	return n > MaxDimension || n < -MaxDimension
}
