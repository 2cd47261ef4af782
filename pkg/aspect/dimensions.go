package aspect

import (
	"fmt"
	"strconv"
	"strings"
)

// Dimension is one side length: a literal value or a producer evaluated when
// dimensions are resolved. The zero Dimension is absent and resolves to 0.
type Dimension struct {
	value    int
	producer func() int
}

// Literal returns a Dimension holding n.
func Literal(n int) Dimension {
	return Dimension{value: n}
}

// Computed returns a Dimension whose value comes from calling fn.
func Computed(fn func() int) Dimension {
	return Dimension{producer: fn}
}

// Resolve returns the side length. A Computed dimension calls its producer
// on every call.
func (d Dimension) Resolve() int {
	if d.producer != nil {
		return d.producer()
	}
	return d.value
}

func (d Dimension) isSet() bool {
	return d.producer != nil || d.value != 0
}

// SortOrder is the order applied when Options.SortDimensions is set.
type SortOrder string

const (
	SortDescending SortOrder = "desc"
	SortAscending  SortOrder = "asc"
)

// ParseSortOrder maps "asc"/"ascending" to SortAscending and anything else
// to SortDescending.
func ParseSortOrder(s string) SortOrder {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "asc", "ascending":
		return SortAscending
	default:
		return SortDescending
	}
}

// sortPair orders the two side lengths. After sorting, width and height
// no longer carry orientation.
func sortPair(width, height int, order SortOrder) (int, int) {
	if order == SortAscending {
		if width > height {
			return height, width
		}
		return width, height
	}
	if width < height {
		return height, width
	}
	return width, height
}

// ParseResolution splits a "WxH" string into its two sides.
func ParseResolution(s string) (width, height int, err error) {
	m := ResolutionPattern.FindStringSubmatch(s)
	if m == nil {
		return 0, 0, &ParseError{Input: s}
	}

	// The pattern bounds both groups to 8 digits, so Atoi cannot overflow.
	width, _ = strconv.Atoi(m[ResolutionPattern.SubexpIndex("width")])
	height, _ = strconv.Atoi(m[ResolutionPattern.SubexpIndex("height")])
	return width, height, nil
}

// FormatResolution renders the canonical "WxH" string.
func FormatResolution(width, height int) string {
	return fmt.Sprintf("%dx%d", width, height)
}

// ResolveDimensions turns the options into a concrete (width, height) pair.
// Resolution mode is used whenever opts.Resolution is set; otherwise Width
// and Height are resolved. Sorting is applied last when enabled.
func ResolveDimensions(opts Options) (width, height int, err error) {
	if opts.Resolution != "" {
		width, height, err = ParseResolution(opts.Resolution)
		if err != nil {
			return 0, 0, err
		}
	} else {
		width, height = opts.Width.Resolve(), opts.Height.Resolve()
	}

	if opts.SortDimensions {
		width, height = sortPair(width, height, opts.SortOrder)
	}
	return width, height, nil
}
