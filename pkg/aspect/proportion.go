package aspect

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Proportion is a width/height pair reduced to lowest terms.
type Proportion struct {
	Text    string // e.g. "16:9"
	Divisor int    // the GCD the pair was divided by
}

// Simplify reduces width and height by their greatest common divisor and
// renders "{w}{delimiter}{h}". Square pairs render SquareProportion with the
// delimiter substituted. An empty delimiter means DefaultDelimiter.
func Simplify(width, height int, delimiter string, alg Algorithm) (Proportion, error) {
	if delimiter == "" {
		delimiter = DefaultDelimiter
	}

	divisor := GCD(width, height, alg)
	if divisor == 0 {
		return Proportion{}, &ComputationError{Width: width, Height: height}
	}

	left, right := width/divisor, height/divisor
	if left == right {
		return Proportion{
			Text:    strings.Replace(SquareProportion, DefaultDelimiter, delimiter, 1),
			Divisor: divisor,
		}, nil
	}

	return Proportion{
		Text:    fmt.Sprintf("%d%s%d", left, delimiter, right),
		Divisor: divisor,
	}, nil
}

// ProportionOptions configures ProportionToRatio.
type ProportionOptions struct {
	// Delimiter between the two terms. Empty means DefaultDelimiter.
	Delimiter string
	// AllowAnyDelimiter skips the strict 1-3 digit pattern check.
	AllowAnyDelimiter bool
}

// ProportionToRatio converts a proportion string such as "16:9" into its
// decimal ratio. It returns -1 when the text does not match the strict
// pattern, or when it cannot be split into two integers.
func ProportionToRatio(text string, opts ProportionOptions) float64 {
	delimiter := opts.Delimiter
	if delimiter == "" {
		delimiter = DefaultDelimiter
	}

	if !opts.AllowAnyDelimiter && !proportionMatches(text, delimiter) {
		return -1
	}

	parts := strings.Split(text, delimiter)
	if len(parts) != 2 {
		return -1
	}

	left, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return -1
	}
	right, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return -1
	}

	return float64(left) / float64(right)
}

func proportionMatches(text, delimiter string) bool {
	if delimiter == DefaultDelimiter {
		return ProportionPattern.MatchString(text)
	}
	// Compiled per call: delimiters are caller-supplied and nothing is cached.
	re, err := regexp.Compile(`^\d{1,3}` + regexp.QuoteMeta(delimiter) + `\d{1,3}$`)
	if err != nil {
		return false
	}
	return re.MatchString(text)
}
