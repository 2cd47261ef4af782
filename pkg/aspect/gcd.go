package aspect

import "strings"

// Algorithm selects the greatest common divisor implementation.
type Algorithm string

const (
	AlgorithmIterative Algorithm = "ITERATIVE"
	AlgorithmRecursive Algorithm = "RECURSIVE"
)

// ParseAlgorithm maps a tag to an Algorithm. Unknown tags fall back to
// AlgorithmIterative instead of failing.
func ParseAlgorithm(tag string) Algorithm {
	switch strings.ToUpper(strings.TrimSpace(tag)) {
	case string(AlgorithmRecursive), "RECURSION":
		return AlgorithmRecursive
	default:
		return AlgorithmIterative
	}
}

// Func returns the implementation behind the algorithm tag.
func (alg Algorithm) Func() func(a, b int) int {
	if alg == AlgorithmRecursive {
		return GCDRecursive
	}
	return GCDIterative
}

// GCD returns the greatest common divisor of a and b using alg.
// gcd(0, 0) is 0.
func GCD(a, b int, alg Algorithm) int {
	return alg.Func()(a, b)
}

// GCDIterative is the Euclidean algorithm as a loop.
// See https://en.wikipedia.org/wiki/Euclidean_algorithm
func GCDIterative(a, b int) int {
	a, b = abs(a), abs(b)
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

// GCDRecursive is the Euclidean algorithm as a recursion. Depth grows with
// the number of Euclidean steps, which is logarithmic in max(a, b).
func GCDRecursive(a, b int) int {
	a, b = abs(a), abs(b)
	if b == 0 {
		return a
	}
	return GCDRecursive(b, a%b)
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
