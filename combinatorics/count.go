package combinatorics

import (
	"errors"
	"fmt"
	"math/bits"
)

var (
	// ErrBadRange is returned when r exceeds n or an argument is negative.
	ErrBadRange = errors.New("combinatorics: r must satisfy 0 <= r <= n")
	// ErrOverflow is returned when a count does not fit in uint64.
	ErrOverflow = errors.New("combinatorics: result overflows uint64")
)

// Factorial returns n!.
func Factorial(n uint64) (uint64, error) {
	return FactorialRatio(n, 0)
}

// FactorialRatio returns n!/r!, the product r+1 … n.
func FactorialRatio(n, r uint64) (uint64, error) {
	if r > n {
		return 0, fmt.Errorf("%w: ratio %d!/%d!", ErrBadRange, n, r)
	}
	value := uint64(1)
	for k := r + 1; k <= n; k++ {
		hi, lo := bits.Mul64(value, k)
		if hi != 0 {
			return 0, fmt.Errorf("%w: %d!/%d!", ErrOverflow, n, r)
		}
		value = lo
	}

	return value, nil
}

// Permutations returns nPr, the number of ordered selections of r out of n.
func Permutations(n, r uint64) (uint64, error) {
	if r > n {
		return 0, fmt.Errorf("%w: %dP%d", ErrBadRange, n, r)
	}

	return FactorialRatio(n, n-r)
}

// Combinations returns nCr, the number of unordered selections of r out of n.
// Intermediate products use 128 bits, so the result is exact whenever it
// fits in uint64.
func Combinations(n, r uint64) (uint64, error) {
	if r > n {
		return 0, fmt.Errorf("%w: %dC%d", ErrBadRange, n, r)
	}
	if r > n-r {
		r = n - r
	}
	// c = C(n, i) after each step; C(n, i+1) = C(n, i) * (n-i) / (i+1)
	c := uint64(1)
	for i := uint64(0); i < r; i++ {
		hi, lo := bits.Mul64(c, n-i)
		if hi >= i+1 {
			return 0, fmt.Errorf("%w: %dC%d", ErrOverflow, n, r)
		}
		c, _ = bits.Div64(hi, lo, i+1)
	}

	return c, nil
}
