// Package rational implements the signed and unsigned 32-bit fractions used
// by TIFF RATIONAL and SRATIONAL fields.
//
// Values are immutable and always kept in lowest terms. A zero denominator
// is legal and encodes the sentinels NaN (0/0) and Infinity (±1/0). A
// fraction built from a floating point number carries the residual
// approximation error.
package rational

import (
	"fmt"
	"math"
	"math/big"
	"strconv"
	"strings"
)

// hard cap on continued fraction expansion; the 32-bit limits stop it far
// earlier in practice
const maxIterations = 10000000

// GCD returns the greatest common divisor of a and b. GCD(0, n) is n, and
// GCD(0, 0) is 0.
func GCD(a, b uint64) uint64 {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

// reduce divides n and d by their GCD. Reduction is skipped when both are
// zero (NaN).
func reduce(n, d uint64) (uint64, uint64) {
	g := GCD(n, d)
	if g == 0 {
		return n, d
	}
	return n / g, d / g
}

// approximate expands the non-negative value v into a continued fraction
// and returns the last convergent whose terms stay within maxNum/maxDen.
// A value whose integer part exceeds maxNum is clamped to maxNum/1.
// It stops when the convergent is within tolerance of v, when the
// remainder underflows, when the reciprocal overflows, when the error stops
// decreasing or after maxIterations.
func approximate(v, tolerance, maxNum, maxDen float64) (num, den uint64) {
	var h0, h1 float64 = 0, 1 // numerators of the two previous convergents
	var k0, k1 float64 = 1, 0 // denominators of the two previous convergents
	f := v
	lastErr := math.Inf(1)
	for i := 0; i < maxIterations; i++ {
		a := math.Floor(f)
		h := a*h1 + h0
		k := a*k1 + k0
		if h > maxNum || k > maxDen || k == 0 {
			break
		}
		e := math.Abs(h/k - v)
		if e >= lastErr {
			break
		}
		h0, h1 = h1, h
		k0, k1 = k1, k
		lastErr = e
		if e <= tolerance {
			break
		}
		rem := f - a
		if rem < math.SmallestNonzeroFloat64 {
			break
		}
		f = 1 / rem
		if math.IsInf(f, 0) {
			break
		}
	}
	if k1 == 0 {
		return uint64(maxNum), 1
	}
	return uint64(h1), uint64(k1)
}

// split separates "n/d" into its two parts. A single part is returned with
// ok false for the denominator.
func split(s string) (string, string, bool, error) {
	parts := strings.Split(strings.TrimSpace(s), "/")
	switch len(parts) {
	case 1:
		return parts[0], "", false, nil
	case 2:
		return strings.TrimSpace(parts[0]), strings.TrimSpace(parts[1]), true, nil
	}
	return "", "", false, fmt.Errorf("rational: %q is not formatted as n/d", s)
}

func parseFloat(s string) (float64, error) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("rational: %q: %w", s, err)
	}
	return v, nil
}

func ratFloat(r *big.Rat) float64 {
	f, _ := r.Float64()
	return f
}

// divByZero returns x/0 under IEEE rules.
func divByZero(x float64) float64 {
	switch {
	case x > 0:
		return math.Inf(1)
	case x < 0:
		return math.Inf(-1)
	}
	return math.NaN()
}
