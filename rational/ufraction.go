package rational

import (
	"fmt"
	"math"
	"math/big"
	"strconv"
)

// UFraction is an unsigned fraction whose numerator and denominator both
// fit in a uint32. The zero value is 0/0 (NaN).
type UFraction struct {
	num, den uint32
	err      float64
}

var (
	UNaN      = UFraction{}
	UInfinity = UFraction{num: 1}
	UMaxValue = UFraction{num: math.MaxUint32, den: 1}
)

// NewU returns num/den in lowest terms.
func NewU(num, den uint32) UFraction {
	n, d := reduce(uint64(num), uint64(den))
	return UFraction{num: uint32(n), den: uint32(d)}
}

func fromRatU(r *big.Rat) UFraction {
	if r.Sign() < 0 {
		return UNaN
	}
	if r.Num().IsUint64() && r.Denom().IsUint64() {
		n, d := r.Num().Uint64(), r.Denom().Uint64()
		if n <= math.MaxUint32 && d <= math.MaxUint32 {
			return UFraction{num: uint32(n), den: uint32(d)}
		}
	}
	return UFromFloat(ratFloat(r))
}

// UFromFloat is the unsigned counterpart of FromFloat. Negative values
// cannot be represented and yield NaN.
func UFromFloat(v float64) UFraction {
	return UApproximate(v, 0)
}

// UApproximate is UFromFloat stopping at the first convergent within
// tolerance of v.
func UApproximate(v, tolerance float64) UFraction {
	switch {
	case math.IsNaN(v), v < 0:
		return UNaN
	case math.IsInf(v, 1):
		return UInfinity
	}
	n, d := approximate(v, tolerance, math.MaxUint32, math.MaxUint32)
	f := UFraction{num: uint32(n), den: uint32(d)}
	if d != 0 {
		f.err = v - f.Float64()
	}
	return f
}

// ParseU is the unsigned counterpart of Parse.
func ParseU(s string) (UFraction, error) {
	ns, ds, hasDen, err := split(s)
	if err != nil {
		return UNaN, err
	}
	if !hasDen {
		if n, err := strconv.ParseUint(ns, 10, 32); err == nil {
			return NewU(uint32(n), 1), nil
		}
		v, err := parseFloat(ns)
		if err != nil {
			return UNaN, err
		}
		if v < 0 {
			return UNaN, fmt.Errorf("rational: %q is negative", s)
		}
		return UFromFloat(v), nil
	}
	n, err := strconv.ParseUint(ns, 10, 32)
	if err != nil {
		return UNaN, fmt.Errorf("rational: numerator %q: %w", ns, err)
	}
	d, err := strconv.ParseUint(ds, 10, 32)
	if err != nil {
		return UNaN, fmt.Errorf("rational: denominator %q: %w", ds, err)
	}
	return NewU(uint32(n), uint32(d)), nil
}

func (f UFraction) Num() uint32      { return f.num }
func (f UFraction) Den() uint32      { return f.den }
func (f UFraction) IsNaN() bool      { return f.num == 0 && f.den == 0 }
func (f UFraction) IsInf() bool      { return f.num != 0 && f.den == 0 }
func (f UFraction) Error() float64   { return f.err }
func (f UFraction) Float32() float32 { return float32(f.Float64()) }

func (f UFraction) Float64() float64 {
	if f.IsNaN() {
		return math.NaN()
	}
	return float64(f.num) / float64(f.den)
}

// Int returns the truncated integer value, false for NaN and Infinity.
func (f UFraction) Int() (uint32, bool) {
	if f.den == 0 {
		return 0, false
	}
	return f.num / f.den, true
}

func (f UFraction) String() string {
	return fmt.Sprintf("%d/%d", f.num, f.den)
}

func (f UFraction) finite() bool { return f.den != 0 }

func (f UFraction) rat() *big.Rat {
	return new(big.Rat).SetFrac(
		new(big.Int).SetUint64(uint64(f.num)),
		new(big.Int).SetUint64(uint64(f.den)))
}

func (f UFraction) arith(g UFraction, op func(z, x, y *big.Rat) *big.Rat, fop func(x, y float64) float64) UFraction {
	if !f.finite() || !g.finite() {
		return UFromFloat(fop(f.Float64(), g.Float64()))
	}
	return fromRatU(op(new(big.Rat), f.rat(), g.rat()))
}

func (f UFraction) Add(g UFraction) UFraction {
	return f.arith(g, (*big.Rat).Add, func(x, y float64) float64 { return x + y })
}

// Sub returns f-g, or NaN when the result would be negative.
func (f UFraction) Sub(g UFraction) UFraction {
	return f.arith(g, (*big.Rat).Sub, func(x, y float64) float64 { return x - y })
}

func (f UFraction) Mul(g UFraction) UFraction {
	return f.arith(g, (*big.Rat).Mul, func(x, y float64) float64 { return x * y })
}

func (f UFraction) Div(g UFraction) UFraction {
	if g.finite() && g.num == 0 {
		return UFromFloat(divByZero(f.Float64()))
	}
	return f.arith(g, (*big.Rat).Quo, func(x, y float64) float64 { return x / y })
}

func (f UFraction) Inverse() UFraction {
	if f.IsNaN() {
		return UNaN
	}
	return UFraction{num: f.den, den: f.num}
}

// Cmp orders like Fraction.Cmp.
func (f UFraction) Cmp(g UFraction) int {
	switch {
	case f.IsNaN() && g.IsNaN():
		return 0
	case f.IsNaN():
		return -1
	case g.IsNaN():
		return 1
	}
	if !f.finite() || !g.finite() {
		return cmpFloat(f.Float64(), g.Float64())
	}
	// (2^32-1)^2 fits in a uint64
	a := uint64(f.num) * uint64(g.den)
	b := uint64(g.num) * uint64(f.den)
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

func (f UFraction) Equal(g UFraction) bool { return f.Cmp(g) == 0 }
func (f UFraction) Less(g UFraction) bool  { return f.Cmp(g) < 0 }

// Signed converts f to a Fraction, approximating when a term exceeds
// math.MaxInt32.
func (f UFraction) Signed() Fraction {
	if f.num <= math.MaxInt32 && f.den <= math.MaxInt32 {
		return Fraction{num: f.num, den: f.den, err: f.err}
	}
	return FromFloat(f.Float64())
}
