package rational

import (
	"fmt"
	"math"
	"math/big"
	"strconv"
)

// Fraction is a signed fraction whose numerator and denominator both fit in
// an int32. The zero value is 0/0 (NaN); use New for anything else.
type Fraction struct {
	num uint32 // magnitude, up to 1<<31 when negative
	den uint32 // up to math.MaxInt32
	neg bool
	err float64
}

var (
	NaN              = Fraction{}
	PositiveInfinity = Fraction{num: 1}
	NegativeInfinity = Fraction{num: 1, neg: true}
	MinValue         = Fraction{num: 1 << 31, den: 1, neg: true}
	MaxValue         = Fraction{num: math.MaxInt32, den: 1}
)

// New returns num/den in lowest terms.
func New(num, den int32) Fraction {
	return fromInt64(int64(num), int64(den))
}

// FromInt returns n/1.
func FromInt(n int32) Fraction {
	return New(n, 1)
}

func fromInt64(n, d int64) Fraction {
	neg := (n < 0) != (d < 0)
	un, ud := reduce(abs64(n), abs64(d))
	if un == 0 && ud != 0 {
		neg = false
	}
	if un > maxMagnitude(neg) || ud > math.MaxInt32 {
		return FromFloat(float64(n) / float64(d))
	}
	return Fraction{num: uint32(un), den: uint32(ud), neg: neg}
}

func fromRat(r *big.Rat) Fraction {
	if r.Num().IsInt64() && r.Denom().IsInt64() {
		return fromInt64(r.Num().Int64(), r.Denom().Int64())
	}
	return FromFloat(ratFloat(r))
}

func abs64(v int64) uint64 {
	if v < 0 {
		return uint64(-v)
	}
	return uint64(v)
}

func maxMagnitude(neg bool) uint64 {
	if neg {
		return 1 << 31
	}
	return math.MaxInt32
}

// FromFloat returns the closest fraction to v whose terms fit in an int32,
// found by continued fraction expansion. NaN and the infinities map to the
// matching sentinels. The residual v - result is kept and returned by Error.
func FromFloat(v float64) Fraction {
	return Approximate(v, 0)
}

// Approximate is FromFloat stopping at the first convergent within
// tolerance of v.
func Approximate(v, tolerance float64) Fraction {
	switch {
	case math.IsNaN(v):
		return NaN
	case math.IsInf(v, 1):
		return PositiveInfinity
	case math.IsInf(v, -1):
		return NegativeInfinity
	}
	neg := v < 0
	n, d := approximate(math.Abs(v), tolerance, float64(maxMagnitude(neg)), math.MaxInt32)
	f := Fraction{num: uint32(n), den: uint32(d), neg: neg && n != 0}
	if d != 0 {
		f.err = v - f.Float64()
	}
	return f
}

// Parse accepts "n/d", a plain integer or a decimal number. Decimal
// numbers are approximated with FromFloat.
func Parse(s string) (Fraction, error) {
	ns, ds, hasDen, err := split(s)
	if err != nil {
		return NaN, err
	}
	if !hasDen {
		if n, err := strconv.ParseInt(ns, 10, 32); err == nil {
			return FromInt(int32(n)), nil
		}
		v, err := parseFloat(ns)
		if err != nil {
			return NaN, err
		}
		return FromFloat(v), nil
	}
	n, err := strconv.ParseInt(ns, 10, 32)
	if err != nil {
		return NaN, fmt.Errorf("rational: numerator %q: %w", ns, err)
	}
	d, err := strconv.ParseInt(ds, 10, 32)
	if err != nil {
		return NaN, fmt.Errorf("rational: denominator %q: %w", ds, err)
	}
	return New(int32(n), int32(d)), nil
}

// Num returns the signed numerator.
func (f Fraction) Num() int32 {
	if f.neg {
		return int32(-int64(f.num))
	}
	return int32(f.num)
}

// Den returns the denominator, always >= 0.
func (f Fraction) Den() int32 { return int32(f.den) }

func (f Fraction) IsNegative() bool { return f.neg }
func (f Fraction) IsNaN() bool      { return f.num == 0 && f.den == 0 }
func (f Fraction) IsInf() bool      { return f.num != 0 && f.den == 0 }

// Error returns the approximation residual recorded when f was built from
// a float, 0 otherwise.
func (f Fraction) Error() float64 { return f.err }

// Float64 returns num/den with IEEE semantics: x/0 is ±Inf and 0/0 is NaN.
func (f Fraction) Float64() float64 {
	if f.IsNaN() {
		return math.NaN()
	}
	return float64(f.Num()) / float64(f.den)
}

func (f Fraction) Float32() float32 { return float32(f.Float64()) }

// Int returns the truncated integer value. It reports false for NaN and
// the infinities.
func (f Fraction) Int() (int32, bool) {
	if f.den == 0 {
		return 0, false
	}
	return f.Num() / int32(f.den), true
}

func (f Fraction) String() string {
	return fmt.Sprintf("%d/%d", f.Num(), f.den)
}

func (f Fraction) finite() bool { return f.den != 0 }

func (f Fraction) rat() *big.Rat {
	return big.NewRat(int64(f.Num()), int64(f.den))
}

// arith applies op exactly when both operands are finite, and through
// float64 otherwise so that NaN and infinities follow IEEE rules.
func (f Fraction) arith(g Fraction, op func(z, x, y *big.Rat) *big.Rat, fop func(x, y float64) float64) Fraction {
	if !f.finite() || !g.finite() {
		return FromFloat(fop(f.Float64(), g.Float64()))
	}
	return fromRat(op(new(big.Rat), f.rat(), g.rat()))
}

func (f Fraction) Add(g Fraction) Fraction {
	return f.arith(g, (*big.Rat).Add, func(x, y float64) float64 { return x + y })
}

func (f Fraction) Sub(g Fraction) Fraction {
	return f.arith(g, (*big.Rat).Sub, func(x, y float64) float64 { return x - y })
}

func (f Fraction) Mul(g Fraction) Fraction {
	return f.arith(g, (*big.Rat).Mul, func(x, y float64) float64 { return x * y })
}

// Div returns f/g. Division by a zero fraction yields an infinity, or NaN
// when f is also zero.
func (f Fraction) Div(g Fraction) Fraction {
	if g.finite() && g.num == 0 {
		return FromFloat(divByZero(f.Float64()))
	}
	return f.arith(g, (*big.Rat).Quo, func(x, y float64) float64 { return x / y })
}

func (f Fraction) Neg() Fraction {
	if f.num == 0 {
		return f
	}
	return Fraction{num: f.num, den: f.den, neg: !f.neg, err: -f.err}
}

// Inverse returns den/num, keeping the sign on the numerator.
func (f Fraction) Inverse() Fraction {
	if f.IsNaN() {
		return NaN
	}
	if f.num > math.MaxInt32 {
		return FromFloat(1 / f.Float64())
	}
	return Fraction{num: f.den, den: f.num, neg: f.neg && f.den != 0}
}

// Cmp returns -1, 0 or +1 as f is less than, equal to or greater than g.
// NaN equals NaN and is less than anything else.
func (f Fraction) Cmp(g Fraction) int {
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
	// products of two int32 values fit in an int64
	a := int64(f.Num()) * int64(g.den)
	b := int64(g.Num()) * int64(f.den)
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

// Equal reports value equality; the approximation error is ignored.
func (f Fraction) Equal(g Fraction) bool { return f.Cmp(g) == 0 }

func (f Fraction) Less(g Fraction) bool { return f.Cmp(g) < 0 }

func cmpFloat(a, b float64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}
