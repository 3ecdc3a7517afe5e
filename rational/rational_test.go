package rational

import (
	"math"
	"testing"
)

func TestGCD(t *testing.T) {
	tests := []struct{ a, b, want uint64 }{
		{0, 0, 0},
		{0, 7, 7},
		{7, 0, 7},
		{12, 18, 6},
		{17, 5, 1},
		{math.MaxUint32, math.MaxUint32, math.MaxUint32},
	}
	for _, tt := range tests {
		if got := GCD(tt.a, tt.b); got != tt.want {
			t.Errorf("GCD(%d, %d) = %d, want %d", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestNewReduces(t *testing.T) {
	tests := []struct {
		n, d         int32
		wantN, wantD int32
	}{
		{6, 8, 3, 4},
		{-6, 8, -3, 4},
		{6, -8, -3, 4},
		{-6, -8, 3, 4},
		{0, 5, 0, 1},
		{0, -5, 0, 1},
		{5, 0, 1, 0},
		{-5, 0, -1, 0},
		{0, 0, 0, 0},
		{math.MinInt32, 1, math.MinInt32, 1},
	}
	for _, tt := range tests {
		f := New(tt.n, tt.d)
		if f.Num() != tt.wantN || f.Den() != tt.wantD {
			t.Errorf("New(%d, %d) = %v, want %d/%d", tt.n, tt.d, f, tt.wantN, tt.wantD)
		}
	}
	if u := NewU(100, 250); u.Num() != 2 || u.Den() != 5 {
		t.Errorf("NewU(100, 250) = %v", u)
	}
}

func TestSentinels(t *testing.T) {
	if !NaN.IsNaN() || !New(0, 0).IsNaN() {
		t.Error("0/0 is not NaN")
	}
	if !PositiveInfinity.IsInf() || PositiveInfinity.Float64() != math.Inf(1) {
		t.Errorf("PositiveInfinity = %v", PositiveInfinity.Float64())
	}
	if NegativeInfinity.Float64() != math.Inf(-1) {
		t.Errorf("NegativeInfinity = %v", NegativeInfinity.Float64())
	}
	if !math.IsNaN(NaN.Float64()) {
		t.Errorf("NaN.Float64() = %v", NaN.Float64())
	}
	if !UInfinity.IsInf() || UInfinity.Float64() != math.Inf(1) {
		t.Errorf("UInfinity = %v", UInfinity.Float64())
	}
	if _, ok := PositiveInfinity.Int(); ok {
		t.Error("Int() of infinity reported ok")
	}
}

func TestDivisionByZero(t *testing.T) {
	zero := FromInt(0)
	if got := FromInt(3).Div(zero); !got.Equal(PositiveInfinity) {
		t.Errorf("3 / 0 = %v, want +Inf", got)
	}
	if got := FromInt(-3).Div(zero); !got.Equal(NegativeInfinity) {
		t.Errorf("-3 / 0 = %v, want -Inf", got)
	}
	if got := zero.Div(zero); !got.IsNaN() {
		t.Errorf("0 / 0 = %v, want NaN", got)
	}
	if got := NewU(1, 2).Div(NewU(0, 1)); !got.IsInf() {
		t.Errorf("1/2 / 0 = %v, want Inf", got)
	}
	if got := zero.Inverse(); !got.Equal(PositiveInfinity) {
		t.Errorf("inverse of 0 = %v", got)
	}
}

func TestArithmetic(t *testing.T) {
	a, b := New(1, 3), New(1, 6)
	if got := a.Add(b); got.Num() != 1 || got.Den() != 2 {
		t.Errorf("1/3 + 1/6 = %v", got)
	}
	if got := b.Sub(a); got.Num() != -1 || got.Den() != 6 {
		t.Errorf("1/6 - 1/3 = %v", got)
	}
	if got := a.Mul(New(-3, 4)); got.Num() != -1 || got.Den() != 4 {
		t.Errorf("1/3 * -3/4 = %v", got)
	}
	if got := a.Div(b); got.Num() != 2 || got.Den() != 1 {
		t.Errorf("1/3 / 1/6 = %v", got)
	}
	if got := New(2, 3).Inverse(); got.Num() != 3 || got.Den() != 2 {
		t.Errorf("inverse of 2/3 = %v", got)
	}
	if got := New(-2, 3).Inverse(); got.Num() != -3 || got.Den() != 2 {
		t.Errorf("inverse of -2/3 = %v", got)
	}

	u := NewU(math.MaxUint32, 2).Add(NewU(math.MaxUint32, 2))
	if u.Num() != math.MaxUint32 || u.Den() != 1 {
		t.Errorf("max/2 + max/2 = %v", u)
	}
	if got := NewU(1, 4).Sub(NewU(1, 2)); !got.IsNaN() {
		t.Errorf("negative unsigned difference = %v, want NaN", got)
	}

	// an exact result that no longer fits in 32 bits is approximated
	sum := New(math.MaxInt32, 1).Add(New(1, 2))
	if math.Abs(sum.Float64()-(math.MaxInt32+0.5)) > 1 {
		t.Errorf("overflowing sum = %v", sum)
	}
}

func TestCompare(t *testing.T) {
	tests := []struct {
		a, b Fraction
		want int
	}{
		{New(1, 2), New(2, 4), 0},
		{New(1, 3), New(1, 2), -1},
		{New(-1, 2), New(-1, 3), -1},
		{PositiveInfinity, New(math.MaxInt32, 1), 1},
		{NegativeInfinity, MinValue, -1},
		{NaN, New(0, 1), -1},
		{NaN, NaN, 0},
	}
	for _, tt := range tests {
		if got := tt.a.Cmp(tt.b); got != tt.want {
			t.Errorf("%v.Cmp(%v) = %d, want %d", tt.a, tt.b, got, tt.want)
		}
	}
	if !NewU(1, 3).Less(NewU(1, 2)) || NewU(3, 6).Cmp(NewU(1, 2)) != 0 {
		t.Error("unsigned comparison")
	}
	// equality ignores the approximation error
	if !FromFloat(0.5).Equal(New(1, 2)) {
		t.Error("FromFloat(0.5) != 1/2")
	}
}

func TestApproximateWithinTolerance(t *testing.T) {
	values := []float64{math.Pi, math.E, math.Sqrt2, 0.1, -1234.5678, 1.0 / 3, 1e-3, 65535.25}
	for _, eps := range []float64{1e-3, 1e-6, 1e-9} {
		for _, v := range values {
			f := Approximate(v, eps)
			if d := math.Abs(f.Float64() - v); d > eps {
				t.Errorf("Approximate(%v, %v) = %v, off by %v", v, eps, f, d)
			}
			if v > 0 {
				u := UApproximate(v, eps)
				if d := math.Abs(u.Float64() - v); d > eps {
					t.Errorf("UApproximate(%v, %v) = %v, off by %v", v, eps, u, d)
				}
			}
		}
	}
}

func TestFromFloatKnownValues(t *testing.T) {
	tests := []struct {
		v    float64
		n, d int32
	}{
		{0.5, 1, 2},
		{0.75, 3, 4},
		{-3.125, -25, 8},
		{3, 3, 1},
		{0, 0, 1},
		{355.0 / 113, 355, 113},
	}
	for _, tt := range tests {
		f := FromFloat(tt.v)
		if f.Num() != tt.n || f.Den() != tt.d {
			t.Errorf("FromFloat(%v) = %v, want %d/%d", tt.v, f, tt.n, tt.d)
		}
		if f.Error() != 0 {
			t.Errorf("FromFloat(%v) error = %v, want 0", tt.v, f.Error())
		}
	}

	f := FromFloat(math.Pi)
	if f.Error() != math.Pi-f.Float64() {
		t.Errorf("FromFloat(pi) error = %v, want %v", f.Error(), math.Pi-f.Float64())
	}
	if f.Den() <= 1 {
		t.Errorf("FromFloat(pi) = %v", f)
	}
	if !FromFloat(math.NaN()).IsNaN() || !FromFloat(math.Inf(-1)).Equal(NegativeInfinity) {
		t.Error("non finite inputs")
	}
	if !UFromFloat(-1).IsNaN() {
		t.Error("UFromFloat(-1) is not NaN")
	}
}

func TestOutOfRangeIsClamped(t *testing.T) {
	tests := []struct {
		name string
		got  Fraction
		want Fraction
	}{
		{"FromFloat(1e20)", FromFloat(1e20), MaxValue},
		{"FromFloat(1<<31)", FromFloat(1 << 31), MaxValue},
		{"FromFloat(-1e20)", FromFloat(-1e20), MinValue},
		{"New(MinInt32, -1)", New(math.MinInt32, -1), MaxValue},
		{"MaxValue + 1", MaxValue.Add(FromInt(1)), MaxValue},
		{"MinValue - 1", MinValue.Sub(FromInt(1)), MinValue},
	}
	for _, tt := range tests {
		if tt.got.IsInf() || tt.got.Num() != tt.want.Num() || tt.got.Den() != tt.want.Den() {
			t.Errorf("%s = %v, want %v", tt.name, tt.got, tt.want)
		}
	}
	if u := UFromFloat(1e20); u.IsInf() || u.Num() != math.MaxUint32 || u.Den() != 1 {
		t.Errorf("UFromFloat(1e20) = %v", u)
	}
	if u := UMaxValue.Add(NewU(1, 1)); u.IsInf() || u.Num() != math.MaxUint32 || u.Den() != 1 {
		t.Errorf("UMaxValue + 1 = %v", u)
	}
}

func TestFromFloatFixpoint(t *testing.T) {
	for _, v := range []float64{0.5, 0.75, 1.0 / 3, 2.0 / 7, 22.0 / 7, -3.125, 355.0 / 113, 3, 0} {
		f := FromFloat(v)
		g := FromFloat(f.Float64())
		if g.Num() != f.Num() || g.Den() != f.Den() {
			t.Errorf("FromFloat(%v) = %v but FromFloat(%v) = %v", v, f, f.Float64(), g)
		}
	}
}

func TestParse(t *testing.T) {
	tests := []struct {
		in   string
		n, d int32
	}{
		{"3/4", 3, 4},
		{" -6 / 8 ", -3, 4},
		{"7", 7, 1},
		{"0.25", 1, 4},
	}
	for _, tt := range tests {
		f, err := Parse(tt.in)
		if err != nil {
			t.Errorf("Parse(%q): %v", tt.in, err)
			continue
		}
		if f.Num() != tt.n || f.Den() != tt.d {
			t.Errorf("Parse(%q) = %v", tt.in, f)
		}
	}
	for _, bad := range []string{"1/2/3", "a/2", "1/b", "", "x"} {
		if _, err := Parse(bad); err == nil {
			t.Errorf("Parse(%q) succeeded", bad)
		}
	}
	u, err := ParseU("72/1")
	if err != nil || u.Num() != 72 || u.Den() != 1 {
		t.Errorf("ParseU(72/1) = %v, %v", u, err)
	}
	if _, err := ParseU("-0.5"); err == nil {
		t.Error("ParseU accepted a negative value")
	}
}

func TestStringAndInt(t *testing.T) {
	if s := New(-3, 4).String(); s != "-3/4" {
		t.Errorf("String() = %q", s)
	}
	if s := NewU(72, 1).String(); s != "72/1" {
		t.Errorf("String() = %q", s)
	}
	if n, ok := New(-7, 2).Int(); !ok || n != -3 {
		t.Errorf("Int() = %d, %v", n, ok)
	}
	if n, ok := NewU(7, 2).Int(); !ok || n != 3 {
		t.Errorf("Int() = %d, %v", n, ok)
	}
}
