// Package int128 provides a signed 128-bit integer, sufficient for
// nanosecond counts spanning the full range of a hifi.Duration.
package int128

import (
	"math"
	"math/big"
	"math/bits"
)

// Int is a signed 128-bit integer in two's complement form.
// The zero value is 0.
type Int struct {
	hi uint64
	lo uint64
}

var (
	// Max is the largest representable value, 2^127 - 1.
	Max = Int{hi: math.MaxInt64, lo: math.MaxUint64}
	// Min is the smallest representable value, -2^127.
	Min = Int{hi: 1 << 63}
)

// FromInt64 widens v.
func FromInt64(v int64) Int {
	return Int{hi: uint64(v >> 63), lo: uint64(v)}
}

// FromUint64 widens v.
func FromUint64(v uint64) Int {
	return Int{lo: v}
}

// FromFloat64 truncates f toward zero. The second result is false when f is
// NaN or does not fit, in which case the result is saturated (NaN yields 0).
func FromFloat64(f float64) (Int, bool) {
	switch {
	case math.IsNaN(f):
		return Int{}, false
	case f >= 0x1p127:
		return Max, false
	case f < -0x1p127:
		return Min, false
	}
	neg := f < 0
	f = math.Trunc(math.Abs(f))
	hi := math.Floor(f / 0x1p64)
	lo := f - hi*0x1p64
	m := Int{hi: uint64(hi), lo: uint64(lo)}
	if neg {
		m = m.Neg()
	}
	return m, true
}

// Sign returns -1, 0 or +1.
func (a Int) Sign() int {
	switch {
	case int64(a.hi) < 0:
		return -1
	case a.hi == 0 && a.lo == 0:
		return 0
	}
	return 1
}

// IsZero reports whether a == 0.
func (a Int) IsZero() bool {
	return a.hi == 0 && a.lo == 0
}

// Cmp returns -1, 0 or +1 as a is less than, equal to, or greater than b.
func (a Int) Cmp(b Int) int {
	if a.hi != b.hi {
		if int64(a.hi) < int64(b.hi) {
			return -1
		}
		return 1
	}
	switch {
	case a.lo < b.lo:
		return -1
	case a.lo > b.lo:
		return 1
	}
	return 0
}

// Add returns a + b, wrapping on overflow.
func (a Int) Add(b Int) Int {
	lo, carry := bits.Add64(a.lo, b.lo, 0)
	hi, _ := bits.Add64(a.hi, b.hi, carry)
	return Int{hi: hi, lo: lo}
}

// Sub returns a - b, wrapping on overflow.
func (a Int) Sub(b Int) Int {
	lo, borrow := bits.Sub64(a.lo, b.lo, 0)
	hi, _ := bits.Sub64(a.hi, b.hi, borrow)
	return Int{hi: hi, lo: lo}
}

// Neg returns -a. Neg(Min) is Min.
func (a Int) Neg() Int {
	return Int{}.Sub(a)
}

// Abs returns |a|. Abs(Min) is Min.
func (a Int) Abs() Int {
	if a.Sign() < 0 {
		return a.Neg()
	}
	return a
}

// IsInt64 reports whether a fits in an int64.
func (a Int) IsInt64() bool {
	return a.hi == uint64(int64(a.lo)>>63)
}

// Int64 returns the low 64 bits of a as an int64.
func (a Int) Int64() int64 {
	return int64(a.lo)
}

// IsUint64 reports whether a fits in a uint64.
func (a Int) IsUint64() bool {
	return a.hi == 0
}

// Uint64 returns the low 64 bits of a.
func (a Int) Uint64() uint64 {
	return a.lo
}

// Float64 returns the nearest float64 to a.
func (a Int) Float64() float64 {
	if a.IsInt64() {
		return float64(a.Int64())
	}
	neg := a.Sign() < 0
	m := a
	if neg {
		m = a.Neg()
	}
	f := float64(m.hi)*0x1p64 + float64(m.lo)
	if neg {
		return -f
	}
	return f
}

// Big returns a as a new big.Int.
func (a Int) Big() *big.Int {
	neg := a.Sign() < 0
	m := a
	if neg {
		m = a.Neg()
	}
	b := new(big.Int).SetUint64(m.hi)
	b.Lsh(b, 64)
	b.Or(b, new(big.Int).SetUint64(m.lo))
	if neg {
		b.Neg(b)
	}
	return b
}

// FromBig converts b. The second result is false when b does not fit.
func FromBig(b *big.Int) (Int, bool) {
	if b.BitLen() > 127 {
		// -2^127 is the only 128-bit magnitude that still fits.
		if b.Sign() < 0 && b.BitLen() == 128 && b.TrailingZeroBits() == 127 {
			return Min, true
		}
		if b.Sign() < 0 {
			return Min, false
		}
		return Max, false
	}
	m := new(big.Int).Abs(b)
	lo := new(big.Int).And(m, new(big.Int).SetUint64(math.MaxUint64)).Uint64()
	hi := new(big.Int).Rsh(m, 64).Uint64()
	r := Int{hi: hi, lo: lo}
	if b.Sign() < 0 {
		r = r.Neg()
	}
	return r, true
}

// magnitude returns |a| as an unsigned pair; valid for Min as well.
func (a Int) magnitude() (hi, lo uint64) {
	if a.Sign() < 0 {
		n := a.Neg()
		return n.hi, n.lo
	}
	return a.hi, a.lo
}

// fromMagnitude applies a sign to an unsigned 128-bit magnitude.
// ok is false when the magnitude does not fit the signed range.
func fromMagnitude(hi, lo uint64, negative bool) (Int, bool) {
	if negative {
		if hi > 1<<63 || (hi == 1<<63 && lo != 0) {
			return Min, false
		}
		return Int{hi: hi, lo: lo}.Neg(), true
	}
	if hi >= 1<<63 {
		return Max, false
	}
	return Int{hi: hi, lo: lo}, true
}

// Mul returns a * b. When the product overflows, ok is false and the
// result is saturated to Max or Min according to the sign of the product.
func (a Int) Mul(b Int) (Int, bool) {
	negative := (a.Sign() < 0) != (b.Sign() < 0)
	if a.IsZero() || b.IsZero() {
		return Int{}, true
	}
	ahi, alo := a.magnitude()
	bhi, blo := b.magnitude()
	if ahi != 0 && bhi != 0 {
		return saturate(negative), false
	}

	hi, lo := bits.Mul64(alo, blo)

	c1hi, c1lo := bits.Mul64(ahi, blo)
	c2hi, c2lo := bits.Mul64(alo, bhi)
	if c1hi != 0 || c2hi != 0 {
		return saturate(negative), false
	}
	var carry uint64
	hi, carry = bits.Add64(hi, c1lo, 0)
	if carry != 0 {
		return saturate(negative), false
	}
	hi, carry = bits.Add64(hi, c2lo, 0)
	if carry != 0 {
		return saturate(negative), false
	}

	r, ok := fromMagnitude(hi, lo, negative)
	if !ok {
		return saturate(negative), false
	}
	return r, true
}

func saturate(negative bool) Int {
	if negative {
		return Min
	}
	return Max
}

// QuoRem returns the quotient truncated toward zero and the remainder,
// which carries the sign of a, matching Go's / and % operators.
// Division by zero returns ok == false and zero results.
// Min.QuoRem(-1) saturates the quotient to Max.
func (a Int) QuoRem(b Int) (q, r Int, ok bool) {
	if b.IsZero() {
		return Int{}, Int{}, false
	}
	ahi, alo := a.magnitude()
	bhi, blo := b.magnitude()
	qhi, qlo, rhi, rlo := divmod(ahi, alo, bhi, blo)

	qneg := (a.Sign() < 0) != (b.Sign() < 0)
	q, qok := fromMagnitude(qhi, qlo, qneg)
	r, _ = fromMagnitude(rhi, rlo, a.Sign() < 0)
	return q, r, qok
}

// DivModEuclid returns the Euclidean quotient and remainder, the remainder
// always being in [0, |b|).
func (a Int) DivModEuclid(b Int) (q, r Int, ok bool) {
	q, r, ok = a.QuoRem(b)
	if !ok {
		return q, r, ok
	}
	if r.Sign() < 0 {
		if b.Sign() > 0 {
			q = q.Sub(FromInt64(1))
			r = r.Add(b)
		} else {
			q = q.Add(FromInt64(1))
			r = r.Sub(b)
		}
	}
	return q, r, true
}

// divmod divides unsigned 128-bit magnitudes. Both magnitudes are at most 2^127.
func divmod(nhi, nlo, dhi, dlo uint64) (qhi, qlo, rhi, rlo uint64) {
	if dhi == 0 {
		if nhi < dlo {
			q, r := bits.Div64(nhi, nlo, dlo)
			return 0, q, 0, r
		}
		qhi = nhi / dlo
		q, r := bits.Div64(nhi%dlo, nlo, dlo)
		return qhi, q, 0, r
	}

	// Shift-subtract long division; the divisor exceeds 64 bits, so the
	// quotient fits in 64 bits.
	for i := 127; i >= 0; i-- {
		rhi = rhi<<1 | rlo>>63
		rlo <<= 1
		var bit uint64
		if i >= 64 {
			bit = (nhi >> uint(i-64)) & 1
		} else {
			bit = (nlo >> uint(i)) & 1
		}
		rlo |= bit
		if rhi > dhi || (rhi == dhi && rlo >= dlo) {
			var borrow uint64
			rlo, borrow = bits.Sub64(rlo, dlo, 0)
			rhi, _ = bits.Sub64(rhi, dhi, borrow)
			if i >= 64 {
				qhi |= 1 << uint(i-64)
			} else {
				qlo |= 1 << uint(i)
			}
		}
	}
	return qhi, qlo, rhi, rlo
}
