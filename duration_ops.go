package hifi

import (
	"math"

	"github.com/clipperhouse/hifi/internal/int128"
)

// Add returns d + o, saturating at MinDuration and MaxDuration.
func (d Duration) Add(o Duration) Duration {
	// both nanosecond fields are at most one century, so the sum cannot wrap a uint64
	return fromWide(int64(d.centuries)+int64(o.centuries), d.nanoseconds+o.nanoseconds)
}

// Sub returns d - o, saturating at MinDuration and MaxDuration.
func (d Duration) Sub(o Duration) Duration {
	return d.Add(o.Neg())
}

// Mul returns d × q, saturating on overflow.
func (d Duration) Mul(q int64) Duration {
	p, _ := d.total().Mul(int128.FromInt64(q))
	return fromTotal(p)
}

// maxPrecision bounds the decimal digits searched by MulFloat.
const maxPrecision = 18

// MulFloat returns d × q. The decimal precision of q is found first so that
// factors such as 0.5 or 1.25 are applied exactly.
func (d Duration) MulFloat(q float64) Duration {
	switch {
	case math.IsNaN(q), d.IsZero():
		return Zero
	case math.IsInf(q, 0):
		if (q > 0) == (d.Signum() > 0) {
			return MaxDuration
		}
		return MinDuration
	}

	p := 0
	scaled := q
	for p < maxPrecision && !isIntegral(scaled) {
		p++
		scaled = q * math.Pow10(p)
	}

	factor, _ := int128.FromFloat64(math.Round(scaled))
	product, ok := d.total().Mul(factor)
	if !ok {
		return fromFloatNanoseconds(d.total().Float64() * q)
	}
	if p == 0 {
		return fromTotal(product)
	}
	quotient, _, _ := product.QuoRem(int128.FromInt64(int64(math.Pow10(p))))
	return fromTotal(quotient)
}

// isIntegral reports whether f is an integer within float64 rounding error.
func isIntegral(f float64) bool {
	return math.Abs(math.Round(f)-f) <= 8*epsilon64*math.Max(1, math.Abs(f))
}

const epsilon64 = 2.220446049250313e-16

// Div returns d / q truncated toward zero. Dividing by zero saturates to
// MaxDuration or MinDuration following the sign of d, and leaves Zero unchanged.
func (d Duration) Div(q int64) Duration {
	if q == 0 {
		return d.saturateBySign()
	}
	quotient, _, ok := d.total().QuoRem(int128.FromInt64(q))
	if !ok {
		return d.saturateBySign()
	}
	return fromTotal(quotient)
}

// DivFloat returns d / q, see MulFloat. Dividing by zero behaves as Div.
func (d Duration) DivFloat(q float64) Duration {
	if q == 0 {
		return d.saturateBySign()
	}
	return d.MulFloat(1 / q)
}

func (d Duration) saturateBySign() Duration {
	switch d.Signum() {
	case 1:
		return MaxDuration
	case -1:
		return MinDuration
	}
	return Zero
}

// Floor truncates d to a multiple of unit, toward zero. A negative
// duration shorter than unit floors to Zero. A zero unit returns d.
func (d Duration) Floor(unit Duration) Duration {
	total := d.total()
	_, rem, ok := total.QuoRem(unit.total())
	if !ok {
		return d
	}
	return fromTotal(total.Sub(rem))
}

// Ceil returns Floor(unit) + |unit|, saturating at MaxDuration.
func (d Duration) Ceil(unit Duration) Duration {
	if unit.IsZero() {
		return d
	}
	return d.Floor(unit).Add(unit.Abs())
}

// Round returns whichever of Floor(unit) and Ceil(unit) is closer to d,
// preferring Ceil on ties.
func (d Duration) Round(unit Duration) Duration {
	if unit.IsZero() {
		return d
	}
	floored := d.Floor(unit)
	ceiled := d.Ceil(unit)
	if d.Sub(floored).Compare(ceiled.Sub(d)) < 0 {
		return floored
	}
	return ceiled
}

// Approx rounds d to one of its largest non-zero component among days, hours,
// minutes, seconds, milliseconds, microseconds and nanoseconds:
// 2 h 3 min becomes 2 h and 36 h 1 min becomes 2 days.
func (d Duration) Approx() Duration {
	p := d.Decompose()
	var unit Unit
	switch {
	case p.Days > 0:
		unit = Day
	case p.Hours > 0:
		unit = Hour
	case p.Minutes > 0:
		unit = Minute
	case p.Seconds > 0:
		unit = Second
	case p.Milliseconds > 0:
		unit = Millisecond
	case p.Microseconds > 0:
		unit = Microsecond
	default:
		unit = Nanosecond
	}
	return d.Round(unit.Duration())
}
