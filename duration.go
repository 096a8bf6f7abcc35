package hifi

import (
	"math"
	"math/big"
	"time"

	"github.com/clipperhouse/hifi/internal/int128"
)

// Duration is a signed span of time with nanosecond resolution, covering
// about ±32,768 centuries.
//
// The total number of nanoseconds is centuries × NanosecondsPerCentury + nanoseconds,
// where nanoseconds is always in [0, NanosecondsPerCentury). Negative durations
// therefore count their nanoseconds into the negative century, like BC years:
// one nanosecond before Zero is {centuries: -1, nanoseconds: NanosecondsPerCentury-1}.
//
// Duration is an immutable value; every operation returns a new one and
// arithmetic saturates at MinDuration and MaxDuration rather than failing.
//
// Equality and ordering through Equal and Compare consider the magnitude only,
// so a duration and its negation compare equal. Use Signum to recover the
// direction, CompareSigned for the signed order, or == for exact identity.
type Duration struct {
	centuries   int16
	nanoseconds uint64
}

var (
	// Zero is the zero duration.
	Zero = Duration{}
	// MaxDuration is the largest positive duration, 32,768 centuries.
	MaxDuration = Duration{centuries: math.MaxInt16, nanoseconds: NanosecondsPerCentury}
	// MinDuration is the largest negative duration, -32,768 centuries.
	MinDuration = Duration{centuries: math.MinInt16}
	// Epsilon is one nanosecond.
	Epsilon = Duration{nanoseconds: 1}
	// MinPositiveDuration is the smallest positive duration.
	MinPositiveDuration = Epsilon
	// MinNegativeDuration is the negative duration closest to zero, -1 ns.
	MinNegativeDuration = Duration{centuries: -1, nanoseconds: NanosecondsPerCentury - 1}
)

var (
	nsPerCentury128 = int128.FromUint64(NanosecondsPerCentury)
	maxTotal128     = mul128(int128.FromInt64(math.MaxInt16+1), nsPerCentury128)
	minTotal128     = mul128(int128.FromInt64(math.MinInt16), nsPerCentury128)
)

func mul128(a, b int128.Int) int128.Int {
	p, _ := a.Mul(b)
	return p
}

// FromParts builds a duration from a century count and nanoseconds into that
// century. Nanoseconds beyond one century are carried into the centuries,
// saturating at MaxDuration.
func FromParts(centuries int16, nanoseconds uint64) Duration {
	return fromWide(int64(centuries), nanoseconds)
}

// fromWide normalizes a century count that may exceed int16.
func fromWide(centuries int64, nanoseconds uint64) Duration {
	centuries += int64(nanoseconds / NanosecondsPerCentury)
	nanoseconds %= NanosecondsPerCentury
	switch {
	case centuries > math.MaxInt16:
		return MaxDuration
	case centuries < math.MinInt16:
		return MinDuration
	}
	return Duration{centuries: int16(centuries), nanoseconds: nanoseconds}
}

// FromTotalNanoseconds builds a duration from a signed nanosecond count.
func FromTotalNanoseconds(nanos int64) Duration {
	centuries := nanos / NanosecondsPerCentury
	rem := nanos % NanosecondsPerCentury
	if rem < 0 {
		centuries--
		rem += NanosecondsPerCentury
	}
	return Duration{centuries: int16(centuries), nanoseconds: uint64(rem)}
}

// FromBigNanoseconds builds a duration from an arbitrarily large nanosecond
// count, failing with ErrOverflow or ErrUnderflow outside of
// [MinDuration, MaxDuration].
func FromBigNanoseconds(nanos *big.Int) (Duration, error) {
	total, ok := int128.FromBig(nanos)
	if !ok || total.Cmp(maxTotal128) > 0 {
		if nanos.Sign() < 0 {
			return MinDuration, ErrUnderflow
		}
		return MaxDuration, ErrOverflow
	}
	if total.Cmp(minTotal128) < 0 {
		return MinDuration, ErrUnderflow
	}
	return fromTotal(total), nil
}

// fromTotal converts a 128-bit nanosecond count, saturating at the bounds.
func fromTotal(total int128.Int) Duration {
	if total.IsInt64() {
		return FromTotalNanoseconds(total.Int64())
	}
	if total.Cmp(maxTotal128) >= 0 {
		return MaxDuration
	}
	if total.Cmp(minTotal128) <= 0 {
		return MinDuration
	}
	q, r, _ := total.DivModEuclid(nsPerCentury128)
	return Duration{centuries: int16(q.Int64()), nanoseconds: r.Uint64()}
}

// fromFloatNanoseconds truncates a nanosecond count toward zero, saturating.
func fromFloatNanoseconds(ns float64) Duration {
	if math.IsNaN(ns) {
		return Zero
	}
	if math.Abs(ns) < math.MaxInt64 {
		return FromTotalNanoseconds(int64(ns))
	}
	total, _ := int128.FromFloat64(ns)
	return fromTotal(total)
}

// FromSeconds returns a duration of the given number of seconds.
func FromSeconds(seconds float64) Duration {
	return Second.TimesFloat(seconds)
}

// FromDays returns a duration of the given number of days.
func FromDays(days float64) Duration {
	return Day.TimesFloat(days)
}

// FromHours returns a duration of the given number of hours.
func FromHours(hours float64) Duration {
	return Hour.TimesFloat(hours)
}

// FromMilliseconds returns a duration of the given number of milliseconds.
func FromMilliseconds(ms float64) Duration {
	return Millisecond.TimesFloat(ms)
}

// FromMicroseconds returns a duration of the given number of microseconds.
func FromMicroseconds(us float64) Duration {
	return Microsecond.TimesFloat(us)
}

// FromNanoseconds returns a duration of the given number of nanoseconds,
// truncating any fraction.
func FromNanoseconds(ns float64) Duration {
	return Nanosecond.TimesFloat(ns)
}

// FromStd converts a time.Duration.
func FromStd(d time.Duration) Duration {
	return FromTotalNanoseconds(int64(d))
}

// FromTZOffset returns the duration of a timezone offset, negative when sign is negative.
func FromTZOffset(sign int, hours, minutes int64) Duration {
	d := Hour.Times(hours).Add(Minute.Times(minutes))
	if sign < 0 {
		return d.Neg()
	}
	return d
}

// Parts returns the centuries and the nanoseconds into that century.
func (d Duration) Parts() (centuries int16, nanoseconds uint64) {
	return d.centuries, d.nanoseconds
}

// Centuries returns the century counter.
func (d Duration) Centuries() int16 {
	return d.centuries
}

// Nanoseconds returns the nanoseconds into the current century.
func (d Duration) Nanoseconds() uint64 {
	return d.nanoseconds
}

func (d Duration) total() int128.Int {
	return mul128(int128.FromInt64(int64(d.centuries)), nsPerCentury128).Add(int128.FromUint64(d.nanoseconds))
}

// TotalNanosecondsBig returns the exact signed number of nanoseconds.
func (d Duration) TotalNanosecondsBig() *big.Int {
	return d.total().Big()
}

// TryTruncatedNanoseconds returns the total nanoseconds as an int64, failing
// with ErrOverflow or ErrUnderflow when they do not fit (beyond ±292 years).
func (d Duration) TryTruncatedNanoseconds() (int64, error) {
	t := d.total()
	if !t.IsInt64() {
		if t.Sign() < 0 {
			return math.MinInt64, ErrUnderflow
		}
		return math.MaxInt64, ErrOverflow
	}
	return t.Int64(), nil
}

// TruncatedNanoseconds returns the total nanoseconds as an int64,
// saturating at the int64 bounds.
func (d Duration) TruncatedNanoseconds() int64 {
	ns, _ := d.TryTruncatedNanoseconds()
	return ns
}

// ToStd converts to a time.Duration, saturating at its bounds.
func (d Duration) ToStd() time.Duration {
	return time.Duration(d.TruncatedNanoseconds())
}

// ToSeconds returns the duration in seconds. Precision degrades to about a
// microsecond for durations of several centuries.
func (d Duration) ToSeconds() float64 {
	seconds := d.nanoseconds / NanosecondsPerSecond
	subseconds := d.nanoseconds % NanosecondsPerSecond
	if d.centuries == 0 {
		return float64(seconds) + float64(subseconds)*1e-9
	}
	return float64(d.centuries)*SecondsPerCentury + float64(seconds) + float64(subseconds)*1e-9
}

// ToUnit returns the duration as a floating point count of u.
func (d Duration) ToUnit(u Unit) float64 {
	return d.ToSeconds() / u.InSeconds()
}

// ToIntegerUnit returns the number of whole u in d, truncated toward zero and
// saturated to the int64 range.
func (d Duration) ToIntegerUnit(u Unit) int64 {
	q, _, _ := d.total().QuoRem(int128.FromInt64(u.nanoseconds()))
	switch {
	case q.IsInt64():
		return q.Int64()
	case q.Sign() < 0:
		return math.MinInt64
	}
	return math.MaxInt64
}

// IsZero reports whether d is exactly zero.
func (d Duration) IsZero() bool {
	return d.centuries == 0 && d.nanoseconds == 0
}

// IsNegative reports whether d is strictly negative.
func (d Duration) IsNegative() bool {
	return d.centuries < 0
}

// Signum returns -1, 0 or +1. It is 0 only for Zero.
func (d Duration) Signum() int {
	switch {
	case d.centuries < 0:
		return -1
	case d.IsZero():
		return 0
	}
	return 1
}

// Abs returns the magnitude of d.
func (d Duration) Abs() Duration {
	if d.centuries < 0 {
		return d.Neg()
	}
	return d
}

// Neg returns -d. Neg(MinDuration) is MaxDuration and vice versa.
func (d Duration) Neg() Duration {
	if d.nanoseconds == 0 {
		return fromWide(-int64(d.centuries), 0)
	}
	return fromWide(-int64(d.centuries)-1, NanosecondsPerCentury-d.nanoseconds)
}

// CompareSigned orders durations on the signed number line, returning -1, 0 or +1.
func (d Duration) CompareSigned(o Duration) int {
	switch {
	case d.centuries < o.centuries:
		return -1
	case d.centuries > o.centuries:
		return 1
	case d.nanoseconds < o.nanoseconds:
		return -1
	case d.nanoseconds > o.nanoseconds:
		return 1
	}
	return 0
}

// Compare orders durations by magnitude, returning -1, 0 or +1.
// Opposite durations such as +15 min and -15 min compare as 0.
func (d Duration) Compare(o Duration) int {
	return d.Abs().CompareSigned(o.Abs())
}

// Equal reports whether d and o have the same magnitude; see Compare.
func (d Duration) Equal(o Duration) bool {
	return d.Compare(o) == 0
}

// Less reports whether the magnitude of d is smaller than that of o.
func (d Duration) Less(o Duration) bool {
	return d.Compare(o) < 0
}

// Greater reports whether the magnitude of d is larger than that of o.
func (d Duration) Greater(o Duration) bool {
	return d.Compare(o) > 0
}

// Min returns whichever of d and o has the smaller magnitude, d on ties.
func (d Duration) Min(o Duration) Duration {
	if o.Less(d) {
		return o
	}
	return d
}

// Max returns whichever of d and o has the larger magnitude, d on ties.
func (d Duration) Max(o Duration) Duration {
	if o.Greater(d) {
		return o
	}
	return d
}
