package hifi

import (
	"math"
	"strconv"
	"strings"
)

// Unit is a human time unit, from the nanosecond to the century.
// The numeric values are stable and used in binary encodings.
type Unit uint8

const (
	Second      Unit = 0
	Nanosecond  Unit = 1
	Microsecond Unit = 2
	Millisecond Unit = 3
	Minute      Unit = 4
	Hour        Unit = 5
	Day         Unit = 6
	Century     Unit = 7
	Week        Unit = 8
)

const (
	NanosecondsPerMicrosecond = 1_000
	NanosecondsPerMillisecond = 1_000 * NanosecondsPerMicrosecond
	NanosecondsPerSecond      = 1_000 * NanosecondsPerMillisecond
	NanosecondsPerMinute      = 60 * NanosecondsPerSecond
	NanosecondsPerHour        = 60 * NanosecondsPerMinute
	NanosecondsPerDay         = 24 * NanosecondsPerHour
	NanosecondsPerWeek        = 7 * NanosecondsPerDay
	DaysPerCentury            = 36_525
	NanosecondsPerCentury     = DaysPerCentury * NanosecondsPerDay

	SecondsPerMinute  = 60.0
	SecondsPerHour    = 3_600.0
	SecondsPerDay     = 86_400.0
	SecondsPerCentury = SecondsPerDay * DaysPerCentury
	DaysPerYear       = 365.25
	DaysPerWeek       = 7
)

// UnitFromCode returns the Unit for a binary code; unknown codes yield Second.
func UnitFromCode(code uint8) Unit {
	if code > uint8(Week) {
		return Second
	}
	return Unit(code)
}

// Code returns the stable binary code of u.
func (u Unit) Code() uint8 {
	return uint8(u)
}

// nanoseconds is the exact length of one u.
func (u Unit) nanoseconds() int64 {
	switch u {
	case Nanosecond:
		return 1
	case Microsecond:
		return NanosecondsPerMicrosecond
	case Millisecond:
		return NanosecondsPerMillisecond
	case Minute:
		return NanosecondsPerMinute
	case Hour:
		return NanosecondsPerHour
	case Day:
		return NanosecondsPerDay
	case Week:
		return NanosecondsPerWeek
	case Century:
		return NanosecondsPerCentury
	}
	return NanosecondsPerSecond
}

// InSeconds returns the length of one u in seconds.
func (u Unit) InSeconds() float64 {
	switch u {
	case Century:
		return SecondsPerCentury
	case Week:
		return DaysPerWeek * SecondsPerDay
	case Day:
		return SecondsPerDay
	case Hour:
		return SecondsPerHour
	case Minute:
		return SecondsPerMinute
	case Millisecond:
		return 1e-3
	case Microsecond:
		return 1e-6
	case Nanosecond:
		return 1e-9
	}
	return 1
}

// FromSeconds returns how many u fit in one second.
func (u Unit) FromSeconds() float64 {
	return 1 / u.InSeconds()
}

// Duration returns one u as a Duration.
func (u Unit) Duration() Duration {
	return u.Times(1)
}

// Times returns q units as a Duration, saturating on overflow.
func (u Unit) Times(q int64) Duration {
	factor := u.nanoseconds()
	if q != 0 && (q > math.MaxInt64/factor || q < math.MinInt64/factor) {
		// Too large for int64, though it may still fit a Duration.
		return FromTotalNanoseconds(q).Mul(factor)
	}
	return FromTotalNanoseconds(q * factor)
}

// TimesFloat returns q units as a Duration. Sub-nanosecond precision is truncated
// toward zero, and values beyond the representable range saturate.
func (u Unit) TimesFloat(q float64) Duration {
	factor := float64(u.nanoseconds())
	switch {
	case math.IsNaN(q):
		return Zero
	case q >= math.MaxFloat64/factor:
		return MaxDuration
	case q <= -math.MaxFloat64/factor:
		return MinDuration
	}
	return fromFloatNanoseconds(q * factor)
}

// Add returns the sum of one u and one v.
func (u Unit) Add(v Unit) Duration {
	return u.Duration().Add(v.Duration())
}

// Sub returns one u minus one v.
func (u Unit) Sub(v Unit) Duration {
	return u.Duration().Sub(v.Duration())
}

func (u Unit) String() string {
	switch u {
	case Nanosecond:
		return "ns"
	case Microsecond:
		return "μs"
	case Millisecond:
		return "ms"
	case Second:
		return "s"
	case Minute:
		return "min"
	case Hour:
		return "h"
	case Day:
		return "days"
	case Week:
		return "weeks"
	case Century:
		return "centuries"
	}
	return "Unit(" + strconv.Itoa(int(u)) + ")"
}

// ParseUnit parses a unit keyword such as "ns", "min", "days" or "centuries",
// accepting every spelling ParseDuration does.
func ParseUnit(s string) (Unit, error) {
	u, ok := durationUnits[strings.TrimSpace(s)]
	if !ok {
		return Second, parseError(UnknownOrMissingUnit, s, "")
	}
	return u, nil
}

// Freq is a frequency unit; multiplying a frequency by a value yields the period.
type Freq uint8

const (
	Hertz Freq = iota
	KiloHertz
	MegaHertz
	GigaHertz
)

// Period returns the period of q of f, e.g. GigaHertz.Period(1) is one nanosecond.
// A zero frequency saturates to MaxDuration.
func (f Freq) Period(q float64) Duration {
	var perUnit float64
	switch f {
	case GigaHertz:
		perUnit = 1
	case MegaHertz:
		perUnit = NanosecondsPerMicrosecond
	case KiloHertz:
		perUnit = NanosecondsPerMillisecond
	default:
		perUnit = NanosecondsPerSecond
	}
	if q == 0 {
		return MaxDuration
	}
	return fromFloatNanoseconds(perUnit / q)
}

func (f Freq) String() string {
	switch f {
	case GigaHertz:
		return "GHz"
	case MegaHertz:
		return "MHz"
	case KiloHertz:
		return "kHz"
	}
	return "Hz"
}
