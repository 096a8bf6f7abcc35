package hifi

import (
	"strconv"
	"strings"

	"github.com/clipperhouse/hifi/internal/int128"
)

// DurationParts is the human-friendly breakdown of the magnitude of a
// Duration. The direction is carried by Sign alone.
type DurationParts struct {
	Sign         int
	Days         uint64
	Hours        uint64
	Minutes      uint64
	Seconds      uint64
	Milliseconds uint64
	Microseconds uint64
	Nanoseconds  uint64
}

// Decompose splits the magnitude of d into days, hours, minutes, seconds,
// milliseconds, microseconds and nanoseconds.
func (d Duration) Decompose() DurationParts {
	days, rem, _ := d.total().Abs().QuoRem(int128.FromInt64(NanosecondsPerDay))
	ns := rem.Uint64()

	p := DurationParts{Sign: d.Signum(), Days: days.Uint64()}
	p.Hours, ns = ns/NanosecondsPerHour, ns%NanosecondsPerHour
	p.Minutes, ns = ns/NanosecondsPerMinute, ns%NanosecondsPerMinute
	p.Seconds, ns = ns/NanosecondsPerSecond, ns%NanosecondsPerSecond
	p.Milliseconds, ns = ns/NanosecondsPerMillisecond, ns%NanosecondsPerMillisecond
	p.Microseconds, ns = ns/NanosecondsPerMicrosecond, ns%NanosecondsPerMicrosecond
	p.Nanoseconds = ns
	return p
}

// Duration recomposes the parts, saturating on overflow.
func (p DurationParts) Duration() Duration {
	return Compose(p.Sign, p.Days, p.Hours, p.Minutes, p.Seconds, p.Milliseconds, p.Microseconds, p.Nanoseconds)
}

// Compose builds a duration from its components; a negative sign negates the sum.
func Compose(sign int, days, hours, minutes, seconds, milliseconds, microseconds, nanoseconds uint64) Duration {
	d := Day.Times(clampInt64(days)).
		Add(Hour.Times(clampInt64(hours))).
		Add(Minute.Times(clampInt64(minutes))).
		Add(Second.Times(clampInt64(seconds))).
		Add(Millisecond.Times(clampInt64(milliseconds))).
		Add(Microsecond.Times(clampInt64(microseconds))).
		Add(Nanosecond.Times(clampInt64(nanoseconds)))
	if sign < 0 {
		return d.Neg()
	}
	return d
}

// ComposeFloat is Compose with fractional components.
func ComposeFloat(sign int, days, hours, minutes, seconds, milliseconds, microseconds, nanoseconds float64) Duration {
	d := FromDays(days).
		Add(FromHours(hours)).
		Add(Minute.TimesFloat(minutes)).
		Add(FromSeconds(seconds)).
		Add(FromMilliseconds(milliseconds)).
		Add(FromMicroseconds(microseconds)).
		Add(FromNanoseconds(nanoseconds))
	if sign < 0 {
		return d.Neg()
	}
	return d
}

func clampInt64(v uint64) int64 {
	if v > 1<<63-1 {
		return 1<<63 - 1
	}
	return int64(v)
}

// Subdivision returns the component of d in the given unit, e.g. the minutes
// of 2 h 3 min 4 s are 3 min. Weeks and centuries are not components, so ok is false.
func (d Duration) Subdivision(unit Unit) (sub Duration, ok bool) {
	p := d.Decompose()
	var n uint64
	switch unit {
	case Nanosecond:
		n = p.Nanoseconds
	case Microsecond:
		n = p.Microseconds
	case Millisecond:
		n = p.Milliseconds
	case Second:
		n = p.Seconds
	case Minute:
		n = p.Minutes
	case Hour:
		n = p.Hours
	case Day:
		n = p.Days
	default:
		return Zero, false
	}
	return unit.Times(clampInt64(n)), true
}

// String formats d as space-separated components, e.g. "-1 day 2 h 3 min 4 ns".
// Zero components are omitted and Zero is "0 ns". The output parses back with ParseDuration.
func (d Duration) String() string {
	if d.IsZero() {
		return "0 ns"
	}
	p := d.Decompose()

	var b strings.Builder
	if p.Sign < 0 {
		b.WriteString("-")
	}
	write := func(v uint64, unit string) {
		if v == 0 {
			return
		}
		if b.Len() > 0 && !(b.Len() == 1 && p.Sign < 0) {
			b.WriteByte(' ')
		}
		b.WriteString(strconv.FormatUint(v, 10))
		b.WriteByte(' ')
		b.WriteString(unit)
	}

	if p.Days == 1 {
		write(p.Days, "day")
	} else {
		write(p.Days, "days")
	}
	write(p.Hours, "h")
	write(p.Minutes, "min")
	write(p.Seconds, "s")
	write(p.Milliseconds, "ms")
	write(p.Microseconds, "μs")
	write(p.Nanoseconds, "ns")
	return b.String()
}
