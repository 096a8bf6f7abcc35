package hifi

import "github.com/clipperhouse/hifi/internal/int128"

// Add returns e advanced by d on the clock of its own time scale. For UTC
// this means a day is always 86,400 UTC seconds: adding 2 s to
// 1971-12-31T23:59:59 UTC lands on 1972-01-01T00:00:01 UTC, skipping the
// 10 s jump of TAI - UTC. Use AddTAI for elapsed physical time.
func (e Epoch) Add(d Duration) Epoch {
	return defaultConverter.Add(e, d)
}

// Add is Epoch.Add with the leap second table of c.
func (c Converter) Add(e Epoch, d Duration) Epoch {
	if d.IsZero() {
		return e
	}
	if e.scale == TAI {
		return Epoch{tai: e.tai.Add(d), scale: TAI}
	}
	in, _ := c.fromTAI(e.tai, e.scale)
	return c.FromDuration(in.Add(d), e.scale)
}

// AddTAI returns e advanced by d of TAI, keeping its time scale.
func (e Epoch) AddTAI(d Duration) Epoch {
	return Epoch{tai: e.tai.Add(d), scale: e.scale}
}

// Sub returns e moved back by d, see Add.
func (e Epoch) Sub(d Duration) Epoch {
	return e.Add(d.Neg())
}

// AddUnit returns e advanced by q of u, see Add.
func (e Epoch) AddUnit(q int64, u Unit) Epoch {
	return e.Add(u.Times(q))
}

// AddSeconds returns e advanced by seconds, see Add.
func (e Epoch) AddSeconds(seconds float64) Epoch {
	return e.Add(FromSeconds(seconds))
}

// Since returns the TAI duration elapsed from o to e, negative when e is earlier.
func (e Epoch) Since(o Epoch) Duration {
	return e.tai.Sub(o.tai)
}

// Compare orders epochs by instant regardless of their time scales, returning -1, 0 or +1.
func (e Epoch) Compare(o Epoch) int {
	return e.tai.CompareSigned(o.tai)
}

// Equal reports whether e and o are the same instant.
func (e Epoch) Equal(o Epoch) bool {
	return e.Compare(o) == 0
}

// Before reports whether e is earlier than o.
func (e Epoch) Before(o Epoch) bool {
	return e.Compare(o) < 0
}

// After reports whether e is later than o.
func (e Epoch) After(o Epoch) bool {
	return e.Compare(o) > 0
}

// Min returns the earlier of e and o, e on ties.
func (e Epoch) Min(o Epoch) Epoch {
	if o.Before(e) {
		return o
	}
	return e
}

// Max returns the later of e and o, e on ties.
func (e Epoch) Max(o Epoch) Epoch {
	if o.After(e) {
		return o
	}
	return e
}

// Floor returns the latest multiple of d at or before e. Multiples are counted
// in TAI from 1900-01-01T00:00:00, so during a leap second day the result may
// not fall on a round UTC time. A zero d returns e.
func (e Epoch) Floor(d Duration) Epoch {
	total := e.tai.total()
	_, rem, ok := total.DivModEuclid(d.Abs().total())
	if !ok {
		return e
	}
	return Epoch{tai: fromTotal(total.Sub(rem)), scale: e.scale}
}

// Ceil returns the earliest multiple of d at or after e, see Floor.
func (e Epoch) Ceil(d Duration) Epoch {
	floored := e.Floor(d)
	if floored.tai == e.tai {
		return e
	}
	return Epoch{tai: floored.tai.Add(d.Abs()), scale: e.scale}
}

// Round returns whichever of Floor and Ceil is closer to e, Ceil on ties.
func (e Epoch) Round(d Duration) Epoch {
	floored := e.Floor(d)
	ceiled := e.Ceil(d)
	if e.tai.Sub(floored.tai).CompareSigned(ceiled.tai.Sub(e.tai)) < 0 {
		return floored
	}
	return ceiled
}

// WeekdayIn returns the day of the week of e on the calendar of scale.
func (e Epoch) WeekdayIn(scale TimeScale) Weekday {
	return defaultConverter.WeekdayIn(e, scale)
}

// WeekdayIn is Epoch.WeekdayIn with the leap second table of c.
func (c Converter) WeekdayIn(e Epoch, scale TimeScale) Weekday {
	// 1900-01-01 was a Monday
	days, _, _ := c.calendarCount(e, scale).total().DivModEuclid(nsPerDay128)
	_, rem, _ := days.DivModEuclid(int128.FromInt64(DaysPerWeek))
	return Weekday(rem.Int64())
}

// Weekday returns the day of the week of e in TAI.
func (e Epoch) Weekday() Weekday {
	return e.WeekdayIn(TAI)
}

// WeekdayUTC returns the day of the week of e in UTC.
func (e Epoch) WeekdayUTC() Weekday {
	return e.WeekdayIn(UTC)
}

// Next returns e advanced to the next given weekday, a full week later if e
// already falls on it. The time of day is kept.
func (e Epoch) Next(weekday Weekday) Epoch {
	delta := weekday.Sub(e.WeekdayIn(e.scale))
	if delta.IsZero() {
		delta = Week.Duration()
	}
	return e.Add(delta)
}

// Previous returns e moved back to the previous given weekday, a full week
// earlier if e already falls on it. The time of day is kept.
func (e Epoch) Previous(weekday Weekday) Epoch {
	delta := e.WeekdayIn(e.scale).Sub(weekday)
	if delta.IsZero() {
		delta = Week.Duration()
	}
	return e.Sub(delta)
}

// NextWeekdayAtMidnight returns the start of the next given weekday.
func (e Epoch) NextWeekdayAtMidnight(weekday Weekday) Epoch {
	return e.Next(weekday).WithHMSStrict(0, 0, 0)
}

// NextWeekdayAtNoon returns noon of the next given weekday.
func (e Epoch) NextWeekdayAtNoon(weekday Weekday) Epoch {
	return e.Next(weekday).WithHMSStrict(12, 0, 0)
}

// PreviousWeekdayAtMidnight returns the start of the previous given weekday.
func (e Epoch) PreviousWeekdayAtMidnight(weekday Weekday) Epoch {
	return e.Previous(weekday).WithHMSStrict(0, 0, 0)
}

// PreviousWeekdayAtNoon returns noon of the previous given weekday.
func (e Epoch) PreviousWeekdayAtNoon(weekday Weekday) Epoch {
	return e.Previous(weekday).WithHMSStrict(12, 0, 0)
}
