package hifi

// withTime rebuilds e on its own calendar day with the given time of day.
// Fields are not validated: 25 h rolls over into the next day.
func (e Epoch) withTime(hours, minutes, seconds uint8, nanos uint32) Epoch {
	g := e.ToGregorian()
	day := Day.Times(gregorianDays(g.Year, g.Month, g.Day))
	count := day.
		Add(Hour.Times(int64(hours))).
		Add(Minute.Times(int64(minutes))).
		Add(Second.Times(int64(seconds))).
		Add(Nanosecond.Times(int64(nanos)))
	return defaultConverter.fromCalendarCount(count, e.scale)
}

// WithHMS returns e with its hours, minutes and seconds replaced, keeping the
// date and the fraction of a second.
func (e Epoch) WithHMS(hours, minutes, seconds uint8) Epoch {
	return e.withTime(hours, minutes, seconds, e.ToGregorian().Nanosecond)
}

// WithHMSFrom returns e with the hours, minutes and seconds of other, read in
// the time scale of e. The fraction of a second of e is kept.
func (e Epoch) WithHMSFrom(other Epoch) Epoch {
	o := other.ToGregorianIn(e.scale)
	return e.withTime(o.Hour, o.Minute, o.Second, e.ToGregorian().Nanosecond)
}

// WithTimeFrom returns e with the whole time of day of other, read in the time scale of e.
func (e Epoch) WithTimeFrom(other Epoch) Epoch {
	o := other.ToGregorianIn(e.scale)
	return e.withTime(o.Hour, o.Minute, o.Second, o.Nanosecond)
}

// WithHMSStrict returns e with the given time of day and no fraction of a second.
func (e Epoch) WithHMSStrict(hours, minutes, seconds uint8) Epoch {
	return e.withTime(hours, minutes, seconds, 0)
}

// WithHMSStrictFrom returns e with the hours, minutes and seconds of other and
// no fraction of a second.
func (e Epoch) WithHMSStrictFrom(other Epoch) Epoch {
	o := other.ToGregorianIn(e.scale)
	return e.withTime(o.Hour, o.Minute, o.Second, 0)
}
