package hifi

import (
	"math"

	"github.com/clipperhouse/hifi/internal/int128"
)

// NAIF SPICE constants for Ephemeris Time.
const (
	naifM0 = 6.239996
	naifM1 = 1.99096871e-7
	naifEB = 1.671e-2
	naifK  = 1.657e-3
)

const (
	ttOffsetSeconds = TTOffsetMilliseconds / 1_000.0
	// tdbMaxIterations and tdbTolerance bound the TAI to TDB fixed point search.
	tdbMaxIterations = 5
	tdbTolerance     = 1e-9
	etIterations     = 5
)

var (
	nsPerDay128  = int128.FromInt64(NanosecondsPerDay)
	nsPerWeek128 = int128.FromInt64(NanosecondsPerWeek)
)

// Converter performs time scale conversions against a specific leap second
// table. The zero value uses LatestLeapSeconds, as do the Epoch methods.
type Converter struct {
	leaps LeapSecondProvider
}

var defaultConverter = Converter{}

// NewConverter returns a Converter using provider for UTC conversions. A nil
// provider selects LatestLeapSeconds; an empty LeapSecondsTable makes UTC equal TAI.
func NewConverter(provider LeapSecondProvider) Converter {
	return Converter{leaps: provider}
}

func (c Converter) provider() LeapSecondProvider {
	if c.leaps == nil {
		return LatestLeapSeconds
	}
	return c.leaps
}

// FromDuration returns the epoch d after the reference epoch of scale.
func (c Converter) FromDuration(d Duration, scale TimeScale) Epoch {
	return Epoch{tai: c.toTAI(d, scale), scale: scale}
}

// DurationIn returns the duration from the reference epoch of scale to e, measured in scale.
func (c Converter) DurationIn(e Epoch, scale TimeScale) Duration {
	d, _ := c.fromTAI(e.tai, scale)
	return d
}

// ToTimeScale returns e expressed in scale.
func (c Converter) ToTimeScale(e Epoch, scale TimeScale) Epoch {
	return Epoch{tai: e.tai, scale: scale}
}

// LeapSeconds returns TAI - UTC at e, see Epoch.LeapSeconds.
func (c Converter) LeapSeconds(e Epoch, iersOnly bool) (float64, bool) {
	utc, _ := c.taiToUTC(e.tai)
	return LookupLeapSeconds(c.provider(), utc.ToSeconds(), iersOnly)
}

// ToMJDDays returns the modified Julian date of e, counted in scale.
func (c Converter) ToMJDDays(e Epoch, scale TimeScale) float64 {
	return c.calendarCount(e, scale).ToUnit(Day) + MJDJ1900
}

func (c Converter) toTAI(d Duration, scale TimeScale) Duration {
	switch scale {
	case TAI:
		return d
	case TT:
		return d.Sub(ttOffset)
	case UTC:
		return c.utcToTAI(d)
	case ET:
		return etToTAI(d)
	case TDB:
		return tdbToTAI(d)
	}
	return d.Add(scale.referenceOffset())
}

// fromTAI also reports whether tai falls inside an inserted UTC leap second.
func (c Converter) fromTAI(tai Duration, scale TimeScale) (d Duration, inLeap bool) {
	switch scale {
	case TAI:
		return tai, false
	case TT:
		return tai.Add(ttOffset), false
	case UTC:
		return c.taiToUTC(tai)
	case ET:
		return taiToET(tai), false
	case TDB:
		return taiToTDB(tai), false
	}
	return tai.Sub(scale.referenceOffset()), false
}

// calendarCount is the duration since 1900-01-01T00:00:00 on the clock of
// scale, the count Gregorian dates and Julian days are derived from.
func (c Converter) calendarCount(e Epoch, scale TimeScale) Duration {
	return c.DurationIn(e, scale).Add(scale.calendarOrigin())
}

func (c Converter) fromCalendarCount(count Duration, scale TimeScale) Epoch {
	return c.FromDuration(count.Sub(scale.calendarOrigin()), scale)
}

// utcToTAI uses the IERS record in force at the UTC instant.
func (c Converter) utcToTAI(utc Duration) Duration {
	records := c.provider().LeapSeconds()
	for i := len(records) - 1; i >= 0; i-- {
		r := records[i]
		if !r.AnnouncedByIERS {
			continue
		}
		if utc.CompareSigned(FromSeconds(r.TimestampTAISeconds)) >= 0 {
			return utc.Add(FromSeconds(r.DeltaAT))
		}
	}
	return utc
}

// taiToUTC uses the IERS record in force at the TAI instant: a record applies
// from its timestamp plus its own offset, counted in TAI.
func (c Converter) taiToUTC(tai Duration) (utc Duration, inLeap bool) {
	records := c.provider().LeapSeconds()
	next := -1
	for i := len(records) - 1; i >= 0; i-- {
		r := records[i]
		if !r.AnnouncedByIERS {
			continue
		}
		delta := FromSeconds(r.DeltaAT)
		if tai.CompareSigned(FromSeconds(r.TimestampTAISeconds).Add(delta)) < 0 {
			next = i
			continue
		}
		utc = tai.Sub(delta)
		if next >= 0 {
			n := records[next]
			inLeap = n.DeltaAT-r.DeltaAT == 1 && utc.CompareSigned(FromSeconds(n.TimestampTAISeconds)) >= 0
		}
		return utc, inLeap
	}
	return tai, false
}

// deltaETTAI is ET - TAI in seconds at the given ET seconds past J2000.
func deltaETTAI(seconds float64) float64 {
	m := naifM0 + seconds*naifM1
	e := m + naifEB*math.Sin(m)
	return ttOffsetSeconds + naifK*math.Sin(e)
}

func etCorrection(seconds float64) float64 {
	m := naifM0 + naifM1*seconds
	return -naifK * math.Sin(m+naifEB*math.Sin(m))
}

func taiToET(tai Duration) Duration {
	seconds := tai.Sub(j2000Reference).ToSeconds()
	for range etIterations {
		seconds -= etCorrection(seconds)
	}
	return tai.Add(FromSeconds(deltaETTAI(seconds + ttOffsetSeconds))).Sub(j2000Reference)
}

func etToTAI(et Duration) Duration {
	seconds := et.ToSeconds()
	for range etIterations {
		seconds += etCorrection(seconds)
	}
	return et.Sub(FromSeconds(deltaETTAI(seconds - ttOffsetSeconds))).Add(j2000Reference)
}

// esaG is the periodic part of TDB - TT in seconds, per the ESA Navipedia model.
func esaG(seconds float64) float64 {
	g := 2*math.Pi/360*357.528 + 1.990_910_018_065_731e-7*seconds
	return 1.658e-3 * math.Sin(g+1.67e-2*math.Sin(g))
}

func taiToTDB(tai Duration) Duration {
	orig := tai.Sub(j2000Reference).ToSeconds()
	seconds := orig
	for range tdbMaxIterations {
		next := orig - esaG(seconds)
		converged := math.Abs(next-seconds) < tdbTolerance
		seconds = next
		if converged {
			break
		}
	}
	gamma := FromSeconds(esaG(seconds + ttOffsetSeconds))
	return tai.Add(gamma).Add(ttOffset).Sub(j2000Reference)
}

func tdbToTAI(tdb Duration) Duration {
	gamma := FromSeconds(esaG(tdb.ToSeconds()))
	return tdb.Sub(gamma.Add(ttOffset)).Add(j2000Reference)
}
