package hifi

// LeapSecond is one record of a leap second table: from TimestampTAISeconds
// (seconds since 1900-01-01T00:00:00) onward, TAI - UTC is DeltaAT seconds.
//
// Records before 1972 come from IAU SOFA and are not integral: TAI - UTC
// drifts linearly as DeltaAT + (MJD - DriftReferenceMJD) × DriftRate.
// Such records have AnnouncedByIERS false.
type LeapSecond struct {
	TimestampTAISeconds float64
	DeltaAT             float64
	AnnouncedByIERS     bool
	DriftReferenceMJD   float64
	DriftRate           float64
}

// At returns TAI - UTC in seconds at the given modified Julian date.
func (l LeapSecond) At(mjd float64) float64 {
	if l.DriftRate == 0 {
		return l.DeltaAT
	}
	return l.DeltaAT + (mjd-l.DriftReferenceMJD)*l.DriftRate
}

// LeapSecondProvider supplies an ordered, read-only snapshot of leap second records.
type LeapSecondProvider interface {
	LeapSeconds() []LeapSecond
}

// LeapSecondsTable is a LeapSecondProvider backed by a slice ordered by timestamp.
type LeapSecondsTable []LeapSecond

// LeapSeconds returns the table itself.
func (t LeapSecondsTable) LeapSeconds() []LeapSecond {
	return t
}

func sofa(ts, delta, refMJD, rate float64) LeapSecond {
	return LeapSecond{TimestampTAISeconds: ts, DeltaAT: delta, DriftReferenceMJD: refMJD, DriftRate: rate}
}

func iers(ts, delta float64) LeapSecond {
	return LeapSecond{TimestampTAISeconds: ts, DeltaAT: delta, AnnouncedByIERS: true}
}

// LatestLeapSeconds is the built-in table: the SOFA records of 1960 to 1968
// and every leap second announced by the IERS up to 2017-01-01.
var LatestLeapSeconds = LeapSecondsTable{
	sofa(1_893_369_600, 1.417818, 37_300, 0.001296),  // 1960-01-01
	sofa(1_924_992_000, 1.422818, 37_300, 0.001296),  // 1961-01-01
	sofa(1_943_308_800, 1.372818, 37_300, 0.001296),  // 1961-08-01
	sofa(1_956_528_000, 1.845858, 37_665, 0.0011232), // 1962-01-01
	sofa(2_014_329_600, 1.945858, 37_665, 0.0011232), // 1963-11-01
	sofa(2_019_600_000, 3.24013, 38_761, 0.001296),   // 1964-01-01
	sofa(2_027_462_400, 3.34013, 38_761, 0.001296),   // 1964-04-01
	sofa(2_040_681_600, 3.44013, 38_761, 0.001296),   // 1964-09-01
	sofa(2_051_222_400, 3.54013, 38_761, 0.001296),   // 1965-01-01
	sofa(2_056_320_000, 3.64013, 38_761, 0.001296),   // 1965-03-01
	sofa(2_066_860_800, 3.74013, 38_761, 0.001296),   // 1965-07-01
	sofa(2_072_217_600, 3.84013, 38_761, 0.001296),   // 1965-09-01
	sofa(2_082_758_400, 4.31317, 39_126, 0.002592),   // 1966-01-01
	sofa(2_148_508_800, 4.21317, 39_126, 0.002592),   // 1968-02-01
	iers(2_272_060_800, 10),                          // 1972-01-01
	iers(2_287_785_600, 11),                          // 1972-07-01
	iers(2_303_683_200, 12),                          // 1973-01-01
	iers(2_335_219_200, 13),                          // 1974-01-01
	iers(2_366_755_200, 14),                          // 1975-01-01
	iers(2_398_291_200, 15),                          // 1976-01-01
	iers(2_429_913_600, 16),                          // 1977-01-01
	iers(2_461_449_600, 17),                          // 1978-01-01
	iers(2_492_985_600, 18),                          // 1979-01-01
	iers(2_524_521_600, 19),                          // 1980-01-01
	iers(2_571_782_400, 20),                          // 1981-07-01
	iers(2_603_318_400, 21),                          // 1982-07-01
	iers(2_634_854_400, 22),                          // 1983-07-01
	iers(2_698_012_800, 23),                          // 1985-07-01
	iers(2_776_982_400, 24),                          // 1988-01-01
	iers(2_840_140_800, 25),                          // 1990-01-01
	iers(2_871_676_800, 26),                          // 1991-01-01
	iers(2_918_937_600, 27),                          // 1992-07-01
	iers(2_950_473_600, 28),                          // 1993-07-01
	iers(2_982_009_600, 29),                          // 1994-07-01
	iers(3_029_443_200, 30),                          // 1996-01-01
	iers(3_076_704_000, 31),                          // 1997-07-01
	iers(3_124_137_600, 32),                          // 1999-01-01
	iers(3_345_062_400, 33),                          // 2006-01-01
	iers(3_439_756_800, 34),                          // 2009-01-01
	iers(3_550_089_600, 35),                          // 2012-07-01
	iers(3_644_697_600, 36),                          // 2015-07-01
	iers(3_692_217_600, 37),                          // 2017-01-01
}

// DefaultLeapSeconds returns the built-in table as a provider.
func DefaultLeapSeconds() LeapSecondProvider {
	return LatestLeapSeconds
}

// LookupLeapSeconds returns TAI - UTC in seconds from the latest record whose
// timestamp is at or before seconds, counted from 1900-01-01T00:00:00 like the
// record timestamps. When iersOnly is set, the SOFA records before 1972 are
// skipped. ok is false when no record applies, including for a nil or empty provider.
func LookupLeapSeconds(provider LeapSecondProvider, seconds float64, iersOnly bool) (value float64, ok bool) {
	if provider == nil {
		return 0, false
	}
	records := provider.LeapSeconds()
	for i := len(records) - 1; i >= 0; i-- {
		r := records[i]
		if seconds >= r.TimestampTAISeconds && (!iersOnly || r.AnnouncedByIERS) {
			return r.At(seconds/SecondsPerDay + MJDJ1900), true
		}
	}
	return 0, false
}

// isLeapSecondDay reports whether a UTC leap second was inserted at the end of
// the given day, according to the IERS records of provider.
func isLeapSecondDay(provider LeapSecondProvider, year int64, month Month, day uint8) bool {
	if provider == nil || day != daysInMonth(year, month) {
		return false
	}
	// A record at the next midnight that raises TAI - UTC by one second.
	next := gregorianDays(year, month, day) + 1
	ts := float64(next) * SecondsPerDay
	records := provider.LeapSeconds()
	for i, r := range records {
		if !r.AnnouncedByIERS || r.TimestampTAISeconds != ts {
			continue
		}
		if i == 0 || !records[i-1].AnnouncedByIERS {
			return true
		}
		return r.DeltaAT > records[i-1].DeltaAT
	}
	return false
}
