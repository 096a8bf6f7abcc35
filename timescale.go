package hifi

import (
	"strconv"
	"strings"
)

// TimeScale is one of the supported time scales. The numeric values are stable
// and used in binary encodings.
type TimeScale uint8

const (
	// TAI is International Atomic Time, the reference scale of every Epoch.
	TAI TimeScale = iota
	// TT is Terrestrial Time, TAI + 32.184 s.
	TT
	// ET is Ephemeris Time as computed by NAIF SPICE.
	ET
	// TDB is Barycentric Dynamical Time as computed by ESA.
	TDB
	// UTC is Coordinated Universal Time, TAI minus the accumulated leap seconds.
	UTC
	// GPST is GPS Time, referenced to 1980-01-06T00:00:00 UTC.
	GPST
	// GST is Galileo System Time, referenced to 1999-08-22T00:00:00 UTC (minus 13 s).
	GST
	// BDT is BeiDou Time, referenced to 2006-01-01T00:00:00 UTC.
	BDT
	// QZSST is QZSS Time, identical to GPS Time.
	QZSST
)

// TimeScales lists every supported scale.
var TimeScales = []TimeScale{TAI, TT, ET, TDB, UTC, GPST, GST, BDT, QZSST}

// Reference epoch offsets from the prime epoch, 1900-01-01T00:00:00 TAI.
const (
	GPSTReferenceSeconds = 2_524_953_619
	GSTReferenceSeconds  = 3_144_268_819
	BDTReferenceSeconds  = 3_345_062_433
	UnixReferenceSeconds = 2_208_988_800
	// J2000ReferenceSeconds is 2000-01-01T12:00:00, the reference of ET and TDB.
	J2000ReferenceSeconds = 3_155_716_800

	gpstTAIOffsetSeconds = 19
	bdtTAIOffsetSeconds  = 33

	// TTOffsetMilliseconds is TT - TAI.
	TTOffsetMilliseconds = 32_184
	// ETOffsetMicroseconds is the mean ET - TAI.
	ETOffsetMicroseconds = 32_184_935

	JDJ1900   = 2_415_020.0
	JDJ2000   = 2_451_545.0
	MJDJ1900  = 15_020.0
	MJDJ2000  = 51_544.5
	MJDOffset = 2_400_000.5
)

var (
	gpstReference  = Second.Times(GPSTReferenceSeconds)
	gstReference   = Second.Times(GSTReferenceSeconds)
	bdtReference   = Second.Times(BDTReferenceSeconds)
	unixReference  = Second.Times(UnixReferenceSeconds)
	j2000Reference = Second.Times(J2000ReferenceSeconds)
	j1900Noon      = Hour.Times(12)
	ttOffset       = Millisecond.Times(TTOffsetMilliseconds)
)

// TimeScaleFromCode returns the scale for a binary code; unknown codes yield TAI.
func TimeScaleFromCode(code uint8) TimeScale {
	if code > uint8(QZSST) {
		return TAI
	}
	return TimeScale(code)
}

// Code returns the stable binary code of ts.
func (ts TimeScale) Code() uint8 {
	return uint8(ts)
}

// IsGNSS reports whether ts is a satellite navigation time scale.
func (ts TimeScale) IsGNSS() bool {
	switch ts {
	case GPST, GST, BDT, QZSST:
		return true
	}
	return false
}

// UsesLeapSeconds reports whether ts is offset from TAI by leap seconds. Only UTC is.
func (ts TimeScale) UsesLeapSeconds() bool {
	return ts == UTC
}

// referenceOffset is the duration from the prime epoch to the zero of ts, in TAI.
func (ts TimeScale) referenceOffset() Duration {
	switch ts {
	case GPST, QZSST:
		return gpstReference
	case GST:
		return gstReference
	case BDT:
		return bdtReference
	case ET, TDB:
		return j2000Reference
	}
	return Zero
}

// calendarOrigin is the reference epoch of ts read on its own clock, as a
// duration since 1900-01-01T00:00:00. GNSS references fall on a midnight of
// their scale while sitting a whole number of seconds after that midnight in TAI.
func (ts TimeScale) calendarOrigin() Duration {
	switch ts {
	case GPST, QZSST:
		return gpstReference.Sub(Second.Times(gpstTAIOffsetSeconds))
	case GST:
		return gstReference.Sub(Second.Times(gpstTAIOffsetSeconds))
	case BDT:
		return bdtReference.Sub(Second.Times(bdtTAIOffsetSeconds))
	case ET, TDB:
		return j2000Reference
	}
	return Zero
}

// ReferenceEpoch returns the instant from which durations in ts are counted.
// TAI, TT and UTC count from 1900-01-01T00:00:00 TAI, ET and TDB from J2000.
func (ts TimeScale) ReferenceEpoch() Epoch {
	return FromTAIDuration(ts.referenceOffset())
}

func (ts TimeScale) String() string {
	switch ts {
	case TAI:
		return "TAI"
	case TT:
		return "TT"
	case ET:
		return "ET"
	case TDB:
		return "TDB"
	case UTC:
		return "UTC"
	case GPST:
		return "GPST"
	case GST:
		return "GST"
	case BDT:
		return "BDT"
	case QZSST:
		return "QZSST"
	}
	return "TimeScale(" + strconv.Itoa(int(ts)) + ")"
}

// ParseTimeScale parses a scale name, case-insensitively. Common aliases such as
// GPS, GAL, BEIDOU and QZSS are accepted.
func ParseTimeScale(s string) (TimeScale, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "TAI":
		return TAI, nil
	case "TT":
		return TT, nil
	case "ET":
		return ET, nil
	case "TDB":
		return TDB, nil
	case "UTC", "Z":
		return UTC, nil
	case "GPST", "GPS":
		return GPST, nil
	case "GST", "GAL", "GALILEO":
		return GST, nil
	case "BDT", "BEIDOU":
		return BDT, nil
	case "QZSST", "QZSS":
		return QZSST, nil
	}
	return TAI, parseError(UnknownTimeScale, s, "")
}
