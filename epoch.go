package hifi

import (
	"time"
)

// Epoch is an instant, stored as the duration since 1900-01-01T00:00:00 TAI
// together with the time scale it was expressed in. The scale only affects
// how the epoch is displayed, decomposed and advanced by Add; two epochs at
// the same instant in different scales are Equal.
//
// Epoch is comparable with == only when both the instant and the scale match.
type Epoch struct {
	tai   Duration
	scale TimeScale
}

// FromTAIDuration returns the epoch d after 1900-01-01T00:00:00 TAI.
func FromTAIDuration(d Duration) Epoch {
	return Epoch{tai: d, scale: TAI}
}

// FromTAIParts returns the TAI epoch from the century and nanosecond parts of its duration.
func FromTAIParts(centuries int16, nanoseconds uint64) Epoch {
	return FromTAIDuration(FromParts(centuries, nanoseconds))
}

// FromTAISeconds returns the TAI epoch seconds after 1900-01-01T00:00:00 TAI.
func FromTAISeconds(seconds float64) Epoch {
	return FromTAIDuration(FromSeconds(seconds))
}

// FromTAIDays returns the TAI epoch days after 1900-01-01T00:00:00 TAI.
func FromTAIDays(days float64) Epoch {
	return FromTAIDuration(FromDays(days))
}

// FromDuration returns the epoch d after the reference epoch of scale, see
// TimeScale.ReferenceEpoch. UTC conversions use the built-in leap second table.
func FromDuration(d Duration, scale TimeScale) Epoch {
	return defaultConverter.FromDuration(d, scale)
}

// FromUTCDuration returns the epoch d after 1900-01-01T00:00:00 UTC.
func FromUTCDuration(d Duration) Epoch {
	return FromDuration(d, UTC)
}

// FromUTCSeconds returns the epoch seconds after 1900-01-01T00:00:00 UTC.
func FromUTCSeconds(seconds float64) Epoch {
	return FromUTCDuration(FromSeconds(seconds))
}

// FromUTCDays returns the epoch days after 1900-01-01T00:00:00 UTC.
func FromUTCDays(days float64) Epoch {
	return FromUTCDuration(FromDays(days))
}

// FromTTDuration returns the epoch d after 1900-01-01T00:00:00 TT.
func FromTTDuration(d Duration) Epoch {
	return FromDuration(d, TT)
}

// FromTTSeconds returns the epoch seconds after 1900-01-01T00:00:00 TT.
func FromTTSeconds(seconds float64) Epoch {
	return FromTTDuration(FromSeconds(seconds))
}

// FromETDuration returns the epoch d after J2000 in Ephemeris Time, as NAIF SPICE computes it.
func FromETDuration(d Duration) Epoch {
	return FromDuration(d, ET)
}

// FromETSeconds returns the epoch seconds after J2000 in Ephemeris Time.
func FromETSeconds(seconds float64) Epoch {
	return FromETDuration(FromSeconds(seconds))
}

// FromTDBDuration returns the epoch d after J2000 in Barycentric Dynamical Time.
func FromTDBDuration(d Duration) Epoch {
	return FromDuration(d, TDB)
}

// FromTDBSeconds returns the epoch seconds after J2000 in Barycentric Dynamical Time.
func FromTDBSeconds(seconds float64) Epoch {
	return FromTDBDuration(FromSeconds(seconds))
}

// FromGPSTDuration returns the epoch d after the GPS Time reference, 1980-01-06T00:00:00 UTC.
func FromGPSTDuration(d Duration) Epoch {
	return FromDuration(d, GPST)
}

// FromGPSTSeconds returns the epoch seconds after the GPS Time reference.
func FromGPSTSeconds(seconds float64) Epoch {
	return FromGPSTDuration(FromSeconds(seconds))
}

// FromGPSTDays returns the epoch days after the GPS Time reference.
func FromGPSTDays(days float64) Epoch {
	return FromGPSTDuration(FromDays(days))
}

// FromGPSTNanoseconds returns the epoch ns nanoseconds after the GPS Time reference.
func FromGPSTNanoseconds(ns uint64) Epoch {
	return FromGPSTDuration(FromParts(0, ns))
}

// FromGSTDuration returns the epoch d after the Galileo System Time reference.
func FromGSTDuration(d Duration) Epoch {
	return FromDuration(d, GST)
}

// FromGSTSeconds returns the epoch seconds after the Galileo System Time reference.
func FromGSTSeconds(seconds float64) Epoch {
	return FromGSTDuration(FromSeconds(seconds))
}

// FromGSTDays returns the epoch days after the Galileo System Time reference.
func FromGSTDays(days float64) Epoch {
	return FromGSTDuration(FromDays(days))
}

// FromGSTNanoseconds returns the epoch ns nanoseconds after the Galileo System Time reference.
func FromGSTNanoseconds(ns uint64) Epoch {
	return FromGSTDuration(FromParts(0, ns))
}

// FromBDTDuration returns the epoch d after the BeiDou Time reference.
func FromBDTDuration(d Duration) Epoch {
	return FromDuration(d, BDT)
}

// FromBDTSeconds returns the epoch seconds after the BeiDou Time reference.
func FromBDTSeconds(seconds float64) Epoch {
	return FromBDTDuration(FromSeconds(seconds))
}

// FromBDTDays returns the epoch days after the BeiDou Time reference.
func FromBDTDays(days float64) Epoch {
	return FromBDTDuration(FromDays(days))
}

// FromBDTNanoseconds returns the epoch ns nanoseconds after the BeiDou Time reference.
func FromBDTNanoseconds(ns uint64) Epoch {
	return FromBDTDuration(FromParts(0, ns))
}

// FromQZSSTDuration returns the epoch d after the QZSS Time reference, which is the GPS one.
func FromQZSSTDuration(d Duration) Epoch {
	return FromDuration(d, QZSST)
}

// FromQZSSTSeconds returns the epoch seconds after the QZSS Time reference.
func FromQZSSTSeconds(seconds float64) Epoch {
	return FromQZSSTDuration(FromSeconds(seconds))
}

// FromQZSSTDays returns the epoch days after the QZSS Time reference.
func FromQZSSTDays(days float64) Epoch {
	return FromQZSSTDuration(FromDays(days))
}

// FromQZSSTNanoseconds returns the epoch ns nanoseconds after the QZSS Time reference.
func FromQZSSTNanoseconds(ns uint64) Epoch {
	return FromQZSSTDuration(FromParts(0, ns))
}

// FromUnixDuration returns the UTC epoch d after 1970-01-01T00:00:00 UTC.
func FromUnixDuration(d Duration) Epoch {
	return defaultConverter.fromCalendarCount(unixReference.Add(d), UTC)
}

// FromUnixSeconds returns the UTC epoch seconds after the Unix epoch.
func FromUnixSeconds(seconds float64) Epoch {
	return FromUnixDuration(FromSeconds(seconds))
}

// FromUnixMilliseconds returns the UTC epoch ms milliseconds after the Unix epoch.
func FromUnixMilliseconds(ms float64) Epoch {
	return FromUnixDuration(FromMilliseconds(ms))
}

// FromTime returns the UTC epoch of t.
func FromTime(t time.Time) Epoch {
	d := Second.Times(t.Unix()).Add(Nanosecond.Times(int64(t.Nanosecond())))
	return FromUnixDuration(d)
}

// FromMJD returns the epoch at the modified Julian date days, counted in scale.
func FromMJD(days float64, scale TimeScale) Epoch {
	return defaultConverter.fromCalendarCount(FromDays(days-MJDJ1900), scale)
}

// FromJDE returns the epoch at the Julian date days, counted in scale.
func FromJDE(days float64, scale TimeScale) Epoch {
	return FromMJD(days-MJDOffset, scale)
}

// FromTimeOfWeek returns the epoch from a week counter and the nanoseconds
// into that week, counted from the reference epoch of scale. This is how GNSS
// receivers timestamp their observations.
func FromTimeOfWeek(week uint32, nanoseconds uint64, scale TimeScale) Epoch {
	d := Week.Times(int64(week)).Add(Nanosecond.Times(clampInt64(nanoseconds)))
	return FromDuration(d, scale)
}

// FromDayOfYear returns the epoch days into year, where day 1 starts at midnight of January 1st.
func FromDayOfYear(year int64, days float64, scale TimeScale) (Epoch, error) {
	start, err := FromGregorianAtMidnight(year, January, 1, scale)
	if err != nil {
		return Epoch{}, err
	}
	return start.Add(FromDays(days - 1)), nil
}

// TimeScale returns the scale e was expressed in.
func (e Epoch) TimeScale() TimeScale {
	return e.scale
}

// ToTimeScale returns the same instant expressed in scale.
func (e Epoch) ToTimeScale(scale TimeScale) Epoch {
	return Epoch{tai: e.tai, scale: scale}
}

// DurationIn returns the duration from the reference epoch of scale to e, measured in scale.
func (e Epoch) DurationIn(scale TimeScale) Duration {
	return defaultConverter.DurationIn(e, scale)
}

// ToTAIDuration returns the duration since 1900-01-01T00:00:00 TAI.
func (e Epoch) ToTAIDuration() Duration {
	return e.tai
}

// ToTAISeconds returns the seconds since 1900-01-01T00:00:00 TAI.
func (e Epoch) ToTAISeconds() float64 {
	return e.tai.ToSeconds()
}

// ToTAIDays returns the days since 1900-01-01T00:00:00 TAI.
func (e Epoch) ToTAIDays() float64 {
	return e.tai.ToUnit(Day)
}

// ToUTCDuration returns the duration since 1900-01-01T00:00:00 UTC.
func (e Epoch) ToUTCDuration() Duration {
	return e.DurationIn(UTC)
}

// ToUTCSeconds returns the seconds since 1900-01-01T00:00:00 UTC.
func (e Epoch) ToUTCSeconds() float64 {
	return e.ToUTCDuration().ToSeconds()
}

// ToUTCDays returns the days since 1900-01-01T00:00:00 UTC.
func (e Epoch) ToUTCDays() float64 {
	return e.ToUTCDuration().ToUnit(Day)
}

// ToTTDuration returns the duration since 1900-01-01T00:00:00 TT.
func (e Epoch) ToTTDuration() Duration {
	return e.DurationIn(TT)
}

// ToTTSeconds returns the seconds since 1900-01-01T00:00:00 TT.
func (e Epoch) ToTTSeconds() float64 {
	return e.ToTTDuration().ToSeconds()
}

// ToETDuration returns the Ephemeris Time duration since J2000, matching NAIF SPICE.
func (e Epoch) ToETDuration() Duration {
	return e.DurationIn(ET)
}

// ToETSeconds returns the Ephemeris Time seconds since J2000.
func (e Epoch) ToETSeconds() float64 {
	return e.ToETDuration().ToSeconds()
}

// ToTDBDuration returns the Barycentric Dynamical Time duration since J2000.
func (e Epoch) ToTDBDuration() Duration {
	return e.DurationIn(TDB)
}

// ToTDBSeconds returns the Barycentric Dynamical Time seconds since J2000.
func (e Epoch) ToTDBSeconds() float64 {
	return e.ToTDBDuration().ToSeconds()
}

// ToGPSTDuration returns the duration since the GPS Time reference.
func (e Epoch) ToGPSTDuration() Duration {
	return e.DurationIn(GPST)
}

// ToGPSTSeconds returns the seconds since the GPS Time reference.
func (e Epoch) ToGPSTSeconds() float64 {
	return e.ToGPSTDuration().ToSeconds()
}

// ToGPSTDays returns the days since the GPS Time reference.
func (e Epoch) ToGPSTDays() float64 {
	return e.ToGPSTDuration().ToUnit(Day)
}

// ToGPSTNanoseconds returns the nanoseconds since the GPS Time reference. It
// fails with ErrScaleConversion before the reference or more than a century after it.
func (e Epoch) ToGPSTNanoseconds() (uint64, error) {
	return e.gnssNanoseconds(GPST)
}

// ToGSTDuration returns the duration since the Galileo System Time reference.
func (e Epoch) ToGSTDuration() Duration {
	return e.DurationIn(GST)
}

// ToGSTSeconds returns the seconds since the Galileo System Time reference.
func (e Epoch) ToGSTSeconds() float64 {
	return e.ToGSTDuration().ToSeconds()
}

// ToGSTDays returns the days since the Galileo System Time reference.
func (e Epoch) ToGSTDays() float64 {
	return e.ToGSTDuration().ToUnit(Day)
}

// ToGSTNanoseconds is ToGPSTNanoseconds for Galileo System Time.
func (e Epoch) ToGSTNanoseconds() (uint64, error) {
	return e.gnssNanoseconds(GST)
}

// ToBDTDuration returns the duration since the BeiDou Time reference.
func (e Epoch) ToBDTDuration() Duration {
	return e.DurationIn(BDT)
}

// ToBDTSeconds returns the seconds since the BeiDou Time reference.
func (e Epoch) ToBDTSeconds() float64 {
	return e.ToBDTDuration().ToSeconds()
}

// ToBDTDays returns the days since the BeiDou Time reference.
func (e Epoch) ToBDTDays() float64 {
	return e.ToBDTDuration().ToUnit(Day)
}

// ToBDTNanoseconds is ToGPSTNanoseconds for BeiDou Time.
func (e Epoch) ToBDTNanoseconds() (uint64, error) {
	return e.gnssNanoseconds(BDT)
}

// ToQZSSTDuration returns the duration since the QZSS Time reference.
func (e Epoch) ToQZSSTDuration() Duration {
	return e.DurationIn(QZSST)
}

// ToQZSSTSeconds returns the seconds since the QZSS Time reference.
func (e Epoch) ToQZSSTSeconds() float64 {
	return e.ToQZSSTDuration().ToSeconds()
}

// ToQZSSTDays returns the days since the QZSS Time reference.
func (e Epoch) ToQZSSTDays() float64 {
	return e.ToQZSSTDuration().ToUnit(Day)
}

// ToQZSSTNanoseconds is ToGPSTNanoseconds for QZSS Time.
func (e Epoch) ToQZSSTNanoseconds() (uint64, error) {
	return e.gnssNanoseconds(QZSST)
}

func (e Epoch) gnssNanoseconds(scale TimeScale) (uint64, error) {
	d := e.DurationIn(scale)
	if d.centuries != 0 {
		return 0, ErrScaleConversion
	}
	return d.nanoseconds, nil
}

// ToUnixDuration returns the duration since 1970-01-01T00:00:00 UTC.
func (e Epoch) ToUnixDuration() Duration {
	return defaultConverter.calendarCount(e, UTC).Sub(unixReference)
}

// ToUnixSeconds returns the seconds since the Unix epoch.
func (e Epoch) ToUnixSeconds() float64 {
	return e.ToUnixDuration().ToSeconds()
}

// ToUnixMilliseconds returns the milliseconds since the Unix epoch.
func (e Epoch) ToUnixMilliseconds() float64 {
	return e.ToUnixDuration().ToUnit(Millisecond)
}

// ToTime returns e as a UTC time.Time. An instant inside a leap second maps to
// the following midnight, which time.Time cannot distinguish.
func (e Epoch) ToTime() time.Time {
	d := e.ToUnixDuration()
	seconds := d.ToIntegerUnit(Second)
	nanos := d.Sub(Second.Times(seconds)).TruncatedNanoseconds()
	return time.Unix(seconds, nanos).UTC()
}

// ToMJDDays returns the modified Julian date of e, counted in scale.
func (e Epoch) ToMJDDays(scale TimeScale) float64 {
	return defaultConverter.ToMJDDays(e, scale)
}

// ToJDEDays returns the Julian date of e, counted in scale.
func (e Epoch) ToJDEDays(scale TimeScale) float64 {
	return e.ToMJDDays(scale) + MJDOffset
}

// ToTimeOfWeek returns the week counter and the nanoseconds into that week,
// counted from the reference epoch of the scale of e.
func (e Epoch) ToTimeOfWeek() (week uint32, nanoseconds uint64) {
	weeks, rem, _ := e.DurationIn(e.scale).total().DivModEuclid(nsPerWeek128)
	return uint32(weeks.Int64()), rem.Uint64()
}

// LeapSeconds returns TAI - UTC at e from the built-in table. When iersOnly is
// false, the fractional SOFA offsets of 1960 to 1972 are included. ok is false
// before 1960, or before 1972 with iersOnly.
func (e Epoch) LeapSeconds(iersOnly bool) (float64, bool) {
	return defaultConverter.LeapSeconds(e, iersOnly)
}

// LeapSecondsWith is LeapSeconds from the records of provider.
func (e Epoch) LeapSecondsWith(provider LeapSecondProvider, iersOnly bool) (float64, bool) {
	return NewConverter(provider).LeapSeconds(e, iersOnly)
}

// LeapSecondsIERS returns the whole number of leap seconds announced by the IERS before e.
func (e Epoch) LeapSecondsIERS() int {
	v, _ := e.LeapSeconds(true)
	return int(v)
}
