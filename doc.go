// Package hifi provides nanosecond-precision durations and time-scale aware
// epochs spanning roughly 65,536 years.
//
// A [Duration] is a fixed-point pair of a signed century counter and the
// nanoseconds into that century. It never uses floating point internally and
// its arithmetic saturates at [MinDuration] and [MaxDuration] instead of
// panicking.
//
// An [Epoch] is an instant stored as the duration since 1900-01-01T00:00:00 TAI,
// tagged with the [TimeScale] it was expressed in. Conversions between TAI, TT,
// ET, TDB, UTC and the GNSS scales account for leap seconds and relativistic
// corrections:
//
//	e := hifi.MustGregorian(2015, 6, 30, 23, 59, 60, 0, hifi.UTC)
//	fmt.Println(e.ToTimeScale(hifi.TAI)) // 2015-07-01T00:00:35 TAI
//
// Leap second and UT1 tables are plain values passed to the functions that
// need them; [LatestLeapSeconds] is the built-in default.
package hifi
