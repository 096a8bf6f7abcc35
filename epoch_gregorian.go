package hifi

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/clipperhouse/hifi/internal/int128"
)

// Gregorian is the proleptic Gregorian calendar representation of an epoch in
// a given time scale. Second is 60 only during an inserted UTC leap second.
type Gregorian struct {
	Year       int64
	Month      Month
	Day        uint8
	Hour       uint8
	Minute     uint8
	Second     uint8
	Nanosecond uint32
	Scale      TimeScale
}

const (
	// daysFromUnixToPrime is the day count of 1900-01-01 relative to 1970-01-01.
	daysFromUnixToPrime = -25_567
	maxGregorianYear    = 3_300_000
	minGregorianYear    = -3_300_000
)

func isLeapYear(year int64) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

func daysInMonth(year int64, month Month) uint8 {
	switch month {
	case February:
		if isLeapYear(year) {
			return 29
		}
		return 28
	case April, June, September, November:
		return 30
	case January, March, May, July, August, October, December:
		return 31
	}
	return 0
}

// daysFromCivil returns the days from 1970-01-01 to the given date.
func daysFromCivil(year int64, month Month, day uint8) int64 {
	y := year
	m := int64(month)
	if m <= 2 {
		y--
	}
	era := y / 400
	if y < 0 && y%400 != 0 {
		era--
	}
	yoe := y - era*400
	mp := (m + 9) % 12
	doy := (153*mp+2)/5 + int64(day) - 1
	doe := yoe*365 + yoe/4 - yoe/100 + doy
	return era*146_097 + doe - 719_468
}

// civilFromDays is the inverse of daysFromCivil.
func civilFromDays(z int64) (year int64, month Month, day uint8) {
	z += 719_468
	era := z / 146_097
	if z < 0 && z%146_097 != 0 {
		era--
	}
	doe := z - era*146_097
	yoe := (doe - doe/1_460 + doe/36_524 - doe/146_096) / 365
	doy := doe - (365*yoe + yoe/4 - yoe/100)
	mp := (5*doy + 2) / 153
	d := doy - (153*mp+2)/5 + 1
	m := mp + 3
	if m > 12 {
		m -= 12
	}
	year = yoe + era*400
	if m <= 2 {
		year++
	}
	return year, Month(m), uint8(d)
}

// gregorianDays returns the days from 1900-01-01 to the given date.
func gregorianDays(year int64, month Month, day uint8) int64 {
	return daysFromCivil(year, month, day) - daysFromUnixToPrime
}

// calendarDuration is the duration from 1900-01-01T00:00:00 to the given date and time.
func calendarDuration(year int64, month Month, day, hour, minute, second uint8, nanos uint32) (Duration, error) {
	switch {
	case year > maxGregorianYear:
		return MaxDuration, ErrOverflow
	case year < minGregorianYear:
		return MinDuration, ErrUnderflow
	}
	tod := int64(hour)*NanosecondsPerHour + int64(minute)*NanosecondsPerMinute +
		int64(second)*NanosecondsPerSecond + int64(nanos)
	total := mul128(int128.FromInt64(gregorianDays(year, month, day)), nsPerDay128).Add(int128.FromInt64(tod))
	switch {
	case total.Cmp(maxTotal128) > 0:
		return MaxDuration, ErrOverflow
	case total.Cmp(minTotal128) < 0:
		return MinDuration, ErrUnderflow
	}
	return fromTotal(total), nil
}

// gregorianFromCalendarDuration decomposes a duration since 1900-01-01T00:00:00.
func gregorianFromCalendarDuration(d Duration) Gregorian {
	days, rem, _ := d.total().DivModEuclid(nsPerDay128)
	ns := rem.Uint64()
	year, month, day := civilFromDays(days.Int64() + daysFromUnixToPrime)
	return Gregorian{
		Year:       year,
		Month:      month,
		Day:        day,
		Hour:       uint8(ns / NanosecondsPerHour),
		Minute:     uint8(ns % NanosecondsPerHour / NanosecondsPerMinute),
		Second:     uint8(ns % NanosecondsPerMinute / NanosecondsPerSecond),
		Nanosecond: uint32(ns % NanosecondsPerSecond),
	}
}

// checkGregorian returns a CalendarError for the first invalid field. Second
// 60 is only valid in UTC, at 23:59 of a day followed by a leap second in provider.
func checkGregorian(provider LeapSecondProvider, year int64, month Month, day, hour, minute, second uint8, nanos uint32, scale TimeScale) error {
	switch {
	case month < January || month > December:
		return &CalendarError{Field: "month", Value: int64(month)}
	case day == 0 || day > daysInMonth(year, month):
		return &CalendarError{Field: "day", Value: int64(day)}
	case hour > 23:
		return &CalendarError{Field: "hour", Value: int64(hour)}
	case minute > 59:
		return &CalendarError{Field: "minute", Value: int64(minute)}
	case second > 60:
		return &CalendarError{Field: "second", Value: int64(second)}
	case second == 60 && (scale != UTC || hour != 23 || minute != 59 || !isLeapSecondDay(provider, year, month, day)):
		return &CalendarError{Field: "second", Value: int64(second)}
	case nanos >= NanosecondsPerSecond:
		return &CalendarError{Field: "nanosecond", Value: int64(nanos)}
	}
	return nil
}

// FromGregorian returns the epoch at the given date and time in scale,
// validating every field. Second 60 designates the leap second inserted at the
// end of a UTC day, one second after 23:59:59.
func (c Converter) FromGregorian(year int64, month Month, day, hour, minute, second uint8, nanos uint32, scale TimeScale) (Epoch, error) {
	if err := checkGregorian(c.provider(), year, month, day, hour, minute, second, nanos, scale); err != nil {
		return Epoch{}, err
	}
	leap := second == 60
	if leap {
		second = 59
	}
	count, err := calendarDuration(year, month, day, hour, minute, second, nanos)
	if err != nil {
		return Epoch{}, err
	}
	e := c.fromCalendarCount(count, scale)
	if leap {
		e.tai = e.tai.Add(Second.Duration())
	}
	return e, nil
}

// ToGregorianIn decomposes e into a calendar date and time of day in scale.
func (c Converter) ToGregorianIn(e Epoch, scale TimeScale) Gregorian {
	d, inLeap := c.fromTAI(e.tai, scale)
	count := d.Add(scale.calendarOrigin())
	if inLeap {
		count = count.Sub(Second.Duration())
	}
	g := gregorianFromCalendarDuration(count)
	if inLeap {
		g.Second = 60
	}
	g.Scale = scale
	return g
}

// FromGregorian returns the epoch at the given date and time in scale, see
// Converter.FromGregorian. Invalid fields return a *CalendarError.
func FromGregorian(year int64, month Month, day, hour, minute, second uint8, nanos uint32, scale TimeScale) (Epoch, error) {
	return defaultConverter.FromGregorian(year, month, day, hour, minute, second, nanos, scale)
}

// MustGregorian is FromGregorian for dates known to be valid, such as
// constants. It panics on invalid input.
func MustGregorian(year int64, month Month, day, hour, minute, second uint8, nanos uint32, scale TimeScale) Epoch {
	e, err := FromGregorian(year, month, day, hour, minute, second, nanos, scale)
	if err != nil {
		panic(err)
	}
	return e
}

// FromGregorianUTC is FromGregorian in UTC.
func FromGregorianUTC(year int64, month Month, day, hour, minute, second uint8, nanos uint32) (Epoch, error) {
	return FromGregorian(year, month, day, hour, minute, second, nanos, UTC)
}

// FromGregorianAtMidnight returns the epoch at the start of the given day.
func FromGregorianAtMidnight(year int64, month Month, day uint8, scale TimeScale) (Epoch, error) {
	return FromGregorian(year, month, day, 0, 0, 0, 0, scale)
}

// FromGregorianAtNoon returns the epoch at noon of the given day.
func FromGregorianAtNoon(year int64, month Month, day uint8, scale TimeScale) (Epoch, error) {
	return FromGregorian(year, month, day, 12, 0, 0, 0, scale)
}

// FromGregorianHMS returns the epoch at the given whole second.
func FromGregorianHMS(year int64, month Month, day, hour, minute, second uint8, scale TimeScale) (Epoch, error) {
	return FromGregorian(year, month, day, hour, minute, second, 0, scale)
}

// ToGregorian decomposes e in its own time scale.
func (e Epoch) ToGregorian() Gregorian {
	return defaultConverter.ToGregorianIn(e, e.scale)
}

// ToGregorianIn decomposes e in scale.
func (e Epoch) ToGregorianIn(scale TimeScale) Gregorian {
	return defaultConverter.ToGregorianIn(e, scale)
}

// ToGregorianUTC decomposes e in UTC.
func (e Epoch) ToGregorianUTC() Gregorian {
	return e.ToGregorianIn(UTC)
}

// Epoch returns the epoch of g, validating its fields.
func (g Gregorian) Epoch() (Epoch, error) {
	return FromGregorian(g.Year, g.Month, g.Day, g.Hour, g.Minute, g.Second, g.Nanosecond, g.Scale)
}

// Year returns the year of e in its time scale.
func (e Epoch) Year() int64 {
	return e.ToGregorian().Year
}

// Month returns the month of e in its time scale.
func (e Epoch) Month() Month {
	return e.ToGregorian().Month
}

// Day returns the day of the month of e in its time scale.
func (e Epoch) Day() uint8 {
	return e.ToGregorian().Day
}

// Hours returns the hour of the day of e in its time scale.
func (e Epoch) Hours() uint8 {
	return e.ToGregorian().Hour
}

// Minutes returns the minutes of the hour of e in its time scale.
func (e Epoch) Minutes() uint8 {
	return e.ToGregorian().Minute
}

// Seconds returns the seconds of the minute of e in its time scale.
func (e Epoch) Seconds() uint8 {
	return e.ToGregorian().Second
}

// Milliseconds returns the whole milliseconds of the second of e.
func (e Epoch) Milliseconds() uint32 {
	return e.ToGregorian().Nanosecond / NanosecondsPerMillisecond
}

// Microseconds returns the whole microseconds of the millisecond of e.
func (e Epoch) Microseconds() uint32 {
	return e.ToGregorian().Nanosecond / NanosecondsPerMicrosecond % 1_000
}

// Nanoseconds returns the nanoseconds of the microsecond of e.
func (e Epoch) Nanoseconds() uint32 {
	return e.ToGregorian().Nanosecond % 1_000
}

// DayOfYear returns the ordinal day of e in its year, from 1.
func (e Epoch) DayOfYear() int {
	g := e.ToGregorian()
	return int(gregorianDays(g.Year, g.Month, g.Day)-gregorianDays(g.Year, January, 1)) + 1
}

// YearDays returns the number of days in the year of e.
func (e Epoch) YearDays() int {
	if isLeapYear(e.Year()) {
		return 366
	}
	return 365
}

// String formats g as 2017-01-14T00:31:55.5 UTC, with fractional seconds only
// when non-zero and trimmed of trailing zeros.
func (g Gregorian) String() string {
	return g.iso() + " " + g.Scale.String()
}

// iso formats g without its time scale.
func (g Gregorian) iso() string {
	var b strings.Builder
	year := g.Year
	if year < 0 {
		b.WriteByte('-')
		year = -year
	}
	fmt.Fprintf(&b, "%04d-%02d-%02dT%02d:%02d:%02d", year, int(g.Month), g.Day, g.Hour, g.Minute, g.Second)
	if g.Nanosecond != 0 {
		frac := strconv.FormatUint(uint64(g.Nanosecond)+NanosecondsPerSecond, 10)[1:]
		b.WriteByte('.')
		b.WriteString(strings.TrimRight(frac, "0"))
	}
	return b.String()
}
