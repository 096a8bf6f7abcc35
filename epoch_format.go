package hifi

import (
	"strconv"
	"strings"
)

// String formats e in its own time scale, e.g. 2017-01-14T00:31:55 UTC.
// The output parses back with ParseEpoch.
func (e Epoch) String() string {
	return e.ToGregorian().String()
}

// ISO8601 formats e in its own time scale without the scale name, e.g. 2017-01-14T00:31:55.5.
func (e Epoch) ISO8601() string {
	return e.ToGregorian().iso()
}

// RFC3339 formats e in UTC with a Z suffix, e.g. 2017-01-14T00:31:55Z.
func (e Epoch) RFC3339() string {
	return e.ToGregorianUTC().iso() + "Z"
}

// ParseEpoch parses an epoch in one of these forms:
//
//	2017-01-14T00:31:55 UTC      date and time, then a time scale name
//	2017-01-14 00:31:55.5Z       space or T separator, Z for UTC
//	2017-01-14T00:31+01:00       UTC with a timezone offset
//	2017-01-14                   midnight UTC
//	JD 2457767.5 TDB             Julian date in a scale
//	MJD 57767 TAI                modified Julian date in a scale
//	SEC 3.5e8 ET                 seconds since the reference epoch of a scale
//
// The scale defaults to UTC.
func ParseEpoch(s string) (Epoch, error) {
	in := strings.TrimSpace(s)
	if in == "" {
		return Epoch{}, parseError(NothingToParse, s, "input string is empty")
	}
	fields := strings.Fields(in)
	switch strings.ToUpper(fields[0]) {
	case "JD", "MJD", "SEC":
		return parseScalarEpoch(fields, s)
	}
	return parseGregorianEpoch(in, s)
}

func parseScalarEpoch(fields []string, input string) (Epoch, error) {
	if len(fields) < 2 || len(fields) > 3 {
		return Epoch{}, parseError(UnknownFormat, input, "expect <JD|MJD|SEC> <value> [scale]")
	}
	value, err := strconv.ParseFloat(fields[1], 64)
	if err != nil {
		return Epoch{}, parseError(ValueError, input, "could not parse "+strconv.Quote(fields[1]))
	}
	scale := UTC
	if len(fields) == 3 {
		if scale, err = ParseTimeScale(fields[2]); err != nil {
			return Epoch{}, err
		}
	}
	switch strings.ToUpper(fields[0]) {
	case "JD":
		return FromJDE(value, scale), nil
	case "MJD":
		return FromMJD(value, scale), nil
	}
	return FromDuration(FromSeconds(value), scale), nil
}

func parseGregorianEpoch(in, input string) (Epoch, error) {
	scale := UTC
	if i := strings.LastIndexByte(in, ' '); i > 0 {
		if ts, err := ParseTimeScale(in[i+1:]); err == nil {
			scale = ts
			in = strings.TrimSpace(in[:i])
		}
	}

	datePart, timePart, _ := strings.Cut(strings.Replace(in, " ", "T", 1), "T")

	dateFields := strings.Split(datePart, "-")
	negativeYear := false
	if len(dateFields) == 4 && dateFields[0] == "" {
		negativeYear = true
		dateFields = dateFields[1:]
	}
	if len(dateFields) != 3 {
		return Epoch{}, parseError(UnknownFormat, input, "expect a YYYY-MM-DD date")
	}
	year, err := strconv.ParseInt(dateFields[0], 10, 64)
	if err != nil {
		return Epoch{}, parseError(ValueError, input, "invalid year "+strconv.Quote(dateFields[0]))
	}
	if negativeYear {
		year = -year
	}
	month, err := parseUint8(dateFields[1], "month", input)
	if err != nil {
		return Epoch{}, err
	}
	day, err := parseUint8(dateFields[2], "day", input)
	if err != nil {
		return Epoch{}, err
	}

	var offset Duration
	switch {
	case strings.HasSuffix(timePart, "Z"):
		timePart = strings.TrimSuffix(timePart, "Z")
		scale = UTC
	case strings.ContainsAny(timePart, "+-"):
		i := strings.IndexAny(timePart, "+-")
		if offset, err = parseOffset(timePart[i:]); err != nil {
			return Epoch{}, err
		}
		timePart = timePart[:i]
		scale = UTC
	}

	var hour, minute, second uint8
	var nanos uint32
	if timePart != "" {
		timeFields := strings.Split(timePart, ":")
		if len(timeFields) < 2 || len(timeFields) > 3 {
			return Epoch{}, parseError(UnknownFormat, input, "expect a HH:MM[:SS[.fff]] time")
		}
		if hour, err = parseUint8(timeFields[0], "hour", input); err != nil {
			return Epoch{}, err
		}
		if minute, err = parseUint8(timeFields[1], "minute", input); err != nil {
			return Epoch{}, err
		}
		if len(timeFields) == 3 {
			whole, frac, _ := strings.Cut(timeFields[2], ".")
			if second, err = parseUint8(whole, "second", input); err != nil {
				return Epoch{}, err
			}
			if nanos, err = parseFraction(frac, input); err != nil {
				return Epoch{}, err
			}
		}
	}

	e, err := FromGregorian(year, Month(month), day, hour, minute, second, nanos, scale)
	if err != nil {
		return Epoch{}, err
	}
	return e.Sub(offset), nil
}

func parseUint8(s, field, input string) (uint8, error) {
	v, err := strconv.ParseUint(s, 10, 8)
	if err != nil {
		return 0, parseError(ValueError, input, "invalid "+field+" "+strconv.Quote(s))
	}
	return uint8(v), nil
}

// parseFraction parses up to nine digits after the decimal point into nanoseconds.
func parseFraction(s, input string) (uint32, error) {
	if s == "" {
		return 0, nil
	}
	if len(s) > 9 {
		s = s[:9]
	}
	v, err := strconv.ParseUint(s+strings.Repeat("0", 9-len(s)), 10, 32)
	if err != nil {
		return 0, parseError(ValueError, input, "invalid fraction of second "+strconv.Quote(s))
	}
	return uint32(v), nil
}
