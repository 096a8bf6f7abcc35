package hifi

import (
	"strconv"
	"strings"
)

// durationUnits maps the accepted unit keywords to units.
var durationUnits = map[string]Unit{
	"d":            Day,
	"day":          Day,
	"days":         Day,
	"h":            Hour,
	"hr":           Hour,
	"hour":         Hour,
	"hours":        Hour,
	"min":          Minute,
	"mins":         Minute,
	"minute":       Minute,
	"minutes":      Minute,
	"s":            Second,
	"sec":          Second,
	"second":       Second,
	"seconds":      Second,
	"ms":           Millisecond,
	"millisecond":  Millisecond,
	"milliseconds": Millisecond,
	"μs":           Microsecond,
	"µs":           Microsecond,
	"us":           Microsecond,
	"microsecond":  Microsecond,
	"microseconds": Microsecond,
	"ns":           Nanosecond,
	"nanosecond":   Nanosecond,
	"nanoseconds":  Nanosecond,
	"wk":           Week,
	"week":         Week,
	"weeks":        Week,
	"century":      Century,
	"centuries":    Century,
}

// ParseDuration parses whitespace separated "<number> <unit>" pairs such as
// "1 day 2 h 30.5 min", with an optional leading sign applying to the whole.
// A signed timezone offset "±HH[:MM[:SS]]" is also accepted, e.g. "-05:30".
func ParseDuration(s string) (Duration, error) {
	in := strings.TrimSpace(s)
	if in == "" {
		return Zero, parseError(NothingToParse, s, "input string is empty")
	}

	sign := 1
	body := in
	switch in[0] {
	case '-', '+':
		if offset, err := parseOffset(in); err == nil {
			return offset, nil
		}
		if in[0] == '-' {
			sign = -1
		}
		body = strings.TrimSpace(in[1:])
	}

	fields := strings.Fields(body)
	if len(fields) == 0 {
		return Zero, parseError(NothingToParse, s, "no value after sign")
	}

	d := Zero
	for i := 0; i < len(fields); i += 2 {
		if i+1 >= len(fields) {
			if _, err := strconv.ParseFloat(fields[i], 64); err != nil {
				return Zero, parseError(ValueError, s, "could not parse "+strconv.Quote(fields[i]))
			}
			return Zero, parseError(UnknownOrMissingUnit, s, "expect a unit after the last numeric")
		}
		unit, ok := durationUnits[fields[i+1]]
		if !ok {
			return Zero, parseError(UnknownOrMissingUnit, s, "unknown unit "+strconv.Quote(fields[i+1]))
		}
		// integers are applied exactly, beyond float64 precision
		if n, err := strconv.ParseInt(fields[i], 10, 64); err == nil {
			d = d.Add(unit.Times(n))
			continue
		}
		value, err := strconv.ParseFloat(fields[i], 64)
		if err != nil {
			return Zero, parseError(ValueError, s, "could not parse "+strconv.Quote(fields[i]))
		}
		d = d.Add(unit.TimesFloat(value))
	}

	if sign < 0 {
		return d.Neg(), nil
	}
	return d, nil
}

// parseOffset parses "±HH", "±HHMM", "±HH:MM", "±HHMMSS" and "±HH:MM:SS".
func parseOffset(s string) (Duration, error) {
	if len(s) < 3 {
		return Zero, parseError(InvalidTimezone, s, "invalid timezone format [+/-]HH:MM")
	}
	sign := 1
	if s[0] == '-' {
		sign = -1
	}
	rest := s[1:]

	var parts []string
	if strings.Contains(rest, ":") {
		parts = strings.Split(rest, ":")
	} else {
		for len(rest) > 0 {
			n := min(2, len(rest))
			parts = append(parts, rest[:n])
			rest = rest[n:]
		}
	}
	if len(parts) > 3 {
		return Zero, parseError(InvalidTimezone, s, "too many offset fields")
	}

	var fields [3]int64
	for i, p := range parts {
		if len(p) != 2 {
			return Zero, parseError(InvalidTimezone, s, "offset fields must have two digits")
		}
		v, err := strconv.ParseUint(p, 10, 8)
		if err != nil {
			return Zero, parseError(InvalidTimezone, s, "invalid offset field "+strconv.Quote(p))
		}
		fields[i] = int64(v)
	}
	if fields[1] > 59 || fields[2] > 59 {
		return Zero, parseError(InvalidTimezone, s, "offset minutes and seconds must be below 60")
	}

	d := Hour.Times(fields[0]).Add(Minute.Times(fields[1])).Add(Second.Times(fields[2]))
	if sign < 0 {
		return d.Neg(), nil
	}
	return d, nil
}
