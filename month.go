package hifi

import (
	"strconv"
	"strings"
)

// Month is a month of the Gregorian calendar, January being 1.
type Month uint8

const (
	January Month = 1 + iota
	February
	March
	April
	May
	June
	July
	August
	September
	October
	November
	December
)

var monthNames = [...]string{
	"January", "February", "March", "April", "May", "June",
	"July", "August", "September", "October", "November", "December",
}

func (m Month) String() string {
	if m < January || m > December {
		return "Month(" + strconv.Itoa(int(m)) + ")"
	}
	return monthNames[m-1]
}

// ParseMonth parses a full or three letter English month name, case-insensitively.
func ParseMonth(s string) (Month, error) {
	in := strings.ToLower(strings.TrimSpace(s))
	for i, name := range monthNames {
		name = strings.ToLower(name)
		if in == name || in == name[:3] {
			return Month(i + 1), nil
		}
	}
	return January, parseError(UnknownMonth, s, "")
}
