package hifi

import (
	"strconv"
	"strings"
)

// Weekday is a day of the week, starting on Monday as in ISO 8601.
type Weekday uint8

const (
	Monday Weekday = iota
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
	Sunday
)

var weekdayNames = [...]string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday"}

// WeekdayFrom returns the weekday n days after Monday, wrapping around.
func WeekdayFrom(n int) Weekday {
	n %= DaysPerWeek
	if n < 0 {
		n += DaysPerWeek
	}
	return Weekday(n)
}

// Add returns the weekday n days after w; n may be negative.
func (w Weekday) Add(n int) Weekday {
	return WeekdayFrom(int(w%DaysPerWeek) + n)
}

// Sub returns the days to go forward from o to reach w, between 0 and 6 days.
func (w Weekday) Sub(o Weekday) Duration {
	return Day.Times(int64(WeekdayFrom(int(w) - int(o))))
}

func (w Weekday) String() string {
	if w > Sunday {
		return "Weekday(" + strconv.Itoa(int(w)) + ")"
	}
	return weekdayNames[w]
}

// ParseWeekday parses a full or three letter English day name, case-insensitively.
func ParseWeekday(s string) (Weekday, error) {
	in := strings.ToLower(strings.TrimSpace(s))
	for i, name := range weekdayNames {
		name = strings.ToLower(name)
		if in == name || in == name[:3] {
			return Weekday(i), nil
		}
	}
	return Monday, parseError(UnknownWeekday, s, "")
}
