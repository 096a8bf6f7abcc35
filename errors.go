package hifi

import (
	"errors"
	"fmt"
)

var (
	// ErrOverflow is returned when a value exceeds the largest representable Duration.
	ErrOverflow = errors.New("hifi: duration overflow")
	// ErrUnderflow is returned when a value is below the smallest representable Duration.
	ErrUnderflow = errors.New("hifi: duration underflow")
	// ErrInvalidGregorianDate is wrapped by every CalendarError.
	ErrInvalidGregorianDate = errors.New("hifi: invalid gregorian date")
	// ErrLeapSecondDataUnavailable is returned when no leap second record covers an instant.
	ErrLeapSecondDataUnavailable = errors.New("hifi: leap second data unavailable")
	// ErrScaleConversion is returned when a value cannot be expressed in the requested time scale,
	// e.g. nanoseconds since a reference epoch more than a century away.
	ErrScaleConversion = errors.New("hifi: time scale conversion undefined")
	// ErrOutdatedTimeOffset is returned when a TimeOffset is applied outside of its validity window.
	ErrOutdatedTimeOffset = errors.New("hifi: time offset outdated")
	// ErrIdenticalTimeScales is returned for a TimeOffset relating a time scale to itself.
	ErrIdenticalTimeScales = errors.New("hifi: time offset between identical time scales")
	// ErrTimeScaleNotSupported is returned when a TimeOffset is applied to an epoch in neither of its scales.
	ErrTimeScaleNotSupported = errors.New("hifi: time scale not supported by time offset")
	// ErrParse is wrapped by every ParseError.
	ErrParse = errors.New("hifi: parse error")
)

// ParseErrorKind classifies a ParseError.
type ParseErrorKind uint8

const (
	NothingToParse ParseErrorKind = iota
	ValueError
	UnknownOrMissingUnit
	InvalidTimezone
	UnknownTimeScale
	UnknownFormat
	UnknownWeekday
	UnknownMonth
)

func (k ParseErrorKind) String() string {
	switch k {
	case NothingToParse:
		return "nothing to parse"
	case ValueError:
		return "invalid value"
	case UnknownOrMissingUnit:
		return "unknown or missing unit"
	case InvalidTimezone:
		return "invalid timezone"
	case UnknownTimeScale:
		return "unknown time scale"
	case UnknownFormat:
		return "unknown format"
	case UnknownWeekday:
		return "unknown weekday"
	case UnknownMonth:
		return "unknown month"
	}
	return "unknown parse error"
}

// ParseError describes text that could not be parsed into a Duration, Epoch,
// TimeScale, Weekday or Month.
type ParseError struct {
	Kind    ParseErrorKind
	Input   string
	Details string
}

func (e *ParseError) Error() string {
	msg := "hifi: " + e.Kind.String()
	if e.Details != "" {
		msg += ": " + e.Details
	}
	if e.Input != "" {
		msg += fmt.Sprintf(" (input %q)", e.Input)
	}
	return msg
}

func (e *ParseError) Unwrap() error {
	return ErrParse
}

func parseError(kind ParseErrorKind, input, details string) *ParseError {
	return &ParseError{Kind: kind, Input: input, Details: details}
}

// CalendarError reports the first calendar field that failed validation.
type CalendarError struct {
	Field string
	Value int64
}

func (e *CalendarError) Error() string {
	return fmt.Sprintf("hifi: invalid gregorian date: %s %d out of range", e.Field, e.Value)
}

func (e *CalendarError) Unwrap() error {
	return ErrInvalidGregorianDate
}
