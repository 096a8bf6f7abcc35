// Package leapfile reads the leap-seconds.list files published by the IERS
// and distributed with NTP and tzdata, and keeps them current on disk.
package leapfile

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/clipperhouse/hifi"
	"github.com/hashicorp/go-multierror"
)

// ErrMalformed is wrapped by every line level parse error.
var ErrMalformed = errors.New("leapfile: malformed line")

// ErrEmpty is returned when a file holds no leap second record.
var ErrEmpty = errors.New("leapfile: no leap second records")

// File is a parsed leap-seconds.list. It is a hifi.LeapSecondProvider.
type File struct {
	// Records are ordered by timestamp. Every record is announced by the IERS.
	Records hifi.LeapSecondsTable
	// Updated is the last update of the file, the zero epoch when absent.
	Updated hifi.Epoch
	// Expires is the date after which the file must not be trusted, the zero
	// epoch when absent.
	Expires hifi.Epoch
}

// LeapSeconds implements hifi.LeapSecondProvider.
func (f *File) LeapSeconds() []hifi.LeapSecond {
	return f.Records
}

// Expired reports whether the file carries an expiry date that is not after now.
func (f *File) Expired(now hifi.Epoch) bool {
	if f.Expires.ToTAIDuration().IsZero() {
		return false
	}
	return !now.Before(f.Expires)
}

// Latest returns the most recent record.
func (f *File) Latest() hifi.LeapSecond {
	return f.Records[len(f.Records)-1]
}

// Parse reads a leap-seconds.list. Timestamps are NTP seconds, counted from
// 1900-01-01T00:00:00 UTC like hifi leap second timestamps. Every malformed
// line is reported, not only the first.
func Parse(r io.Reader) (*File, error) {
	f := &File{}
	var errs *multierror.Error

	scanner := bufio.NewScanner(r)
	n := 0
	for scanner.Scan() {
		n++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		if rest, ok := strings.CutPrefix(line, "#"); ok {
			if err := f.parseComment(rest); err != nil {
				errs = multierror.Append(errs, fmt.Errorf("line %d: %w", n, err))
			}
			continue
		}

		record, err := parseRecord(line)
		if err != nil {
			errs = multierror.Append(errs, fmt.Errorf("line %d: %w", n, err))
			continue
		}
		if len(f.Records) > 0 && record.TimestampTAISeconds <= f.Latest().TimestampTAISeconds {
			errs = multierror.Append(errs, fmt.Errorf("line %d: %w: timestamp %.0f out of order", n, ErrMalformed, record.TimestampTAISeconds))
			continue
		}
		f.Records = append(f.Records, record)
	}
	if err := scanner.Err(); err != nil {
		errs = multierror.Append(errs, err)
	}

	if err := errs.ErrorOrNil(); err != nil {
		return nil, err
	}
	if len(f.Records) == 0 {
		return nil, ErrEmpty
	}
	return f, nil
}

// parseComment handles the "#$" update and "#@" expiry lines. Other comments,
// including the "#h" hash, are ignored.
func (f *File) parseComment(rest string) error {
	if len(rest) == 0 {
		return nil
	}
	var target *hifi.Epoch
	switch rest[0] {
	case '$':
		target = &f.Updated
	case '@':
		target = &f.Expires
	default:
		return nil
	}
	seconds, err := strconv.ParseUint(strings.TrimSpace(rest[1:]), 10, 64)
	if err != nil {
		return fmt.Errorf("%w: bad timestamp %q", ErrMalformed, strings.TrimSpace(rest[1:]))
	}
	*target = hifi.FromUTCSeconds(float64(seconds))
	return nil
}

func parseRecord(line string) (hifi.LeapSecond, error) {
	data, _, _ := strings.Cut(line, "#")
	fields := strings.Fields(data)
	if len(fields) != 2 {
		return hifi.LeapSecond{}, fmt.Errorf("%w: expect 2 fields, got %d", ErrMalformed, len(fields))
	}
	ts, err := strconv.ParseUint(fields[0], 10, 64)
	if err != nil {
		return hifi.LeapSecond{}, fmt.Errorf("%w: bad timestamp %q", ErrMalformed, fields[0])
	}
	delta, err := strconv.ParseInt(fields[1], 10, 32)
	if err != nil {
		return hifi.LeapSecond{}, fmt.Errorf("%w: bad TAI-UTC %q", ErrMalformed, fields[1])
	}
	return hifi.LeapSecond{
		TimestampTAISeconds: float64(ts),
		DeltaAT:             float64(delta),
		AnnouncedByIERS:     true,
	}, nil
}

// Load parses the file at path.
func Load(path string) (*File, error) {
	fh, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer fh.Close()

	f, err := Parse(fh)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return f, nil
}
