// Package eop reads the Earth orientation parameters published by JPL in the
// EOP2 format, the source of the TAI - UT1 tables used by hifi.
package eop

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"slices"
	"strconv"
	"strings"

	"github.com/clipperhouse/hifi"
	"github.com/hashicorp/go-multierror"
	"golang.org/x/sync/errgroup"
)

// ErrMalformed is wrapped by every line level parse error.
var ErrMalformed = errors.New("eop: malformed line")

const (
	startMarker = "EOP2="
	endMarker   = "$END"
)

// Parse reads EOP2 data. Only the lines between "EOP2=" and "$END" are
// records: comma separated, the modified Julian date in TAI first and
// TAI - UT1 in milliseconds fourth. Every malformed record is reported.
func Parse(r io.Reader) (hifi.UT1Table, error) {
	var (
		table   hifi.UT1Table
		errs    *multierror.Error
		started bool
	)

	scanner := bufio.NewScanner(r)
	n := 0
	for scanner.Scan() {
		n++
		line := strings.TrimSpace(scanner.Text())
		if !started {
			started = line == startMarker
			continue
		}
		if line == endMarker {
			break
		}
		if line == "" {
			continue
		}

		record, err := parseRecord(line)
		if err != nil {
			errs = multierror.Append(errs, fmt.Errorf("line %d: %w", n, err))
			continue
		}
		table = append(table, record)
	}
	if err := scanner.Err(); err != nil {
		errs = multierror.Append(errs, err)
	}

	return table, errs.ErrorOrNil()
}

func parseRecord(line string) (hifi.DeltaTAIUT1, error) {
	fields := strings.Split(line, ",")
	if len(fields) < 4 {
		return hifi.DeltaTAIUT1{}, fmt.Errorf("%w: expect at least 4 fields, got %d", ErrMalformed, len(fields))
	}
	mjd, err := strconv.ParseFloat(strings.TrimSpace(fields[0]), 64)
	if err != nil {
		return hifi.DeltaTAIUT1{}, fmt.Errorf("%w: bad MJD %q", ErrMalformed, strings.TrimSpace(fields[0]))
	}
	ms, err := strconv.ParseFloat(strings.TrimSpace(fields[3]), 64)
	if err != nil {
		return hifi.DeltaTAIUT1{}, fmt.Errorf("%w: bad TAI-UT1 %q", ErrMalformed, strings.TrimSpace(fields[3]))
	}
	return hifi.DeltaTAIUT1{
		Epoch:            hifi.FromMJD(mjd, hifi.TAI),
		DeltaTAIMinusUT1: hifi.FromMilliseconds(ms),
	}, nil
}

// Load parses the EOP2 file at path.
func Load(path string) (hifi.UT1Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	table, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return table, nil
}

// LoadFiles parses the files concurrently and merges them into one table
// ordered by epoch. Where files overlap, the file listed last wins.
func LoadFiles(ctx context.Context, paths ...string) (hifi.UT1Table, error) {
	tables := make([]hifi.UT1Table, len(paths))

	g, ctx := errgroup.WithContext(ctx)
	for i, path := range paths {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			table, err := Load(path)
			if err != nil {
				return err
			}
			tables[i] = table
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return Merge(tables...), nil
}

// Merge combines tables into one ordered by epoch. Records at the same epoch
// are taken from the last table holding one.
func Merge(tables ...hifi.UT1Table) hifi.UT1Table {
	var merged hifi.UT1Table
	for _, t := range tables {
		merged = append(merged, t...)
	}
	// stable, so that later tables stay after earlier ones at equal epochs
	slices.SortStableFunc(merged, byEpoch)

	out := merged[:0]
	for _, r := range merged {
		if len(out) > 0 && out[len(out)-1].Epoch.Equal(r.Epoch) {
			out[len(out)-1] = r
			continue
		}
		out = append(out, r)
	}
	return slices.Clip(out)
}

// Span returns the first and last epochs of table.
func Span(table hifi.UT1Table) (first, last hifi.Epoch, ok bool) {
	if len(table) == 0 {
		return hifi.Epoch{}, hifi.Epoch{}, false
	}
	first = slices.MinFunc(table, byEpoch).Epoch
	last = slices.MaxFunc(table, byEpoch).Epoch
	return first, last, true
}

func byEpoch(a, b hifi.DeltaTAIUT1) int {
	return a.Epoch.Compare(b.Epoch)
}
