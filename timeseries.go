package hifi

import (
	"fmt"
	"iter"

	"github.com/clipperhouse/hifi/internal/int128"
)

// TimeSeries iterates over evenly spaced epochs from a start epoch toward an
// end epoch. Epochs are spaced by TAI durations, so the spacing is exact
// across leap seconds. It can be consumed from both ends.
type TimeSeries struct {
	start     Epoch
	end       Epoch
	step      Duration
	inclusive bool
	front     int64
	back      int64
}

// Exclusive returns the epochs start, start+step, … strictly before end.
// The step is taken toward end whatever its sign; a zero step yields nothing.
func Exclusive(start, end Epoch, step Duration) *TimeSeries {
	return newTimeSeries(start, end, step, false)
}

// Inclusive is Exclusive, also yielding end when it falls on a step.
func Inclusive(start, end Epoch, step Duration) *TimeSeries {
	return newTimeSeries(start, end, step, true)
}

func newTimeSeries(start, end Epoch, step Duration, inclusive bool) *TimeSeries {
	span := end.Since(start)
	if span.IsNegative() {
		step = step.Abs().Neg()
	} else {
		step = step.Abs()
	}
	t := &TimeSeries{start: start, end: end, step: step, inclusive: inclusive}
	t.back = t.count(span)
	return t
}

func (t *TimeSeries) count(span Duration) int64 {
	if t.step.IsZero() {
		return 0
	}
	n, rem, _ := span.total().Abs().QuoRem(t.step.total().Abs())
	switch {
	case t.inclusive:
		n = n.Add(int128.FromInt64(1))
	case !rem.IsZero():
		n = n.Add(int128.FromInt64(1))
	}
	if !n.IsInt64() {
		return 0
	}
	return n.Int64()
}

func (t *TimeSeries) at(i int64) Epoch {
	return t.start.AddTAI(t.step.Mul(i))
}

// Next returns the next epoch from the front, or false when exhausted.
func (t *TimeSeries) Next() (Epoch, bool) {
	if t.front >= t.back {
		return Epoch{}, false
	}
	e := t.at(t.front)
	t.front++
	return e, true
}

// Prev returns the next epoch from the back, or false when exhausted.
func (t *TimeSeries) Prev() (Epoch, bool) {
	if t.front >= t.back {
		return Epoch{}, false
	}
	t.back--
	return t.at(t.back), true
}

// Len returns the number of epochs not yet consumed.
func (t *TimeSeries) Len() int {
	return int(t.back - t.front)
}

// All returns an iterator over the remaining epochs, front to back. It does not consume t.
func (t *TimeSeries) All() iter.Seq[Epoch] {
	return func(yield func(Epoch) bool) {
		for i := t.front; i < t.back; i++ {
			if !yield(t.at(i)) {
				return
			}
		}
	}
}

// Backward returns an iterator over the remaining epochs, back to front. It does not consume t.
func (t *TimeSeries) Backward() iter.Seq[Epoch] {
	return func(yield func(Epoch) bool) {
		for i := t.back - 1; i >= t.front; i-- {
			if !yield(t.at(i)) {
				return
			}
		}
	}
}

func (t *TimeSeries) String() string {
	last := t.start
	if t.back > 0 {
		last = t.at(t.back - 1)
	}
	return fmt.Sprintf("TimeSeries [%s : %s : %s]", t.start, last, t.step)
}
