package hifi

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTimeSeries(t *testing.T) {
	t.Parallel()

	start := MustGregorian(2017, January, 14, 0, 0, 0, 0, UTC)
	end := MustGregorian(2017, January, 14, 12, 0, 0, 0, UTC)
	step := Hour.Times(2)

	t.Run("exclusive", func(t *testing.T) {
		t.Parallel()

		series := Exclusive(start, end, step)
		require.Equal(t, 6, series.Len())
		require.Equal(t, "TimeSeries [2017-01-14T00:00:00 UTC : 2017-01-14T10:00:00 UTC : 2 h]", series.String())

		epochs := slices.Collect(series.All())
		require.Len(t, epochs, 6)
		for i, e := range epochs {
			require.Equal(t, UTC, e.TimeScale())
			require.Equal(t, uint8(2*i), e.Hours())
			require.True(t, e.Before(end))
		}
		require.Equal(t, 6, series.Len(), "All does not consume")
	})

	t.Run("inclusive", func(t *testing.T) {
		t.Parallel()

		epochs := slices.Collect(Inclusive(start, end, step).All())
		require.Len(t, epochs, 7)
		require.Equal(t, start, epochs[0])
		require.True(t, epochs[6].Equal(end))
	})

	t.Run("both ends", func(t *testing.T) {
		t.Parallel()

		series := Exclusive(start, end, step)

		first, ok := series.Next()
		require.True(t, ok)
		require.Equal(t, start, first)

		last, ok := series.Prev()
		require.True(t, ok)
		require.Equal(t, "2017-01-14T10:00:00 UTC", last.String())
		require.Equal(t, 4, series.Len())

		backward := slices.Collect(series.Backward())
		require.Len(t, backward, 4)
		require.Equal(t, uint8(8), backward[0].Hours())
		require.Equal(t, uint8(2), backward[3].Hours())

		for range 4 {
			_, ok := series.Next()
			require.True(t, ok)
		}
		_, ok = series.Next()
		require.False(t, ok)
		_, ok = series.Prev()
		require.False(t, ok)
		require.Zero(t, series.Len())
	})

	t.Run("end before start", func(t *testing.T) {
		t.Parallel()

		epochs := slices.Collect(Exclusive(end, start, step).All())
		require.Len(t, epochs, 6)
		require.Equal(t, uint8(12), epochs[0].Hours())
		require.Equal(t, uint8(2), epochs[5].Hours())

		negative := slices.Collect(Exclusive(start, end, step.Neg()).All())
		require.Len(t, negative, 6, "the step is taken toward the end")
		require.Equal(t, uint8(2), negative[1].Hours())
	})

	t.Run("step that does not divide the span", func(t *testing.T) {
		t.Parallel()

		stop := MustGregorian(2017, January, 14, 5, 0, 0, 0, UTC)
		require.Equal(t, 3, Exclusive(start, stop, step).Len())
		require.Equal(t, 3, Inclusive(start, stop, step).Len())
	})

	t.Run("empty", func(t *testing.T) {
		t.Parallel()

		require.Zero(t, Exclusive(start, end, Zero).Len())
		require.Zero(t, Exclusive(start, start, step).Len())
		require.Equal(t, 1, Inclusive(start, start, step).Len())

		_, ok := Exclusive(start, end, Zero).Next()
		require.False(t, ok)
	})

	t.Run("across a leap second", func(t *testing.T) {
		t.Parallel()

		from := MustGregorian(2015, June, 30, 23, 59, 58, 0, UTC)
		to := MustGregorian(2015, July, 1, 0, 0, 1, 0, UTC)

		var got []string
		for e := range Inclusive(from, to, Second.Duration()).All() {
			got = append(got, e.String())
		}
		require.Equal(t, []string{
			"2015-06-30T23:59:58 UTC",
			"2015-06-30T23:59:59 UTC",
			"2015-06-30T23:59:60 UTC",
			"2015-07-01T00:00:00 UTC",
			"2015-07-01T00:00:01 UTC",
		}, got)
	})

	t.Run("early break", func(t *testing.T) {
		t.Parallel()

		n := 0
		for range Exclusive(start, end, step).All() {
			n++
			if n == 2 {
				break
			}
		}
		require.Equal(t, 2, n)

		n = 0
		for range Exclusive(start, end, step).Backward() {
			n++
			if n == 3 {
				break
			}
		}
		require.Equal(t, 3, n)
	})
}
