package hifi

import (
	"math"
	"math/big"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestDuration_Encoding(t *testing.T) {
	t.Parallel()

	t.Run("one nanosecond before zero", func(t *testing.T) {
		t.Parallel()

		c, ns := Epsilon.Neg().Parts()
		require.Equal(t, int16(-1), c)
		require.Equal(t, uint64(NanosecondsPerCentury-1), ns)
		require.Equal(t, MinNegativeDuration, Epsilon.Neg())
	})

	t.Run("nanoseconds carry into centuries", func(t *testing.T) {
		t.Parallel()

		d := FromParts(1, NanosecondsPerCentury+5)
		c, ns := d.Parts()
		require.Equal(t, int16(2), c)
		require.Equal(t, uint64(5), ns)
	})

	t.Run("saturates at the century bounds", func(t *testing.T) {
		t.Parallel()

		require.Equal(t, MaxDuration, FromParts(math.MaxInt16, 2*NanosecondsPerCentury))
	})

	t.Run("total nanoseconds", func(t *testing.T) {
		t.Parallel()

		for _, ns := range []int64{0, 1, -1, NanosecondsPerCentury, -NanosecondsPerCentury - 7, math.MaxInt64, math.MinInt64} {
			d := FromTotalNanoseconds(ns)
			require.Equal(t, ns, d.TruncatedNanoseconds(), "round trip of %d", ns)
			require.Zero(t, big.NewInt(ns).Cmp(d.TotalNanosecondsBig()))
		}
	})

	t.Run("big nanoseconds", func(t *testing.T) {
		t.Parallel()

		tooBig := new(big.Int).Mul(big.NewInt(NanosecondsPerCentury), big.NewInt(40_000))
		saturated, err := FromBigNanoseconds(tooBig)
		require.ErrorIs(t, err, ErrOverflow)
		require.Equal(t, MaxDuration, saturated)

		saturated, err = FromBigNanoseconds(new(big.Int).Neg(tooBig))
		require.ErrorIs(t, err, ErrUnderflow)
		require.Equal(t, MinDuration, saturated)

		ten := new(big.Int).Mul(big.NewInt(NanosecondsPerCentury), big.NewInt(10))
		d, err := FromBigNanoseconds(ten)
		require.NoError(t, err)
		require.Equal(t, Century.Times(10), d)

		_, err = d.Mul(1000).TryTruncatedNanoseconds()
		require.ErrorIs(t, err, ErrOverflow)
		require.Equal(t, int64(math.MaxInt64), d.TruncatedNanoseconds())
	})
}

func TestDuration_Arithmetic(t *testing.T) {
	t.Parallel()

	t.Run("add and sub", func(t *testing.T) {
		t.Parallel()

		d := Day.Times(1).Add(Hour.Times(2)).Sub(Minute.Times(30))
		require.Equal(t, Hour.Times(25).Add(Minute.Times(30)), d)

		require.Equal(t, Zero, Second.Duration().Sub(Second.Duration()))
		require.Equal(t, Nanosecond.Times(-1), Zero.Sub(Epsilon))
		require.Equal(t, Century.Times(-2), Century.Times(-1).Add(Century.Times(-1)))
	})

	t.Run("saturation", func(t *testing.T) {
		t.Parallel()

		require.Equal(t, MaxDuration, MaxDuration.Add(Epsilon))
		require.Equal(t, MinDuration, MinDuration.Sub(Day.Duration()))
		require.Equal(t, MaxDuration, Century.Times(20_000).Add(Century.Times(20_000)))
		require.Equal(t, MaxDuration, Day.Duration().Mul(math.MaxInt64))
		require.Equal(t, MinDuration, Day.Duration().Mul(math.MinInt64))
	})

	t.Run("neg and abs", func(t *testing.T) {
		t.Parallel()

		d := Hour.Times(3).Add(Nanosecond.Times(7))
		require.Equal(t, d, d.Neg().Neg())
		require.Equal(t, d, d.Neg().Abs())
		require.True(t, d.Neg().IsNegative())
		require.False(t, Zero.IsNegative())
		require.Equal(t, Zero, Zero.Neg())
		require.Equal(t, MaxDuration, MinDuration.Neg())
		require.Equal(t, MinDuration, MaxDuration.Neg())
	})

	t.Run("signum", func(t *testing.T) {
		t.Parallel()

		require.Equal(t, 0, Zero.Signum())
		require.Equal(t, 1, Epsilon.Signum())
		require.Equal(t, -1, Epsilon.Neg().Signum())
	})

	t.Run("mul", func(t *testing.T) {
		t.Parallel()

		require.Equal(t, Hour.Times(3), Hour.Duration().Mul(3))
		require.Equal(t, Hour.Times(-3), Hour.Duration().Mul(-3))
		require.Equal(t, Century.Times(300), Century.Duration().Mul(300))
	})

	t.Run("mul float is exact for decimal factors", func(t *testing.T) {
		t.Parallel()

		require.Equal(t, Minute.Times(90), Hour.Duration().MulFloat(1.5))
		require.Equal(t, Second.Times(30), Minute.Duration().MulFloat(0.5))
		require.Equal(t, Second.Times(-75), Minute.Duration().MulFloat(-1.25))
		require.Equal(t, Nanosecond.Times(1), Second.Duration().MulFloat(1e-9))
		require.Equal(t, Zero, Hour.Duration().MulFloat(math.NaN()))
		require.Equal(t, MaxDuration, Hour.Duration().MulFloat(math.Inf(1)))
		require.Equal(t, MinDuration, Hour.Duration().MulFloat(math.Inf(-1)))
	})

	t.Run("div", func(t *testing.T) {
		t.Parallel()

		require.Equal(t, Minute.Times(20), Hour.Duration().Div(3))
		require.Equal(t, Nanosecond.Times(3), Nanosecond.Times(10).Div(3))
		require.Equal(t, Nanosecond.Times(-3), Nanosecond.Times(-10).Div(3))
		require.Equal(t, Minute.Times(15), Hour.Duration().DivFloat(4))
		require.Equal(t, Hour.Times(2), Hour.Duration().DivFloat(0.5))
	})

	t.Run("div by zero saturates", func(t *testing.T) {
		t.Parallel()

		require.Equal(t, MaxDuration, Second.Duration().Div(0))
		require.Equal(t, MinDuration, Second.Times(-1).Div(0))
		require.Equal(t, Zero, Zero.Div(0))
		require.Equal(t, MaxDuration, Second.Duration().DivFloat(0))
	})
}

func TestDuration_Compare(t *testing.T) {
	t.Parallel()

	fifteen := Minute.Times(15)

	t.Run("magnitude", func(t *testing.T) {
		t.Parallel()

		require.True(t, fifteen.Equal(fifteen.Neg()), "opposite durations have equal magnitude")
		require.Equal(t, 0, fifteen.Compare(fifteen.Neg()))
		require.True(t, Minute.Times(-20).Greater(fifteen))
		require.True(t, fifteen.Less(Minute.Times(-20)))
		require.Equal(t, fifteen, fifteen.Min(Minute.Times(-20)))
		require.Equal(t, Minute.Times(-20), fifteen.Max(Minute.Times(-20)))
	})

	t.Run("signed", func(t *testing.T) {
		t.Parallel()

		require.Equal(t, 1, fifteen.CompareSigned(fifteen.Neg()))
		require.Equal(t, -1, Minute.Times(-20).CompareSigned(fifteen))
		require.Equal(t, 0, fifteen.CompareSigned(Second.Times(900)))
		require.Equal(t, -1, MinDuration.CompareSigned(MinNegativeDuration))
		require.NotEqual(t, fifteen, fifteen.Neg(), "== is exact identity")
	})
}

func TestDuration_Rounding(t *testing.T) {
	t.Parallel()

	d := Hour.Times(2).Add(Minute.Times(31))

	t.Run("floor", func(t *testing.T) {
		t.Parallel()

		require.Equal(t, Hour.Times(2), d.Floor(Hour.Duration()))
		require.Equal(t, Hour.Times(-2), d.Neg().Floor(Hour.Duration()))
		require.Equal(t, Zero, Minute.Times(-5).Floor(Hour.Duration()))
		require.Equal(t, d, d.Floor(Zero))
	})

	t.Run("ceil", func(t *testing.T) {
		t.Parallel()

		require.Equal(t, Hour.Times(3), d.Ceil(Hour.Duration()))
		require.Equal(t, Hour.Times(-1), d.Neg().Ceil(Hour.Duration()))
		require.Equal(t, d, d.Ceil(Zero))
		require.Equal(t, MaxDuration, MaxDuration.Sub(Epsilon).Ceil(Century.Duration()))
	})

	t.Run("round", func(t *testing.T) {
		t.Parallel()

		require.Equal(t, Hour.Times(3), d.Round(Hour.Duration()))
		require.Equal(t, Hour.Times(2), Hour.Times(2).Add(Minute.Times(29)).Round(Hour.Duration()))
		require.Equal(t, Hour.Times(3), Hour.Times(2).Add(Minute.Times(30)).Round(Hour.Duration()), "ties round up")
		require.Equal(t, d, d.Round(Zero))
	})

	t.Run("approx", func(t *testing.T) {
		t.Parallel()

		require.Equal(t, Hour.Times(2), Hour.Times(2).Add(Minute.Times(3)).Approx())
		require.Equal(t, Day.Times(2), Hour.Times(36).Add(Minute.Duration()).Approx())
		require.Equal(t, Second.Times(5), Second.Times(5).Add(Millisecond.Times(400)).Approx())
		require.Equal(t, Nanosecond.Times(7), Nanosecond.Times(7).Approx())
	})
}

func TestDuration_Conversions(t *testing.T) {
	t.Parallel()

	t.Run("seconds", func(t *testing.T) {
		t.Parallel()

		require.InDelta(t, 1.5, FromSeconds(1.5).ToSeconds(), 1e-12)
		require.InDelta(t, -0.25, FromSeconds(-0.25).ToSeconds(), 1e-6)
		require.Equal(t, SecondsPerCentury*2, Century.Times(2).ToSeconds())
		require.InDelta(t, 1e-9, Epsilon.ToSeconds(), 1e-18)
	})

	t.Run("unit", func(t *testing.T) {
		t.Parallel()

		require.Equal(t, 1.5, Minute.Times(90).ToUnit(Hour))
		require.Equal(t, 2.0, Week.Times(2).ToUnit(Week))
		require.Equal(t, int64(1), Minute.Times(119).ToIntegerUnit(Hour))
		require.Equal(t, int64(-1), Minute.Times(-119).ToIntegerUnit(Hour))
	})

	t.Run("floating point constructors", func(t *testing.T) {
		t.Parallel()

		require.Equal(t, Hour.Times(36), FromDays(1.5))
		require.Equal(t, Minute.Times(90), FromHours(1.5))
		require.Equal(t, Microsecond.Times(2500), FromMilliseconds(2.5))
		require.Equal(t, Nanosecond.Times(2500), FromMicroseconds(2.5))
		require.Equal(t, Nanosecond.Times(2), FromNanoseconds(2.9))
		require.Equal(t, Zero, FromSeconds(math.NaN()))
		require.Equal(t, MaxDuration, FromSeconds(math.Inf(1)))
		require.Equal(t, MinDuration, FromDays(-1e30))
	})

	t.Run("standard library", func(t *testing.T) {
		t.Parallel()

		require.Equal(t, Minute.Times(90), FromStd(90*time.Minute))
		require.Equal(t, -3*time.Second, Second.Times(-3).ToStd())
		require.Equal(t, time.Duration(math.MaxInt64), Century.Times(10).ToStd())
	})

	t.Run("timezone offset", func(t *testing.T) {
		t.Parallel()

		require.Equal(t, Hour.Times(-5).Sub(Minute.Times(30)), FromTZOffset(-1, 5, 30))
		require.Equal(t, Hour.Times(2), FromTZOffset(1, 2, 0))
	})
}

func TestDuration_Decompose(t *testing.T) {
	t.Parallel()

	d := Compose(-1, 1, 2, 3, 4, 5, 6, 7)
	p := d.Decompose()
	require.Equal(t, DurationParts{
		Sign: -1, Days: 1, Hours: 2, Minutes: 3, Seconds: 4,
		Milliseconds: 5, Microseconds: 6, Nanoseconds: 7,
	}, p)
	require.Equal(t, d, p.Duration())

	require.Equal(t, 0, Zero.Decompose().Sign)
	require.Equal(t, uint64(36_525*3), Century.Times(3).Decompose().Days)

	require.Equal(t, FromSeconds(-90.5), ComposeFloat(-1, 0, 0, 1.5, 0.5, 0, 0, 0))

	t.Run("subdivision", func(t *testing.T) {
		t.Parallel()

		d := Hour.Times(2).Add(Minute.Times(3)).Add(Second.Times(4))
		sub, ok := d.Subdivision(Minute)
		require.True(t, ok)
		require.Equal(t, Minute.Times(3), sub)

		sub, ok = d.Subdivision(Nanosecond)
		require.True(t, ok)
		require.Equal(t, Zero, sub)

		_, ok = d.Subdivision(Week)
		require.False(t, ok, "weeks are not a component")
	})
}

func TestDuration_String(t *testing.T) {
	t.Parallel()

	tests := []struct {
		d        Duration
		expected string
	}{
		{Zero, "0 ns"},
		{Epsilon, "1 ns"},
		{Epsilon.Neg(), "-1 ns"},
		{Day.Duration(), "1 day"},
		{Day.Times(2), "2 days"},
		{Day.Duration().Add(Hour.Times(2)).Add(Minute.Times(30)).Add(Second.Times(30)), "1 day 2 h 30 min 30 s"},
		{Compose(-1, 1, 2, 3, 0, 0, 0, 4), "-1 day 2 h 3 min 4 ns"},
		{Microsecond.Times(3).Add(Millisecond.Duration()), "1 ms 3 μs"},
		{Century.Duration(), "36525 days"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			t.Parallel()

			require.Equal(t, tt.expected, tt.d.String())

			parsed, err := ParseDuration(tt.expected)
			require.NoError(t, err)
			require.Equal(t, tt.d, parsed, "String output parses back")
		})
	}
}

func TestParseDuration(t *testing.T) {
	t.Parallel()

	t.Run("valid", func(t *testing.T) {
		t.Parallel()

		tests := []struct {
			input    string
			expected Duration
		}{
			{"1 d", Day.Duration()},
			{"1 day 2 h 30.5 min", Day.Duration().Add(Hour.Times(2)).Add(Minute.Times(30)).Add(Second.Times(30))},
			{"  3 weeks ", Week.Times(3)},
			{"-2 h 15 min", Hour.Times(2).Add(Minute.Times(15)).Neg()},
			{"+10 s", Second.Times(10)},
			{"1.5 us", Nanosecond.Times(1500)},
			{"1 μs 1 µs", Microsecond.Times(2)},
			{"2 centuries", Century.Times(2)},
			{"9223372036854775807 ns", FromTotalNanoseconds(math.MaxInt64)},
			{"-05:30", Hour.Times(5).Add(Minute.Times(30)).Neg()},
			{"+0130", Hour.Duration().Add(Minute.Times(30))},
			{"+01:02:03", Hour.Duration().Add(Minute.Times(2)).Add(Second.Times(3))},
			{"-07", Hour.Times(-7)},
		}

		for _, tt := range tests {
			actual, err := ParseDuration(tt.input)
			require.NoError(t, err, tt.input)
			require.Equal(t, tt.expected, actual, tt.input)
		}
	})

	t.Run("invalid", func(t *testing.T) {
		t.Parallel()

		tests := []struct {
			input string
			kind  ParseErrorKind
		}{
			{"", NothingToParse},
			{"   ", NothingToParse},
			{"-", NothingToParse},
			{"5", UnknownOrMissingUnit},
			{"5 parsecs", UnknownOrMissingUnit},
			{"five s", ValueError},
			{"1 h x", ValueError},
		}

		for _, tt := range tests {
			_, err := ParseDuration(tt.input)
			require.ErrorIs(t, err, ErrParse, tt.input)

			var pe *ParseError
			require.ErrorAs(t, err, &pe)
			require.Equal(t, tt.kind, pe.Kind, tt.input)
		}
	})
}
