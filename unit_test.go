package hifi

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestUnit(t *testing.T) {
	t.Parallel()

	t.Run("times", func(t *testing.T) {
		t.Parallel()

		require.Equal(t, FromTotalNanoseconds(90*NanosecondsPerMinute), Minute.Times(90))
		require.Equal(t, Century.Duration(), Day.Times(DaysPerCentury))
		require.Equal(t, Day.Times(14), Week.Times(2))
		require.Equal(t, MaxDuration, Century.Times(math.MaxInt64))
		require.Equal(t, MinDuration, Week.Times(math.MinInt64))
		require.Equal(t, Century.Times(5), Century.Duration().Mul(5), "beyond int64 nanoseconds")
	})

	t.Run("times float", func(t *testing.T) {
		t.Parallel()

		require.Equal(t, Minute.Times(90), Hour.TimesFloat(1.5))
		require.Equal(t, Zero, Hour.TimesFloat(math.NaN()))
		require.Equal(t, MaxDuration, Second.TimesFloat(math.Inf(1)))
		require.Equal(t, MinDuration, Second.TimesFloat(-math.MaxFloat64))
	})

	t.Run("arithmetic", func(t *testing.T) {
		t.Parallel()

		require.Equal(t, Minute.Times(61), Hour.Add(Minute))
		require.Equal(t, Minute.Times(59), Hour.Sub(Minute))
		require.Equal(t, Minute.Times(-59), Minute.Sub(Hour))
	})

	t.Run("seconds", func(t *testing.T) {
		t.Parallel()

		require.Equal(t, SecondsPerCentury, Century.InSeconds())
		require.Equal(t, 604_800.0, Week.InSeconds())
		require.Equal(t, 1.0, Second.InSeconds())
		require.Equal(t, 1e-9, Nanosecond.InSeconds())
		require.InDelta(t, 1.0/60, Minute.FromSeconds(), 1e-15)
		require.InDelta(t, 1e3, Millisecond.FromSeconds(), 1e-9)
	})

	t.Run("codes", func(t *testing.T) {
		t.Parallel()

		for _, u := range []Unit{Second, Nanosecond, Microsecond, Millisecond, Minute, Hour, Day, Century, Week} {
			require.Equal(t, u, UnitFromCode(u.Code()))
		}
		require.Equal(t, Second, UnitFromCode(200))
	})

	t.Run("names", func(t *testing.T) {
		t.Parallel()

		names := map[Unit]string{
			Nanosecond: "ns", Microsecond: "μs", Millisecond: "ms", Second: "s",
			Minute: "min", Hour: "h", Day: "days", Week: "weeks", Century: "centuries",
		}
		for u, name := range names {
			require.Equal(t, name, u.String())

			parsed, err := ParseUnit(name)
			require.NoError(t, err)
			require.Equal(t, u, parsed)
		}
		require.Equal(t, "Unit(42)", Unit(42).String())

		u, err := ParseUnit(" us ")
		require.NoError(t, err)
		require.Equal(t, Microsecond, u)

		_, err = ParseUnit("fortnight")
		require.ErrorIs(t, err, ErrParse)
	})
}

func TestFreq(t *testing.T) {
	t.Parallel()

	require.Equal(t, Nanosecond.Duration(), GigaHertz.Period(1))
	require.Equal(t, Microsecond.Duration(), MegaHertz.Period(1))
	require.Equal(t, Microsecond.Times(500), KiloHertz.Period(2))
	require.Equal(t, Millisecond.Times(100), Hertz.Period(10))
	require.Equal(t, MaxDuration, Hertz.Period(0))

	require.Equal(t, "GHz", GigaHertz.String())
	require.Equal(t, "kHz", KiloHertz.String())
}

func TestTimeScale(t *testing.T) {
	t.Parallel()

	t.Run("parse", func(t *testing.T) {
		t.Parallel()

		for _, ts := range TimeScales {
			parsed, err := ParseTimeScale(ts.String())
			require.NoError(t, err)
			require.Equal(t, ts, parsed)
		}

		aliases := map[string]TimeScale{
			"gps": GPST, "Galileo": GST, "GAL": GST, "beidou": BDT, "QZSS": QZSST, "z": UTC, " tdb ": TDB,
		}
		for alias, expected := range aliases {
			actual, err := ParseTimeScale(alias)
			require.NoError(t, err, alias)
			require.Equal(t, expected, actual, alias)
		}

		_, err := ParseTimeScale("XYZ")
		require.ErrorIs(t, err, ErrParse)

		var pe *ParseError
		require.ErrorAs(t, err, &pe)
		require.Equal(t, UnknownTimeScale, pe.Kind)
	})

	t.Run("properties", func(t *testing.T) {
		t.Parallel()

		for _, ts := range TimeScales {
			require.Equal(t, ts == GPST || ts == GST || ts == BDT || ts == QZSST, ts.IsGNSS(), ts.String())
			require.Equal(t, ts == UTC, ts.UsesLeapSeconds(), ts.String())
			require.Equal(t, ts, TimeScaleFromCode(ts.Code()))
		}
		require.Equal(t, TAI, TimeScaleFromCode(99))
		require.Equal(t, "TimeScale(99)", TimeScale(99).String())
	})

	t.Run("reference epochs", func(t *testing.T) {
		t.Parallel()

		require.Equal(t, FromTAIDuration(Zero), TAI.ReferenceEpoch())
		require.Equal(t, FromTAIDuration(Zero), UTC.ReferenceEpoch())
		require.True(t, GPST.ReferenceEpoch().Equal(QZSST.ReferenceEpoch()))
		require.Equal(t, Second.Times(GSTReferenceSeconds-GPSTReferenceSeconds), GST.ReferenceEpoch().Since(GPST.ReferenceEpoch()))
		require.True(t, ET.ReferenceEpoch().Equal(TDB.ReferenceEpoch()))
	})
}

func TestLeapSeconds(t *testing.T) {
	t.Parallel()

	t.Run("built-in table", func(t *testing.T) {
		t.Parallel()

		records := DefaultLeapSeconds().LeapSeconds()
		require.Len(t, records, 42)

		iers := 0
		for i, r := range records {
			if r.AnnouncedByIERS {
				iers++
			}
			if i > 0 {
				require.Greater(t, r.TimestampTAISeconds, records[i-1].TimestampTAISeconds, "records are ordered")
			}
		}
		require.Equal(t, 28, iers)
		require.False(t, records[13].AnnouncedByIERS)
		require.Equal(t, 10.0, records[14].DeltaAT)
		require.Equal(t, 37.0, records[len(records)-1].DeltaAT)
	})

	t.Run("drift", func(t *testing.T) {
		t.Parallel()

		r := LatestLeapSeconds[0]
		require.Equal(t, r.DeltaAT, r.At(r.DriftReferenceMJD))
		require.InDelta(t, r.DeltaAT+r.DriftRate*10, r.At(r.DriftReferenceMJD+10), 1e-12)

		integral := LatestLeapSeconds[len(LatestLeapSeconds)-1]
		require.Equal(t, 37.0, integral.At(60_000))
	})

	t.Run("lookup", func(t *testing.T) {
		t.Parallel()

		last := LatestLeapSeconds[len(LatestLeapSeconds)-1]
		v, ok := LookupLeapSeconds(LatestLeapSeconds, last.TimestampTAISeconds, true)
		require.True(t, ok)
		require.Equal(t, 37.0, v)

		v, ok = LookupLeapSeconds(LatestLeapSeconds, last.TimestampTAISeconds-1, true)
		require.True(t, ok)
		require.Equal(t, 36.0, v)

		_, ok = LookupLeapSeconds(nil, last.TimestampTAISeconds, false)
		require.False(t, ok)

		_, ok = LookupLeapSeconds(LeapSecondsTable{}, last.TimestampTAISeconds, false)
		require.False(t, ok)

		_, ok = LookupLeapSeconds(LatestLeapSeconds, 0, false)
		require.False(t, ok, "nothing before 1960")
	})

	t.Run("leap second days", func(t *testing.T) {
		t.Parallel()

		require.True(t, isLeapSecondDay(LatestLeapSeconds, 2016, December, 31))
		require.True(t, isLeapSecondDay(LatestLeapSeconds, 1972, June, 30))
		require.False(t, isLeapSecondDay(LatestLeapSeconds, 2016, June, 30))
		require.False(t, isLeapSecondDay(LatestLeapSeconds, 2016, December, 30))
		require.False(t, isLeapSecondDay(nil, 2016, December, 31))
	})
}
