package hifi

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTimeOffset(t *testing.T) {
	t.Parallel()

	ref := MustGregorian(2020, January, 1, 0, 0, 0, 0, GPST)
	gpstToGST, err := NewTimeOffset(GPST, GST, ref, Zero, PolynomialFromConstantOffsetNanoseconds(1))
	require.NoError(t, err)
	require.Equal(t, Week.Duration(), gpstToGST.Validity)

	t.Run("within the window", func(t *testing.T) {
		t.Parallel()

		for _, offset := range []Duration{Zero, Day.Duration(), Day.Times(-1), Hour.Times(36)} {
			e := ref.AddTAI(offset)

			correction, err := gpstToGST.Correction(e)
			require.NoError(t, err, offset.String())
			require.Equal(t, Nanosecond.Duration(), correction)

			gst, err := gpstToGST.Convert(e)
			require.NoError(t, err, offset.String())
			require.Equal(t, GST, gst.TimeScale())
			require.Equal(t, Nanosecond.Times(-1), gst.Since(e))

			back, err := gpstToGST.Convert(gst)
			require.NoError(t, err, offset.String())
			require.Equal(t, GPST, back.TimeScale())
			require.True(t, back.Equal(e), offset.String())
		}
	})

	t.Run("window edge", func(t *testing.T) {
		t.Parallel()

		_, err := gpstToGST.Convert(ref.AddTAI(Week.Duration()))
		require.NoError(t, err)
		_, err = gpstToGST.Correction(ref.AddTAI(Week.Duration().Neg()))
		require.NoError(t, err)
	})

	t.Run("outside the window", func(t *testing.T) {
		t.Parallel()

		late := ref.AddTAI(Week.Duration().Add(Nanosecond.Duration()))
		_, err := gpstToGST.Convert(late)
		require.ErrorIs(t, err, ErrOutdatedTimeOffset)

		_, err = gpstToGST.Correction(late)
		require.ErrorIs(t, err, ErrOutdatedTimeOffset)

		early := ref.AddTAI(Day.Times(-8)).ToTimeScale(GST)
		_, err = gpstToGST.Convert(early)
		require.ErrorIs(t, err, ErrOutdatedTimeOffset, "backward as well")
	})

	t.Run("explicit validity", func(t *testing.T) {
		t.Parallel()

		o, err := NewTimeOffset(GST, BDT, ref.ToTimeScale(GST), Hour.Times(2), PolynomialFromOffsetAndRateNanoseconds(5, 0.1))
		require.NoError(t, err)

		_, err = o.Convert(ref.AddTAI(Hour.Duration()).ToTimeScale(GST))
		require.NoError(t, err)
		_, err = o.Convert(ref.AddTAI(Hour.Times(-2)).ToTimeScale(BDT))
		require.NoError(t, err)

		_, err = o.Convert(ref.AddTAI(Hour.Times(3)).ToTimeScale(GST))
		require.ErrorIs(t, err, ErrOutdatedTimeOffset)
		_, err = o.Convert(ref.AddTAI(Hour.Times(-3)).ToTimeScale(BDT))
		require.ErrorIs(t, err, ErrOutdatedTimeOffset)
	})

	t.Run("identical time scales", func(t *testing.T) {
		t.Parallel()

		_, err := NewTimeOffset(GPST, GPST, ref, Zero, Polynomial{})
		require.ErrorIs(t, err, ErrIdenticalTimeScales)

		o := TimeOffset{From: GST, To: GST, Ref: ref, Validity: Week.Duration()}
		_, err = o.Convert(ref.ToTimeScale(GST))
		require.ErrorIs(t, err, ErrIdenticalTimeScales)
	})

	t.Run("unsupported time scale", func(t *testing.T) {
		t.Parallel()

		_, err := gpstToGST.Convert(ref.ToTimeScale(UTC))
		require.ErrorIs(t, err, ErrTimeScaleNotSupported)

		_, err = gpstToGST.Correction(ref.ToTimeScale(BDT))
		require.ErrorIs(t, err, ErrTimeScaleNotSupported)
	})

	t.Run("string", func(t *testing.T) {
		t.Parallel()

		require.Equal(t,
			"TimeOffset(GPST to GST at 2020-01-01T00:00:00 GPST for 7 days, Polynomial(constant=1 ns, rate=0 ns/s, accel=0 ns/s²))",
			gpstToGST.String(),
		)
	})
}
