package hifi

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestOf(t *testing.T) {
	t.Parallel()

	require.Equal(t, Minute.Times(90), Of(90, Minute))
	require.Equal(t, Minute.Times(90), Of(1.5, Hour))
	require.Equal(t, Minute.Times(90), Of(float32(1.5), Hour))
	require.Equal(t, Second.Times(3), Of(uint8(3), Second))
	require.Equal(t, Day.Times(-2), Of(int16(-2), Day))
	require.Equal(t, FromTotalNanoseconds(math.MaxInt64), Of(uint64(math.MaxUint64), Nanosecond))
	require.Equal(t, MaxDuration, Of(math.Inf(1), Second))
}

func TestSum(t *testing.T) {
	t.Parallel()

	require.Equal(t, Zero, Sum())
	require.Equal(t, Minute.Times(61), Sum(Hour.Duration(), Minute.Duration()))
	require.Equal(t, Second.Times(-1), Sum(Minute.Duration(), Second.Times(-61)))
	require.Equal(t, MaxDuration, Sum(MaxDuration, Hour.Duration()))
	require.Equal(t, MaxDuration.Sub(Hour.Duration()), Sum(MaxDuration, Hour.Duration(), Hour.Times(-1)), "saturation is sticky per step")
}
