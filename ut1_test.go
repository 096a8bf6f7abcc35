package hifi

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestUT1(t *testing.T) {
	t.Parallel()

	day := MustGregorian(2023, February, 25, 0, 0, 0, 0, UTC)
	table := UT1Table{
		{Epoch: day, DeltaTAIMinusUT1: FromMilliseconds(37_017.25)},
		{Epoch: day.AddTAI(Day.Duration()), DeltaTAIMinusUT1: FromMilliseconds(37_017)},
		{Epoch: day.AddTAI(Day.Times(2)), DeltaTAIMinusUT1: FromMilliseconds(37_016.5)},
	}

	t.Run("offset", func(t *testing.T) {
		t.Parallel()

		offset, ok := day.AddTAI(Hour.Times(12)).UT1Offset(table)
		require.True(t, ok)
		require.Equal(t, FromMilliseconds(37_017.25), offset)

		offset, ok = day.AddTAI(Day.Times(10)).UT1Offset(table)
		require.True(t, ok)
		require.Equal(t, FromMilliseconds(37_016.5), offset, "the last record holds")

		_, ok = day.UT1Offset(table)
		require.False(t, ok, "records apply strictly after their epoch")

		_, ok = day.UT1Offset(nil)
		require.False(t, ok)

		_, ok = day.AddTAI(Day.Duration()).UT1Offset(UT1Table{})
		require.False(t, ok)
	})

	t.Run("conversion", func(t *testing.T) {
		t.Parallel()

		e := day.AddTAI(Hour.Times(36))
		offset := FromMilliseconds(37_017)
		require.Equal(t, e.ToTAIDuration().Sub(offset), e.ToUT1Duration(table))
		require.Equal(t, FromTAIDuration(e.ToTAIDuration().Sub(offset)), e.ToUT1(table))
		require.True(t, FromUT1Duration(e.ToUT1Duration(table), table).Equal(e))
	})

	t.Run("without data", func(t *testing.T) {
		t.Parallel()

		require.Equal(t, day.ToTAIDuration(), day.ToUT1Duration(nil))
		require.True(t, FromUT1Duration(day.ToTAIDuration(), nil).Equal(day))
	})
}
