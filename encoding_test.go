package hifi

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

type observation struct {
	Exposure Duration  `json:"exposure" yaml:"exposure"`
	At       Epoch     `json:"at" yaml:"at"`
	Scale    TimeScale `json:"scale" yaml:"scale"`
	Unit     Unit      `json:"unit" yaml:"unit"`
}

func testObservation() observation {
	return observation{
		Exposure: Sum(Day.Duration(), Hour.Times(2), Millisecond.Times(5)),
		At:       MustGregorian(2016, December, 31, 23, 59, 60, 500_000_000, UTC),
		Scale:    GPST,
		Unit:     Microsecond,
	}
}

func TestEncoding(t *testing.T) {
	t.Parallel()

	t.Run("json", func(t *testing.T) {
		t.Parallel()

		expected := testObservation()
		data, err := json.Marshal(expected)
		require.NoError(t, err)
		require.JSONEq(t, `{
			"exposure": "1 day 2 h 5 ms",
			"at": "2016-12-31T23:59:60.5 UTC",
			"scale": "GPST",
			"unit": "μs"
		}`, string(data))

		var actual observation
		require.NoError(t, json.Unmarshal(data, &actual))
		require.Equal(t, expected, actual)
	})

	t.Run("yaml", func(t *testing.T) {
		t.Parallel()

		expected := testObservation()
		data, err := yaml.Marshal(expected)
		require.NoError(t, err)
		require.Contains(t, string(data), "scale: GPST")

		var actual observation
		require.NoError(t, yaml.Unmarshal(data, &actual))
		require.Equal(t, expected, actual)
	})

	t.Run("text", func(t *testing.T) {
		t.Parallel()

		var ts TimeScale
		require.NoError(t, ts.UnmarshalText([]byte("Galileo")))
		require.Equal(t, GST, ts)

		var d Duration
		require.NoError(t, d.UnmarshalText([]byte("-90 min")))
		require.Equal(t, Minute.Times(-90), d)

		text, err := d.MarshalText()
		require.NoError(t, err)
		require.Equal(t, "-1 h 30 min", string(text))
	})

	t.Run("invalid", func(t *testing.T) {
		t.Parallel()

		var d Duration
		err := json.Unmarshal([]byte(`"5 parsecs"`), &d)
		require.ErrorIs(t, err, ErrParse)

		err = json.Unmarshal([]byte(`42`), &d)
		require.ErrorContains(t, err, "expect a JSON string")

		var e Epoch
		require.Error(t, json.Unmarshal([]byte(`"2017-02-30T00:00:00 UTC"`), &e))

		var o observation
		require.Error(t, yaml.Unmarshal([]byte("scale: XYZ\n"), &o))
		require.Error(t, yaml.Unmarshal([]byte("unit: [s]\n"), &o))
	})
}
