package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTimeOfDayTwoPartFormat(t *testing.T) {
	tod, err := ParseTimeOfDay("09:30")
	require.NoError(t, err)
	assert.Equal(t, TimeOfDay{Hour: 9, Minute: 30, Second: 0}, tod)
}

func TestParseTimeOfDayThreePartFormat(t *testing.T) {
	tod, err := ParseTimeOfDay("09:30:15")
	require.NoError(t, err)
	assert.Equal(t, TimeOfDay{Hour: 9, Minute: 30, Second: 15}, tod)
}

func TestParseTimeOfDayRoundTrips(t *testing.T) {
	cases := []struct {
		raw  string
		want string
	}{
		{"00:00", "00:00:00"},
		{"23:59", "23:59:00"},
		{"23:59:59", "23:59:59"},
		{"7:05", "07:05:00"},
		{"12:00:01", "12:00:01"},
	}

	for _, tc := range cases {
		tod, err := ParseTimeOfDay(tc.raw)
		require.NoError(t, err, "input %q", tc.raw)
		assert.Equal(t, tc.want, tod.String(), "input %q", tc.raw)
	}
}

func TestParseTimeOfDayRejectsMalformedInput(t *testing.T) {
	cases := []string{
		"",
		"12",
		"12:",
		":30",
		"12:30:45:59",
		"ab:cd",
		"12:3a",
		"-1:30",
		"12: 30",
		"12.30",
	}

	for _, raw := range cases {
		_, err := ParseTimeOfDay(raw)
		assert.ErrorIs(t, err, ErrInvalidTime, "input %q", raw)
	}
}

func TestParseTimeOfDayRejectsOutOfRangeValues(t *testing.T) {
	cases := []string{
		"24:00",
		"12:60",
		"12:30:60",
		"99:99:99",
	}

	for _, raw := range cases {
		_, err := ParseTimeOfDay(raw)
		assert.ErrorIs(t, err, ErrInvalidTime, "input %q", raw)
	}
}

func TestTimeOfDayJSONRoundTrip(t *testing.T) {
	tod := TimeOfDay{Hour: 14, Minute: 5, Second: 30}

	data, err := tod.MarshalJSON()
	require.NoError(t, err)
	assert.Equal(t, `"14:05:30"`, string(data))

	var decoded TimeOfDay
	require.NoError(t, decoded.UnmarshalJSON(data))
	assert.Equal(t, tod, decoded)
}

func TestParseFlownHoursAcceptsNonNegativeValues(t *testing.T) {
	cases := []struct {
		raw  string
		want float64
	}{
		{"0", 0},
		{"2.5", 2.5},
		{"10", 10},
		{" 3.25 ", 3.25},
	}

	for _, tc := range cases {
		v, err := ParseFlownHours(tc.raw)
		require.NoError(t, err, "input %q", tc.raw)
		assert.Equal(t, tc.want, v, "input %q", tc.raw)
	}
}

func TestParseFlownHoursRejectsBadInput(t *testing.T) {
	cases := []string{
		"",
		"abc",
		"1.2.3",
		"-1",
		"-0.5",
		"NaN",
		"Inf",
	}

	for _, raw := range cases {
		_, err := ParseFlownHours(raw)
		assert.ErrorIs(t, err, ErrInvalidNumber, "input %q", raw)
	}
}
