package core

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(year int, month time.Month, dayOfMonth int) time.Time {
	return time.Date(year, month, dayOfMonth, 0, 0, 0, 0, time.UTC)
}

func clock(hour, minute int) *time.Time {
	t := time.Date(0, 1, 1, hour, minute, 0, 0, time.UTC)
	return &t
}

func hours(v float64) *float64 {
	return &v
}

func TestResolveDurationFromRange(t *testing.T) {
	d := day(2024, time.March, 4)

	got, err := ResolveDuration(d, clock(9, 0), clock(11, 30), nil)
	require.NoError(t, err)
	assert.Equal(t, 2.5, got)
}

func TestResolveDurationRangeOverridesExplicit(t *testing.T) {
	d := day(2024, time.March, 4)

	got, err := ResolveDuration(d, clock(9, 0), clock(10, 0), hours(8))
	require.NoError(t, err)
	assert.Equal(t, 1.0, got)
}

func TestResolveDurationRejectsNonPositiveRange(t *testing.T) {
	d := day(2024, time.March, 4)

	cases := []struct {
		name       string
		start, end *time.Time
	}{
		{"end before start", clock(11, 0), clock(9, 0)},
		{"end equals start", clock(9, 0), clock(9, 0)},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ResolveDuration(d, tc.start, tc.end, nil)
			require.Error(t, err)
			assert.True(t, IsKind(err, InvalidDuration))
		})
	}
}

func TestResolveDurationExplicitIsIdempotent(t *testing.T) {
	d := day(2024, time.March, 4)

	got, err := ResolveDuration(d, nil, nil, hours(3.75))
	require.NoError(t, err)
	assert.Equal(t, 3.75, got)
}

func TestResolveDurationRejectsNonPositiveExplicit(t *testing.T) {
	d := day(2024, time.March, 4)

	for _, v := range []float64{0, -1} {
		_, err := ResolveDuration(d, nil, nil, hours(v))
		require.Error(t, err)
		assert.True(t, IsKind(err, InvalidDuration))
	}
}

func TestResolveDurationRequiresRangeOrExplicit(t *testing.T) {
	d := day(2024, time.March, 4)

	_, err := ResolveDuration(d, nil, nil, nil)
	require.Error(t, err)
	assert.True(t, IsKind(err, MissingDuration))
}

func TestResolveDurationIgnoresExplicitWithPartialRange(t *testing.T) {
	d := day(2024, time.March, 4)

	// Only one endpoint set: falls through to the explicit value.
	got, err := ResolveDuration(d, clock(9, 0), nil, hours(2))
	require.NoError(t, err)
	assert.Equal(t, 2.0, got)
}
