package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTimeStringFromString(t *testing.T) {
	ts, err := NewTimeStringFromString("10:30")
	require.NoError(t, err)
	assert.Equal(t, "10:30", ts.String())

	_, err = NewTimeStringFromString("25:00")
	assert.ErrorIs(t, err, ErrInvalidTimeString)

	_, err = NewTimeStringFromString("10:60")
	assert.ErrorIs(t, err, ErrInvalidTimeString)

	_, err = NewTimeStringFromString("1030")
	assert.ErrorIs(t, err, ErrInvalidTimeString)
}

func TestFromMinutes(t *testing.T) {
	tests := []struct {
		minutes int
		want    string
		wantErr bool
	}{
		{minutes: 0, want: "00:00"},
		{minutes: 630, want: "10:30"},
		{minutes: 1439, want: "23:59"},
		{minutes: 1440, want: "24:00"},
		{minutes: -1, wantErr: true},
		{minutes: 1441, wantErr: true},
	}

	for _, tt := range tests {
		ts, err := FromMinutes(tt.minutes)
		if tt.wantErr {
			assert.ErrorIs(t, err, ErrMinuteOutOfRange)
			continue
		}
		require.NoError(t, err)
		assert.Equal(t, tt.want, ts.String())
	}
}

func TestTimeString_Minutes(t *testing.T) {
	ts, err := NewTimeStringFromString("10:30")
	require.NoError(t, err)

	minutes, err := ts.Minutes()
	require.NoError(t, err)
	assert.Equal(t, 630, minutes)
}

func TestClock12(t *testing.T) {
	tests := []struct {
		minute int
		want   string
	}{
		{minute: 0, want: "12:00 AM"},
		{minute: 30, want: "12:30 AM"},
		{minute: 60, want: "1:00 AM"},
		{minute: 630, want: "10:30 AM"},
		{minute: 720, want: "12:00 PM"},
		{minute: 750, want: "12:30 PM"},
		{minute: 780, want: "1:00 PM"},
		{minute: 1410, want: "11:30 PM"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, Clock12(tt.minute))
	}
}

func TestTimeString_Comparisons(t *testing.T) {
	earlier, err := NewTimeStringFromString("09:00")
	require.NoError(t, err)
	later, err := NewTimeStringFromString("10:30")
	require.NoError(t, err)

	assert.True(t, earlier.IsBefore(later))
	assert.False(t, later.IsBefore(earlier))
	assert.True(t, later.IsAfter(earlier))
}

func TestTimeString_AddMinutes(t *testing.T) {
	ts, err := NewTimeStringFromString("10:00")
	require.NoError(t, err)

	next, err := ts.AddMinutes(30)
	require.NoError(t, err)
	assert.Equal(t, "10:30", next.String())

	// Выход за пределы суток
	_, err = ts.AddMinutes(900)
	assert.Error(t, err)
}
