package schedule

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestValidClock(t *testing.T) {
	valid := []string{"00:00", "7:30", "07:30", "23:59", "12:05"}
	for _, s := range valid {
		require.True(t, ValidClock(s), s)
	}

	invalid := []string{"", "24:00", "12:60", "7:5", "12.30", "noon", "12:300"}
	for _, s := range invalid {
		require.False(t, ValidClock(s), s)
	}
}

func TestAdjustClockClamps(t *testing.T) {
	require.Equal(t, "08:05", AdjustClock("08:00", 5))
	require.Equal(t, "07:55", AdjustClock("08:00", -5))
	require.Equal(t, "00:00", AdjustClock("00:02", -10))
	require.Equal(t, "23:59", AdjustClock("23:58", 10))
	require.Equal(t, "garbage", AdjustClock("garbage", 5))
}

func TestClockInRangeWrapsMidnight(t *testing.T) {
	require.True(t, ClockInRange("12:00", "11:00", "13:00"))
	require.True(t, ClockInRange("11:00", "11:00", "13:00"))
	require.True(t, ClockInRange("13:00", "11:00", "13:00"))
	require.False(t, ClockInRange("13:01", "11:00", "13:00"))

	// window crossing midnight
	require.True(t, ClockInRange("23:30", "23:00", "01:00"))
	require.True(t, ClockInRange("00:30", "23:00", "01:00"))
	require.False(t, ClockInRange("02:00", "23:00", "01:00"))
}

func TestClockDistanceFolds(t *testing.T) {
	require.Equal(t, 0, ClockDistance("10:00", "10:00"))
	require.Equal(t, 90, ClockDistance("10:00", "11:30"))
	// 23:00 to 01:00 is 2h around midnight, not 22h
	require.Equal(t, 120, ClockDistance("23:00", "01:00"))
	// exactly opposite on the circle
	require.Equal(t, 720, ClockDistance("00:00", "12:00"))
}
