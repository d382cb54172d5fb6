package schedule

import (
	"os"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestStoreRoundTrip(t *testing.T) {
	st := NewStore(t.TempDir())

	s, err := st.Load("2026-08-28")
	require.NoError(t, err)
	require.Nil(t, s)

	day := testDay()
	day.ModelUsed = "pollinations:openai"
	require.NoError(t, st.Save(day))

	loaded, err := st.Load("2026-08-28")
	require.NoError(t, err)
	require.NotNil(t, loaded)
	require.Equal(t, day, loaded)
}

func TestStoreLoadCorrupt(t *testing.T) {
	st := NewStore(t.TempDir())
	require.NoError(t, os.WriteFile(st.FilePath("2026-08-28"), []byte("{broken"), 0644))

	_, err := st.Load("2026-08-28")
	require.Error(t, err)
}

func TestStoreCleanupOld(t *testing.T) {
	st := NewStore(t.TempDir())

	for _, date := range []string{"2026-08-18", "2026-08-21", "2026-08-25", "2026-08-28"} {
		require.NoError(t, st.Save(&DailySchedule{Date: date}))
	}

	st.CleanupOld("2026-08-28", 7)

	// inside the window
	for _, date := range []string{"2026-08-21", "2026-08-25", "2026-08-28"} {
		s, err := st.Load(date)
		require.NoError(t, err)
		require.NotNil(t, s, date)
	}

	// older than the window
	s, err := st.Load("2026-08-18")
	require.NoError(t, err)
	require.Nil(t, s)
}

func TestStoreRecentDigest(t *testing.T) {
	st := NewStore(t.TempDir())
	require.Empty(t, st.RecentDigest("2026-08-28", 3))

	day := testDay()
	day.Date = "2026-08-27"
	day.Entries[0].Location = "Bedroom"
	require.NoError(t, st.Save(day))

	digest := st.RecentDigest("2026-08-28", 3)
	require.Contains(t, digest, "Last days recap")
	require.Contains(t, digest, "2026-08-27")
	require.Contains(t, digest, "[08:00] Just woke up @ Bedroom")

	// the current day itself is not part of the digest
	require.NotContains(t, st.RecentDigest("2026-08-27", 3), "2026-08-27:")
}
