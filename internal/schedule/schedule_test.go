package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func testDay() *DailySchedule {
	return &DailySchedule{
		Date:      "2026-08-28",
		DayOfWeek: "Friday",
		Entries: []ScheduleEntry{
			{TimePoint: "08:00", TimeRangeStart: "07:55", TimeRangeEnd: "08:05", ActivityType: ActivityWakingUp, ActivityDescription: "Just woke up"},
			{TimePoint: "12:00", TimeRangeStart: "11:55", TimeRangeEnd: "12:05", ActivityType: ActivityEating, ActivityDescription: "Lunch break"},
			{TimePoint: "20:00", TimeRangeStart: "19:55", TimeRangeEnd: "20:05", ActivityType: ActivityRelaxing, ActivityDescription: "Evening wind-down"},
		},
	}
}

func at(clock string) time.Time {
	ts, err := time.Parse("2006-01-02 15:04", "2026-08-28 "+clock)
	if err != nil {
		panic(err)
	}
	return ts
}

func TestCurrentEntrySkipsCompleted(t *testing.T) {
	s := testDay()

	e := s.CurrentEntry(at("12:03"))
	require.NotNil(t, e)
	require.Equal(t, "12:00", e.TimePoint)

	e.IsCompleted = true
	require.Nil(t, s.CurrentEntry(at("12:03")))

	require.Nil(t, s.CurrentEntry(at("15:00")))
}

func TestClosestEntryWithinWins(t *testing.T) {
	s := testDay()
	s.Entries[1].IsCompleted = true

	// completion state does not matter for closeness
	e, rel := s.ClosestEntry(at("12:02"))
	require.Equal(t, "12:00", e.TimePoint)
	require.Equal(t, RelationWithin, rel)
}

func TestClosestEntryBeforeAndAfter(t *testing.T) {
	s := testDay()

	e, rel := s.ClosestEntry(at("10:30"))
	require.Equal(t, "12:00", e.TimePoint)
	require.Equal(t, RelationBefore, rel)

	e, rel = s.ClosestEntry(at("13:30"))
	require.Equal(t, "12:00", e.TimePoint)
	require.Equal(t, RelationAfter, rel)

	// 23:00 is 3h past 20:00 but 9h before 08:00: the evening entry wins
	e, rel = s.ClosestEntry(at("23:00"))
	require.Equal(t, "20:00", e.TimePoint)
	require.Equal(t, RelationAfter, rel)

	// 05:00 folds forward to the morning entry
	e, rel = s.ClosestEntry(at("05:00"))
	require.Equal(t, "08:00", e.TimePoint)
	require.Equal(t, RelationBefore, rel)
}

func TestClosestEntrySparseEvening(t *testing.T) {
	s := &DailySchedule{Entries: []ScheduleEntry{
		{TimePoint: "09:00", TimeRangeStart: "08:55", TimeRangeEnd: "09:05"},
		{TimePoint: "21:00", TimeRangeStart: "20:55", TimeRangeEnd: "21:05"},
	}}

	// 23:30 is 2.5h past 21:00 and 9.5h before 09:00 (folded)
	e, rel := s.ClosestEntry(at("23:30"))
	require.Equal(t, "21:00", e.TimePoint)
	require.Equal(t, RelationAfter, rel)
}

func TestClosestEntryHalfDayTie(t *testing.T) {
	s := &DailySchedule{Entries: []ScheduleEntry{
		{TimePoint: "22:00", TimeRangeStart: "21:55", TimeRangeEnd: "22:05"},
	}}

	// exactly 12 hours away in both directions resolves to "after"
	_, rel := s.ClosestEntry(at("10:00"))
	require.Equal(t, RelationAfter, rel)
}

func TestMarkEntryCompleted(t *testing.T) {
	s := testDay()
	now := at("12:01")

	require.True(t, s.MarkEntryCompleted("12:00", now))
	require.True(t, s.Entries[1].IsCompleted)
	require.NotEmpty(t, s.Entries[1].CompletedAt)
	require.Equal(t, 1, s.CompletedCount())
	require.Equal(t, 2, s.PendingCount())

	require.False(t, s.MarkEntryCompleted("13:37", now))
}

func TestNextEntry(t *testing.T) {
	s := testDay()

	e := s.NextEntry(at("09:00"))
	require.Equal(t, "12:00", e.TimePoint)

	s.Entries[1].IsCompleted = true
	e = s.NextEntry(at("09:00"))
	require.Equal(t, "20:00", e.TimePoint)

	require.Nil(t, s.NextEntry(at("22:00")))
}

func TestNarrativeContext(t *testing.T) {
	s := testDay()
	require.Equal(t, "No selfies posted yet today.", s.NarrativeContext(4))

	s.MarkEntryCompleted("08:00", at("08:01"))
	s.MarkEntryCompleted("12:00", at("12:01"))

	ctx := s.NarrativeContext(1)
	require.Contains(t, ctx, "2026-08-28")
	require.Contains(t, ctx, "[12:00] Lunch break")
	require.NotContains(t, ctx, "[08:00]")
}

func TestVariationRotation(t *testing.T) {
	e := &ScheduleEntry{
		TimePoint: "12:00",
		SceneVariations: []SceneVariation{
			{VariationID: "v1"}, {VariationID: "v2"},
		},
	}
	now := at("12:00")

	require.Len(t, e.UnusedVariations(), 2)
	require.True(t, e.MarkVariationUsed("v1", now))
	require.Equal(t, []int{1}, e.UnusedVariations())
	require.False(t, e.MarkVariationUsed("nope", now))

	require.True(t, e.MarkVariationUsed("v2", now))
	require.Empty(t, e.UnusedVariations())

	e.ResetVariations()
	require.Len(t, e.UnusedVariations(), 2)
	require.Empty(t, e.SceneVariations[0].UsedAt)
}

func TestImagePromptOmitsEmptyParts(t *testing.T) {
	e := &ScheduleEntry{
		Pose:           "sitting at desk",
		Expression:     "soft smile",
		LocationPrompt: "office desk, monitor",
	}

	p := e.ImagePrompt()
	require.Contains(t, p, "(1girl:1.4), (solo:1.3)")
	require.Contains(t, p, "(soft smile:1.2)")
	require.Contains(t, p, "selfie POV")
	require.NotContains(t, p, ", ,")
}

func TestVariationImagePromptKeepsEntryScene(t *testing.T) {
	e := &ScheduleEntry{
		Outfit:         "pajamas",
		LocationPrompt: "bedroom, morning light",
		Pose:           "sitting up in bed",
	}
	v := &SceneVariation{Pose: "lying on side", HandAction: "pulling blanket up"}

	p := e.VariationImagePrompt(v)
	require.Contains(t, p, "lying on side")
	require.Contains(t, p, "(pulling blanket up:1.3)")
	require.Contains(t, p, "bedroom, morning light")
	require.NotContains(t, p, "sitting up in bed")
}
