package schedule

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBuildSchedulePrompt(t *testing.T) {
	p := BuildSchedulePrompt(PromptInput{
		Date:         "2026-08-28",
		DayOfWeek:    "Friday",
		IsHoliday:    false,
		Weather:      "light rain",
		TriggerTimes: []string{"08:00", "12:00", "20:00"},
		PersonaText:  "An office clerk at a small trading company",
		RecentDigest: "\n## Last days recap (for variety)\n2026-08-27: [08:00] Just woke up @ Bedroom\n",
	})

	require.Contains(t, p, "2026-08-28 (Friday)")
	require.Contains(t, p, "regular workday")
	require.Contains(t, p, "light rain")
	for _, tt := range []string{"- 08:00", "- 12:00", "- 20:00"} {
		require.Contains(t, p, tt)
	}
	require.Contains(t, p, "she has an office job")
	require.Contains(t, p, `"phone", "smartphone", "mobile" and "device" are forbidden`)
	require.Contains(t, p, "Last days recap")

	// closed vocabularies are spelled out
	require.Contains(t, p, "sleeping, waking_up, eating")
	require.Contains(t, p, "narrative, ask, share, monologue, none")
}

func TestBuildSchedulePromptHoliday(t *testing.T) {
	p := BuildSchedulePrompt(PromptInput{
		Date:         "2026-08-29",
		DayOfWeek:    "Saturday",
		IsHoliday:    true,
		TriggerTimes: []string{"10:00"},
		PersonaText:  "A university student",
	})

	require.Contains(t, p, "day off")
	require.Contains(t, p, "she is a student")
	require.False(t, strings.Contains(p, "Weather:"))
}
