package schedule

import (
	"fmt"
	"log"
	"strings"
	"time"
)

// DailySchedule is the full plan for one calendar date. It is generated (or
// loaded) once per day and mutated in place as entries and variations are
// consumed. Entries are ordered by time point and never removed individually;
// a new day's file supersedes the whole plan.
type DailySchedule struct {
	Date        string `json:"date"` // YYYY-MM-DD
	DayOfWeek   string `json:"day_of_week"`
	IsHoliday   bool   `json:"is_holiday"`
	Weather     string `json:"weather"`
	// CharacterPersona is an opaque signature of the persona configuration
	// that produced this plan, used only for cache invalidation.
	CharacterPersona string `json:"character_persona"`

	Entries []ScheduleEntry `json:"entries"`

	GeneratedAt string `json:"generated_at"`
	ModelUsed   string `json:"model_used"`

	// Set when ModelUsed == "fallback": why the generation degraded and
	// where the matching failure package was written.
	FallbackReason         string `json:"fallback_reason,omitempty"`
	FallbackFailurePackage string `json:"fallback_failure_package,omitempty"`
}

// CurrentEntry returns the first uncompleted entry whose time window contains
// now, or nil when no window matches.
func (s *DailySchedule) CurrentEntry(now time.Time) *ScheduleEntry {
	current := now.Format("15:04")
	for i := range s.Entries {
		e := &s.Entries[i]
		if e.IsCompleted {
			continue
		}
		if ClockInRange(current, e.TimeRangeStart, e.TimeRangeEnd) {
			return e
		}
	}
	return nil
}

// ClosestEntry returns the entry nearest to now, regardless of completion
// state, together with the time relation. An entry whose window contains now
// wins immediately with RelationWithin; otherwise the minimal circular
// distance to each entry's time point decides, folding distances over 12
// hours to the complementary direction. A distance of exactly 12 hours
// resolves to RelationAfter.
func (s *DailySchedule) ClosestEntry(now time.Time) (*ScheduleEntry, TimeRelation) {
	if len(s.Entries) == 0 {
		return nil, ""
	}

	current := now.Format("15:04")
	currentMins := clockToMinutes(current)

	var closest *ScheduleEntry
	minDistance := minutesPerDay
	relation := TimeRelation("")

	for i := range s.Entries {
		e := &s.Entries[i]
		if ClockInRange(current, e.TimeRangeStart, e.TimeRangeEnd) {
			return e, RelationWithin
		}

		entryMins := clockToMinutes(e.TimePoint)
		distance := circularDistance(currentMins, entryMins)
		if distance >= minDistance {
			continue
		}
		minDistance = distance
		closest = e
		relation = relationOnCircle(currentMins, entryMins)
	}

	return closest, relation
}

// relationOnCircle decides before/after along the shorter arc between now and
// the entry's time point. Ties at exactly 12 hours round to "after".
func relationOnCircle(currentMins, entryMins int) TimeRelation {
	if currentMins < entryMins {
		if entryMins-currentMins < minutesPerDay/2 {
			return RelationBefore
		}
		return RelationAfter
	}
	if currentMins-entryMins <= minutesPerDay/2 {
		return RelationAfter
	}
	return RelationBefore
}

// NextEntry returns the next uncompleted entry whose window starts after now,
// or nil when the day has nothing left.
func (s *DailySchedule) NextEntry(now time.Time) *ScheduleEntry {
	currentMins := clockToMinutes(now.Format("15:04"))
	for i := range s.Entries {
		e := &s.Entries[i]
		if e.IsCompleted {
			continue
		}
		if clockToMinutes(e.TimeRangeStart) > currentMins {
			return e
		}
	}
	return nil
}

// MarkEntryCompleted flags the entry at timePoint as done. Missing time
// points log a warning and change nothing.
func (s *DailySchedule) MarkEntryCompleted(timePoint string, now time.Time) bool {
	for i := range s.Entries {
		if s.Entries[i].TimePoint == timePoint {
			s.Entries[i].IsCompleted = true
			s.Entries[i].CompletedAt = now.Format(timestampLayout)
			log.Printf("[SCHEDULE] entry completed: %s", timePoint)
			return true
		}
	}
	log.Printf("[WARN] no schedule entry at time point %s", timePoint)
	return false
}

// NarrativeContext summarizes the most recent completed entries for the
// caption generator. maxEntries limits how much history leaks into captions.
func (s *DailySchedule) NarrativeContext(maxEntries int) string {
	var completed []*ScheduleEntry
	for i := range s.Entries {
		if s.Entries[i].IsCompleted {
			completed = append(completed, &s.Entries[i])
		}
	}
	if len(completed) > maxEntries {
		completed = completed[len(completed)-maxEntries:]
	}
	if len(completed) == 0 {
		return "No selfies posted yet today."
	}

	parts := []string{fmt.Sprintf("Today is %s, %s.", s.Date, s.DayOfWeek)}
	for _, e := range completed {
		parts = append(parts, fmt.Sprintf("- [%s] %s", e.TimePoint, e.ActivityDescription))
	}
	return strings.Join(parts, "\n")
}

// CompletedCount returns how many entries have fired.
func (s *DailySchedule) CompletedCount() int {
	n := 0
	for i := range s.Entries {
		if s.Entries[i].IsCompleted {
			n++
		}
	}
	return n
}

// PendingCount returns how many entries are still waiting.
func (s *DailySchedule) PendingCount() int {
	return len(s.Entries) - s.CompletedCount()
}
