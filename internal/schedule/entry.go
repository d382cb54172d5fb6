package schedule

import (
	"strings"
	"time"
)

// ScheduleEntry is one planned moment in a day: a trigger time with its
// window, the activity, and the full scene description needed to render a
// self-portrait image for it.
type ScheduleEntry struct {
	TimePoint      string `json:"time_point"`
	TimeRangeStart string `json:"time_range_start"`
	TimeRangeEnd   string `json:"time_range_end"`

	ActivityType        ActivityType `json:"activity_type"`
	ActivityDescription string       `json:"activity_description"`
	ActivityDetail      string       `json:"activity_detail"`

	Location       string `json:"location"`
	LocationPrompt string `json:"location_prompt"`

	Pose       string `json:"pose"`
	BodyAction string `json:"body_action"`
	HandAction string `json:"hand_action"`

	Expression string `json:"expression"`
	Mood       string `json:"mood"`

	Outfit      string `json:"outfit"`
	Accessories string `json:"accessories"`

	Environment    string `json:"environment"`
	Lighting       string `json:"lighting"`
	WeatherContext string `json:"weather_context"`

	CaptionType           string `json:"caption_type"`
	SuggestedCaptionTheme string `json:"suggested_caption_theme"`

	IsCompleted bool   `json:"is_completed"`
	CompletedAt string `json:"completed_at,omitempty"`

	SceneVariations   []SceneVariation `json:"scene_variations"`
	IntervalUseCount  int              `json:"interval_use_count"`
	LastIntervalUseAt string           `json:"last_interval_use_at,omitempty"`
}

// InRange reports whether now falls inside the entry's time window,
// which may wrap past midnight.
func (e *ScheduleEntry) InRange(now time.Time) bool {
	return ClockInRange(now.Format("15:04"), e.TimeRangeStart, e.TimeRangeEnd)
}

// UnusedVariations returns the indices of variations not yet consumed.
func (e *ScheduleEntry) UnusedVariations() []int {
	var idx []int
	for i := range e.SceneVariations {
		if !e.SceneVariations[i].IsUsed {
			idx = append(idx, i)
		}
	}
	return idx
}

// MarkVariationUsed flags the variation with the given id as consumed.
// Returns false if no variation matches.
func (e *ScheduleEntry) MarkVariationUsed(variationID string, now time.Time) bool {
	for i := range e.SceneVariations {
		if e.SceneVariations[i].VariationID == variationID {
			e.SceneVariations[i].MarkUsed(now)
			return true
		}
	}
	return false
}

// ResetVariations clears the consumed state of every variation, turning the
// small pool into a rotating cycle.
func (e *ScheduleEntry) ResetVariations() {
	for i := range e.SceneVariations {
		e.SceneVariations[i].Reset()
	}
}

// RecordIntervalUse bumps the supplement-use counter for this entry.
func (e *ScheduleEntry) RecordIntervalUse(now time.Time) {
	e.IntervalUseCount++
	e.LastIntervalUseAt = now.Format(timestampLayout)
}

// ImagePrompt assembles the image-generation prompt from the entry's scene
// fields. The capture device stays out of frame, so the viewpoint tags are
// fixed and device words never appear here.
func (e *ScheduleEntry) ImagePrompt() string {
	return joinPromptParts(
		"(1girl:1.4), (solo:1.3)",
		weighted(e.Expression, "1.2"),
		e.Pose,
		e.BodyAction,
		weighted(e.HandAction, "1.3"),
		e.Outfit,
		e.Accessories,
		e.LocationPrompt,
		e.Environment,
		e.Lighting,
		"front camera view, looking at camera, selfie POV",
	)
}

// VariationImagePrompt assembles a prompt that keeps the entry's location,
// outfit and environment but takes pose, action and expression from the
// variation.
func (e *ScheduleEntry) VariationImagePrompt(v *SceneVariation) string {
	return joinPromptParts(
		"(1girl:1.4), (solo:1.3)",
		weighted(v.Expression, "1.2"),
		v.Pose,
		v.BodyAction,
		weighted(v.HandAction, "1.3"),
		e.Outfit,
		e.Accessories,
		e.LocationPrompt,
		e.Environment,
		e.Lighting,
		"front camera view, looking at camera, selfie POV",
	)
}

func weighted(tag, weight string) string {
	if strings.TrimSpace(tag) == "" {
		return ""
	}
	return "(" + tag + ":" + weight + ")"
}

func joinPromptParts(parts ...string) string {
	kept := make([]string, 0, len(parts))
	for _, p := range parts {
		if strings.TrimSpace(p) != "" {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, ", ")
}
