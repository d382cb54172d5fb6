package schedule

import (
	"fmt"
	"strings"
)

// PromptInput carries everything the schedule prompt needs for one day.
type PromptInput struct {
	Date         string
	DayOfWeek    string
	IsHoliday    bool
	Weather      string
	TriggerTimes []string
	PersonaText  string
	Lifestyle    string
	RecentDigest string
}

// BuildSchedulePrompt renders the full generation prompt for one day's
// schedule. The model must answer with a bare JSON array, one object per
// trigger time, scene fields written as image-prompt tags.
func BuildSchedulePrompt(in PromptInput) string {
	var b strings.Builder

	b.WriteString("You are a life-simulation writer. Plan one ordinary, believable day for the character below, as a JSON array of schedule entries.\n\n")

	b.WriteString("## Character\n")
	if strings.TrimSpace(in.PersonaText) != "" {
		b.WriteString(in.PersonaText)
		b.WriteString("\n")
	} else {
		b.WriteString("A young woman living alone in the city, with an ordinary daily routine.\n")
	}
	if strings.TrimSpace(in.Lifestyle) != "" {
		b.WriteString("Lifestyle notes: " + in.Lifestyle + "\n")
	}
	writeIdentityConstraints(&b, DetectPersonaMode(in.PersonaText))

	b.WriteString("\n## Day\n")
	fmt.Fprintf(&b, "Date: %s (%s)\n", in.Date, in.DayOfWeek)
	if in.IsHoliday {
		b.WriteString("This is a day off: no work or classes. Plan rest, errands, hobbies and going out instead.\n")
	} else {
		b.WriteString("This is a regular workday/school day.\n")
	}
	if strings.TrimSpace(in.Weather) != "" {
		fmt.Fprintf(&b, "Weather: %s. Let it influence outfits and outdoor scenes.\n", in.Weather)
	}

	b.WriteString("\n## Required time points\n")
	b.WriteString("Produce EXACTLY one entry per time point, in this order:\n")
	for _, t := range in.TriggerTimes {
		b.WriteString("- " + t + "\n")
	}

	b.WriteString(`
## Entry format
Answer with a JSON array only, no prose before or after. Each element:
{
  "time_point": "HH:MM",
  "time_range_start": "HH:MM",
  "time_range_end": "HH:MM",
  "activity_type": "<one of the closed set below>",
  "activity_description": "short human-readable summary",
  "activity_detail": "one sentence of what is happening right now",
  "location": "human-readable place name",
  "location_prompt": "comma-separated image tags for the place",
  "pose": "image tags", "body_action": "image tags", "hand_action": "image tags",
  "expression": "image tags", "mood": "one or two words",
  "outfit": "image tags", "accessories": "image tags or empty",
  "environment": "image tags", "lighting": "image tags", "weather_context": "image tags or empty",
  "caption_type": "<one of the caption set below>",
  "suggested_caption_theme": "what the caption could be about",
  "scene_variations": [ ...2 or 3 objects, see below... ]
}

activity_type must be one of: sleeping, waking_up, eating, working, studying, exercising, relaxing, socializing, commuting, hobby, self_care, other.
caption_type must be one of: narrative, ask, share, monologue, none.

Each scene_variations element describes a different moment of the SAME scene (same place, same outfit):
{"variation_id": "v1", "description": "...", "pose": "...", "body_action": "...", "hand_action": "...", "expression": "...", "mood": "...", "caption_theme": "..."}

## Hard rules
- The character is photographing herself; the camera is in her hand and out of frame. NEVER mention the capturing device. The words "phone", "smartphone", "mobile" and "device" are forbidden in every field.
- time_range_start/time_range_end bracket the time_point by a few minutes and may cross midnight.
- Scenes must be everyday and plausible for this character; no travel, no events that would need backstory.
- Vary locations and activities across the day; do not repeat the same place twice in a row.
`)

	if in.RecentDigest != "" {
		b.WriteString(in.RecentDigest)
	}

	return b.String()
}

func writeIdentityConstraints(b *strings.Builder, mode PersonaMode) {
	switch mode {
	case PersonaStudent:
		b.WriteString("Identity constraints: she is a student. Weekday daytime belongs to classes, the library and campus; she has no office job.\n")
	case PersonaWorker:
		b.WriteString("Identity constraints: she has an office job. Weekday daytime belongs to the office; she does not attend classes.\n")
	default:
		b.WriteString("Identity constraints: keep her occupation vague and her days ordinary.\n")
	}
}
