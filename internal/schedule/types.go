package schedule

import (
	"encoding/json"
	"strings"
)

// ActivityType classifies what the character is doing in a schedule entry.
type ActivityType string

const (
	ActivitySleeping    ActivityType = "sleeping"
	ActivityWakingUp    ActivityType = "waking_up"
	ActivityEating      ActivityType = "eating"
	ActivityWorking     ActivityType = "working"
	ActivityStudying    ActivityType = "studying"
	ActivityExercising  ActivityType = "exercising"
	ActivityRelaxing    ActivityType = "relaxing"
	ActivitySocializing ActivityType = "socializing"
	ActivityCommuting   ActivityType = "commuting"
	ActivityHobby       ActivityType = "hobby"
	ActivitySelfCare    ActivityType = "self_care"
	ActivityOther       ActivityType = "other"
)

var knownActivities = map[ActivityType]bool{
	ActivitySleeping:    true,
	ActivityWakingUp:    true,
	ActivityEating:      true,
	ActivityWorking:     true,
	ActivityStudying:    true,
	ActivityExercising:  true,
	ActivityRelaxing:    true,
	ActivitySocializing: true,
	ActivityCommuting:   true,
	ActivityHobby:       true,
	ActivitySelfCare:    true,
	ActivityOther:       true,
}

// NormalizeActivity maps an arbitrary tag to the closed activity set.
// Unknown values coerce to ActivityOther.
func NormalizeActivity(s string) ActivityType {
	a := ActivityType(s)
	if knownActivities[a] {
		return a
	}
	return ActivityOther
}

// UnmarshalJSON coerces unknown activity tags to "other" instead of failing,
// since the tag usually comes from LLM output.
func (a *ActivityType) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	*a = NormalizeActivity(s)
	return nil
}

// Caption types hint at the style of the text posted with an image.
const (
	CaptionNarrative = "narrative"
	CaptionAsk       = "ask"
	CaptionShare     = "share"
	CaptionMonologue = "monologue"
	CaptionNone      = "none"
)

var knownCaptionTypes = map[string]bool{
	CaptionNarrative: true,
	CaptionAsk:       true,
	CaptionShare:     true,
	CaptionMonologue: true,
	CaptionNone:      true,
}

// NormalizeCaptionType lowercases and maps unknown caption tags to "share".
func NormalizeCaptionType(s string) string {
	l := strings.ToLower(strings.TrimSpace(s))
	if knownCaptionTypes[l] {
		return l
	}
	return CaptionShare
}

// TimeRelation describes where "now" sits relative to an entry's time point.
type TimeRelation string

const (
	RelationWithin TimeRelation = "within"
	RelationBefore TimeRelation = "before"
	RelationAfter  TimeRelation = "after"
)
