package schedule

import "time"

// timestampLayout is used for all human-readable timestamps in schedule files.
const timestampLayout = "2006-01-02 15:04:05"

// SceneVariation is an alternate moment within the same schedule entry:
// same location and outfit, different pose, action and expression. Variations
// keep repeated firings of one time slot from looking identical.
type SceneVariation struct {
	VariationID  string `json:"variation_id"`
	Description  string `json:"description"`
	Pose         string `json:"pose"`
	BodyAction   string `json:"body_action"`
	HandAction   string `json:"hand_action"`
	Expression   string `json:"expression"`
	Mood         string `json:"mood"`
	CaptionTheme string `json:"caption_theme"`
	IsUsed       bool   `json:"is_used"`
	UsedAt       string `json:"used_at,omitempty"`
}

// MarkUsed flags the variation as consumed at now.
func (v *SceneVariation) MarkUsed(now time.Time) {
	v.IsUsed = true
	v.UsedAt = now.Format(timestampLayout)
}

// Reset clears the consumed state.
func (v *SceneVariation) Reset() {
	v.IsUsed = false
	v.UsedAt = ""
}
