package schedule

import (
	"regexp"
	"strings"
)

// The scenes are first-person self-portraits with the capturing device out of
// frame, so device-handling vocabulary must never reach an image prompt. The
// generation prompt forbids these words up front; the sanitizer is the
// backstop for hand-authored templates and anything the model slips through.
var bannedPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\bsmartphone\b`),
	regexp.MustCompile(`(?i)\bphone\b`),
	regexp.MustCompile(`(?i)\bmobile\b`),
	regexp.MustCompile(`(?i)\bdevice\b`),
}

var (
	doubleCommaPattern = regexp.MustCompile(`,\s*,+`)
	spaceCommaPattern  = regexp.MustCompile(`\s+,`)
	multiSpacePattern  = regexp.MustCompile(`\s+`)
)

// SanitizeText strips banned tokens on word boundaries and collapses the
// punctuation artifacts left behind. Substrings of longer words are kept.
func SanitizeText(text string) string {
	cleaned := text
	for _, pat := range bannedPatterns {
		cleaned = pat.ReplaceAllString(cleaned, "")
	}
	cleaned = doubleCommaPattern.ReplaceAllString(cleaned, ", ")
	cleaned = spaceCommaPattern.ReplaceAllString(cleaned, ",")
	cleaned = multiSpacePattern.ReplaceAllString(cleaned, " ")
	return strings.Trim(cleaned, " ,")
}

// sanitizeEntry cleans every prompt-facing field of an entry and its
// variations in place.
func sanitizeEntry(e *ScheduleEntry) {
	e.Pose = SanitizeText(e.Pose)
	e.BodyAction = SanitizeText(e.BodyAction)
	e.HandAction = SanitizeText(e.HandAction)
	e.LocationPrompt = SanitizeText(e.LocationPrompt)
	e.Environment = SanitizeText(e.Environment)
	e.ActivityDetail = SanitizeText(e.ActivityDetail)
	for i := range e.SceneVariations {
		v := &e.SceneVariations[i]
		v.Pose = SanitizeText(v.Pose)
		v.BodyAction = SanitizeText(v.BodyAction)
		v.HandAction = SanitizeText(v.HandAction)
		v.Description = SanitizeText(v.Description)
	}
}
