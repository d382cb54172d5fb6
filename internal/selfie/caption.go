package selfie

import (
	"fmt"
	"strings"

	"selfie-bot/internal/ai"
	"selfie-bot/internal/schedule"
)

// captionMessages builds the chat request for a post's caption. The caption
// speaks in first person, in the persona's voice, about the decided scene.
func captionMessages(persona string, d *Decision) []ai.Message {
	var b strings.Builder

	b.WriteString("Write a short social-media caption (1-2 sentences, first person) for a self-portrait photo I am posting right now. No hashtags, no emoji spam, no quotation marks around the caption.\n\n")

	if strings.TrimSpace(persona) != "" {
		b.WriteString("## Who I am\n" + persona + "\n\n")
	}

	b.WriteString("## The photo\n")
	if d.Entry != nil {
		fmt.Fprintf(&b, "Scene: %s (%s)\n", d.Entry.ActivityDescription, d.Entry.ActivityDetail)
		fmt.Fprintf(&b, "Location: %s\n", d.Entry.Location)
		if theme := captionTheme(d); theme != "" {
			fmt.Fprintf(&b, "Caption could be about: %s\n", theme)
		}
		b.WriteString(captionStyleHint(d.Entry.CaptionType))
		b.WriteString(relationHint(d.Relation))
	} else {
		b.WriteString("Scene: an ordinary moment at home.\n")
	}

	if d.Schedule != nil {
		b.WriteString("\n## Today so far\n" + d.Schedule.NarrativeContext(4) + "\n")
	}

	return []ai.Message{
		{Role: "system", Content: "You write casual first-person social media captions. Answer with the caption text only."},
		{Role: "user", Content: b.String()},
	}
}

func captionTheme(d *Decision) string {
	if d.VariationID != "" && d.Entry != nil {
		for i := range d.Entry.SceneVariations {
			v := &d.Entry.SceneVariations[i]
			if v.VariationID == d.VariationID && v.CaptionTheme != "" {
				return v.CaptionTheme
			}
		}
	}
	if d.Entry != nil {
		return d.Entry.SuggestedCaptionTheme
	}
	return ""
}

func captionStyleHint(captionType string) string {
	switch captionType {
	case schedule.CaptionNarrative:
		return "Style: tell a tiny story about the moment.\n"
	case schedule.CaptionAsk:
		return "Style: end with a casual question to the readers.\n"
	case schedule.CaptionMonologue:
		return "Style: inner monologue, talking to myself.\n"
	default:
		return "Style: simply share the moment.\n"
	}
}

// relationHint adjusts tense for supplements that fire between scheduled
// moments: the scene may be upcoming or already over.
func relationHint(rel schedule.TimeRelation) string {
	switch rel {
	case schedule.RelationBefore:
		return "Timing: this activity has not started yet, I am about to do it.\n"
	case schedule.RelationAfter:
		return "Timing: this activity just wrapped up.\n"
	default:
		return ""
	}
}

// fallbackCaption is used when the caption model fails: the theme text as-is,
// or silence for caption-less scenes.
func fallbackCaption(d *Decision) string {
	if d.Entry != nil && d.Entry.CaptionType == schedule.CaptionNone {
		return ""
	}
	return captionTheme(d)
}
