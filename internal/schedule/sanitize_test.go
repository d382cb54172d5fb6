package schedule

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSanitizeTextRemovesBannedWords(t *testing.T) {
	require.Equal(t, "holding a, holding a cup", SanitizeText("holding a phone, holding a cup"))
	require.Equal(t, "sitting at desk, in hand", SanitizeText("sitting at desk, smartphone in hand"))
	require.Equal(t, "", SanitizeText("Mobile Device"))
}

func TestSanitizeTextWordBoundary(t *testing.T) {
	// substrings of longer words survive
	require.Equal(t, "playing the saxophone", SanitizeText("playing the saxophone"))
	require.Equal(t, "wearing headphones", SanitizeText("wearing headphones"))
	require.Equal(t, "automobile magazine", SanitizeText("automobile magazine"))
}

func TestSanitizeTextCollapsesArtifacts(t *testing.T) {
	require.Equal(t, "a, b", SanitizeText("a, phone, b"))
	require.Equal(t, "", SanitizeText("phone"))
	require.Equal(t, "", SanitizeText("  device,  mobile  "))
}

func TestSanitizeEntryCleansVariations(t *testing.T) {
	e := &ScheduleEntry{
		Pose:           "sitting, phone in hand",
		HandAction:     "holding smartphone",
		LocationPrompt: "desk, mobile charger, lamp",
		SceneVariations: []SceneVariation{
			{Pose: "leaning, device on table", HandAction: "tapping phone"},
		},
	}

	sanitizeEntry(e)
	require.Equal(t, "sitting, in hand", e.Pose)
	require.Equal(t, "holding", e.HandAction)
	require.Equal(t, "desk, charger, lamp", e.LocationPrompt)
	require.Equal(t, "leaning, on table", e.SceneVariations[0].Pose)
	require.Equal(t, "tapping", e.SceneVariations[0].HandAction)
}
