package schedule

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDetectPersonaMode(t *testing.T) {
	require.Equal(t, PersonaStudent, DetectPersonaMode("A college sophomore who loves photography"))
	require.Equal(t, PersonaWorker, DetectPersonaMode("An office clerk at a small trading company"))
	require.Equal(t, PersonaGeneric, DetectPersonaMode("A cheerful girl who likes cooking"))
	require.Equal(t, PersonaGeneric, DetectPersonaMode(""))

	// student identity wins when both vocabularies appear
	require.Equal(t, PersonaStudent, DetectPersonaMode("A university student with a part-time design gig"))
}

func TestSelectFallbackScenesDeterministic(t *testing.T) {
	a := SelectFallbackScenes("2026-08-28", PersonaWorker, false)
	b := SelectFallbackScenes("2026-08-28", PersonaWorker, false)
	require.Equal(t, a, b)

	require.Len(t, a, len(fallbackSceneTimes))
	for _, scene := range a {
		require.NotEmpty(t, scene.ActivityDescription)
		require.NotEmpty(t, scene.Pose)
	}
}

func TestSelectFallbackScenesHolidayDiffersFromWorkday(t *testing.T) {
	work := SelectFallbackScenes("2026-08-28", PersonaGeneric, false)
	rest := SelectFallbackScenes("2026-08-28", PersonaGeneric, true)
	require.NotEqual(t, work, rest)
}

func TestSelectFallbackScenesSanitized(t *testing.T) {
	for _, holiday := range []bool{false, true} {
		for _, mode := range []PersonaMode{PersonaStudent, PersonaWorker, PersonaGeneric} {
			for _, scene := range SelectFallbackScenes("2026-01-01", mode, holiday) {
				require.Equal(t, scene.Pose, SanitizeText(scene.Pose))
				require.Equal(t, scene.HandAction, SanitizeText(scene.HandAction))
			}
		}
	}
}

func TestClosestFallbackScene(t *testing.T) {
	scenes := SelectFallbackScenes("2026-08-28", PersonaGeneric, false)

	e := ClosestFallbackScene(scenes, "12:10")
	require.Equal(t, "12:10", e.TimePoint)
	require.Equal(t, "12:05", e.TimeRangeStart)
	require.Equal(t, "12:15", e.TimeRangeEnd)
	require.Equal(t, scenes[3].ActivityDescription, e.ActivityDescription)

	// late night maps to the last canonical slot
	e = ClosestFallbackScene(scenes, "23:30")
	require.Equal(t, scenes[8].ActivityDescription, e.ActivityDescription)

	// picking a scene must not consume the shared template's variations
	e.SceneVariations[0].IsUsed = true
	require.False(t, scenes[8].SceneVariations[0].IsUsed)
}
