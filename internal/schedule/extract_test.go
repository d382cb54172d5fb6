package schedule

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

const entryJSON = `[
  {"time_point": "08:00", "activity_type": "waking_up", "activity_description": "up",
   "scene_variations": [{"variation_id": "v1", "pose": "sitting"}, {"variation_id": "v2", "pose": "lying"}]},
  {"time_point": "12:00", "activity_type": "eating", "activity_description": "lunch",
   "scene_variations": []}
]`

func TestExtractJSONArrayPlain(t *testing.T) {
	raw, diag := ExtractJSONArray(entryJSON)
	require.Empty(t, diag)

	var entries []ScheduleEntry
	require.NoError(t, json.Unmarshal([]byte(raw), &entries))
	require.Len(t, entries, 2)
	require.Len(t, entries[0].SceneVariations, 2)
}

func TestExtractJSONArraySurroundedByProse(t *testing.T) {
	text := "Sure! Here is the schedule you asked for:\n```json\n" + entryJSON + "\n```\nHope this helps [1]."

	raw, diag := ExtractJSONArray(text)
	require.Empty(t, diag)

	var entries []ScheduleEntry
	require.NoError(t, json.Unmarshal([]byte(raw), &entries))
	require.Len(t, entries, 2)
	require.Equal(t, "12:00", entries[1].TimePoint)
}

func TestExtractJSONArraySkipsInnerVariationList(t *testing.T) {
	// A nested scene_variations array opens before the text mentions the
	// entries; the duck check must not stop at it.
	text := `The variations look like ["a", "b"] but the real data is ` + entryJSON

	raw, diag := ExtractJSONArray(text)
	require.Empty(t, diag)

	var entries []ScheduleEntry
	require.NoError(t, json.Unmarshal([]byte(raw), &entries))
	require.Len(t, entries, 2)
}

func TestExtractJSONArrayRepairsAlmostJSON(t *testing.T) {
	// trailing comma, which encoding/json rejects
	text := `[{"time_point": "08:00", "activity_type": "waking_up",},]`

	raw, diag := ExtractJSONArray(text)
	require.Empty(t, diag)

	var list []map[string]any
	require.NoError(t, json.Unmarshal([]byte(raw), &list))
	require.Len(t, list, 1)
}

func TestExtractJSONArrayFailure(t *testing.T) {
	raw, diag := ExtractJSONArray("I cannot produce a schedule right now.")
	require.Empty(t, raw)
	require.Contains(t, diag, "no '['")

	raw, diag = ExtractJSONArray("")
	require.Empty(t, raw)
	require.NotEmpty(t, diag)
}
