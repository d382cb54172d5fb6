package schedule

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/kaptinlin/jsonrepair"
)

// ExtractJSONArray pulls a JSON array out of free-form model output. The
// output may carry markdown fences, prose around the JSON, and nested arrays
// inside array elements (each entry embeds scene_variations), so a shortest
// "[...]" match would truncate at the first inner bracket. Instead a
// structural decode is attempted at every '[' offset; the first candidate
// that parses AND looks like a list of schedule entries wins. When nothing
// duck-checks, the first offset that parses as any array is accepted, and as
// a last resort the text is run through jsonrepair.
//
// The second return value describes why extraction failed and at what
// offset, for the diagnostic failure package.
func ExtractJSONArray(text string) (string, string) {
	if strings.TrimSpace(text) == "" {
		return "", "empty response text"
	}

	var lastErr string

	// Pass 1: candidates that duck-check as schedule entries.
	for idx := 0; idx < len(text); idx++ {
		if text[idx] != '[' {
			continue
		}
		candidate, obj, err := decodeOneValue(text[idx:])
		if err != nil {
			lastErr = fmt.Sprintf("offset %d: %v", idx, err)
			continue
		}
		if looksLikeScheduleEntries(obj) {
			return candidate, ""
		}
	}

	// Pass 2: first offset that parses as any array at all.
	if first := strings.IndexByte(text, '['); first != -1 {
		candidate, obj, err := decodeOneValue(text[first:])
		if err == nil {
			if _, ok := obj.([]any); ok {
				return candidate, ""
			}
		} else {
			lastErr = fmt.Sprintf("offset %d: %v", first, err)
		}

		// Pass 3: the model may have emitted almost-JSON (trailing commas,
		// unquoted keys). jsonrepair recovers most of those.
		repaired, err := jsonrepair.JSONRepair(text[first:])
		if err == nil {
			candidate, obj, derr := decodeOneValue(repaired)
			if derr == nil {
				if _, ok := obj.([]any); ok {
					return candidate, ""
				}
			}
		}
	}

	if lastErr == "" {
		lastErr = "no '[' found in response"
	}
	return "", lastErr
}

// decodeOneValue decodes a single leading JSON value from s, ignoring any
// trailing text, and returns the exact substring consumed.
func decodeOneValue(s string) (string, any, error) {
	dec := json.NewDecoder(strings.NewReader(s))
	var obj any
	if err := dec.Decode(&obj); err != nil {
		return "", nil, err
	}
	return s[:dec.InputOffset()], obj, nil
}

// looksLikeScheduleEntries duck-checks a decoded value: a non-empty list
// whose early elements carry time_point and activity_type keys. Checking
// only the first few elements avoids mistaking a scene_variations list for
// the entry list.
func looksLikeScheduleEntries(obj any) bool {
	list, ok := obj.([]any)
	if !ok || len(list) == 0 {
		return false
	}
	limit := len(list)
	if limit > 5 {
		limit = 5
	}
	for _, item := range list[:limit] {
		m, ok := item.(map[string]any)
		if !ok {
			continue
		}
		tp, _ := m["time_point"].(string)
		at, _ := m["activity_type"].(string)
		if tp != "" && at != "" {
			return true
		}
	}
	return false
}
