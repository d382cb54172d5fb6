package schedule

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"selfie-bot/internal/ai"
)

type fakeChain struct {
	text  string
	model string
	err   error
	calls int
}

func (f *fakeChain) Generate(_ context.Context, _ string, _ []ai.Message) (*ai.Result, error) {
	f.calls++
	if f.err != nil {
		return &ai.Result{Attempts: []ai.Attempt{{Source: "configured", Model: "m", Error: f.err.Error()}}}, f.err
	}
	return &ai.Result{Text: f.text, Model: f.model, Attempts: []ai.Attempt{{Source: "configured", Model: f.model}}}, nil
}

func newTestGenerator(t *testing.T, chain ModelChain, persona string) (*Generator, *Store, string) {
	t.Helper()
	dir := t.TempDir()
	store := NewStore(filepath.Join(dir, "schedules"))
	failDir := filepath.Join(dir, "failures")
	gen := NewGenerator(store, chain, GeneratorConfig{
		PersonaText: persona,
		FailureDir:  failDir,
	})
	return gen, store, failDir
}

var triggerTimes = []string{"08:00", "12:00", "20:00"}

const modelAnswer = `Here you go:
[
  {"time_point": "08:00", "activity_type": "waking_up", "activity_description": "Just woke up",
   "pose": "sitting up in bed, phone nearby", "caption_type": "Monologue",
   "scene_variations": [{"description": "stretch", "pose": "stretching"}]},
  {"time_point": "12:00", "activity_type": "brunching", "activity_description": "Lunch",
   "time_range_start": "11:50", "time_range_end": "12:10"},
  {"activity_type": "eating", "activity_description": "invalid, no time"}
]`

func TestGetOrGenerateParsesModelAnswer(t *testing.T) {
	chain := &fakeChain{text: modelAnswer, model: "pollinations:openai"}
	gen, store, _ := newTestGenerator(t, chain, "An office clerk")

	s, err := gen.GetOrGenerate(context.Background(), "2026-08-28", triggerTimes, "sunny", false)
	require.NoError(t, err)
	require.Equal(t, "pollinations:openai", s.ModelUsed)
	require.Equal(t, "Friday", s.DayOfWeek)
	require.False(t, s.IsHoliday)
	require.Len(t, s.Entries, 2) // the entry without time_point is dropped

	first := s.Entries[0]
	require.Equal(t, "07:55", first.TimeRangeStart) // defaulted window
	require.Equal(t, "08:05", first.TimeRangeEnd)
	require.Equal(t, CaptionMonologue, first.CaptionType)       // normalized case
	require.Equal(t, "sitting up in bed, nearby", first.Pose)   // banned word stripped
	require.Equal(t, "v1", first.SceneVariations[0].VariationID) // assigned id

	// unknown activity tag coerces to "other"
	require.Equal(t, ActivityOther, s.Entries[1].ActivityType)
	require.Equal(t, "11:50", s.Entries[1].TimeRangeStart)

	// persisted
	loaded, err := store.Load("2026-08-28")
	require.NoError(t, err)
	require.Len(t, loaded.Entries, 2)
}

func TestGetOrGenerateUsesCache(t *testing.T) {
	chain := &fakeChain{text: modelAnswer, model: "m"}
	gen, _, _ := newTestGenerator(t, chain, "persona")

	_, err := gen.GetOrGenerate(context.Background(), "2026-08-28", triggerTimes, "", false)
	require.NoError(t, err)
	_, err = gen.GetOrGenerate(context.Background(), "2026-08-28", triggerTimes, "", false)
	require.NoError(t, err)
	require.Equal(t, 1, chain.calls)
}

func TestGetOrGeneratePersonaChangeInvalidatesCache(t *testing.T) {
	chain := &fakeChain{text: modelAnswer, model: "m"}
	gen, store, _ := newTestGenerator(t, chain, "An office clerk")

	_, err := gen.GetOrGenerate(context.Background(), "2026-08-28", triggerTimes, "", false)
	require.NoError(t, err)

	chain2 := &fakeChain{text: modelAnswer, model: "m"}
	gen2 := NewGenerator(store, chain2, GeneratorConfig{PersonaText: "A college student"})
	_, err = gen2.GetOrGenerate(context.Background(), "2026-08-28", triggerTimes, "", false)
	require.NoError(t, err)
	require.Equal(t, 1, chain2.calls)
}

func TestGetOrGenerateFallbackOnChainFailure(t *testing.T) {
	chain := &fakeChain{err: errors.New("all providers down")}
	gen, _, failDir := newTestGenerator(t, chain, "")

	s, err := gen.GetOrGenerate(context.Background(), "2026-08-28", triggerTimes, "", false)
	require.NoError(t, err)
	require.Equal(t, "fallback", s.ModelUsed)
	require.Equal(t, FailureEmptyResponse, s.FallbackReason)
	require.Len(t, s.Entries, len(triggerTimes))
	require.Equal(t, "08:00", s.Entries[0].TimePoint)

	require.NotEmpty(t, s.FallbackFailurePackage)
	_, statErr := os.Stat(s.FallbackFailurePackage)
	require.NoError(t, statErr)

	files, err := os.ReadDir(failDir)
	require.NoError(t, err)
	require.Len(t, files, 1)
	require.Contains(t, files[0].Name(), FailureEmptyResponse)
}

func TestGetOrGenerateFallbackOnUnparseableAnswer(t *testing.T) {
	chain := &fakeChain{text: "I refuse to answer in JSON.", model: "m"}
	gen, _, _ := newTestGenerator(t, chain, "")

	s, err := gen.GetOrGenerate(context.Background(), "2026-08-28", triggerTimes, "", false)
	require.NoError(t, err)
	require.Equal(t, "fallback", s.ModelUsed)
	require.Equal(t, FailureParseFailed, s.FallbackReason)
}

func TestGetOrGenerateFallbackOnAllEntriesInvalid(t *testing.T) {
	chain := &fakeChain{text: `[{"time_point": "08:00", "activity_type": "eating", "activity_description": ""}]`, model: "m"}
	gen, _, _ := newTestGenerator(t, chain, "")

	s, err := gen.GetOrGenerate(context.Background(), "2026-08-28", triggerTimes, "", false)
	require.NoError(t, err)
	require.Equal(t, "fallback", s.ModelUsed)
	require.Equal(t, FailureValidationFailed, s.FallbackReason)
}

func TestGetOrGenerateSurvivesSaveFailure(t *testing.T) {
	dir := t.TempDir()
	blocked := filepath.Join(dir, "schedules")
	require.NoError(t, os.WriteFile(blocked, []byte("not a directory"), 0644))

	chain := &fakeChain{text: modelAnswer, model: "m"}
	gen := NewGenerator(NewStore(blocked), chain, GeneratorConfig{
		FailureDir: filepath.Join(dir, "failures"),
	})

	// the write fails but the generated day is still served
	s, err := gen.GetOrGenerate(context.Background(), "2026-08-28", triggerTimes, "", false)
	require.NoError(t, err)
	require.NotNil(t, s)
	require.Len(t, s.Entries, 2)
}

func TestGetOrGenerateWeekendIsHoliday(t *testing.T) {
	chain := &fakeChain{text: modelAnswer, model: "m"}
	gen, _, _ := newTestGenerator(t, chain, "")

	// 2026-08-29 is a Saturday
	s, err := gen.GetOrGenerate(context.Background(), "2026-08-29", triggerTimes, "", false)
	require.NoError(t, err)
	require.True(t, s.IsHoliday)
}

func TestGetOrGenerateBadDate(t *testing.T) {
	gen, _, _ := newTestGenerator(t, &fakeChain{text: modelAnswer}, "")
	_, err := gen.GetOrGenerate(context.Background(), "not-a-date", triggerTimes, "", false)
	require.Error(t, err)
}
